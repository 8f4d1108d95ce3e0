package termhost

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/paneui/pkg/errors"
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/host/memhost"
)

const (
	// CellWidth is the pixel width of one terminal cell.
	CellWidth = 8
	// CellHeight is the pixel height of one terminal cell.
	CellHeight = 16
	// FrameInterval is the delay between animation frames.
	FrameInterval = time.Second / 60
)

// frameMsg drives animation tickers.
type frameMsg time.Time

// Model is a bubbletea model presenting a memhost tree.
type Model struct {
	host   *memhost.Host
	keys   KeyMap
	help   help.Model
	paste  func() (string, error)
	logger *slog.Logger

	cols, rows int
	pressed    host.Node
	focused    host.Node
	quitting   bool
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithClipboard replaces the clipboard reader used for paste.
func WithClipboard(read func() (string, error)) Option {
	return func(m *Model) { m.paste = read }
}

// WithLogger sets the logger for input and clipboard failures.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// New returns a model over h. The grid is sized from h's viewport until
// the terminal reports its size.
func New(h *memhost.Host, opts ...Option) *Model {
	vp := h.ViewportSize()
	m := &Model{
		host:   h,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		paste:  clipboard.ReadAll,
		logger: slog.Default(),
		cols:   int(vp.Width) / CellWidth,
		rows:   int(vp.Height)/CellHeight + 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts a full-screen program for h with mouse support and blocks
// until the user quits or ctx is cancelled.
func Run(ctx context.Context, h *memhost.Host, opts ...Option) error {
	p := tea.NewProgram(New(h, opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// Host returns the host being presented.
func (m *Model) Host() *memhost.Host { return m.host }

// Focused returns the text box being edited, or nil.
func (m *Model) Focused() host.Node {
	if m.focused != nil && m.focused.Destroyed() {
		m.focused = nil
	}
	return m.focused
}

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool { return m.quitting }

func frame() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return frame()
}

// Update handles one message.
//
// A panic while the host dispatches the message is reported through
// errors.ReportPanic and the program keeps running with the same model.
func (m *Model) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	model = m
	defer errors.Recover("termhost.Update")

	switch msg := msg.(type) {
	case frameMsg:
		cmd = frame()
		m.host.Step()
		return m, cmd
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// resize fits the viewport to the terminal, keeping the last row for help.
func (m *Model) resize(cols, rows int) {
	m.cols, m.rows = max(cols, 0), max(rows, 1)
	m.help.Width = m.cols
	m.host.SetViewportSize(graphics.Size{
		Width:  float64(m.cols * CellWidth),
		Height: float64((m.rows - 1) * CellHeight),
	})
}

// CellCenter returns the pixel at the center of cell (col, row).
func CellCenter(col, row int) graphics.Offset {
	return graphics.Offset{
		X: float64(col*CellWidth) + CellWidth/2,
		Y: float64(row*CellHeight) + CellHeight/2,
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := CellCenter(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		target := m.host.PressAt(pos)
		m.pressed = target
		if target != nil && target.Kind() == host.KindTextBox {
			m.focus(target)
		} else {
			m.blur(false)
		}
	case tea.MouseActionMotion:
		m.host.MovePointer(pos)
	case tea.MouseActionRelease:
		m.host.PointerUp(pos)
		pressed := m.pressed
		m.pressed = nil
		if pressed != nil && pressed.Kind().IsButton() && m.host.HitTest(pos) == pressed {
			m.host.Activate(pressed)
		}
	}
}

func (m *Model) focus(n host.Node) {
	if m.focused == n {
		return
	}
	m.blur(false)
	m.focused = n
}

// blur ends editing of the focused text box.
func (m *Model) blur(submitted bool) {
	n := m.Focused()
	if n == nil {
		return
	}
	m.focused = nil
	m.host.FocusLost(n, submitted)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}
	box := m.Focused()
	if box == nil {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return tea.Quit
		}
		return nil
	}

	text := host.String(box, host.Text)
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.blur(true)
	case key.Matches(msg, m.keys.Cancel):
		m.blur(false)
	case key.Matches(msg, m.keys.Backspace):
		if r := []rune(text); len(r) > 0 {
			m.host.SetText(box, string(r[:len(r)-1]))
		}
	case key.Matches(msg, m.keys.Paste):
		clip, err := m.paste()
		if err != nil {
			m.logger.Warn("clipboard read failed", "error", err)
			return nil
		}
		if clip = singleLine(clip); clip != "" {
			m.host.SetText(box, text+clip)
		}
	case msg.Type == tea.KeySpace:
		m.host.SetText(box, text+" ")
	case msg.Type == tea.KeyRunes:
		m.host.SetText(box, text+singleLine(string(msg.Runes)))
	}
	return nil
}

// singleLine drops line breaks so pasted text fits a one-line box.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
