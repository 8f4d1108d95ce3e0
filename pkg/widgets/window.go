package widgets

import (
	"github.com/go-drift/paneui/pkg/drag"
	"github.com/go-drift/paneui/pkg/errors"
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
)

// Window defaults.
const DefaultWindowTitle = "Window"

var (
	DefaultWindowSize     = graphics.Size{Width: 320, Height: 360}
	DefaultWindowPosition = graphics.Offset{X: 100, Y: 100}
)

// Chrome control geometry, measured from the titlebar's right edge.
const (
	chromeButtonWidth  = 26
	chromeButtonHeight = 22
	closeOffset        = -30
	minimizeOffset     = -60
	titleInset         = 8
)

// WindowOptions configures a new window. Zero fields take defaults.
type WindowOptions struct {
	Title string
	Size  graphics.Size
	// Position is the top-left corner relative to the parent. Nil means
	// DefaultWindowPosition.
	Position *graphics.Offset
}

func (o WindowOptions) withDefaults() WindowOptions {
	if o.Title == "" {
		o.Title = DefaultWindowTitle
	}
	if o.Size.Width <= 0 || o.Size.Height <= 0 {
		o.Size = DefaultWindowSize
	}
	if o.Position == nil {
		p := DefaultWindowPosition
		o.Position = &p
	}
	return o
}

// Window is a movable, closable, minimizable container with a body stack.
type Window struct {
	env   Env
	title string

	container  host.Node
	titlebar   host.Node
	titleLabel host.Node
	closeBtn   host.Node
	minBtn     host.Node
	body       host.Node
	layout     host.Node

	restored  graphics.Size
	minimized bool
	prior     map[host.Node]bool
	closed    bool

	drag     *drag.Controller
	sections []*Section
	onClose  []func(*Window)
	err      error
}

// NewWindow builds a window under parent. The window is only attached once
// its whole subtree has been built.
func NewWindow(env Env, parent host.Node, opts WindowOptions) (*Window, error) {
	opts = opts.withDefaults()
	th := env.theme()
	m := th.Metrics
	cs := th.ColorScheme
	b := &builder{env: env, op: "widgets.NewWindow"}

	w := &Window{env: env, title: opts.Title, restored: opts.Size, prior: make(map[host.Node]bool)}
	w.container = b.make(nil, host.KindFrame, host.Props{
		host.Name:             "Window",
		host.Position:         host.Px(opts.Position.X, opts.Position.Y),
		host.Size:             host.Px(opts.Size.Width, opts.Size.Height),
		host.BackgroundColor:  cs.Surface,
		host.ClipsDescendants: true,
	})
	b.make(w.container, host.KindCorner, host.Props{host.Name: "Corner", host.CornerRadius: m.CornerRadius})
	b.make(w.container, host.KindStroke, host.Props{host.Name: "Stroke", host.Thickness: 1.0, host.Color: cs.Outline})

	w.titlebar = b.make(w.container, host.KindFrame, host.Props{
		host.Name:            "Titlebar",
		host.Size:            host.D2(1, 0, 0, m.TitlebarHeight),
		host.BackgroundColor: cs.Titlebar,
		host.Active:          true,
	})
	w.titleLabel = b.make(w.titlebar, host.KindTextLabel, host.Props{
		host.Name:                   "Title",
		host.Position:               host.Px(titleInset, 0),
		host.Size:                   host.D2(1, minimizeOffset-titleInset, 1, 0),
		host.BackgroundTransparency: 1.0,
		host.Text:                   opts.Title,
		host.TextColor:              cs.OnSurface,
		host.TextSize:               m.TextSize,
		host.TextXAlignment:         host.AlignLeft,
	})
	buttonY := graphics.RoundHalfUp((m.TitlebarHeight - chromeButtonHeight) / 2)
	w.minBtn = b.make(w.titlebar, host.KindTextButton, host.Props{
		host.Name:            "Minimize",
		host.Position:        host.D2(1, minimizeOffset, 0, buttonY),
		host.Size:            host.Px(chromeButtonWidth, chromeButtonHeight),
		host.BackgroundColor: cs.Control,
		host.Text:            "-",
		host.TextColor:       cs.OnSurface,
		host.TextSize:        m.TextSize,
	})
	w.closeBtn = b.make(w.titlebar, host.KindTextButton, host.Props{
		host.Name:            "Close",
		host.Position:        host.D2(1, closeOffset, 0, buttonY),
		host.Size:            host.Px(chromeButtonWidth, chromeButtonHeight),
		host.BackgroundColor: cs.Danger,
		host.Text:            "X",
		host.TextColor:       cs.OnPrimary,
		host.TextSize:        m.TextSize,
	})

	w.body = b.make(w.container, host.KindFrame, host.Props{
		host.Name:                   "Body",
		host.Position:               host.Px(0, m.TitlebarHeight),
		host.Size:                   host.D2(1, 0, 1, -m.TitlebarHeight),
		host.BackgroundTransparency: 1.0,
		host.ClipsDescendants:       true,
	})
	w.layout = b.make(w.body, host.KindListLayout, host.Props{host.Name: "ListLayout", host.Padding: m.Padding})

	if b.err != nil {
		if w.container != nil {
			w.container.Destroy()
		}
		return nil, b.err
	}
	if err := w.container.SetParent(parent); err != nil {
		w.container.Destroy()
		return nil, &errors.UIError{Op: "widgets.NewWindow", Kind: errors.KindHost, Node: host.Path(parent), Err: err}
	}

	on(w.closeBtn, host.EventActivated, func(host.Event) { w.Close() })
	on(w.minBtn, host.EventActivated, func(host.Event) { w.ToggleMinimize() })
	on(w.container, host.EventDestroying, func(host.Event) { w.markClosed() })
	w.drag = drag.NewWindowDrag(env.Host, w.titlebar, w.container, nil)

	env.logger().Debug("window created", "title", w.title, "path", host.Path(w.container))
	return w, nil
}

// Title returns the title text.
func (w *Window) Title() string { return w.title }

// SetTitle replaces the title text.
func (w *Window) SetTitle(title string) {
	w.title = title
	set(w.titleLabel, host.Text, title)
}

// Position returns the window's on-screen top-left corner.
func (w *Window) Position() graphics.Offset {
	if w.closed {
		return graphics.Offset{}
	}
	return host.AbsolutePositionOf(w.container)
}

// Size returns the window's current on-screen size, which is the titlebar
// height while minimized.
func (w *Window) Size() graphics.Size {
	if w.closed {
		return graphics.Size{}
	}
	return host.AbsoluteSizeOf(w.container)
}

// RestoredSize returns the size the window returns to when un-minimized.
func (w *Window) RestoredSize() graphics.Size { return w.restored }

// MoveTo places the window at pos, rounded to whole pixels and kept inside
// the viewport.
func (w *Window) MoveTo(pos graphics.Offset) {
	if w.closed {
		return
	}
	target := drag.WindowPosition(pos, graphics.Offset{}, w.Size(), w.env.Host.ViewportSize())
	origin := graphics.Offset{}
	if p := w.container.Parent(); p != nil {
		origin = host.AbsolutePositionOf(p)
	}
	local := target.Sub(origin)
	set(w.container, host.Position, host.Px(local.X, local.Y))
}

// Minimized reports whether the body is collapsed.
func (w *Window) Minimized() bool { return w.minimized }

// Closed reports whether the window has been destroyed.
func (w *Window) Closed() bool { return w.closed }

// Err returns the first failure recorded while adding content.
func (w *Window) Err() error { return w.err }

// Container returns the window's root node.
func (w *Window) Container() host.Node { return w.container }

// Titlebar returns the drag handle.
func (w *Window) Titlebar() host.Node { return w.titlebar }

// Body returns the stack that holds sections.
func (w *Window) Body() host.Node { return w.body }

// CloseButton returns the close control.
func (w *Window) CloseButton() host.Node { return w.closeBtn }

// MinimizeButton returns the minimize control.
func (w *Window) MinimizeButton() host.Node { return w.minBtn }

// Drag returns the titlebar drag controller.
func (w *Window) Drag() *drag.Controller { return w.drag }

// Sections returns the sections in stacking order.
func (w *Window) Sections() []*Section {
	out := make([]*Section, len(w.sections))
	copy(out, w.sections)
	return out
}

// OnClose registers fn to run once when the window is closed, whether by
// its close control, Close, or destruction of an ancestor. The returned
// func removes the registration.
func (w *Window) OnClose(fn func(*Window)) func() {
	w.onClose = append(w.onClose, fn)
	idx := len(w.onClose) - 1
	return func() {
		if idx < len(w.onClose) {
			w.onClose[idx] = nil
		}
	}
}

// Close destroys the window subtree. Closing twice is a no-op.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.container.Destroy()
	w.markClosed()
}

func (w *Window) markClosed() {
	if w.closed {
		return
	}
	w.closed = true
	w.drag.Dispose()
	clear(w.prior)
	p := path(w.container)
	w.env.logger().Debug("window closed", "title", w.title, "path", p)
	hooks := w.onClose
	w.onClose = nil
	for _, fn := range hooks {
		if fn != nil {
			errors.Guard(p, "OnClose", func() { fn(w) })
		}
	}
}

// ToggleMinimize collapses the window to its titlebar or restores it.
// Minimizing hides every body child except the layout and remembers each
// child's visibility; restoring reapplies it together with the cached size.
func (w *Window) ToggleMinimize() {
	if w.closed {
		return
	}
	w.minimized = !w.minimized
	m := w.env.theme().Metrics
	if w.minimized {
		for _, c := range w.body.Children() {
			if !c.Kind().IsGuiObject() {
				continue
			}
			w.prior[c] = host.Bool(c, host.Visible, true)
			set(c, host.Visible, false)
		}
		set(w.container, host.Size, host.Px(w.restored.Width, m.TitlebarHeight))
		return
	}
	for c, visible := range w.prior {
		set(c, host.Visible, visible)
	}
	clear(w.prior)
	set(w.container, host.Size, host.Px(w.restored.Width, w.restored.Height))
}

// AddSection appends a labeled section to the body stack. Sections stack in
// call order. On a closed window the section is built detached and Err
// reports ErrWindowClosed.
func (w *Window) AddSection(name string) *Section {
	parent := w.body
	if w.closed {
		parent = nil
		if w.err == nil {
			w.err = ErrWindowClosed
		}
		w.env.logger().Debug("section added to closed window", "window", w.title, "section", name)
	}
	s := newSection(w.env, w, parent, name, len(w.sections))
	if w.minimized && s.frame != nil {
		w.prior[s.frame] = true
		set(s.frame, host.Visible, false)
	}
	w.sections = append(w.sections, s)
	return s
}
