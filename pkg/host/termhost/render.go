package termhost

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
)

var (
	defaultBackground = graphics.RGB(255, 255, 255)
	defaultText       = graphics.RGB(0, 0, 0)
	placeholderText   = graphics.RGB(128, 128, 128)
)

// cell is one character position. A zero rune marks the right half of a
// wide character.
type cell struct {
	r     rune
	fg    graphics.Color
	bg    graphics.Color
	hasBg bool
}

func (c cell) style() lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(opaqueHex(c.fg)))
	if c.hasBg {
		s = s.Background(lipgloss.Color(opaqueHex(c.bg)))
	}
	return s
}

func opaqueHex(c graphics.Color) string {
	r, g, b, _ := c.Components()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// grid is a frame of cells.
type grid struct {
	cols, rows int
	cells      []cell
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: max(cols, 0), rows: max(rows, 0)}
	g.cells = make([]cell, g.cols*g.rows)
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', fg: defaultText}
	}
	return g
}

func (g *grid) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// span returns the cells whose centers fall inside r.
func span(r graphics.Rect) (c0, c1, r0, r1 int) {
	c0 = int(math.Ceil(r.Left/CellWidth - 0.5))
	c1 = int(math.Ceil(r.Right/CellWidth - 0.5))
	r0 = int(math.Ceil(r.Top/CellHeight - 0.5))
	r1 = int(math.Ceil(r.Bottom/CellHeight - 0.5))
	return
}

// paint draws one node clipped to clip.
func (g *grid) paint(n host.Node, bounds, clip graphics.Rect) {
	visible := bounds.Intersect(clip)
	if visible.IsEmpty() {
		return
	}
	c0, c1, r0, r1 := span(visible)
	if c1 <= c0 || r1 <= r0 {
		return
	}

	if transparency := host.Float(n, host.BackgroundTransparency, 0); transparency < 1 {
		color := defaultBackground
		if v, ok := n.Get(host.BackgroundColor); ok {
			color, _ = v.(graphics.Color)
		}
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				c := g.at(col, row)
				if c == nil {
					continue
				}
				if c.hasBg {
					c.bg = c.bg.Lerp(color, 1-transparency)
				} else {
					c.bg = color
				}
				c.hasBg = true
				c.r = ' '
			}
		}
	}

	if n.Kind().IsText() {
		g.text(n, bounds, c0, c1, r0, r1)
	}
}

// text writes n's text on the middle row of its bounds, aligned within the
// visible columns.
func (g *grid) text(n host.Node, bounds graphics.Rect, c0, c1, r0, r1 int) {
	text := host.String(n, host.Text)
	fg := defaultText
	if v, ok := n.Get(host.TextColor); ok {
		fg, _ = v.(graphics.Color)
	}
	if text == "" && n.Kind() == host.KindTextBox {
		text = host.String(n, host.PlaceholderText)
		fg = placeholderText
	}
	if text == "" {
		return
	}
	row := int((bounds.Top + bounds.Height()/2) / CellHeight)
	if row < r0 || row >= r1 {
		return
	}
	width := c1 - c0
	text = runewidth.Truncate(text, width, "…")
	pad := 0
	align, _ := n.Get(host.TextXAlignment)
	switch align {
	case host.AlignLeft:
	case host.AlignRight:
		pad = width - runewidth.StringWidth(text)
	default:
		pad = (width - runewidth.StringWidth(text)) / 2
	}

	col := c0 + pad
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c := g.at(col, row); c != nil {
			c.r, c.fg = r, fg
		}
		if w == 2 {
			if c := g.at(col+1, row); c != nil {
				c.r, c.fg = 0, fg
			}
		}
		col += w
	}
}

// String renders the grid, styling runs of cells that share colors.
func (g *grid) String() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var cur cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(cur.style().Render(run.String()))
			run.Reset()
		}
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			if c.r == 0 {
				continue
			}
			if run.Len() > 0 && (c.fg != cur.fg || c.bg != cur.bg || c.hasBg != cur.hasBg) {
				flush()
			}
			cur = c
			run.WriteRune(c.r)
		}
		flush()
	}
	return b.String()
}

// Plain returns the grid's characters without styling, one line per row.
func (g *grid) Plain() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			if r := g.cells[row*g.cols+col].r; r != 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// draw paints the host tree into a fresh grid.
func (m *Model) draw() *grid {
	g := newGrid(m.cols, m.rows-1)
	m.host.Paint(g.paint)
	if box := m.Focused(); box != nil {
		g.cursor(box)
	}
	return g
}

// cursor marks the end of the focused text box's text.
func (g *grid) cursor(box host.Node) {
	pos := host.AbsolutePositionOf(box)
	size := host.AbsoluteSizeOf(box)
	bounds := graphics.RectFromLTWH(pos.X, pos.Y, size.Width, size.Height)
	c0, c1, _, _ := span(bounds)
	row := int((bounds.Top + bounds.Height()/2) / CellHeight)
	col := min(c0+runewidth.StringWidth(host.String(box, host.Text)), c1-1)
	if c := g.at(col, row); c != nil && c.r == ' ' {
		c.r = '▏'
	}
}

// View renders the tree and a help line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.draw().String() + "\n" + m.help.View(m.keys)
}

// Plain renders the tree as unstyled text. It is meant for tests and logs.
func (m *Model) Plain() string {
	return m.draw().Plain()
}
