package memhost

import (
	"math"
	"sort"

	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
	"golang.org/x/image/font"
)

func (h *Host) viewportRect() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, h.viewport.Width, h.viewport.Height)
}

// absRect resolves the node's on-screen rectangle. Screens cover the
// viewport; modifiers report their parent's rectangle.
func (n *node) absRect() graphics.Rect {
	if n.kind == host.KindScreen {
		return n.h.viewportRect()
	}
	parentRect := n.h.viewportRect()
	if n.parent != nil {
		parentRect = n.parent.absRect()
	}
	if !n.kind.IsGuiObject() {
		return parentRect
	}
	parentSize := graphics.Size{Width: parentRect.Width(), Height: parentRect.Height()}
	size := n.resolvedSize(parentSize)

	if n.parent != nil && n.selfVisible() {
		if layout := n.parent.listLayout(); layout != nil {
			y := n.parent.flowOffset(n, layout, parentSize)
			return graphics.RectFromLTWH(parentRect.Left, parentRect.Top+y, size.Width, size.Height)
		}
	}
	var pos graphics.Offset
	if d, ok := n.props[host.Position].(host.Dim2); ok {
		pos = d.ResolveOffset(parentSize)
	}
	return graphics.RectFromLTWH(parentRect.Left+pos.X, parentRect.Top+pos.Y, size.Width, size.Height)
}

func (n *node) resolvedSize(parent graphics.Size) graphics.Size {
	if d, ok := n.props[host.Size].(host.Dim2); ok {
		return d.ResolveSize(parent)
	}
	return graphics.Size{}
}

func (n *node) selfVisible() bool {
	if v, ok := n.props[host.Visible].(bool); ok {
		return v
	}
	return true
}

func (n *node) listLayout() *node {
	for _, c := range n.children {
		if c.kind == host.KindListLayout {
			return c
		}
	}
	return nil
}

func (n *node) intProp(p host.Prop) int {
	if v, ok := n.props[p].(int); ok {
		return v
	}
	return 0
}

// flowChildren returns the visible GUI children of n in stack order.
func (n *node) flowChildren() []*node {
	var out []*node
	for _, c := range n.children {
		if c.kind.IsGuiObject() && c.selfVisible() {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := out[i].intProp(host.LayoutOrder), out[j].intProp(host.LayoutOrder)
		if oi != oj {
			return oi < oj
		}
		return out[i].seq < out[j].seq
	})
	return out
}

// flowOffset returns child's vertical offset inside n's stack.
func (n *node) flowOffset(child, layout *node, parentSize graphics.Size) float64 {
	padding, _ := layout.props[host.Padding].(float64)
	y := 0.0
	for _, c := range n.flowChildren() {
		if c == child {
			return y
		}
		y += c.resolvedSize(parentSize).Height + padding
	}
	return y
}

// ContentHeight returns the height a stack container needs for its visible
// children, including padding between them.
func ContentHeight(n host.Node) float64 {
	mn, ok := n.(*node)
	if !ok {
		return 0
	}
	layout := mn.listLayout()
	if layout == nil {
		return 0
	}
	r := mn.absRect()
	parentSize := graphics.Size{Width: r.Width(), Height: r.Height()}
	padding, _ := layout.props[host.Padding].(float64)
	total := 0.0
	children := mn.flowChildren()
	for i, c := range children {
		total += c.resolvedSize(parentSize).Height
		if i > 0 {
			total += padding
		}
	}
	return total
}

func (n *node) textFits() bool {
	text, _ := n.props[host.Text].(string)
	if text == "" {
		return true
	}
	lineHeight := n.h.lineHeight()
	if lineHeight <= 0 {
		return true
	}
	textSize := 14.0
	if v, ok := n.props[host.TextSize].(float64); ok && v > 0 {
		textSize = v
	}
	width := n.h.MeasureText(text, textSize)
	height := textSize

	r := n.absRect()
	const slack = 0.5
	wrapped, _ := n.props[host.TextWrapped].(bool)
	if !wrapped {
		return width <= r.Width()+slack && height <= r.Height()+slack
	}
	if r.Width() <= 0 {
		return false
	}
	lines := math.Ceil(width / r.Width())
	return lines*height <= r.Height()+slack
}

func (h *Host) lineHeight() float64 {
	return float64(h.face.Metrics().Height.Ceil())
}

// MeasureText returns the pixel width of text at the given size using the
// host's face.
func (h *Host) MeasureText(text string, textSize float64) float64 {
	lineHeight := h.lineHeight()
	if lineHeight <= 0 {
		return 0
	}
	return float64(font.MeasureString(h.face, text).Ceil()) * textSize / lineHeight
}
