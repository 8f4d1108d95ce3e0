package memhost

import (
	"sort"

	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
)

func (n *node) deliverable() bool {
	if n.destroyed || !n.visibleChain() {
		return false
	}
	if !n.kind.IsGuiObject() {
		return true
	}
	active, _ := n.Get(host.Active)
	b, _ := active.(bool)
	return b
}

func toNode(n host.Node) *node {
	mn, _ := n.(*node)
	return mn
}

// paintOrder returns the children of n sorted by ZIndex, then creation.
func (n *node) paintOrder() []*node {
	out := append([]*node(nil), n.children...)
	sort.SliceStable(out, func(i, j int) bool {
		zi, zj := out[i].zIndex(), out[j].zIndex()
		if zi != zj {
			return zi < zj
		}
		return out[i].seq < out[j].seq
	})
	return out
}

func (n *node) zIndex() int {
	if v, ok := n.props[host.ZIndex].(int); ok {
		return v
	}
	return 1
}

// Paint visits every visible GUI node in back-to-front order with its
// absolute bounds and the clip rectangle inherited from its ancestors.
func (h *Host) Paint(visit func(n host.Node, bounds, clip graphics.Rect)) {
	for _, s := range h.Surfaces() {
		h.paint(toNode(s), h.viewportRect(), visit)
	}
}

func (h *Host) paint(n *node, clip graphics.Rect, visit func(host.Node, graphics.Rect, graphics.Rect)) {
	if n == nil || !n.selfVisible() || clip.IsEmpty() {
		return
	}
	if n.kind.IsGuiObject() {
		bounds := n.absRect()
		visit(n, bounds, clip)
		if clips, _ := n.props[host.ClipsDescendants].(bool); clips {
			clip = clip.Intersect(bounds)
		}
	}
	for _, c := range n.paintOrder() {
		h.paint(c, clip, visit)
	}
}

// HitTest returns the topmost active, visible node containing pos.
func (h *Host) HitTest(pos graphics.Offset) host.Node {
	var hit host.Node
	h.Paint(func(n host.Node, bounds, clip graphics.Rect) {
		if !bounds.Intersect(clip).Contains(pos) {
			return
		}
		if toNode(n).deliverable() {
			hit = n
		}
	})
	return hit
}

// PointerDown delivers a press at pos to target.
func (h *Host) PointerDown(target host.Node, pos graphics.Offset) {
	h.pointer = pos
	n := toNode(target)
	if n == nil || !n.deliverable() {
		return
	}
	n.listeners.dispatch(host.Event{Type: host.EventPointerDown, Node: n, Position: pos})
}

// PressAt hit-tests pos and delivers a press to the node found there.
func (h *Host) PressAt(pos graphics.Offset) host.Node {
	hit := h.HitTest(pos)
	if hit == nil {
		h.pointer = pos
		return nil
	}
	h.PointerDown(hit, pos)
	return hit
}

// MovePointer moves the pointer and raises a host-level move event.
func (h *Host) MovePointer(pos graphics.Offset) {
	h.pointer = pos
	h.listeners.dispatch(host.Event{Type: host.EventPointerMove, Position: pos})
}

// PointerUp ends a press and raises a host-level up event.
func (h *Host) PointerUp(pos graphics.Offset) {
	h.pointer = pos
	h.listeners.dispatch(host.Event{Type: host.EventPointerUp, Position: pos})
}

// Activate raises an Activated event on target if it accepts input.
func (h *Host) Activate(target host.Node) bool {
	n := toNode(target)
	if n == nil || !n.deliverable() {
		return false
	}
	n.listeners.dispatch(host.Event{Type: host.EventActivated, Node: n, Position: h.pointer})
	return true
}

// Click presses and releases at pos, activating the pressed node when it
// is a button. It returns the pressed node.
func (h *Host) Click(pos graphics.Offset) host.Node {
	target := h.PressAt(pos)
	h.PointerUp(pos)
	if target != nil && target.Kind().IsButton() {
		h.Activate(target)
	}
	return target
}

// SetText replaces a text box's content as if typed and raises TextChanged.
func (h *Host) SetText(target host.Node, text string) {
	n := toNode(target)
	if n == nil || n.destroyed {
		return
	}
	n.props[host.Text] = text
	n.listeners.dispatch(host.Event{Type: host.EventTextChanged, Node: n, Text: text})
}

// FocusLost ends editing of a text box. submitted reports whether editing
// ended with an explicit confirm.
func (h *Host) FocusLost(target host.Node, submitted bool) {
	n := toNode(target)
	if n == nil || n.destroyed {
		return
	}
	text, _ := n.props[host.Text].(string)
	n.listeners.dispatch(host.Event{Type: host.EventFocusLost, Node: n, Submitted: submitted, Text: text})
}

// Center returns the center of a node's on-screen rectangle.
func Center(n host.Node) graphics.Offset {
	pos := host.AbsolutePositionOf(n)
	size := host.AbsoluteSizeOf(n)
	return graphics.Offset{X: pos.X + size.Width/2, Y: pos.Y + size.Height/2}
}
