package memhost

import (
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
	"github.com/google/uuid"
)

var _ host.Node = (*node)(nil)

type node struct {
	h         *Host
	id        string
	kind      host.Kind
	seq       uint64
	props     map[host.Prop]any
	parent    *node
	children  []*node
	destroyed bool
	listeners listenerSet
}

func (h *Host) alloc(kind host.Kind) *node {
	h.seq++
	return &node{
		h:     h,
		id:    uuid.NewString(),
		kind:  kind,
		seq:   h.seq,
		props: make(map[host.Prop]any),
	}
}

// defaults are reported by Get for properties that were never set.
func defaultFor(kind host.Kind, p host.Prop) (any, bool) {
	switch p {
	case host.Visible:
		return true, true
	case host.Active:
		return kind == host.KindTextButton || kind == host.KindTextBox, kind.IsGuiObject()
	case host.AutoButtonColor:
		return true, kind == host.KindTextButton
	case host.BackgroundTransparency:
		return 0.0, kind.IsGuiObject()
	case host.ClipsDescendants:
		return false, kind.IsGuiObject()
	case host.TextWrapped:
		return false, kind.IsText()
	case host.ZIndex:
		return 1, kind.IsGuiObject() || kind == host.KindScreen
	case host.LayoutOrder:
		return 0, kind.IsGuiObject()
	case host.TextSize:
		return 14.0, kind.IsText()
	case host.Text:
		return "", kind.IsText()
	case host.Padding:
		return 0.0, kind == host.KindListLayout
	}
	return nil, false
}

func (n *node) ID() string      { return n.id }
func (n *node) Kind() host.Kind { return n.kind }

func (n *node) Name() string {
	if s, ok := n.props[host.Name].(string); ok {
		return s
	}
	return ""
}

func (n *node) Get(p host.Prop) (any, bool) {
	switch p {
	case host.AbsolutePosition:
		if !n.kind.IsGuiObject() && n.kind != host.KindScreen {
			return nil, false
		}
		r := n.absRect()
		return graphics.Offset{X: r.Left, Y: r.Top}, true
	case host.AbsoluteSize:
		if !n.kind.IsGuiObject() && n.kind != host.KindScreen {
			return nil, false
		}
		r := n.absRect()
		return graphics.Size{Width: r.Width(), Height: r.Height()}, true
	case host.TextFits:
		if !n.kind.IsText() {
			return nil, false
		}
		return n.textFits(), true
	}
	if v, ok := n.props[p]; ok {
		return v, true
	}
	return defaultFor(n.kind, p)
}

func (n *node) Set(p host.Prop, v any) error {
	if n.destroyed {
		return host.ErrDestroyed
	}
	canonical, err := n.h.schema.Validate(n.kind, p, v)
	if err != nil {
		return err
	}
	n.props[p] = canonical
	return nil
}

// SetUnchecked stores a value without schema validation. Hosts use it for
// values that arrive from a foreign engine; tests use it to build malformed
// trees for diagnostics.
func SetUnchecked(n host.Node, p host.Prop, v any) {
	if mn, ok := n.(*node); ok && !mn.destroyed {
		mn.props[p] = v
	}
}

func (n *node) Parent() host.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) SetParent(parent host.Node) error {
	if n.destroyed {
		return host.ErrDestroyed
	}
	var p *node
	if parent != nil {
		var ok bool
		p, ok = parent.(*node)
		if !ok || p.h != n.h {
			return &foreignNodeError{}
		}
		if p.destroyed {
			return host.ErrDestroyed
		}
		for cur := p; cur != nil; cur = cur.parent {
			if cur == n {
				return host.ErrCycle
			}
		}
	}
	n.detach()
	n.parent = p
	if p != nil {
		p.children = append(p.children, n)
	}
	return nil
}

func (n *node) detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

func (n *node) Children() []host.Node {
	out := make([]host.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) Destroy() {
	if n.destroyed {
		return
	}
	n.listeners.dispatch(host.Event{Type: host.EventDestroying, Node: n})
	for _, c := range append([]*node(nil), n.children...) {
		c.Destroy()
	}
	n.detach()
	n.destroyed = true
	n.children = nil
	n.listeners.clear()
}

func (n *node) Destroyed() bool {
	return n.destroyed
}

func (n *node) Subscribe(t host.EventType, fn func(host.Event)) func() {
	if n.destroyed {
		return func() {}
	}
	return n.listeners.add(t, fn)
}

// visibleChain reports whether n and every ancestor are visible.
func (n *node) visibleChain() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if v, ok := cur.Get(host.Visible); ok {
			if b, _ := v.(bool); !b {
				return false
			}
		}
	}
	return true
}

// ListenerCount returns the number of live node-level and host-level
// subscriptions under the given node. Used to assert teardown.
func (h *Host) ListenerCount(root host.Node) int {
	total := h.listeners.count()
	host.Walk(root, func(n host.Node) bool {
		if mn, ok := n.(*node); ok {
			total += mn.listeners.count()
		}
		return true
	})
	return total
}

type foreignNodeError struct{}

func (*foreignNodeError) Error() string {
	return "memhost: parent belongs to a different host"
}
