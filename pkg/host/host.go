package host

import (
	stderrors "errors"
	"strings"

	"github.com/go-drift/paneui/pkg/graphics"
)

var (
	// ErrDestroyed is returned when operating on a destroyed node.
	ErrDestroyed = stderrors.New("host: node destroyed")
	// ErrCycle is returned when parenting would create a cycle.
	ErrCycle = stderrors.New("host: parenting would create a cycle")
	// ErrReadOnly is the cause of PropertyErrors for host-computed properties.
	ErrReadOnly = stderrors.New("host: property is read-only")
)

// EventType identifies an input or lifecycle event.
type EventType int

const (
	// EventActivated fires when a button-like node is clicked or tapped.
	EventActivated EventType = iota
	// EventPointerDown fires on the node under the pointer when a press starts.
	EventPointerDown
	// EventFocusLost fires when a text box stops being edited.
	EventFocusLost
	// EventTextChanged fires on every edit of a text box.
	EventTextChanged
	// EventDestroying fires on a node right before it is destroyed.
	EventDestroying
	// EventPointerMove is a host-level event for every pointer motion sample.
	EventPointerMove
	// EventPointerUp is a host-level event fired when a press ends anywhere.
	EventPointerUp
)

func (t EventType) String() string {
	switch t {
	case EventActivated:
		return "activated"
	case EventPointerDown:
		return "pointer_down"
	case EventFocusLost:
		return "focus_lost"
	case EventTextChanged:
		return "text_changed"
	case EventDestroying:
		return "destroying"
	case EventPointerMove:
		return "pointer_move"
	case EventPointerUp:
		return "pointer_up"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers.
type Event struct {
	Type EventType
	// Node is the target node for node-level events.
	Node Node
	// Position is the pointer position in viewport pixels.
	Position graphics.Offset
	// Submitted is true for a FocusLost caused by an explicit confirm.
	Submitted bool
	// Text is the current text for text events.
	Text string
}

// Node is a single visual element in the host's display tree.
type Node interface {
	// ID returns a host-unique identifier.
	ID() string
	// Kind returns the node kind fixed at creation.
	Kind() Kind
	// Name returns the Name property.
	Name() string
	// Get reads a property. The boolean is false when the property has never
	// been set and the host has no default for it.
	Get(p Prop) (any, bool)
	// Set writes a property.
	Set(p Prop, v any) error
	// Parent returns the parent node or nil.
	Parent() Node
	// SetParent attaches the node under parent. A nil parent detaches it.
	SetParent(parent Node) error
	// Children returns a snapshot of the direct children in creation order.
	Children() []Node
	// Destroy removes the node and its subtree. Destroy is idempotent.
	Destroy()
	// Destroyed reports whether Destroy has been called.
	Destroyed() bool
	// Subscribe registers fn for node-level events of type t.
	Subscribe(t EventType, fn func(Event)) (unsubscribe func())
}

// Host creates nodes and delivers input.
type Host interface {
	// NewNode creates an unattached node.
	NewNode(kind Kind) (Node, error)
	// GlobalSurface returns the shared display surface. It always exists.
	GlobalSurface() Node
	// PointerPosition returns the last known pointer position.
	PointerPosition() graphics.Offset
	// ViewportSize returns the size of the display.
	ViewportSize() graphics.Size
	// Subscribe registers fn for host-level events (pointer move/up).
	Subscribe(t EventType, fn func(Event)) (unsubscribe func())
}

// SessionResolver supplies the live per-user display surface, if any.
type SessionResolver interface {
	UserSurface() (Node, bool)
}

// Path returns the dot-separated names from the topmost ancestor to n.
func Path(n Node) string {
	if n == nil {
		return "<nil>"
	}
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent() {
		name := cur.Name()
		if name == "" {
			name = string(cur.Kind())
		}
		parts = append(parts, name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// Walk visits n and its descendants depth-first in pre-order. Returning
// false from visit skips the node's subtree.
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, visit)
	}
}

// CountDescendants returns the number of nodes below n.
func CountDescendants(n Node) int {
	count := -1
	Walk(n, func(Node) bool {
		count++
		return true
	})
	if count < 0 {
		return 0
	}
	return count
}

// Descendants returns every node below n in depth-first order.
func Descendants(n Node) []Node {
	var out []Node
	Walk(n, func(d Node) bool {
		if d != n {
			out = append(out, d)
		}
		return true
	})
	return out
}

// FindFirstChild returns the first direct child named name.
func FindFirstChild(n Node, name string) Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// FindChildOfKind returns the first direct child of the given kind.
func FindChildOfKind(n Node, kind Kind) Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// Bool reads a bool property, returning def when unset or mistyped.
func Bool(n Node, p Prop, def bool) bool {
	if v, ok := n.Get(p); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Float reads a float property, returning def when unset or mistyped.
func Float(n Node, p Prop, def float64) float64 {
	if v, ok := n.Get(p); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

// String reads a string property, returning "" when unset.
func String(n Node, p Prop) string {
	if v, ok := n.Get(p); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Dim2Of reads a Dim2 property.
func Dim2Of(n Node, p Prop) (Dim2, bool) {
	if v, ok := n.Get(p); ok {
		d, ok := v.(Dim2)
		return d, ok
	}
	return Dim2{}, false
}

// AbsolutePositionOf returns the node's on-screen origin.
func AbsolutePositionOf(n Node) graphics.Offset {
	if v, ok := n.Get(AbsolutePosition); ok {
		if o, ok := v.(graphics.Offset); ok {
			return o
		}
	}
	return graphics.Offset{}
}

// AbsoluteSizeOf returns the node's on-screen size.
func AbsoluteSizeOf(n Node) graphics.Size {
	if v, ok := n.Get(AbsoluteSize); ok {
		if s, ok := v.(graphics.Size); ok {
			return s
		}
	}
	return graphics.Size{}
}
