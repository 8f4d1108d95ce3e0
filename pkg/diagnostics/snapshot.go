package diagnostics

import (
	"encoding/json"
	"math"

	"github.com/go-drift/paneui/pkg/host"
)

// TreeNode is a JSON-friendly copy of one node and its subtree.
type TreeNode struct {
	Kind     string     `json:"kind"`
	Name     string     `json:"name,omitempty"`
	Path     string     `json:"path"`
	Position SafeOffset `json:"position"`
	Size     SafeSize   `json:"size"`
	Visible  bool       `json:"visible"`
	Active   bool       `json:"active,omitempty"`
	Text     string     `json:"text,omitempty"`
	Children []TreeNode `json:"children,omitempty"`
}

// SafeFloat wraps a float64 so Inf and NaN survive JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SafeSize is a JSON-safe size.
type SafeSize struct {
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

// SafeOffset is a JSON-safe position.
type SafeOffset struct {
	X SafeFloat `json:"x"`
	Y SafeFloat `json:"y"`
}

// Snapshot copies root and its subtree. A nil or destroyed root yields nil.
func Snapshot(root host.Node) *TreeNode {
	if root == nil || root.Destroyed() {
		return nil
	}
	t := snapshot(root)
	return &t
}

func snapshot(n host.Node) TreeNode {
	pos := host.AbsolutePositionOf(n)
	size := host.AbsoluteSizeOf(n)
	t := TreeNode{
		Kind:     string(n.Kind()),
		Name:     n.Name(),
		Path:     host.Path(n),
		Position: SafeOffset{X: SafeFloat(pos.X), Y: SafeFloat(pos.Y)},
		Size:     SafeSize{Width: SafeFloat(size.Width), Height: SafeFloat(size.Height)},
		Visible:  host.Bool(n, host.Visible, true),
		Active:   host.Bool(n, host.Active, false),
	}
	if n.Kind().IsText() {
		t.Text = host.String(n, host.Text)
	}
	for _, c := range n.Children() {
		t.Children = append(t.Children, snapshot(c))
	}
	return t
}

// MarshalIndent encodes a snapshot of root as indented JSON.
func MarshalIndent(root host.Node) ([]byte, error) {
	return json.MarshalIndent(Snapshot(root), "", "  ")
}
