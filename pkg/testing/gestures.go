package testing

import (
	"fmt"

	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/host/memhost"
)

// dragSteps is the number of move events emitted per simulated drag.
const dragSteps = 5

// Tap presses and releases at the center of the first node matched by
// finder. The node must be the one hit there, or contain it; a tap that
// lands on something else, such as an overlapping window, is an error.
func (t *Tester) Tap(finder Finder) error {
	target, err := t.locate("Tap", finder)
	if err != nil {
		return err
	}
	center := memhost.Center(target)
	hit := t.host.HitTest(center)
	if hit == nil {
		return fmt.Errorf("Tap: %s is not hittable at (%g, %g)", host.Path(target), center.X, center.Y)
	}
	if !contains(target, hit) {
		return fmt.Errorf("Tap: %s is covered by %s at (%g, %g)", host.Path(target), host.Path(hit), center.X, center.Y)
	}
	t.host.Click(center)
	return nil
}

// TapAt presses and releases at pos. It returns the node that was pressed,
// or nil if nothing accepted input there.
func (t *Tester) TapAt(pos graphics.Offset) host.Node {
	return t.host.Click(pos)
}

// Press starts a pointer press at pos.
func (t *Tester) Press(pos graphics.Offset) host.Node {
	t.pressed = true
	return t.host.PressAt(pos)
}

// MoveTo moves the pointer to pos.
func (t *Tester) MoveTo(pos graphics.Offset) {
	t.host.MovePointer(pos)
}

// Release ends a press at pos.
func (t *Tester) Release(pos graphics.Offset) {
	t.pressed = false
	t.host.PointerUp(pos)
}

// DragFrom presses at start, moves by delta in evenly spaced steps, and
// releases at the end point. It fails if nothing accepts the press.
func (t *Tester) DragFrom(start, delta graphics.Offset) error {
	if t.Press(start) == nil {
		t.Release(start)
		return fmt.Errorf("DragFrom: nothing hittable at (%g, %g)", start.X, start.Y)
	}
	end := start.Add(delta)
	for i := 1; i <= dragSteps; i++ {
		frac := float64(i) / dragSteps
		t.MoveTo(graphics.Offset{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac})
	}
	t.Release(end)
	return nil
}

// DragTo drags the first node matched by finder from its center to dest.
func (t *Tester) DragTo(finder Finder, dest graphics.Offset) error {
	target, err := t.locate("DragTo", finder)
	if err != nil {
		return err
	}
	start := memhost.Center(target)
	return t.DragFrom(start, dest.Sub(start))
}

// TypeText appends text to the first text box matched by finder, one rune
// at a time, raising a text change per rune.
func (t *Tester) TypeText(finder Finder, text string) error {
	box, err := t.textBox("TypeText", finder)
	if err != nil {
		return err
	}
	current := host.String(box, host.Text)
	for _, r := range text {
		current += string(r)
		t.host.SetText(box, current)
	}
	return nil
}

// Submit ends editing of the matched text box with an explicit confirm.
func (t *Tester) Submit(finder Finder) error {
	box, err := t.textBox("Submit", finder)
	if err != nil {
		return err
	}
	t.host.FocusLost(box, true)
	return nil
}

// Cancel ends editing of the matched text box without confirming.
func (t *Tester) Cancel(finder Finder) error {
	box, err := t.textBox("Cancel", finder)
	if err != nil {
		return err
	}
	t.host.FocusLost(box, false)
	return nil
}

func (t *Tester) locate(op string, finder Finder) (host.Node, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return nil, fmt.Errorf("%s: %w", op, result.Err())
	}
	return result.First(), nil
}

func (t *Tester) textBox(op string, finder Finder) (host.Node, error) {
	n, err := t.locate(op, finder)
	if err != nil {
		return nil, err
	}
	if n.Kind() != host.KindTextBox {
		return nil, fmt.Errorf("%s: %s is a %s, not a %s", op, host.Path(n), n.Kind(), host.KindTextBox)
	}
	return n, nil
}

// contains reports whether n is ancestor or n itself.
func contains(ancestor, n host.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == ancestor {
			return true
		}
	}
	return false
}
