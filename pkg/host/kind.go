package host

// Kind identifies the type of a display node.
type Kind string

const (
	// KindScreen is a display root. Surfaces and library roots are screens.
	KindScreen Kind = "Screen"
	// KindFrame is a plain rectangular container.
	KindFrame Kind = "Frame"
	// KindTextLabel displays non-interactive text.
	KindTextLabel Kind = "TextLabel"
	// KindTextButton displays text and raises Activated events.
	KindTextButton Kind = "TextButton"
	// KindTextBox is an editable single-line text field.
	KindTextBox Kind = "TextBox"
	// KindListLayout arranges its parent's children in a vertical stack.
	KindListLayout Kind = "ListLayout"
	// KindCorner rounds its parent's corners.
	KindCorner Kind = "Corner"
	// KindStroke outlines its parent.
	KindStroke Kind = "Stroke"
)

// IsGuiObject reports whether nodes of this kind occupy a rectangle on screen.
func (k Kind) IsGuiObject() bool {
	switch k {
	case KindFrame, KindTextLabel, KindTextButton, KindTextBox:
		return true
	}
	return false
}

// IsText reports whether nodes of this kind carry text.
func (k Kind) IsText() bool {
	switch k {
	case KindTextLabel, KindTextButton, KindTextBox:
		return true
	}
	return false
}

// IsButton reports whether nodes of this kind are clickable controls.
func (k Kind) IsButton() bool {
	return k == KindTextButton
}

// IsModifier reports whether nodes of this kind decorate or lay out their
// parent instead of drawing themselves.
func (k Kind) IsModifier() bool {
	switch k {
	case KindListLayout, KindCorner, KindStroke:
		return true
	}
	return false
}
