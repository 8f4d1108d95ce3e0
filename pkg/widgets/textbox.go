package widgets

import "github.com/go-drift/paneui/pkg/host"

// Textbox is a labeled single-line text input.
type Textbox struct {
	label       string
	placeholder string
	text        string
	node        host.Node
	input       host.Node
	onSubmit    func(string)
	submits     int
}

// AddTextbox appends a text input. onSubmit receives the text only when
// editing ends with an explicit confirm; keystrokes and cancels never call
// it. The placeholder is shown while the input is empty and is never
// submitted.
func (s *Section) AddTextbox(label, placeholder string, onSubmit func(string)) *Textbox {
	th := s.env.theme()
	m := th.Metrics
	b := s.newBuilder("Textbox")
	tb := &Textbox{label: label, placeholder: placeholder, onSubmit: onSubmit}

	tb.node = b.make(s.rowParent(), host.KindFrame, s.rowProps(host.KindFrame, label))
	b.make(tb.node, host.KindTextLabel, host.Props{
		host.Name:                   "Label",
		host.Size:                   host.D2(0, labelWidth-m.Padding, 1, 0),
		host.BackgroundTransparency: 1.0,
		host.Text:                   label,
		host.TextColor:              th.ColorScheme.OnSurface,
		host.TextSize:               m.TextSize,
		host.TextXAlignment:         host.AlignLeft,
	})
	tb.input = b.make(tb.node, host.KindTextBox, host.Props{
		host.Name:            "Input",
		host.Position:        host.Px(labelWidth, 2),
		host.Size:            host.D2(1, -labelWidth, 1, -4),
		host.BackgroundColor: th.ColorScheme.Control,
		host.PlaceholderText: placeholder,
		host.Text:            "",
		host.TextColor:       th.ColorScheme.OnSurface,
		host.TextSize:        m.TextSize,
		host.TextXAlignment:  host.AlignLeft,
	})
	b.make(tb.input, host.KindCorner, host.Props{host.Name: "Corner", host.CornerRadius: m.CornerRadius})

	on(tb.input, host.EventTextChanged, func(ev host.Event) { tb.text = ev.Text })
	on(tb.input, host.EventFocusLost, func(ev host.Event) {
		tb.text = ev.Text
		if !ev.Submitted {
			return
		}
		tb.submits++
		if tb.onSubmit != nil {
			text := ev.Text
			callback(tb.node, "OnSubmit", func() { tb.onSubmit(text) })
		}
	})

	s.appendControl(tb, b)
	return tb
}

// Text returns the current input text.
func (tb *Textbox) Text() string { return tb.text }

// SetText replaces the input text without submitting it.
func (tb *Textbox) SetText(text string) {
	tb.text = text
	set(tb.input, host.Text, text)
}

// Placeholder returns the hint shown while the input is empty.
func (tb *Textbox) Placeholder() string { return tb.placeholder }

// Submits returns how many confirmed edits the textbox has seen.
func (tb *Textbox) Submits() int { return tb.submits }

// Input returns the editable node.
func (tb *Textbox) Input() host.Node { return tb.input }

// Node returns the textbox row.
func (tb *Textbox) Node() host.Node { return tb.node }

// Label returns the caption.
func (tb *Textbox) Label() string { return tb.label }
