package widgets

import (
	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/theme"
)

const switchWidth = 56

// Toggle is a labeled on/off switch.
type Toggle struct {
	label    string
	value    bool
	node     host.Node
	caption  host.Node
	knob     host.Node
	colors   theme.ToggleThemeData
	onChange func(bool)
}

// AddToggle appends a toggle and returns it with a getter for its state.
// onChange receives the new state after every flip; it may be nil.
func (s *Section) AddToggle(label string, initial bool, onChange func(bool)) (*Toggle, func() bool) {
	th := s.env.theme()
	m := th.Metrics
	b := s.newBuilder("Toggle")
	t := &Toggle{label: label, value: initial, colors: th.ToggleThemeOf(), onChange: onChange}

	t.node = b.make(s.rowParent(), host.KindFrame, s.rowProps(host.KindFrame, label))
	t.caption = b.make(t.node, host.KindTextLabel, host.Props{
		host.Name:                   "Label",
		host.Size:                   host.D2(1, -(switchWidth + m.Padding), 1, 0),
		host.BackgroundTransparency: 1.0,
		host.Text:                   label,
		host.TextColor:              t.colors.ForegroundColor,
		host.TextSize:               m.TextSize,
		host.TextXAlignment:         host.AlignLeft,
	})
	t.knob = b.make(t.node, host.KindTextButton, host.Props{
		host.Name:      "Switch",
		host.Position:  host.D2(1, -switchWidth, 0, (m.RowHeight-chromeButtonHeight)/2),
		host.Size:      host.Px(switchWidth, chromeButtonHeight),
		host.TextColor: t.colors.ForegroundColor,
		host.TextSize:  m.TextSize,
	})
	b.make(t.knob, host.KindCorner, host.Props{host.Name: "Corner", host.CornerRadius: m.CornerRadius})
	t.render()
	on(t.knob, host.EventActivated, func(host.Event) { t.flip() })

	s.appendControl(t, b)
	return t, t.Value
}

func (t *Toggle) flip() {
	t.value = !t.value
	t.render()
	if t.onChange != nil {
		v := t.value
		callback(t.node, "OnChange", func() { t.onChange(v) })
	}
}

func (t *Toggle) render() {
	text, color := "OFF", t.colors.OffColor
	if t.value {
		text, color = "ON", t.colors.OnColor
	}
	set(t.knob, host.Text, text)
	set(t.knob, host.BackgroundColor, color)
}

// Value reports the current state.
func (t *Toggle) Value() bool { return t.value }

// SetValue changes the state without calling onChange.
func (t *Toggle) SetValue(v bool) {
	t.value = v
	t.render()
}

// Node returns the toggle row.
func (t *Toggle) Node() host.Node { return t.node }

// Switch returns the clickable switch node.
func (t *Toggle) Switch() host.Node { return t.knob }

// Label returns the caption.
func (t *Toggle) Label() string { return t.label }
