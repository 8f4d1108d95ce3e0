package widgets

import "github.com/go-drift/paneui/pkg/host"

// Button is a full-width clickable row.
type Button struct {
	label   string
	node    host.Node
	onClick func()
	clicks  int
}

// AddButton appends a button. onClick runs on every activation; it may be
// nil.
func (s *Section) AddButton(label string, onClick func()) *Button {
	th := s.env.theme()
	bt := th.ButtonThemeOf()
	b := s.newBuilder("Button")

	props := s.rowProps(host.KindTextButton, label)
	props[host.Text] = label
	props[host.BackgroundColor] = bt.BackgroundColor
	props[host.TextColor] = bt.ForegroundColor
	props[host.TextSize] = th.Metrics.TextSize

	btn := &Button{label: label, onClick: onClick}
	btn.node = b.make(s.rowParent(), host.KindTextButton, props)
	b.make(btn.node, host.KindCorner, host.Props{host.Name: "Corner", host.CornerRadius: th.Metrics.CornerRadius})
	on(btn.node, host.EventActivated, func(host.Event) { btn.activate() })

	s.appendControl(btn, b)
	return btn
}

func (b *Button) activate() {
	b.clicks++
	if b.onClick != nil {
		callback(b.node, "OnClick", b.onClick)
	}
}

// Node returns the button node.
func (b *Button) Node() host.Node { return b.node }

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// Clicks returns how many activations the button has handled.
func (b *Button) Clicks() int { return b.clicks }
