package widgets

import (
	"fmt"
	"slices"

	"github.com/go-drift/paneui/pkg/animation"
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
)

// raisedZIndex lifts an open dropdown above the rows and sections after it.
const raisedZIndex = 2

// Dropdown picks one option from a fixed list shown in an animated panel.
//
// The open flag is written only by setOpen; the panel height always
// animates toward the height the flag implies.
type Dropdown struct {
	label    string
	options  []string
	selected int
	open     bool

	node    host.Node
	trigger host.Node
	panel   host.Node
	items   []host.Node
	section *Section
	raised  bool

	anim     *animation.Controller
	height   animation.Tween
	onSelect func(string)
}

// AddDropdown appends a dropdown showing options[0]. options are copied.
// Selecting an option shows it, closes the panel and calls onSelect once.
func (s *Section) AddDropdown(label string, options []string, onSelect func(string)) (*Dropdown, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("widgets.AddDropdown %q: %w", label, ErrNoOptions)
	}
	th := s.env.theme()
	m := th.Metrics
	bt := th.ButtonThemeOf()
	b := s.newBuilder("Dropdown")

	d := &Dropdown{
		label:    label,
		options:  slices.Clone(options),
		onSelect: onSelect,
		height:   animation.Tween{Begin: 0, End: float64(len(options)) * m.RowHeight},
	}
	d.anim = animation.NewController(m.DropdownDuration)
	d.anim.Curve = animation.EaseOut

	d.node = b.make(s.rowParent(), host.KindFrame, s.rowProps(host.KindFrame, label))
	b.make(d.node, host.KindTextLabel, host.Props{
		host.Name:                   "Label",
		host.Size:                   host.D2(0, labelWidth-m.Padding, 1, 0),
		host.BackgroundTransparency: 1.0,
		host.Text:                   label,
		host.TextColor:              th.ColorScheme.OnSurface,
		host.TextSize:               m.TextSize,
		host.TextXAlignment:         host.AlignLeft,
	})
	d.trigger = b.make(d.node, host.KindTextButton, host.Props{
		host.Name:            "Trigger",
		host.Position:        host.Px(labelWidth, 2),
		host.Size:            host.D2(1, -labelWidth, 1, -4),
		host.BackgroundColor: bt.BackgroundColor,
		host.Text:            d.options[0],
		host.TextColor:       bt.ForegroundColor,
		host.TextSize:        m.TextSize,
	})
	b.make(d.trigger, host.KindCorner, host.Props{host.Name: "Corner", host.CornerRadius: m.CornerRadius})
	d.panel = b.make(d.node, host.KindFrame, host.Props{
		host.Name:             "Options",
		host.Position:         host.Px(labelWidth, m.RowHeight),
		host.Size:             host.D2(1, -labelWidth, 0, 0),
		host.BackgroundColor:  th.ColorScheme.Control,
		host.ClipsDescendants: true,
		host.Visible:          false,
		host.ZIndex:           raisedZIndex,
	})
	b.make(d.panel, host.KindListLayout, host.Props{host.Name: "ListLayout", host.Padding: 0.0})
	for i, opt := range d.options {
		item := b.make(d.panel, host.KindTextButton, host.Props{
			host.Name:            fmt.Sprintf("Option%d", i+1),
			host.Size:            host.D2(1, 0, 0, m.RowHeight),
			host.LayoutOrder:     i,
			host.BackgroundColor: bt.BackgroundColor,
			host.Text:            opt,
			host.TextColor:       bt.ForegroundColor,
			host.TextSize:        m.TextSize,
		})
		d.items = append(d.items, item)
		on(item, host.EventActivated, func(host.Event) { d.selectIndex(i) })
	}
	d.section = s

	d.anim.AddListener(d.onFrame)
	on(d.trigger, host.EventActivated, func(host.Event) { d.setOpen(!d.open) })
	on(d.node, host.EventDestroying, func(host.Event) { d.anim.Dispose() })

	s.appendControl(d, b)
	return d, nil
}

// setOpen is the only writer of d.open.
func (d *Dropdown) setOpen(open bool) {
	if d.open == open {
		return
	}
	d.open = open
	if open {
		set(d.panel, host.Visible, true)
		d.setRaised(true)
	}
	target := 0.0
	if d.open {
		target = 1
	}
	d.anim.AnimateTo(target)
}

func (d *Dropdown) onFrame() {
	h := graphics.RoundHalfUp(d.height.Transform(d.anim))
	set(d.panel, host.Size, host.D2(1, -labelWidth, 0, h))
	if !d.open && d.anim.Value <= 0 {
		set(d.panel, host.Visible, false)
		d.setRaised(false)
	}
}

// setRaised lifts the row above its siblings and holds the section raised
// until the panel is hidden again.
func (d *Dropdown) setRaised(raised bool) {
	if d.raised == raised {
		return
	}
	d.raised = raised
	if raised {
		set(d.node, host.ZIndex, raisedZIndex)
		d.section.raise()
	} else {
		set(d.node, host.ZIndex, 1)
		d.section.lower()
	}
}

func (d *Dropdown) selectIndex(i int) {
	d.selected = i
	set(d.trigger, host.Text, d.options[i])
	d.setOpen(false)
	if d.onSelect != nil {
		opt := d.options[i]
		callback(d.node, "OnSelect", func() { d.onSelect(opt) })
	}
}

// Select picks option by value as if it had been clicked. It reports
// whether option exists.
func (d *Dropdown) Select(option string) bool {
	i := slices.Index(d.options, option)
	if i < 0 {
		return false
	}
	d.selectIndex(i)
	return true
}

// SetOpen opens or closes the panel.
func (d *Dropdown) SetOpen(open bool) { d.setOpen(open) }

// IsOpen reports the open flag. The panel may still be animating.
func (d *Dropdown) IsOpen() bool { return d.open }

// Selected returns the displayed option.
func (d *Dropdown) Selected() string { return d.options[d.selected] }

// SelectedIndex returns the index of the displayed option.
func (d *Dropdown) SelectedIndex() int { return d.selected }

// Options returns a copy of the option list.
func (d *Dropdown) Options() []string { return slices.Clone(d.options) }

// PanelHeight returns the options panel's current height.
func (d *Dropdown) PanelHeight() float64 {
	return graphics.RoundHalfUp(d.height.Transform(d.anim))
}

// Animating reports whether the panel is moving toward its target height.
func (d *Dropdown) Animating() bool { return d.anim.IsAnimating() }

// Trigger returns the node that opens and closes the panel.
func (d *Dropdown) Trigger() host.Node { return d.trigger }

// Panel returns the options panel.
func (d *Dropdown) Panel() host.Node { return d.panel }

// Items returns the option nodes in list order.
func (d *Dropdown) Items() []host.Node { return slices.Clone(d.items) }

// Node returns the dropdown row.
func (d *Dropdown) Node() host.Node { return d.node }

// Label returns the caption.
func (d *Dropdown) Label() string { return d.label }
