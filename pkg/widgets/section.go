package widgets

import (
	"fmt"

	"github.com/go-drift/paneui/pkg/host"
)

// labelWidth is the width reserved for the caption of textbox and
// dropdown rows.
const labelWidth = 110

// Section is a labeled group of controls inside a window body. Its height
// grows by one row (plus padding) per control.
type Section struct {
	env    Env
	window *Window
	name   string

	frame   host.Node
	header  host.Node
	content host.Node
	layout  host.Node

	controls []Control
	err      error
	// raised counts dropdowns whose panel is showing.
	raised   int
}

func newSection(env Env, w *Window, parent host.Node, name string, order int) *Section {
	th := env.theme()
	m := th.Metrics
	b := &builder{env: env, op: "widgets.AddSection"}
	s := &Section{env: env, window: w, name: name}

	s.frame = b.make(parent, host.KindFrame, host.Props{
		host.Name:            name,
		host.Size:            host.D2(1, 0, 0, m.SectionHeader),
		host.LayoutOrder:     order,
		host.BackgroundColor: th.ColorScheme.SurfaceVariant,
	})
	s.header = b.make(s.frame, host.KindTextLabel, host.Props{
		host.Name:                   "Header",
		host.Position:               host.Px(m.Padding, 0),
		host.Size:                   host.D2(1, -2*m.Padding, 0, m.SectionHeader),
		host.BackgroundTransparency: 1.0,
		host.Text:                   name,
		host.TextColor:              th.ColorScheme.OnSurfaceMuted,
		host.TextSize:               m.TextSize,
		host.TextXAlignment:         host.AlignLeft,
	})
	s.content = b.make(s.frame, host.KindFrame, host.Props{
		host.Name:                   "Content",
		host.Position:               host.Px(0, m.SectionHeader),
		host.Size:                   host.D2(1, 0, 0, 0),
		host.BackgroundTransparency: 1.0,
	})
	s.layout = b.make(s.content, host.KindListLayout, host.Props{host.Name: "ListLayout", host.Padding: m.Padding})

	b.report(s.frame)
	if b.err != nil {
		s.err = b.err
	} else if w != nil && w.closed {
		s.err = ErrWindowClosed
	}
	return s
}

// raise lifts the section above the sections after it.
func (s *Section) raise() {
	s.raised++
	if s.raised == 1 {
		set(s.frame, host.ZIndex, raisedZIndex)
	}
}

// lower drops the section back once no dropdown in it is showing a panel.
func (s *Section) lower() {
	if s.raised == 0 {
		return
	}
	s.raised--
	if s.raised == 0 {
		set(s.frame, host.ZIndex, 1)
	}
}

// Name returns the section label.
func (s *Section) Name() string { return s.name }

// Node returns the section frame.
func (s *Section) Node() host.Node { return s.frame }

// Content returns the stack holding the section's controls.
func (s *Section) Content() host.Node { return s.content }

// Controls returns the section's controls in stacking order.
func (s *Section) Controls() []Control {
	out := make([]Control, len(s.controls))
	copy(out, s.controls)
	return out
}

// Err returns the first failure recorded while building the section or its
// controls.
func (s *Section) Err() error { return s.err }

// rowParent returns where the next control attaches, or nil when the
// window is gone.
func (s *Section) rowParent() host.Node {
	if s.window != nil && s.window.closed {
		if s.err == nil {
			s.err = ErrWindowClosed
		}
		return nil
	}
	return s.content
}

func (s *Section) nextOrder() int { return len(s.controls) }

// appendControl records c and grows the section to fit it.
func (s *Section) appendControl(c Control, b *builder) {
	s.controls = append(s.controls, c)
	if b.err != nil {
		b.report(c.Node())
		if s.err == nil {
			s.err = b.err
		}
	}
	m := s.env.theme().Metrics
	contentHeight := float64(len(s.controls)) * (m.RowHeight + m.Padding)
	set(s.content, host.Size, host.D2(1, 0, 0, contentHeight))
	set(s.frame, host.Size, host.D2(1, 0, 0, m.SectionHeader+contentHeight))
}

func (s *Section) newBuilder(kind string) *builder {
	return &builder{env: s.env, op: fmt.Sprintf("widgets.Add%s", kind)}
}

// rowProps returns the properties shared by every control's root node.
func (s *Section) rowProps(kind host.Kind, label string) host.Props {
	m := s.env.theme().Metrics
	props := host.Props{
		host.Name:        label,
		host.Size:        host.D2(1, 0, 0, m.RowHeight),
		host.LayoutOrder: s.nextOrder(),
	}
	if kind == host.KindFrame {
		props[host.BackgroundTransparency] = 1.0
	}
	return props
}
