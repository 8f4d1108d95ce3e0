package widgets

import (
	"math"
	"strconv"

	"github.com/go-drift/paneui/pkg/drag"
	"github.com/go-drift/paneui/pkg/host"
)

const (
	valueWidth   = 64
	captionLines = 14
)

// Slider edits a number in [Min, Max] by dragging along a track.
type Slider struct {
	label    string
	min, max float64
	value    float64
	fraction float64

	node     host.Node
	caption  host.Node
	readout  host.Node
	track    host.Node
	fill     host.Node
	drag     *drag.Controller
	onChange func(float64)
}

// AddSlider appends a slider. A hi below lo is swapped, and initial is
// clamped into the range. onChange receives the value on every drag sample,
// including the press; it may be nil.
func (s *Section) AddSlider(label string, lo, hi, initial float64, onChange func(float64)) *Slider {
	if hi < lo {
		lo, hi = hi, lo
	}
	th := s.env.theme()
	m := th.Metrics
	st := th.SliderThemeOf()
	b := s.newBuilder("Slider")

	sl := &Slider{label: label, min: lo, max: hi, onChange: onChange}
	sl.value = math.Min(math.Max(initial, lo), hi)
	sl.fraction = drag.FractionOf(sl.value, lo, hi)

	sl.node = b.make(s.rowParent(), host.KindFrame, s.rowProps(host.KindFrame, label))
	sl.caption = b.make(sl.node, host.KindTextLabel, host.Props{
		host.Name:                   "Label",
		host.Size:                   host.D2(1, -(valueWidth + m.Padding), 0, captionLines),
		host.BackgroundTransparency: 1.0,
		host.Text:                   label,
		host.TextColor:              th.ColorScheme.OnSurface,
		host.TextSize:               m.TextSize,
		host.TextXAlignment:         host.AlignLeft,
	})
	sl.readout = b.make(sl.node, host.KindTextLabel, host.Props{
		host.Name:                   "Value",
		host.Position:               host.D2(1, -valueWidth, 0, 0),
		host.Size:                   host.Px(valueWidth, captionLines),
		host.BackgroundTransparency: 1.0,
		host.TextColor:              th.ColorScheme.OnSurfaceMuted,
		host.TextSize:               m.TextSize,
		host.TextXAlignment:         host.AlignRight,
	})
	sl.track = b.make(sl.node, host.KindFrame, host.Props{
		host.Name:            "Track",
		host.Position:        host.Px(0, m.RowHeight-st.TrackHeight-2),
		host.Size:            host.D2(1, 0, 0, st.TrackHeight),
		host.BackgroundColor: st.TrackColor,
		host.Active:          true,
	})
	b.make(sl.track, host.KindCorner, host.Props{host.Name: "Corner", host.CornerRadius: st.TrackHeight / 2})
	sl.fill = b.make(sl.track, host.KindFrame, host.Props{
		host.Name:            "Fill",
		host.Size:            host.D2(0, 0, 1, 0),
		host.BackgroundColor: st.FillColor,
	})
	b.make(sl.fill, host.KindCorner, host.Props{host.Name: "Corner", host.CornerRadius: st.TrackHeight / 2})
	sl.render()

	if sl.track != nil {
		sl.drag = drag.NewSliderDrag(s.env.Host, sl.track, sl.setFraction)
	}
	s.appendControl(sl, b)
	return sl
}

func (sl *Slider) setFraction(f float64) {
	if sl.max <= sl.min {
		f = 0
	}
	sl.fraction = f
	sl.value = drag.Lerp(sl.min, sl.max, f)
	sl.render()
	if sl.onChange != nil {
		v := sl.value
		callback(sl.node, "OnChange", func() { sl.onChange(v) })
	}
}

func (sl *Slider) render() {
	set(sl.fill, host.Size, host.D2(sl.fraction, 0, 1, 0))
	set(sl.readout, host.Text, FormatValue(sl.value))
}

// FormatValue renders a slider value with at most two decimals.
func FormatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// Value returns the current value.
func (sl *Slider) Value() float64 { return sl.value }

// Fraction returns the fill fraction in [0, 1].
func (sl *Slider) Fraction() float64 { return sl.fraction }

// Min returns the lower bound.
func (sl *Slider) Min() float64 { return sl.min }

// Max returns the upper bound.
func (sl *Slider) Max() float64 { return sl.max }

// SetValue moves the slider without calling onChange. v is clamped.
func (sl *Slider) SetValue(v float64) {
	sl.value = math.Min(math.Max(v, sl.min), sl.max)
	sl.fraction = drag.FractionOf(sl.value, sl.min, sl.max)
	sl.render()
}

// Track returns the drag handle.
func (sl *Slider) Track() host.Node { return sl.track }

// Drag returns the track's drag controller, or nil if the track was never
// built.
func (sl *Slider) Drag() *drag.Controller { return sl.drag }

// Node returns the slider row.
func (sl *Slider) Node() host.Node { return sl.node }

// Label returns the caption.
func (sl *Slider) Label() string { return sl.label }
