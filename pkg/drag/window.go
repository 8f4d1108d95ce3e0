package drag

import (
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
)

// NewWindowDrag moves target when handle is dragged. The grab offset is the
// pointer position relative to target's on-screen origin at press time.
// onMove, if set, receives each applied position in surface coordinates.
func NewWindowDrag(h host.Host, handle, target host.Node, onMove func(graphics.Offset)) *Controller {
	c := NewController(h, handle)
	var grab graphics.Offset
	c.OnStart = func(d StartDetails) {
		grab = d.Position.Sub(host.AbsolutePositionOf(target))
	}
	c.OnUpdate = func(d UpdateDetails) {
		pos := WindowPosition(d.Position, grab, host.AbsoluteSizeOf(target), h.ViewportSize())
		origin := graphics.Offset{}
		if p := target.Parent(); p != nil {
			origin = host.AbsolutePositionOf(p)
		}
		local := pos.Sub(origin)
		if err := target.Set(host.Position, host.Px(local.X, local.Y)); err != nil {
			return
		}
		if onMove != nil {
			onMove(pos)
		}
	}
	return c
}

// NewSliderDrag reports track fractions while track is pressed or dragged.
// The press itself produces a sample so a click jumps to the pointer.
func NewSliderDrag(h host.Host, track host.Node, onFraction func(float64)) *Controller {
	c := NewController(h, track)
	sample := func(pos graphics.Offset) {
		x := host.AbsolutePositionOf(track).X
		w := host.AbsoluteSizeOf(track).Width
		onFraction(SliderFraction(pos.X, x, w))
	}
	c.OnStart = func(d StartDetails) { sample(d.Position) }
	c.OnUpdate = func(d UpdateDetails) { sample(d.Position) }
	return c
}
