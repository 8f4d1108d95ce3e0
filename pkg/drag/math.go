package drag

import "github.com/go-drift/paneui/pkg/graphics"

// WindowPosition returns the top-left corner for a window dragged by pointer,
// given the grab offset captured at press time. The result is rounded
// half-up to whole pixels and clamped so the window stays inside viewport.
// A window larger than the viewport on an axis is pinned to 0 on that axis.
func WindowPosition(pointer, grab graphics.Offset, window, viewport graphics.Size) graphics.Offset {
	x := graphics.RoundHalfUp(pointer.X - grab.X)
	y := graphics.RoundHalfUp(pointer.Y - grab.Y)
	return graphics.Offset{
		X: graphics.Clamp(x, 0, max(viewport.Width-window.Width, 0)),
		Y: graphics.Clamp(y, 0, max(viewport.Height-window.Height, 0)),
	}
}

// SliderFraction maps a pointer x coordinate onto a track, clamped to [0, 1].
// A track with no width yields 0.
func SliderFraction(pointerX, trackX, trackWidth float64) float64 {
	if trackWidth <= 0 {
		return 0
	}
	return graphics.Clamp((pointerX-trackX)/trackWidth, 0, 1)
}

// FractionOf returns where value sits in [lo, hi], clamped to [0, 1].
// An empty range yields 0.
func FractionOf(value, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return graphics.Clamp((value-lo)/(hi-lo), 0, 1)
}

// Lerp maps a fraction back onto [lo, hi].
func Lerp(lo, hi, fraction float64) float64 {
	return lo + fraction*(hi-lo)
}
