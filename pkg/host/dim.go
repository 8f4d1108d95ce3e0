package host

import "github.com/go-drift/paneui/pkg/graphics"

// Dim is one axis of a relative measurement: a fraction of the parent's
// absolute extent plus a pixel offset.
type Dim struct {
	Scale  float64
	Offset float64
}

// Resolve returns the pixel value of d against a parent extent.
func (d Dim) Resolve(parent float64) float64 {
	return d.Scale*parent + d.Offset
}

// Dim2 is a two-axis relative measurement used for sizes and positions.
type Dim2 struct {
	X Dim
	Y Dim
}

// Px returns a Dim2 of pure pixel offsets.
func Px(x, y float64) Dim2 {
	return Dim2{X: Dim{Offset: x}, Y: Dim{Offset: y}}
}

// D2 returns a Dim2 from scale/offset pairs.
func D2(xScale, xOffset, yScale, yOffset float64) Dim2 {
	return Dim2{X: Dim{Scale: xScale, Offset: xOffset}, Y: Dim{Scale: yScale, Offset: yOffset}}
}

// ResolveSize converts d to an absolute size within parent.
func (d Dim2) ResolveSize(parent graphics.Size) graphics.Size {
	return graphics.Size{Width: d.X.Resolve(parent.Width), Height: d.Y.Resolve(parent.Height)}
}

// ResolveOffset converts d to an absolute offset within parent.
func (d Dim2) ResolveOffset(parent graphics.Size) graphics.Offset {
	return graphics.Offset{X: d.X.Resolve(parent.Width), Y: d.Y.Resolve(parent.Height)}
}
