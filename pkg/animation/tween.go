package animation

// Tween maps controller progress onto the range [Begin, End].
type Tween struct {
	Begin float64
	End   float64
}

// Evaluate returns the interpolated value at t.
func (tw Tween) Evaluate(t float64) float64 {
	return tw.Begin + (tw.End-tw.Begin)*t
}

// Transform returns the interpolated value at the controller's progress.
func (tw Tween) Transform(c *Controller) float64 {
	return tw.Evaluate(c.Value)
}
