// Package animation provides frame-stepped value animation.
//
// A [Controller] moves a value in [0, 1] toward a target over a duration,
// shaped by a curve. A [Tween] maps that progress onto a pixel range.
// Controllers are driven by [Ticker]s, which the host advances once per
// frame with [StepTickers]; nothing here starts goroutines or timers, so an
// animation never blocks input handling.
//
// Time comes from a replaceable [Clock] so tests can advance animations
// deterministically:
//
//	prev := animation.SetClock(fake)
//	defer animation.SetClock(prev)
package animation
