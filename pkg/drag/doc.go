// Package drag implements the pointer-drag state machine shared by window
// moves and slider edits.
//
// A [Controller] listens for a press on its handle node, then for host-level
// pointer motion and release. Each controller keeps its own state, so
// dragging one window never moves another window or slider.
//
// Position math lives in pure functions ([WindowPosition], [SliderFraction])
// so it can be tested without a host.
package drag
