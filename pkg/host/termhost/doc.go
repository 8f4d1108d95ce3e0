// Package termhost runs a memhost tree inside a terminal.
//
// A Model is a bubbletea program model. It paints the tree into a grid of
// character cells, each standing for CellWidth x CellHeight pixels, and turns
// mouse and keyboard input into host events: presses hit-test and deliver
// PointerDown, drags move the pointer, releases over the pressed node
// activate it, and typing edits the focused text box.
package termhost
