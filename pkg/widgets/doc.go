// Package widgets builds windows and controls as node subtrees on a host.
//
// A [Window] owns its chrome (titlebar, close and minimize controls) and a
// vertical body stack. Sections are appended to the body, and each section
// exposes constructors for the controls it stacks:
//
//	win, _ := widgets.NewWindow(env, root, widgets.WindowOptions{Title: "Mixer"})
//	audio := win.AddSection("Audio")
//	audio.AddButton("Reset", reset)
//	mute, muted := audio.AddToggle("Mute", false, nil)
//	audio.AddSlider("Volume", 0, 100, 80, setVolume)
//
// # State
//
// Toggle and Slider values, and the Dropdown open flag, live on the widget.
// Node properties are always rendered from that state and never read back.
//
// # Callbacks
//
// User callbacks run synchronously inside the host event that triggered
// them. A panicking callback is recovered and reported through
// errors.ReportCallbackError; the widget's state is already updated by then
// and the widget keeps working.
package widgets
