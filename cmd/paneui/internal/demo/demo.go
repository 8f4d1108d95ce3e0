// Package demo builds the sample window shown by the demo and scan commands.
package demo

import (
	"fmt"
	"log/slog"

	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/paneui"
	"github.com/go-drift/paneui/pkg/widgets"
)

// Options configures Build.
type Options struct {
	Title string
	// Stress adds this many buttons in an extra section.
	Stress int
	Logger *slog.Logger
}

// Build adds the demo window to lib: one section with every control, an
// empty section, and an optional stress section.
func Build(lib *paneui.Library, opts Options) (*widgets.Window, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	w, err := lib.CreateWindow(widgets.WindowOptions{
		Title:    opts.Title,
		Size:     graphics.Size{Width: 320, Height: 360},
		Position: &graphics.Offset{X: 40, Y: 40},
	})
	if err != nil {
		return nil, fmt.Errorf("demo window: %w", err)
	}

	s := w.AddSection("Controls")
	s.AddButton("Apply", func() { log.Info("apply clicked") })
	s.AddToggle("Enabled", true, func(on bool) { log.Info("toggle changed", "enabled", on) })
	s.AddSlider("Volume", 0, 100, 50, func(v float64) { log.Info("slider changed", "volume", widgets.FormatValue(v)) })
	s.AddTextbox("Name", "your name", func(text string) { log.Info("name submitted", "name", text) })
	if _, err := s.AddDropdown("Mode", []string{"Fast", "Balanced", "Quality"}, func(mode string) {
		log.Info("mode selected", "mode", mode)
	}); err != nil {
		return nil, err
	}
	w.AddSection("Empty")

	if opts.Stress > 0 {
		stress := w.AddSection("Stress")
		for i := range opts.Stress {
			label := fmt.Sprintf("Item %d", i+1)
			stress.AddButton(label, func() { log.Info("stress button clicked", "label", label) })
		}
	}
	if err := w.Err(); err != nil {
		return w, err
	}
	return w, nil
}
