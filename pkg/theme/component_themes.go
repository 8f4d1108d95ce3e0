package theme

import "github.com/go-drift/paneui/pkg/graphics"

// ButtonThemeData defines default styling for buttons and dropdown triggers.
type ButtonThemeData struct {
	BackgroundColor graphics.Color
	ForegroundColor graphics.Color
}

// ToggleThemeData defines default styling for toggles.
type ToggleThemeData struct {
	OnColor         graphics.Color
	OffColor        graphics.Color
	ForegroundColor graphics.Color
}

// SliderThemeData defines default styling for sliders.
type SliderThemeData struct {
	TrackColor graphics.Color
	FillColor  graphics.Color
	// TrackHeight is the height of the track bar in pixels.
	TrackHeight float64
}

// DefaultButtonTheme derives button styling from a color scheme.
func DefaultButtonTheme(colors ColorScheme) ButtonThemeData {
	return ButtonThemeData{
		BackgroundColor: colors.Control,
		ForegroundColor: colors.OnSurface,
	}
}

// DefaultToggleTheme derives toggle styling from a color scheme.
func DefaultToggleTheme(colors ColorScheme) ToggleThemeData {
	return ToggleThemeData{
		OnColor:         colors.Primary,
		OffColor:        colors.Control,
		ForegroundColor: colors.OnSurface,
	}
}

// DefaultSliderTheme derives slider styling from a color scheme.
func DefaultSliderTheme(colors ColorScheme) SliderThemeData {
	return SliderThemeData{
		TrackColor:  colors.Control,
		FillColor:   colors.Primary,
		TrackHeight: 8,
	}
}
