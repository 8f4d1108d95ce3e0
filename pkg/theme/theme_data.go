// Package theme holds the process-wide look of paneui widgets.
//
// Widget constructors read [Current] once when they build their nodes.
// Component themes (buttons, toggles, sliders) are derived from the
// [ColorScheme] unless a theme sets them explicitly.
package theme

import (
	"sync"
	"time"

	"github.com/go-drift/paneui/pkg/graphics"
)

// FormatVersion is the theme file format this build writes and reads.
const FormatVersion = "v1.0.0"

// ColorScheme defines the color palette.
type ColorScheme struct {
	// Surface is the window body background.
	Surface graphics.Color
	// SurfaceVariant is the section background.
	SurfaceVariant graphics.Color
	// Titlebar is the window chrome background.
	Titlebar graphics.Color
	// Control is the default control background.
	Control graphics.Color
	// Primary is the accent used for active states and fills.
	Primary graphics.Color
	// OnPrimary is text drawn on Primary.
	OnPrimary graphics.Color
	// OnSurface is the default text color.
	OnSurface graphics.Color
	// OnSurfaceMuted is secondary text such as placeholders.
	OnSurfaceMuted graphics.Color
	// Danger is used for destructive chrome such as the close control.
	Danger graphics.Color
	// Outline is used for strokes.
	Outline graphics.Color
}

// Metrics are the fixed sizes shared by every widget.
type Metrics struct {
	TitlebarHeight float64
	RowHeight      float64
	Padding        float64
	SectionHeader  float64
	CornerRadius   float64
	TextSize       float64
	// DropdownDuration is the open/close transition time.
	DropdownDuration time.Duration
}

// ThemeData contains all theme configuration.
type ThemeData struct {
	ColorScheme ColorScheme
	Metrics     Metrics

	// Component themes, derived from ColorScheme if nil.
	ButtonTheme *ButtonThemeData
	ToggleTheme *ToggleThemeData
	SliderTheme *SliderThemeData
}

// DarkColorScheme returns the default palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Surface:        graphics.RGB(0x1E, 0x1E, 0x2E),
		SurfaceVariant: graphics.RGB(0x2A, 0x2A, 0x3C),
		Titlebar:       graphics.RGB(0x18, 0x18, 0x25),
		Control:        graphics.RGB(0x36, 0x36, 0x4C),
		Primary:        graphics.RGB(0x89, 0xB4, 0xFA),
		OnPrimary:      graphics.RGB(0x11, 0x11, 0x1B),
		OnSurface:      graphics.RGB(0xCD, 0xD6, 0xF4),
		OnSurfaceMuted: graphics.RGB(0x7F, 0x84, 0x9C),
		Danger:         graphics.RGB(0xF3, 0x8B, 0xA8),
		Outline:        graphics.RGB(0x45, 0x47, 0x5A),
	}
}

// DefaultMetrics returns the default sizes.
func DefaultMetrics() Metrics {
	return Metrics{
		TitlebarHeight:   30,
		RowHeight:        28,
		Padding:          6,
		SectionHeader:    22,
		CornerRadius:     6,
		TextSize:         14,
		DropdownDuration: 150 * time.Millisecond,
	}
}

// Default returns the default theme.
func Default() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		Metrics:     DefaultMetrics(),
	}
}

// Copy returns a deep copy so callers can mutate without affecting t.
func (t *ThemeData) Copy() *ThemeData {
	c := *t
	if t.ButtonTheme != nil {
		b := *t.ButtonTheme
		c.ButtonTheme = &b
	}
	if t.ToggleTheme != nil {
		tg := *t.ToggleTheme
		c.ToggleTheme = &tg
	}
	if t.SliderTheme != nil {
		s := *t.SliderTheme
		c.SliderTheme = &s
	}
	return &c
}

// ButtonThemeOf returns the button theme, deriving from ColorScheme if not set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.ColorScheme)
}

// ToggleThemeOf returns the toggle theme, deriving from ColorScheme if not set.
func (t *ThemeData) ToggleThemeOf() ToggleThemeData {
	if t.ToggleTheme != nil {
		return *t.ToggleTheme
	}
	return DefaultToggleTheme(t.ColorScheme)
}

// SliderThemeOf returns the slider theme, deriving from ColorScheme if not set.
func (t *ThemeData) SliderThemeOf() SliderThemeData {
	if t.SliderTheme != nil {
		return *t.SliderTheme
	}
	return DefaultSliderTheme(t.ColorScheme)
}

var (
	currentMu sync.RWMutex
	current   = Default()
)

// Current returns the process-wide theme.
func Current() *ThemeData {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide theme and returns the previous one.
// Nil restores Default. Existing widgets keep the colors they were built with.
func SetCurrent(t *ThemeData) *ThemeData {
	currentMu.Lock()
	defer currentMu.Unlock()
	prev := current
	if t == nil {
		t = Default()
	}
	current = t
	return prev
}
