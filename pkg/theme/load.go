package theme

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/go-drift/paneui/pkg/errors"
	"github.com/go-drift/paneui/pkg/graphics"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedVersion is returned for theme files with an unknown format.
var ErrUnsupportedVersion = stderrors.New("unsupported theme format version")

// fileTheme mirrors the YAML layout. Absent fields keep Default values.
type fileTheme struct {
	Version string            `yaml:"version"`
	Colors  map[string]string `yaml:"colors"`
	Metrics struct {
		TitlebarHeight   *float64       `yaml:"titlebar_height"`
		RowHeight        *float64       `yaml:"row_height"`
		Padding          *float64       `yaml:"padding"`
		SectionHeader    *float64       `yaml:"section_header"`
		CornerRadius     *float64       `yaml:"corner_radius"`
		TextSize         *float64       `yaml:"text_size"`
		DropdownDuration *time.Duration `yaml:"dropdown_duration"`
	} `yaml:"metrics"`
}

// LoadOptional reads a theme file. A missing file yields Default.
func LoadOptional(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, themeError("theme.LoadOptional", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// Load reads a theme file.
func Load(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeError("theme.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// Parse decodes a YAML theme document on top of Default.
func Parse(data []byte) (*ThemeData, error) {
	var f fileTheme
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, themeError("theme.Parse", fmt.Errorf("failed to parse theme: %w", err))
	}
	if err := checkVersion(f.Version); err != nil {
		return nil, themeError("theme.Parse", err)
	}

	t := Default()
	if err := applyColors(&t.ColorScheme, f.Colors); err != nil {
		return nil, themeError("theme.Parse", err)
	}
	m := &t.Metrics
	for _, pair := range []struct {
		src *float64
		dst *float64
		key string
	}{
		{f.Metrics.TitlebarHeight, &m.TitlebarHeight, "titlebar_height"},
		{f.Metrics.RowHeight, &m.RowHeight, "row_height"},
		{f.Metrics.Padding, &m.Padding, "padding"},
		{f.Metrics.SectionHeader, &m.SectionHeader, "section_header"},
		{f.Metrics.CornerRadius, &m.CornerRadius, "corner_radius"},
		{f.Metrics.TextSize, &m.TextSize, "text_size"},
	} {
		if pair.src == nil {
			continue
		}
		if *pair.src < 0 {
			return nil, themeError("theme.Parse", fmt.Errorf("metrics.%s must not be negative (got %v)", pair.key, *pair.src))
		}
		*pair.dst = *pair.src
	}
	if f.Metrics.DropdownDuration != nil {
		m.DropdownDuration = *f.Metrics.DropdownDuration
	}
	return t, nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != semver.Major(FormatVersion) {
		return fmt.Errorf("%w: %s (this build reads %s.x)", ErrUnsupportedVersion, v, semver.Major(FormatVersion))
	}
	if semver.Compare(v, FormatVersion) > 0 {
		return fmt.Errorf("%w: %s is newer than %s", ErrUnsupportedVersion, v, FormatVersion)
	}
	return nil
}

func applyColors(cs *ColorScheme, colors map[string]string) error {
	targets := map[string]*graphics.Color{
		"surface":          &cs.Surface,
		"surface_variant":  &cs.SurfaceVariant,
		"titlebar":         &cs.Titlebar,
		"control":          &cs.Control,
		"primary":          &cs.Primary,
		"on_primary":       &cs.OnPrimary,
		"on_surface":       &cs.OnSurface,
		"on_surface_muted": &cs.OnSurfaceMuted,
		"danger":           &cs.Danger,
		"outline":          &cs.Outline,
	}
	for key, raw := range colors {
		dst, ok := targets[key]
		if !ok {
			return fmt.Errorf("unknown color %q", key)
		}
		c, err := graphics.ParseHex(raw)
		if err != nil {
			return fmt.Errorf("colors.%s: %w", key, err)
		}
		*dst = c
	}
	return nil
}

func themeError(op string, err error) error {
	return &errors.UIError{Op: op, Kind: errors.KindTheme, Err: err}
}
