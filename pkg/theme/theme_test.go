package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/paneui/pkg/graphics"
)

func TestParse_Overrides(t *testing.T) {
	data := []byte(`
version: v1.0.0
colors:
  primary: "#FF8800"
  surface: "#CC101010"
metrics:
  row_height: 32
  dropdown_duration: 80ms
`)
	th, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.ColorScheme.Primary != graphics.RGB(0xFF, 0x88, 0x00) {
		t.Errorf("Primary = %s", th.ColorScheme.Primary.Hex())
	}
	if _, _, _, a := th.ColorScheme.Surface.Components(); a != 0xCC {
		t.Errorf("Surface alpha = %x", a)
	}
	if th.Metrics.RowHeight != 32 {
		t.Errorf("RowHeight = %v", th.Metrics.RowHeight)
	}
	if th.Metrics.DropdownDuration != 80*time.Millisecond {
		t.Errorf("DropdownDuration = %v", th.Metrics.DropdownDuration)
	}
	if th.Metrics.TitlebarHeight != DefaultMetrics().TitlebarHeight {
		t.Error("unset metrics should keep defaults")
	}
	if th.ButtonThemeOf().BackgroundColor != th.ColorScheme.Control {
		t.Error("button theme should derive from the color scheme")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"major version", "version: v2.0.0\n"},
		{"newer minor", "version: v1.9.0\n"},
		{"not semver", "version: one\n"},
		{"unknown color", "colors:\n  chartreuse: \"#00FF00\"\n"},
		{"bad hex", "colors:\n  primary: \"#XYZ\"\n"},
		{"negative metric", "metrics:\n  padding: -2\n"},
		{"unknown field", "colour: red\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("expected error for %q", tt.doc)
			}
		})
	}

	_, err := Parse([]byte("version: v3.1.0\n"))
	if !stderrors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion in chain, got %v", err)
	}
}

func TestLoadOptional_MissingFile(t *testing.T) {
	th, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if th.Metrics != DefaultMetrics() {
		t.Error("expected default metrics")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("metrics:\n  padding: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Metrics.Padding != 4 {
		t.Errorf("Padding = %v", th.Metrics.Padding)
	}
}

func TestSetCurrent(t *testing.T) {
	custom := Default()
	custom.Metrics.RowHeight = 40
	prev := SetCurrent(custom)
	t.Cleanup(func() { SetCurrent(prev) })

	if Current().Metrics.RowHeight != 40 {
		t.Error("Current should return the installed theme")
	}
	SetCurrent(nil)
	if Current().Metrics.RowHeight != DefaultMetrics().RowHeight {
		t.Error("nil should restore the default theme")
	}
}

func TestCopyIsDeep(t *testing.T) {
	th := Default()
	th.SliderTheme = &SliderThemeData{TrackHeight: 4}
	c := th.Copy()
	c.SliderTheme.TrackHeight = 12
	if th.SliderTheme.TrackHeight != 4 {
		t.Error("Copy should not share component themes")
	}
}
