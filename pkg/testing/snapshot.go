package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/go-drift/paneui/pkg/diagnostics"
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
)

// UpdateSnapshotsEnv names the environment variable that, when set to 1,
// makes MatchesFile rewrite golden files instead of comparing.
const UpdateSnapshotsEnv = "PANEUI_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the node trees of every surface and the order in which
// visible nodes paint.
type Snapshot struct {
	Surfaces []*diagnostics.TreeNode `json:"surfaces"`
	Paint    []PaintOp               `json:"paint,omitempty"`
}

// PaintOp is one visible node in back-to-front order.
type PaintOp struct {
	Path   string     `json:"path"`
	Bounds [4]float64 `json:"bounds"`
	// Clip is omitted when it does not cut into Bounds.
	Clip *[4]float64 `json:"clip,omitempty"`
}

// CaptureSnapshot captures the current trees and paint order.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	for _, root := range t.Roots() {
		if tree := diagnostics.Snapshot(root); tree != nil {
			snap.Surfaces = append(snap.Surfaces, tree)
		}
	}
	t.host.Paint(func(n host.Node, bounds, clip graphics.Rect) {
		op := PaintOp{Path: host.Path(n), Bounds: serializeRect(bounds)}
		if visible := bounds.Intersect(clip); visible != bounds {
			r := serializeRect(visible)
			op.Clip = &r
		}
		snap.Paint = append(snap.Paint, op)
	})
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When PANEUI_UPDATE_SNAPSHOTS=1
// is set, the file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	actual, err := marshalSnapshot(s)
	if err != nil {
		t.Fatalf("failed to encode snapshot: %v", err)
		return
	}
	if !bytes.Equal(expected, actual) {
		diff := unifiedDiff(string(expected), string(actual))
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between other (expected) and this snapshot
// (actual). It returns the empty string when they encode identically.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// --- Internal ---

func serializeRect(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
}

func round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// unifiedDiff renders a unified diff with two lines of context.
func unifiedDiff(expected, actual string) string {
	d, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("diff failed: %v", err)
	}
	return d
}
