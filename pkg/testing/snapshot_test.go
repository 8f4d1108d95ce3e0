package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/paneui/pkg/host"
)

func TestCaptureSnapshot_Tree(t *testing.T) {
	tester, _ := newBench(t)

	snap := tester.CaptureSnapshot()
	if len(snap.Surfaces) != 1 {
		t.Fatalf("expected 1 surface, got %d", len(snap.Surfaces))
	}
	root := snap.Surfaces[0]
	if root.Name != "GlobalSurface" || len(root.Children) != 1 {
		t.Fatalf("unexpected root %+v", root)
	}
	panel := root.Children[0].Children[0]
	if panel.Path != "GlobalSurface.Bench.Panel" {
		t.Errorf("panel path = %q", panel.Path)
	}
	if len(panel.Children) != 3 {
		t.Errorf("expected 3 panel children, got %d", len(panel.Children))
	}
}

func TestCaptureSnapshot_PaintOrder(t *testing.T) {
	tester, bench := newBench(t)
	if _, err := bench.Cover(tester.Host()); err != nil {
		t.Fatal(err)
	}
	if err := bench.Panel.Set(host.ClipsDescendants, true); err != nil {
		t.Fatal(err)
	}
	if err := bench.Entry.Set(host.Size, host.Px(400, 20)); err != nil {
		t.Fatal(err)
	}

	snap := tester.CaptureSnapshot()
	var paths []string
	for _, op := range snap.Paint {
		paths = append(paths, op.Path)
	}
	want := []string{
		"GlobalSurface.Bench.Panel",
		"GlobalSurface.Bench.Panel.Count",
		"GlobalSurface.Bench.Panel.Increment",
		"GlobalSurface.Bench.Panel.Entry",
		"GlobalSurface.Bench.Cover",
	}
	if strings.Join(paths, "\n") != strings.Join(want, "\n") {
		t.Fatalf("paint order:\n%s\nwant:\n%s", strings.Join(paths, "\n"), strings.Join(want, "\n"))
	}

	if snap.Paint[0].Bounds != [4]float64{10, 10, 210, 110} {
		t.Errorf("panel bounds = %v", snap.Paint[0].Bounds)
	}
	if snap.Paint[0].Clip != nil {
		t.Errorf("panel should be unclipped, got %v", *snap.Paint[0].Clip)
	}
	entry := snap.Paint[3]
	if entry.Clip == nil || *entry.Clip != [4]float64{10, 70, 210, 90} {
		t.Errorf("entry should be clipped to the panel, got %v", entry.Clip)
	}
}

type recordingT struct {
	name   string
	errors []string
	fatals []string
}

func (r *recordingT) Helper()      {}
func (r *recordingT) Name() string { return r.name }
func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}
func (r *recordingT) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func TestMatchesFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	tester, _ := newBench(t)
	path := filepath.Join(t.TempDir(), "nested", "bench.snapshot.json")

	rec := &recordingT{name: "TestMatchesFile"}
	tester.CaptureSnapshot().MatchesFile(rec, path)
	if len(rec.fatals) != 1 || !strings.Contains(rec.fatals[0], "snapshot file missing") {
		t.Fatalf("expected missing-file failure, got %v", rec.fatals)
	}
	if !strings.Contains(rec.fatals[0], UpdateSnapshotsEnv+"=1") {
		t.Errorf("expected update instructions, got %q", rec.fatals[0])
	}

	if err := tester.CaptureSnapshot().UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	rec = &recordingT{name: "TestMatchesFile"}
	tester.CaptureSnapshot().MatchesFile(rec, path)
	if len(rec.errors)+len(rec.fatals) != 0 {
		t.Fatalf("expected match, got %v %v", rec.errors, rec.fatals)
	}

	if err := tester.Tap(ByText("+1")); err != nil {
		t.Fatal(err)
	}
	tester.CaptureSnapshot().MatchesFile(rec, path)
	if len(rec.errors) != 1 {
		t.Fatalf("expected one mismatch, got %v", rec.errors)
	}
	if !strings.Contains(rec.errors[0], `"text": "1"`) {
		t.Errorf("diff should show the changed text, got:\n%s", rec.errors[0])
	}
}

func TestMatchesFile_Update(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "1")
	tester, _ := newBench(t)
	path := filepath.Join(t.TempDir(), "bench.snapshot.json")

	rec := &recordingT{name: "TestMatchesFile_Update"}
	tester.CaptureSnapshot().MatchesFile(rec, path)
	if len(rec.fatals) != 0 {
		t.Fatalf("update failed: %v", rec.fatals)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"path": "GlobalSurface.Bench.Panel.Increment"`) {
		t.Errorf("written snapshot missing increment button:\n%s", data)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	tester, _ := newBench(t)
	a := tester.CaptureSnapshot()
	if d := a.Diff(tester.CaptureSnapshot()); d != "" {
		t.Errorf("expected no diff, got:\n%s", d)
	}

	if err := tester.TypeText(ByName("Entry"), "x"); err != nil {
		t.Fatal(err)
	}
	d := tester.CaptureSnapshot().Diff(a)
	if !strings.HasPrefix(d, "--- expected\n+++ actual\n") || !strings.Contains(d, `+`) {
		t.Errorf("unexpected diff:\n%s", d)
	}
}
