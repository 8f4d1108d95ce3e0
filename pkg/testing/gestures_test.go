package testing

import (
	"strings"
	"testing"

	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
)

func TestTap_ActivatesButton(t *testing.T) {
	tester, bench := newBench(t)

	for i := 0; i < 3; i++ {
		if err := tester.Tap(ByText("+1")); err != nil {
			t.Fatalf("Tap: %v", err)
		}
	}
	if bench.Count != 3 {
		t.Errorf("expected count 3, got %d", bench.Count)
	}
	if !tester.Find(ByText("3")).Exists() {
		t.Error("expected label to read 3")
	}
}

func TestTap_Covered(t *testing.T) {
	tester, bench := newBench(t)
	if _, err := bench.Cover(tester.Host()); err != nil {
		t.Fatal(err)
	}

	err := tester.Tap(ByName("Increment"))
	if err == nil || !strings.Contains(err.Error(), "covered by GlobalSurface.Bench.Cover") {
		t.Fatalf("expected covered error, got %v", err)
	}
	if bench.Count != 0 {
		t.Errorf("covered button should not fire, count %d", bench.Count)
	}
}

func TestTap_NotHittable(t *testing.T) {
	tester, _ := newBench(t)

	// Labels and frames do not accept input by default.
	err := tester.Tap(ByName("Count"))
	if err == nil || !strings.Contains(err.Error(), "not hittable") {
		t.Fatalf("expected error tapping an inert label, got %v", err)
	}
}

func TestTap_MissSuggests(t *testing.T) {
	tester, _ := newBench(t)

	err := tester.Tap(ByName("Incremnet"))
	if err == nil || !strings.Contains(err.Error(), `did you mean "Increment"`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Tap: ") {
		t.Errorf("expected Tap prefix, got %v", err)
	}
}

func TestTapAt(t *testing.T) {
	tester, bench := newBench(t)

	if got := tester.TapAt(graphics.Offset{X: 60, Y: 50}); got != bench.Button {
		t.Fatalf("expected button hit, got %s", host.Path(got))
	}
	if bench.Count != 1 {
		t.Errorf("expected count 1, got %d", bench.Count)
	}
	if got := tester.TapAt(graphics.Offset{X: 700, Y: 500}); got != nil {
		t.Errorf("expected nothing hit, got %s", host.Path(got))
	}
}

func TestTypeTextAndSubmit(t *testing.T) {
	tester, bench := newBench(t)

	var changes []string
	bench.Entry.Subscribe(host.EventTextChanged, func(ev host.Event) {
		changes = append(changes, ev.Text)
	})

	if err := tester.TypeText(ByName("Entry"), "hi"); err != nil {
		t.Fatal(err)
	}
	if err := tester.Cancel(ByName("Entry")); err != nil {
		t.Fatal(err)
	}
	if len(bench.Submitted) != 0 {
		t.Fatalf("cancel should not submit, got %v", bench.Submitted)
	}
	if err := tester.TypeText(ByName("Entry"), "!"); err != nil {
		t.Fatal(err)
	}
	if err := tester.Submit(ByName("Entry")); err != nil {
		t.Fatal(err)
	}

	want := []string{"h", "hi", "hi!"}
	if strings.Join(changes, ",") != strings.Join(want, ",") {
		t.Errorf("changes = %v, want %v", changes, want)
	}
	if len(bench.Submitted) != 1 || bench.Submitted[0] != "hi!" {
		t.Errorf("submitted = %v", bench.Submitted)
	}
}

func TestTypeText_RequiresTextBox(t *testing.T) {
	tester, _ := newBench(t)

	err := tester.TypeText(ByName("Increment"), "x")
	if err == nil || !strings.Contains(err.Error(), "not a TextBox") {
		t.Fatalf("expected kind error, got %v", err)
	}
	if err := tester.Submit(ByName("Missing")); err == nil {
		t.Error("expected error for missing text box")
	}
}

func TestDragFrom_Nothing(t *testing.T) {
	tester, _ := newBench(t)

	if err := tester.DragFrom(graphics.Offset{X: 700, Y: 500}, graphics.Offset{X: 10}); err == nil {
		t.Error("expected error dragging empty space")
	}
}

func TestPressMoveRelease(t *testing.T) {
	tester, bench := newBench(t)

	var moves int
	tester.Host().Subscribe(host.EventPointerMove, func(host.Event) { moves++ })
	if err := tester.DragFrom(graphics.Offset{X: 60, Y: 50}, graphics.Offset{X: 20, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if moves != dragSteps {
		t.Errorf("expected %d moves, got %d", dragSteps, moves)
	}
	if got := tester.Host().PointerPosition(); got != (graphics.Offset{X: 80, Y: 50}) {
		t.Errorf("pointer at %v", got)
	}
	// A drag presses but does not activate.
	if bench.Count != 0 {
		t.Errorf("drag should not click, count %d", bench.Count)
	}
}
