// Package testing provides a test harness for PaneUI trees.
//
// # Quick Start
//
// Create a tester, build a window on its host, and drive it with input:
//
//	func TestSettings(t *testing.T) {
//	    tester := panetest.NewTesterWithT(t)
//	    lib, _ := paneui.Create(tester.Host(), "Settings")
//	    win, _ := lib.CreateWindow(widgets.WindowOptions{Title: "Settings"})
//	    win.AddSection("Audio").AddButton("Mute", onMute)
//
//	    // Simulate input
//	    if err := tester.Tap(panetest.ByText("Mute")); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    // Assert state
//	    if !tester.Find(panetest.ByName("Audio")).Exists() {
//	        t.Error("expected Audio section")
//	    }
//	}
//
// Finders that match nothing report the closest names or texts in the tree,
// so a typo in a test reads as "did you mean ...".
//
// # Snapshot Testing
//
// Capture and compare the node tree and its paint order:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/settings.snapshot.json")
//
// Update snapshots with:
//
//	PANEUI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// The tester installs a fake clock into the animation package. Advance it to
// run tweens deterministically:
//
//	tester.Advance(150 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import panetest "github.com/go-drift/paneui/pkg/testing"
package testing
