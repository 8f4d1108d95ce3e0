package host_test

import (
	"testing"

	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/host/memhost"
)

func TestPathAndWalk(t *testing.T) {
	h := memhost.New()
	root, _ := h.NewNode(host.KindScreen)
	_ = root.Set(host.Name, "Lib")
	_ = root.SetParent(h.GlobalSurface())

	win, _ := h.NewNode(host.KindFrame)
	_ = win.Set(host.Name, "Window")
	_ = win.SetParent(root)

	layout, _ := h.NewNode(host.KindListLayout)
	_ = layout.SetParent(win)

	if got := host.Path(layout); got != "GlobalSurface.Lib.Window.ListLayout" {
		t.Errorf("Path = %q", got)
	}
	if got := host.CountDescendants(root); got != 2 {
		t.Errorf("CountDescendants = %d, want 2", got)
	}
	if d := host.Descendants(root); len(d) != 2 || d[0] != win || d[1] != layout {
		t.Errorf("Descendants = %v", d)
	}
	if host.FindFirstChild(root, "Window") != win {
		t.Error("FindFirstChild failed")
	}
	if host.FindChildOfKind(win, host.KindListLayout) != layout {
		t.Error("FindChildOfKind failed")
	}
	if host.Path(nil) != "<nil>" {
		t.Error("nil path")
	}
}
