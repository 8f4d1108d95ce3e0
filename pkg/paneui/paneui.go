// Package paneui is the entry point for building windows on a host.
//
// A [Library] owns one display root on the host and the windows created
// under it:
//
//	lib, err := paneui.Create(h, "Tools")
//	if err != nil {
//		return err
//	}
//	defer lib.Destroy()
//
//	win, _ := lib.CreateWindow(widgets.WindowOptions{Title: "Tools"})
//	win.AddSection("General").AddButton("Save", save)
//
//	report := lib.ScanDiagnostics(nil)
package paneui

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-drift/paneui/pkg/diagnostics"
	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/node"
	"github.com/go-drift/paneui/pkg/theme"
	"github.com/go-drift/paneui/pkg/widgets"
)

// DefaultName names the display root when Create is given an empty name.
const DefaultName = "PaneUI"

// ErrDestroyed is returned by operations on a destroyed Library.
var ErrDestroyed = stderrors.New("paneui: library destroyed")

// Library owns a display root and the windows created under it.
type Library struct {
	name    string
	host    host.Host
	root    host.Node
	env     widgets.Env
	logger  *slog.Logger
	scanner diagnostics.Scanner
	windows []*widgets.Window

	destroyed bool
}

// Create builds the display root named name on h. The root goes on the
// per-user surface when a session resolver supplies one, and on the host's
// global surface otherwise. A leftover root with the same name is replaced.
func Create(h host.Host, name string, opts ...Option) (*Library, error) {
	if h == nil {
		return nil, stderrors.New("paneui.Create: nil host")
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if name == "" {
		name = DefaultName
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	scanner := diagnostics.DefaultScanner
	if cfg.scanner != nil {
		scanner = *cfg.scanner
	}
	th := cfg.theme
	if th == nil {
		th = theme.Current()
	}

	factory := node.New(h)
	factory.Lenient = cfg.lenient
	factory.Logger = logger

	surface := resolveSurface(h, cfg.session)
	if old := host.FindFirstChild(surface, name); old != nil && old.Kind() == host.KindScreen {
		logger.Debug("replacing existing display root", "path", host.Path(old))
		old.Destroy()
	}
	root, err := factory.CreateIn(surface, host.KindScreen, host.Props{host.Name: name})
	if err != nil {
		return nil, fmt.Errorf("paneui.Create %q: %w", name, err)
	}

	lib := &Library{
		name:    name,
		host:    h,
		root:    root,
		logger:  logger,
		scanner: scanner,
		env:     widgets.Env{Host: h, Factory: factory, Theme: th, Logger: logger},
	}
	logger.Debug("library created", "name", name, "root", host.Path(root))
	return lib, nil
}

func resolveSurface(h host.Host, session host.SessionResolver) host.Node {
	if session == nil {
		session, _ = h.(host.SessionResolver)
	}
	if session != nil {
		if s, ok := session.UserSurface(); ok && s != nil && !s.Destroyed() {
			return s
		}
	}
	return h.GlobalSurface()
}

// Name returns the display root's name.
func (l *Library) Name() string { return l.name }

// Host returns the host the library renders on.
func (l *Library) Host() host.Host { return l.host }

// Root returns the display root, or nil after Destroy.
func (l *Library) Root() host.Node {
	if l.destroyed {
		return nil
	}
	return l.root
}

// Theme returns the theme new windows are built with.
func (l *Library) Theme() *theme.ThemeData { return l.env.Theme }

// Destroyed reports whether Destroy has run.
func (l *Library) Destroyed() bool { return l.destroyed }

// CreateWindow builds a window under the display root.
func (l *Library) CreateWindow(opts widgets.WindowOptions) (*widgets.Window, error) {
	if l.destroyed {
		return nil, ErrDestroyed
	}
	w, err := widgets.NewWindow(l.env, l.root, opts)
	if err != nil {
		return nil, err
	}
	l.windows = append(l.windows, w)
	w.OnClose(l.forget)
	return w, nil
}

func (l *Library) forget(w *widgets.Window) {
	l.windows = slices.DeleteFunc(l.windows, func(x *widgets.Window) bool { return x == w })
}

// Windows returns the open windows in creation order.
func (l *Library) Windows() []*widgets.Window {
	return slices.Clone(l.windows)
}

// ScanDiagnostics inspects root, or the library's display root when root is
// nil. A destroyed library has no root to fall back to and yields an Error
// finding.
func (l *Library) ScanDiagnostics(root host.Node) diagnostics.Report {
	if root == nil {
		root = l.Root()
	}
	report := l.scanner.Scan(root)
	l.logger.Debug("diagnostics scanned", "summary", report.Summary())
	return report
}

// Destroy tears down the display root and every window. It is safe to call
// more than once.
func (l *Library) Destroy() {
	if l.destroyed {
		return
	}
	l.destroyed = true
	l.root.Destroy()
	l.windows = nil
	l.logger.Debug("library destroyed", "name", l.name)
}
