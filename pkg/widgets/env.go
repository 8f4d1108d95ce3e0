package widgets

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/go-drift/paneui/pkg/errors"
	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/node"
	"github.com/go-drift/paneui/pkg/theme"
)

var (
	// ErrNoOptions is returned when a dropdown is built without options.
	ErrNoOptions = stderrors.New("widgets: dropdown needs at least one option")
	// ErrWindowClosed is recorded when content is added to a closed window.
	ErrWindowClosed = stderrors.New("widgets: window is closed")
)

// Env carries the collaborators every widget constructor needs.
type Env struct {
	Host host.Host
	// Factory creates nodes. Nil uses a strict factory for Host.
	Factory *node.Factory
	// Theme styles new widgets. Nil uses theme.Current at build time.
	Theme *theme.ThemeData
	// Logger receives debug records. Nil uses slog.Default.
	Logger *slog.Logger
}

func (e Env) factory() *node.Factory {
	if e.Factory != nil {
		return e.Factory
	}
	return node.New(e.Host)
}

func (e Env) theme() *theme.ThemeData {
	if e.Theme != nil {
		return e.Theme
	}
	return theme.Current()
}

func (e Env) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// Control is implemented by every widget a Section stacks.
type Control interface {
	// Node returns the widget's root node.
	Node() host.Node
	// Label returns the text the widget was created with.
	Label() string
}

// builder creates the nodes of one widget and keeps the first failure.
type builder struct {
	env Env
	op  string
	err error
}

// make creates a node and attaches it to parent. When strict creation fails
// the node is retried leniently so the widget still gets a subtree.
func (b *builder) make(parent host.Node, kind host.Kind, props host.Props) host.Node {
	f := b.env.factory()
	n, err := f.Create(kind, props)
	if err != nil {
		b.fail(err)
		lenient := *f
		lenient.Lenient = true
		lenient.Logger = b.env.logger()
		if n, err = lenient.Create(kind, props); err != nil {
			b.fail(err)
			return nil
		}
	}
	if parent != nil {
		if err := n.SetParent(parent); err != nil {
			b.fail(err)
		}
	}
	return n
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = fmt.Errorf("%s: %w", b.op, err)
	}
}

// report hands a build failure to the global error handler.
func (b *builder) report(n host.Node) {
	if b.err == nil {
		return
	}
	kind := errors.KindHost
	var pe *errors.PropertyError
	if stderrors.As(b.err, &pe) {
		kind = errors.KindProperty
	}
	errors.Report(&errors.UIError{Op: b.op, Kind: kind, Node: path(n), Err: b.err})
}

// set applies a property, ignoring nodes that were never built or are gone.
func set(n host.Node, p host.Prop, v any) {
	if n == nil || n.Destroyed() {
		return
	}
	_ = n.Set(p, v)
}

func on(n host.Node, t host.EventType, fn func(host.Event)) func() {
	if n == nil {
		return func() {}
	}
	return n.Subscribe(t, fn)
}

func path(n host.Node) string {
	if n == nil {
		return "<unbuilt>"
	}
	return host.Path(n)
}

// callback runs a user callback for the widget rooted at n.
func callback(n host.Node, name string, fn func()) {
	errors.Guard(path(n), name, fn)
}
