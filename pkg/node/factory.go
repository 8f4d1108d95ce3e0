// Package node creates display nodes from typed property bags.
package node

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/go-drift/paneui/pkg/host"
)

// Factory creates nodes on a host.
//
// In strict mode (the default) every property is validated against Schema
// before the node exists, and any invalid property fails the whole call.
// Lenient mode exists for hosts whose kinds accept different property sets:
// a property that fails validation or that the host refuses is skipped, and
// the node and its remaining properties are still applied.
type Factory struct {
	Host host.Host
	// Schema validates properties. Nil uses host.DefaultSchema.
	Schema host.Schema
	// Lenient swallows per-property failures.
	Lenient bool
	// Logger receives debug records for skipped properties.
	Logger *slog.Logger
}

// New returns a strict factory for h.
func New(h host.Host) *Factory {
	return &Factory{Host: h}
}

func (f *Factory) schema() host.Schema {
	if f.Schema != nil {
		return f.Schema
	}
	return host.DefaultSchema
}

func (f *Factory) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}

// Create makes an unattached node of kind with props applied.
func (f *Factory) Create(kind host.Kind, props host.Props) (host.Node, error) {
	order := props.Sorted()
	values := make(map[host.Prop]any, len(props))
	var errs []error
	for _, p := range order {
		v, err := f.schema().Validate(kind, p, props[p])
		if err != nil {
			if f.Lenient {
				f.logger().Debug("skipping property", "kind", kind, "prop", p, "error", err)
				continue
			}
			errs = append(errs, err)
			continue
		}
		values[p] = v
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("node.Create %s: %w", kind, stderrors.Join(errs...))
	}

	n, err := f.Host.NewNode(kind)
	if err != nil {
		return nil, fmt.Errorf("node.Create %s: %w", kind, err)
	}
	for _, p := range order {
		v, ok := values[p]
		if !ok {
			continue
		}
		if err := n.Set(p, v); err != nil {
			if f.Lenient {
				f.logger().Debug("host rejected property", "kind", kind, "prop", p, "error", err)
				continue
			}
			n.Destroy()
			return nil, fmt.Errorf("node.Create %s: %w", kind, err)
		}
	}
	return n, nil
}

// CreateIn makes a node and parents it under parent once its properties are
// applied.
func (f *Factory) CreateIn(parent host.Node, kind host.Kind, props host.Props) (host.Node, error) {
	n, err := f.Create(kind, props)
	if err != nil {
		return nil, err
	}
	if parent != nil {
		if err := n.SetParent(parent); err != nil {
			n.Destroy()
			return nil, fmt.Errorf("node.CreateIn %s under %s: %w", kind, host.Path(parent), err)
		}
	}
	return n, nil
}
