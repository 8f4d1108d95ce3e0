package drag

import (
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
)

// State is the drag phase of a Controller.
type State int

const (
	// StateIdle means no press is being tracked.
	StateIdle State = iota
	// StateDragging means a press on the handle is being tracked.
	StateDragging
	// StateComputingBounds is held while a move sample is being applied.
	StateComputingBounds
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateComputingBounds:
		return "computing_bounds"
	default:
		return "unknown"
	}
}

// StartDetails describes the press that began a drag.
type StartDetails struct {
	// Position is the pointer position in surface coordinates.
	Position graphics.Offset
}

// UpdateDetails describes one move sample.
type UpdateDetails struct {
	Position graphics.Offset
	// Delta is the motion since the previous sample (or the press).
	Delta graphics.Offset
}

// EndDetails describes the release that ended a drag.
type EndDetails struct {
	Position graphics.Offset
}

// Controller tracks one press-move-release sequence on a handle node.
//
// Callbacks run synchronously inside the host's event reaction. OnUpdate is
// only called while this controller is dragging.
type Controller struct {
	OnStart  func(StartDetails)
	OnUpdate func(UpdateDetails)
	OnEnd    func(EndDetails)

	host   host.Host
	handle host.Node
	state  State
	last   graphics.Offset
	unsubs []func()
}

// NewController subscribes to presses on handle and to host-level pointer
// motion and release. Call Dispose to unsubscribe.
func NewController(h host.Host, handle host.Node) *Controller {
	c := &Controller{host: h, handle: handle}
	c.unsubs = append(c.unsubs,
		handle.Subscribe(host.EventPointerDown, c.handleDown),
		h.Subscribe(host.EventPointerMove, c.handleMove),
		h.Subscribe(host.EventPointerUp, c.handleUp),
		handle.Subscribe(host.EventDestroying, func(host.Event) { c.Dispose() }),
	)
	return c
}

// State returns the current drag phase.
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a press is being tracked.
func (c *Controller) Dragging() bool {
	return c.state != StateIdle
}

// Handle returns the node that starts drags.
func (c *Controller) Handle() host.Node {
	return c.handle
}

// Dispose removes every subscription. It is safe to call more than once.
func (c *Controller) Dispose() {
	unsubs := c.unsubs
	c.unsubs = nil
	for _, u := range unsubs {
		u()
	}
	c.state = StateIdle
}

func (c *Controller) handleDown(ev host.Event) {
	if c.unsubs == nil {
		return
	}
	c.state = StateDragging
	c.last = ev.Position
	if c.OnStart != nil {
		c.OnStart(StartDetails{Position: ev.Position})
	}
}

func (c *Controller) handleMove(ev host.Event) {
	if c.state != StateDragging {
		return
	}
	c.state = StateComputingBounds
	delta := ev.Position.Sub(c.last)
	c.last = ev.Position
	if c.OnUpdate != nil {
		c.OnUpdate(UpdateDetails{Position: ev.Position, Delta: delta})
	}
	// OnUpdate may have disposed the controller.
	if c.state == StateComputingBounds {
		c.state = StateDragging
	}
}

func (c *Controller) handleUp(ev host.Event) {
	if c.state == StateIdle {
		return
	}
	c.state = StateIdle
	if c.OnEnd != nil {
		c.OnEnd(EndDetails{Position: ev.Position})
	}
}
