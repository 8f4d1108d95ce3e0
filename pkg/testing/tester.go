package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/paneui/pkg/animation"
	"github.com/go-drift/paneui/pkg/graphics"
	"github.com/go-drift/paneui/pkg/host"
	"github.com/go-drift/paneui/pkg/host/memhost"
)

const (
	// DefaultTestWidth is the default viewport width.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default viewport height.
	DefaultTestHeight = 600
	// FrameDuration is the fake time that passes per stepped frame.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Tester drives a memhost tree with simulated input and a fake clock.
type Tester struct {
	host      *memhost.Host
	clock     *FakeClock
	prevClock animation.Clock
	pressed   bool
}

// NewTester creates a tester over a fresh in-memory host with an 800x600
// viewport. Options are applied after the default viewport. Call Cleanup
// when done, or use NewTesterWithT instead.
func NewTester(opts ...memhost.Option) *Tester {
	clk := NewFakeClock()
	all := append([]memhost.Option{
		memhost.WithViewport(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
	}, opts...)
	t := &Tester{
		host:  memhost.New(all...),
		clock: clk,
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup.
func NewTesterWithT(t *testing.T, opts ...memhost.Option) *Tester {
	tester := NewTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup releases any held pointer and restores the animation clock.
func (t *Tester) Cleanup() {
	if t.pressed {
		t.host.PointerUp(t.host.PointerPosition())
		t.pressed = false
	}
	animation.SetClock(t.prevClock)
}

// Host returns the host under test.
func (t *Tester) Host() *memhost.Host {
	return t.host
}

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// SetViewport resizes the host viewport.
func (t *Tester) SetViewport(size graphics.Size) {
	t.host.SetViewportSize(size)
}

// Pump steps a single frame without moving the clock.
func (t *Tester) Pump() {
	t.host.Step()
}

// Advance moves the clock forward by d in FrameDuration steps, stepping a
// frame after each. A final partial step covers any remainder.
func (t *Tester) Advance(d time.Duration) {
	for d > 0 {
		step := min(d, FrameDuration)
		t.clock.Advance(step)
		t.host.Step()
		d -= step
	}
}

// PumpAndSettle steps frames until no animation is running or timeout of
// fake time has passed.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for {
		t.host.Step()
		if !animation.HasActiveTickers() {
			return nil
		}
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
}

// Roots returns the surfaces finders search, global surface first.
func (t *Tester) Roots() []host.Node {
	return t.host.Surfaces()
}

// Find evaluates a finder against every surface.
func (t *Tester) Find(finder Finder) FinderResult {
	var nodes []host.Node
	for _, root := range t.Roots() {
		nodes = append(nodes, finder.Evaluate(root)...)
	}
	return FinderResult{nodes: nodes, finder: finder, roots: t.Roots()}
}
