package animation

import (
	"math"
	"sync"
	"testing"
	"time"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func useManualClock(t *testing.T) *manualClock {
	t.Helper()
	clk := &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestController_RunsToTarget(t *testing.T) {
	clk := useManualClock(t)
	c := NewController(100 * time.Millisecond)
	defer c.Dispose()

	notified := 0
	c.AddListener(func() { notified++ })
	c.AnimateTo(1)
	if c.Status() != Forward || !c.IsAnimating() {
		t.Fatalf("status = %v, animating = %v", c.Status(), c.IsAnimating())
	}

	clk.advance(50 * time.Millisecond)
	StepTickers()
	if math.Abs(c.Value-0.5) > 1e-9 {
		t.Errorf("midway value = %v, want 0.5", c.Value)
	}

	clk.advance(80 * time.Millisecond)
	StepTickers()
	if c.Value != 1 || c.Status() != Completed || c.IsAnimating() {
		t.Errorf("final value = %v status = %v", c.Value, c.Status())
	}
	if notified != 2 {
		t.Errorf("listener fired %d times, want 2", notified)
	}
	if HasActiveTickers() {
		t.Error("ticker should stop after completion")
	}
}

func TestController_RetargetMidFlight(t *testing.T) {
	clk := useManualClock(t)
	c := NewController(100 * time.Millisecond)
	defer c.Dispose()

	c.AnimateTo(1)
	clk.advance(40 * time.Millisecond)
	StepTickers()

	c.AnimateTo(0)
	if c.Status() != Reverse {
		t.Fatalf("status = %v, want reverse", c.Status())
	}
	clk.advance(40 * time.Millisecond)
	StepTickers()
	if c.Value != 0 || c.Status() != Dismissed {
		t.Errorf("value = %v status = %v", c.Value, c.Status())
	}
}

func TestController_ZeroDurationIsImmediate(t *testing.T) {
	c := NewController(0)
	c.AnimateTo(1)
	if c.Value != 1 || c.Status() != Completed || c.IsAnimating() {
		t.Errorf("value = %v status = %v", c.Value, c.Status())
	}
}

func TestTween(t *testing.T) {
	tw := Tween{Begin: 0, End: 84}
	if got := tw.Evaluate(0.5); got != 42 {
		t.Errorf("Evaluate(0.5) = %v", got)
	}
	c := &Controller{Value: 1}
	if got := tw.Transform(c); got != 84 {
		t.Errorf("Transform = %v", got)
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	for _, curve := range []Curve{EaseOut, EaseInOut} {
		if curve(0) != 0 || curve(1) != 1 {
			t.Error("curves must pin endpoints")
		}
		if v := curve(0.5); v <= 0 || v >= 1 {
			t.Errorf("curve(0.5) = %v", v)
		}
	}
	if EaseOut(0.2) <= 0.2 {
		t.Error("ease-out should run ahead of linear early on")
	}
}
