package animation

import (
	"fmt"
	"time"
)

// Status is the state of a Controller.
type Status int

const (
	// Dismissed means the controller rests at 0.
	Dismissed Status = iota
	// Forward means the value is moving up.
	Forward
	// Reverse means the value is moving down.
	Reverse
	// Completed means the controller rests at 1.
	Completed
)

func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller moves Value in [0, 1] toward a target over Duration.
type Controller struct {
	// Value is the current progress.
	Value float64
	// Duration is the time a full 0 -> 1 run takes.
	Duration time.Duration
	// Curve eases progress. Nil means linear.
	Curve Curve

	status    Status
	ticker    *Ticker
	from      float64
	target    float64
	span      time.Duration
	listeners []func()
}

// NewController creates a controller resting at 0.
func NewController(duration time.Duration) *Controller {
	return &Controller{Duration: duration, Curve: LinearCurve}
}

// AnimateTo moves the value toward target, which is clamped to [0, 1].
// Retargeting mid-flight starts from the current value and scales the
// duration by the remaining distance.
func (c *Controller) AnimateTo(target float64) {
	target = min(max(target, 0), 1)
	c.stopTicker()
	c.from = c.Value
	c.target = target
	if target > c.Value {
		c.status = Forward
	} else {
		c.status = Reverse
	}
	distance := target - c.Value
	if distance < 0 {
		distance = -distance
	}
	c.span = time.Duration(float64(c.Duration) * distance)
	if c.span <= 0 {
		c.Value = target
		c.settle()
		c.notify()
		return
	}
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	progress := float64(elapsed) / float64(c.span)
	if progress > 1 {
		progress = 1
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.from + (c.target-c.from)*eased
	if progress >= 1 {
		c.Value = c.target
		c.stopTicker()
		c.settle()
	}
	c.notify()
}

func (c *Controller) settle() {
	if c.Value <= 0 {
		c.status = Dismissed
	} else if c.Value >= 1 {
		c.status = Completed
	}
}

func (c *Controller) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Stop freezes the value where it is.
func (c *Controller) Stop() {
	c.stopTicker()
	c.settle()
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating reports whether a ticker is driving the value.
func (c *Controller) IsAnimating() bool {
	return c.ticker != nil
}

// Target returns the value the controller is heading to.
func (c *Controller) Target() float64 {
	return c.target
}

// AddListener registers fn to run after every value change.
func (c *Controller) AddListener(fn func()) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) notify() {
	for _, fn := range c.listeners {
		fn()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *Controller) Dispose() {
	c.stopTicker()
	c.listeners = nil
}
