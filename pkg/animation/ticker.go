package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active. The callback receives
// the time elapsed since Start.
type Ticker struct {
	callback func(elapsed time.Duration)
	active   bool
	start    time.Time
}

// NewTicker creates an inactive ticker.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	if t.active {
		return
	}
	t.active = true
	t.start = Now()
	activeTickers[t] = struct{}{}
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	if !t.active {
		return
	}
	t.active = false
	delete(activeTickers, t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return t.active
}

// StepTickers advances all active tickers. Hosts call it once per frame.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	type due struct {
		t       *Ticker
		elapsed time.Duration
	}
	now := Now()
	batch := make([]due, 0, len(activeTickers))
	for t := range activeTickers {
		batch = append(batch, due{t: t, elapsed: now.Sub(t.start)})
	}
	tickerMu.Unlock()

	for _, d := range batch {
		if d.t.IsActive() && d.t.callback != nil {
			d.t.callback(d.elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
