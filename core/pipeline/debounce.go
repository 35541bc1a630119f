package pipeline

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of raw-text edits into a single delayed
// interpretation: every Submit restarts the timer, so only the text seen
// after a pause of the full interval is delivered. Superseded submissions
// are discarded, never executed: last writer wins, this is not a queue.
type Debouncer struct {
	interval time.Duration
	fn       func(string)

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a Debouncer that calls fn with the most recent text
// once interval has elapsed with no further Submit. A non-positive
// interval falls back to 300ms.
func NewDebouncer(interval time.Duration, fn func(string)) *Debouncer {
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return &Debouncer{interval: interval, fn: fn}
}

// Submit records text as the latest edit and restarts the delay timer.
func (d *Debouncer) Submit(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.fn(text)
	})
}

// Stop discards any pending delivery. Safe to call multiple times.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
