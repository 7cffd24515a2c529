package listing

import (
	"sync"
	"time"
)

// DefaultSearchDebounce is the reference delay between the last keystroke
// and the filter recomputation it triggers
const DefaultSearchDebounce = 300 * time.Millisecond

// Debouncer propagates a rapidly changing value only after it has been
// stable for the full delay (trailing edge). Each Update supersedes the
// previous one, so at most one timer is ever pending.
type Debouncer struct {
	delay time.Duration
	fn    func(string)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending string
	stopped bool
}

// NewDebouncer returns a debouncer invoking fn with the latest value once
// input quiesces for delay. fn runs with the debouncer's lock held and must
// not call Update or Stop.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Update restarts the delay with a new value. The previous pending value,
// if any, is discarded and never delivered: a timer that already expired
// but has not run yet is invalidated by the generation bump.
func (d *Debouncer) Update(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.pending = value
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire delivers the pending value unless a newer Update or Stop superseded
// the timer between its expiry and now
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || gen != d.gen {
		return
	}
	d.fn(d.pending)
}

// Stop cancels any pending delivery permanently. Safe to call more than
// once; Update after Stop is a no-op.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
