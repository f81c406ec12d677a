package session

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is the delay between the last keystroke and the query
// commit when no explicit delay is configured.
const DefaultDebounceDelay = 400 * time.Millisecond

// TimerHandle is an outstanding scheduled callback.
type TimerHandle interface {
	// Stop cancels the callback. It reports whether the callback was stopped
	// before firing.
	Stop() bool
}

// Scheduler schedules a single callback after a delay. The production
// implementation uses the runtime timer; tests substitute a manual one.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) TimerHandle
}

type runtimeScheduler struct{}

func (runtimeScheduler) Schedule(delay time.Duration, fn func()) TimerHandle {
	return time.AfterFunc(delay, fn)
}

// Debouncer converts a high-frequency input signal into low-frequency query
// commits. Each Notify restarts the delay timer with the latest query;
// intermediate values never commit. Flush commits the latest value
// immediately iff a timer is pending, otherwise it is a no-op.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	sched   Scheduler
	commit  func(query string)
	timer   TimerHandle
	gen     uint64
	last    string
	pending bool
}

// NewDebouncer creates a Debouncer invoking commit after delay of input
// silence. A non-positive delay selects DefaultDebounceDelay.
func NewDebouncer(delay time.Duration, commit func(query string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}

	return &Debouncer{
		delay:  delay,
		sched:  runtimeScheduler{},
		commit: commit,
	}
}

// Notify records the latest query and (re)starts the delay timer.
func (d *Debouncer) Notify(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.last = query
	if d.timer != nil {
		d.timer.Stop()
	}
	// Stop can report false when the old callback is already dispatched and
	// blocked on d.mu. The generation stamp lets fire recognize such stale
	// callbacks and drop them.
	d.gen++
	gen := d.gen
	d.pending = true
	d.timer = d.sched.Schedule(d.delay, func() { d.fire(gen) })
}

// Flush cancels a pending timer and commits the latest recorded query
// immediately. Without a pending timer it is a no-op.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()

		return
	}
	d.timer.Stop()
	d.pending = false
	query := d.last
	d.mu.Unlock()

	d.commit(query)
}

// Stop cancels a pending timer without committing.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		// Raced with Flush, Stop, or a newer Notify; the commit already
		// happened, was cancelled, or belongs to a fresher timer.
		d.mu.Unlock()

		return
	}
	d.pending = false
	query := d.last
	d.mu.Unlock()

	d.commit(query)
}
