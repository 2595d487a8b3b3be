package playback

import (
	"sync"
	"time"
)

// autosaveInterval is the fixed delay between position snapshots. It is
// not user-configurable.
var autosaveInterval = 10 * time.Second

// autosaveTimer is a self-rearming single-shot timer. Each fire runs fn
// once; the controller re-arms the timer while processing the SaveState
// message the fire produces, so the chain halts only when a fire never
// reaches the loop.
type autosaveTimer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
	arms     int
	stopped  bool
}

func newAutosaveTimer(interval time.Duration, fn func()) *autosaveTimer {
	return &autosaveTimer{interval: interval, fn: fn}
}

// Arm schedules the next fire, replacing any pending one.
func (t *autosaveTimer) Arm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.arms++
	t.timer = time.AfterFunc(t.interval, t.fn)
}

// Stop cancels any pending fire. Arm calls after Stop are ignored.
func (t *autosaveTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
	}
}

// armCount reports how many times the timer has been armed.
func (t *autosaveTimer) armCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.arms
}
