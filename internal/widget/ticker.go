package widget

import "time"

// Ticker fires fn once per interval when polled from a game loop. Missed intervals
// collapse into a single fire, like a toolkit timer behind a stalled event loop.
type Ticker struct {
	interval time.Duration
	fn       func()
	next     time.Time
}

func NewTicker(interval time.Duration, fn func()) *Ticker {
	return &Ticker{interval: interval, fn: fn}
}

// Poll runs fn if the interval has elapsed and reports whether it did.
func (t *Ticker) Poll(now time.Time) bool {
	if t.next.IsZero() {
		t.next = now.Add(t.interval)
		return false
	}
	if now.Before(t.next) {
		return false
	}
	t.fn()
	t.next = t.next.Add(t.interval)
	if !now.Before(t.next) {
		t.next = now.Add(t.interval)
	}
	return true
}
