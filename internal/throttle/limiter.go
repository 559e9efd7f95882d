package throttle

import (
	"sync"
	"time"
)

// Limiter is a minimum-interval guard protecting provider rate limits.
// It is advisory backpressure, not a lock: a tripped guard tells the caller
// to wait, it does not stop a run already in flight.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// New creates a Limiter with the given minimum interval between calls.
func New(interval time.Duration) *Limiter {
	return &Limiter{interval: interval, now: time.Now}
}

// TimeSinceLastCall reports how long ago RecordCall last ran. Before the
// first call it reports a duration comfortably past any interval.
func (l *Limiter) TimeSinceLastCall() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.last.IsZero() {
		return l.interval + time.Hour
	}
	return l.now().Sub(l.last)
}

// RecordCall marks now as the last call time.
func (l *Limiter) RecordCall() {
	l.mu.Lock()
	l.last = l.now()
	l.mu.Unlock()
}

// Allow records the call and returns true when the interval has elapsed;
// otherwise it returns false and the remaining wait, leaving state untouched.
func (l *Limiter) Allow() (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if !l.last.IsZero() {
		if elapsed := now.Sub(l.last); elapsed < l.interval {
			return false, l.interval - elapsed
		}
	}
	l.last = now
	return true, 0
}
