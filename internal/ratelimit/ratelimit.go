package ratelimit

import (
	"sync"
	"time"
)

// Limiter throttles requests per key over a fixed window. The payment
// handler keys it by actor id + client IP.
type Limiter interface {
	Allow(key string) (ok bool, retryAfter time.Duration)
}

// FixedWindow is a process-local fixed-window counter. State lives in a
// map guarded by a mutex and is lost on restart, which is acceptable for
// a single-instance deployment only; multi-instance deployments should
// supply a Limiter backed by a shared store with TTL.
type FixedWindow struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu    sync.Mutex
	items map[string]*entry
}

type entry struct {
	windowStart time.Time
	count       int
}

var _ Limiter = (*FixedWindow)(nil)

func NewFixedWindow(limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:  limit,
		window: window,
		now:    time.Now,
		items:  make(map[string]*entry),
	}
}

// Allow records one request against key. When the limit is exhausted it
// returns false and the time remaining until the window resets.
func (l *FixedWindow) Allow(key string) (bool, time.Duration) {
	if key == "" {
		return false, l.window
	}

	now := l.now().UTC()
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.items[key]
	if e == nil || now.Sub(e.windowStart) > l.window {
		e = &entry{windowStart: now}
		l.items[key] = e
	}

	if e.count >= l.limit {
		retryAfter := l.window - now.Sub(e.windowStart)
		if retryAfter <= 0 {
			retryAfter = time.Second
		}
		return false, retryAfter
	}

	e.count++
	return true, 0
}
