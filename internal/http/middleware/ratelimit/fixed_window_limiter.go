package ratelimit

import (
	"context"
	"sync"
	"time"
)

// FixedWindowLimiter allows up to limit requests per key in consecutive windows.
// The first request of a key opens its window; the window closes window after that.
type FixedWindowLimiter struct {
	clock   Clock
	limit   int
	window  time.Duration
	mu      sync.Mutex
	windows map[string]*fixedWindow
}

type fixedWindow struct {
	count   int
	resetAt time.Time
}

// NewFixedWindowLimiter creates limiter with injected clock.
func NewFixedWindowLimiter(clock Clock, limit int, window time.Duration) *FixedWindowLimiter {
	if clock == nil {
		clock = SystemClock{}
	}
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{
		clock:   clock,
		limit:   limit,
		window:  window,
		windows: make(map[string]*fixedWindow),
	}
}

// Limit is the number of requests allowed per window.
func (l *FixedWindowLimiter) Limit() int { return l.limit }

// Take counts a request for key.
func (l *FixedWindowLimiter) Take(key string) Decision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.windows[key] = &fixedWindow{count: 1, resetAt: now.Add(l.window)}
		return Decision{Allowed: true, Remaining: l.limit - 1, ResetIn: l.window}
	}

	resetIn := w.resetAt.Sub(now)
	if w.count >= l.limit {
		return Decision{Allowed: false, Remaining: 0, ResetIn: resetIn}
	}
	w.count++
	return Decision{Allowed: true, Remaining: l.limit - w.count, ResetIn: resetIn}
}

// Sweep removes windows that closed at or before now.
func (l *FixedWindowLimiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for k, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *FixedWindowLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// RunSweeper calls Sweep on every target each interval until ctx is done.
func RunSweeper(ctx context.Context, clock Clock, interval time.Duration, targets ...Sweeper) {
	if clock == nil {
		clock = SystemClock{}
	}
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			now := clock.Now()
			for _, s := range targets {
				s.Sweep(now)
			}
		}
	}
}
