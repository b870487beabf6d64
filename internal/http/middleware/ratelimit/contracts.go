package ratelimit

import "time"

// Decision is the outcome of a single rate limit check.
type Decision struct {
	Allowed   bool
	Remaining int           // requests left in the current window, -1 if unlimited
	ResetIn   time.Duration // time until the budget for the key recovers
}

// Limiter is a rate limiter
type Limiter interface {
	Take(key string) Decision
}

// Sweeper drops state that expired before now and reports how many keys were removed.
type Sweeper interface {
	Sweep(now time.Time) int
}
