package ratelimit

// NopLimiter is a no-op limiter
type NopLimiter struct{}

// Take always allows
func (NopLimiter) Take(string) Decision { return Decision{Allowed: true, Remaining: -1} }

// NewNopLimiter returns NopLimiter
func NewNopLimiter() Limiter { return NopLimiter{} }
