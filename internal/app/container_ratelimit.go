package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"fastkart-parcels/internal/config"
	"fastkart-parcels/internal/http/middleware/ratelimit"
	"fastkart-parcels/internal/logx"
)

const (
	routeWindow       = time.Minute
	createParcelRoute = "POST:/api/parcels"
	updateParcelRoute = "PATCH:/api/parcels"
)

// rateLimiters holds every limiter the router uses. Global is nil when the
// per-IP token bucket is disabled.
type rateLimiters struct {
	Global ratelimit.Limiter
	Create *ratelimit.FixedWindowLimiter
	Update *ratelimit.FixedWindowLimiter
}

func (l *rateLimiters) sweepers() []ratelimit.Sweeper {
	out := []ratelimit.Sweeper{l.Create, l.Update}
	if s, ok := l.Global.(ratelimit.Sweeper); ok {
		out = append(out, s)
	}
	return out
}

func newRateLimiters(cfg *config.Config, clock ratelimit.Clock) *rateLimiters {
	rl := cfg.RateLimit
	l := &rateLimiters{
		Create: ratelimit.NewFixedWindowLimiter(clock, rl.CreatePerMinute, routeWindow),
		Update: ratelimit.NewFixedWindowLimiter(clock, rl.UpdatePerMinute, routeWindow),
	}
	if rl.Enabled {
		l.Global = ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
			Rate:       rl.Rate,
			Burst:      rl.Burst,
			TTL:        rl.TTL,
			MaxBuckets: rl.MaxBuckets,
		})
	}
	return l
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.SystemClock{}
}

type rateLimitIn struct {
	dig.In
	Logger   logx.Logger
	Counter  prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiters *rateLimiters
}

type rateLimitMiddlewares struct {
	Global *ratelimit.Middleware
	Create *ratelimit.Middleware
	Update *ratelimit.Middleware
}

func newRateLimitMiddlewares(in rateLimitIn) rateLimitMiddlewares {
	m := rateLimitMiddlewares{
		Create: ratelimit.NewRoute(in.Logger, in.Counter, createParcelRoute, in.Limiters.Create),
		Update: ratelimit.NewRoute(in.Logger, in.Counter, updateParcelRoute, in.Limiters.Update),
	}
	if in.Limiters.Global != nil {
		m.Global = ratelimit.New(in.Logger, in.Counter, in.Limiters.Global)
	}
	return m
}
