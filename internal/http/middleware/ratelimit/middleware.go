package ratelimit

import (
	"io"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"fastkart-parcels/internal/logx"
)

// Middleware rejects requests once the limiter denies their key.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter Limiter
	route   string // пусто для глобального лимита по IP
}

// New creates a middleware keyed by client IP.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter) *Middleware {
	return NewRoute(logger, counter, "", limiter)
}

// NewRoute creates a middleware keyed by client IP and route, e.g. "POST:/api/parcels".
func NewRoute(logger logx.Logger, counter prometheus.Counter, route string, limiter Limiter) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	return &Middleware{
		logger:  logx.OrNop(logger),
		counter: counter,
		limiter: limiter,
		route:   route,
	}
}

// Key returns the limiter key for r.
func (m *Middleware) Key(r *http.Request) string {
	ip := clientIP(r)
	if m.route == "" {
		return ip
	}
	return ip + ":" + m.route
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := m.Key(r)
			d := m.limiter.Take(key)

			if d.Remaining >= 0 {
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			}
			if d.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("key", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(d)))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				// клиент мог оборвать соединение
				m.logger.Debug("rate limit response write failed",
					logx.String("key", key),
					logx.Any("err", err),
				)
			}
		})
	}
}

func retryAfterSeconds(d Decision) int {
	s := int(math.Ceil(d.ResetIn.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}

// clientIP prefers the first X-Forwarded-For hop, then RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
