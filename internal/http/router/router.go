package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fastkart-parcels/internal/http/handlers"
	mw "fastkart-parcels/internal/http/middleware"
	"fastkart-parcels/internal/http/middleware/ratelimit"
	"fastkart-parcels/internal/logx"
	"fastkart-parcels/internal/metrics"
)

const requestTimeout = 10 * time.Second

// Deps groups everything the router mounts.
type Deps struct {
	Logger  logx.Logger
	Metrics *metrics.HTTP
	// Exposition handler for /metrics; the route is skipped when nil.
	MetricsHandler http.Handler

	Base      *handlers.Handlers
	Auth      *handlers.AuthHandler
	Customers *handlers.CustomerHandler
	Parcels   *handlers.ParcelHandler
	Analytics *handlers.AnalyticsHandler
	Public    *handlers.PublicHandler
	Dev       *handlers.DevHandler

	Authenticate func(http.Handler) http.Handler

	// Optional.
	GlobalLimit *ratelimit.Middleware
	CreateLimit *ratelimit.Middleware
	UpdateLimit *ratelimit.Middleware
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(mw.Observability(d.Logger, d.Metrics))
	if d.GlobalLimit != nil {
		r.Use(d.GlobalLimit.Handler())
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", d.Auth.Login)
		r.Post("/auth/logout", d.Auth.Logout)
		r.Get("/public/parcel/{id}", d.Public.Parcel)
		r.Post("/dev/seed-owner", d.Dev.SeedOwner)

		r.Group(func(r chi.Router) {
			r.Use(d.Authenticate)

			r.Get("/auth/me", d.Auth.Me)

			r.Get("/customers", d.Customers.List)
			r.Post("/customers", d.Customers.Create)

			r.Get("/parcels", d.Parcels.List)
			r.With(optional(d.CreateLimit)...).Post("/parcels", d.Parcels.Create)
			r.Get("/parcels/stats", d.Parcels.Stats)
			r.Get("/parcels/{id}", d.Parcels.Get)
			r.With(optional(d.UpdateLimit)...).Patch("/parcels/{id}", d.Parcels.Update)
			r.Delete("/parcels/{id}", d.Parcels.Delete)

			r.Get("/analytics", d.Analytics.Report)
		})
	})

	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	return r
}

func optional(m *ratelimit.Middleware) []func(http.Handler) http.Handler {
	if m == nil {
		return nil
	}
	return []func(http.Handler) http.Handler{m.Handler()}
}
