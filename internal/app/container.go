package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/dig"

	"fastkart-parcels/internal/auth"
	"fastkart-parcels/internal/config"
	"fastkart-parcels/internal/http/handlers"
	mw "fastkart-parcels/internal/http/middleware"
	"fastkart-parcels/internal/http/pprofserver"
	"fastkart-parcels/internal/http/router"
	"fastkart-parcels/internal/logx"
	"fastkart-parcels/internal/metrics"
	"fastkart-parcels/internal/repository"
	"fastkart-parcels/internal/service/analytics"
	"fastkart-parcels/internal/service/customer"
	"fastkart-parcels/internal/service/parcel"
	"fastkart-parcels/internal/service/user"
)

const (
	operationTimeout = 3 * time.Second
	mongoRetries     = 10
	mongoRetryDelay  = time.Second
)

// mongoConnectFunc dials MongoDB with retries.
type mongoConnectFunc func(ctx context.Context, logger logx.Logger, uri string, retries int, delay time.Duration) (*mongo.Client, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig   func() (*config.Config, error)
	mongoConnect mongoConnectFunc
	logFatalf    func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig:   config.Load,
		mongoConnect: connectMongoWithRetry,
		logFatalf:    log.Fatalf,
	}
}

// WithConfig replaces the configuration loader.
func (b *ContainerBuilder) WithConfig(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithMongoConnect sets the database connection function
func (b *ContainerBuilder) WithMongoConnect(fn mongoConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.mongoConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the API container or exits.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx, registerHTTP)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the tracking worker container or exits.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.build(ctx, registerWorker)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context, surface func(*dig.Container) error) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDB(container, b.mongoConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := surface(container); err != nil {
		return nil, err
	}
	return container, nil
}

// MustBuildContainer builds the API container with production defaults.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container with production defaults.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		func() prometheus.Registerer { return prometheus.DefaultRegisterer },
		func() prometheus.Gatherer { return prometheus.DefaultGatherer },
		provideMetrics,
	)
}

func registerDB(container *dig.Container, connect mongoConnectFunc) error {
	provideClient := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*mongo.Client, error) {
		return connect(ctx, logger, cfg.Mongo.URI, mongoRetries, mongoRetryDelay)
	}
	provideDatabase := func(ctx context.Context, cfg *config.Config, client *mongo.Client) (*mongo.Database, error) {
		db := client.Database(cfg.Mongo.Database)
		if err := repository.EnsureIndexes(ctx, db); err != nil {
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		return db, nil
	}
	return provideAll(container, provideClient, provideDatabase)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewUserRepo,
		repository.NewCustomerRepo,
		repository.NewParcelRepo,
		func() time.Duration { return operationTimeout },
		func(cfg *config.Config) *auth.TokenManager {
			return auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		},
		func() *auth.Hasher { return auth.NewHasher(auth.DefaultCost) },
		func(repo *repository.UserRepo, tokens *auth.TokenManager, hasher *auth.Hasher, timeout time.Duration, logger logx.Logger) *user.Service {
			return user.NewService(repo, tokens, hasher, timeout, logger)
		},
		func(repo *repository.CustomerRepo, timeout time.Duration) *customer.Service {
			return customer.NewService(repo, timeout)
		},
		func(repo *repository.ParcelRepo, customers *repository.CustomerRepo, timeout time.Duration, logger logx.Logger) *parcel.Service {
			return parcel.NewService(repo, customers, timeout, logger)
		},
		func(repo *repository.ParcelRepo, customers *repository.CustomerRepo, timeout time.Duration) *analytics.Service {
			return analytics.NewService(repo, customers, timeout)
		},
	)
}

type parcelHandlerIn struct {
	dig.In
	Logger  logx.Logger
	Parcels *parcel.Service
	Created prometheus.Counter `name:"parcels_created_total"`
}

type routerIn struct {
	dig.In

	Logger   logx.Logger
	Metrics  *metrics.HTTP
	Gatherer prometheus.Gatherer
	Tokens   *auth.TokenManager
	Limits   rateLimitMiddlewares

	Base      *handlers.Handlers
	Auth      *handlers.AuthHandler
	Customers *handlers.CustomerHandler
	Parcels   *handlers.ParcelHandler
	Analytics *handlers.AnalyticsHandler
	Public    *handlers.PublicHandler
	Dev       *handlers.DevHandler
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:         in.Logger,
		Metrics:        in.Metrics,
		MetricsHandler: promhttp.HandlerFor(in.Gatherer, promhttp.HandlerOpts{}),
		Base:           in.Base,
		Auth:           in.Auth,
		Customers:      in.Customers,
		Parcels:        in.Parcels,
		Analytics:      in.Analytics,
		Public:         in.Public,
		Dev:            in.Dev,
		Authenticate:   mw.Authenticate(in.Tokens, in.Logger),
		GlobalLimit:    in.Limits.Global,
		CreateLimit:    in.Limits.Create,
		UpdateLimit:    in.Limits.Update,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	err := provideAll(container,
		handlers.New,
		func(cfg *config.Config, logger logx.Logger, users *user.Service) *handlers.AuthHandler {
			return handlers.NewAuthHandler(logger, users, handlers.CookieConfig{
				Secure: cfg.Auth.CookieSecure,
				TTL:    cfg.Auth.TokenTTL,
			})
		},
		func(logger logx.Logger, customers *customer.Service) *handlers.CustomerHandler {
			return handlers.NewCustomerHandler(logger, customers)
		},
		func(in parcelHandlerIn) *handlers.ParcelHandler {
			return handlers.NewParcelHandler(in.Logger, in.Parcels, in.Created)
		},
		func(logger logx.Logger, reports *analytics.Service) *handlers.AnalyticsHandler {
			return handlers.NewAnalyticsHandler(logger, reports)
		},
		func(logger logx.Logger, parcels *parcel.Service) *handlers.PublicHandler {
			return handlers.NewPublicHandler(logger, parcels)
		},
		func(cfg *config.Config, logger logx.Logger, users *user.Service) *handlers.DevHandler {
			return handlers.NewDevHandler(logger, users, handlers.SeedConfig{
				Enabled:  cfg.IsDevelopment(),
				Secret:   cfg.Seed.Secret,
				Email:    cfg.Seed.OwnerEmail,
				Password: cfg.Seed.OwnerPassword,
				Name:     cfg.Seed.OwnerName,
			})
		},
		newRateLimitClock,
		newRateLimiters,
		newRateLimitMiddlewares,
		newRouter,
		serverProvider,
	)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}

	pprofProvider := func(cfg *config.Config, logger logx.Logger) *http.Server {
		if !cfg.Pprof.Enabled {
			return nil
		}
		return pprofserver.NewServer(pprofserver.Config{
			Addr: cfg.Pprof.Addr,
			User: cfg.Pprof.User,
			Pass: cfg.Pprof.Pass,
		}, logger)
	}
	if err := container.Provide(pprofProvider, dig.Name("pprof_server")); err != nil {
		return fmt.Errorf("http: provide pprof server: %w", err)
	}
	return nil
}
