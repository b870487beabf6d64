package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/dig"

	"fastkart-parcels/internal/config"
	"fastkart-parcels/internal/http/middleware/ratelimit"
	"fastkart-parcels/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a Runner bound to the API container layout.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the API and blocks until shutdown. Unexpected errors terminate the process.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := loggerFrom(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func loggerFrom(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil {
		return logx.NewJSON(os.Stderr, "info")
	}
	return logger
}

type appIn struct {
	dig.In

	Ctx      context.Context
	Config   *config.Config
	Logger   logx.Logger
	Server   *http.Server
	Pprof    *http.Server `name:"pprof_server" optional:"true"`
	Mongo    *mongo.Client
	Limiters *rateLimiters
	Clock    ratelimit.Clock
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in appIn) error {
	ctx, cancel := context.WithCancel(in.Ctx)
	defer cancel()

	startSweepLoop(ctx, in.Logger, in.Clock, in.Config.RateLimit.SweepInterval, in.Limiters.sweepers()...)

	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, "api", errCh)
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof", errCh)
	}

	var runErr error
	select {
	case <-ctx.Done():
		in.Logger.Info("shutting down service-parcels")
		runErr = in.Ctx.Err()
	case err := <-errCh:
		runErr = err
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, time.Second)
	}
	disconnectMongo(in.Mongo, in.Logger, 5*time.Second)
	return runErr
}

func startServer(server *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s server: %w", name, err)
		}
	}()
}

// startSweepLoop evicts expired rate limit state until ctx is done.
func startSweepLoop(ctx context.Context, logger logx.Logger, clock ratelimit.Clock, interval time.Duration, targets ...ratelimit.Sweeper) {
	if interval <= 0 || len(targets) == 0 {
		return
	}
	go func() {
		logger.Debug("rate limit sweeper started", logx.Duration("interval", interval))
		ratelimit.RunSweeper(ctx, clock, interval, targets...)
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
		_ = srv.Close()
	}
}
