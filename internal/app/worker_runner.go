package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/dig"

	"fastkart-parcels/internal/logx"
	"fastkart-parcels/internal/transport/kafka"
)

// WorkerRunner runs the tracking events consumer
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes until the container context is done. Errors other than cancellation panic.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	client *mongo.Client,
	logger logx.Logger,
	consumer *kafka.Consumer,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: KAFKA_BROKERS and KAFKA_TRACKING_TOPIC must be set")
	}
	defer closeWorker(client, logger, consumer)

	logger.Info("service-parcels-worker started")
	return consumer.Run(ctx)
}

func closeWorker(client *mongo.Client, logger logx.Logger, consumer *kafka.Consumer) {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}
	disconnectMongo(client, logger, 5*time.Second)
}
