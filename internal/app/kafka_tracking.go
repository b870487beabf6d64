package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"fastkart-parcels/internal/config"
	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/logx"
	"fastkart-parcels/internal/service/parcel"
	"fastkart-parcels/internal/service/tracking"
	"fastkart-parcels/internal/transport/kafka"
)

type trackingHandler interface {
	Handle(ctx context.Context, e domain.TrackingEvent) error
}

// makeTrackingKafka adapts the processor to the consumer: skipped events are
// committed, everything else is retried.
func makeTrackingKafka(p trackingHandler) kafka.HandleFunc {
	return func(ctx context.Context, e domain.TrackingEvent) error {
		err := p.Handle(ctx, e)
		if errors.Is(err, tracking.ErrSkipped) {
			return kafka.Permanent(err)
		}
		return err
	}
}

func registerWorker(container *dig.Container) error {
	err := provideAll(container,
		func(parcels *parcel.Service, logger logx.Logger, events *prometheus.CounterVec) *tracking.Processor {
			return tracking.NewProcessor(parcels, logger, events)
		},
		func(cfg *config.Config, logger logx.Logger, p *tracking.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, makeTrackingKafka(p))
		},
	)
	if err != nil {
		return fmt.Errorf("worker: %w", err)
	}
	return nil
}
