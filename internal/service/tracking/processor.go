package tracking

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/logx"
)

// Result labels of the tracking events counter.
const (
	ResultApplied = "applied"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// ErrSkipped marks an event that can never be applied (bad payload, unknown parcel).
var ErrSkipped = errors.New("tracking event skipped")

// Processor applies rider events to parcels
type Processor struct {
	parcels ParcelPort
	logger  logx.Logger
	events  *prometheus.CounterVec
}

// NewProcessor creates a new tracking Processor. events may be nil.
func NewProcessor(parcels ParcelPort, logger logx.Logger, events *prometheus.CounterVec) *Processor {
	return &Processor{parcels: parcels, logger: logx.OrNop(logger), events: events}
}

// Handle processes a single event. Events that fail validation or reference an
// unknown parcel are reported with ErrSkipped; other errors are transient.
func (p *Processor) Handle(ctx context.Context, e domain.TrackingEvent) error {
	parcel, err := p.parcels.ApplyTrackingEvent(ctx, e)
	switch {
	case err == nil:
		p.count(ResultApplied)
		p.logger.Debug("tracking event applied",
			logx.String("tracking_id", parcel.TrackingID),
			logx.String("status", string(parcel.Status)))
		return nil
	case errors.Is(err, apperr.ErrInvalid), errors.Is(err, apperr.ErrNotFound):
		p.count(ResultSkipped)
		p.logger.Warn("tracking event skipped",
			logx.String("tracking_id", e.TrackingID),
			logx.String("status", string(e.Status)),
			logx.Err(err))
		return errors.Join(ErrSkipped, err)
	default:
		p.count(ResultFailed)
		return err
	}
}

func (p *Processor) count(result string) {
	if p.events != nil {
		p.events.WithLabelValues(result).Inc()
	}
}
