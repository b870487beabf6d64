package kafka

import (
	"strings"
	"time"

	"fastkart-parcels/internal/domain"
)

// EventDTO is the wire form of a rider status report
type EventDTO struct {
	TrackingID string    `json:"tracking_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
	Rider      string    `json:"rider,omitempty"`
}

// ToDomain converts EventDTO to domain.TrackingEvent
func ToDomain(dto EventDTO) domain.TrackingEvent {
	return domain.TrackingEvent{
		TrackingID: strings.ToUpper(strings.TrimSpace(dto.TrackingID)),
		Status:     domain.ParcelStatus(strings.ToUpper(strings.TrimSpace(dto.Status))),
		OccurredAt: dto.OccurredAt.UTC(),
		Rider:      strings.TrimSpace(dto.Rider),
	}
}
