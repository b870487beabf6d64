//go:generate mockgen -source=contracts.go -destination=tracking_mocks_test.go -package=tracking_test

package tracking

import (
	"context"

	"fastkart-parcels/internal/domain"
)

// ParcelPort abstracts the subset of parcel service operations
// needed by the Processor when handling rider events
type ParcelPort interface {
	ApplyTrackingEvent(ctx context.Context, e domain.TrackingEvent) (*domain.Parcel, error)
}
