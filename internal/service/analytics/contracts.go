package analytics

import (
	"context"
	"time"

	"fastkart-parcels/internal/domain"
)

type parcelSource interface {
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]domain.Parcel, error)
}

type customerSource interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.Customer, error)
}
