//go:generate mockgen -source=contracts.go -destination=parcel_mocks_test.go -package=parcel_test

package parcel

import (
	"context"
	"time"

	"fastkart-parcels/internal/domain"
)

type parcelRepository interface {
	Create(ctx context.Context, p *domain.Parcel) error
	GetByPublicID(ctx context.Context, publicID string) (*domain.Parcel, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*domain.Parcel, error)
	GetByPublicOrTrackingID(ctx context.Context, id string) (*domain.Parcel, error)
	List(ctx context.Context, f domain.ParcelFilter) ([]domain.Parcel, int64, error)
	Update(ctx context.Context, publicID string, u domain.ParcelUpdate) (*domain.Parcel, error)
	Delete(ctx context.Context, publicID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.ParcelStatus]int64, error)
	Recent(ctx context.Context, n int) ([]domain.Parcel, error)
	DailyCounts(ctx context.Context, since time.Time) ([]domain.DailyCount, error)
}

type customerLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}
