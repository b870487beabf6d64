package handlers

import (
	"context"
	"time"

	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/service/customer"
	"fastkart-parcels/internal/service/parcel"
)

//go:generate mockgen -source=contracts.go -destination=handlers_mocks_test.go -package=handlers_test

type userUsecase interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	SeedOwner(ctx context.Context, email, password, name string) (*domain.User, bool, error)
}

type customerUsecase interface {
	List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error)
	Create(ctx context.Context, in customer.CreateInput, createdBy string) (*domain.Customer, error)
}

type parcelUsecase interface {
	Create(ctx context.Context, in parcel.CreateInput, createdBy string) (*domain.Parcel, error)
	Get(ctx context.Context, publicID string) (*domain.Parcel, error)
	List(ctx context.Context, f domain.ParcelFilter) (domain.ParcelPage, error)
	Update(ctx context.Context, publicID string, u domain.ParcelUpdate) (*domain.Parcel, error)
	Delete(ctx context.Context, publicID string) error
	Stats(ctx context.Context) (domain.Stats, error)
	PublicLookup(ctx context.Context, id string) (*domain.Parcel, error)
}

type analyticsUsecase interface {
	Report(ctx context.Context, start, end *time.Time) (domain.AnalyticsReport, error)
}
