//go:generate mockgen -source=contracts.go -destination=user_mocks_test.go -package=user_test

package user

import (
	"context"

	"fastkart-parcels/internal/auth"
	"fastkart-parcels/internal/domain"
)

type userRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type tokenSigner interface {
	Sign(c auth.Claims) (string, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}
