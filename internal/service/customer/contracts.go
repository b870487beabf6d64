package customer

import (
	"context"

	"fastkart-parcels/internal/domain"
)

// customerRepository defines storage operations required by the business layer.
type customerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error)
}
