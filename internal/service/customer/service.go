package customer

import (
	"context"
	"strings"
	"time"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/domain"
)

// CreateInput is the data accepted for a new customer.
type CreateInput struct {
	Name         string
	Phone        string
	Address      string
	BusinessName string
}

// Service coordinates customer business logic.
type Service struct {
	repo             customerRepository
	operationTimeout time.Duration
}

// NewService creates and configures a customer Service.
func NewService(r customerRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (in *CreateInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.BusinessName = strings.TrimSpace(in.BusinessName)

	fields := map[string]string{}
	if in.Name == "" {
		fields["name"] = "is required"
	}
	if in.Phone == "" {
		fields["phone"] = "is required"
	}
	if in.Address == "" {
		fields["address"] = "is required"
	}
	if len(fields) > 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

// List returns customers matching f.
func (s *Service) List(ctx context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	f.Search = strings.TrimSpace(f.Search)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

// Create persists a new customer owned by createdBy.
func (s *Service) Create(ctx context.Context, in CreateInput, createdBy string) (*domain.Customer, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	c := &domain.Customer{
		Name:         in.Name,
		Phone:        in.Phone,
		Address:      in.Address,
		BusinessName: in.BusinessName,
		CreatedBy:    createdBy,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
