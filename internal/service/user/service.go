package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/auth"
	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/logx"
)

// Service implements login and account bootstrap.
type Service struct {
	repo             userRepository
	tokens           tokenSigner
	hasher           passwordHasher
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a user Service.
func NewService(r userRepository, t tokenSigner, h passwordHasher, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		tokens:           t,
		hasher:           h,
		operationTimeout: timeout,
		logger:           logx.OrNop(logger),
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Login checks credentials and issues a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", apperr.ErrUnauthorized
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", apperr.ErrUnauthorized
	}

	ok, err := s.hasher.Compare(u.PasswordHash, password)
	if err != nil {
		s.logger.Warn("password compare failed", logx.String("user_id", u.ID), logx.Err(err))
		return nil, "", apperr.ErrUnauthorized
	}
	if !ok {
		return nil, "", apperr.ErrUnauthorized
	}

	token, err := s.tokens.Sign(auth.Claims{UserID: u.ID, Role: u.Role})
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", logx.String("user_id", u.ID))
	return u, token, nil
}

// Me returns the user behind an authenticated session.
func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.ErrUnauthorized
	}
	return u, nil
}

// SeedOwner creates the OWNER account unless a user with that email exists.
// The bool result reports whether a new account was created.
func (s *Service) SeedOwner(ctx context.Context, email, password, name string) (*domain.User, bool, error) {
	email = strings.TrimSpace(email)
	fields := map[string]string{}
	if email == "" {
		fields["email"] = "is required"
	}
	if password == "" {
		fields["password"] = "is required"
	}
	if len(fields) > 0 {
		return nil, false, apperr.NewValidationError(fields)
	}
	if strings.TrimSpace(name) == "" {
		name = "Owner"
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, false, err
	}
	u := &domain.User{Email: email, Name: name, PasswordHash: hash, Role: domain.RoleOwner}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			// lost a race with a concurrent seed
			existing, getErr := s.repo.GetByEmail(ctx, email)
			if getErr == nil && existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}
	s.logger.Info("owner user created", logx.String("user_id", u.ID), logx.String("email", u.Email))
	return u, true, nil
}
