package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/logx"
)

const (
	createAttempts = 3
	recentLimit    = 10
	statsWindow    = 7 * 24 * time.Hour
)

// Not found errors of this package; both match apperr.ErrNotFound.
var (
	ErrParcelNotFound   = fmt.Errorf("parcel %w", apperr.ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", apperr.ErrNotFound)
)

// Service coordinates parcel business logic.
type Service struct {
	repo             parcelRepository
	customers        customerLookup
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newPublicID      func() string
	newTrackingID    func(time.Time) string
}

// NewService creates and configures a parcel Service.
func NewService(r parcelRepository, c customerLookup, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		customers:        c,
		operationTimeout: timeout,
		logger:           logx.OrNop(logger),
		now:              func() time.Time { return time.Now().UTC() },
		newPublicID:      uuid.NewString,
		newTrackingID:    domain.NewTrackingID,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create registers a parcel for an existing customer. Customer name and phone
// default to the customer record when omitted.
func (s *Service) Create(ctx context.Context, in CreateInput, createdBy string) (*domain.Parcel, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	customer, err := s.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	if in.CustomerName == "" {
		in.CustomerName = customer.Name
	}
	if in.CustomerPhone == "" {
		in.CustomerPhone = customer.Phone
	}

	p := &domain.Parcel{
		CustomerID:           customer.ID,
		CustomerName:         in.CustomerName,
		CustomerPhone:        in.CustomerPhone,
		PickupAddress:        in.PickupAddress,
		DeliveryAddress:      in.DeliveryAddress,
		Description:          in.Description,
		Weight:               in.Weight,
		Volume:               in.Volume,
		Mode:                 in.Mode,
		PickupTime:           in.PickupTime,
		DeliveryTime:         in.DeliveryTime,
		ExpectedDeliveryTime: in.ExpectedDeliveryTime,
		Status:               in.Status,
		InternalNotes:        in.InternalNotes,
		AssignedRider:        in.AssignedRider,
		ProofURLs:            []string{},
		CreatedBy:            createdBy,
	}

	for attempt := 1; ; attempt++ {
		p.PublicID = s.newPublicID()
		p.TrackingID = s.newTrackingID(s.now())
		err = s.repo.Create(ctx, p)
		if err == nil {
			break
		}
		if !errors.Is(err, apperr.ErrConflict) || attempt >= createAttempts {
			return nil, err
		}
		s.logger.Warn("parcel id collision, regenerating",
			logx.String("tracking_id", p.TrackingID), logx.Int("attempt", attempt))
	}

	s.logger.Info("parcel created",
		logx.String("public_id", p.PublicID),
		logx.String("tracking_id", p.TrackingID),
		logx.String("customer_id", p.CustomerID))
	return p, nil
}

// Get returns a parcel by its public id.
func (s *Service) Get(ctx context.Context, publicID string) (*domain.Parcel, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrParcelNotFound
	}
	return p, nil
}

// List returns one page of parcels matching f.
func (s *Service) List(ctx context.Context, f domain.ParcelFilter) (domain.ParcelPage, error) {
	f, err := normalizeFilter(f)
	if err != nil {
		return domain.ParcelPage{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		return domain.ParcelPage{}, err
	}
	return domain.NewParcelPage(items, f.Page, f.Limit, total), nil
}

// Update applies a partial update. Any status may be set regardless of the current one.
func (s *Service) Update(ctx context.Context, publicID string, u domain.ParcelUpdate) (*domain.Parcel, error) {
	if err := validateUpdate(&u); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var before domain.ParcelStatus
	if u.Status.Set {
		cur, err := s.repo.GetByPublicID(ctx, publicID)
		if err != nil {
			return nil, err
		}
		if cur == nil {
			return nil, ErrParcelNotFound
		}
		before = cur.Status
	}

	p, err := s.repo.Update(ctx, publicID, u)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrParcelNotFound
	}
	if u.Status.Set && before != p.Status {
		s.logger.Info("parcel status changed",
			logx.String("public_id", p.PublicID),
			logx.String("from", string(before)),
			logx.String("to", string(p.Status)),
			logx.Bool("progression", isForward(before, p.Status)))
	}
	return p, nil
}

// isForward reports whether to follows from on the delivery progression or is a return.
func isForward(from, to domain.ParcelStatus) bool {
	if to == domain.StatusReturned {
		return from != domain.StatusDelivered
	}
	return from.Step() >= 0 && to.Step() > from.Step()
}

// Delete removes a parcel by its public id.
func (s *Service) Delete(ctx context.Context, publicID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, publicID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrParcelNotFound
	}
	s.logger.Info("parcel deleted", logx.String("public_id", publicID))
	return nil
}

// Stats builds the dashboard overview. Every status is present in ByStatus.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	total, err := s.repo.Count(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	recent, err := s.repo.Recent(ctx, recentLimit)
	if err != nil {
		return domain.Stats{}, err
	}
	daily, err := s.repo.DailyCounts(ctx, s.now().Add(-statsWindow))
	if err != nil {
		return domain.Stats{}, err
	}

	byStatus := make(map[domain.ParcelStatus]int64, len(domain.Statuses()))
	for _, st := range domain.Statuses() {
		byStatus[st] = counts[st]
	}
	return domain.Stats{Total: total, ByStatus: byStatus, Recent: recent, DailyCounts: daily}, nil
}

// PublicLookup finds a parcel by its public id or tracking id.
func (s *Service) PublicLookup(ctx context.Context, id string) (*domain.Parcel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrParcelNotFound
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.GetByPublicOrTrackingID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrParcelNotFound
	}
	return p, nil
}

// ApplyTrackingEvent moves a parcel to the reported status. Pickup and delivery
// timestamps are filled from the event when not recorded yet.
func (s *Service) ApplyTrackingEvent(ctx context.Context, e domain.TrackingEvent) (*domain.Parcel, error) {
	e.TrackingID = strings.ToUpper(strings.TrimSpace(e.TrackingID))
	e.Status = domain.ParcelStatus(strings.ToUpper(strings.TrimSpace(string(e.Status))))

	fields := map[string]string{}
	if !domain.ValidTrackingID(e.TrackingID) {
		fields["tracking_id"] = "is malformed"
	}
	if !e.Status.Valid() {
		fields["status"] = "is not a known status"
	}
	if len(fields) > 0 {
		return nil, apperr.NewValidationError(fields)
	}
	at := e.OccurredAt
	if at.IsZero() {
		at = s.now()
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cur, err := s.repo.GetByTrackingID(ctx, e.TrackingID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, ErrParcelNotFound
	}

	u := domain.ParcelUpdate{Status: domain.Set(e.Status)}
	if e.Status == domain.StatusPickedUp && cur.PickupTime == nil {
		u.PickupTime = domain.Set(at)
	}
	if e.Status == domain.StatusDelivered && cur.DeliveryTime == nil {
		u.DeliveryTime = domain.Set(at)
	}
	if rider := strings.TrimSpace(e.Rider); rider != "" {
		u.AssignedRider = domain.Set(rider)
	}

	p, err := s.repo.Update(ctx, cur.PublicID, u)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrParcelNotFound
	}
	s.logger.Info("tracking event applied",
		logx.String("tracking_id", p.TrackingID),
		logx.String("from", string(cur.Status)),
		logx.String("to", string(p.Status)))
	return p, nil
}
