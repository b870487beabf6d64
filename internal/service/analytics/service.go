package analytics

import (
	"context"
	"time"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/domain"
)

// DefaultRange is the look-back used when no start date is given.
const DefaultRange = 30 * 24 * time.Hour

// Service builds analytics reports over stored parcels.
type Service struct {
	parcels          parcelSource
	customers        customerSource
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures an analytics Service.
func NewService(p parcelSource, c customerSource, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		parcels:          p,
		customers:        c,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Range resolves optional bounds into whole UTC days: start at 00:00:00.000 and
// end at 23:59:59.999. Missing end means today, missing start means end minus DefaultRange.
func (s *Service) Range(start, end *time.Time) (domain.DateRange, error) {
	e := s.now()
	if end != nil {
		e = *end
	}
	st := e.Add(-DefaultRange)
	if start != nil {
		st = *start
	}
	r := domain.DateRange{Start: startOfDay(st), End: endOfDay(e)}
	if r.Start.After(r.End) {
		return domain.DateRange{}, apperr.Field("startDate", "must not be after endDate")
	}
	return r, nil
}

// Report aggregates the parcels created within the requested range.
func (s *Service) Report(ctx context.Context, start, end *time.Time) (domain.AnalyticsReport, error) {
	r, err := s.Range(start, end)
	if err != nil {
		return domain.AnalyticsReport{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	parcels, err := s.parcels.ListCreatedBetween(ctx, r.Start, r.End)
	if err != nil {
		return domain.AnalyticsReport{}, err
	}

	ids := customerIDs(parcels)
	customers := map[string]domain.Customer{}
	if len(ids) > 0 {
		if customers, err = s.customers.GetByIDs(ctx, ids); err != nil {
			return domain.AnalyticsReport{}, err
		}
	}
	return Aggregate(r, parcels, customers), nil
}

func customerIDs(parcels []domain.Parcel) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range parcels {
		if p.CustomerID == "" {
			continue
		}
		if _, ok := seen[p.CustomerID]; ok {
			continue
		}
		seen[p.CustomerID] = struct{}{}
		out = append(out, p.CustomerID)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Millisecond)
}
