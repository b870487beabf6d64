// Package seed fills the database with demo customers and parcels.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/logx"
)

const day = 24 * time.Hour

type customerStore interface {
	Create(ctx context.Context, c *domain.Customer) error
	DeleteAll(ctx context.Context) (int64, error)
}

type parcelStore interface {
	Create(ctx context.Context, p *domain.Parcel) error
	DeleteAll(ctx context.Context) (int64, error)
}

// Options controls one seeding run.
type Options struct {
	Reset     bool
	Customers int
	Parcels   int
	// Parcels are created at random instants within this many days before now.
	Days int
	// CreatedBy is the user id stamped on every record.
	CreatedBy string
}

// Summary reports what a run created.
type Summary struct {
	Customers int
	Parcels   int
	ByStatus  map[domain.ParcelStatus]int
	ByMode    map[domain.TransportMode]int
}

// Seeder generates random but plausible records.
type Seeder struct {
	customers customerStore
	parcels   parcelStore
	rnd       *rand.Rand
	now       func() time.Time
	logger    logx.Logger
}

// New returns a Seeder; equal seeds produce equal data for the same now.
func New(customers customerStore, parcels parcelStore, seed uint64, now func() time.Time, logger logx.Logger) *Seeder {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Seeder{
		customers: customers,
		parcels:   parcels,
		rnd:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now:       now,
		logger:    logx.OrNop(logger),
	}
}

// Run seeds the stores according to opts.
func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	sum := Summary{
		ByStatus: map[domain.ParcelStatus]int{},
		ByMode:   map[domain.TransportMode]int{},
	}
	if opts.Customers <= 0 && opts.Parcels > 0 {
		return sum, fmt.Errorf("parcels need at least one customer")
	}
	if opts.Days <= 0 {
		opts.Days = 90
	}

	if opts.Reset {
		nc, err := s.customers.DeleteAll(ctx)
		if err != nil {
			return sum, err
		}
		np, err := s.parcels.DeleteAll(ctx)
		if err != nil {
			return sum, err
		}
		s.logger.Info("existing data cleared", logx.Int64("customers", nc), logx.Int64("parcels", np))
	}

	now := s.now()
	created := make([]domain.Customer, 0, opts.Customers)
	for i := 0; i < opts.Customers; i++ {
		c := s.customer(opts.CreatedBy, now)
		if err := s.customers.Create(ctx, &c); err != nil {
			return sum, fmt.Errorf("customer %d: %w", i+1, err)
		}
		created = append(created, c)
	}
	sum.Customers = len(created)
	s.logger.Info("customers created", logx.Int("count", sum.Customers))

	from := now.Add(-time.Duration(opts.Days) * day)
	for i := 0; i < opts.Parcels; i++ {
		p := s.parcel(pick(s.rnd, created), opts.CreatedBy, from, now)
		if err := s.parcels.Create(ctx, &p); err != nil {
			return sum, fmt.Errorf("parcel %d: %w", i+1, err)
		}
		sum.Parcels++
		sum.ByStatus[p.Status]++
		sum.ByMode[p.Mode]++
		if sum.Parcels%50 == 0 {
			s.logger.Info("parcels progress", logx.Int("created", sum.Parcels))
		}
	}
	s.logger.Info("parcels created", logx.Int("count", sum.Parcels))
	return sum, nil
}

func (s *Seeder) customer(createdBy string, now time.Time) domain.Customer {
	city := pick(s.rnd, cities)
	return domain.Customer{
		Name:         pick(s.rnd, firstNames) + " " + pick(s.rnd, lastNames),
		Phone:        fmt.Sprintf("+91 %05d%05d", 70000+s.rnd.IntN(30000), 10000+s.rnd.IntN(90000)),
		Address:      fmt.Sprintf("%d, %s, %s, %s", 1+s.rnd.IntN(999), pick(s.rnd, streets), city.name, city.pincode),
		BusinessName: pick(s.rnd, businessNames),
		CreatedBy:    createdBy,
		CreatedAt:    now,
	}
}

func (s *Seeder) parcel(c domain.Customer, createdBy string, from, to time.Time) domain.Parcel {
	pickupCity := pick(s.rnd, cities)
	deliveryCity := pick(s.rnd, cities)
	for deliveryCity.name == pickupCity.name {
		deliveryCity = pick(s.rnd, cities)
	}
	mode := pick(s.rnd, domain.Modes())
	status := pick(s.rnd, domain.Statuses())
	createdAt := from.Add(time.Duration(s.rnd.Int64N(int64(to.Sub(from))))).Truncate(time.Millisecond)
	weight := float64(5+s.rnd.IntN(201)) / 10
	volume := float64(1+s.rnd.IntN(51)) / 100

	p := domain.Parcel{
		PublicID:        s.uuid(),
		TrackingID:      fmt.Sprintf("%s%09d", domain.TrackingPrefix, 100000000+s.rnd.IntN(900000000)),
		CustomerID:      c.ID,
		CustomerName:    c.Name,
		CustomerPhone:   c.Phone,
		PickupAddress:   fmt.Sprintf("%d, %s %d, %s, %s", 1+s.rnd.IntN(999), pick(s.rnd, pickupPlaces), 1+s.rnd.IntN(50), pickupCity.name, pickupCity.pincode),
		DeliveryAddress: fmt.Sprintf("%d, %s %d, %s, %s", 1+s.rnd.IntN(999), pick(s.rnd, deliveryPlaces), 1+s.rnd.IntN(100), deliveryCity.name, deliveryCity.pincode),
		Description:     pick(s.rnd, descriptions),
		Weight:          &weight,
		Volume:          &volume,
		Mode:            mode,
		Status:          status,
		InternalNotes:   pick(s.rnd, notes),
		ProofURLs:       []string{},
		CreatedBy:       createdBy,
		CreatedAt:       createdAt,
	}

	transit := TransitDays(mode)
	if status == domain.StatusPending {
		expected := createdAt.Add(time.Duration(transit+1) * day)
		p.ExpectedDeliveryTime = &expected
		return p
	}

	pickup := createdAt.Add(time.Duration(s.rnd.Int64N(int64(day))))
	p.PickupTime = &pickup
	if status == domain.StatusDelivered {
		extra := time.Duration(s.rnd.Int64N(int64(2 * day)))
		delivered := pickup.Add(time.Duration(transit)*day + extra)
		p.DeliveryTime = &delivered
	} else {
		expected := pickup.Add(time.Duration(transit) * day)
		p.ExpectedDeliveryTime = &expected
	}
	return p
}

func (s *Seeder) uuid() string {
	id, err := uuid.NewRandomFromReader(randReader{s.rnd})
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// TransitDays is the typical door-to-door time of a transport mode.
func TransitDays(m domain.TransportMode) int {
	switch m {
	case domain.ModeAir:
		return 2
	case domain.ModeTrain:
		return 4
	default:
		return 5
	}
}

func pick[T any](r *rand.Rand, list []T) T {
	return list[r.IntN(len(list))]
}

type randReader struct{ r *rand.Rand }

func (rr randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.r.UintN(256))
	}
	return len(p), nil
}
