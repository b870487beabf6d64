package router_test

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/domain"
)

// memStore backs the real services with maps so routes can be driven end to end.
type memStore struct {
	mu        sync.Mutex
	seq       int
	users     map[string]domain.User
	customers map[string]domain.Customer
	parcels   []domain.Parcel
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]domain.User{},
		customers: map[string]domain.Customer{},
	}
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return prefix + strconv.Itoa(s.seq)
}

type memUsers struct{ *memStore }

func (s memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (s memUsers) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ex := range s.users {
		if strings.EqualFold(ex.Email, u.Email) {
			return apperr.ErrConflict
		}
	}
	u.ID = s.nextID("u")
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

type memCustomers struct{ *memStore }

func (s memCustomers) Create(_ context.Context, c *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextID("c")
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	s.customers[c.ID] = *c
	return nil
}

func (s memCustomers) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s memCustomers) List(_ context.Context, f domain.CustomerFilter) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Customer{}
	for _, c := range s.customers {
		if f.Search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Search)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memParcels struct{ *memStore }

func (s memParcels) Create(_ context.Context, p *domain.Parcel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ex := range s.parcels {
		if ex.TrackingID == p.TrackingID {
			return apperr.ErrConflict
		}
	}
	p.ID = s.nextID("p")
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	s.parcels = append(s.parcels, *p)
	return nil
}

func (s memParcels) find(match func(domain.Parcel) bool) *domain.Parcel {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.parcels {
		if match(p) {
			return &p
		}
	}
	return nil
}

func (s memParcels) GetByPublicID(_ context.Context, id string) (*domain.Parcel, error) {
	return s.find(func(p domain.Parcel) bool { return p.PublicID == id }), nil
}

func (s memParcels) GetByTrackingID(_ context.Context, id string) (*domain.Parcel, error) {
	return s.find(func(p domain.Parcel) bool { return p.TrackingID == id }), nil
}

func (s memParcels) GetByPublicOrTrackingID(_ context.Context, id string) (*domain.Parcel, error) {
	return s.find(func(p domain.Parcel) bool { return p.PublicID == id || p.TrackingID == id }), nil
}

func (s memParcels) List(_ context.Context, f domain.ParcelFilter) ([]domain.Parcel, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Parcel
	for _, p := range s.parcels {
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, p.Status) {
			continue
		}
		out = append(out, p)
	}
	total := int64(len(out))
	from := (f.Page - 1) * f.Limit
	if from >= len(out) {
		return []domain.Parcel{}, total, nil
	}
	to := from + f.Limit
	if to > len(out) {
		to = len(out)
	}
	return out[from:to], total, nil
}

func containsStatus(list []domain.ParcelStatus, s domain.ParcelStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (s memParcels) Update(_ context.Context, id string, u domain.ParcelUpdate) (*domain.Parcel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.parcels {
		if s.parcels[i].PublicID != id {
			continue
		}
		if u.Status.Set {
			s.parcels[i].Status = u.Status.Value
		}
		s.parcels[i].UpdatedAt = time.Now().UTC()
		p := s.parcels[i]
		return &p, nil
	}
	return nil, nil
}

func (s memParcels) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.parcels {
		if s.parcels[i].PublicID == id {
			s.parcels = append(s.parcels[:i], s.parcels[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s memParcels) Count(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.parcels)), nil
}

func (s memParcels) CountByStatus(context.Context) (map[domain.ParcelStatus]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[domain.ParcelStatus]int64{}
	for _, p := range s.parcels {
		out[p.Status]++
	}
	return out, nil
}

func (s memParcels) Recent(_ context.Context, n int) ([]domain.Parcel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Parcel, 0, n)
	for i := len(s.parcels) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.parcels[i])
	}
	return out, nil
}

func (s memParcels) DailyCounts(context.Context, time.Time) ([]domain.DailyCount, error) {
	return nil, nil
}

func (s memParcels) ListCreatedBetween(_ context.Context, start, end time.Time) ([]domain.Parcel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Parcel
	for _, p := range s.parcels {
		if !p.CreatedAt.Before(start) && !p.CreatedAt.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s memCustomers) GetByIDs(_ context.Context, ids []string) (map[string]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.Customer, len(ids))
	for _, id := range ids {
		if c, ok := s.customers[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}
