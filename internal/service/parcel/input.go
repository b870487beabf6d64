package parcel

import (
	"strings"
	"time"

	"fastkart-parcels/internal/apperr"
	"fastkart-parcels/internal/domain"
)

// Pagination bounds of parcel listings.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// CreateInput is the data accepted for a new parcel.
type CreateInput struct {
	CustomerID           string
	CustomerName         string
	CustomerPhone        string
	PickupAddress        string
	DeliveryAddress      string
	Description          string
	Weight               *float64
	Volume               *float64
	Mode                 domain.TransportMode
	PickupTime           *time.Time
	DeliveryTime         *time.Time
	ExpectedDeliveryTime *time.Time
	Status               domain.ParcelStatus
	InternalNotes        string
	AssignedRider        string
}

func (in *CreateInput) normalize() error {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	in.PickupAddress = strings.TrimSpace(in.PickupAddress)
	in.DeliveryAddress = strings.TrimSpace(in.DeliveryAddress)
	in.Description = strings.TrimSpace(in.Description)
	in.AssignedRider = strings.TrimSpace(in.AssignedRider)
	if in.Status == "" {
		in.Status = domain.StatusPending
	}

	fields := map[string]string{}
	if in.CustomerID == "" {
		fields["customerId"] = "Customer is required"
	}
	if in.PickupAddress == "" {
		fields["pickupAddress"] = "Pickup address is required"
	}
	if in.DeliveryAddress == "" {
		fields["deliveryAddress"] = "Delivery address is required"
	}
	if in.Description == "" {
		fields["description"] = "Description is required"
	}
	if !in.Mode.Valid() {
		fields["mode"] = "must be one of AIR, TRAIN, TRUCK"
	}
	if !in.Status.Valid() {
		fields["status"] = "is not a known status"
	}
	checkPositive(fields, "weight", in.Weight)
	checkPositive(fields, "volume", in.Volume)
	if len(fields) > 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

func checkPositive(fields map[string]string, name string, v *float64) {
	if v != nil && *v <= 0 {
		fields[name] = "must be positive"
	}
}

func validateUpdate(u *domain.ParcelUpdate) error {
	if u.Empty() {
		return apperr.Field("body", "at least one field must be provided")
	}

	fields := map[string]string{}
	required := []struct {
		name string
		p    *domain.Patch[string]
	}{
		{"customerName", &u.CustomerName},
		{"customerPhone", &u.CustomerPhone},
		{"pickupAddress", &u.PickupAddress},
		{"deliveryAddress", &u.DeliveryAddress},
		{"description", &u.Description},
	}
	for _, r := range required {
		if !r.p.Set {
			continue
		}
		r.p.Value = strings.TrimSpace(r.p.Value)
		if r.p.Null || r.p.Value == "" {
			fields[r.name] = "cannot be empty"
		}
	}
	if u.Weight.Set && !u.Weight.Null && u.Weight.Value <= 0 {
		fields["weight"] = "must be positive"
	}
	if u.Volume.Set && !u.Volume.Null && u.Volume.Value <= 0 {
		fields["volume"] = "must be positive"
	}
	if u.Mode.Set && !u.Mode.Null && !u.Mode.Value.Valid() {
		fields["mode"] = "must be one of AIR, TRAIN, TRUCK"
	}
	if u.Status.Set && (u.Status.Null || !u.Status.Value.Valid()) {
		fields["status"] = "is not a known status"
	}
	if len(fields) > 0 {
		return apperr.NewValidationError(fields)
	}
	return nil
}

// normalizeFilter applies pagination defaults and rejects unknown enum values.
func normalizeFilter(f domain.ParcelFilter) (domain.ParcelFilter, error) {
	f.Search = strings.TrimSpace(f.Search)
	f.CustomerID = strings.TrimSpace(f.CustomerID)
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.Limit < 1:
		f.Limit = DefaultPageLimit
	case f.Limit > MaxPageLimit:
		f.Limit = MaxPageLimit
	}
	if f.SortBy == "" {
		f.SortBy = domain.SortCreatedAt
	}

	fields := map[string]string{}
	if !f.SortBy.Valid() {
		fields["sortBy"] = "is not a sortable field"
	}
	for _, s := range f.Statuses {
		if !s.Valid() {
			fields["status"] = "contains an unknown status"
		}
	}
	for _, m := range f.Modes {
		if !m.Valid() {
			fields["mode"] = "contains an unknown mode"
		}
	}
	if len(fields) > 0 {
		return f, apperr.NewValidationError(fields)
	}
	return f, nil
}
