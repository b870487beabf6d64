package domain

import "time"

// Parcel is a single shipment tracked from pickup to delivery or return.
type Parcel struct {
	ID                   string
	PublicID             string
	TrackingID           string
	CustomerID           string
	CustomerName         string
	CustomerPhone        string
	PickupAddress        string
	DeliveryAddress      string
	Description          string
	Weight               *float64
	Volume               *float64
	Mode                 TransportMode
	PickupTime           *time.Time
	DeliveryTime         *time.Time
	ExpectedDeliveryTime *time.Time
	Status               ParcelStatus
	InternalNotes        string
	AssignedRider        string
	ProofURLs            []string
	CreatedBy            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Patch is a tri-state field of a partial update: untouched, cleared (Null) or set to Value.
type Patch[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Set returns a patch assigning v.
func Set[T any](v T) Patch[T] { return Patch[T]{Set: true, Value: v} }

// Clear returns a patch removing the stored value.
func Clear[T any]() Patch[T] { return Patch[T]{Set: true, Null: true} }

// ParcelUpdate carries the fields a PATCH request touches.
// A Patch with Set == false means "do not change" that attribute.
type ParcelUpdate struct {
	CustomerName         Patch[string]
	CustomerPhone        Patch[string]
	PickupAddress        Patch[string]
	DeliveryAddress      Patch[string]
	Description          Patch[string]
	Weight               Patch[float64]
	Volume               Patch[float64]
	Mode                 Patch[TransportMode]
	PickupTime           Patch[time.Time]
	DeliveryTime         Patch[time.Time]
	ExpectedDeliveryTime Patch[time.Time]
	Status               Patch[ParcelStatus]
	InternalNotes        Patch[string]
	AssignedRider        Patch[string]
}

// Empty reports whether the update touches no field at all.
func (u ParcelUpdate) Empty() bool {
	return !u.CustomerName.Set && !u.CustomerPhone.Set && !u.PickupAddress.Set &&
		!u.DeliveryAddress.Set && !u.Description.Set && !u.Weight.Set && !u.Volume.Set &&
		!u.Mode.Set && !u.PickupTime.Set && !u.DeliveryTime.Set && !u.ExpectedDeliveryTime.Set &&
		!u.Status.Set && !u.InternalNotes.Set && !u.AssignedRider.Set
}

// SortField is a parcel attribute a listing may be ordered by.
type SortField string

// Allowed sort fields.
const (
	SortCreatedAt    SortField = "createdAt"
	SortUpdatedAt    SortField = "updatedAt"
	SortTrackingID   SortField = "trackingId"
	SortCustomerName SortField = "customerName"
	SortStatus       SortField = "status"
)

// Valid checks if the sort field is whitelisted.
func (f SortField) Valid() bool {
	switch f {
	case SortCreatedAt, SortUpdatedAt, SortTrackingID, SortCustomerName, SortStatus:
		return true
	}
	return false
}

// ParcelFilter describes a paginated parcel listing.
type ParcelFilter struct {
	Search     string
	Statuses   []ParcelStatus
	Modes      []TransportMode
	CustomerID string
	SortBy     SortField
	Ascending  bool
	Page       int
	Limit      int
}

// Skip is the number of documents before the requested page.
func (f ParcelFilter) Skip() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// ParcelPage is one page of a parcel listing.
type ParcelPage struct {
	Items      []Parcel
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// NewParcelPage computes the page count for total documents at the given limit.
func NewParcelPage(items []Parcel, page, limit int, total int64) ParcelPage {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return ParcelPage{Items: items, Page: page, Limit: limit, Total: total, TotalPages: pages}
}
