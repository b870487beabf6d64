package handlers

import (
	"bytes"
	"encoding/json"
	"time"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type createCustomerRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"required,max=20"`
	Address      string `json:"address" validate:"required,max=500"`
	BusinessName string `json:"businessName" validate:"max=200"`
}

type customerDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	BusinessName string    `json:"businessName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type createParcelRequest struct {
	CustomerID           string   `json:"customerId" validate:"required"`
	CustomerName         string   `json:"customerName" validate:"max=100"`
	CustomerPhone        string   `json:"customerPhone" validate:"max=20"`
	PickupAddress        string   `json:"pickupAddress" validate:"required,max=500"`
	DeliveryAddress      string   `json:"deliveryAddress" validate:"required,max=500"`
	Description          string   `json:"description" validate:"required,max=1000"`
	Weight               *float64 `json:"weight" validate:"omitempty,gt=0"`
	Volume               *float64 `json:"volume" validate:"omitempty,gt=0"`
	Mode                 string   `json:"mode" validate:"required,oneof=AIR TRUCK TRAIN"`
	PickupTime           *string  `json:"pickupTime"`
	DeliveryTime         *string  `json:"deliveryTime"`
	ExpectedDeliveryTime *string  `json:"expectedDeliveryTime"`
	Status               string   `json:"status" validate:"omitempty,oneof=PENDING PICKED_UP IN_TRANSIT OUT_FOR_DELIVERY DELIVERED RETURNED"`
	InternalNotes        string   `json:"internalNotes" validate:"max=2000"`
	AssignedRider        *string  `json:"assignedRider" validate:"omitempty,max=100"`
}

// nullable tells an absent JSON member from an explicit null.
type nullable[T any] struct {
	Present bool
	Null    bool
	Value   T
}

func (n *nullable[T]) UnmarshalJSON(b []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Null = true
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

type updateParcelRequest struct {
	CustomerName         nullable[string]  `json:"customerName"`
	CustomerPhone        nullable[string]  `json:"customerPhone"`
	PickupAddress        nullable[string]  `json:"pickupAddress"`
	DeliveryAddress      nullable[string]  `json:"deliveryAddress"`
	Description          nullable[string]  `json:"description"`
	Weight               nullable[float64] `json:"weight"`
	Volume               nullable[float64] `json:"volume"`
	Mode                 nullable[string]  `json:"mode"`
	PickupTime           nullable[string]  `json:"pickupTime"`
	DeliveryTime         nullable[string]  `json:"deliveryTime"`
	ExpectedDeliveryTime nullable[string]  `json:"expectedDeliveryTime"`
	Status               nullable[string]  `json:"status"`
	InternalNotes        nullable[string]  `json:"internalNotes"`
	AssignedRider        nullable[string]  `json:"assignedRider"`
}

type parcelDTO struct {
	ID                   string     `json:"id"`
	PublicID             string     `json:"publicId"`
	TrackingID           string     `json:"trackingId"`
	CustomerID           string     `json:"customerId"`
	CustomerName         string     `json:"customerName"`
	CustomerPhone        string     `json:"customerPhone"`
	PickupAddress        string     `json:"pickupAddress"`
	DeliveryAddress      string     `json:"deliveryAddress"`
	Description          string     `json:"description"`
	Weight               *float64   `json:"weight,omitempty"`
	Volume               *float64   `json:"volume,omitempty"`
	Mode                 string     `json:"mode"`
	PickupTime           *time.Time `json:"pickupTime,omitempty"`
	DeliveryTime         *time.Time `json:"deliveryTime,omitempty"`
	ExpectedDeliveryTime *time.Time `json:"expectedDeliveryTime,omitempty"`
	Status               string     `json:"status"`
	InternalNotes        string     `json:"internalNotes,omitempty"`
	AssignedRider        string     `json:"assignedRider,omitempty"`
	ProofURLs            []string   `json:"proofUrls"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type paginationDTO struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type parcelListResponse struct {
	Parcels    []parcelDTO   `json:"parcels"`
	Pagination paginationDTO `json:"pagination"`
}

type parcelSummaryDTO struct {
	ID           string    `json:"id"`
	TrackingID   string    `json:"trackingId"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type dailyCountDTO struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type statsResponse struct {
	Total         int64              `json:"total"`
	ByStatus      map[string]int64   `json:"byStatus"`
	RecentParcels []parcelSummaryDTO `json:"recentParcels"`
	DailyCounts   []dailyCountDTO    `json:"dailyCounts"`
}

type timelineStepDTO struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// publicParcelDTO is what anyone holding a tracking link may see.
type publicParcelDTO struct {
	TrackingID           string            `json:"trackingId"`
	CustomerName         string            `json:"customerName"`
	PickupAddress        string            `json:"pickupAddress"`
	DeliveryAddress      string            `json:"deliveryAddress"`
	Description          string            `json:"description"`
	Mode                 string            `json:"mode"`
	Status               string            `json:"status"`
	StatusLabel          string            `json:"statusLabel"`
	StatusDescription    string            `json:"statusDescription"`
	PickupTime           *time.Time        `json:"pickupTime,omitempty"`
	DeliveryTime         *time.Time        `json:"deliveryTime,omitempty"`
	ExpectedDeliveryTime *time.Time        `json:"expectedDeliveryTime,omitempty"`
	Returned             bool              `json:"returned"`
	Timeline             []timelineStepDTO `json:"timeline"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

type dateRangeDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type analyticsSummaryDTO struct {
	TotalParcels     int     `json:"totalParcels"`
	DeliveredParcels int     `json:"deliveredParcels"`
	InTransit        int     `json:"inTransit"`
	AvgDeliveryTime  float64 `json:"avgDeliveryTime"`
}

type monthCountDTO struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type modeCountDTO struct {
	Mode  string `json:"mode"`
	Count int    `json:"count"`
}

type statusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type dayCountDTO struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type topCustomerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Count int    `json:"count"`
}

type modeByMonthDTO struct {
	Month string `json:"month"`
	AIR   int    `json:"AIR"`
	TRAIN int    `json:"TRAIN"`
	TRUCK int    `json:"TRUCK"`
}

type analyticsDTO struct {
	DateRange         dateRangeDTO        `json:"dateRange"`
	Summary           analyticsSummaryDTO `json:"summary"`
	MonthlyDeliveries []monthCountDTO     `json:"monthlyDeliveries"`
	ByMode            []modeCountDTO      `json:"byMode"`
	ByStatus          []statusCountDTO    `json:"byStatus"`
	TopCustomers      []topCustomerDTO    `json:"topCustomers"`
	DailyTrends       []dayCountDTO       `json:"dailyTrends"`
	ModeByMonth       []modeByMonthDTO    `json:"modeByMonth"`
}

type analyticsResponse struct {
	Success bool         `json:"success"`
	Data    analyticsDTO `json:"data"`
}

type seedOwnerResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}
