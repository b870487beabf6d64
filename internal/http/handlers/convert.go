package handlers

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"fastkart-parcels/internal/domain"
	"fastkart-parcels/internal/service/customer"
	"fastkart-parcels/internal/service/parcel"
)

// Accepted timestamp layouts, most specific first. Dates without a zone are UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

var errBadTime = errors.New("must be an ISO 8601 date or timestamp")

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errBadTime
}

// optionalTime parses a nullable timestamp; nil and "" mean "not set".
func optionalTime(fields map[string]string, name string, s *string) *time.Time {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	t, err := parseTime(*s)
	if err != nil {
		fields[name] = err.Error()
		return nil
	}
	return &t
}

func (r createCustomerRequest) toInput() customer.CreateInput {
	return customer.CreateInput{
		Name:         r.Name,
		Phone:        r.Phone,
		Address:      r.Address,
		BusinessName: r.BusinessName,
	}
}

func (r createParcelRequest) toInput() (parcel.CreateInput, map[string]string) {
	fields := map[string]string{}
	in := parcel.CreateInput{
		CustomerID:           r.CustomerID,
		CustomerName:         r.CustomerName,
		CustomerPhone:        r.CustomerPhone,
		PickupAddress:        r.PickupAddress,
		DeliveryAddress:      r.DeliveryAddress,
		Description:          r.Description,
		Weight:               r.Weight,
		Volume:               r.Volume,
		Mode:                 domain.TransportMode(r.Mode),
		PickupTime:           optionalTime(fields, "pickupTime", r.PickupTime),
		DeliveryTime:         optionalTime(fields, "deliveryTime", r.DeliveryTime),
		ExpectedDeliveryTime: optionalTime(fields, "expectedDeliveryTime", r.ExpectedDeliveryTime),
		Status:               domain.ParcelStatus(r.Status),
		InternalNotes:        r.InternalNotes,
	}
	if r.AssignedRider != nil {
		in.AssignedRider = *r.AssignedRider
	}
	if len(fields) > 0 {
		return in, fields
	}
	return in, nil
}

func stringPatch(fields map[string]string, name string, n nullable[string], max int) domain.Patch[string] {
	switch {
	case !n.Present:
		return domain.Patch[string]{}
	case n.Null:
		return domain.Clear[string]()
	case utf8.RuneCountInString(n.Value) > max:
		fields[name] = "is too long"
	}
	return domain.Set(n.Value)
}

func floatPatch(n nullable[float64]) domain.Patch[float64] {
	switch {
	case !n.Present:
		return domain.Patch[float64]{}
	case n.Null:
		return domain.Clear[float64]()
	}
	return domain.Set(n.Value)
}

// timePatch treats null and "" alike: both remove the stored timestamp.
func timePatch(fields map[string]string, name string, n nullable[string]) domain.Patch[time.Time] {
	if !n.Present {
		return domain.Patch[time.Time]{}
	}
	if n.Null || strings.TrimSpace(n.Value) == "" {
		return domain.Clear[time.Time]()
	}
	t, err := parseTime(n.Value)
	if err != nil {
		fields[name] = err.Error()
		return domain.Patch[time.Time]{}
	}
	return domain.Set(t)
}

func (r updateParcelRequest) toUpdate() (domain.ParcelUpdate, map[string]string) {
	fields := map[string]string{}
	u := domain.ParcelUpdate{
		CustomerName:         stringPatch(fields, "customerName", r.CustomerName, 100),
		CustomerPhone:        stringPatch(fields, "customerPhone", r.CustomerPhone, 20),
		PickupAddress:        stringPatch(fields, "pickupAddress", r.PickupAddress, 500),
		DeliveryAddress:      stringPatch(fields, "deliveryAddress", r.DeliveryAddress, 500),
		Description:          stringPatch(fields, "description", r.Description, 1000),
		Weight:               floatPatch(r.Weight),
		Volume:               floatPatch(r.Volume),
		PickupTime:           timePatch(fields, "pickupTime", r.PickupTime),
		DeliveryTime:         timePatch(fields, "deliveryTime", r.DeliveryTime),
		ExpectedDeliveryTime: timePatch(fields, "expectedDeliveryTime", r.ExpectedDeliveryTime),
		InternalNotes:        stringPatch(fields, "internalNotes", r.InternalNotes, 2000),
		AssignedRider:        stringPatch(fields, "assignedRider", r.AssignedRider, 100),
	}
	if r.Mode.Present {
		if r.Mode.Null {
			u.Mode = domain.Clear[domain.TransportMode]()
		} else {
			u.Mode = domain.Set(domain.TransportMode(r.Mode.Value))
		}
	}
	if r.Status.Present {
		if r.Status.Null {
			u.Status = domain.Clear[domain.ParcelStatus]()
		} else {
			u.Status = domain.Set(domain.ParcelStatus(r.Status.Value))
		}
	}
	if len(fields) > 0 {
		return u, fields
	}
	return u, nil
}

func userToResponse(u domain.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)}
}

func customerToResponse(c domain.Customer) customerDTO {
	return customerDTO{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Address:      c.Address,
		BusinessName: c.BusinessName,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func customersToResponse(list []domain.Customer) []customerDTO {
	out := make([]customerDTO, 0, len(list))
	for _, c := range list {
		out = append(out, customerToResponse(c))
	}
	return out
}

func parcelToResponse(p domain.Parcel) parcelDTO {
	proof := p.ProofURLs
	if proof == nil {
		proof = []string{}
	}
	return parcelDTO{
		ID:                   p.PublicID,
		PublicID:             p.PublicID,
		TrackingID:           p.TrackingID,
		CustomerID:           p.CustomerID,
		CustomerName:         p.CustomerName,
		CustomerPhone:        p.CustomerPhone,
		PickupAddress:        p.PickupAddress,
		DeliveryAddress:      p.DeliveryAddress,
		Description:          p.Description,
		Weight:               p.Weight,
		Volume:               p.Volume,
		Mode:                 string(p.Mode),
		PickupTime:           p.PickupTime,
		DeliveryTime:         p.DeliveryTime,
		ExpectedDeliveryTime: p.ExpectedDeliveryTime,
		Status:               string(p.Status),
		InternalNotes:        p.InternalNotes,
		AssignedRider:        p.AssignedRider,
		ProofURLs:            proof,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func pageToResponse(pg domain.ParcelPage) parcelListResponse {
	items := make([]parcelDTO, 0, len(pg.Items))
	for _, p := range pg.Items {
		items = append(items, parcelToResponse(p))
	}
	return parcelListResponse{
		Parcels: items,
		Pagination: paginationDTO{
			Page:       pg.Page,
			Limit:      pg.Limit,
			Total:      pg.Total,
			TotalPages: pg.TotalPages,
		},
	}
}

func statsToResponse(s domain.Stats) statsResponse {
	byStatus := make(map[string]int64, len(s.ByStatus))
	for st, n := range s.ByStatus {
		byStatus[string(st)] = n
	}
	recent := make([]parcelSummaryDTO, 0, len(s.Recent))
	for _, p := range s.Recent {
		recent = append(recent, parcelSummaryDTO{
			ID:           p.PublicID,
			TrackingID:   p.TrackingID,
			CustomerName: p.CustomerName,
			Status:       string(p.Status),
			CreatedAt:    p.CreatedAt,
		})
	}
	daily := make([]dailyCountDTO, 0, len(s.DailyCounts))
	for _, d := range s.DailyCounts {
		daily = append(daily, dailyCountDTO{Date: d.Date, Count: d.Count})
	}
	return statsResponse{Total: s.Total, ByStatus: byStatus, RecentParcels: recent, DailyCounts: daily}
}

func publicParcelToResponse(p domain.Parcel) publicParcelDTO {
	steps := domain.Timeline(p.Status)
	timeline := make([]timelineStepDTO, 0, len(steps))
	for _, s := range steps {
		timeline = append(timeline, timelineStepDTO{
			Status:    string(s.Status),
			Label:     s.Label,
			Completed: s.Completed,
			Current:   s.Current,
		})
	}
	return publicParcelDTO{
		TrackingID:           p.TrackingID,
		CustomerName:         p.CustomerName,
		PickupAddress:        p.PickupAddress,
		DeliveryAddress:      p.DeliveryAddress,
		Description:          p.Description,
		Mode:                 string(p.Mode),
		Status:               string(p.Status),
		StatusLabel:          p.Status.Label(),
		StatusDescription:    p.Status.Description(),
		PickupTime:           p.PickupTime,
		DeliveryTime:         p.DeliveryTime,
		ExpectedDeliveryTime: p.ExpectedDeliveryTime,
		Returned:             p.Status == domain.StatusReturned,
		Timeline:             timeline,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func analyticsToResponse(r domain.AnalyticsReport) analyticsResponse {
	d := analyticsDTO{
		DateRange: dateRangeDTO{Start: r.Range.Start, End: r.Range.End},
		Summary: analyticsSummaryDTO{
			TotalParcels:     r.Summary.TotalParcels,
			DeliveredParcels: r.Summary.DeliveredParcels,
			InTransit:        r.Summary.InTransit,
			AvgDeliveryTime:  r.Summary.AvgDeliveryDays,
		},
		MonthlyDeliveries: make([]monthCountDTO, 0, len(r.MonthlyDeliveries)),
		ByMode:            make([]modeCountDTO, 0, len(r.ByMode)),
		ByStatus:          make([]statusCountDTO, 0, len(r.ByStatus)),
		TopCustomers:      make([]topCustomerDTO, 0, len(r.TopCustomers)),
		DailyTrends:       make([]dayCountDTO, 0, len(r.DailyTrends)),
		ModeByMonth:       make([]modeByMonthDTO, 0, len(r.ModeByMonth)),
	}
	for _, m := range r.MonthlyDeliveries {
		d.MonthlyDeliveries = append(d.MonthlyDeliveries, monthCountDTO{Month: m.Label, Count: m.Count})
	}
	for _, m := range r.ByMode {
		d.ByMode = append(d.ByMode, modeCountDTO{Mode: m.Label, Count: m.Count})
	}
	for _, s := range r.ByStatus {
		d.ByStatus = append(d.ByStatus, statusCountDTO{Status: s.Label, Count: s.Count})
	}
	for _, c := range r.TopCustomers {
		d.TopCustomers = append(d.TopCustomers, topCustomerDTO{ID: c.ID, Name: c.Name, Phone: c.Phone, Count: c.Count})
	}
	for _, day := range r.DailyTrends {
		d.DailyTrends = append(d.DailyTrends, dayCountDTO{Day: day.Label, Count: day.Count})
	}
	for _, m := range r.ModeByMonth {
		d.ModeByMonth = append(d.ModeByMonth, modeByMonthDTO{
			Month: m.Month,
			AIR:   m.ByMode[domain.ModeAir],
			TRAIN: m.ByMode[domain.ModeTrain],
			TRUCK: m.ByMode[domain.ModeTruck],
		})
	}
	return analyticsResponse{Success: true, Data: d}
}
