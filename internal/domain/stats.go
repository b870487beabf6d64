package domain

import "time"

// StatusCount is a per-status tally.
type StatusCount struct {
	Status ParcelStatus
	Count  int64
}

// DailyCount is the number of parcels created on Date (YYYY-MM-DD, UTC).
type DailyCount struct {
	Date  string
	Count int64
}

// Stats is the dashboard overview.
type Stats struct {
	Total       int64
	ByStatus    map[ParcelStatus]int64
	Recent      []Parcel
	DailyCounts []DailyCount
}

// DateRange is an inclusive time interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// LabelCount is a generic label/count pair of an analytics dimension.
type LabelCount struct {
	Label string
	Count int
}

// CustomerCount is a customer ranked by parcel volume.
type CustomerCount struct {
	ID    string
	Name  string
	Phone string
	Count int
}

// ModeBreakdown splits one month's parcels by transport mode.
type ModeBreakdown struct {
	Month  string
	ByMode map[TransportMode]int
}

// AnalyticsSummary is the headline block of an analytics report.
type AnalyticsSummary struct {
	TotalParcels     int
	DeliveredParcels int
	InTransit        int
	AvgDeliveryDays  float64
}

// AnalyticsReport is the aggregated view over parcels created within Range.
type AnalyticsReport struct {
	Range             DateRange
	Summary           AnalyticsSummary
	MonthlyDeliveries []LabelCount
	ByMode            []LabelCount
	ByStatus          []LabelCount
	TopCustomers      []CustomerCount
	DailyTrends       []LabelCount
	ModeByMonth       []ModeBreakdown
}
