package analytics

import (
	"math"
	"sort"
	"time"

	"fastkart-parcels/internal/domain"
)

const topCustomersLimit = 10

// Label layouts of the time buckets.
const (
	MonthLayout = "Jan 2006"
	DayLayout   = "Jan 2"
)

// Aggregate computes the report for parcels in r in a single pass.
// customers hydrates names and phones of the top customers; parcels whose
// customer is unknown fall back to their denormalized contact fields.
func Aggregate(r domain.DateRange, parcels []domain.Parcel, customers map[string]domain.Customer) domain.AnalyticsReport {
	sorted := make([]domain.Parcel, len(parcels))
	copy(sorted, parcels)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })

	var (
		months     = newBuckets()
		days       = newBuckets()
		modeMonths = make(map[string]map[domain.TransportMode]int)
		byMode     = make(map[domain.TransportMode]int)
		byStatus   = make(map[domain.ParcelStatus]int)
		perCust    = make(map[string]*domain.CustomerCount)
		custOrder  []string
		deliveries int
		daysSum    float64
	)

	for _, p := range sorted {
		created := p.CreatedAt.UTC()
		month := created.Format(MonthLayout)
		months.inc(month, month)
		days.inc(created.Format(time.DateOnly), created.Format(DayLayout))

		mm, ok := modeMonths[month]
		if !ok {
			mm = make(map[domain.TransportMode]int, len(domain.Modes()))
			for _, m := range domain.Modes() {
				mm[m] = 0
			}
			modeMonths[month] = mm
		}
		if p.Mode.Valid() {
			byMode[p.Mode]++
			mm[p.Mode]++
		}

		byStatus[p.Status]++

		if p.CustomerID != "" {
			c, ok := perCust[p.CustomerID]
			if !ok {
				c = &domain.CustomerCount{ID: p.CustomerID, Name: p.CustomerName, Phone: p.CustomerPhone}
				if known, found := customers[p.CustomerID]; found {
					c.Name, c.Phone = known.Name, known.Phone
				}
				perCust[p.CustomerID] = c
				custOrder = append(custOrder, p.CustomerID)
			}
			c.Count++
		}

		if p.Status == domain.StatusDelivered && p.PickupTime != nil && p.DeliveryTime != nil {
			deliveries++
			daysSum += p.DeliveryTime.Sub(*p.PickupTime).Hours() / 24
		}
	}

	report := domain.AnalyticsReport{
		Range: r,
		Summary: domain.AnalyticsSummary{
			TotalParcels:     len(sorted),
			DeliveredParcels: byStatus[domain.StatusDelivered],
			InTransit:        byStatus[domain.StatusInTransit],
		},
		MonthlyDeliveries: months.list(),
		DailyTrends:       days.list(),
	}
	if deliveries > 0 {
		report.Summary.AvgDeliveryDays = math.Round(daysSum/float64(deliveries)*10) / 10
	}

	report.ByMode = make([]domain.LabelCount, 0, len(domain.Modes()))
	for _, m := range domain.Modes() {
		report.ByMode = append(report.ByMode, domain.LabelCount{Label: string(m), Count: byMode[m]})
	}

	report.ByStatus = make([]domain.LabelCount, 0, len(byStatus))
	for _, st := range domain.Statuses() {
		if n, ok := byStatus[st]; ok {
			report.ByStatus = append(report.ByStatus, domain.LabelCount{Label: string(st), Count: n})
			delete(byStatus, st)
		}
	}
	// unknown stored statuses still count toward the total
	rest := make([]string, 0, len(byStatus))
	for st := range byStatus {
		rest = append(rest, string(st))
	}
	sort.Strings(rest)
	for _, st := range rest {
		report.ByStatus = append(report.ByStatus, domain.LabelCount{Label: st, Count: byStatus[domain.ParcelStatus(st)]})
	}

	report.ModeByMonth = make([]domain.ModeBreakdown, 0, len(months.order))
	for _, key := range months.order {
		report.ModeByMonth = append(report.ModeByMonth, domain.ModeBreakdown{Month: key, ByMode: modeMonths[key]})
	}

	top := make([]domain.CustomerCount, 0, len(custOrder))
	for _, id := range custOrder {
		top = append(top, *perCust[id])
	}
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Name < top[j].Name
	})
	if len(top) > topCustomersLimit {
		top = top[:topCustomersLimit]
	}
	report.TopCustomers = top

	return report
}

// buckets counts labels in first-seen order.
type buckets struct {
	order  []string
	labels map[string]string
	counts map[string]int
}

func newBuckets() *buckets {
	return &buckets{labels: map[string]string{}, counts: map[string]int{}}
}

func (b *buckets) inc(key, label string) {
	if _, ok := b.counts[key]; !ok {
		b.order = append(b.order, key)
		b.labels[key] = label
	}
	b.counts[key]++
}

func (b *buckets) list() []domain.LabelCount {
	out := make([]domain.LabelCount, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, domain.LabelCount{Label: b.labels[k], Count: b.counts[k]})
	}
	return out
}
