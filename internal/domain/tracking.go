package domain

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TrackingPrefix starts every tracking id.
const TrackingPrefix = "FK"

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var reTrackingID = regexp.MustCompile(`^FK[0-9A-Z]+$`)

// NewTrackingID builds "FK" + base36 millisecond timestamp + 4 random base36 characters.
func NewTrackingID(now time.Time) string {
	var b strings.Builder
	b.WriteString(TrackingPrefix)
	b.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))
	for i := 0; i < 4; i++ {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return b.String()
}

// ValidTrackingID checks the tracking id format.
func ValidTrackingID(s string) bool {
	return reTrackingID.MatchString(s)
}

// TimelineStep is one stage of the public tracking timeline.
type TimelineStep struct {
	Status    ParcelStatus
	Label     string
	Completed bool
	Current   bool
}

// Timeline lays out the delivery progression relative to status.
// A RETURNED parcel has no completed or current step.
func Timeline(status ParcelStatus) []TimelineStep {
	current := status.Step()
	out := make([]TimelineStep, 0, len(progression))
	for i, s := range progression {
		out = append(out, TimelineStep{
			Status:    s,
			Label:     s.Label(),
			Completed: current >= 0 && i <= current,
			Current:   i == current,
		})
	}
	return out
}

// TrackingEvent is a status report for a parcel sent by a rider device.
type TrackingEvent struct {
	TrackingID string
	Status     ParcelStatus
	OccurredAt time.Time
	Rider      string
}
