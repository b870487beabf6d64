package parcel

import "time"

// SetGenerators replaces the clock and id generators of s.
func SetGenerators(s *Service, now func() time.Time, publicID func() string, trackingID func(time.Time) string) {
	s.now = now
	s.newPublicID = publicID
	s.newTrackingID = trackingID
}
