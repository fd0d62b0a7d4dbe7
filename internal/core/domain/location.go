package domain

import (
	"errors"
	"fmt"
)

// DefaultAccuracyLimitMeters is the largest GPS accuracy radius accepted when
// attaching a location to a visit record.
const DefaultAccuracyLimitMeters = 150.0

var (
	// ErrFixMissing indicates the raw reading carried no coordinates.
	ErrFixMissing = errors.New("gps fix has no coordinates")
	// ErrFixImprecise indicates the reading's accuracy radius exceeds the limit.
	ErrFixImprecise = errors.New("gps signal too imprecise")
)

// GPSFix is a raw location reading as supplied by the platform geolocation
// capability. Coordinates are pointers because a reading may be absent.
type GPSFix struct {
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	AccuracyMeters float64  `json:"accuracyMeters"`
}

// AcceptedFix is a location that passed the acceptance gate. Coordinates are
// passed through unchanged from the raw reading.
type AcceptedFix struct {
	Latitude  float64
	Longitude float64
}

// Evaluate applies the GPS acceptance gate. A fix is rejected when either
// coordinate is absent or the accuracy radius exceeds maxAccuracyMeters.
// Visit records must not be created without an accepted fix.
func (f GPSFix) Evaluate(maxAccuracyMeters float64) (AcceptedFix, error) {
	if f.Latitude == nil || f.Longitude == nil {
		return AcceptedFix{}, ErrFixMissing
	}
	if f.AccuracyMeters > maxAccuracyMeters {
		return AcceptedFix{}, fmt.Errorf("%w: %.0fm exceeds %.0fm limit", ErrFixImprecise, f.AccuracyMeters, maxAccuracyMeters)
	}
	return AcceptedFix{Latitude: *f.Latitude, Longitude: *f.Longitude}, nil
}
