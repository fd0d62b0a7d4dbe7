package services

import "context"

// GeocoderSvc resolves coordinates to a human-readable address. The gateway
// fully absorbs provider failures: it always returns a non-empty string,
// degrading to a placeholder, and never an error. Reverse geocoding must not
// block visit creation.
type GeocoderSvc interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) string
}
