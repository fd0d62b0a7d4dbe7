package domain_test

import (
	"testing"

	"github.com/rovema/comercial-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestGPSFixEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		fix     domain.GPSFix
		wantErr error
	}{
		{
			name: "accepts accuracy below limit",
			fix:  domain.GPSFix{Latitude: floatPtr(-22.9), Longitude: floatPtr(-43.2), AccuracyMeters: 80},
		},
		{
			name: "accepts accuracy exactly at limit",
			fix:  domain.GPSFix{Latitude: floatPtr(-22.9), Longitude: floatPtr(-43.2), AccuracyMeters: 150},
		},
		{
			name:    "rejects accuracy above limit",
			fix:     domain.GPSFix{Latitude: floatPtr(-22.9), Longitude: floatPtr(-43.2), AccuracyMeters: 200},
			wantErr: domain.ErrFixImprecise,
		},
		{
			name:    "rejects accuracy just above limit",
			fix:     domain.GPSFix{Latitude: floatPtr(-22.9), Longitude: floatPtr(-43.2), AccuracyMeters: 150.01},
			wantErr: domain.ErrFixImprecise,
		},
		{
			name:    "rejects missing latitude",
			fix:     domain.GPSFix{Longitude: floatPtr(-43.2), AccuracyMeters: 10},
			wantErr: domain.ErrFixMissing,
		},
		{
			name:    "rejects missing longitude",
			fix:     domain.GPSFix{Latitude: floatPtr(-22.9), AccuracyMeters: 10},
			wantErr: domain.ErrFixMissing,
		},
		{
			name:    "rejects empty fix",
			fix:     domain.GPSFix{AccuracyMeters: 10},
			wantErr: domain.ErrFixMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accepted, err := tt.fix.Evaluate(domain.DefaultAccuracyLimitMeters)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			// Coordinates pass through unchanged.
			assert.Equal(t, *tt.fix.Latitude, accepted.Latitude)
			assert.Equal(t, *tt.fix.Longitude, accepted.Longitude)
		})
	}
}

func TestGPSFixEvaluateCustomLimit(t *testing.T) {
	fix := domain.GPSFix{Latitude: floatPtr(1), Longitude: floatPtr(2), AccuracyMeters: 60}

	_, err := fix.Evaluate(50)
	assert.ErrorIs(t, err, domain.ErrFixImprecise)

	accepted, err := fix.Evaluate(75)
	require.NoError(t, err)
	assert.Equal(t, 1.0, accepted.Latitude)
	assert.Equal(t, 2.0, accepted.Longitude)
}
