package domain_test

import (
	"testing"
	"time"

	"github.com/rovema/comercial-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2025-03-12 15:04:05 local time.
var wednesday = time.Date(2025, 3, 12, 15, 4, 5, 0, time.Local)

func TestParseTimeWindow(t *testing.T) {
	tests := []struct {
		in   string
		want domain.TimeWindow
		ok   bool
	}{
		{"today", domain.WindowToday, true},
		{"week", domain.WindowThisWeek, true},
		{"month", domain.WindowThisMonth, true},
		{"all", domain.WindowAll, true},
		{"", domain.WindowAll, true},
		{"yesterday", domain.WindowAll, false},
	}
	for _, tt := range tests {
		got, ok := domain.ParseTimeWindow(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestResolveToday(t *testing.T) {
	r := domain.WindowToday.Resolve(wednesday)
	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local), *r.Start)
	assert.Equal(t, wednesday, *r.End)
}

func TestResolveThisWeekStartsMonday(t *testing.T) {
	r := domain.WindowThisWeek.Resolve(wednesday)
	require.NotNil(t, r.Start)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), *r.Start)
	assert.Equal(t, time.Monday, r.Start.Weekday())
}

func TestResolveThisWeekOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2025, 3, 16, 10, 0, 0, 0, time.Local)
	r := domain.WindowThisWeek.Resolve(sunday)
	require.NotNil(t, r.Start)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), *r.Start)
}

func TestResolveThisMonthIncludesFirstMidnight(t *testing.T) {
	r := domain.WindowThisMonth.Resolve(wednesday)
	require.NotNil(t, r.Start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), *r.Start)

	// A record stamped exactly at midnight of the 1st is inside the window.
	assert.True(t, r.Contains(*r.Start))
	// One nanosecond earlier is not.
	assert.False(t, r.Contains(r.Start.Add(-time.Nanosecond)))
	// "now" itself is inside.
	assert.True(t, r.Contains(wednesday))
	assert.False(t, r.Contains(wednesday.Add(time.Second)))
}

func TestResolveAllIsUnbounded(t *testing.T) {
	r := domain.WindowAll.Resolve(wednesday)
	assert.Nil(t, r.Start)
	assert.Nil(t, r.End)
	assert.True(t, r.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousMonthRange(t *testing.T) {
	start, end := domain.PreviousMonthRange(wednesday)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), end)

	// January rollover.
	january := time.Date(2025, 1, 20, 12, 0, 0, 0, time.Local)
	start, end = domain.PreviousMonthRange(january)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), end)
}
