package domain

import "time"

// TimeWindow is a named reporting period resolved against "now" at query time.
type TimeWindow string

const (
	WindowToday     TimeWindow = "today"
	WindowThisWeek  TimeWindow = "week"
	WindowThisMonth TimeWindow = "month"
	WindowAll       TimeWindow = "all"
)

// ParseTimeWindow maps a query parameter to a TimeWindow, defaulting to
// WindowAll for the empty string.
func ParseTimeWindow(s string) (TimeWindow, bool) {
	switch TimeWindow(s) {
	case WindowToday, WindowThisWeek, WindowThisMonth, WindowAll:
		return TimeWindow(s), true
	case "":
		return WindowAll, true
	}
	return WindowAll, false
}

// TimeRange is a half-open-on-nil filter interval. A nil Start or End leaves
// that side unbounded. Start is inclusive; End is inclusive as well, since
// windows always end at "now".
type TimeRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// Resolve computes the concrete interval for the window relative to now.
// Boundaries follow the reporting rules: Today starts at local midnight,
// ThisWeek at midnight of the ISO Monday, ThisMonth at midnight of the 1st.
// A record stamped exactly on the start instant is inside the window.
func (w TimeWindow) Resolve(now time.Time) TimeRange {
	switch w {
	case WindowToday:
		start := Midnight(now)
		return TimeRange{Start: &start, End: &now}
	case WindowThisWeek:
		start := WeekStart(now)
		return TimeRange{Start: &start, End: &now}
	case WindowThisMonth:
		start := MonthStart(now)
		return TimeRange{Start: &start, End: &now}
	}
	return TimeRange{}
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Monday of t's week (ISO convention).
func WeekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 { // Sunday
		wd = 7
	}
	return Midnight(t).AddDate(0, 0, -(wd - 1))
}

// MonthStart returns midnight of the 1st of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// PreviousMonthRange returns [1st of previous month, 1st of current month).
// The end instant itself belongs to the current month, not the previous one.
func PreviousMonthRange(now time.Time) (start, end time.Time) {
	end = MonthStart(now)
	start = end.AddDate(0, -1, 0)
	return start, end
}
