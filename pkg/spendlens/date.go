package spendlens

import (
	"time"
)

const (
	calendarDateLayout = "2006-01-02"

	// instantLayout is the ISO-8601 UTC form sent to the API for
	// calendar-date filter boundaries.
	instantLayout = "2006-01-02T15:04:05.000Z"
)

// isCalendarDate reports whether s strictly matches YYYY-MM-DD.
func isCalendarDate(s string) bool {
	if len(s) != len(calendarDateLayout) {
		return false
	}
	_, err := time.Parse(calendarDateLayout, s)
	return err == nil
}

// DayStartUTC converts a YYYY-MM-DD calendar date to the instant at
// 00:00:00.000 UTC of that day, in ISO-8601 form. Inputs that are not
// strict calendar dates are returned unchanged.
func DayStartUTC(date string) string {
	t, err := time.ParseInLocation(calendarDateLayout, date, time.UTC)
	if err != nil || len(date) != len(calendarDateLayout) {
		return date
	}
	return t.Format(instantLayout)
}

// DayEndUTC converts a YYYY-MM-DD calendar date to the instant at
// 23:59:59.999 UTC of that day, in ISO-8601 form. This makes same-day
// range queries inclusive regardless of the viewer's local timezone.
// Inputs that are not strict calendar dates are returned unchanged.
func DayEndUTC(date string) string {
	t, err := time.ParseInLocation(calendarDateLayout, date, time.UTC)
	if err != nil || len(date) != len(calendarDateLayout) {
		return date
	}
	return t.Add(24*time.Hour - time.Millisecond).Format(instantLayout)
}

// normalizeFilterDate applies the standard filter normalization: calendar
// dates become UTC-midnight instants, anything else passes through.
func normalizeFilterDate(s string) string {
	if isCalendarDate(s) {
		return DayStartUTC(s)
	}
	return s
}
