// Package appointment contains appointment lifecycle and reporting use cases.
package appointment

import "time"

// PeriodKind selects how the reporting query restricts appointments.
type PeriodKind string

const (
	// PeriodAll applies no period restriction.
	PeriodAll PeriodKind = ""
	// PeriodDaily matches the label's date component against the caller's
	// today string, character for character.
	PeriodDaily PeriodKind = "daily"
	// PeriodWeekly matches the Sunday-to-Saturday week of the reference day.
	PeriodWeekly PeriodKind = "weekly"
	// PeriodRange matches a caller-supplied inclusive day range.
	PeriodRange PeriodKind = "range"
)

// WeekBounds returns the [Sunday 00:00:00, Saturday 23:59:59.999] bounds of
// the week containing the reference day. The week starts on Sunday by
// calendar index, independent of locale.
func WeekBounds(reference time.Time) (start, end time.Time) {
	loc := reference.Location()
	start = time.Date(reference.Year(), reference.Month(), reference.Day()-int(reference.Weekday()), 0, 0, 0, 0, loc)
	end = start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	return start, end
}

// DayBounds floors the start day to 00:00:00 and ceils the end day to
// 23:59:59.999, both in the start day's location.
func DayBounds(startDay, endDay time.Time) (start, end time.Time) {
	loc := startDay.Location()
	start = time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, loc)
	end = time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 0, 0, 0, 0, loc).Add(24*time.Hour - time.Millisecond)
	return start, end
}
