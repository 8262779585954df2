package calendar

import (
	"math"
	"time"
)

// WireFormat is the date layout exchanged with the persistence layer.
const WireFormat = "2006-01-02"

// MonthDays returns the month-view grid for the given month: every day of
// the month plus leading days from the previous month and trailing days
// from the next one, so the grid starts on a Sunday and every week is a
// full 7 columns. The result length is always a multiple of 7.
func MonthDays(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	days := make([]time.Time, 0, 42)

	for i := int(first.Weekday()); i > 0; i-- {
		days = append(days, first.AddDate(0, 0, -i))
	}

	for d := 1; d <= last.Day(); d++ {
		days = append(days, time.Date(year, month, d, 0, 0, 0, 0, time.Local))
	}

	for i := 1; i < 7-int(last.Weekday()); i++ {
		days = append(days, last.AddDate(0, 0, i))
	}

	return days
}

// IsSameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDate renders t as a wire-format date string.
func FormatDate(t time.Time) string {
	return t.Format(WireFormat)
}

// ParseDate parses a wire-format date string anchored to local midnight.
// Anchoring locally keeps the result same-day comparable with dates built
// from time.Now and the MonthDays grid.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(WireFormat, s, time.Local)
}

// IsDateInRange reports whether d falls inside [start, end], inclusive at
// both ends.
func IsDateInRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// DateRange returns every calendar day from start to end inclusive, in
// ascending order. Returns nil when start is after end.
func DateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, cur)
	}
	return dates
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole days from start to end,
// truncating both to midnight first. Rounding absorbs the hour a DST
// transition adds or removes from a local day.
func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// InclusiveDays is the day-span of a booking: an event whose start and end
// are the same day spans one day.
func InclusiveDays(start, end time.Time) int {
	return DaysBetween(start, end) + 1
}

// WeekDays returns the seven days starting at start's calendar day.
func WeekDays(start time.Time) []time.Time {
	day := BeginningOfDay(start)
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = day.AddDate(0, 0, i)
	}
	return week
}

var (
	dayNames      = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	dayNamesShort = [7]string{"S", "M", "T", "W", "T", "F", "S"}
)

// DayName returns the weekday name for t, optionally the single-letter form.
func DayName(t time.Time, short bool) string {
	if short {
		return dayNamesShort[t.Weekday()]
	}
	return dayNames[t.Weekday()]
}
