package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonthDays(t *testing.T) {
	cases := []struct {
		year      int
		month     time.Month
		wantLen   int
		wantFirst time.Time
		wantLast  time.Time
	}{
		// Feb 2024 (leap year) starts on a Thursday and ends on a
		// Thursday: 4 leading days, 29 month days, 2 trailing days.
		{2024, time.February, 35, date(2024, time.January, 28), date(2024, time.March, 2)},
		// Feb 2026 fits exactly into four Sunday-to-Saturday weeks.
		{2026, time.February, 28, date(2026, time.February, 1), date(2026, time.February, 28)},
		// Mar 2025 starts on a Saturday and ends on a Monday: full 42.
		{2025, time.March, 42, date(2025, time.February, 23), date(2025, time.April, 5)},
		{2025, time.June, 35, date(2025, time.June, 1), date(2025, time.July, 5)},
	}

	for _, tc := range cases {
		days := MonthDays(tc.year, tc.month)
		if len(days) != tc.wantLen {
			t.Fatalf("MonthDays(%d, %s) len = %d, want %d", tc.year, tc.month, len(days), tc.wantLen)
		}
		if !IsSameDay(days[0], tc.wantFirst) {
			t.Fatalf("MonthDays(%d, %s) first = %s, want %s", tc.year, tc.month, FormatDate(days[0]), FormatDate(tc.wantFirst))
		}
		if !IsSameDay(days[len(days)-1], tc.wantLast) {
			t.Fatalf("MonthDays(%d, %s) last = %s, want %s", tc.year, tc.month, FormatDate(days[len(days)-1]), FormatDate(tc.wantLast))
		}
	}
}

func TestMonthDaysProperties(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			days := MonthDays(year, month)

			if len(days)%7 != 0 {
				t.Fatalf("MonthDays(%d, %s) len %d not a multiple of 7", year, month, len(days))
			}
			if days[0].Weekday() != time.Sunday {
				t.Fatalf("MonthDays(%d, %s) starts on %s, want Sunday", year, month, days[0].Weekday())
			}

			for i := 1; i < len(days); i++ {
				if DaysBetween(days[i-1], days[i]) != 1 {
					t.Fatalf("MonthDays(%d, %s): days[%d]=%s and days[%d]=%s not consecutive",
						year, month, i-1, FormatDate(days[i-1]), i, FormatDate(days[i]))
				}
			}

			inMonth := 0
			for _, d := range days {
				if d.Month() == month {
					inMonth++
				}
			}
			lastOfMonth := date(year, month, 1).AddDate(0, 1, -1)
			if inMonth != lastOfMonth.Day() {
				t.Fatalf("MonthDays(%d, %s) contains %d month days, want %d", year, month, inMonth, lastOfMonth.Day())
			}
		}
	}
}

func TestIsSameDay(t *testing.T) {
	morning := time.Date(2024, time.March, 10, 8, 30, 0, 0, time.Local)
	evening := time.Date(2024, time.March, 10, 23, 59, 59, 0, time.Local)

	if !IsSameDay(morning, morning) {
		t.Fatal("IsSameDay not reflexive")
	}
	if !IsSameDay(morning, evening) || !IsSameDay(evening, morning) {
		t.Fatal("IsSameDay should ignore time of day, symmetrically")
	}
	if IsSameDay(morning, morning.AddDate(0, 0, 1)) {
		t.Fatal("IsSameDay true across different days")
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	cases := []string{"2024-02-29", "2024-03-10", "1999-12-31", "2026-01-01"}

	for _, s := range cases {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q) error: %v", s, err)
		}
		if got := FormatDate(d); got != s {
			t.Fatalf("FormatDate(ParseDate(%q)) = %q", s, got)
		}
	}

	// And the other direction from an arbitrary time of day.
	orig := time.Date(2024, time.March, 10, 15, 42, 7, 0, time.Local)
	back, err := ParseDate(FormatDate(orig))
	if err != nil {
		t.Fatalf("round trip parse error: %v", err)
	}
	if !IsSameDay(orig, back) {
		t.Fatalf("round trip lost the day: %s vs %s", orig, back)
	}
}

func TestParseDateLocalMidnight(t *testing.T) {
	d, err := ParseDate("2024-03-10")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if d.Hour() != 0 || d.Minute() != 0 || d.Location() != time.Local {
		t.Fatalf("ParseDate not anchored to local midnight: %s", d)
	}
}

func TestDateRange(t *testing.T) {
	start := date(2024, time.March, 3)
	end := date(2024, time.March, 5)

	got := DateRange(start, end)
	if len(got) != 3 {
		t.Fatalf("DateRange len = %d, want 3", len(got))
	}
	if !IsSameDay(got[0], start) || !IsSameDay(got[2], end) {
		t.Fatalf("DateRange endpoints wrong: %s .. %s", FormatDate(got[0]), FormatDate(got[2]))
	}
	for i := 1; i < len(got); i++ {
		if !got[i].After(got[i-1]) {
			t.Fatal("DateRange not strictly ascending")
		}
	}

	if got := DateRange(start, start); len(got) != 1 {
		t.Fatalf("single-day DateRange len = %d, want 1", len(got))
	}
	if got := DateRange(end, start); got != nil {
		t.Fatalf("inverted DateRange = %v, want nil", got)
	}

	// Length always matches the inclusive day span.
	long := DateRange(date(2024, time.February, 27), date(2024, time.March, 2))
	if want := InclusiveDays(date(2024, time.February, 27), date(2024, time.March, 2)); len(long) != want {
		t.Fatalf("DateRange len = %d, want %d", len(long), want)
	}
}

func TestIsDateInRange(t *testing.T) {
	start := date(2024, time.March, 10)
	end := date(2024, time.March, 12)

	cases := []struct {
		d    time.Time
		want bool
	}{
		{date(2024, time.March, 9), false},
		{start, true},
		{date(2024, time.March, 11), true},
		{end, true},
		{date(2024, time.March, 13), false},
	}

	for _, tc := range cases {
		if got := IsDateInRange(tc.d, start, end); got != tc.want {
			t.Fatalf("IsDateInRange(%s) = %v, want %v", FormatDate(tc.d), got, tc.want)
		}
	}
}

func TestInclusiveDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-03-10", "2024-03-10", 1},
		{"2024-03-10", "2024-03-12", 3},
		{"2024-02-27", "2024-03-02", 5},
		{"2023-12-30", "2024-01-02", 4},
	}

	for _, tc := range cases {
		start, _ := ParseDate(tc.start)
		end, _ := ParseDate(tc.end)
		if got := InclusiveDays(start, end); got != tc.want {
			t.Fatalf("InclusiveDays(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestWeekDays(t *testing.T) {
	week := WeekDays(time.Date(2024, time.March, 10, 16, 20, 0, 0, time.Local))
	if len(week) != 7 {
		t.Fatalf("WeekDays len = %d, want 7", len(week))
	}
	if FormatDate(week[0]) != "2024-03-10" || FormatDate(week[6]) != "2024-03-16" {
		t.Fatalf("WeekDays span = %s .. %s", FormatDate(week[0]), FormatDate(week[6]))
	}
}

func TestDayName(t *testing.T) {
	sunday := date(2024, time.March, 10)
	if got := DayName(sunday, false); got != "Sunday" {
		t.Fatalf("DayName = %q, want Sunday", got)
	}
	if got := DayName(sunday, true); got != "S" {
		t.Fatalf("short DayName = %q, want S", got)
	}
}
