package calendar

import "time"

type dragState int

const (
	dragIdle dragState = iota
	dragActive
)

// Selection is the drag gesture used to pick a contiguous date range.
// It is either idle or dragging with an anchor and a current date; the
// anchor is fixed at pointer-down and the current date follows the pointer.
type Selection struct {
	state   dragState
	anchor  time.Time
	current time.Time
}

// Active reports whether a drag is in progress.
func (s *Selection) Active() bool {
	return s.state == dragActive
}

// Begin starts a drag at date. A drag already in progress is restarted.
func (s *Selection) Begin(date time.Time) {
	s.state = dragActive
	s.anchor = date
	s.current = date
}

// Extend moves the current end of the drag to date. No-op when idle or
// when the pointer re-enters the cell it is already on.
func (s *Selection) Extend(date time.Time) {
	if s.state != dragActive || IsSameDay(s.current, date) {
		return
	}
	s.current = date
}

// Dates returns the live inclusive span between anchor and current,
// ascending regardless of drag direction. Nil when idle.
func (s *Selection) Dates() []time.Time {
	if s.state != dragActive {
		return nil
	}
	start, end := s.anchor, s.current
	if end.Before(start) {
		start, end = end, start
	}
	return DateRange(start, end)
}

// Complete ends the drag and returns the selected span. The selection is
// cleared whatever the caller does with the result. Nil when idle, so a
// stray pointer-up without a preceding pointer-down is harmless.
func (s *Selection) Complete() []time.Time {
	dates := s.Dates()
	s.Cancel()
	return dates
}

// Cancel discards the drag without emitting a span.
func (s *Selection) Cancel() {
	s.state = dragIdle
	s.anchor = time.Time{}
	s.current = time.Time{}
}

// EventsOnDay filters events to those whose inclusive date range contains
// day, preserving input order. Events whose stored dates fail to parse are
// skipped rather than failing the whole scan.
func EventsOnDay(events []Event, day time.Time) []Event {
	var matched []Event
	for _, ev := range events {
		start, err := ParseDate(ev.StartDate)
		if err != nil {
			continue
		}
		end, err := ParseDate(ev.EndDate)
		if err != nil {
			continue
		}
		if IsDateInRange(day, start, end) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// DayCell is one square of the month view.
type DayCell struct {
	Date     time.Time `json:"date"`
	InMonth  bool      `json:"in_month"`
	IsToday  bool      `json:"is_today"`
	Selected bool      `json:"selected"`
	Events   []Event   `json:"events"`
}

// MonthCells builds the full grid of day cells for the given month:
// per-day event lists, membership in the selected span, and the
// current-month and today flags. now supplies "today".
func MonthCells(year int, month time.Month, events []Event, selected []time.Time, now time.Time) []DayCell {
	days := MonthDays(year, month)
	cells := make([]DayCell, len(days))

	for i, day := range days {
		isSelected := false
		for _, d := range selected {
			if IsSameDay(d, day) {
				isSelected = true
				break
			}
		}

		cells[i] = DayCell{
			Date:     day,
			InMonth:  day.Month() == month,
			IsToday:  IsSameDay(day, now),
			Selected: isSelected,
			Events:   EventsOnDay(events, day),
		}
	}

	return cells
}
