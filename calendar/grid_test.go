package calendar

import (
	"testing"
	"time"
)

func TestSelectionForwardDrag(t *testing.T) {
	var sel Selection

	if sel.Active() {
		t.Fatal("fresh selection should be idle")
	}

	sel.Begin(date(2024, time.March, 3))
	if !sel.Active() {
		t.Fatal("selection should be dragging after Begin")
	}
	sel.Extend(date(2024, time.March, 4))
	sel.Extend(date(2024, time.March, 5))

	live := sel.Dates()
	if len(live) != 3 {
		t.Fatalf("live span len = %d, want 3", len(live))
	}

	got := sel.Complete()
	if len(got) != 3 || FormatDate(got[0]) != "2024-03-03" || FormatDate(got[2]) != "2024-03-05" {
		t.Fatalf("completed span = %v", got)
	}
	if sel.Active() {
		t.Fatal("selection should be idle after Complete")
	}
	if sel.Dates() != nil {
		t.Fatal("idle selection should have no dates")
	}
}

func TestSelectionReverseDrag(t *testing.T) {
	var sel Selection

	// Dragging from March 5 back to March 3 still yields an ascending span.
	sel.Begin(date(2024, time.March, 5))
	sel.Extend(date(2024, time.March, 4))
	sel.Extend(date(2024, time.March, 3))

	got := sel.Complete()
	if len(got) != 3 {
		t.Fatalf("completed span len = %d, want 3", len(got))
	}
	for i, want := range []string{"2024-03-03", "2024-03-04", "2024-03-05"} {
		if FormatDate(got[i]) != want {
			t.Fatalf("span[%d] = %s, want %s", i, FormatDate(got[i]), want)
		}
	}
}

func TestSelectionSingleDay(t *testing.T) {
	var sel Selection
	sel.Begin(date(2024, time.March, 7))

	got := sel.Complete()
	if len(got) != 1 || FormatDate(got[0]) != "2024-03-07" {
		t.Fatalf("single-cell span = %v", got)
	}
}

func TestSelectionIdleTransitions(t *testing.T) {
	var sel Selection

	// Pointer-enter and pointer-up without a pointer-down are no-ops.
	sel.Extend(date(2024, time.March, 4))
	if sel.Active() {
		t.Fatal("Extend on idle selection started a drag")
	}
	if got := sel.Complete(); got != nil {
		t.Fatalf("Complete on idle selection = %v, want nil", got)
	}
}

func TestSelectionCancel(t *testing.T) {
	var sel Selection
	sel.Begin(date(2024, time.March, 3))
	sel.Extend(date(2024, time.March, 6))
	sel.Cancel()

	if sel.Active() {
		t.Fatal("selection active after Cancel")
	}
	if got := sel.Complete(); got != nil {
		t.Fatalf("cancelled selection still emitted %v", got)
	}
}

func testEvents() []Event {
	acme := &Client{ID: "c1", Name: "Acme", Color: "#3366cc"}
	initech := &Client{ID: "c2", Name: "Initech", Color: "#cc3333"}
	return []Event{
		{ID: "e1", ClientID: "c1", Title: "Shoot", StartDate: "2024-03-10", EndDate: "2024-03-12", Type: EventBook, Client: acme},
		{ID: "e2", ClientID: "c2", Title: "Edit", StartDate: "2024-03-12", EndDate: "2024-03-12", Type: EventHold, Client: initech},
		{ID: "e3", ClientID: "c1", Title: "", StartDate: "2024-03-20", EndDate: "2024-03-22", Type: EventPaid, Client: acme},
	}
}

func TestEventsOnDay(t *testing.T) {
	events := testEvents()

	cases := []struct {
		day     string
		wantIDs []string
	}{
		{"2024-03-09", nil},
		{"2024-03-10", []string{"e1"}},
		{"2024-03-11", []string{"e1"}},
		{"2024-03-12", []string{"e1", "e2"}},
		{"2024-03-13", nil},
		{"2024-03-21", []string{"e3"}},
	}

	for _, tc := range cases {
		day, _ := ParseDate(tc.day)
		got := EventsOnDay(events, day)
		if len(got) != len(tc.wantIDs) {
			t.Fatalf("EventsOnDay(%s) returned %d events, want %d", tc.day, len(got), len(tc.wantIDs))
		}
		for i, id := range tc.wantIDs {
			if got[i].ID != id {
				t.Fatalf("EventsOnDay(%s)[%d] = %s, want %s", tc.day, i, got[i].ID, id)
			}
		}
	}
}

func TestEventsOnDaySkipsUnparseable(t *testing.T) {
	events := []Event{
		{ID: "bad", StartDate: "not-a-date", EndDate: "2024-03-12", Type: EventBook},
		{ID: "ok", StartDate: "2024-03-12", EndDate: "2024-03-12", Type: EventBook},
	}

	day, _ := ParseDate("2024-03-12")
	got := EventsOnDay(events, day)
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("EventsOnDay with corrupt event = %v", got)
	}
}

func TestMonthCells(t *testing.T) {
	now := date(2024, time.March, 11)
	selected := DateRange(date(2024, time.March, 3), date(2024, time.March, 5))

	cells := MonthCells(2024, time.March, testEvents(), selected, now)
	if len(cells) != len(MonthDays(2024, time.March)) {
		t.Fatalf("cell count = %d, want %d", len(cells), len(MonthDays(2024, time.March)))
	}

	byDate := make(map[string]DayCell, len(cells))
	for _, cell := range cells {
		byDate[FormatDate(cell.Date)] = cell
	}

	if cell := byDate["2024-03-11"]; !cell.IsToday || !cell.InMonth {
		t.Fatalf("today cell flags wrong: %+v", cell)
	}
	if cell := byDate["2024-02-26"]; cell.InMonth {
		t.Fatal("leading padding day marked in-month")
	}
	if cell := byDate["2024-03-04"]; !cell.Selected {
		t.Fatal("selected day not flagged")
	}
	if cell := byDate["2024-03-06"]; cell.Selected {
		t.Fatal("unselected day flagged")
	}
	if cell := byDate["2024-03-12"]; len(cell.Events) != 2 {
		t.Fatalf("overlap day has %d events, want 2", len(cell.Events))
	}
}
