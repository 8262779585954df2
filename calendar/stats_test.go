package calendar

import (
	"reflect"
	"testing"
)

func TestTypeTotals(t *testing.T) {
	got := TypeTotals(testEvents())
	want := Totals{Hold: 1, Book: 3, Paid: 3, Total: 7}
	if got != want {
		t.Fatalf("TypeTotals = %+v, want %+v", got, want)
	}
}

func TestTypeTotalsSingleDayEvent(t *testing.T) {
	events := []Event{
		{ID: "e1", ClientID: "c1", StartDate: "2024-03-10", EndDate: "2024-03-10", Type: EventBook},
	}
	got := TypeTotals(events)
	if got.Book != 1 || got.Total != 1 {
		t.Fatalf("identical start/end should count one day, got %+v", got)
	}
}

func TestTypeTotalsUnknownType(t *testing.T) {
	events := []Event{
		{ID: "e1", ClientID: "c1", StartDate: "2024-03-10", EndDate: "2024-03-11", Type: EventType("tentative")},
	}
	got := TypeTotals(events)
	if got.Hold != 0 || got.Book != 0 || got.Paid != 0 || got.Total != 2 {
		t.Fatalf("unknown type should count toward total only, got %+v", got)
	}
}

func TestTypeTotalsEmpty(t *testing.T) {
	if got := TypeTotals(nil); got != (Totals{}) {
		t.Fatalf("TypeTotals(nil) = %+v, want zeros", got)
	}
}

func TestClientTotals(t *testing.T) {
	clients := []Client{
		{ID: "c1", Name: "Acme", Color: "#3366cc"},
		{ID: "c2", Name: "Initech", Color: "#cc3333"},
		{ID: "c3", Name: "Vandelay", Color: "#33cc66"},
	}

	got := ClientTotals(clients, testEvents())
	want := map[string]Totals{
		"c1": {Book: 3, Paid: 3, Total: 6},
		"c2": {Hold: 1, Total: 1},
		"c3": {},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ClientTotals = %v, want %v", got, want)
	}
}

func TestClientTotalsDanglingReference(t *testing.T) {
	clients := []Client{{ID: "c1", Name: "Acme", Color: "#3366cc"}}
	events := []Event{
		{ID: "e1", ClientID: "c1", StartDate: "2024-03-10", EndDate: "2024-03-10", Type: EventBook},
		// The client behind this event was deleted.
		{ID: "e2", ClientID: "gone", StartDate: "2024-03-11", EndDate: "2024-03-12", Type: EventPaid},
	}

	got := ClientTotals(clients, events)
	if len(got) != 1 {
		t.Fatalf("ClientTotals has %d entries, want 1", len(got))
	}
	if got["c1"] != (Totals{Book: 1, Total: 1}) {
		t.Fatalf("ClientTotals[c1] = %+v", got["c1"])
	}
}

func TestAggregationIdempotent(t *testing.T) {
	events := testEvents()
	clients := []Client{{ID: "c1"}, {ID: "c2"}}

	first := TypeTotals(events)
	second := TypeTotals(events)
	if first != second {
		t.Fatalf("TypeTotals not idempotent: %+v vs %+v", first, second)
	}

	firstByClient := ClientTotals(clients, events)
	secondByClient := ClientTotals(clients, events)
	if !reflect.DeepEqual(firstByClient, secondByClient) {
		t.Fatalf("ClientTotals not idempotent: %v vs %v", firstByClient, secondByClient)
	}
}
