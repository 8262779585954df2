package calendar

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeStore struct {
	clients []Client
	events  []Event

	listErr   error
	insertErr error
	updateErr error
	deleteErr error

	nextID int
}

func (f *fakeStore) ListClients() ([]Client, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Client(nil), f.clients...), nil
}

func (f *fakeStore) ListEvents() ([]Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Event(nil), f.events...), nil
}

func (f *fakeStore) InsertEvent(in EventInput) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	f.events = append(f.events, Event{
		ID:        fmt.Sprintf("e%d", f.nextID),
		ClientID:  in.ClientID,
		Title:     in.Title,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Type:      in.Type,
	})
	return nil
}

func (f *fakeStore) UpdateEvent(id string, in EventInput) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, ev := range f.events {
		if ev.ID == id {
			f.events[i] = Event{ID: id, ClientID: in.ClientID, Title: in.Title,
				StartDate: in.StartDate, EndDate: in.EndDate, Type: in.Type}
			return nil
		}
	}
	return errors.New("event not found")
}

func (f *fakeStore) DeleteEvent(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, ev := range f.events {
		if ev.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return errors.New("event not found")
}

func newTestCoordinator(t *testing.T, store *fakeStore) *Coordinator {
	t.Helper()
	co := NewCoordinator(store, date(2024, time.March, 11))
	if err := co.Refresh(); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	return co
}

func TestCoordinatorMonthNavigation(t *testing.T) {
	co := NewCoordinator(&fakeStore{}, date(2024, time.January, 15))

	co.PrevMonth()
	if co.Year() != 2023 || co.Month() != time.December {
		t.Fatalf("PrevMonth from Jan = %d %s", co.Year(), co.Month())
	}

	co.NextMonth()
	if co.Year() != 2024 || co.Month() != time.January {
		t.Fatalf("NextMonth back = %d %s", co.Year(), co.Month())
	}

	for i := 0; i < 12; i++ {
		co.NextMonth()
	}
	if co.Year() != 2025 || co.Month() != time.January {
		t.Fatalf("twelve months forward = %d %s", co.Year(), co.Month())
	}

	co.Today(date(2024, time.June, 6))
	if co.Year() != 2024 || co.Month() != time.June {
		t.Fatalf("Today = %d %s", co.Year(), co.Month())
	}
}

func TestCoordinatorFilters(t *testing.T) {
	store := &fakeStore{events: testEvents()}
	co := newTestCoordinator(t, store)

	if got := co.FilteredEvents(); len(got) != 3 {
		t.Fatalf("unfiltered len = %d, want 3", len(got))
	}

	co.SetClientFilter("c1")
	if got := co.FilteredEvents(); len(got) != 2 || got[0].ID != "e1" || got[1].ID != "e3" {
		t.Fatalf("client filter = %v", got)
	}

	co.SetTypeFilter("paid")
	if got := co.FilteredEvents(); len(got) != 1 || got[0].ID != "e3" {
		t.Fatalf("client+type filter = %v", got)
	}

	co.SetClientFilter(FilterAll)
	co.SetTypeFilter(FilterAll)
	if got := co.FilteredEvents(); len(got) != 3 {
		t.Fatalf("reset filters len = %d, want 3", len(got))
	}
}

func TestCoordinatorDragHandoff(t *testing.T) {
	co := newTestCoordinator(t, &fakeStore{})

	co.BeginDrag(date(2024, time.March, 5))
	co.ExtendDrag(date(2024, time.March, 3))

	if live := co.SelectionDates(); len(live) != 3 {
		t.Fatalf("live span len = %d, want 3", len(live))
	}

	co.EndDrag()
	if !co.ModalOpen() {
		t.Fatal("completed drag should open the form")
	}
	got := co.SelectedDates()
	if len(got) != 3 || FormatDate(got[0]) != "2024-03-03" || FormatDate(got[2]) != "2024-03-05" {
		t.Fatalf("committed span = %v", got)
	}
	if co.SelectionDates() != nil {
		t.Fatal("drag state should be cleared after EndDrag")
	}

	// A pointer-up without a drag does not open anything.
	co.CloseModal()
	co.EndDrag()
	if co.ModalOpen() {
		t.Fatal("EndDrag without a drag opened the form")
	}
}

func TestCoordinatorSubmitCreate(t *testing.T) {
	store := &fakeStore{clients: []Client{{ID: "c1", Name: "Acme", Color: "#3366cc"}}}
	co := newTestCoordinator(t, store)

	co.BeginDrag(date(2024, time.March, 5))
	co.ExtendDrag(date(2024, time.March, 3))
	co.EndDrag()

	if err := co.Submit("c1", "Shoot", EventBook); err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	if co.ModalOpen() {
		t.Fatal("form should close after successful submit")
	}
	events := co.Events()
	if len(events) != 1 {
		t.Fatalf("events after submit = %d, want 1", len(events))
	}
	ev := events[0]
	if ev.StartDate != "2024-03-03" || ev.EndDate != "2024-03-05" {
		t.Fatalf("reverse drag stored %s..%s, want sorted range", ev.StartDate, ev.EndDate)
	}
	if ev.Type != EventBook || ev.ClientID != "c1" {
		t.Fatalf("stored event = %+v", ev)
	}
}

func TestCoordinatorSubmitValidation(t *testing.T) {
	store := &fakeStore{clients: []Client{{ID: "c1"}}}
	co := newTestCoordinator(t, store)

	co.BeginDrag(date(2024, time.March, 3))
	co.EndDrag()

	// Missing client and invalid type are silent no-ops; the form stays open.
	if err := co.Submit("", "x", EventBook); err != nil {
		t.Fatalf("no-client submit returned %v", err)
	}
	if err := co.Submit("c1", "x", EventType("nope")); err != nil {
		t.Fatalf("bad-type submit returned %v", err)
	}
	if !co.ModalOpen() {
		t.Fatal("validation failure should leave the form open")
	}
	if len(store.events) != 0 {
		t.Fatal("validation failure reached the store")
	}

	// No committed dates at all.
	co.CloseModal()
	if err := co.Submit("c1", "x", EventBook); err != nil || len(store.events) != 0 {
		t.Fatal("submit without dates should be a no-op")
	}
}

func TestCoordinatorSubmitFailureKeepsState(t *testing.T) {
	store := &fakeStore{clients: []Client{{ID: "c1"}}}
	co := newTestCoordinator(t, store)

	co.BeginDrag(date(2024, time.March, 3))
	co.EndDrag()

	store.insertErr = errors.New("connection refused")
	if err := co.Submit("c1", "x", EventBook); err == nil {
		t.Fatal("Submit should surface the store error")
	}
	if !co.ModalOpen() {
		t.Fatal("failed submit should leave the form open for retry")
	}
	if len(co.SelectedDates()) != 1 {
		t.Fatal("failed submit should keep the selected dates")
	}

	// Retry after the store recovers.
	store.insertErr = nil
	if err := co.Submit("c1", "x", EventBook); err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if co.ModalOpen() || len(co.Events()) != 1 {
		t.Fatal("retry should complete normally")
	}
}

func TestCoordinatorEditAndUpdate(t *testing.T) {
	store := &fakeStore{
		clients: []Client{{ID: "c1"}, {ID: "c2"}},
		events:  testEvents(),
	}
	co := newTestCoordinator(t, store)

	co.Edit(co.Events()[0]) // e1, 2024-03-10 .. 2024-03-12
	if !co.ModalOpen() || co.Editing() == nil {
		t.Fatal("Edit should open the form on the event")
	}
	got := co.SelectedDates()
	if len(got) != 3 || FormatDate(got[0]) != "2024-03-10" {
		t.Fatalf("edit pre-populated dates = %v", got)
	}

	if err := co.Submit("c2", "Reshoot", EventPaid); err != nil {
		t.Fatalf("update Submit error: %v", err)
	}
	var updated *Event
	for i := range store.events {
		if store.events[i].ID == "e1" {
			updated = &store.events[i]
		}
	}
	if updated == nil || updated.ClientID != "c2" || updated.Type != EventPaid {
		t.Fatalf("updated event = %+v", updated)
	}
	if co.Editing() != nil {
		t.Fatal("edit target should clear after successful update")
	}
}

func TestCoordinatorDelete(t *testing.T) {
	store := &fakeStore{events: testEvents()}
	co := newTestCoordinator(t, store)

	if err := co.Delete("e2"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(co.Events()) != 2 {
		t.Fatalf("events after delete = %d, want 2", len(co.Events()))
	}

	store.deleteErr = errors.New("permission denied")
	if err := co.Delete("e1"); err == nil {
		t.Fatal("Delete should surface the store error")
	}
	if len(co.Events()) != 2 {
		t.Fatal("failed delete should leave the prior list displayed")
	}
}

func TestCoordinatorRefreshFailureKeepsSnapshot(t *testing.T) {
	store := &fakeStore{events: testEvents()}
	co := newTestCoordinator(t, store)

	store.listErr = errors.New("timeout")
	if err := co.Refresh(); err == nil {
		t.Fatal("Refresh should surface the store error")
	}
	if len(co.Events()) != 3 {
		t.Fatal("failed refresh should keep the prior snapshot")
	}
}

func TestCoordinatorCellsAndTotals(t *testing.T) {
	store := &fakeStore{
		clients: []Client{{ID: "c1", Name: "Acme"}, {ID: "c2", Name: "Initech"}},
		events:  testEvents(),
	}
	co := newTestCoordinator(t, store)

	cells := co.Cells(date(2024, time.March, 11))
	if len(cells)%7 != 0 {
		t.Fatalf("cell count %d not a multiple of 7", len(cells))
	}

	if got := co.TypeTotals(); got.Total != 7 {
		t.Fatalf("TypeTotals.Total = %d, want 7", got.Total)
	}

	// Totals follow the active filter.
	co.SetTypeFilter("book")
	if got := co.TypeTotals(); got != (Totals{Book: 3, Total: 3}) {
		t.Fatalf("filtered TypeTotals = %+v", got)
	}
	byClient := co.ClientTotals()
	if len(byClient) != 2 || byClient["c2"].Total != 0 {
		t.Fatalf("filtered ClientTotals = %v", byClient)
	}
}
