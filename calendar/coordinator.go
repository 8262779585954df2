package calendar

import (
	"sort"
	"time"
)

// FilterAll selects every client or every event type.
const FilterAll = "all"

// Coordinator owns the scheduling view: the displayed month, the fetched
// client and event snapshots, the active filters, the drag selection, and
// the create/edit form state. All mutations go through the Store; local
// snapshots are only replaced after the remote call succeeds, so a failed
// call leaves the view stale but consistent.
type Coordinator struct {
	store Store

	year  int
	month time.Month

	clients []Client
	events  []Event

	clientFilter string
	typeFilter   string

	selection     Selection
	selectedDates []time.Time
	modalOpen     bool
	editing       *Event
}

// NewCoordinator builds a coordinator displaying now's month. Call Refresh
// to load the initial snapshots.
func NewCoordinator(store Store, now time.Time) *Coordinator {
	return &Coordinator{
		store:        store,
		year:         now.Year(),
		month:        now.Month(),
		clientFilter: FilterAll,
		typeFilter:   FilterAll,
	}
}

// Refresh reloads both snapshots from the store. On error the previous
// snapshots stay in place.
func (co *Coordinator) Refresh() error {
	clients, err := co.store.ListClients()
	if err != nil {
		return err
	}
	events, err := co.store.ListEvents()
	if err != nil {
		return err
	}
	co.clients = clients
	co.events = events
	return nil
}

func (co *Coordinator) refreshEvents() error {
	events, err := co.store.ListEvents()
	if err != nil {
		return err
	}
	co.events = events
	return nil
}

// Year and Month report the displayed month.
func (co *Coordinator) Year() int         { return co.year }
func (co *Coordinator) Month() time.Month { return co.month }

func (co *Coordinator) setMonth(t time.Time) {
	co.year, co.month = t.Year(), t.Month()
}

// PrevMonth shifts the view one month back, rolling over year boundaries.
func (co *Coordinator) PrevMonth() {
	co.setMonth(time.Date(co.year, co.month-1, 1, 0, 0, 0, 0, time.Local))
}

// NextMonth shifts the view one month forward.
func (co *Coordinator) NextMonth() {
	co.setMonth(time.Date(co.year, co.month+1, 1, 0, 0, 0, 0, time.Local))
}

// Today resets the view to now's month.
func (co *Coordinator) Today(now time.Time) {
	co.setMonth(now)
}

func (co *Coordinator) Clients() []Client { return co.clients }
func (co *Coordinator) Events() []Event   { return co.events }

func (co *Coordinator) SetClientFilter(clientID string) { co.clientFilter = clientID }
func (co *Coordinator) SetTypeFilter(eventType string)  { co.typeFilter = eventType }

// FilteredEvents narrows the event snapshot to the active client and type
// filters, preserving order.
func (co *Coordinator) FilteredEvents() []Event {
	filtered := make([]Event, 0, len(co.events))
	for _, ev := range co.events {
		if co.clientFilter != FilterAll && ev.ClientID != co.clientFilter {
			continue
		}
		if co.typeFilter != FilterAll && string(ev.Type) != co.typeFilter {
			continue
		}
		filtered = append(filtered, ev)
	}
	return filtered
}

// BeginDrag, ExtendDrag and EndDrag drive the drag selection. EndDrag must
// fire on every pointer-up, including ones outside the grid; a completed
// non-empty span opens the create form with those dates.
func (co *Coordinator) BeginDrag(date time.Time)  { co.selection.Begin(date) }
func (co *Coordinator) ExtendDrag(date time.Time) { co.selection.Extend(date) }

func (co *Coordinator) EndDrag() {
	dates := co.selection.Complete()
	if len(dates) == 0 {
		return
	}
	co.selectedDates = dates
	co.modalOpen = true
}

// SelectionDates returns the live drag span for rendering.
func (co *Coordinator) SelectionDates() []time.Time { return co.selection.Dates() }

// Edit opens the form on an existing event, pre-populated with its
// persisted date range.
func (co *Coordinator) Edit(ev Event) {
	start, err := ParseDate(ev.StartDate)
	if err != nil {
		return
	}
	end, err := ParseDate(ev.EndDate)
	if err != nil {
		return
	}
	co.editing = &ev
	co.selectedDates = DateRange(start, end)
	co.modalOpen = true
}

// CloseModal discards the form and any committed selection, whether or not
// a submit happened.
func (co *Coordinator) CloseModal() {
	co.modalOpen = false
	co.selectedDates = nil
	co.editing = nil
}

func (co *Coordinator) ModalOpen() bool { return co.modalOpen }

// Editing returns the event being edited, nil when creating.
func (co *Coordinator) Editing() *Event { return co.editing }

// SelectedDates returns the committed span backing the open form.
func (co *Coordinator) SelectedDates() []time.Time { return co.selectedDates }

// Submit creates or updates the event backing the open form. Validation
// failures (no client, no dates, bad type) are silent no-ops with the form
// left open. A store failure is returned with all local state untouched so
// the user can retry; only on success are the events reloaded and the form
// closed.
func (co *Coordinator) Submit(clientID, title string, eventType EventType) error {
	if clientID == "" || len(co.selectedDates) == 0 || !ValidEventType(eventType) {
		return nil
	}

	dates := make([]time.Time, len(co.selectedDates))
	copy(dates, co.selectedDates)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	in := EventInput{
		ClientID:  clientID,
		Title:     title,
		StartDate: FormatDate(dates[0]),
		EndDate:   FormatDate(dates[len(dates)-1]),
		Type:      eventType,
	}

	var err error
	if co.editing != nil {
		err = co.store.UpdateEvent(co.editing.ID, in)
	} else {
		err = co.store.InsertEvent(in)
	}
	if err != nil {
		return err
	}

	if err := co.refreshEvents(); err != nil {
		return err
	}
	co.CloseModal()
	return nil
}

// Delete removes an event by id, reloading the snapshot on success. On
// failure the prior list stays displayed.
func (co *Coordinator) Delete(id string) error {
	if err := co.store.DeleteEvent(id); err != nil {
		return err
	}
	return co.refreshEvents()
}

// Cells builds the displayed month's day cells from the filtered events
// and the live drag span.
func (co *Coordinator) Cells(now time.Time) []DayCell {
	return MonthCells(co.year, co.month, co.FilteredEvents(), co.selection.Dates(), now)
}

// TypeTotals aggregates day counts per event type over the filtered events.
func (co *Coordinator) TypeTotals() Totals {
	return TypeTotals(co.FilteredEvents())
}

// ClientTotals aggregates day counts per client over the filtered events.
func (co *Coordinator) ClientTotals() map[string]Totals {
	return ClientTotals(co.clients, co.FilteredEvents())
}
