package calendar

// Totals is a day-count breakdown over the three event types.
type Totals struct {
	Hold  int `json:"hold"`
	Book  int `json:"book"`
	Paid  int `json:"paid"`
	Total int `json:"total"`
}

func (t *Totals) add(eventType EventType, days int) {
	switch eventType {
	case EventHold:
		t.Hold += days
	case EventBook:
		t.Book += days
	case EventPaid:
		t.Paid += days
	}
	t.Total += days
}

func eventDays(ev Event) (int, bool) {
	start, err := ParseDate(ev.StartDate)
	if err != nil {
		return 0, false
	}
	end, err := ParseDate(ev.EndDate)
	if err != nil {
		return 0, false
	}
	return InclusiveDays(start, end), true
}

// TypeTotals sums the inclusive day-span of every event into its type
// bucket and the running total.
func TypeTotals(events []Event) Totals {
	var totals Totals
	for _, ev := range events {
		days, ok := eventDays(ev)
		if !ok {
			continue
		}
		totals.add(ev.Type, days)
	}
	return totals
}

// ClientTotals buckets the same day-spans per client. Every known client
// gets an entry, all-zero when it has no events; events referencing a
// client id that is no longer in clients are skipped.
func ClientTotals(clients []Client, events []Event) map[string]Totals {
	byClient := make(map[string]Totals, len(clients))
	for _, cl := range clients {
		byClient[cl.ID] = Totals{}
	}

	for _, ev := range events {
		totals, ok := byClient[ev.ClientID]
		if !ok {
			continue
		}
		days, ok := eventDays(ev)
		if !ok {
			continue
		}
		totals.add(ev.Type, days)
		byClient[ev.ClientID] = totals
	}

	return byClient
}
