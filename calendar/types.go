package calendar

// EventType is the hold -> book -> paid progression of a booking.
type EventType string

const (
	EventHold EventType = "hold"
	EventBook EventType = "book"
	EventPaid EventType = "paid"
)

// ValidEventType reports whether t is one of the three known types.
func ValidEventType(t EventType) bool {
	return t == EventHold || t == EventBook || t == EventPaid
}

// Client is the view of a client the calendar needs: identity plus the
// base color event chips derive their shades from.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Event is a client booking over an inclusive calendar date range.
// StartDate and EndDate are wire-format dates (YYYY-MM-DD, see FormatDate).
// Client is the joined client record; nil when the client was deleted.
type Event struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Title     string    `json:"title"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Type      EventType `json:"event_type"`
	Client    *Client   `json:"client,omitempty"`
}

// EventInput carries the fields of an insert or update.
type EventInput struct {
	ClientID  string
	Title     string
	StartDate string
	EndDate   string
	Type      EventType
}

// Store is the persistence contract the coordinator talks to.
type Store interface {
	// ListClients returns all clients ordered by name ascending.
	ListClients() ([]Client, error)
	// ListEvents returns all events ordered by start date ascending,
	// each joined with its client where one still exists.
	ListEvents() ([]Event, error)
	InsertEvent(in EventInput) error
	UpdateEvent(id string, in EventInput) error
	DeleteEvent(id string) error
}
