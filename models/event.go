package models

import (
	"time"

	"daybook-backend/calendar"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a booking over an inclusive calendar date range. Start and end
// are stored in the wire format (YYYY-MM-DD) so they round trip through
// the calendar package without conversion. StartDate <= EndDate
// is enforced at submission time by sorting the selected dates.
type Event struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Title     string    `json:"title"`
	StartDate string    `gorm:"not null;index" json:"start_date"` // lexicographic order == chronological
	EndDate   string    `gorm:"not null" json:"end_date"`
	EventType string    `gorm:"type:varchar(10);not null;default:'book'" json:"event_type"` // hold, book or paid

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// View maps the persisted event to the calendar package's representation.
func (e *Event) View() calendar.Event {
	view := calendar.Event{
		ID:        e.ID.String(),
		ClientID:  e.ClientID.String(),
		Title:     e.Title,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Type:      calendar.EventType(e.EventType),
	}
	if e.Client != nil {
		view.Client = &calendar.Client{
			ID:    e.Client.ID.String(),
			Name:  e.Client.Name,
			Color: e.Client.Color,
		}
	}
	return view
}
