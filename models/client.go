package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Name          string   `gorm:"not null" json:"name"`
	Color         string   `gorm:"not null" json:"color"` // #rrggbb, drives event chip shades
	ContactPerson string   `json:"contact_person"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	HourlyRate    *float64 `gorm:"type:decimal(10,2)" json:"hourly_rate"`

	// Deleting a client does not cascade; events and tasks keep the
	// dangling reference and render without client detail.
	Events []Event `gorm:"foreignKey:ClientID;constraint:OnDelete:NO ACTION" json:"-"`

	gorm.Model `json:"-"`
}
