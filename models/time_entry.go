package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	ClientID        *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	TaskName        string     `gorm:"not null" json:"task_name"`
	StartTime       time.Time  `gorm:"not null" json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes int        `gorm:"default:0" json:"duration_minutes"`
	IsRunning       bool       `gorm:"default:false" json:"is_running"`
	Date            string     `gorm:"not null;index" json:"date"` // wire-format day the entry belongs to

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	gorm.Model `json:"-"`
}
