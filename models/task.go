package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	ClientID    *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`  // todo, in_progress, done
	Priority    string     `gorm:"type:varchar(10);not null;default:'med'" json:"priority"` // low, med, high
	DueDate     string     `json:"due_date"`                                                // wire-format date, may be empty
	Position    int        `gorm:"default:0" json:"position"`                               // ordering within a kanban column

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	gorm.Model `json:"-"`
}
