package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reminder struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Date        string `gorm:"not null;index" json:"date"` // wire-format date
	Notes       string `json:"notes"`
	IsCompleted bool   `gorm:"default:false" json:"is_completed"`

	gorm.Model `json:"-"`
}

// Note is a home-screen post-it.
type Note struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Content  string `gorm:"not null" json:"content"`
	Color    string `gorm:"type:varchar(20);default:'yellow'" json:"color"`
	Position int    `gorm:"default:0" json:"position"`

	gorm.Model `json:"-"`
}
