package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is file metadata only; blob storage lives outside this service.
type Document struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	FileURL     string `gorm:"not null" json:"file_url"`
	FileName    string `gorm:"not null" json:"file_name"`
	FileSize    int64  `gorm:"default:0" json:"file_size"`
	FileType    string `json:"file_type"`
	Category    string `gorm:"type:varchar(20);default:'other'" json:"category"` // invoice, proposal, storyboard, resume, other

	gorm.Model `json:"-"`
}
