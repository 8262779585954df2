package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subscription struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`

	Name         string   `gorm:"not null" json:"name"`
	Purpose      string   `json:"purpose"`
	LoginEmail   string   `json:"login_email"`
	Cost         *float64 `gorm:"type:decimal(10,2)" json:"cost"`
	BillingCycle string   `gorm:"type:varchar(10);not null;default:'monthly'" json:"billing_cycle"` // monthly or yearly
	IsActive     bool     `gorm:"default:true" json:"is_active"`
	Notes        string   `json:"notes"`

	gorm.Model `json:"-"`
}

// MonthlyCost normalizes the subscription cost to a per-month figure.
func (s *Subscription) MonthlyCost() float64 {
	if s.Cost == nil {
		return 0
	}
	if s.BillingCycle == "yearly" {
		return *s.Cost / 12
	}
	return *s.Cost
}
