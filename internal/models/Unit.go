// internal/models/unit.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Closed set of unit types. Anything else is rejected at validation time.
const (
	TypeTricycle = "tricycle"
	TypeEBike    = "e-bike"
	TypeTruck    = "truck"
	TypeOthers   = "others"
)

// UnitTypes lists the valid unit types in display order.
var UnitTypes = []string{TypeTricycle, TypeEBike, TypeTruck, TypeOthers}

// ValidUnitType reports whether t is one of the closed unit types.
func ValidUnitType(t string) bool {
	for _, v := range UnitTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Unit represents a rentable vehicle asset. The primary key is an opaque
// UUID assigned on creation; OwnerName is a denormalized display copy of
// the owning user's name taken at creation time.
type Unit struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time      `json:"date_created"`
	UpdatedAt time.Time      `json:"date_updated"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID   uint   `gorm:"index" json:"owner_id"`
	OwnerName string `json:"owner_name"`

	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	Rate          float64 `json:"rate"`
	RateFrequency string  `json:"rate_frequency"`

	// DriverID is the assigned driver's profile ID; nil while unassigned.
	DriverID *uint `gorm:"index" json:"driver_assigned"`

	CashIn   float64 `json:"cash_in"`
	CashOut  float64 `json:"cash_out"`
	CashFlow float64 `json:"cash_flow"` // always CashIn - CashOut
}

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.RateFrequency == "" {
		u.RateFrequency = "Daily"
	}
	return nil
}
