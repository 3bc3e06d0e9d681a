// internal/models/owner.go
package models

import (
	"strings"

	"gorm.io/gorm"
)

// Owner is the profile record for a user with the "owner" role.
// Owners hold the rentable units and see their financial summaries.
type Owner struct {
	gorm.Model
	UserID        uint   `gorm:"uniqueIndex" json:"user_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	Email         string `json:"email"`

	Units []Unit `gorm:"foreignKey:OwnerID" json:"units,omitempty"`
}

// DisplayName is the denormalized name copied onto units at creation.
func (o Owner) DisplayName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}
