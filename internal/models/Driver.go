// internal/models/driver.go
package models

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"uniqueIndex"` // Foreign key to User
	Name          string `json:"name"`                       // Single canonical name field
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
	// DO NOT include Email, Password, or Role here. They are in the User model.
}
