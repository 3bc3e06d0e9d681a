package repository

import (
	"errors"

	"gorm.io/gorm"

	"unit_rental/internal/models"
)

// UserRepo looks up auth identities and their role profiles.
type UserRepo struct{ DB *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{DB: db} }

// ByEmail fetches a user by email with both role profiles preloaded.
func (r *UserRepo) ByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("email = ?", email).
		Preload("Owner").
		Preload("Driver").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// OwnerByUserID fetches the owner profile belonging to a user id.
func (r *UserRepo) OwnerByUserID(userID uint) (*models.Owner, error) {
	var owner models.Owner
	if err := r.DB.Where("user_id = ?", userID).First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &owner, nil
}

// DriverByUserID fetches the driver profile belonging to a user id.
func (r *UserRepo) DriverByUserID(userID uint) (*models.Driver, error) {
	var driver models.Driver
	if err := r.DB.Where("user_id = ?", userID).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// DriverByID fetches a driver profile by its own id.
func (r *UserRepo) DriverByID(id uint) (*models.Driver, error) {
	var driver models.Driver
	if err := r.DB.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// OwnerByID fetches an owner profile by its own id.
func (r *UserRepo) OwnerByID(id uint) (*models.Owner, error) {
	var owner models.Owner
	if err := r.DB.First(&owner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &owner, nil
}

// SaveOwner persists profile edits. GORM's Save writes the whole row,
// so fields the form did not touch keep their loaded values.
func (r *UserRepo) SaveOwner(owner *models.Owner) error {
	return r.DB.Save(owner).Error
}
