// Package session resolves an authenticated user into a role-scoped
// session. The role is an explicit tag stamped on the user at sign-up,
// so resolution is a single profile lookup rather than probing every
// profile table in turn.
package session

import (
	"errors"

	"unit_rental/internal/models"
	"unit_rental/internal/repository"
)

// ErrNoProfile means authentication succeeded but no profile record
// exists for the user's role. The account is unusable for unit
// operations until a profile is created.
var ErrNoProfile = errors.New("no profile found for this account")

// ProfileSource is the subset of the user repository the resolver needs.
type ProfileSource interface {
	OwnerByUserID(userID uint) (*models.Owner, error)
	DriverByUserID(userID uint) (*models.Driver, error)
}

// Session is the resolved identity: who is signed in, which role they
// hold, and the profile id used to scope unit queries.
type Session struct {
	UserID      uint   `json:"user_id"`
	Role        string `json:"role"`
	ProfileID   uint   `json:"profile_id"`
	DisplayName string `json:"display_name"`
}

// Resolve maps a user onto its session. A missing profile record, or a
// role tag outside the known set, yields ErrNoProfile.
func Resolve(user models.User, profiles ProfileSource) (Session, error) {
	switch user.Role {
	case models.RoleOwner:
		owner, err := profiles.OwnerByUserID(user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return Session{}, ErrNoProfile
			}
			return Session{}, err
		}
		return Session{
			UserID:      user.ID,
			Role:        models.RoleOwner,
			ProfileID:   owner.ID,
			DisplayName: owner.DisplayName(),
		}, nil

	case models.RoleDriver:
		driver, err := profiles.DriverByUserID(user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return Session{}, ErrNoProfile
			}
			return Session{}, err
		}
		return Session{
			UserID:      user.ID,
			Role:        models.RoleDriver,
			ProfileID:   driver.ID,
			DisplayName: driver.Name,
		}, nil

	default:
		return Session{}, ErrNoProfile
	}
}
