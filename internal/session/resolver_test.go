package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"unit_rental/internal/models"
	"unit_rental/internal/repository"
)

type fakeProfiles struct {
	owners  map[uint]*models.Owner
	drivers map[uint]*models.Driver
	err     error
}

func (f *fakeProfiles) OwnerByUserID(userID uint) (*models.Owner, error) {
	if f.err != nil {
		return nil, f.err
	}
	if o, ok := f.owners[userID]; ok {
		return o, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProfiles) DriverByUserID(userID uint) (*models.Driver, error) {
	if f.err != nil {
		return nil, f.err
	}
	if d, ok := f.drivers[userID]; ok {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func TestResolveOwner(t *testing.T) {
	profiles := &fakeProfiles{owners: map[uint]*models.Owner{
		7: {Model: gorm.Model{ID: 3}, FirstName: "Alice", LastName: "Reyes"},
	}}
	user := models.User{Model: gorm.Model{ID: 7}, Role: models.RoleOwner}

	sess, err := Resolve(user, profiles)
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: 7, Role: "owner", ProfileID: 3, DisplayName: "Alice Reyes"}, sess)
}

func TestResolveDriver(t *testing.T) {
	profiles := &fakeProfiles{drivers: map[uint]*models.Driver{
		9: {Model: gorm.Model{ID: 5}, Name: "Ben Cruz"},
	}}
	user := models.User{Model: gorm.Model{ID: 9}, Role: models.RoleDriver}

	sess, err := Resolve(user, profiles)
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: 9, Role: "driver", ProfileID: 5, DisplayName: "Ben Cruz"}, sess)
}

func TestResolveMissingProfile(t *testing.T) {
	profiles := &fakeProfiles{}

	for _, role := range []string{models.RoleOwner, models.RoleDriver} {
		user := models.User{Model: gorm.Model{ID: 1}, Role: role}
		_, err := Resolve(user, profiles)
		assert.ErrorIs(t, err, ErrNoProfile, "role %q", role)
	}
}

func TestResolveUnknownRole(t *testing.T) {
	user := models.User{Model: gorm.Model{ID: 1}, Role: "admin"}
	_, err := Resolve(user, &fakeProfiles{})
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestResolvePropagatesStoreFailures(t *testing.T) {
	boom := errors.New("connection refused")
	user := models.User{Model: gorm.Model{ID: 1}, Role: models.RoleOwner}

	_, err := Resolve(user, &fakeProfiles{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoProfile)
}
