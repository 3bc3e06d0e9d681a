package repository

import (
	"errors"

	"gorm.io/gorm"

	"unit_rental/internal/models"
)

// UnitRepo persists units. Every mutating method is scoped by the owning
// profile so one owner can never touch another owner's units; a scoping
// miss is indistinguishable from a missing record (ErrNotFound).
type UnitRepo struct{ DB *gorm.DB }

func NewUnitRepo(db *gorm.DB) *UnitRepo { return &UnitRepo{DB: db} }

// Create inserts a new unit. The caller supplies owner identity and the
// validated form fields; cash fields start at zero and no driver is
// assigned. Timestamps and the UUID are assigned by the store.
func (r *UnitRepo) Create(ownerID uint, ownerName, name, unitType, description string, rate float64) (*models.Unit, error) {
	unit := models.Unit{
		OwnerID:     ownerID,
		OwnerName:   ownerName,
		Name:        name,
		Type:        unitType,
		Description: description,
		Rate:        rate,
	}
	if err := r.DB.Create(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// Get fetches one unit by id regardless of ownership.
func (r *UnitRepo) Get(id string) (*models.Unit, error) {
	var unit models.Unit
	if err := r.DB.Where("id = ?", id).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// GetForOwner fetches one unit owned by ownerID.
func (r *UnitRepo) GetForOwner(id string, ownerID uint) (*models.Unit, error) {
	var unit models.Unit
	if err := r.DB.Where("id = ? AND owner_id = ?", id, ownerID).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// GetForDriver fetches one unit currently assigned to driverID.
func (r *UnitRepo) GetForDriver(id string, driverID uint) (*models.Unit, error) {
	var unit models.Unit
	if err := r.DB.Where("id = ? AND driver_id = ?", id, driverID).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// UpdateFields rewrites the four editable fields and stamps the update
// timestamp. Ownership, driver assignment, cash fields and the creation
// timestamp are left untouched.
func (r *UnitRepo) UpdateFields(id string, ownerID uint, name, unitType, description string, rate float64) (*models.Unit, error) {
	unit, err := r.GetForOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	unit.Name = name
	unit.Type = unitType
	unit.Description = description
	unit.Rate = rate
	if err := r.DB.Save(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

// Delete removes a unit. Irreversible from the caller's point of view;
// any confirmation step belongs to the client.
func (r *UnitRepo) Delete(id string, ownerID uint) error {
	unit, err := r.GetForOwner(id, ownerID)
	if err != nil {
		return err
	}
	return r.DB.Delete(unit).Error
}

// ListForOwner returns all units owned by ownerID, oldest first.
func (r *UnitRepo) ListForOwner(ownerID uint) ([]models.Unit, error) {
	var units []models.Unit
	if err := r.DB.Where("owner_id = ?", ownerID).Order("created_at").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// ListForDriver returns all units assigned to driverID, oldest first.
func (r *UnitRepo) ListForDriver(driverID uint) ([]models.Unit, error) {
	var units []models.Unit
	if err := r.DB.Where("driver_id = ?", driverID).Order("created_at").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// AssignDriver sets or clears the unit's assigned driver.
func (r *UnitRepo) AssignDriver(id string, ownerID uint, driverID *uint) (*models.Unit, error) {
	unit, err := r.GetForOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	unit.DriverID = driverID
	if err := r.DB.Save(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}

// RecordCash adds cash movements to a unit and recomputes the cash flow.
// CashFlow is always derived as CashIn - CashOut, never written directly.
func (r *UnitRepo) RecordCash(id string, ownerID uint, cashIn, cashOut float64) (*models.Unit, error) {
	unit, err := r.GetForOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	unit.CashIn += cashIn
	unit.CashOut += cashOut
	unit.CashFlow = unit.CashIn - unit.CashOut
	if err := r.DB.Save(unit).Error; err != nil {
		return nil, err
	}
	return unit, nil
}
