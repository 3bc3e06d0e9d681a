package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"unit_rental/internal/config"
	"unit_rental/internal/repository"
	"unit_rental/internal/units"
)

// CreateUnit lets an owner add a new unit. Cash fields start at zero
// and no driver is assigned; the record carries the owner's display
// name as entered at creation time.
func CreateUnit(c *gin.Context) {
	var form units.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit input: " + err.Error()})
		return
	}

	owner, ok := currentOwner(c)
	if !ok {
		return
	}

	rate, err := form.Validate()
	if err != nil {
		var verr *units.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Please fill in all required fields.",
				"fields": verr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := repository.NewUnitRepo(config.DB).Create(owner.ID, owner.DisplayName(), form.Name, form.Type, form.Description, rate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create unit: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"unit": unit})
}

// ListMyUnits returns the owner's units with the shared search/type/sort
// projection applied.
func ListMyUnits(c *gin.Context) {
	owner, ok := currentOwner(c)
	if !ok {
		return
	}

	list, err := repository.NewUnitRepo(config.DB).ListForOwner(owner.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching units"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": units.Project(list, listQuery(c))})
}

func GetUnit(c *gin.Context) {
	owner, ok := currentOwner(c)
	if !ok {
		return
	}

	unit, err := repository.NewUnitRepo(config.DB).GetForOwner(c.Param("id"), owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch unit"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"unit": unit})
}

// UpdateUnit rewrites the four editable fields after the same
// validation as create. Ownership, cash fields, driver assignment and
// the creation timestamp stay untouched.
func UpdateUnit(c *gin.Context) {
	owner, ok := currentOwner(c)
	if !ok {
		return
	}

	var form units.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	rate, err := form.Validate()
	if err != nil {
		var verr *units.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Please fill in all required fields.",
				"fields": verr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := repository.NewUnitRepo(config.DB).UpdateFields(c.Param("id"), owner.ID, form.Name, form.Type, form.Description, rate)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update unit: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"unit": unit})
}

// DeleteUnit removes a unit in a single irreversible call. Any
// confirmation dialog is the client's responsibility.
func DeleteUnit(c *gin.Context) {
	owner, ok := currentOwner(c)
	if !ok {
		return
	}

	if err := repository.NewUnitRepo(config.DB).Delete(c.Param("id"), owner.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete unit: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unit deleted"})
}

type assignDriverInput struct {
	// Null clears the assignment.
	DriverID *uint `json:"driver_id"`
}

// AssignDriver sets or clears the driver a unit is rented out to.
func AssignDriver(c *gin.Context) {
	owner, ok := currentOwner(c)
	if !ok {
		return
	}

	var input assignDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if input.DriverID != nil {
		if _, err := repository.NewUserRepo(config.DB).DriverByID(*input.DriverID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up driver"})
			}
			return
		}
	}

	unit, err := repository.NewUnitRepo(config.DB).AssignDriver(c.Param("id"), owner.ID, input.DriverID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign driver: " + err.Error()})
		}
		return
	}

	logrus.WithFields(logrus.Fields{
		"unit_id":  unit.ID,
		"owner_id": owner.ID,
	}).Info("driver assignment changed")

	c.JSON(http.StatusOK, gin.H{"unit": unit})
}

type recordCashInput struct {
	CashIn  float64 `json:"cash_in"`
	CashOut float64 `json:"cash_out"`
}

// RecordCash adds cash movements to a unit. The stored cash flow is
// recomputed as cash in minus cash out on every write.
func RecordCash(c *gin.Context) {
	owner, ok := currentOwner(c)
	if !ok {
		return
	}

	var input recordCashInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if input.CashIn < 0 || input.CashOut < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cash amounts must be non-negative"})
		return
	}

	unit, err := repository.NewUnitRepo(config.DB).RecordCash(c.Param("id"), owner.ID, input.CashIn, input.CashOut)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record cash: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"unit": unit})
}

// OwnerAnalytics summarizes the owner's units for the analytics screen.
func OwnerAnalytics(c *gin.Context) {
	owner, ok := currentOwner(c)
	if !ok {
		return
	}

	list, err := repository.NewUnitRepo(config.DB).ListForOwner(owner.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching units"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analytics": units.Summarize(list)})
}
