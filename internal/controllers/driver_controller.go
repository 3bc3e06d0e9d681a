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

// GetDriverProfile returns the caller's driver profile.
func GetDriverProfile(c *gin.Context) {
	driver, ok := currentDriver(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// ListAssignedUnits returns the units currently assigned to the
// authenticated driver, with the shared search/type/sort projection.
func ListAssignedUnits(c *gin.Context) {
	driver, ok := currentDriver(c)
	if !ok {
		return
	}

	list, err := repository.NewUnitRepo(config.DB).ListForDriver(driver.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching assigned units"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"driver_name": driver.Name,
		"data":        units.Project(list, listQuery(c)),
	})
}

// GetAssignedUnit returns one assigned unit with the owner's display
// name resolved for the detail screen.
func GetAssignedUnit(c *gin.Context) {
	driver, ok := currentDriver(c)
	if !ok {
		return
	}

	unit, err := repository.NewUnitRepo(config.DB).GetForDriver(c.Param("id"), driver.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found or not assigned to you."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch unit"})
		}
		return
	}

	ownerName := "Unknown Owner"
	owner, err := repository.NewUserRepo(config.DB).OwnerByID(unit.OwnerID)
	switch {
	case err == nil:
		ownerName = owner.DisplayName()
	case !errors.Is(err, repository.ErrNotFound):
		logrus.WithError(err).WithField("owner_id", unit.OwnerID).Error("failed to resolve unit owner")
	}

	c.JSON(http.StatusOK, gin.H{
		"unit":       unit,
		"owner_name": ownerName,
	})
}
