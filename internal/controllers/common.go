package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"unit_rental/internal/config"
	"unit_rental/internal/models"
	"unit_rental/internal/repository"
	"unit_rental/internal/units"
)

func claimedUserID(c *gin.Context) uint {
	return uint(c.MustGet("user_id").(float64))
}

// currentOwner re-resolves the caller's owner profile from the store.
// Writes the error response and returns false when resolution fails.
func currentOwner(c *gin.Context) (*models.Owner, bool) {
	owner, err := repository.NewUserRepo(config.DB).OwnerByUserID(claimedUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "No owner profile for this account"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load owner profile"})
		}
		return nil, false
	}
	return owner, true
}

func currentDriver(c *gin.Context) (*models.Driver, bool) {
	driver, err := repository.NewUserRepo(config.DB).DriverByUserID(claimedUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"error": "No driver profile for this account"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load driver profile"})
		}
		return nil, false
	}
	return driver, true
}

// listQuery reads the projection inputs from the query string. Both
// listing endpoints share the same three parameters.
func listQuery(c *gin.Context) units.Query {
	return units.Query{
		Search: c.Query("search"),
		Type:   c.Query("type"),
		Sort:   units.ParseSortOrder(c.Query("sort")),
	}
}
