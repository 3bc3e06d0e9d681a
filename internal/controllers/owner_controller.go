package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"unit_rental/internal/config"
	"unit_rental/internal/repository"
)

// GetOwnerProfile returns the caller's owner profile, re-resolved from
// the store on every call rather than cached client-side.
func GetOwnerProfile(c *gin.Context) {
	owner, ok := currentOwner(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"owner": owner})
}

// updateOwnerInput: pointer fields so absent keys leave the stored
// values untouched (merge semantics).
type updateOwnerInput struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	ContactNumber *string `json:"contact_number"`
	Address       *string `json:"address"`
	Email         *string `json:"email"`
}

// UpdateOwnerProfile edits the owner profile. Only fields present in
// the request change; the save stamps the updated timestamp.
func UpdateOwnerProfile(c *gin.Context) {
	owner, ok := currentOwner(c)
	if !ok {
		return
	}

	var input updateOwnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if input.FirstName != nil {
		owner.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		owner.LastName = *input.LastName
	}
	if input.ContactNumber != nil {
		owner.ContactNumber = *input.ContactNumber
	}
	if input.Address != nil {
		owner.Address = *input.Address
	}
	if input.Email != nil {
		owner.Email = *input.Email
	}

	if err := repository.NewUserRepo(config.DB).SaveOwner(owner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"owner": owner})
}
