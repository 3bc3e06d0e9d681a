package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"unit_rental/internal/auth"
	"unit_rental/internal/config"
	"unit_rental/internal/middleware"
	"unit_rental/internal/models"
	"unit_rental/internal/repository"
	"unit_rental/internal/session"
)

// Tokens is the sign-out revocation store, wired from main.
var Tokens *auth.TokenStore

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`

	// Owner profile fields
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`

	// Driver profile fields
	LicenseNumber string `json:"license_number"`
	PhoneNumber   string `json:"phone_number"`
}

func SignupUser(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := validateAndNormalizeRole(input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.Role = role

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	user, err := createUserRecord(tx, input, hashedPassword)
	if err != nil {
		tx.Rollback()
		if repository.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}

	sess, err := createProfileRecord(tx, &user, input)
	if err != nil {
		tx.Rollback()
		if strings.Contains(err.Error(), "required for") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile record: " + err.Error()})
		}
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"session": sess,
		"user":    prepareUserResponse(user),
	})
}

func LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users := repository.NewUserRepo(config.DB)
	user, err := users.ByEmail(body.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	sess, err := session.Resolve(*user, users)
	if err != nil {
		if errors.Is(err, session.ErrNoProfile) {
			c.JSON(http.StatusForbidden, gin.H{"error": "no profile found for this account"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve profile: " + err.Error()})
		}
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"session": sess,
		"user":    prepareUserResponse(*user),
	})
}

// LogoutUser revokes the presented token until its natural expiry.
// Requires RequireAuth upstream.
func LogoutUser(c *gin.Context) {
	tokenStr := c.MustGet("token").(string)

	token, err := middleware.ValidateToken(tokenStr)
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	expiresAt := time.Now()
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			expiresAt = exp.Time
		}
	}

	if err := Tokens.Revoke(c.Request.Context(), tokenStr, expiresAt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not revoke token: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func validateAndNormalizeRole(roleInput string) (string, error) {
	role := strings.ToLower(strings.TrimSpace(roleInput))
	switch role {
	case models.RoleOwner, models.RoleDriver:
		return role, nil
	default:
		return "", errors.New("invalid role")
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func createUserRecord(tx *gorm.DB, input signupInput, hashedPassword string) (models.User, error) {
	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     input.Role,
	}
	if err := tx.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func createProfileRecord(tx *gorm.DB, user *models.User, input signupInput) (session.Session, error) {
	switch user.Role {
	case models.RoleOwner:
		if input.FirstName == "" || input.LastName == "" {
			return session.Session{}, errors.New("first_name and last_name are required for owner role")
		}

		owner := models.Owner{
			UserID:        user.ID,
			FirstName:     input.FirstName,
			LastName:      input.LastName,
			ContactNumber: input.ContactNumber,
			Address:       input.Address,
			Email:         input.Email,
		}
		if err := tx.Create(&owner).Error; err != nil {
			return session.Session{}, err
		}
		user.Owner = &owner
		if err := tx.Save(user).Error; err != nil {
			return session.Session{}, err
		}
		return session.Session{
			UserID:      user.ID,
			Role:        models.RoleOwner,
			ProfileID:   owner.ID,
			DisplayName: owner.DisplayName(),
		}, nil

	case models.RoleDriver:
		if input.LicenseNumber == "" {
			return session.Session{}, errors.New("license_number is required for driver role")
		}
		if input.PhoneNumber == "" {
			return session.Session{}, errors.New("phone_number is required for driver role")
		}

		driver := models.Driver{
			UserID:        user.ID,
			Name:          input.Name,
			Phone:         input.PhoneNumber,
			LicenseNumber: input.LicenseNumber,
		}
		if err := tx.Create(&driver).Error; err != nil {
			return session.Session{}, err
		}
		user.Driver = &driver
		if err := tx.Save(user).Error; err != nil {
			return session.Session{}, err
		}
		return session.Session{
			UserID:      user.ID,
			Role:        models.RoleDriver,
			ProfileID:   driver.ID,
			DisplayName: driver.Name,
		}, nil
	}
	return session.Session{}, errors.New("invalid role")
}

func prepareUserResponse(user models.User) gin.H {
	responseUser := gin.H{
		"ID":        user.ID,
		"CreatedAt": user.CreatedAt,
		"UpdatedAt": user.UpdatedAt,
		"name":      user.Name,
		"email":     user.Email,
		"role":      user.Role,
	}

	if user.Owner != nil {
		responseUser["owner"] = gin.H{
			"ID":             user.Owner.ID,
			"first_name":     user.Owner.FirstName,
			"last_name":      user.Owner.LastName,
			"contact_number": user.Owner.ContactNumber,
			"address":        user.Owner.Address,
			"email":          user.Owner.Email,
		}
		responseUser["owner_id"] = user.Owner.ID
	}
	if user.Driver != nil {
		responseUser["driver"] = gin.H{
			"ID":             user.Driver.ID,
			"name":           user.Driver.Name,
			"phone":          user.Driver.Phone,
			"license_number": user.Driver.LicenseNumber,
		}
		responseUser["driver_id"] = user.Driver.ID
	}
	return responseUser
}
