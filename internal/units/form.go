package units

import (
	"math"
	"strconv"
	"strings"

	"unit_rental/internal/models"
)

// Form carries the user-entered unit fields. Rate arrives as typed
// text and is only coerced to a number once validation passes.
type Form struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Rate        string `json:"rate"`
}

// FieldErrors flags each invalid form field so the client can mark
// the matching inputs.
type FieldErrors struct {
	Name        bool `json:"name,omitempty"`
	Type        bool `json:"type,omitempty"`
	Description bool `json:"description,omitempty"`
	Rate        bool `json:"rate,omitempty"`
}

// ValidationError reports which fields failed. No store call is made
// when validation fails.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string { return "invalid unit fields" }

// Validate checks the form and returns the parsed rate. Name and
// description must be non-empty, the type must be one of the closed
// set, and the rate must parse to a finite non-negative number.
func (f Form) Validate() (float64, error) {
	var fe FieldErrors

	if strings.TrimSpace(f.Name) == "" {
		fe.Name = true
	}
	if !models.ValidUnitType(f.Type) {
		fe.Type = true
	}
	if strings.TrimSpace(f.Description) == "" {
		fe.Description = true
	}
	rate, err := strconv.ParseFloat(strings.TrimSpace(f.Rate), 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		fe.Rate = true
	}

	if fe.Name || fe.Type || fe.Description || fe.Rate {
		return 0, &ValidationError{Fields: fe}
	}
	return rate, nil
}
