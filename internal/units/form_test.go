package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit_rental/internal/models"
)

func TestValidateAcceptsCompleteForm(t *testing.T) {
	rate, err := Form{
		Name:        "Unit A",
		Type:        models.TypeTricycle,
		Description: "desc",
		Rate:        "150.5",
	}.Validate()
	require.NoError(t, err)
	assert.Equal(t, 150.5, rate)
}

func TestValidateFlagsEmptyDescription(t *testing.T) {
	_, err := Form{
		Name:        "Unit A",
		Type:        models.TypeTricycle,
		Description: "",
		Rate:        "100",
	}.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, FieldErrors{Description: true}, verr.Fields)
}

func TestValidateFlagsEveryBadField(t *testing.T) {
	_, err := Form{
		Name:        "  ",
		Type:        "hovercraft",
		Description: "",
		Rate:        "cheap",
	}.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, FieldErrors{Name: true, Type: true, Description: true, Rate: true}, verr.Fields)
}

func TestValidateRate(t *testing.T) {
	base := Form{Name: "n", Type: models.TypeEBike, Description: "d"}

	cases := []struct {
		rate string
		ok   bool
	}{
		{"0", true},
		{"150.5", true},
		{" 42 ", true},
		{"", false},
		{"abc", false},
		{"-5", false},
		{"NaN", false},
		{"Inf", false},
	}
	for _, tc := range cases {
		f := base
		f.Rate = tc.rate
		_, err := f.Validate()
		if tc.ok {
			assert.NoError(t, err, "rate %q", tc.rate)
		} else {
			var verr *ValidationError
			require.Truef(t, errors.As(err, &verr), "rate %q", tc.rate)
			assert.Truef(t, verr.Fields.Rate, "rate %q", tc.rate)
		}
	}
}

func TestValidateTypeClosedSet(t *testing.T) {
	for _, typ := range models.UnitTypes {
		_, err := Form{Name: "n", Type: typ, Description: "d", Rate: "1"}.Validate()
		assert.NoErrorf(t, err, "type %q", typ)
	}

	_, err := Form{Name: "n", Type: "", Description: "d", Rate: "1"}.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Fields.Type)
}
