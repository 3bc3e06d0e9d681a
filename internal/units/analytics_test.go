package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit_rental/internal/models"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
	assert.Nil(t, s.TopUnit)
}

func TestSummarizeTotals(t *testing.T) {
	seven := uint(7)
	s := Summarize([]models.Unit{
		{ID: "a", Name: "Trike A", CashIn: 1000, CashOut: 400, CashFlow: 600, DriverID: &seven},
		{ID: "b", Name: "Trike B", CashIn: 500, CashOut: 100, CashFlow: 400},
		{ID: "c", Name: "Truck", CashIn: 2000, CashOut: 1500, CashFlow: 500},
	})

	assert.Equal(t, 3, s.UnitCount)
	assert.Equal(t, 1, s.AssignedCount)
	assert.Equal(t, 3500.0, s.TotalCashIn)
	assert.Equal(t, 2000.0, s.TotalCashOut)
	assert.Equal(t, 1500.0, s.TotalRevenue)

	require.NotNil(t, s.TopUnit)
	assert.Equal(t, TopUnit{ID: "a", Name: "Trike A", CashFlow: 600}, *s.TopUnit)
}

func TestSummarizeTopUnitTieKeepsFirst(t *testing.T) {
	s := Summarize([]models.Unit{
		{ID: "x", Name: "First", CashFlow: 100},
		{ID: "y", Name: "Second", CashFlow: 100},
	})
	require.NotNil(t, s.TopUnit)
	assert.Equal(t, "x", s.TopUnit.ID)
}
