package units

import "unit_rental/internal/models"

// TopUnit identifies the highest-earning unit in a summary.
type TopUnit struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	CashFlow float64 `json:"cash_flow"`
}

// Summary aggregates an owner's units for the analytics screen.
type Summary struct {
	UnitCount     int      `json:"unit_count"`
	AssignedCount int      `json:"assigned_count"`
	TotalCashIn   float64  `json:"total_cash_in"`
	TotalCashOut  float64  `json:"total_cash_out"`
	TotalRevenue  float64  `json:"total_revenue"` // sum of cash flow
	TopUnit       *TopUnit `json:"top_unit,omitempty"`
}

// Summarize folds a unit list into its analytics summary. The top unit
// is the one with the highest cash flow; the earliest listed wins ties.
func Summarize(in []models.Unit) Summary {
	s := Summary{UnitCount: len(in)}
	for i, u := range in {
		if u.DriverID != nil {
			s.AssignedCount++
		}
		s.TotalCashIn += u.CashIn
		s.TotalCashOut += u.CashOut
		s.TotalRevenue += u.CashFlow
		if s.TopUnit == nil || u.CashFlow > s.TopUnit.CashFlow {
			s.TopUnit = &TopUnit{ID: in[i].ID, Name: in[i].Name, CashFlow: in[i].CashFlow}
		}
	}
	return s
}
