// Package reserve implements the primary reserve-study projection: the
// component funding model, the single-replacement year evaluator, the
// projection driver and the category aggregation layer.
package reserve

import (
	"github.com/iwvelando/reserve-forecast/pkg/constants"
)

// FinancialParameters are the fund-level inputs of a run.
type FinancialParameters struct {
	BeginningYear             int     `json:"beginningYear"`
	ProjectionYears           int     `json:"projectionYears"`
	InflationRate             float64 `json:"inflationRate"`
	InterestRate              float64 `json:"interestRate"`
	BeginningReserveBalance   float64 `json:"beginningReserveBalance"`
	CurrentAnnualContribution float64 `json:"currentAnnualContribution"`
}

// Horizon is the number of evaluated years: the projection plus one boundary
// year of lookahead.
func (p FinancialParameters) Horizon() int {
	if p.ProjectionYears < 0 {
		return constants.BoundaryYears
	}
	return p.ProjectionYears + constants.BoundaryYears
}

// FiscalYear converts a 1-based year index to a calendar year.
func (p FinancialParameters) FiscalYear(year int) int {
	return p.BeginningYear + year - 1
}

// Component is one physical asset in the reserve inventory.
type Component struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Quantity      float64  `json:"quantity"`
	CostPerUnit   float64  `json:"costPerUnit"`
	UsefulLife    int      `json:"usefulLife"`
	RemainingLife int      `json:"remainingLife"`
}

// ReplacementCost is the uninflated cost of replacing every unit.
func (c Component) ReplacementCost() float64 {
	return c.Quantity * c.CostPerUnit
}

// InflatedCost is the replacement cost scaled by an inflation multiplier.
func (c Component) InflatedCost(multiplier float64) float64 {
	return c.Quantity * c.CostPerUnit * multiplier
}

// FullFundingBalance is the share of totalCost matching the consumed part of
// the useful life. It is zero for components without a useful life.
func (c Component) FullFundingBalance(totalCost float64, remainingLife int) float64 {
	if c.UsefulLife <= 0 {
		return 0
	}
	effectiveAge := c.UsefulLife - remainingLife
	return totalCost * (float64(effectiveAge) / float64(c.UsefulLife))
}

// AnnualFunding is the component-method contribution that closes fundsNeeded
// over the remaining life, falling back to the useful life once the
// component is due.
func (c Component) AnnualFunding(fundsNeeded float64, remainingLife int) float64 {
	switch {
	case remainingLife > 0:
		return fundsNeeded / float64(remainingLife)
	case c.UsefulLife > 0:
		return fundsNeeded / float64(c.UsefulLife)
	default:
		return 0
	}
}

// ReplacementYear is the fiscal year of the originally scheduled replacement.
func (c Component) ReplacementYear(beginningYear int) int {
	return beginningYear + c.RemainingLife
}

// TotalReplacementCost sums the uninflated replacement cost of components.
func TotalReplacementCost(components []Component) float64 {
	total := 0.0
	for _, c := range components {
		total += c.ReplacementCost()
	}
	return total
}
