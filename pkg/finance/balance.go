// Package finance provides the reserve-fund arithmetic shared by the primary
// projection and the scenario cash-flow simulation.
package finance

import (
	"math"
)

// BalanceStep is one year of the reserve-balance recurrence.
type BalanceStep struct {
	BeginningBalance float64 `json:"beginningBalance"`
	Contributions    float64 `json:"contributions"`
	Interest         float64 `json:"interest"`
	Expenditures     float64 `json:"expenditures"`
	EndingBalance    float64 `json:"endingBalance"`
}

// AdvanceBalance applies one year of contributions, interest on the opening
// balance, and expenditures.
func AdvanceBalance(beginning, contribution, interestRate, expenditures float64) BalanceStep {
	interest := beginning * interestRate
	return BalanceStep{
		BeginningBalance: beginning,
		Contributions:    contribution,
		Interest:         interest,
		Expenditures:     expenditures,
		EndingBalance:    beginning + contribution + interest - expenditures,
	}
}

// InflationMultiplier returns (1+rate)^(year-1) for a 1-based year index.
func InflationMultiplier(rate float64, year int) float64 {
	return math.Pow(1+rate, float64(year-1))
}

// InflationTable memoizes inflation multipliers for years 1..len.
type InflationTable struct {
	rate        float64
	multipliers []float64
}

// NewInflationTable precomputes multipliers for the given number of years.
func NewInflationTable(rate float64, years int) *InflationTable {
	if years < 0 {
		years = 0
	}
	table := &InflationTable{rate: rate, multipliers: make([]float64, years)}
	for y := 1; y <= years; y++ {
		table.multipliers[y-1] = InflationMultiplier(rate, y)
	}
	return table
}

// At returns the multiplier for a 1-based year. Years outside the table are
// computed directly.
func (t *InflationTable) At(year int) float64 {
	if year >= 1 && year <= len(t.multipliers) {
		return t.multipliers[year-1]
	}
	return InflationMultiplier(t.rate, year)
}

// Years reports how many years are memoized.
func (t *InflationTable) Years() int {
	return len(t.multipliers)
}
