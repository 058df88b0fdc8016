package reserve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentFullFundingBalanceBounds(t *testing.T) {
	for useful := 1; useful <= 40; useful++ {
		for remaining := 0; remaining <= useful; remaining++ {
			c := Component{Quantity: 3, CostPerUnit: 1250.5, UsefulLife: useful, RemainingLife: remaining}
			cost := c.InflatedCost(1.37)
			ffb := c.FullFundingBalance(cost, remaining)
			assert.GreaterOrEqual(t, ffb, 0.0, "useful=%d remaining=%d", useful, remaining)
			assert.LessOrEqual(t, ffb, cost, "useful=%d remaining=%d", useful, remaining)
		}
	}
}

func TestComponentFullFundingBalanceZeroUsefulLife(t *testing.T) {
	c := Component{Quantity: 1, CostPerUnit: 500, UsefulLife: 0, RemainingLife: 0}
	assert.Equal(t, 0.0, c.FullFundingBalance(500, 0))
}

func TestComponentAnnualFunding(t *testing.T) {
	tests := []struct {
		name      string
		useful    int
		remaining int
		needed    float64
		expected  float64
	}{
		{"Remaining life divides", 10, 5, 8000, 1600},
		{"Due now falls back to useful life", 10, 0, 10000, 1000},
		{"No useful life", 0, 0, 10000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Component{UsefulLife: tt.useful}
			assert.InDelta(t, tt.expected, c.AnnualFunding(tt.needed, tt.remaining), 1e-9)
		})
	}
}

func TestTotalReplacementCost(t *testing.T) {
	assert.InDelta(t, 10000.0, TotalReplacementCost([]Component{roofComponent()}), 1e-9)
	assert.Equal(t, 0.0, TotalReplacementCost(nil))
	assert.InDelta(t, 10000+6000+16000+4500+12000+14000.0, TotalReplacementCost(sampleInventory()), 1e-9)
}

func TestFinancialParametersHorizon(t *testing.T) {
	params := singleComponentParams()
	assert.Equal(t, 31, params.Horizon())
	assert.Equal(t, 2025, params.FiscalYear(1))
	assert.Equal(t, 2055, params.FiscalYear(31))
}
