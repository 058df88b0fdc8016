package reserve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProjectThreadsBalances(t *testing.T) {
	params := singleComponentParams()
	entries := NewProjector(zap.NewNop()).Project(params, []Component{roofComponent()})

	require.Len(t, entries, 31)
	assert.Equal(t, 2025, entries[0].FiscalYear)
	assert.Equal(t, 2055, entries[30].FiscalYear)
	for i := 1; i < len(entries); i++ {
		assert.Equal(t, entries[i-1].Balance.EndingBalance, entries[i].Balance.BeginningBalance, "year %d", i+1)
	}

	replacements := 0
	for _, e := range entries {
		if e.Components[0].IsReplaced {
			replacements++
			assert.Equal(t, 2030, e.FiscalYear)
		}
	}
	assert.Equal(t, 1, replacements)

	assert.Equal(t, 4500.0, entries[5].Balance.BeginningBalance)
	assert.Equal(t, -5000.0, entries[5].Balance.EndingBalance)
	assert.Equal(t, -5000.0+25*500.0, entries[30].Balance.EndingBalance)
}

func TestProjectIsDeterministic(t *testing.T) {
	params := singleComponentParams()
	params.InflationRate = 0.029
	params.InterestRate = 0.017
	components := sampleInventory()

	first := NewProjector(nil).Project(params, components)
	second := NewProjector(nil).Project(params, components)
	assert.Equal(t, first, second)
}

func TestProjectDegenerateInputs(t *testing.T) {
	params := FinancialParameters{BeginningYear: 2025, ProjectionYears: 30}
	components := []Component{{ID: "free", Name: "Free Item", Quantity: 0, CostPerUnit: 0, UsefulLife: 5, RemainingLife: 2}}

	entries := NewProjector(nil).Project(params, components)
	require.Len(t, entries, 31)
	for _, e := range entries {
		assert.Zero(t, e.Balance.EndingBalance)
		assert.Zero(t, e.Balance.PercentFunded)
		assert.Zero(t, e.Categories.Overall.TotalCost)
	}

	assert.Len(t, NewProjector(nil).Project(params, nil), 31)
}

func TestProjectDoesNotMutateInputs(t *testing.T) {
	components := sampleInventory()
	snapshot := append([]Component(nil), components...)
	NewProjector(nil).Project(singleComponentParams(), components)
	assert.Equal(t, snapshot, components)
}
