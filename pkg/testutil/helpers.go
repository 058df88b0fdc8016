// Package testutil provides common utility functions for testing.
package testutil

import (
	"fmt"

	"github.com/iwvelando/reserve-forecast/internal/optimizer"
	"github.com/iwvelando/reserve-forecast/internal/reserve"
)

// FindScenario finds a scenario by label in the results slice.
// Returns a pointer to the scenario if found, nil otherwise.
func FindScenario(results []optimizer.ScenarioResult, label string) *optimizer.ScenarioResult {
	for i := range results {
		if results[i].Label == label {
			return &results[i]
		}
	}
	return nil
}

// Rate returns a pointer to v for building scenario lists.
func Rate(v float64) *float64 {
	return &v
}

// SingleComponentParams are zero-rate parameters for hand-checkable runs:
// a 2000 opening balance and 500 a year over 2025-2055.
func SingleComponentParams() reserve.FinancialParameters {
	return reserve.FinancialParameters{
		BeginningYear:             2025,
		ProjectionYears:           30,
		BeginningReserveBalance:   2000,
		CurrentAnnualContribution: 500,
	}
}

// RoofComponent costs 10000, lasts 10 years and is due in 2030 when paired
// with SingleComponentParams.
func RoofComponent() reserve.Component {
	return reserve.Component{
		ID:            "roof",
		Name:          "Roof",
		Category:      reserve.CategoryBuildingExterior,
		Quantity:      1,
		CostPerUnit:   10000,
		UsefulLife:    10,
		RemainingLife: 5,
	}
}

// LargeInventory builds n components spread across every category with
// staggered lives.
func LargeInventory(n int) []reserve.Component {
	categories := reserve.Categories()
	components := make([]reserve.Component, n)
	for i := range components {
		useful := 5 + i%26
		components[i] = reserve.Component{
			ID:            fmt.Sprintf("component-%d", i+1),
			Name:          fmt.Sprintf("Component %d", i+1),
			Category:      categories[i%len(categories)],
			Quantity:      float64(1 + i%40),
			CostPerUnit:   250 + float64(i%17)*125,
			UsefulLife:    useful,
			RemainingLife: i % (useful + 1),
		}
	}
	return components
}
