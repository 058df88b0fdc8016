package validation

import (
	"fmt"

	"github.com/iwvelando/reserve-forecast/internal/reserve"
	"github.com/iwvelando/reserve-forecast/pkg/constants"
)

// ValidateFinancialParameters reports settings the engine will run with but
// that are unlikely to be intended.
func ValidateFinancialParameters(params reserve.FinancialParameters) []string {
	var warnings []string

	if params.BeginningYear <= 0 {
		warnings = append(warnings, fmt.Sprintf("Beginning year %d is not a calendar year", params.BeginningYear))
	}
	if params.ProjectionYears != constants.DefaultProjectionYears {
		warnings = append(warnings, fmt.Sprintf("Projection covers %d years instead of the standard %d",
			params.ProjectionYears, constants.DefaultProjectionYears))
	}
	if params.ProjectionYears < 0 {
		warnings = append(warnings, fmt.Sprintf("Projection years %d is negative; only the first year is computed", params.ProjectionYears))
	}
	if params.InflationRate < 0 || params.InflationRate >= 1 {
		warnings = append(warnings, fmt.Sprintf("Inflation rate %v looks like a percentage rather than a fraction", params.InflationRate))
	}
	if params.InterestRate < 0 || params.InterestRate >= 1 {
		warnings = append(warnings, fmt.Sprintf("Interest rate %v looks like a percentage rather than a fraction", params.InterestRate))
	}
	if params.CurrentAnnualContribution < 0 {
		warnings = append(warnings, fmt.Sprintf("Current annual contribution %.2f is negative", params.CurrentAnnualContribution))
	}

	return warnings
}

// ValidateComponent checks one component's lifecycle and cost fields.
func ValidateComponent(c reserve.Component) []string {
	var warnings []string
	label := c.Name
	if label == "" {
		label = c.ID
	}

	if c.UsefulLife <= 0 {
		warnings = append(warnings, fmt.Sprintf("Component '%s' has useful life %d; its full funding balance is 0 and it is replaced every year", label, c.UsefulLife))
	}
	if c.RemainingLife < 0 {
		warnings = append(warnings, fmt.Sprintf("Component '%s' has negative remaining life %d", label, c.RemainingLife))
	}
	if c.UsefulLife > 0 && c.RemainingLife > c.UsefulLife {
		warnings = append(warnings, fmt.Sprintf("Component '%s' remaining life %d exceeds useful life %d; its full funding balance is negative",
			label, c.RemainingLife, c.UsefulLife))
	}
	if c.Quantity < 0 || c.CostPerUnit < 0 {
		warnings = append(warnings, fmt.Sprintf("Component '%s' has a negative quantity or unit cost", label))
	}

	return warnings
}

// ValidateInventory performs comprehensive inventory validation and returns warnings
func ValidateInventory(params reserve.FinancialParameters, components []reserve.Component) []string {
	warnings := ValidateFinancialParameters(params)

	if len(components) == 0 {
		warnings = append(warnings, "No components configured")
	}

	seen := make(map[string]struct{}, len(components))
	for _, c := range components {
		if _, dup := seen[c.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("Component ID '%s' is used more than once", c.ID))
		}
		seen[c.ID] = struct{}{}
		warnings = append(warnings, ValidateComponent(c)...)
	}

	return warnings
}
