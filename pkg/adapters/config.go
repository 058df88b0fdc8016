// Package adapters converts loaded configuration into engine inputs.
package adapters

import (
	"fmt"
	"strings"

	"github.com/iwvelando/reserve-forecast/internal/config"
	"github.com/iwvelando/reserve-forecast/internal/optimizer"
	"github.com/iwvelando/reserve-forecast/internal/reserve"
	"github.com/spf13/cast"
)

// Inputs is everything the engine needs for one run.
type Inputs struct {
	Params     reserve.FinancialParameters
	Components []reserve.Component
	Rates      []*float64
	Options    optimizer.Options
	Warnings   []string
}

// FromConfiguration converts cfg into engine inputs. Missing or non-numeric
// values become 0 and each coercion is reported as a warning.
func FromConfiguration(cfg *config.Configuration) (*Inputs, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	rates, err := cfg.Scenarios.Rates()
	if err != nil {
		return nil, err
	}

	solver := cfg.Solver
	if err := solver.Validate(); err != nil {
		return nil, fmt.Errorf("invalid solver configuration: %w", err)
	}

	c := &coercer{}
	inputs := &Inputs{
		Params:     c.financialParameters(cfg.Financial),
		Components: make([]reserve.Component, 0, len(cfg.Components)),
		Rates:      rates,
		Options: optimizer.Options{
			MaxIterations:      solver.MaxIterations,
			UpperBoundFraction: solver.UpperBoundFraction,
		},
	}
	for i, raw := range cfg.Components {
		inputs.Components = append(inputs.Components, c.component(i, raw))
	}
	inputs.Warnings = c.warnings
	return inputs, nil
}

type coercer struct {
	warnings []string
}

func (c *coercer) financialParameters(raw config.FinancialConfig) reserve.FinancialParameters {
	return reserve.FinancialParameters{
		BeginningYear:             c.toInt("financial.beginningYear", raw.BeginningYear),
		ProjectionYears:           c.toInt("financial.projectionYears", raw.ProjectionYears),
		InflationRate:             c.toFloat("financial.inflationRate", raw.InflationRate),
		InterestRate:              c.toFloat("financial.interestRate", raw.InterestRate),
		BeginningReserveBalance:   c.toFloat("financial.beginningReserveBalance", raw.BeginningReserveBalance),
		CurrentAnnualContribution: c.toFloat("financial.currentAnnualContribution", raw.CurrentAnnualContribution),
	}
}

func (c *coercer) component(index int, raw config.ComponentConfig) reserve.Component {
	label := componentLabel(index, raw)
	category, ok := reserve.ParseCategory(raw.Category)
	if !ok {
		c.warnf("Component '%s' has unknown category %q; reporting it under %s", label, raw.Category, reserve.CategoryOther)
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = fmt.Sprintf("component-%d", index+1)
	}

	return reserve.Component{
		ID:            id,
		Name:          strings.TrimSpace(raw.Name),
		Category:      category,
		Quantity:      c.toFloat(label+".quantity", raw.Quantity),
		CostPerUnit:   c.toFloat(label+".costPerUnit", raw.CostPerUnit),
		UsefulLife:    c.toInt(label+".usefulLife", raw.UsefulLife),
		RemainingLife: c.toInt(label+".remainingLife", raw.RemainingLife),
	}
}

func componentLabel(index int, raw config.ComponentConfig) string {
	if name := strings.TrimSpace(raw.Name); name != "" {
		return name
	}
	if id := strings.TrimSpace(raw.ID); id != "" {
		return id
	}
	return fmt.Sprintf("component %d", index+1)
}

func (c *coercer) toFloat(field string, value interface{}) float64 {
	if value == nil {
		c.warnf("Field '%s' is missing; using 0", field)
		return 0
	}
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	v, err := cast.ToFloat64E(value)
	if err != nil {
		c.warnf("Field '%s' value %v is not numeric; using 0", field, value)
		return 0
	}
	return v
}

// toInt accepts whole-valued floats such as 10.0 and truncates anything else
// with a warning.
func (c *coercer) toInt(field string, value interface{}) int {
	f := c.toFloat(field, value)
	i := int(f)
	if float64(i) != f {
		c.warnf("Field '%s' value %v is not a whole number; using %d", field, value, i)
	}
	return i
}

func (c *coercer) warnf(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}
