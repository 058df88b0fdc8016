// Package cashflow simulates a constant-contribution scenario in which every
// component is replaced each time its life runs out.
package cashflow

import (
	"github.com/iwvelando/reserve-forecast/internal/reserve"
	"github.com/iwvelando/reserve-forecast/pkg/finance"
)

// ComponentState is the lifecycle position of one component inside a single
// simulation.
type ComponentState struct {
	ID            string `json:"id"`
	RemainingLife int    `json:"remainingLife"`
}

// ComponentSnapshot records a component's valuation in one simulated year.
type ComponentSnapshot struct {
	ID                 string  `json:"id"`
	RemainingLife      int     `json:"remainingLife"`
	TotalCost          float64 `json:"totalCost"`
	FullFundingBalance float64 `json:"fullFundingBalance"`
}

// Year is one year of a simulated scenario.
type Year struct {
	Year       int `json:"year"`
	FiscalYear int `json:"fiscalYear"`
	finance.BalanceStep
	TotalFFB  float64 `json:"totalFFB"`
	TotalCost float64 `json:"totalCost"`

	// Components is only populated by SimulateDetailed.
	Components []ComponentSnapshot `json:"-"`
}

// CyclicReplacementModel replaces a component whenever its remaining life
// reaches zero and starts a fresh lifecycle afterwards.
type CyclicReplacementModel struct{}

// InitialStates builds the starting lifecycle state of each component.
func (CyclicReplacementModel) InitialStates(components []reserve.Component) []ComponentState {
	states := make([]ComponentState, len(components))
	for i, c := range components {
		states[i] = ComponentState{ID: c.ID, RemainingLife: c.RemainingLife}
	}
	return states
}

// Due reports whether the component is replaced in the current year.
func (CyclicReplacementModel) Due(state ComponentState) bool {
	return state.RemainingLife == 0
}

// Cycle advances one component by a year: a spent component restarts at its
// useful life, anything else ages by one year.
func (CyclicReplacementModel) Cycle(state ComponentState, usefulLife int) ComponentState {
	if state.RemainingLife <= 0 {
		state.RemainingLife = usefulLife
		return state
	}
	state.RemainingLife--
	return state
}

// Simulator runs the cyclic model for a fixed set of inputs.
type Simulator struct {
	params     reserve.FinancialParameters
	components []reserve.Component
	model      CyclicReplacementModel
	inflation  *finance.InflationTable
}

// NewSimulator prepares a simulator. Inflation multipliers for the whole
// horizon are computed once and shared by every run.
func NewSimulator(params reserve.FinancialParameters, components []reserve.Component) *Simulator {
	return &Simulator{
		params:     params,
		components: components,
		inflation:  finance.NewInflationTable(params.InflationRate, params.Horizon()),
	}
}

// Params returns the financial parameters the simulator was built with.
func (s *Simulator) Params() reserve.FinancialParameters {
	return s.params
}

// Simulate returns the cash-flow series for a constant annual contribution.
func (s *Simulator) Simulate(contribution float64) []Year {
	years, _ := s.run(contribution, true, false)
	return years
}

// SimulateDetailed is Simulate plus per-component snapshots for every year.
func (s *Simulator) SimulateDetailed(contribution float64) []Year {
	years, _ := s.run(contribution, true, true)
	return years
}

// MinEndingBalance returns the lowest ending balance over the horizon without
// materializing the series.
func (s *Simulator) MinEndingBalance(contribution float64) float64 {
	_, min := s.run(contribution, false, false)
	return min
}

func (s *Simulator) run(contribution float64, collect, detailed bool) ([]Year, float64) {
	horizon := s.params.Horizon()
	states := s.model.InitialStates(s.components)

	var years []Year
	if collect {
		years = make([]Year, 0, horizon)
	}

	balance := s.params.BeginningReserveBalance
	minEnding := 0.0
	for year := 1; year <= horizon; year++ {
		multiplier := s.inflation.At(year)

		var snapshots []ComponentSnapshot
		if detailed {
			snapshots = make([]ComponentSnapshot, len(s.components))
		}

		totalCost, totalFFB, expenditures := 0.0, 0.0, 0.0
		for i, c := range s.components {
			cost := c.InflatedCost(multiplier)
			ffb := c.FullFundingBalance(cost, states[i].RemainingLife)
			totalCost += cost
			totalFFB += ffb
			if s.model.Due(states[i]) {
				expenditures += cost
			}
			if detailed {
				snapshots[i] = ComponentSnapshot{
					ID:                 c.ID,
					RemainingLife:      states[i].RemainingLife,
					TotalCost:          cost,
					FullFundingBalance: ffb,
				}
			}
		}

		step := finance.AdvanceBalance(balance, contribution, s.params.InterestRate, expenditures)
		if year == 1 || step.EndingBalance < minEnding {
			minEnding = step.EndingBalance
		}
		if collect {
			years = append(years, Year{
				Year:        year,
				FiscalYear:  s.params.FiscalYear(year),
				BalanceStep: step,
				TotalFFB:    totalFFB,
				TotalCost:   totalCost,
				Components:  snapshots,
			})
		}

		for i, c := range s.components {
			states[i] = s.model.Cycle(states[i], c.UsefulLife)
		}
		balance = step.EndingBalance
	}

	return years, minEnding
}
