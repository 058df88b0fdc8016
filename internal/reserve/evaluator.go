package reserve

import (
	"github.com/iwvelando/reserve-forecast/pkg/finance"
	"github.com/iwvelando/reserve-forecast/pkg/mathutil"
)

// ComponentYearState is one component's funding position in one year.
type ComponentYearState struct {
	ComponentID         string   `json:"componentId"`
	Name                string   `json:"name"`
	Category            Category `json:"category"`
	TotalCost           float64  `json:"totalCost"`
	RemainingLife       int      `json:"remainingLife"`
	FullFundingBalance  float64  `json:"fullFundingBalance"`
	CurrentReserveFunds float64  `json:"currentReserveFunds"`
	FundsNeeded         float64  `json:"fundsNeeded"`
	AnnualFunding       float64  `json:"annualFunding"`
	IsReplaced          bool     `json:"isReplaced"`
	Expenditure         float64  `json:"expenditure"`
}

// ReserveBalance is the fund-level ledger of a projected year.
type ReserveBalance struct {
	finance.BalanceStep
	PercentFunded      float64  `json:"percentFunded"`
	ReplacedComponents []string `json:"replacedComponents,omitempty"`
}

// YearEntry is one row of the primary projection.
type YearEntry struct {
	Year       int                  `json:"year"`
	FiscalYear int                  `json:"fiscalYear"`
	Components []ComponentYearState `json:"components"`
	Categories CategoryBreakdown    `json:"categories"`
	Balance    ReserveBalance       `json:"balance"`
}

// SingleReplacementModel evaluates years under the assumption that every
// component is replaced exactly once, in its originally scheduled year.
type SingleReplacementModel struct {
	params     FinancialParameters
	components []Component
	inflation  *finance.InflationTable
}

// NewSingleReplacementModel prepares a model for the given inputs.
func NewSingleReplacementModel(params FinancialParameters, components []Component) *SingleReplacementModel {
	return &SingleReplacementModel{
		params:     params,
		components: components,
		inflation:  finance.NewInflationTable(params.InflationRate, params.Horizon()),
	}
}

// DistributeReserve splits balance across components in proportion to their
// full funding balances. Every share is zero when the total is zero.
func DistributeReserve(balance float64, fullFundingBalances []float64) []float64 {
	total := 0.0
	for _, ffb := range fullFundingBalances {
		total += ffb
	}
	reserves := make([]float64, len(fullFundingBalances))
	for i, ffb := range fullFundingBalances {
		reserves[i] = balance * mathutil.Ratio(ffb, total)
	}
	return reserves
}

// Evaluate computes a single year. beginningBalance is the opening fund
// balance; in year 1 it is also distributed across components.
func (m *SingleReplacementModel) Evaluate(year int, beginningBalance float64) YearEntry {
	multiplier := m.inflation.At(year)
	fiscalYear := m.params.FiscalYear(year)

	var reserves []float64
	if year == 1 {
		ffbs := make([]float64, len(m.components))
		for i, c := range m.components {
			ffbs[i] = c.FullFundingBalance(c.InflatedCost(multiplier), c.RemainingLife)
		}
		reserves = DistributeReserve(beginningBalance, ffbs)
	}

	entry := YearEntry{
		Year:       year,
		FiscalYear: fiscalYear,
		Components: make([]ComponentYearState, len(m.components)),
	}
	var replaced []string

	for i, c := range m.components {
		totalCost := c.InflatedCost(multiplier)
		remaining := mathutil.MaxInt(0, c.RemainingLife-(year-1))

		currentReserve := 0.0
		if reserves != nil {
			currentReserve = reserves[i]
		}
		fundsNeeded := totalCost - currentReserve

		state := ComponentYearState{
			ComponentID:         c.ID,
			Name:                c.Name,
			Category:            c.Category,
			TotalCost:           totalCost,
			RemainingLife:       remaining,
			FullFundingBalance:  c.FullFundingBalance(totalCost, remaining),
			CurrentReserveFunds: currentReserve,
			FundsNeeded:         fundsNeeded,
			AnnualFunding:       c.AnnualFunding(fundsNeeded, remaining),
			IsReplaced:          fiscalYear == c.ReplacementYear(m.params.BeginningYear),
		}
		if state.IsReplaced {
			state.Expenditure = totalCost
			replaced = append(replaced, c.Name)
		}
		entry.Components[i] = state
	}

	entry.Categories = Aggregate(entry.Components)
	overall := entry.Categories.Overall
	entry.Balance = ReserveBalance{
		BalanceStep:        finance.AdvanceBalance(beginningBalance, m.params.CurrentAnnualContribution, m.params.InterestRate, overall.Expenditures),
		PercentFunded:      mathutil.Ratio(beginningBalance, overall.FullFundingBalance),
		ReplacedComponents: replaced,
	}
	return entry
}
