// Package optimizer resolves the constant annual contribution of each funding
// scenario and derives the component-method funding series that goes with it.
package optimizer

import (
	"context"
	"fmt"

	"github.com/iwvelando/reserve-forecast/internal/cashflow"
	"github.com/iwvelando/reserve-forecast/internal/reserve"
	"github.com/iwvelando/reserve-forecast/pkg/constants"
	"github.com/iwvelando/reserve-forecast/pkg/format"
	"github.com/iwvelando/reserve-forecast/pkg/mathutil"
	"github.com/iwvelando/reserve-forecast/pkg/optimization"
	"go.uber.org/zap"
)

// Options tune the full-funding search.
type Options struct {
	MaxIterations      int
	UpperBoundFraction float64
}

// DefaultOptions returns the fixed 100-step search over half the total
// replacement cost.
func DefaultOptions() Options {
	return Options{
		MaxIterations:      constants.DefaultSolverIterations,
		UpperBoundFraction: constants.DefaultUpperBoundFraction,
	}
}

func (o *Options) normalize() error {
	if o.MaxIterations == 0 {
		o.MaxIterations = constants.DefaultSolverIterations
	}
	if o.UpperBoundFraction == 0 {
		o.UpperBoundFraction = constants.DefaultUpperBoundFraction
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("max iterations must be positive, got %d", o.MaxIterations)
	}
	if o.UpperBoundFraction < 0 {
		return fmt.Errorf("upper bound fraction must be positive, got %v", o.UpperBoundFraction)
	}
	return nil
}

// ScenarioResult is the resolved contribution and cash flow of one scenario.
type ScenarioResult struct {
	Label                     string               `json:"label"`
	ThresholdRate             *float64             `json:"thresholdRate"`
	AverageAnnualContribution float64              `json:"averageAnnualContribution"`
	Years                     []cashflow.Year      `json:"years"`
	TotalContributions        float64              `json:"totalContributions"`
	YearlyAnnualFunding       []float64            `json:"yearlyAnnualFunding"`
	Summary                   optimization.Summary `json:"summary"`
}

// Result holds every scenario of a run in request order.
type Result struct {
	Scenarios []ScenarioResult `json:"scenarios"`
}

// Find returns the scenario solved for rate (nil selects full funding).
func (r Result) Find(rate *float64) (*ScenarioResult, bool) {
	for i := range r.Scenarios {
		if sameRate(r.Scenarios[i].ThresholdRate, rate) {
			return &r.Scenarios[i], true
		}
	}
	return nil, false
}

func sameRate(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ScenarioLabel names a scenario for reports and logs.
func ScenarioLabel(rate *float64) string {
	if rate == nil {
		return "Full Funding"
	}
	return "Threshold " + format.Percent(*rate)
}

type evaluation struct {
	value      float64
	minBalance float64
	floor      float64
}

func (e evaluation) feasible() bool {
	return e.minBalance >= e.floor
}

func (e evaluation) headroom() float64 {
	return e.minBalance - e.floor
}

// Runner solves funding scenarios for one set of inputs.
type Runner struct {
	logger     *zap.Logger
	params     reserve.FinancialParameters
	components []reserve.Component
	simulator  *cashflow.Simulator
	options    Options
}

// NewRunner constructs a Runner. A nil logger is replaced with a no-op logger.
func NewRunner(logger *zap.Logger, params reserve.FinancialParameters, components []reserve.Component, options Options) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := options.normalize(); err != nil {
		return nil, fmt.Errorf("invalid solver options: %w", err)
	}
	return &Runner{
		logger:     logger,
		params:     params,
		components: components,
		simulator:  cashflow.NewSimulator(params, components),
		options:    options,
	}, nil
}

// Run solves every requested scenario in order.
func (r *Runner) Run(ctx context.Context, rates []*float64) (*Result, error) {
	result := &Result{Scenarios: make([]ScenarioResult, 0, len(rates))}
	for _, rate := range rates {
		scenario, err := r.Solve(ctx, rate)
		if err != nil {
			return nil, err
		}
		result.Scenarios = append(result.Scenarios, scenario)
	}
	return result, nil
}

// Solve resolves one scenario. A nil rate searches for the smallest
// contribution that keeps every ending balance non-negative; an explicit rate
// scales the current contribution by (1 + rate).
func (r *Runner) Solve(ctx context.Context, rate *float64) (ScenarioResult, error) {
	label := ScenarioLabel(rate)

	var summary optimization.Summary
	if rate == nil {
		var err error
		summary, err = r.solveFullFunding(ctx)
		if err != nil {
			return ScenarioResult{}, err
		}
	} else {
		summary = r.flatMultiplier(*rate)
	}
	summary.Scenario = label

	years := r.simulator.SimulateDetailed(summary.Value)
	funding := RequiredAnnualFunding(years)

	total := 0.0
	endings := make([]float64, len(years))
	for i := range years {
		total += years[i].Contributions
		endings[i] = years[i].EndingBalance
		years[i].Components = nil
	}

	minBalance := mathutil.MinOf(endings)
	summary.MinimumBalance = minBalance
	summary.Headroom = minBalance - summary.Floor
	summary.Solvent = minBalance >= summary.Floor
	if !summary.Solvent && summary.Method == optimization.MethodFlatMultiplier {
		if year, ok := firstShortfall(years, summary.Floor); ok {
			summary.Notes = append(summary.Notes, fmt.Sprintf("reserve falls below %s in fiscal year %d", format.Currency(summary.Floor), year))
		}
	}

	r.logger.Info("scenario contribution resolved",
		zap.String("op", "optimizer.Solve"),
		zap.String("scenario", label),
		zap.String("method", summary.Method),
		zap.Float64("original", summary.Original),
		zap.Float64("contribution", summary.Value),
		zap.Float64("minBalance", summary.MinimumBalance),
		zap.Float64("headroom", summary.Headroom),
		zap.Int("iterations", summary.Iterations),
		zap.Bool("converged", summary.Converged),
		zap.Bool("solvent", summary.Solvent),
	)

	return ScenarioResult{
		Label:                     label,
		ThresholdRate:             copyRate(rate),
		AverageAnnualContribution: summary.Value,
		Years:                     years,
		TotalContributions:        total,
		YearlyAnnualFunding:       funding,
		Summary:                   summary,
	}, nil
}

func (r *Runner) evaluate(value float64) evaluation {
	return evaluation{value: value, minBalance: r.simulator.MinEndingBalance(value), floor: 0}
}

func (r *Runner) baseSummary(method string, rate *float64) optimization.Summary {
	return optimization.Summary{
		Method:          method,
		ThresholdRate:   copyRate(rate),
		Original:        r.params.CurrentAnnualContribution,
		OriginalDisplay: format.Currency(r.params.CurrentAnnualContribution),
	}
}

func (r *Runner) flatMultiplier(rate float64) optimization.Summary {
	summary := r.baseSummary(optimization.MethodFlatMultiplier, &rate)
	summary.Value = r.params.CurrentAnnualContribution * (1 + rate)
	summary.ValueDisplay = format.Currency(summary.Value)
	summary.LowerBound = summary.Value
	summary.UpperBound = summary.Value
	summary.Converged = true
	return summary
}

func (r *Runner) solveFullFunding(ctx context.Context) (optimization.Summary, error) {
	summary := r.baseSummary(optimization.MethodBisection, nil)

	lower := 0.0
	upper := reserve.TotalReplacementCost(r.components) * r.options.UpperBoundFraction
	summary.LowerBound = lower
	summary.UpperBound = upper

	finish := func(eval evaluation, iterations int, converged bool) optimization.Summary {
		summary.Value = eval.value
		summary.ValueDisplay = format.Currency(eval.value)
		summary.Iterations = iterations
		summary.Converged = converged
		return summary
	}

	lowerEval := r.evaluate(lower)
	if lowerEval.feasible() {
		return finish(lowerEval, 0, true), nil
	}

	upperEval := r.evaluate(upper)
	if !upperEval.feasible() {
		summary.Notes = append(summary.Notes, fmt.Sprintf(
			"unable to keep reserve at or above %s within bounds %s to %s",
			format.Currency(upperEval.floor),
			format.Currency(lower),
			format.Currency(upper),
		))
		r.logger.Warn("full funding search bounds are infeasible",
			zap.String("op", "optimizer.solveFullFunding"),
			zap.Float64("upperBound", upper),
			zap.Float64("minBalance", upperEval.minBalance),
		)
		return finish(upperEval, 0, false), nil
	}

	best := upperEval
	iterations := 0
	for iterations < r.options.MaxIterations {
		select {
		case <-ctx.Done():
			return optimization.Summary{}, ctx.Err()
		default:
		}

		mid := lower + (upper-lower)/2
		evalMid := r.evaluate(mid)
		iterations++
		if evalMid.feasible() {
			best = evalMid
			upper = mid
		} else {
			lower = mid
		}
	}

	r.logger.Debug("full funding search finished",
		zap.String("op", "optimizer.solveFullFunding"),
		zap.Float64("lower", lower),
		zap.Float64("upper", upper),
		zap.Float64("headroom", best.headroom()),
		zap.Int("iterations", iterations),
	)
	return finish(best, iterations, true), nil
}

// RequiredAnnualFunding derives a component-method funding figure for every
// simulated year. Each component is credited with its full-funding share of
// the year's simulated beginning balance, and its remaining gap to the full
// replacement cost is spread over its remaining life. years must come from
// SimulateDetailed.
func RequiredAnnualFunding(years []cashflow.Year) []float64 {
	funding := make([]float64, len(years))
	for t, y := range years {
		totalFFB := 0.0
		for _, c := range y.Components {
			totalFFB += c.FullFundingBalance
		}

		required := 0.0
		for _, c := range y.Components {
			notionalReserve := y.BeginningBalance * mathutil.Ratio(c.FullFundingBalance, totalFFB)
			gap := c.TotalCost - notionalReserve
			if c.RemainingLife > 0 {
				required += gap / float64(c.RemainingLife)
			} else {
				required += gap
			}
		}
		funding[t] = required
	}
	return funding
}

func firstShortfall(years []cashflow.Year, floor float64) (int, bool) {
	for _, y := range years {
		if y.EndingBalance < floor {
			return y.FiscalYear, true
		}
	}
	return 0, false
}

func copyRate(rate *float64) *float64 {
	if rate == nil {
		return nil
	}
	v := *rate
	return &v
}
