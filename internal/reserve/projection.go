package reserve

import (
	"go.uber.org/zap"
)

// Projector drives the single-replacement evaluator across the horizon for
// the current-contribution scenario.
type Projector struct {
	logger *zap.Logger
}

// NewProjector creates a projector. A nil logger is replaced with a no-op
// logger.
func NewProjector(logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projector{logger: logger}
}

// Project evaluates years 1..ProjectionYears+1, threading each year's ending
// balance into the next year's beginning balance.
func (p *Projector) Project(params FinancialParameters, components []Component) []YearEntry {
	model := NewSingleReplacementModel(params, components)
	horizon := params.Horizon()
	entries := make([]YearEntry, 0, horizon)

	balance := params.BeginningReserveBalance
	for year := 1; year <= horizon; year++ {
		entry := model.Evaluate(year, balance)
		if len(entry.Balance.ReplacedComponents) > 0 {
			p.logger.Debug("scheduled replacements",
				zap.String("op", "reserve.Project"),
				zap.Int("fiscalYear", entry.FiscalYear),
				zap.Strings("components", entry.Balance.ReplacedComponents),
				zap.Float64("expenditures", entry.Balance.Expenditures),
			)
		}
		entries = append(entries, entry)
		balance = entry.Balance.EndingBalance
	}

	p.logger.Debug("projection complete",
		zap.String("op", "reserve.Project"),
		zap.Int("years", len(entries)),
		zap.Int("components", len(components)),
	)
	return entries
}
