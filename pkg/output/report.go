// Package output provides utilities for formatting and displaying projection
// and scenario results.
package output

import (
	"strings"

	"github.com/iwvelando/reserve-forecast/internal/optimizer"
	"github.com/iwvelando/reserve-forecast/internal/reserve"
)

// Report bundles the engine outputs of one run. Nil or empty sections are
// skipped when rendering.
type Report struct {
	Projection []reserve.YearEntry
	Summary    *reserve.Summary
	Scenarios  *optimizer.Result
	// Detailed adds the per-year cash flow of every scenario.
	Detailed bool
}

// NewReport builds a report with the first-year summary derived from the
// projection.
func NewReport(projection []reserve.YearEntry, scenarios *optimizer.Result) Report {
	report := Report{Projection: projection, Scenarios: scenarios}
	if summary, ok := reserve.FirstYearSummary(projection); ok {
		report.Summary = &summary
	}
	return report
}

func (r Report) scenarios() []optimizer.ScenarioResult {
	if r.Scenarios == nil {
		return nil
	}
	return r.Scenarios.Scenarios
}

func joinNotes(notes []string) string {
	return strings.Join(notes, "; ")
}
