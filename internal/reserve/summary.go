package reserve

import (
	"github.com/iwvelando/reserve-forecast/pkg/mathutil"
)

// CategorySummary extends CategoryTotals with the funded ratio.
type CategorySummary struct {
	CategoryTotals
	PercentFunded float64 `json:"percentFunded"`
}

// Summary is the headline component schedule summary of a single year.
type Summary struct {
	Year       int               `json:"year"`
	FiscalYear int               `json:"fiscalYear"`
	Categories []CategorySummary `json:"categories"`
	Overall    CategorySummary   `json:"overall"`
	Balance    ReserveBalance    `json:"balance"`
}

func summarizeTotals(t CategoryTotals) CategorySummary {
	return CategorySummary{
		CategoryTotals: t,
		PercentFunded:  mathutil.Ratio(t.CurrentReserveFunds, t.FullFundingBalance),
	}
}

// BuildSummary re-aggregates a year's component states and derives the
// funded ratio per category.
func BuildSummary(entry YearEntry) Summary {
	breakdown := Aggregate(entry.Components)
	summary := Summary{
		Year:       entry.Year,
		FiscalYear: entry.FiscalYear,
		Categories: make([]CategorySummary, 0, len(breakdown.ByCategory)),
		Overall:    summarizeTotals(breakdown.Overall),
		Balance:    entry.Balance,
	}
	for _, totals := range breakdown.ByCategory {
		summary.Categories = append(summary.Categories, summarizeTotals(totals))
	}
	return summary
}

// FirstYearSummary summarizes the first projected year. It returns false when
// entries is empty.
func FirstYearSummary(entries []YearEntry) (Summary, bool) {
	if len(entries) == 0 {
		return Summary{}, false
	}
	return BuildSummary(entries[0]), true
}
