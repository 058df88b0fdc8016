package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/reserve-forecast/internal/optimizer"
	"github.com/iwvelando/reserve-forecast/internal/reserve"
	"github.com/iwvelando/reserve-forecast/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, report Report) error {
	var b strings.Builder
	p := message.NewPrinter(language.English)

	sections := 0
	separate := func() {
		if sections > 0 {
			b.WriteString("\n")
		}
		sections++
	}

	if len(report.Projection) > 0 {
		separate()
		writeProjection(&b, report.Projection)
	}
	if report.Summary != nil {
		separate()
		writeSummary(&b, p, *report.Summary)
	}
	if scenarios := report.scenarios(); len(scenarios) > 0 {
		separate()
		writeScenarioComparison(&b, p, scenarios)
		if report.Detailed {
			for _, scenario := range scenarios {
				b.WriteString("\n")
				writeScenarioCashFlow(&b, scenario)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeProjection(b *strings.Builder, entries []reserve.YearEntry) {
	fmt.Fprintf(b, "--- Reserve projection %d-%d ---\n", entries[0].FiscalYear, entries[len(entries)-1].FiscalYear)
	b.WriteString("Year | Beginning | Contributions | Interest | Expenditures | Ending | Funded | Replaced\n")
	b.WriteString("____ | _________ | _____________ | ________ | ____________ | ______ | ______ | ________\n")
	for _, e := range entries {
		fmt.Fprintf(b, "%d | %s | %s | %s | %s | %s | %s | %s\n",
			e.FiscalYear,
			format.Currency(e.Balance.BeginningBalance),
			format.Currency(e.Balance.Contributions),
			format.Currency(e.Balance.Interest),
			format.Currency(e.Balance.Expenditures),
			format.Currency(e.Balance.EndingBalance),
			format.Percent(e.Balance.PercentFunded),
			strings.Join(e.Balance.ReplacedComponents, ","),
		)
	}
}

func writeSummary(b *strings.Builder, p *message.Printer, summary reserve.Summary) {
	fmt.Fprintf(b, "--- Component summary for fiscal year %d ---\n", summary.FiscalYear)
	b.WriteString("Category | Count | Total Cost | Full Funding Balance | Reserve Funds | Funds Needed | Annual Funding | Funded\n")
	b.WriteString("________ | _____ | __________ | ____________________ | _____________ | ____________ | ______________ | ______\n")
	rows := append(append([]reserve.CategorySummary(nil), summary.Categories...), summary.Overall)
	for _, row := range rows {
		_, _ = p.Fprintf(b, "%s | %d | %s | %s | %s | %s | %s | %s\n",
			row.Label,
			row.Count,
			format.Currency(row.TotalCost),
			format.Currency(row.FullFundingBalance),
			format.Currency(row.CurrentReserveFunds),
			format.Currency(row.FundsNeeded),
			format.Currency(row.AnnualFunding),
			format.Percent(row.PercentFunded),
		)
	}
}

func writeScenarioComparison(b *strings.Builder, p *message.Printer, scenarios []optimizer.ScenarioResult) {
	b.WriteString("--- Funding scenarios ---\n")
	b.WriteString("Scenario | Annual Contribution | Total Contributions | Minimum Balance | Iterations | Notes\n")
	b.WriteString("________ | ___________________ | ___________________ | _______________ | __________ | _____\n")
	for _, s := range scenarios {
		_, _ = p.Fprintf(b, "%s | %s | %s | %s | %d | %s\n",
			s.Label,
			format.Currency(s.AverageAnnualContribution),
			format.Currency(s.TotalContributions),
			format.Currency(s.Summary.MinimumBalance),
			s.Summary.Iterations,
			joinNotes(s.Summary.Notes),
		)
	}
}

func writeScenarioCashFlow(b *strings.Builder, scenario optimizer.ScenarioResult) {
	fmt.Fprintf(b, "--- Cash flow for scenario %s ---\n", scenario.Label)
	b.WriteString("Year | Beginning | Contributions | Interest | Expenditures | Ending | Full Funding Balance | Required Funding\n")
	b.WriteString("____ | _________ | _____________ | ________ | ____________ | ______ | ____________________ | ________________\n")
	for i, y := range scenario.Years {
		required := 0.0
		if i < len(scenario.YearlyAnnualFunding) {
			required = scenario.YearlyAnnualFunding[i]
		}
		fmt.Fprintf(b, "%d | %s | %s | %s | %s | %s | %s | %s\n",
			y.FiscalYear,
			format.Currency(y.BeginningBalance),
			format.Currency(y.Contributions),
			format.Currency(y.Interest),
			format.Currency(y.Expenditures),
			format.Currency(y.EndingBalance),
			format.Currency(y.TotalFFB),
			format.Currency(required),
		)
	}
}
