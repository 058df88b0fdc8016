package output

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/reserve-forecast/internal/optimizer"
	"github.com/iwvelando/reserve-forecast/internal/reserve"
	"github.com/shopspring/decimal"
)

// CsvFormat writes the report as comma-separated values. Each section starts
// with its own header row and sections are separated by an empty line.
func CsvFormat(w io.Writer, report Report) error {
	buf := &bytes.Buffer{}
	sections := 0
	section := func(write func(*csv.Writer) error) error {
		if sections > 0 {
			buf.WriteString("\n")
		}
		sections++
		cw := csv.NewWriter(buf)
		if err := write(cw); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	}

	if len(report.Projection) > 0 {
		if err := section(func(cw *csv.Writer) error { return projectionCSV(cw, report.Projection) }); err != nil {
			return err
		}
	}
	if report.Summary != nil {
		if err := section(func(cw *csv.Writer) error { return summaryCSV(cw, *report.Summary) }); err != nil {
			return err
		}
	}
	if scenarios := report.scenarios(); len(scenarios) > 0 {
		if err := section(func(cw *csv.Writer) error { return scenarioCSV(cw, scenarios) }); err != nil {
			return err
		}
		if report.Detailed {
			if err := section(func(cw *csv.Writer) error { return scenarioCashFlowCSV(cw, scenarios) }); err != nil {
				return err
			}
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// CsvString renders the report with CsvFormat and returns the text.
func CsvString(report Report) string {
	var b strings.Builder
	if err := CsvFormat(&b, report); err != nil {
		return ""
	}
	return b.String()
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func ratio(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4)
}

func projectionCSV(cw *csv.Writer, entries []reserve.YearEntry) error {
	header := []string{"year", "fiscalYear", "beginningBalance", "contributions", "interest", "expenditures", "endingBalance", "percentFunded", "replacedComponents"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.Year),
			strconv.Itoa(e.FiscalYear),
			money(e.Balance.BeginningBalance),
			money(e.Balance.Contributions),
			money(e.Balance.Interest),
			money(e.Balance.Expenditures),
			money(e.Balance.EndingBalance),
			ratio(e.Balance.PercentFunded),
			strings.Join(e.Balance.ReplacedComponents, ";"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func summaryCSV(cw *csv.Writer, summary reserve.Summary) error {
	header := []string{"category", "count", "totalCost", "fullFundingBalance", "currentReserveFunds", "fundsNeeded", "annualFunding", "percentFunded"}
	if err := cw.Write(header); err != nil {
		return err
	}
	rows := append(append([]reserve.CategorySummary(nil), summary.Categories...), summary.Overall)
	for _, s := range rows {
		row := []string{
			s.Label,
			strconv.Itoa(s.Count),
			money(s.TotalCost),
			money(s.FullFundingBalance),
			money(s.CurrentReserveFunds),
			money(s.FundsNeeded),
			money(s.AnnualFunding),
			ratio(s.PercentFunded),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func thresholdCell(rate *float64) string {
	if rate == nil {
		return "full"
	}
	return ratio(*rate)
}

func scenarioCSV(cw *csv.Writer, scenarios []optimizer.ScenarioResult) error {
	header := []string{"scenario", "thresholdRate", "annualContribution", "totalContributions", "minimumBalance", "iterations", "converged", "notes"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range scenarios {
		row := []string{
			s.Label,
			thresholdCell(s.ThresholdRate),
			money(s.AverageAnnualContribution),
			money(s.TotalContributions),
			money(s.Summary.MinimumBalance),
			strconv.Itoa(s.Summary.Iterations),
			strconv.FormatBool(s.Summary.Converged),
			joinNotes(s.Summary.Notes),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func scenarioCashFlowCSV(cw *csv.Writer, scenarios []optimizer.ScenarioResult) error {
	header := []string{"scenario", "year", "fiscalYear", "beginningBalance", "contributions", "interest", "expenditures", "endingBalance", "totalFFB", "totalCost", "requiredAnnualFunding"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range scenarios {
		for i, y := range s.Years {
			required := 0.0
			if i < len(s.YearlyAnnualFunding) {
				required = s.YearlyAnnualFunding[i]
			}
			row := []string{
				s.Label,
				strconv.Itoa(y.Year),
				strconv.Itoa(y.FiscalYear),
				money(y.BeginningBalance),
				money(y.Contributions),
				money(y.Interest),
				money(y.Expenditures),
				money(y.EndingBalance),
				money(y.TotalFFB),
				money(y.TotalCost),
				money(required),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
