package integration

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/reserve-forecast/internal/cashflow"
	"github.com/iwvelando/reserve-forecast/internal/config"
	"github.com/iwvelando/reserve-forecast/internal/optimizer"
	"github.com/iwvelando/reserve-forecast/internal/reserve"
	"github.com/iwvelando/reserve-forecast/pkg/adapters"
	"github.com/iwvelando/reserve-forecast/pkg/output"
	"github.com/iwvelando/reserve-forecast/pkg/testutil"
	"github.com/iwvelando/reserve-forecast/pkg/validation"
	"go.uber.org/zap"
)

const tolerance = 1e-6

type pipeline struct {
	inputs     *adapters.Inputs
	projection []reserve.YearEntry
	scenarios  *optimizer.Result
}

// runPipeline loads the fixture and runs it exactly as the CLI does.
func runPipeline(t *testing.T) pipeline {
	t.Helper()
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	inputs, err := adapters.FromConfiguration(conf)
	if err != nil {
		t.Fatalf("FromConfiguration() error = %v", err)
	}
	if len(inputs.Warnings) != 0 {
		t.Fatalf("unexpected adapter warnings: %v", inputs.Warnings)
	}
	if warnings := validation.ValidateInventory(inputs.Params, inputs.Components); len(warnings) != 0 {
		t.Fatalf("unexpected inventory warnings: %v", warnings)
	}

	projection := reserve.NewProjector(logger).Project(inputs.Params, inputs.Components)

	runner, err := optimizer.NewRunner(logger, inputs.Params, inputs.Components, inputs.Options)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	scenarios, err := runner.Run(context.Background(), inputs.Rates)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	return pipeline{inputs: inputs, projection: projection, scenarios: scenarios}
}

func TestProjectionLedger(t *testing.T) {
	p := runPipeline(t)

	if len(p.projection) != 31 {
		t.Fatalf("expected 31 projected years, got %d", len(p.projection))
	}
	if first, last := p.projection[0].FiscalYear, p.projection[30].FiscalYear; first != 2025 || last != 2055 {
		t.Fatalf("expected fiscal years 2025-2055, got %d-%d", first, last)
	}

	for i, entry := range p.projection {
		b := entry.Balance
		if entry.Year != i+1 {
			t.Errorf("entry %d has year %d", i, entry.Year)
		}
		if b.Contributions != 18000 {
			t.Errorf("year %d: expected contribution 18000, got %.2f", entry.Year, b.Contributions)
		}
		want := b.BeginningBalance + b.Contributions + b.Interest - b.Expenditures
		if math.Abs(b.EndingBalance-want) > tolerance {
			t.Errorf("year %d: ending balance %.6f does not close the ledger (%.6f)", entry.Year, b.EndingBalance, want)
		}
		if math.Abs(b.Interest-b.BeginningBalance*0.015) > tolerance {
			t.Errorf("year %d: interest %.6f is not 1.5%% of the opening balance", entry.Year, b.Interest)
		}
		if i > 0 && p.projection[i-1].Balance.EndingBalance != b.BeginningBalance {
			t.Errorf("year %d: beginning balance does not carry the prior ending balance", entry.Year)
		}
	}
}

func TestProjectionReplacements(t *testing.T) {
	p := runPipeline(t)

	first := p.projection[0].Balance
	if math.Abs(first.Expenditures-3500) > tolerance {
		t.Errorf("expected the reserve study (3500) to be spent in 2025, got %.2f", first.Expenditures)
	}
	if len(first.ReplacedComponents) != 1 || first.ReplacedComponents[0] != "Reserve study update" {
		t.Errorf("unexpected 2025 replacements: %v", first.ReplacedComponents)
	}

	// Pool resurface is due in 2027 at two years of 3% inflation.
	third := p.projection[2].Balance
	wantPool := 24000 * 1.03 * 1.03
	if math.Abs(third.Expenditures-wantPool) > tolerance {
		t.Errorf("expected 2027 expenditures %.4f, got %.4f", wantPool, third.Expenditures)
	}

	// Every component is replaced exactly once over the horizon.
	seen := map[string]int{}
	for _, entry := range p.projection {
		for _, name := range entry.Balance.ReplacedComponents {
			seen[name]++
		}
	}
	if len(seen) != len(p.inputs.Components) {
		t.Errorf("expected %d replaced components, got %d: %v", len(p.inputs.Components), len(seen), seen)
	}
	for name, count := range seen {
		if count != 1 {
			t.Errorf("component %s replaced %d times", name, count)
		}
	}
}

func TestFirstYearSummary(t *testing.T) {
	p := runPipeline(t)

	summary, ok := reserve.FirstYearSummary(p.projection)
	if !ok {
		t.Fatal("expected a first-year summary")
	}
	if summary.FiscalYear != 2025 {
		t.Errorf("expected fiscal year 2025, got %d", summary.FiscalYear)
	}
	if summary.Overall.Count != 10 {
		t.Errorf("expected 10 components overall, got %d", summary.Overall.Count)
	}
	if len(summary.Categories) != len(reserve.Categories()) {
		t.Fatalf("expected %d categories, got %d", len(reserve.Categories()), len(summary.Categories))
	}

	var count int
	var totalCost, reserves float64
	for _, c := range summary.Categories {
		if c.Count == 0 {
			t.Errorf("category %s has no components", c.Label)
		}
		count += c.Count
		totalCost += c.TotalCost
		reserves += c.CurrentReserveFunds
	}
	if count != summary.Overall.Count {
		t.Errorf("category counts sum to %d, overall is %d", count, summary.Overall.Count)
	}
	if math.Abs(totalCost-summary.Overall.TotalCost) > tolerance {
		t.Errorf("category costs sum to %.4f, overall is %.4f", totalCost, summary.Overall.TotalCost)
	}
	if math.Abs(reserves-125000) > tolerance {
		t.Errorf("expected the opening balance to be fully distributed, got %.4f", reserves)
	}
	if math.Abs(summary.Overall.TotalCost-reserve.TotalReplacementCost(p.inputs.Components)) > tolerance {
		t.Errorf("year-one cost should be uninflated")
	}
}

func TestFundingScenarios(t *testing.T) {
	p := runPipeline(t)

	if len(p.scenarios.Scenarios) != 4 {
		t.Fatalf("expected 4 scenarios, got %d", len(p.scenarios.Scenarios))
	}

	full := testutil.FindScenario(p.scenarios.Scenarios, "Full Funding")
	if full == nil {
		t.Fatal("full funding scenario missing")
	}
	if !full.Summary.Converged || !full.Summary.Solvent {
		t.Fatalf("full funding should converge and stay solvent: %+v", full.Summary)
	}
	if full.Summary.Iterations != 100 {
		t.Errorf("expected 100 bisection steps, got %d", full.Summary.Iterations)
	}

	simulator := cashflow.NewSimulator(p.inputs.Params, p.inputs.Components)
	if minBalance := simulator.MinEndingBalance(full.AverageAnnualContribution); minBalance < 0 {
		t.Errorf("full funding contribution leaves a negative balance %.4f", minBalance)
	}
	if minBalance := simulator.MinEndingBalance(full.AverageAnnualContribution - 1); minBalance >= 0 {
		t.Errorf("a dollar less than full funding should go negative, min %.4f", minBalance)
	}

	for _, tc := range []struct {
		label string
		want  float64
	}{
		{"Threshold 10.0%", 19800},
		{"Threshold 5.0%", 18900},
		{"Threshold 0.0%", 18000},
	} {
		scenario := testutil.FindScenario(p.scenarios.Scenarios, tc.label)
		if scenario == nil {
			t.Errorf("scenario %s missing", tc.label)
			continue
		}
		if math.Abs(scenario.AverageAnnualContribution-tc.want) > tolerance {
			t.Errorf("%s: expected %.2f, got %.2f", tc.label, tc.want, scenario.AverageAnnualContribution)
		}
		if len(scenario.Years) != 31 || len(scenario.YearlyAnnualFunding) != 31 {
			t.Errorf("%s: expected 31 simulated years", tc.label)
		}
		if math.Abs(scenario.TotalContributions-tc.want*31) > 1e-4 {
			t.Errorf("%s: expected total contributions %.2f, got %.2f", tc.label, tc.want*31, scenario.TotalContributions)
		}
	}
}

func TestCSVReport(t *testing.T) {
	p := runPipeline(t)

	report := output.NewReport(p.projection, p.scenarios)
	var buf bytes.Buffer
	if err := output.CsvFormat(&buf, report); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	reader := csv.NewReader(strings.NewReader(buf.String()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("CSV output does not parse: %v", err)
	}

	// projection header + 31 years, summary header + 8 categories + overall,
	// scenario header + 4 scenarios
	if len(records) != 32+10+5 {
		t.Fatalf("expected %d CSV records, got %d", 32+10+5, len(records))
	}
	if records[0][0] != "year" || records[1][1] != "2025" || records[31][1] != "2055" {
		t.Errorf("unexpected projection rows: %v ... %v", records[1], records[31])
	}
	if records[32][0] != "category" || records[41][0] != reserve.OverallLabel {
		t.Errorf("unexpected summary rows: %v ... %v", records[32], records[41])
	}
	if records[42][0] != "scenario" || records[43][0] != "Full Funding" || records[43][1] != "full" {
		t.Errorf("unexpected scenario rows: %v %v", records[42], records[43])
	}
}

func TestPrettyReport(t *testing.T) {
	p := runPipeline(t)

	report := output.NewReport(p.projection, p.scenarios)
	report.Detailed = true
	var buf bytes.Buffer
	if err := output.PrettyFormat(&buf, report); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	out := buf.String()

	for _, section := range []string{
		"--- Reserve projection 2025-2055 ---",
		"--- Component summary for fiscal year 2025 ---",
		"--- Funding scenarios ---",
		"--- Cash flow for scenario Full Funding ---",
		"--- Cash flow for scenario Threshold 0.0% ---",
	} {
		if !strings.Contains(out, section) {
			t.Errorf("pretty output missing section %q", section)
		}
	}
	if !strings.Contains(out, "$125,000.00") {
		t.Errorf("pretty output should show the opening balance with grouping")
	}
}
