package config

import (
	"strings"
	"testing"

	"github.com/iwvelando/reserve-forecast/pkg/constants"
	"github.com/spf13/cast"
)

const fixturePath = "../../test/test_config.yaml"

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Example config file",
			configPath: fixturePath,
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationStructure(t *testing.T) {
	config, err := LoadConfiguration(fixturePath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if got := cast.ToInt(config.Financial.BeginningYear); got != 2025 {
		t.Errorf("Expected BeginningYear = 2025, got %v", got)
	}
	if got := cast.ToFloat64(config.Financial.BeginningReserveBalance); got != 125000 {
		t.Errorf("Expected BeginningReserveBalance = 125000, got %v", got)
	}
	if got := cast.ToFloat64(config.Financial.InflationRate); got != 0.03 {
		t.Errorf("Expected InflationRate = 0.03, got %v", got)
	}

	if len(config.Components) != 10 {
		t.Fatalf("Expected 10 components, got %d", len(config.Components))
	}
	first := config.Components[0]
	if first.ID != "asphalt-overlay" || first.Name != "Asphalt overlay" || first.Category != "sitework" {
		t.Errorf("Unexpected first component %+v", first)
	}
	if got := cast.ToInt(first.RemainingLife); got != 8 {
		t.Errorf("Expected remainingLife 8, got %v", got)
	}
	if got := cast.ToFloat64(first.CostPerUnit); got != 2.15 {
		t.Errorf("Expected costPerUnit 2.15, got %v", got)
	}

	if config.Logging.Level != "info" || config.Logging.Format != "console" {
		t.Errorf("Unexpected logging config %+v", config.Logging)
	}
	if config.Output.Format != constants.OutputFormatPretty {
		t.Errorf("Expected pretty output, got %q", config.Output.Format)
	}
	if config.Solver.MaxIterations != 100 || config.Solver.UpperBoundFraction != 0.5 {
		t.Errorf("Unexpected solver config %+v", config.Solver)
	}

	rates, err := config.Scenarios.Rates()
	if err != nil {
		t.Fatalf("Rates() error = %v", err)
	}
	if len(rates) != 4 {
		t.Fatalf("Expected 4 scenarios, got %d", len(rates))
	}
	if rates[0] != nil {
		t.Errorf("Expected first scenario to be full funding, got %v", *rates[0])
	}
	expected := []float64{0.10, 0.05, 0.00}
	for i, want := range expected {
		if rates[i+1] == nil || *rates[i+1] != want {
			t.Errorf("Scenario %d: expected %v, got %v", i+1, want, rates[i+1])
		}
	}
}

func TestLoadConfigurationFromReaderDefaults(t *testing.T) {
	yamlData := `
financial:
  beginningYear: 2026
  inflationRate: 0.02
  interestRate: 0.01
  beginningReserveBalance: 5000
  currentAnnualContribution: 1000
components:
  - id: roof
    name: Roof
    category: exterior
    quantity: 1
    costPerUnit: 10000
    usefulLife: 10
    remainingLife: 5
`
	config, err := LoadConfigurationFromReader(strings.NewReader(yamlData))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if got := cast.ToInt(config.Financial.ProjectionYears); got != constants.DefaultProjectionYears {
		t.Errorf("Expected default projection years %d, got %d", constants.DefaultProjectionYears, got)
	}
	if config.Output.Format != constants.OutputFormatPretty {
		t.Errorf("Expected default output format, got %q", config.Output.Format)
	}
	if config.Solver.MaxIterations != constants.DefaultSolverIterations {
		t.Errorf("Expected default iterations, got %d", config.Solver.MaxIterations)
	}
	if config.Solver.UpperBoundFraction != constants.DefaultUpperBoundFraction {
		t.Errorf("Expected default upper bound fraction, got %v", config.Solver.UpperBoundFraction)
	}

	rates, err := config.Scenarios.Rates()
	if err != nil {
		t.Fatalf("Rates() error = %v", err)
	}
	if len(rates) != 1+len(constants.DefaultThresholdRates) {
		t.Fatalf("Expected default scenarios, got %d", len(rates))
	}
	if rates[0] != nil {
		t.Errorf("Expected full funding first")
	}
}

func TestLoadConfigurationFromReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "malformed yaml",
			yaml: "financial: [unterminated",
		},
		{
			name: "bad threshold rate",
			yaml: "scenarios:\n  thresholdRates:\n    - lots\n",
		},
		{
			name: "negative iterations",
			yaml: "solver:\n  maxIterations: -5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfigurationFromReader(strings.NewReader(tt.yaml)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestParseThresholdRate(t *testing.T) {
	tests := []struct {
		name      string
		value     interface{}
		expected  *float64
		expectErr bool
	}{
		{name: "full", value: "full", expected: nil},
		{name: "full mixed case", value: " Full ", expected: nil},
		{name: "float", value: 0.1, expected: floatPtr(0.1)},
		{name: "int zero", value: 0, expected: floatPtr(0)},
		{name: "numeric string", value: "0.05", expected: floatPtr(0.05)},
		{name: "percent string", value: "10%", expected: floatPtr(0.1)},
		{name: "nil", value: nil, expectErr: true},
		{name: "word", value: "half", expectErr: true},
		{name: "bad percent", value: "x%", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := ParseThresholdRate(tt.value)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error, got rate %v", rate)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expected == nil {
				if rate != nil {
					t.Fatalf("expected full funding, got %v", *rate)
				}
				return
			}
			if rate == nil || *rate != *tt.expected {
				t.Fatalf("expected %v, got %v", *tt.expected, rate)
			}
		})
	}
}

func TestSolverConfigValidate(t *testing.T) {
	tests := []struct {
		name       string
		config     SolverConfig
		expectErr  bool
		iterations int
		fraction   float64
	}{
		{name: "defaults", config: SolverConfig{}, iterations: 100, fraction: 0.5},
		{name: "custom", config: SolverConfig{MaxIterations: 60, UpperBoundFraction: 1}, iterations: 60, fraction: 1},
		{name: "negative iterations", config: SolverConfig{MaxIterations: -1}, expectErr: true},
		{name: "negative fraction", config: SolverConfig{UpperBoundFraction: -0.25}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			err := cfg.Validate()
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.MaxIterations != tt.iterations || cfg.UpperBoundFraction != tt.fraction {
				t.Fatalf("expected %d/%v, got %d/%v", tt.iterations, tt.fraction, cfg.MaxIterations, cfg.UpperBoundFraction)
			}
		})
	}

	var nilConfig *SolverConfig
	if err := nilConfig.Validate(); err == nil {
		t.Errorf("expected error for nil solver config")
	}
}

func floatPtr(value float64) *float64 {
	return &value
}
