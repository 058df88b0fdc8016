// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/reserve-forecast/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for reserve-forecast.
type Configuration struct {
	Financial  FinancialConfig   `yaml:"financial" mapstructure:"financial"`
	Components []ComponentConfig `yaml:"components" mapstructure:"components"`
	Scenarios  ScenarioConfig    `yaml:"scenarios,omitempty" mapstructure:"scenarios"`
	Solver     SolverConfig      `yaml:"solver,omitempty" mapstructure:"solver"`
	Logging    LoggingConfig     `yaml:"logging,omitempty" mapstructure:"logging"`
	Output     OutputConfig      `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv
}

// FinancialConfig holds the association-wide parameters. Numeric fields are
// kept as decoded so that non-numeric entries can be coerced with a warning
// instead of failing the load.
type FinancialConfig struct {
	BeginningYear             interface{} `yaml:"beginningYear" mapstructure:"beginningYear"`
	ProjectionYears           interface{} `yaml:"projectionYears,omitempty" mapstructure:"projectionYears"`
	InflationRate             interface{} `yaml:"inflationRate" mapstructure:"inflationRate"`
	InterestRate              interface{} `yaml:"interestRate" mapstructure:"interestRate"`
	BeginningReserveBalance   interface{} `yaml:"beginningReserveBalance" mapstructure:"beginningReserveBalance"`
	CurrentAnnualContribution interface{} `yaml:"currentAnnualContribution" mapstructure:"currentAnnualContribution"`
}

// ComponentConfig is one inventory line as written in the config file.
type ComponentConfig struct {
	ID            string      `yaml:"id" mapstructure:"id"`
	Name          string      `yaml:"name" mapstructure:"name"`
	Category      string      `yaml:"category" mapstructure:"category"`
	Quantity      interface{} `yaml:"quantity" mapstructure:"quantity"`
	CostPerUnit   interface{} `yaml:"costPerUnit" mapstructure:"costPerUnit"`
	UsefulLife    interface{} `yaml:"usefulLife" mapstructure:"usefulLife"`
	RemainingLife interface{} `yaml:"remainingLife" mapstructure:"remainingLife"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.ApplyDefaults(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// ApplyDefaults fills unset optional sections and rejects settings that
// cannot be run.
func (c *Configuration) ApplyDefaults() error {
	if c.Financial.ProjectionYears == nil {
		c.Financial.ProjectionYears = constants.DefaultProjectionYears
	}

	c.Output.Format = strings.TrimSpace(c.Output.Format)
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}

	if len(c.Scenarios.ThresholdRates) == 0 {
		c.Scenarios.ThresholdRates = DefaultThresholdRates()
	}
	if _, err := c.Scenarios.Rates(); err != nil {
		return err
	}

	if err := c.Solver.Validate(); err != nil {
		return fmt.Errorf("invalid solver configuration: %w", err)
	}
	return nil
}
