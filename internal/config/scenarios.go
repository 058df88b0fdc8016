package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/reserve-forecast/pkg/constants"
	"github.com/spf13/cast"
)

// ScenarioConfig lists the funding scenarios to solve. Each entry is either
// the word "full" or a fractional uptick such as 0.10.
type ScenarioConfig struct {
	ThresholdRates []interface{} `yaml:"thresholdRates,omitempty" mapstructure:"thresholdRates"`
}

// DefaultThresholdRates returns full funding followed by the standard upticks.
func DefaultThresholdRates() []interface{} {
	rates := []interface{}{constants.FullFundingLabel}
	for _, r := range constants.DefaultThresholdRates {
		rates = append(rates, r)
	}
	return rates
}

// Rates parses the configured scenarios. Full funding is returned as nil.
func (s ScenarioConfig) Rates() ([]*float64, error) {
	entries := s.ThresholdRates
	if len(entries) == 0 {
		entries = DefaultThresholdRates()
	}

	rates := make([]*float64, 0, len(entries))
	for i, entry := range entries {
		rate, err := ParseThresholdRate(entry)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i+1, err)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// ParseThresholdRate converts one scenario entry into a rate. Strings ending
// in "%" are read as percentages.
func ParseThresholdRate(value interface{}) (*float64, error) {
	if value == nil {
		return nil, fmt.Errorf("threshold rate cannot be empty")
	}
	if s, ok := value.(string); ok {
		trimmed := strings.TrimSpace(s)
		if strings.EqualFold(trimmed, constants.FullFundingLabel) {
			return nil, nil
		}
		if pct, found := strings.CutSuffix(trimmed, "%"); found {
			rate, err := cast.ToFloat64E(strings.TrimSpace(pct))
			if err != nil {
				return nil, fmt.Errorf("threshold rate %q is not a number", s)
			}
			rate /= constants.PercentageMultiplier
			return &rate, nil
		}
		value = trimmed
	}

	rate, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, fmt.Errorf("threshold rate %v is not a number", value)
	}
	return &rate, nil
}
