package config

import (
	"fmt"

	"github.com/iwvelando/reserve-forecast/pkg/constants"
)

// SolverConfig tunes the full-funding search.
type SolverConfig struct {
	MaxIterations      int     `yaml:"maxIterations,omitempty" mapstructure:"maxIterations"`
	UpperBoundFraction float64 `yaml:"upperBoundFraction,omitempty" mapstructure:"upperBoundFraction"`
}

// Normalize ensures defaults are applied before validation.
func (s *SolverConfig) Normalize() {
	if s == nil {
		return
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = constants.DefaultSolverIterations
	}
	if s.UpperBoundFraction == 0 {
		s.UpperBoundFraction = constants.DefaultUpperBoundFraction
	}
}

// Validate returns an error when the solver configuration is unusable.
func (s *SolverConfig) Validate() error {
	if s == nil {
		return fmt.Errorf("solver configuration cannot be nil")
	}

	s.Normalize()

	if s.MaxIterations < 0 {
		return fmt.Errorf("solver maxIterations %d must be positive", s.MaxIterations)
	}
	if s.UpperBoundFraction < 0 {
		return fmt.Errorf("solver upperBoundFraction %.2f must be positive", s.UpperBoundFraction)
	}
	return nil
}
