package main

import (
	"fmt"
	"io"

	"github.com/iwvelando/reserve-forecast/internal/config"
	"github.com/iwvelando/reserve-forecast/internal/optimizer"
	"github.com/iwvelando/reserve-forecast/internal/reserve"
	"github.com/iwvelando/reserve-forecast/pkg/adapters"
	"github.com/iwvelando/reserve-forecast/pkg/constants"
	"github.com/iwvelando/reserve-forecast/pkg/output"
	"github.com/iwvelando/reserve-forecast/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session is a loaded configuration plus the logger and output format chosen
// for one CLI invocation.
type session struct {
	logger *zap.Logger
	inputs *adapters.Inputs
	format string
}

func openSession(opts *cliOptions) (*session, error) {
	configuration, err := config.LoadConfiguration(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}

	logger, err := initializeLogger(configuration.Logging, opts.logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	outputFormat := configuration.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Error("invalid output format",
			zap.String("op", "main"),
			zap.Error(err),
		)
		_ = logger.Sync()
		return nil, err
	}

	inputs, err := adapters.FromConfiguration(configuration)
	if err != nil {
		logger.Error("failed to prepare inputs",
			zap.String("op", "main"),
			zap.Error(err),
		)
		_ = logger.Sync()
		return nil, err
	}

	warnings := make([]string, 0, len(inputs.Warnings))
	warnings = append(warnings, inputs.Warnings...)
	warnings = append(warnings, validation.ValidateInventory(inputs.Params, inputs.Components)...)
	for _, warning := range warnings {
		logger.Warn("configuration warning",
			zap.String("op", "main"),
			zap.String("warning", warning),
		)
	}

	logger.Debug("configuration loaded",
		zap.String("op", "main"),
		zap.String("path", opts.configPath),
		zap.Int("components", len(inputs.Components)),
		zap.Int("scenarios", len(inputs.Rates)),
		zap.String("outputFormat", outputFormat),
	)

	return &session{logger: logger, inputs: inputs, format: outputFormat}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

func (s *session) render(w io.Writer, report output.Report) error {
	var err error
	switch s.format {
	case constants.OutputFormatCSV:
		err = output.CsvFormat(w, report)
	default:
		err = output.PrettyFormat(w, report)
	}
	if err != nil {
		s.logger.Error("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	return err
}

func projectCmd(opts *cliOptions) *cobra.Command {
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the reserve under the current contribution",
		Long:  "Projects the reserve year by year under the current annual contribution and summarizes the first fiscal year by category.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.close()

			projection := reserve.NewProjector(s.logger).Project(s.inputs.Params, s.inputs.Components)
			report := output.NewReport(projection, nil)
			if summaryOnly {
				report.Projection = nil
			}
			return s.render(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().BoolVar(&summaryOnly, "summary-only", false, "only print the first-year component summary")
	return cmd
}

func solveCmd(opts *cliOptions) *cobra.Command {
	var (
		detailed bool
		rates    []string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the funding scenarios",
		Long:  "Resolves the annual contribution of the full-funding scenario and every threshold scenario, then compares them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer s.close()

			scenarioRates := s.inputs.Rates
			if len(rates) > 0 {
				scenarioRates, err = parseRates(rates)
				if err != nil {
					s.logger.Error("invalid --rates value",
						zap.String("op", "main"),
						zap.Error(err),
					)
					return err
				}
			}

			runner, err := optimizer.NewRunner(s.logger, s.inputs.Params, s.inputs.Components, s.inputs.Options)
			if err != nil {
				s.logger.Error("failed to create solver",
					zap.String("op", "main"),
					zap.Error(err),
				)
				return err
			}

			result, err := runner.Run(cmd.Context(), scenarioRates)
			if err != nil {
				s.logger.Error("failed to solve scenarios",
					zap.String("op", "main"),
					zap.Error(err),
				)
				return err
			}

			report := output.Report{Scenarios: result, Detailed: detailed}
			return s.render(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "include the yearly cash flow of every scenario")
	cmd.Flags().StringSliceVar(&rates, "rates", nil, "scenarios to solve instead of the configured ones, e.g. full,10%,0.05")
	return cmd
}

func parseRates(values []string) ([]*float64, error) {
	rates := make([]*float64, 0, len(values))
	for i, value := range values {
		rate, err := config.ParseThresholdRate(value)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}
