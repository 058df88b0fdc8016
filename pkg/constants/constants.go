// Package constants provides shared constants for the reserve-forecast application.
package constants

import "time"

// Projection defaults
const (
	// DefaultProjectionYears is the contractual length of a reserve study.
	// The engine evaluates one additional boundary year beyond it.
	DefaultProjectionYears = 30

	// BoundaryYears is the number of lookahead years evaluated past the
	// projection horizon.
	BoundaryYears = 1

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)

// Solver defaults
const (
	// DefaultSolverIterations is the fixed number of bisection steps used by
	// the full-funding search.
	DefaultSolverIterations = 100

	// DefaultUpperBoundFraction bounds the full-funding search at this
	// fraction of the total uninflated replacement cost.
	DefaultUpperBoundFraction = 0.5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// FullFundingLabel is the configuration token selecting the full-funding
	// scenario instead of a flat threshold rate.
	FullFundingLabel = "full"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultRequestTimeout bounds a single projection request
	DefaultRequestTimeout = 30 * time.Second

	// DefaultShutdownTimeout is how long in-flight requests get on shutdown
	DefaultShutdownTimeout = 10 * time.Second
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// DefaultThresholdRates lists the flat contribution upticks evaluated next to
// the full-funding scenario.
var DefaultThresholdRates = []float64{0.10, 0.05, 0.00}
