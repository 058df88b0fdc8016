// Package optimization provides shared data structures for optimization results.
package optimization

// Methods used to resolve a scenario contribution.
const (
	MethodBisection      = "bisection"
	MethodFlatMultiplier = "flat-multiplier"
)

// Summary captures how a single scenario contribution was resolved.
type Summary struct {
	Scenario        string   `json:"scenario"`
	Method          string   `json:"method"`
	ThresholdRate   *float64 `json:"thresholdRate,omitempty"`
	Original        float64  `json:"original"`
	Value           float64  `json:"value"`
	LowerBound      float64  `json:"lowerBound"`
	UpperBound      float64  `json:"upperBound"`
	Floor           float64  `json:"floor"`
	MinimumBalance  float64  `json:"minimumBalance"`
	Headroom        float64  `json:"headroom"`
	Iterations      int      `json:"iterations"`
	Converged       bool     `json:"converged"`
	Solvent         bool     `json:"solvent"`
	Notes           []string `json:"notes,omitempty"`
	OriginalDisplay string   `json:"originalDisplay,omitempty"`
	ValueDisplay    string   `json:"valueDisplay,omitempty"`
}
