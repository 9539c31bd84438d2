package core

// Tolerance constants consolidated per the redesign note: the source
// implementation this package descends from used 5-6 different
// epsilon literals inconsistently across its simplex/B&B/cutting-plane
// code. A single named constant per purpose removes that class of bug.
const (
	// ZeroEps is the tolerance for "is this value zero" comparisons
	// during pivot selection and optimality/feasibility tests.
	ZeroEps = 1e-9

	// FracEps is the tolerance for "is this RHS fractional" during
	// Gomory cut-row selection.
	FracEps = 1e-7

	// IntEps is the tolerance for "is this value an integer" during
	// branch-and-bound integrality checks.
	IntEps = 1e-6

	// PivotEps is the minimum magnitude a pivot element must have
	// before it is treated as a genuine (non-degenerate-to-zero) pivot.
	PivotEps = 1e-15
)

// Config bundles the tolerances and iteration/node/cut caps that govern
// every engine in this package. The zero value is not usable directly;
// construct one with DefaultConfig and override fields as needed.
type Config struct {
	ZeroEps  float64
	FracEps  float64
	IntEps   float64
	PivotEps float64

	// MaxIterations bounds a single simplex phase (primal or dual).
	MaxIterations int

	// MaxNodes bounds the number of nodes explored by branch-and-bound
	// (general or knapsack).
	MaxNodes int

	// MaxCuts bounds the number of Gomory cuts appended by the
	// cutting-plane loop.
	MaxCuts int
}

// DefaultConfig returns the solver-wide defaults used throughout this
// package's own tests and examples.
func DefaultConfig() Config {
	return Config{
		ZeroEps:       ZeroEps,
		FracEps:       FracEps,
		IntEps:        IntEps,
		PivotEps:      PivotEps,
		MaxIterations: 10000,
		MaxNodes:      10000,
		MaxCuts:       200,
	}
}
