package core

import "fmt"

// FailureKind distinguishes the structured failure modes a solve can
// report, as opposed to normal per-node outcomes like pruning or
// infeasibility of a single branch-and-bound node, which are handled
// locally and never surface as an error.
type FailureKind string

const (
	// Unbounded is reported when the primal simplex's entering column
	// has no positive entry in any constraint row.
	Unbounded FailureKind = "Unbounded"

	// Infeasible is reported when the dual simplex's leaving row has
	// no negative entry among decision/slack columns to enter on.
	Infeasible FailureKind = "Infeasible"

	// ZeroPivot is reported when the selected pivot element is within
	// PivotEps of zero.
	ZeroPivot FailureKind = "ZeroPivot"

	// IterationCap is reported when a per-phase, per-engine iteration,
	// node, or cut cap is reached before a terminal state.
	IterationCap FailureKind = "IterationCap"

	// MalformedModel is reported when canonicalization meets a
	// constraint row whose coefficients are all zero and whose RHS is
	// negative, so that no point can satisfy it. The builder API always
	// expands a constraint to one coefficient per variable, so a
	// coefficient-count mismatch cannot arise.
	MalformedModel FailureKind = "MalformedModel"

	// NotApplicable is reported, as data rather than an error, when
	// the knapsack engine is given a model that does not fit its
	// preconditions.
	NotApplicable FailureKind = "NotApplicable"
)

// SolveError is the structured failure type returned by the engines in
// this package. Failures detected by the simplex loops and the
// cutting-plane loop carry the iteration history accumulated up to the
// point of failure, so a caller retains visibility into how far the
// solve progressed.
type SolveError struct {
	Kind FailureKind

	// Iterations holds every tableau snapshot recorded before the
	// failure was detected. It is nil for failures raised outside an
	// iteration loop: a zero pivot reported by Tableau.Pivot, an
	// unsatisfiable empty row, or a branch-and-bound or knapsack node
	// cap.
	Iterations []*Tableau

	// Detail is an optional human-readable elaboration.
	Detail string
}

func (e *SolveError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return string(e.Kind)
}

func newSolveError(kind FailureKind, iterations []*Tableau, detail string) *SolveError {
	return &SolveError{Kind: kind, Iterations: iterations, Detail: detail}
}

// IsKind reports whether err is a *SolveError of the given kind.
func IsKind(err error, kind FailureKind) bool {
	se, ok := err.(*SolveError)
	return ok && se.Kind == kind
}
