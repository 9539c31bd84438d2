package core

import (
	"fmt"
	"strings"
)

// CuttingPlaneResult is the result of SolveCuttingPlane.
type CuttingPlaneResult struct {
	XOpt     map[string]float64
	ZOpt     float64
	CutsAdded int
	Tableaus []*Tableau
	Logs     string
}

// SolveCuttingPlane runs the Gomory fractional-cut loop:
// repair/optimize, detect the smallest-index fractional Integer/Binary
// variable, derive a cut row, and repeat until an all-integer solution
// is found or the cut cap is exceeded.
func SolveCuttingPlane(model *Model, cfg Config) (*CuttingPlaneResult, error) {
	bounds := make([]Bound, 0, len(model.variables))
	for i, v := range model.variables {
		if v.IsInteger() {
			bounds = append(bounds, Bound{VarIndex: i, IsUpper: true, Value: 1})
		}
	}

	cm, err := Canonicalize(model, bounds, cfg)
	if err != nil {
		return nil, err
	}

	t := NewTableau(cm)
	var logs strings.Builder
	var tableaus []*Tableau
	cuts := 0

	result := func(x []float64, z float64) *CuttingPlaneResult {
		return &CuttingPlaneResult{
			XOpt:      namedX(model, x),
			ZOpt:      z,
			CutsAdded: cuts,
			Tableaus:  tableaus,
			Logs:      logs.String(),
		}
	}

	for {
		if hasNegativeRHS(t, cfg.ZeroEps) {
			iters, err := DualSimplex(t, cfg)
			tableaus = append(tableaus, iters...)
			if err != nil {
				fmt.Fprintf(&logs, "dual repair failed after %d cuts: %v\n", cuts, err)
				x := cm.ExpandX(t.ExtractX())
				return result(x, reportedZ(t, cm)), err
			}
		} else {
			tableaus = append(tableaus, t.Clone())
		}

		iters, err := PrimalSimplex(t, cfg)
		tableaus = append(tableaus, iters[1:]...)
		if err != nil {
			fmt.Fprintf(&logs, "primal optimize failed after %d cuts: %v\n", cuts, err)
			x := cm.ExpandX(t.ExtractX())
			return result(x, reportedZ(t, cm)), err
		}

		x := cm.ExpandX(t.ExtractX())
		fracVar, found := firstFractionalVar(model, x, cfg)
		if !found {
			fmt.Fprintf(&logs, "integer-feasible after %d cuts\n", cuts)
			return result(x, reportedZ(t, cm)), nil
		}

		row, bbar, ok := chooseCutRow(t, model, fracVar, cfg)
		if !ok {
			fmt.Fprintf(&logs, "no viable cut row after %d cuts; stopping short of integrality\n", cuts)
			return result(x, reportedZ(t, cm)), nil
		}

		if cuts >= cfg.MaxCuts {
			fmt.Fprintf(&logs, "cut cap (%d) reached\n", cfg.MaxCuts)
			return result(x, reportedZ(t, cm)), newSolveError(IterationCap, tableaus, "cutting plane exceeded max cuts")
		}

		fmt.Fprintf(&logs, "cut %d: source row %d, b-bar=%.6f\n", cuts+1, row, bbar)
		t = t.InsertCutRow(row, bbar)
		cuts++
	}
}

// reportedZ negates the tableau's internal RHS-column objective cell
// back to the user-facing sense if the originating Model minimized.
func reportedZ(t *Tableau, cm *CanonicalModel) float64 {
	z := t.At(0, t.RHSCol())
	if cm.Minimize {
		return -z
	}
	return z
}

// firstFractionalVar returns the smallest-index Integer/Binary
// variable whose value is more than FracEps from the nearest integer.
func firstFractionalVar(model *Model, x []float64, cfg Config) (int, bool) {
	for i, v := range model.variables {
		if !v.IsInteger() || i >= len(x) {
			continue
		}
		if frac(x[i]) > cfg.FracEps && frac(x[i]) < 1-cfg.FracEps {
			return i, true
		}
	}
	return 0, false
}

// chooseCutRow selects the source row for the next cut, by priority:
// (a) the row where fracVar is basic, (b) any row whose basic column
// is an integer variable with fractional RHS, (c) any row with
// fractional RHS. A degenerate b-bar (within FracEps of 0 or 1) is
// skipped in favor of the next candidate.
func chooseCutRow(t *Tableau, model *Model, fracVar int, cfg Config) (int, float64, bool) {
	var candidates []int
	if row, ok := t.isBasic(fracVar); ok {
		candidates = append(candidates, row)
	}
	for i := 1; i <= t.NRows(); i++ {
		basicCol := t.Basis(i - 1)
		if basicCol < t.NVars() && model.variables[basicCol].IsInteger() {
			candidates = append(candidates, i)
		}
	}
	for i := 1; i <= t.NRows(); i++ {
		candidates = append(candidates, i)
	}

	for _, row := range candidates {
		bbar := frac(t.At(row, t.RHSCol()))
		if bbar > cfg.FracEps && bbar < 1-cfg.FracEps {
			return row, bbar, true
		}
	}
	return 0, 0, false
}
