package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tableau is the dense (m+1) x (n+m+1) simplex tableau shared by every
// engine in this package: row 0 is the objective row, rows 1..m are
// constraint rows, columns 0..n-1 are decision variables, columns
// n..n+m-1 are one slack/surplus per row, and the last column is the
// right-hand side.
//
// Unlike the source this package descends from, the basis is tracked
// explicitly (basis[i] is the column basic in constraint row i+1)
// rather than rediscovered by scanning for unit-vector columns on
// every read. It is updated on every Pivot.
type Tableau struct {
	data *mat.Dense

	nVars int // n: number of decision-variable columns
	nRows int // m: number of constraint rows (row 0 excluded)

	// basis[i] is the column index basic in constraint row i+1, for
	// i in 0..nRows-1.
	basis []int

	// colNames holds the header name for every column except the RHS
	// column, decision variables first then slack/surplus columns, in
	// canonicalization order.
	colNames []string

	// minimize records whether the originating Model minimized, so
	// callers know to negate the RHS-column objective cell when
	// reporting a user-facing z. It has no effect on pivoting, which
	// always follows the maximize sign convention internally.
	minimize bool
}

// Rows returns m+1, the total row count (objective row included).
func (t *Tableau) Rows() int { return t.nRows + 1 }

// Cols returns n+m+1, the total column count (RHS included).
func (t *Tableau) Cols() int { return t.nVars + t.nRows + 1 }

// NVars returns n, the number of decision-variable columns.
func (t *Tableau) NVars() int { return t.nVars }

// NRows returns m, the number of constraint rows.
func (t *Tableau) NRows() int { return t.nRows }

// RHSCol returns the index of the right-hand-side column.
func (t *Tableau) RHSCol() int { return t.Cols() - 1 }

// Minimize reports whether the originating Model minimized.
func (t *Tableau) Minimize() bool { return t.minimize }

// ColName returns the header name of column j (0 <= j < Cols()-1).
func (t *Tableau) ColName(j int) string { return t.colNames[j] }

// Basis returns the basic column index for constraint row i (0 <= i <
// NRows()), i.e. the column basic in tableau row i+1.
func (t *Tableau) Basis(i int) int { return t.basis[i] }

// At returns the cell value at tableau row i, column j.
func (t *Tableau) At(i, j int) float64 { return t.data.At(i, j) }

// Set writes the cell value at tableau row i, column j.
func (t *Tableau) Set(i, j int, v float64) { t.data.Set(i, j, v) }

// Clone returns a deep copy of t, including its basis and column
// names, suitable for recording as an iteration snapshot or for
// branch-and-bound's per-node tableau ownership.
func (t *Tableau) Clone() *Tableau {
	clone := &Tableau{
		nVars:    t.nVars,
		nRows:    t.nRows,
		basis:    append([]int(nil), t.basis...),
		colNames: append([]string(nil), t.colNames...),
		minimize: t.minimize,
		data:     mat.DenseCopyOf(t.data),
	}
	return clone
}

// NewTableau builds a fresh tableau from a canonical model per spec
// row-major layout. Row 0 always uses the maximize sign convention
// (T[0,j] = -internalObjective[j]); CanonicalModel.Objective has
// already absorbed the minimize-sign-flip and any NonPositive
// variable-sign flip, so the pivot machinery here never branches on
// sense.
func NewTableau(cm *CanonicalModel) *Tableau {
	n := cm.NVars
	m := len(cm.Rows)

	data := mat.NewDense(m+1, n+m+1, nil)

	for j := 0; j < n; j++ {
		data.Set(0, j, -cm.Objective[j])
	}

	basis := make([]int, m)
	for i := 0; i < m; i++ {
		row := i + 1
		for j := 0; j < n; j++ {
			data.Set(row, j, cm.Rows[i][j])
		}
		slackCol := n + i
		data.Set(row, slackCol, 1)
		data.Set(row, n+m, cm.RHS[i])
		basis[i] = slackCol
	}

	colNames := make([]string, n+m)
	for j := 0; j < n; j++ {
		colNames[j] = cm.VarNames[j]
	}
	for i := 0; i < m; i++ {
		switch cm.RowTypes[i] {
		case 'E':
			colNames[n+i] = fmt.Sprintf("E_%d", i+1)
		default:
			colNames[n+i] = fmt.Sprintf("S_%d", i+1)
		}
	}

	return &Tableau{
		data:     data,
		nVars:    n,
		nRows:    m,
		basis:    basis,
		colNames: colNames,
		minimize: cm.Minimize,
	}
}

// snap zeroes out any tableau cell whose magnitude has drifted below
// eps, limiting floating-point drift across many chained pivots.
func (t *Tableau) snap(eps float64) {
	rows, cols := t.data.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.Abs(t.data.At(i, j)) < eps {
				t.data.Set(i, j, 0)
			}
		}
	}
}

// Pivot performs the Gauss-Jordan elimination step bringing column pc
// into the basis at row pr (1 <= pr <= NRows()). It scales the pivot
// row so T[pr,pc] = 1, then eliminates column pc from every other row.
func (t *Tableau) Pivot(pr, pc int, cfg Config) error {
	pivotVal := t.data.At(pr, pc)
	if math.Abs(pivotVal) < cfg.PivotEps {
		return newSolveError(ZeroPivot, nil, fmt.Sprintf("pivot element at row %d col %d is %.3e", pr, pc, pivotVal))
	}

	rows, cols := t.data.Dims()

	pivotRow := mat.Row(nil, pr, t.data)
	for j := 0; j < cols; j++ {
		pivotRow[j] /= pivotVal
	}
	t.data.SetRow(pr, pivotRow)

	for i := 0; i < rows; i++ {
		if i == pr {
			continue
		}
		factor := t.data.At(i, pc)
		if factor == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			t.data.Set(i, j, t.data.At(i, j)-factor*pivotRow[j])
		}
	}

	t.snap(cfg.ZeroEps)

	if pr >= 1 {
		t.basis[pr-1] = pc
	}
	return nil
}

// Optimal reports whether row 0 contains no entry strictly below -eps
// in the decision/slack span (the maximize-convention optimality
// test). It is the same test regardless of the originating Model's
// sense, since CanonicalModel already folded the sense into the
// objective row's sign.
func (t *Tableau) Optimal(eps float64) bool {
	_, col := t.enteringColumn(eps)
	return col == -1
}

// enteringColumn returns the most-negative row-0 entry among the
// decision/slack columns (excluding RHS), tie-broken by smallest
// column index, or (_, -1) if none is below -eps (optimal).
func (t *Tableau) enteringColumn(eps float64) (float64, int) {
	best := -1
	bestVal := 0.0
	for j := 0; j < t.RHSCol(); j++ {
		v := t.data.At(0, j)
		if v < -eps && (best == -1 || v < bestVal) {
			best = j
			bestVal = v
		}
	}
	return bestVal, best
}

// leavingRow applies the minimum-ratio test among rows with a
// strictly positive entry in the entering column, tie-broken by
// smallest row index. Returns -1 if no such row exists (Unbounded).
func (t *Tableau) leavingRow(enterCol int, eps float64) int {
	best := -1
	bestRatio := math.Inf(1)
	for i := 1; i <= t.nRows; i++ {
		a := t.data.At(i, enterCol)
		if a > eps {
			ratio := t.data.At(i, t.RHSCol()) / a
			if best == -1 || ratio < bestRatio {
				best = i
				bestRatio = ratio
			}
		}
	}
	return best
}

// mostNegativeRHSRow returns the constraint row with the most negative
// RHS, or -1 if every RHS is >= -eps (dual-feasible already).
func (t *Tableau) mostNegativeRHSRow(eps float64) int {
	best := -1
	bestVal := 0.0
	rhsCol := t.RHSCol()
	for i := 1; i <= t.nRows; i++ {
		v := t.data.At(i, rhsCol)
		if v < -eps && (best == -1 || v < bestVal) {
			best = i
			bestVal = v
		}
	}
	return best
}

// dualEnteringColumn picks, among columns of the leaving row with a
// strictly negative entry, the one minimizing |T[0,j]/T[leave,j]|,
// tie-broken by smallest column index. Returns -1 if none (Infeasible).
func (t *Tableau) dualEnteringColumn(leave int, eps float64) int {
	best := -1
	bestRatio := math.Inf(1)
	for j := 0; j < t.RHSCol(); j++ {
		a := t.data.At(leave, j)
		if a < -eps {
			ratio := math.Abs(t.data.At(0, j) / a)
			if best == -1 || ratio < bestRatio {
				best = j
				bestRatio = ratio
			}
		}
	}
	return best
}

// isBasic reports whether column c is recorded as the basic column of
// some constraint row, returning that row (1-based tableau row index)
// and true, or (0, false).
func (t *Tableau) isBasic(c int) (int, bool) {
	for i, bc := range t.basis {
		if bc == c {
			return i + 1, true
		}
	}
	return 0, false
}

// ExtractX reads the current decision-variable values off the
// explicit basis array: a decision column basic in row i takes the
// row's RHS value, every other decision column is 0.
func (t *Tableau) ExtractX() []float64 {
	x := make([]float64, t.nVars)
	rhsCol := t.RHSCol()
	for i, col := range t.basis {
		if col < t.nVars {
			x[col] = t.data.At(i+1, rhsCol)
		}
	}
	return x
}

// growRow is the shared topology grower behind InsertBoundRow (section
// and InsertCutRow: it allocates a tableau
// one row and one column larger, inserting the new slack column
// immediately before the RHS column (which is pushed to the new last
// position), copies every parent cell unchanged, zeroes the new slack
// column in every parent row, and writes newRow (values for the
// parent's n+m non-RHS columns) plus newRHS into the appended row with
// the given value in the new slack column.
func (t *Tableau) growRow(newRow []float64, newSlackValue, newRHS float64) *Tableau {
	oldRows, oldCols := t.data.Dims()
	newRows := oldRows + 1
	newCols := oldCols + 1
	oldRHSCol := oldCols - 1
	newSlackCol := oldCols - 1 // old RHS slot now holds the new slack
	newRHSCol := newCols - 1

	data := mat.NewDense(newRows, newCols, nil)
	for i := 0; i < oldRows; i++ {
		for j := 0; j < oldRHSCol; j++ {
			data.Set(i, j, t.data.At(i, j))
		}
		data.Set(i, newSlackCol, 0)
		data.Set(i, newRHSCol, t.data.At(i, oldRHSCol))
	}

	for j := 0; j < oldRHSCol; j++ {
		data.Set(newRows-1, j, newRow[j])
	}
	data.Set(newRows-1, newSlackCol, newSlackValue)
	data.Set(newRows-1, newRHSCol, newRHS)

	colNames := append(append([]string(nil), t.colNames...), fmt.Sprintf("S_%d", t.nRows+1))

	basis := append([]int(nil), t.basis...)
	basis = append(basis, newSlackCol)

	return &Tableau{
		data:     data,
		nVars:    t.nVars,
		nRows:    t.nRows + 1,
		basis:    basis,
		colNames: colNames,
		minimize: t.minimize,
	}
}

// InsertBoundRow implements the parent-to-child
// warm-start: it builds the new row representing the incremental
// bound x_varIdx <= value (is_upper) or x_varIdx >= value (!is_upper)
// in decision-variable space, prices it out against the parent's
// basis so it is expressed purely in non-basic columns plus the new
// slack, and grows the tableau with it.
func (t *Tableau) InsertBoundRow(varIdx int, isUpper bool, value float64) *Tableau {
	span := t.nVars + t.nRows
	row := make([]float64, span)
	var rhs float64
	if isUpper {
		row[varIdx] = 1
		rhs = value
	} else {
		row[varIdx] = -1
		rhs = -value
	}

	// Price out every column basic in the parent against the parent's
	// row: subtract f * (parent's basic row) from the new row, where f
	// is the new row's current coefficient on that basic column.
	for c := 0; c < span; c++ {
		basicRow, ok := t.isBasic(c)
		if !ok {
			continue
		}
		f := row[c]
		if f == 0 {
			continue
		}
		for j := 0; j < span; j++ {
			row[j] -= f * t.data.At(basicRow, j)
		}
		rhs -= f * t.data.At(basicRow, t.RHSCol())
	}

	return t.growRow(row, 1, rhs)
}

// InsertCutRow appends a Gomory cut row
// derived from sourceRow, with coefficient -frac(-a) for every
// existing non-RHS column (a = T[sourceRow,j]), a +1 new slack, and
// RHS -fracRHS.
func (t *Tableau) InsertCutRow(sourceRow int, fracRHS float64) *Tableau {
	span := t.nVars + t.nRows
	row := make([]float64, span)
	for j := 0; j < span; j++ {
		a := t.data.At(sourceRow, j)
		row[j] = -frac(-a)
	}
	return t.growRow(row, 1, -fracRHS)
}

// frac returns the fractional part of v in [0, 1), matching the
// Gomory-cut convention used throughout cuttingplane.go.
func frac(v float64) float64 {
	f := v - math.Floor(v)
	return f
}
