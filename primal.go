package core

// PrimalSimplex iterates pivots on t, entering the column with the
// most negative row-0 entry and leaving via the minimum-ratio test,
// until no entry in row 0 is below -eps (optimal) or the entering
// column has no positive entry in any constraint row (Unbounded).
// Every tableau, including the starting one, is recorded.
//
// t is pivoted in place; callers that need the pre-solve tableau
// preserved should Clone it first.
func PrimalSimplex(t *Tableau, cfg Config) ([]*Tableau, error) {
	iterations := []*Tableau{t.Clone()}

	for iter := 0; ; iter++ {
		if iter >= cfg.MaxIterations {
			return iterations, newSolveError(IterationCap, iterations, "primal simplex exceeded max iterations")
		}

		_, enterCol := t.enteringColumn(cfg.ZeroEps)
		if enterCol == -1 {
			return iterations, nil
		}

		leaveRow := t.leavingRow(enterCol, cfg.ZeroEps)
		if leaveRow == -1 {
			return iterations, newSolveError(Unbounded, iterations, "no positive entry in entering column")
		}

		if err := t.Pivot(leaveRow, enterCol, cfg); err != nil {
			return iterations, err
		}
		iterations = append(iterations, t.Clone())
	}
}
