package core

// DualSimplex iterates pivots on t, leaving via the most-negative-RHS
// row and entering via the minimum |reduced-cost/pivot| ratio among
// that row's negative entries, until every constraint row's RHS is
// >= -eps (feasible) or the leaving row has no negative entry to
// enter on (Infeasible). Every tableau, including the starting one,
// is recorded.
//
// t is pivoted in place; callers that need the pre-repair tableau
// preserved should Clone it first.
func DualSimplex(t *Tableau, cfg Config) ([]*Tableau, error) {
	iterations := []*Tableau{t.Clone()}

	for iter := 0; ; iter++ {
		if iter >= cfg.MaxIterations {
			return iterations, newSolveError(IterationCap, iterations, "dual simplex exceeded max iterations")
		}

		leaveRow := t.mostNegativeRHSRow(cfg.ZeroEps)
		if leaveRow == -1 {
			return iterations, nil
		}

		enterCol := t.dualEnteringColumn(leaveRow, cfg.ZeroEps)
		if enterCol == -1 {
			return iterations, newSolveError(Infeasible, iterations, "no negative entry in leaving row")
		}

		if err := t.Pivot(leaveRow, enterCol, cfg); err != nil {
			return iterations, err
		}
		iterations = append(iterations, t.Clone())
	}
}
