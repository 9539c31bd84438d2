package core

// SolvePrimal is the solve_primal public entry point: it
// canonicalizes model, builds a fresh tableau, repairs any negative
// RHS with the dual simplex,
// then optimizes with the primal simplex, returning every tableau from
// the initial one through the optimal one.
func SolvePrimal(model *Model, cfg Config) ([]*Tableau, error) {
	cm, err := Canonicalize(model, nil, cfg)
	if err != nil {
		return nil, err
	}
	t := NewTableau(cm)

	var iterations []*Tableau
	if hasNegativeRHS(t, cfg.ZeroEps) {
		dualIters, err := DualSimplex(t, cfg)
		iterations = append(iterations, dualIters...)
		if err != nil {
			return iterations, err
		}
	} else {
		iterations = append(iterations, t.Clone())
	}

	primalIters, err := PrimalSimplex(t, cfg)
	iterations = append(iterations, primalIters[1:]...)
	return iterations, err
}

// SolveDual is the solve_dual public entry point: it
// accepts a raw tableau the caller has already built (rather than a
// Model) since the caller may have preprocessed it, and iterates the
// dual simplex alone until every RHS is non-negative.
func SolveDual(t *Tableau, cfg Config) ([]*Tableau, error) {
	return DualSimplex(t, cfg)
}
