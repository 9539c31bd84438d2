package core

// Bound is an incremental branching bound: x[VarIndex] <= Value
// (IsUpper) or x[VarIndex] >= Value (!IsUpper). The root canonical
// model is built from a Model plus zero or more Bounds; every
// branch-and-bound child thereafter is built by warm-starting a
// parent tableau with exactly one additional Bound via
// Tableau.InsertBoundRow rather than by re-canonicalizing.
type Bound struct {
	VarIndex int
	IsUpper  bool
	Value    float64
}

// CanonicalModel is a Model normalized to all-<= constraint rows, per
// form: every row's coefficients and RHS are already in <=
// form, RowTypes tags each row 'S' (direct <=) or 'E' (negated from
// >=) purely for header naming, and Objective has absorbed both the
// minimize-sign-flip and any NonPositive-variable sign flip so that
// Tableau construction never has to branch on sense.
type CanonicalModel struct {
	NVars    int
	VarNames []string
	Objective []float64
	Rows     [][]float64
	RHS      []float64
	RowTypes []byte

	// Minimize records the originating Model's sense, so callers can
	// negate a solved z back to the user-facing convention.
	Minimize bool

	// varSign[j] is +1 normally, -1 for a ContinuousNonPos variable
	// whose internal column represents y_j = -x_j.
	varSign []float64

	// columnMap[newIdx] = oldIdx maps a canonical-model column back to
	// its position in the original Model, after fixed-variable
	// elimination has dropped some columns.
	columnMap []int

	// fixed holds variables eliminated by presolve's fixed-variable
	// substitution, keyed by their original Model index, with the
	// (original, x-space) value they were pinned to.
	fixed map[int]float64

	origNVars int
}

// ExpandX maps a solution vector over the canonical model's (reduced)
// columns back to a full vector over the original Model's variables,
// filling in presolve-eliminated fixed variables.
func (cm *CanonicalModel) ExpandX(xReduced []float64) []float64 {
	x := make([]float64, cm.origNVars)
	for newIdx, oldIdx := range cm.columnMap {
		sign := cm.varSign[newIdx]
		if newIdx < len(xReduced) {
			x[oldIdx] = sign * xReduced[newIdx]
		}
	}
	for oldIdx, v := range cm.fixed {
		x[oldIdx] = v
	}
	return x
}

// Canonicalize normalizes model plus a list of branching bounds into a
// CanonicalModel. Presolve's fixed-variable elimination runs first:
// any variable whose bounds
// collapse to a point is substituted out before rows are built.
func Canonicalize(model *Model, bounds []Bound, cfg Config) (*CanonicalModel, error) {
	n := model.NumVars()

	activeBounds, fixed := FilterFixedVars(bounds, cfg.IntEps)

	columnMap := make([]int, 0, n)
	oldToNew := make([]int, n)
	for i := range oldToNew {
		oldToNew[i] = -1
	}
	for oldIdx := 0; oldIdx < n; oldIdx++ {
		if _, isFixed := fixed[oldIdx]; isFixed {
			continue
		}
		oldToNew[oldIdx] = len(columnMap)
		columnMap = append(columnMap, oldIdx)
	}
	reducedN := len(columnMap)

	varSign := make([]float64, reducedN)
	for newIdx, oldIdx := range columnMap {
		if model.variables[oldIdx].kind == ContinuousNonPos {
			varSign[newIdx] = -1
		} else {
			varSign[newIdx] = 1
		}
	}

	senseFlip := 1.0
	if model.objective == Minimize {
		senseFlip = -1
	}

	objective := make([]float64, reducedN)
	for newIdx, oldIdx := range columnMap {
		objective[newIdx] = senseFlip * varSign[newIdx] * model.variables[oldIdx].coefficient
	}

	var rows [][]float64
	var rhs []float64
	var rowTypes []byte

	addRow := func(fullRow []float64, r float64, tag byte) {
		reduced := make([]float64, reducedN)
		adjRHS := r
		for oldIdx := 0; oldIdx < n; oldIdx++ {
			if v, isFixed := fixed[oldIdx]; isFixed {
				adjRHS -= fullRow[oldIdx] * v
				continue
			}
			newIdx := oldToNew[oldIdx]
			reduced[newIdx] = fullRow[oldIdx] * varSign[newIdx]
		}
		rows = append(rows, reduced)
		rhs = append(rhs, adjRHS)
		rowTypes = append(rowTypes, tag)
	}

	for _, c := range model.constraints {
		row := c.coefficients(n)
		switch c.relation {
		case LessOrEqual:
			addRow(row, c.rhs, 'S')
		case GreaterOrEqual:
			neg := negate(row)
			addRow(neg, -c.rhs, 'E')
		case EqualTo:
			addRow(row, c.rhs, 'S')
			neg := negate(row)
			addRow(neg, -c.rhs, 'E')
		}
	}

	for oldIdx, v := range model.variables {
		if v.kind == BinaryVar {
			if _, isFixed := fixed[oldIdx]; isFixed {
				continue
			}
			newIdx := oldToNew[oldIdx]
			row := make([]float64, reducedN)
			row[newIdx] = varSign[newIdx]
			rows = append(rows, row)
			rhs = append(rhs, 1)
			rowTypes = append(rowTypes, 'S')
		}
	}

	for _, b := range activeBounds {
		if _, isFixed := fixed[b.VarIndex]; isFixed {
			continue
		}
		newIdx := oldToNew[b.VarIndex]
		row := make([]float64, reducedN)
		var r float64
		var tag byte
		if b.IsUpper {
			row[newIdx] = varSign[newIdx]
			r = b.Value
			tag = 'S'
		} else {
			row[newIdx] = -varSign[newIdx]
			r = -b.Value
			tag = 'E'
		}
		rows = append(rows, row)
		rhs = append(rhs, r)
		rowTypes = append(rowTypes, tag)
	}

	varNames := make([]string, reducedN)
	for newIdx, oldIdx := range columnMap {
		varNames[newIdx] = model.variables[oldIdx].name
	}

	cm := &CanonicalModel{
		NVars:     reducedN,
		VarNames:  varNames,
		Objective: objective,
		Rows:      rows,
		RHS:       rhs,
		RowTypes:  rowTypes,
		Minimize:  model.objective == Minimize,
		varSign:   varSign,
		columnMap: columnMap,
		fixed:     fixed,
		origNVars: n,
	}

	return RemoveEmptyRows(cm)
}

func negate(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = -v
	}
	return out
}