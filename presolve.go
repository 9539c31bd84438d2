package core

import "gonum.org/v1/gonum/floats"

// FilterFixedVars performs structural fixed-variable elimination: a
// variable whose accumulated bounds collapse to a single point (its
// tightest upper bound equals its tightest lower bound, within eps)
// is reported as fixed at that value, and every Bound referencing it
// is dropped from the returned list since the substitution already
// enforces it.
func FilterFixedVars(bounds []Bound, eps float64) (active []Bound, fixed map[int]float64) {
	type span struct {
		hasUpper, hasLower bool
		upper, lower       float64
	}
	spans := make(map[int]*span)
	for _, b := range bounds {
		s, ok := spans[b.VarIndex]
		if !ok {
			s = &span{}
			spans[b.VarIndex] = s
		}
		if b.IsUpper {
			if !s.hasUpper || b.Value < s.upper {
				s.upper = b.Value
				s.hasUpper = true
			}
		} else {
			if !s.hasLower || b.Value > s.lower {
				s.lower = b.Value
				s.hasLower = true
			}
		}
	}

	fixed = make(map[int]float64)
	for idx, s := range spans {
		if s.hasUpper && s.hasLower && floats.EqualWithinAbs(s.upper, s.lower, eps) {
			fixed[idx] = (s.upper + s.lower) / 2
		}
	}

	if len(fixed) == 0 {
		return bounds, fixed
	}

	active = make([]Bound, 0, len(bounds))
	for _, b := range bounds {
		if _, isFixed := fixed[b.VarIndex]; isFixed {
			continue
		}
		active = append(active, b)
	}
	return active, fixed
}

// RemoveEmptyRows drops every canonicalized constraint row whose
// coefficient vector is entirely zero: such a row is either always
// satisfied (RHS >= 0, redundant) or never satisfiable (RHS < 0).
func RemoveEmptyRows(cm *CanonicalModel) (*CanonicalModel, error) {
	var rows [][]float64
	var rhs []float64
	var rowTypes []byte

	for i, row := range cm.Rows {
		allZero := true
		for _, v := range row {
			if v != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			if cm.RHS[i] < 0 {
				return nil, newSolveError(MalformedModel, nil, "empty constraint row with negative RHS is never satisfiable")
			}
			continue
		}
		rows = append(rows, row)
		rhs = append(rhs, cm.RHS[i])
		rowTypes = append(rowTypes, cm.RowTypes[i])
	}

	cm.Rows = rows
	cm.RHS = rhs
	cm.RowTypes = rowTypes
	return cm, nil
}
