package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPrimalSimplex_ScenarioA_Unbounded is Scenario A: maximizing over a
// purely >= feasible region is unbounded.
func TestPrimalSimplex_ScenarioA_Unbounded(t *testing.T) {
	m := korean(t, true)
	_, err := SolvePrimal(m, DefaultConfig())

	assert.Error(t, err)
	assert.True(t, IsKind(err, Unbounded))
}

// TestPrimalSimplex_ScenarioB_Minimize is Scenario B: the same model
// minimized has z* = 300 at x1 = 3.6, x2 = 1.4.
func TestPrimalSimplex_ScenarioB_Minimize(t *testing.T) {
	m := korean(t, false)
	cfg := DefaultConfig()
	cm, err := Canonicalize(m, nil, cfg)
	assert.NoError(t, err)

	iterations, err := SolvePrimal(m, cfg)
	assert.NoError(t, err)

	final := iterations[len(iterations)-1]
	x := cm.ExpandX(final.ExtractX())
	z := m.ObjectiveValue(x)

	assert.InDelta(t, 3.6, x[0], 1e-6)
	assert.InDelta(t, 1.4, x[1], 1e-6)
	assert.InDelta(t, 300.0, z, 1e-4)
}

// TestPrimalSimplex_Optimality is property 1: the final tableau's
// objective row has no negative entry in decision/slack columns.
func TestPrimalSimplex_Optimality(t *testing.T) {
	cm := simpleCanonicalModel()
	tab := NewTableau(cm)
	cfg := DefaultConfig()

	iterations, err := PrimalSimplex(tab, cfg)
	assert.NoError(t, err)

	final := iterations[len(iterations)-1]
	for j := 0; j < final.RHSCol(); j++ {
		assert.GreaterOrEqual(t, final.At(0, j), -cfg.ZeroEps)
	}
}

// TestPrimalSimplex_BasisWellFormed is property 3: every basic column is
// a unit vector (within eps) across constraint rows, in every recorded
// iteration.
func TestPrimalSimplex_BasisWellFormed(t *testing.T) {
	cm := simpleCanonicalModel()
	tab := NewTableau(cm)
	cfg := DefaultConfig()

	iterations, err := PrimalSimplex(tab, cfg)
	assert.NoError(t, err)

	for _, it := range iterations {
		for row := 0; row < it.NRows(); row++ {
			col := it.Basis(row)
			for r := 0; r < it.NRows(); r++ {
				want := 0.0
				if r == row {
					want = 1.0
				}
				assert.InDelta(t, want, it.At(r+1, col), cfg.ZeroEps*10)
			}
		}
	}
}

// TestPrimalSimplex_Conservation is property 4: sum(c_j * x_j) against
// the original coefficients equals the final tableau's objective cell,
// up to the Model's sign convention.
func TestPrimalSimplex_Conservation(t *testing.T) {
	m := NewModel()
	m.Maximize()
	x1 := m.AddVariable("x1").SetCoeff(2)
	x2 := m.AddVariable("x2").SetCoeff(3)
	m.AddConstraint().AddTerm(1, x1).AddTerm(1, x2).LessOrEqual(4)
	m.AddConstraint().AddTerm(1, x1).AddTerm(3, x2).LessOrEqual(6)

	cfg := DefaultConfig()
	cm, err := Canonicalize(m, nil, cfg)
	assert.NoError(t, err)

	iterations, err := SolvePrimal(m, cfg)
	assert.NoError(t, err)

	final := iterations[len(iterations)-1]
	x := cm.ExpandX(final.ExtractX())
	z := m.ObjectiveValue(x)

	assert.InDelta(t, z, final.At(0, final.RHSCol()), 1e-6)
}
