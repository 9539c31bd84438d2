package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scenarioCModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel()
	m.Maximize()
	profits := []float64{2, 3, 3, 5, 2, 4}
	weights := []float64{11, 8, 6, 14, 10, 10}
	vars := make([]*Variable, len(profits))
	for i, p := range profits {
		vars[i] = m.AddVariable(string(rune('a'+i))).SetCoeff(p).Binary()
	}
	c := m.AddConstraint()
	for i, v := range vars {
		c.AddTerm(weights[i], v)
	}
	c.LessOrEqual(40)
	return m
}

// TestSolveKnapsack_ScenarioC is the textbook 0/1 knapsack: capacity 40,
// profits [2,3,3,5,2,4], weights [11,8,6,14,10,10] gives z* = 13.
func TestSolveKnapsack_ScenarioC(t *testing.T) {
	m := scenarioCModel(t)
	result, err := SolveKnapsack(m, DefaultConfig())

	assert.NoError(t, err)
	assert.Empty(t, result.NotApplicable)
	assert.NotNil(t, result.Best)
	assert.InDelta(t, 13.0, result.Best.Objective, 1e-6)

	found := false
	for _, n := range result.Nodes {
		if n.Status == KnapsackCandidate && n.Objective > 13-1e-6 && n.Objective < 13+1e-6 {
			found = true
		}
	}
	assert.True(t, found, "expected at least one Candidate node with objective 13")
}

func TestSolveKnapsack_NotApplicable_NonBinaryVariable(t *testing.T) {
	m := NewModel()
	m.Maximize()
	v := m.AddVariable("x1").SetCoeff(1).Integer()
	m.AddConstraint().AddTerm(1, v).LessOrEqual(10)

	result, err := SolveKnapsack(m, DefaultConfig())
	assert.NoError(t, err)
	assert.NotEmpty(t, result.NotApplicable)
	assert.Nil(t, result.Best)
}

func TestSolveKnapsack_NotApplicable_WrongRelation(t *testing.T) {
	m := NewModel()
	m.Maximize()
	v1 := m.AddVariable("x1").SetCoeff(1).Binary()
	v2 := m.AddVariable("x2").SetCoeff(1).Binary()
	m.AddConstraint().AddTerm(1, v1).AddTerm(1, v2).GreaterOrEqual(1)

	result, err := SolveKnapsack(m, DefaultConfig())
	assert.NoError(t, err)
	assert.NotEmpty(t, result.NotApplicable)
}

// TestSolveKnapsack_NodeCapReturnsIterationCapError checks that
// exceeding MaxNodes surfaces a typed IterationCap error rather than
// silently returning a truncated search as if it had finished.
func TestSolveKnapsack_NodeCapReturnsIterationCapError(t *testing.T) {
	m := scenarioCModel(t)
	cfg := DefaultConfig()
	cfg.MaxNodes = 1

	result, err := SolveKnapsack(m, cfg)
	assert.Error(t, err)

	solveErr, ok := err.(*SolveError)
	assert.True(t, ok)
	assert.Equal(t, IterationCap, solveErr.Kind)
	assert.NotNil(t, result)
	assert.Len(t, result.Nodes, 1)
}

func TestRankByRatio_DescendingOrder(t *testing.T) {
	m := NewModel()
	v1 := m.AddVariable("a").SetCoeff(2)
	v2 := m.AddVariable("b").SetCoeff(10)
	v3 := m.AddVariable("c").SetCoeff(6)
	weights := []float64{4, 5, 3} // ratios: 0.5, 2.0, 2.0

	rank := rankByRatio(m.Variables(), weights)
	assert.Equal(t, 1, rank[0]) // b has the highest ratio
	_ = v1
	_ = v2
	_ = v3
	assert.Equal(t, 3, len(rank))
}
