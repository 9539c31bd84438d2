package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Objective is the optimization sense of a Model.
type Objective int

const (
	Minimize Objective = iota
	Maximize
)

// VarType is the domain a decision variable is constrained to.
type VarType int

const (
	// ContinuousNonNeg is x >= 0, the implicit default.
	ContinuousNonNeg VarType = iota
	// ContinuousNonPos is x <= 0.
	ContinuousNonPos
	// IntegerVar is an integrality-constrained variable with no
	// implicit upper bound.
	IntegerVar
	// BinaryVar is an integrality-constrained variable with an
	// implicit 0 <= x <= 1 bound, added automatically at
	// canonicalization time.
	BinaryVar
)

// Relation is the comparison operator of a Constraint's left-hand side
// against its right-hand side.
type Relation int

const (
	LessOrEqual Relation = iota
	GreaterOrEqual
	EqualTo
)

// Variable is a decision variable of a Model. Instances are only valid
// in the Model that created them via AddVariable.
type Variable struct {
	name        string
	coefficient float64
	kind        VarType
}

// SetCoeff sets the variable's coefficient in the objective function.
func (v *Variable) SetCoeff(c float64) *Variable {
	v.coefficient = c
	return v
}

// Integer marks the variable as integrality-constrained.
func (v *Variable) Integer() *Variable {
	v.kind = IntegerVar
	return v
}

// Binary marks the variable as integrality-constrained within [0,1].
func (v *Variable) Binary() *Variable {
	v.kind = BinaryVar
	return v
}

// NonPositive marks the variable as continuous with x <= 0, instead of
// the default x >= 0.
func (v *Variable) NonPositive() *Variable {
	v.kind = ContinuousNonPos
	return v
}

// Name returns the variable's human-readable name.
func (v *Variable) Name() string { return v.name }

// IsInteger reports whether the variable is Integer or Binary.
func (v *Variable) IsInteger() bool {
	return v.kind == IntegerVar || v.kind == BinaryVar
}

// term is one coef*variable summand of a Constraint's left-hand side.
type term struct {
	coef     float64
	variable *Variable
}

// Constraint is a single row of a Model: a linear combination of
// variables compared against a right-hand side.
type Constraint struct {
	terms    []term
	relation Relation
	rhs      float64
	model    *Model
}

// AddTerm appends coef*v to the constraint's left-hand side. v must
// have been created by AddVariable on the same Model; otherwise AddTerm
// panics.
func (c *Constraint) AddTerm(coef float64, v *Variable) *Constraint {
	c.model.mustOwn(v)
	c.terms = append(c.terms, term{coef: coef, variable: v})
	return c
}

// LessOrEqual finalizes the constraint as lhs <= rhs.
func (c *Constraint) LessOrEqual(rhs float64) *Constraint {
	c.relation = LessOrEqual
	c.rhs = rhs
	return c
}

// GreaterOrEqual finalizes the constraint as lhs >= rhs.
func (c *Constraint) GreaterOrEqual(rhs float64) *Constraint {
	c.relation = GreaterOrEqual
	c.rhs = rhs
	return c
}

// EqualTo finalizes the constraint as lhs = rhs.
func (c *Constraint) EqualTo(rhs float64) *Constraint {
	c.relation = EqualTo
	c.rhs = rhs
	return c
}

// coefficients expands the constraint's terms into a dense vector in
// the Model's variable order, satisfying the invariant
// |coefficients| == |variables|.
func (c *Constraint) coefficients(nVar int) []float64 {
	row := make([]float64, nVar)
	for _, t := range c.terms {
		idx := c.model.indexOf(t.variable)
		row[idx] += t.coef
	}
	return row
}

// Model is the canonical representation of an LP/MILP problem: an
// objective sense, an ordered list of variables, and an ordered list of
// constraints. A Model is immutable once handed to a solver; solvers
// clone-on-normalize rather than mutate the caller's Model.
type Model struct {
	objective   Objective
	variables   []*Variable
	constraints []*Constraint
}

// NewModel constructs an empty Model. The default objective sense is
// Minimize.
func NewModel() *Model {
	return &Model{objective: Minimize}
}

// Maximize sets the objective sense to maximization.
func (m *Model) Maximize() *Model {
	m.objective = Maximize
	return m
}

// Minimize sets the objective sense to minimization.
func (m *Model) Minimize() *Model {
	m.objective = Minimize
	return m
}

// AddVariable declares a new decision variable with the given name,
// defaulting to a zero objective coefficient and ContinuousNonNeg type.
func (m *Model) AddVariable(name string) *Variable {
	v := &Variable{name: name, kind: ContinuousNonNeg}
	m.variables = append(m.variables, v)
	return v
}

// AddConstraint begins a new constraint row on the Model.
func (m *Model) AddConstraint() *Constraint {
	c := &Constraint{model: m}
	m.constraints = append(m.constraints, c)
	return c
}

// Variables returns the Model's variables in declaration order.
func (m *Model) Variables() []*Variable { return m.variables }

// Constraints returns the Model's constraints in declaration order.
func (m *Model) Constraints() []*Constraint { return m.constraints }

// NumVars returns the number of decision variables declared so far.
func (m *Model) NumVars() int { return len(m.variables) }

// indexOf returns the position of v in the Model's variable slice,
// panicking if v does not belong to this Model.
func (m *Model) indexOf(v *Variable) int {
	for i, candidate := range m.variables {
		if candidate == v {
			return i
		}
	}
	panic("core: variable pointer does not belong to this Model")
}

func (m *Model) mustOwn(v *Variable) {
	m.indexOf(v)
}

// ObjectiveCoefficients returns the original (user-specified) objective
// coefficients in variable order, for use in computing the true
// objective value of an extracted solution vector regardless of the
// internal maximize/minimize sign convention.
func (m *Model) ObjectiveCoefficients() []float64 {
	c := make([]float64, len(m.variables))
	for i, v := range m.variables {
		c[i] = v.coefficient
	}
	return c
}

// ObjectiveValue computes sum(c_j * x_j) against the Model's original
// objective coefficients.
func (m *Model) ObjectiveValue(x []float64) float64 {
	c := m.ObjectiveCoefficients()
	n := len(c)
	if n > len(x) {
		n = len(x)
	}
	return floats.Dot(c[:n], x[:n])
}

// nearestInt rounds v to the nearest integer, used throughout
// integrality checks.
func nearestInt(v float64) float64 {
	return math.Round(v)
}
