package core

import "math"

// bbNode is one node of the branch-and-bound search tree, carrying the
// transient Seed it consumes exactly once when solved. Nodes are kept
// in a slice-backed stack, each owning its own Seed reference and
// dropping it once consumed.
type bbNode struct {
	id       int
	parentID int
	label    string
	depth    int

	// seed is the parent's final tableau, consumed exactly once by
	// nodeSolve to build this node's Iteration-0 via InsertBoundRow.
	// nil for the root, which builds a fresh tableau instead.
	seed  *Tableau
	bound *Bound

	tableau    *Tableau
	x          []float64
	objective  float64
	isInteger  bool
	infeasible bool
	solverUsed string
}

// BranchAndBoundResult is the result of SolveBranchAndBound: the best
// integer-feasible point found, its objective, and a node-by-node
// trace of the search.
type BranchAndBoundResult struct {
	BestX         map[string]float64
	BestObjective float64
	Feasible      bool
	NodesExplored int
	Log           string
}

// SolveBranchAndBound runs a depth-first branch-and-bound search over
// model's LP relaxations, warm-starting every child tableau from its
// parent's final tableau.
func SolveBranchAndBound(model *Model, cfg Config) (*BranchAndBoundResult, error) {
	cm, err := Canonicalize(model, nil, cfg)
	if err != nil {
		return nil, err
	}

	root := &bbNode{id: 0, parentID: -1, label: "Root", depth: 0}
	stack := []*bbNode{root}

	logger := NewTreeLogger()
	nextID := 1

	var incumbent *bbNode
	nodesExplored := 0
	capped := false

	better := func(candidate, current float64) bool {
		if model.objective == Maximize {
			return candidate > current+cfg.IntEps
		}
		return candidate < current-cfg.IntEps
	}

	for len(stack) > 0 {
		if nodesExplored >= cfg.MaxNodes {
			capped = true
			break
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodesExplored++

		seed, bound := node.seed, node.bound
		node.seed = nil // consumed

		var t0 *Tableau
		if seed == nil {
			t0 = NewTableau(cm)
		} else {
			t0 = seed.InsertBoundRow(bound.VarIndex, bound.IsUpper, bound.Value)
		}
		if err := solveNode(t0, cfg); err != nil {
			node.infeasible = true
			logger.Record(node.id, node.parentID, node.label, node.depth, 0, nil, decisionInfeasible)
			continue
		}

		node.tableau = t0
		reducedX := t0.ExtractX()
		node.x = cm.ExpandX(reducedX)
		node.objective = model.ObjectiveValue(node.x)
		node.isInteger = isIntegerFeasible(model, node.x, cfg)
		node.solverUsed = "Dual+Primal"

		if incumbent != nil && !better(node.objective, incumbent.objective) {
			logger.Record(node.id, node.parentID, node.label, node.depth, node.objective, node.x, decisionPrunedByBound)
			continue
		}

		if node.isInteger {
			if incumbent == nil || better(node.objective, incumbent.objective) {
				incumbent = node
				logger.Record(node.id, node.parentID, node.label, node.depth, node.objective, node.x, decisionNewIncumbent)
			} else {
				logger.Record(node.id, node.parentID, node.label, node.depth, node.objective, node.x, decisionIntegerCandidate)
			}
			continue
		}

		branchVar, _ := selectBranchVariable(model, node.x, cfg)
		if branchVar == -1 {
			// isIntegerFeasible and selectBranchVariable share the same
			// tolerance, so this is unreachable in practice; treat it as
			// a candidate defensively rather than panic.
			logger.Record(node.id, node.parentID, node.label, node.depth, node.objective, node.x, decisionIntegerCandidate)
			continue
		}

		logger.Record(node.id, node.parentID, node.label, node.depth, node.objective, node.x, decisionBranching)

		v := node.x[branchVar]
		floorChild := &bbNode{
			id: nextID, parentID: node.id, label: node.label + ".1", depth: node.depth + 1,
			seed: node.tableau, bound: &Bound{VarIndex: branchVar, IsUpper: true, Value: math.Floor(v)},
		}
		nextID++
		ceilChild := &bbNode{
			id: nextID, parentID: node.id, label: node.label + ".2", depth: node.depth + 1,
			seed: node.tableau, bound: &Bound{VarIndex: branchVar, IsUpper: false, Value: math.Ceil(v)},
		}
		nextID++

		// Push ceil first so floor is popped (and explored) first.
		stack = append(stack, ceilChild, floorChild)
	}

	if capped {
		logger.Record(-1, -1, "(cap)", 0, 0, nil, decisionNodeCapReached)
	}

	result := &BranchAndBoundResult{
		NodesExplored: nodesExplored,
		Log:           logger.Trace(),
	}
	if incumbent != nil {
		result.Feasible = true
		result.BestObjective = incumbent.objective
		result.BestX = namedX(model, incumbent.x)
	}
	if capped {
		return result, newSolveError(IterationCap, nil, "branch-and-bound exceeded max nodes")
	}
	return result, nil
}

// solveNode runs the node-solve pipeline on t in place:
// dual repair if any RHS is negative, then primal optimization to
// optimality.
func solveNode(t *Tableau, cfg Config) error {
	if hasNegativeRHS(t, cfg.ZeroEps) {
		if _, err := DualSimplex(t, cfg); err != nil {
			return err
		}
	}
	if _, err := PrimalSimplex(t, cfg); err != nil {
		return err
	}
	return nil
}

func hasNegativeRHS(t *Tableau, eps float64) bool {
	rhsCol := t.RHSCol()
	for i := 1; i <= t.NRows(); i++ {
		if t.At(i, rhsCol) < -eps {
			return true
		}
	}
	return false
}

// isIntegerFeasible reports whether every integer/binary variable in
// x already takes an integer value, within cfg.IntEps.
func isIntegerFeasible(model *Model, x []float64, cfg Config) bool {
	for i, v := range model.variables {
		if !v.IsInteger() {
			continue
		}
		if i >= len(x) {
			continue
		}
		if math.Abs(x[i]-nearestInt(x[i])) >= cfg.IntEps {
			return false
		}
		if v.kind == BinaryVar {
			if x[i] < -cfg.ZeroEps || x[i] > 1+cfg.ZeroEps {
				return false
			}
		}
	}
	return true
}

// selectBranchVariable implements the branching-variable
// rule: among fractional Integer/Binary variables, the one with the
// largest fractional part, tie-broken by smallest index. Returns -1
// if no variable is fractional.
func selectBranchVariable(model *Model, x []float64, cfg Config) (int, float64) {
	best := -1
	bestFrac := -1.0
	for i, v := range model.variables {
		if !v.IsInteger() || i >= len(x) {
			continue
		}
		f := math.Abs(x[i] - nearestInt(x[i]))
		if f < cfg.IntEps {
			continue
		}
		if f > bestFrac {
			best = i
			bestFrac = f
		}
	}
	return best, bestFrac
}

// namedX maps a full decision-variable vector to a name-keyed map for
// the public result surface.
func namedX(model *Model, x []float64) map[string]float64 {
	out := make(map[string]float64, len(model.variables))
	for i, v := range model.variables {
		if i < len(x) {
			out[v.name] = x[i]
		}
	}
	return out
}
