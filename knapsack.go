package core

import (
	"math"
	"sort"
)

// KnapsackStatus is a knapsack search node's terminal or in-progress
// status.
type KnapsackStatus string

const (
	KnapsackUnsolved   KnapsackStatus = "Unsolved"
	KnapsackBranched   KnapsackStatus = "Branched"
	KnapsackCandidate  KnapsackStatus = "Candidate"
	KnapsackInfeasible KnapsackStatus = "Infeasible"
)

// KnapsackNode is one node of the BnBKnapsack search.
type KnapsackNode struct {
	Label         string
	ParentLabel   string
	Status        KnapsackStatus
	Fixed         map[int]float64
	FractionalVar int // -1 if none
	X             []float64
	Objective     float64
	WeightUsed    float64
	DecisionOrder []int
	RatioRank     []int
}

// KnapsackResult is the result of SolveKnapsack.
type KnapsackResult struct {
	Nodes []*KnapsackNode
	Best  *KnapsackNode

	// NotApplicable, when non-empty, explains why model did not meet
	// the binary-knapsack preconditions; Nodes and Best are unused in
	// that case and no error is returned.
	NotApplicable string
}

// SolveKnapsack runs a specialized binary-knapsack branch-and-bound:
// a greedy profit/weight-ratio LP relaxation at every node, branching
// on the first fractional item.
func SolveKnapsack(model *Model, cfg Config) (*KnapsackResult, error) {
	n := model.NumVars()

	if model.objective != Maximize {
		return &KnapsackResult{NotApplicable: "knapsack requires a maximization objective"}, nil
	}
	if len(model.constraints) != 1 {
		return &KnapsackResult{NotApplicable: "knapsack requires exactly one constraint"}, nil
	}
	cons := model.constraints[0]
	if cons.relation != LessOrEqual {
		return &KnapsackResult{NotApplicable: "knapsack's single constraint must be <="}, nil
	}
	if cons.rhs < 0 {
		return &KnapsackResult{NotApplicable: "knapsack capacity must be non-negative"}, nil
	}
	weights := cons.coefficients(n)
	for _, w := range weights {
		if w < 0 {
			return &KnapsackResult{NotApplicable: "knapsack weights must be non-negative"}, nil
		}
	}
	for _, v := range model.variables {
		if v.kind != BinaryVar {
			return &KnapsackResult{NotApplicable: "knapsack requires every variable to be binary"}, nil
		}
	}

	rank := rankByRatio(model.variables, weights)
	capacity := cons.rhs

	type stackEntry struct {
		label, parentLabel string
		fixed              map[int]float64
		order              []int
	}

	root := stackEntry{label: "Root", parentLabel: ""}
	stack := []stackEntry{root}

	var nodes []*KnapsackNode
	var best *KnapsackNode
	explored := 0

	for len(stack) > 0 && explored < cfg.MaxNodes {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		explored++

		remaining := capacity
		for idx, val := range entry.fixed {
			remaining -= weights[idx] * val
		}

		node := &KnapsackNode{
			Label:         entry.label,
			ParentLabel:   entry.parentLabel,
			Fixed:         entry.fixed,
			FractionalVar: -1,
			DecisionOrder: entry.order,
			RatioRank:     rank,
		}

		if remaining < -cfg.ZeroEps {
			node.Status = KnapsackInfeasible
			nodes = append(nodes, node)
			continue
		}

		x := make([]float64, n)
		for idx, val := range entry.fixed {
			x[idx] = val
		}

		for _, idx := range rank {
			if _, fixed := entry.fixed[idx]; fixed {
				continue
			}
			w := weights[idx]
			if w <= remaining+cfg.ZeroEps {
				x[idx] = 1
				remaining -= w
			} else {
				x[idx] = remaining / w
				node.FractionalVar = idx
				remaining = 0
				break
			}
		}

		node.X = x
		node.Objective = model.ObjectiveValue(x)
		weightUsed := 0.0
		for i, xi := range x {
			weightUsed += weights[i] * xi
		}
		node.WeightUsed = weightUsed

		if node.FractionalVar == -1 {
			node.Status = KnapsackCandidate
			nodes = append(nodes, node)
			if best == nil || node.Objective > best.Objective+cfg.IntEps {
				best = node
			}
			continue
		}

		node.Status = KnapsackBranched
		nodes = append(nodes, node)

		branchVar := node.FractionalVar
		childFixed := func(val float64) map[int]float64 {
			m := make(map[int]float64, len(entry.fixed)+1)
			for k, v := range entry.fixed {
				m[k] = v
			}
			m[branchVar] = val
			return m
		}
		childOrder := append(append([]int(nil), entry.order...), branchVar)

		zeroChild := stackEntry{label: entry.label + ".1", parentLabel: entry.label, fixed: childFixed(0), order: childOrder}
		oneChild := stackEntry{label: entry.label + ".2", parentLabel: entry.label, fixed: childFixed(1), order: childOrder}

		// Push the x=1 branch first so the x=0 branch is explored first,
		// mirroring the general B&B engine's floor-before-ceil ordering.
		stack = append(stack, oneChild, zeroChild)
	}

	result := &KnapsackResult{Nodes: nodes, Best: best}
	if len(stack) > 0 {
		return result, newSolveError(IterationCap, nil, "knapsack search exceeded max nodes")
	}
	return result, nil
}

// rankByRatio sorts variable indices by descending profit/weight
// ratio; a zero weight ranks infinitely high.
func rankByRatio(variables []*Variable, weights []float64) []int {
	idx := make([]int, len(variables))
	ratio := make([]float64, len(variables))
	for i, v := range variables {
		if weights[i] == 0 {
			ratio[i] = math.Inf(1)
		} else {
			ratio[i] = v.coefficient / weights[i]
		}
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return ratio[idx[a]] > ratio[idx[b]]
	})
	return idx
}
