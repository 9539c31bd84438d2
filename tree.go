package core

import (
	"fmt"
	"strings"
)

// bnbDecision is the per-node outcome recorded in a branch-and-bound
// trace.
type bnbDecision string

const (
	decisionRoot               bnbDecision = "root relaxation solved"
	decisionInfeasible         bnbDecision = "LP relaxation infeasible"
	decisionPrunedByBound      bnbDecision = "pruned: no better than incumbent"
	decisionIntegerCandidate   bnbDecision = "integer-feasible"
	decisionNewIncumbent       bnbDecision = "integer-feasible, new incumbent"
	decisionBranching          bnbDecision = "fractional, branching"
	decisionNodeCapReached     bnbDecision = "node cap reached, search truncated"
)

// traceNode is one entry of the branch-and-bound trace log: an
// id/parent pair, the node's solved x/z, and the decision made.
type traceNode struct {
	id       int
	parentID int
	label    string
	depth    int
	z        float64
	x        []float64
	decision bnbDecision
}

// TreeLogger accumulates per-node trace entries in the order nodes are
// solved (depth-first, floor-before-ceil) and renders a human-readable
// log.
type TreeLogger struct {
	order []int
	nodes map[int]*traceNode
}

// NewTreeLogger constructs an empty logger.
func NewTreeLogger() *TreeLogger {
	return &TreeLogger{nodes: make(map[int]*traceNode)}
}

// Record appends one solved node's outcome to the trace.
func (l *TreeLogger) Record(id, parentID int, label string, depth int, z float64, x []float64, decision bnbDecision) {
	n := &traceNode{id: id, parentID: parentID, label: label, depth: depth, z: z, x: x, decision: decision}
	l.nodes[id] = n
	l.order = append(l.order, id)
}

// Trace renders the recorded nodes as an indented, depth-first
// human-readable log, one line per node.
func (l *TreeLogger) Trace() string {
	var b strings.Builder
	for _, id := range l.order {
		n := l.nodes[id]
		indent := strings.Repeat("  ", n.depth)
		fmt.Fprintf(&b, "%s%s: z=%s x=%v -- %s\n", indent, n.label, FormatCell(n.z), n.x, n.decision)
	}
	return b.String()
}
