// Package core implements the numerical core of a Linear and
// Mixed-Integer Linear Programming solver: a tableau-based primal
// simplex, a dual simplex for repairing infeasible right-hand sides, a
// branch-and-bound driver with warm-started child tableaux, a Gomory
// cutting-plane loop, and a specialized binary-knapsack branch-and-bound.
//
// The package consumes a Model built with the fluent builder API in
// model.go and returns iteration histories and final solutions. Textual
// parsing, report rendering, and sensitivity analysis are not part of
// this package.
package core
