// Package raphael solves FFXIV-style crafting rotations: given a crafter's
// resource budget and a recipe's targets (package settings), it finds the
// sequence of actions that completes the craft with the highest Quality
// reachable.
//
// 🔧 What is raphael-go?
//
//	A pure-Go crafting-rotation solver built from:
//
//	  • A full-fidelity turn simulator with a single transition function
//	  • A reachability pruner that drops branches that can never complete
//	  • An admissible Quality upper-bound solver used to prune the search
//	  • A best-first macro search over both
//
// Under the hood, everything is organized under focused subpackages:
//
//	action/     — closed action enumeration, costs and yields
//	effects/    — bit-packed buff/status counters
//	settings/   — immutable crafter/recipe configuration
//	craft/      — full-fidelity simulation and its transition function
//	finish/     — reachability pruner: can this state still complete?
//	qualityub/  — admissible Quality upper bound per state
//	macro/      — best-first search over the two solvers above
//
// Solve is the only entry point most callers need; the subpackages remain
// importable directly for callers that want to drive the search loop
// themselves (a REPL, a step-by-step UI) instead of taking the packaged
// result.
//
//	go get github.com/rooroodev/raphael-go
package raphael
