// Package macro implements the best-first macro search (spec §4.F): given
// Settings and an initial SimulationState, find the action sequence that
// reaches Completed with the highest final Quality.
//
// The search is priority-ordered by the Quality Upper-Bound solver's
// estimate for each frontier node — the same role a priority queue keyed by
// tentative distance plays in lvlath's dijkstra package — so the node most
// likely to beat the current best is always expanded next, and the search
// can stop the instant the frontier's best bound can no longer beat the
// incumbent. The Finish Solver is consulted on every child before it is
// even queued: a child that cannot reach Completed is dropped immediately,
// the same hard precondition a branch-and-bound engine like lvlath/tsp's
// applies before spending a queue slot on a branch.
package macro
