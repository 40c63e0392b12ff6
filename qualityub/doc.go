// Package qualityub implements the Quality Upper-Bound solver (spec §4.E):
// for a reduced crafting state, the largest Quality any continuation could
// possibly reach. The macro solver uses this value to prune a branch the
// moment its bound falls below the best Quality already found, the same
// role the Held-Karp 1-tree bound plays for lvlath's TSP branch-and-bound
// engine.
//
// The bound is deliberately loose in one respect and tight in the others:
// it drops the requirement that the craft also finish Progress (an
// admissible relaxation — dropping a constraint can only raise the true
// optimum, never lower it below what the bound reports) so that the whole
// CP and Durability budget can be spent purely chasing Quality. Durability
// is folded into an equivalent CP budget once, up front, at the cheapest
// real exchange rate the action table offers (Manipulation's), so the
// reduced state carries one spendable resource instead of two. See
// DESIGN.md for why this trade is judged acceptable for this solver rather
// than a formally tight bound.
package qualityub
