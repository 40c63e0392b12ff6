// Package effects implements the bit-packed buff/status-counter record
// carried by every crafting state (spec §3 Effects).
//
// All seven duration counters plus eight boolean flags plus the active
// Combo are packed into a single uint64 so that a craft.SimulationState
// and the macro solver's visited-state key both hash and compare cheaply — the same
// motivation that drives zurichess and other bitboard-based engines to
// pack per-square state into one machine word rather than a struct of
// bools. Every setter saturates at the documented maximum instead of
// wrapping or panicking, matching the "saturating" semantics spec §3
// requires.
package effects
