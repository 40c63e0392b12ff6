// Package craft implements the full-fidelity crafting state and its single
// transition function, use_action (spec §4.B), plus the fixed action-combo
// table (spec §4.C) that lets callers treat a short, fixed sequence of
// actions as one atomic search step.
//
// SimulationState is the ground truth every other solver component reduces
// away from: the Finish solver keeps only what bears on reachability, the
// Quality Upper-Bound solver keeps only what bears on an admissible
// quality estimate, and the macro solver's visited map normalizes away
// Quality. package craft owns the one place where every field still
// matters and where the precondition/ordering rules in spec §4.B are
// implemented exactly once.
package craft
