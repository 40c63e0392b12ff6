// Package action defines the closed crafting-action enumeration, the
// Condition under which an action resolves, and the pure per-action
// cost/yield functions that the simulator (package craft) composes into a
// state transition.
//
// Overview:
//
//   - Action is a closed set of 31 crafting abilities (see the enumeration
//     below). Every solver component that needs to reason about "which
//     actions exist" imports this package and nothing else.
//   - ActionMask is a bitset over Action, used for Settings.AllowedActions
//     and for the fixed SEARCH_ACTIONS subset the macro solver expands.
//   - CPCost, DurabilityCost, ProgressIncrease and QualityIncrease are pure
//     functions of the action and its current combo, effects or base
//     potency; they carry no state of their own and never mutate their
//     arguments.
//
// Action data (efficiency percentages, CP costs, durability costs) is
// fixed game data, hardcoded here the same way the upstream crate bakes it
// into its action table; it is not configuration and is not read from any
// external source.
package action
