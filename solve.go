package raphael

import (
	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/craft"
	"github.com/rooroodev/raphael-go/macro"
	"github.com/rooroodev/raphael-go/settings"
)

// Solve finds the action sequence that completes a craft configured by s
// with the highest reachable final total Quality (guaranteed Quality plus
// any UnreliableQuality banked under adversarial mode), starting from a
// fresh craft (full CP and Durability budget, no buffs active). It returns
// (nil, 0, false) if s.MaxProgress cannot be reached at all under s's
// resource budget and allowed actions.
func Solve(s settings.Settings) ([]action.Action, uint32, bool) {
	solver := macro.New(s)
	initial := craft.New(s.MaxCP, s.MaxDurability)

	result, ok := solver.Solve(initial)
	if !ok {
		return nil, 0, false
	}
	return result.Actions, result.Quality, true
}

// SolveFrom is Solve for a caller-supplied starting state, useful for
// resuming a search partway through a craft (e.g. after a fixed opener has
// already been played) without re-deriving it from scratch.
func SolveFrom(s settings.Settings, initial craft.SimulationState) ([]action.Action, uint32, bool) {
	solver := macro.New(s)
	result, ok := solver.Solve(initial)
	if !ok {
		return nil, 0, false
	}
	return result.Actions, result.Quality, true
}
