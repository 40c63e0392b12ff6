package craft

import "github.com/rooroodev/raphael-go/action"

// ActionCombo is a short, fixed sequence of actions applied atomically: one
// search step in the macro solver can stand for several turns. Grounding
// this in a fixed table (rather than letting the search discover combos
// action-by-action) is spec §4.C's main lever for shrinking the branching
// factor, the same role a precomputed opening book plays in a game-tree
// search.
type ActionCombo struct {
	Actions []action.Action
}

// Single wraps one action as a trivial, length-1 combo.
func Single(a action.Action) ActionCombo {
	return ActionCombo{Actions: []action.Action{a}}
}

// fixedCombos are the multi-action chains worth presenting to the search as
// a single step: each ends in an action that needs the combo state its
// predecessor leaves behind, either for a discounted CP cost (StandardTouch,
// AdvancedTouch) or to be usable at all (AdvancedTouch, RefinedTouch). A
// combo costs and yields exactly what its steps would one by one; it only
// lets the search take the whole chain in one step.
var fixedCombos = []ActionCombo{
	{Actions: []action.Action{action.BasicTouch, action.StandardTouch}},
	{Actions: []action.Action{action.BasicTouch, action.StandardTouch, action.AdvancedTouch}},
	{Actions: []action.Action{action.BasicTouch, action.RefinedTouch}},
}

// AllCombos returns every ActionCombo usable under mask: a Single for every
// allowed action in action.SearchActions, plus each fixedCombos entry whose
// every constituent action is itself allowed.
func AllCombos(mask action.ActionMask) []ActionCombo {
	allowed := action.SearchActions.Intersection(mask)
	out := make([]ActionCombo, 0, len(allowed.Actions())+len(fixedCombos))
	for _, a := range allowed.Actions() {
		out = append(out, Single(a))
	}
	for _, c := range fixedCombos {
		if comboAllowed(c, mask) {
			out = append(out, c)
		}
	}
	return out
}

func comboAllowed(c ActionCombo, mask action.ActionMask) bool {
	for _, a := range c.Actions {
		if !mask.Contains(a) {
			return false
		}
	}
	return true
}

// Len returns the number of turns c consumes.
func (c ActionCombo) Len() int { return len(c.Actions) }
