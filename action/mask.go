package action

// ActionMask is a bitset over the closed Action enumeration. It backs
// Settings.AllowedActions (spec §3) and the macro solver's fixed
// SEARCH_ACTIONS subset (spec §4.F). A uint32 comfortably covers the
// 31-action enumeration with room to spare.
//
// Complexity: every method below is O(1) time, O(1) space.
type ActionMask uint32

// NoActions is the empty mask.
const NoActions ActionMask = 0

// AllActions is a mask containing every Action in the enumeration.
func AllActions() ActionMask {
	var m ActionMask
	for i := 0; i < numActions; i++ {
		m = m.With(Action(i))
	}
	return m
}

// With returns a copy of m with a set.
func (m ActionMask) With(a Action) ActionMask {
	return m | (1 << uint(a))
}

// Without returns a copy of m with a cleared.
func (m ActionMask) Without(a Action) ActionMask {
	return m &^ (1 << uint(a))
}

// Contains reports whether a is present in m.
func (m ActionMask) Contains(a Action) bool {
	return m&(1<<uint(a)) != 0
}

// Union returns the bitwise union of m and other.
func (m ActionMask) Union(other ActionMask) ActionMask {
	return m | other
}

// Intersection returns the bitwise intersection of m and other.
func (m ActionMask) Intersection(other ActionMask) ActionMask {
	return m & other
}

// Actions returns the set bits of m as a slice, in enumeration order.
// Complexity: O(numActions).
func (m ActionMask) Actions() []Action {
	out := make([]Action, 0, numActions)
	for i := 0; i < numActions; i++ {
		if a := Action(i); m.Contains(a) {
			out = append(out, a)
		}
	}
	return out
}

// ProgressActions is the subset of Action that can increase Progress.
var ProgressActions = AllActions().Intersection(maskOf(
	BasicSynthesis, CarefulSynthesis, PrudentSynthesis, Groundwork,
	MuscleMemory, IntensiveSynthesis, DelicateSynthesis,
))

// QualityActions is the subset of Action that can increase Quality.
var QualityActions = maskOf(
	BasicTouch, StandardTouch, AdvancedTouch, ByregotsBlessing, PreciseTouch,
	PrudentTouch, PreparatoryTouch, TrainedFinesse, Reflect, RefinedTouch,
	DelicateSynthesis, TrainedEye,
)

// DurabilityActions restore durability or CP rather than Progress/Quality.
var DurabilityActions = maskOf(
	ImmaculateMend, MasterMend, Manipulation, WasteNot, WasteNot2,
	TricksOfTheTrade, TrainedPerfection,
)

// BuffActions apply a status effect without directly moving Progress or
// Quality.
var BuffActions = maskOf(
	Veneration, Innovation, GreatStrides, Observe, HeartAndSoul,
	QuickInnovation,
)

// SearchActions is the union the macro solver expands at every node (spec
// §4.F SEARCH_ACTIONS). The four groups above together cover every action
// in the enumeration, single-use ones included; package craft gates those
// by their availability flags.
var SearchActions = ProgressActions.Union(QualityActions).
	Union(DurabilityActions).Union(BuffActions)

func maskOf(actions ...Action) ActionMask {
	var m ActionMask
	for _, a := range actions {
		m = m.With(a)
	}
	return m
}
