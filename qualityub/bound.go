package qualityub

import (
	"math"

	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/craft"
	"github.com/rooroodev/raphael-go/settings"
)

// boundSettings strips MaxProgress/MaxDurability out of the way so a
// synthetic craft.UseAction call inside the bound never reports Completed
// or Failed for reasons that have nothing to do with Quality.
func boundSettings(s settings.Settings) settings.Settings {
	b := s
	b.MaxProgress = math.MaxUint32
	b.MaxDurability = durabilityBudget
	return b
}

// Solver computes admissible Quality upper bounds for one fixed Settings,
// memoizing one best bound per reduced State across queries the way a
// single lvlath/matrix dense buffer is built once and read many times.
type Solver struct {
	s        settings.Settings
	bs       settings.Settings
	memo     map[State]uint32
	visiting map[State]bool
}

// New returns a Solver for s.
func New(s settings.Settings) *Solver {
	return &Solver{
		s:        s,
		bs:       boundSettings(s),
		memo:     make(map[State]uint32),
		visiting: make(map[State]bool),
	}
}

// Bound returns an admissible upper bound on the additional total Quality
// (reliable plus still-unreliable) state could still accumulate, on top of
// state.TotalQuality() itself.
func (qs *Solver) Bound(state craft.SimulationState) uint32 {
	return qs.bound(Reduce(state, int(qs.s.BaseQuality)))
}

// QUB returns Q̂(state): the admissible upper bound on final Quality,
// capped at the craft's Quality target (spec §8 invariant 2, and golden
// scenario T4's "capped" result). It accounts for UnreliableQuality already
// banked by state, not just the guaranteed Quality counter — an adversarial
// craft's pessimistic remainder is still quality that might be realized, so
// an upper bound must not discard it.
func (qs *Solver) QUB(state craft.SimulationState) uint32 {
	total := state.TotalQuality() + qs.Bound(state)
	if total > qs.s.MaxQuality {
		return qs.s.MaxQuality
	}
	return total
}

// bound computes the admissible upper bound for a reduced key via memoized
// recursion. EffectiveCP is spent directly out of key.EffectiveCP on every
// step (actionCost), never re-derived from the synthetic SimulationState
// expand() manufactures — that state's Durability is a deliberately huge
// placeholder with no real budget meaning, and refolding it would double-
// count the durability-to-CP conversion Reduce already performed once.
func (qs *Solver) bound(key State) uint32 {
	if v, ok := qs.memo[key]; ok {
		return v
	}
	if qs.visiting[key] {
		// A cycle contributes no further guaranteed Quality along this
		// edge; the acyclic path that eventually escapes it still gets
		// explored and memoized normally.
		return 0
	}
	qs.visiting[key] = true

	candidates := candidateActions.Intersection(qs.s.AllowedActions)
	full := key.expand()
	best := uint32(0)
	for _, a := range candidates.Actions() {
		cost := actionCost(a, full.Effects)
		if cost > key.EffectiveCP {
			continue // can't afford this step out of the real folded budget
		}
		next, status := craft.UseAction(full, a, action.Normal, qs.bs)
		if status == craft.Invalid {
			continue
		}
		gain := next.TotalQuality() - full.TotalQuality()
		childKey := stateFrom(key.EffectiveCP-cost, 0, next.Effects)
		rest := qs.bound(childKey)
		if total := gain + rest; total > best {
			best = total
		}
	}

	delete(qs.visiting, key)
	qs.memo[key] = best
	return best
}
