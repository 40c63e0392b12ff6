package qualityub

import (
	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/craft"
	"github.com/rooroodev/raphael-go/effects"
)

// manipulationCPPerDurability is the cheapest CP-to-durability exchange rate
// in the action table: Manipulation spends 96 CP to restore 5 durability a
// turn for 8 turns, 40 durability total. Folding Durability into Effective
// CP at this rate means the reduced state can never be charged more CP for
// a point of durability than the cheapest real way to buy it, which is what
// keeps the fold itself from making the bound pessimistic.
const manipulationCPPerDurability = 96.0 / 40.0

// maxCompressedUnreliableQuality caps the compressed bucket the same way
// every other saturating field in this reduction is capped, so a pathologically
// large banked UnreliableQuality cannot grow the key space unboundedly.
const maxCompressedUnreliableQuality = 255

// State is the reduced key the Quality Upper-Bound solver memoizes over. It
// keeps every effect that changes how efficiently a future action converts
// budget into Quality, and drops everything about Progress and Durability
// accounting beyond the one folded EffectiveCP dimension (spec §4.E's
// ReducedState: `{ cp, compressed_unreliable_quality, effects }`).
type State struct {
	EffectiveCP uint32
	// CompressedUnreliableQuality is the banked adversarial-mode
	// UnreliableQuality, bucketed by dividing by 2*base_quality and
	// rounding up (spec §4.E move 3). It distinguishes states that differ
	// only in how much pessimistic quality they are already carrying from
	// sharing a memo entry whose future potential was computed without it.
	CompressedUnreliableQuality uint8
	InnerQuiet                  uint8
	Innovation                  uint8
	GreatStrides                uint8 // normalized to 0 or its max: see Reduce
	Combo                       uint8

	TrainedPerfectionAvailable bool
	TrainedPerfectionActive    bool
	HeartAndSoulAvailable      bool
	HeartAndSoulActive         bool
	QuickInnovationAvailable   bool
}

// effectiveCP folds a real CP/Durability pair into the single EffectiveCP
// budget dimension the bound recurses over. This must only ever be applied
// once, to real resource numbers coming out of package craft — never to the
// synthetic, deliberately oversized Durability a reduced State.expand()
// manufactures, or the fold would be applied twice and CP would stop being
// a strictly-decreasing resource.
func effectiveCP(cp uint16, durability uint16) uint32 {
	return uint32(cp) + uint32(float64(durability)*manipulationCPPerDurability)
}

// compressUnreliableQuality buckets unreliableQuality per spec §4.E move 3.
// baseQuality<=0 never occurs for a validated Settings, but is guarded
// against here rather than at every call site.
func compressUnreliableQuality(unreliableQuality uint32, baseQuality int) uint8 {
	if baseQuality <= 0 || unreliableQuality == 0 {
		return 0
	}
	bucket := 2 * uint32(baseQuality)
	compressed := (unreliableQuality + bucket - 1) / bucket // ceiling division
	if compressed > maxCompressedUnreliableQuality {
		return maxCompressedUnreliableQuality
	}
	return uint8(compressed)
}

// Reduce projects a full SimulationState, taken straight from a real craft,
// to the State key the bound recurses over. baseQuality is the craft's
// Settings.BaseQuality, needed to bucket UnreliableQuality.
func Reduce(s craft.SimulationState, baseQuality int) State {
	return stateFrom(effectiveCP(s.CP, s.Durability), compressUnreliableQuality(s.UnreliableQuality, baseQuality), s.Effects)
}

// stateFrom builds a State directly from an already-folded EffectiveCP and a
// compressed-unreliable-quality bucket, without re-deriving either from a
// synthetic SimulationState. The recursive step inside bound() uses this
// instead of Reduce so it never re-folds the oversized synthetic Durability
// State.expand() hands back.
func stateFrom(effectiveCP uint32, compressedUnreliableQuality uint8, e effects.Effects) State {
	gs := uint8(0)
	if e.GreatStrides() > 0 {
		gs = effects.MaxGreatStrides
	}
	return State{
		EffectiveCP:                 effectiveCP,
		CompressedUnreliableQuality: compressedUnreliableQuality,
		InnerQuiet:                  uint8(e.InnerQuiet()),
		Innovation:                  uint8(e.Innovation()),
		GreatStrides:                gs,
		Combo:                       e.Combo(),
		TrainedPerfectionAvailable:  e.TrainedPerfectionAvailable(),
		TrainedPerfectionActive:     e.TrainedPerfectionActive(),
		HeartAndSoulAvailable:       e.HeartAndSoulAvailable(),
		HeartAndSoulActive:          e.HeartAndSoulActive(),
		QuickInnovationAvailable:    e.QuickInnovationAvailable(),
	}
}

// durabilityBudget is large enough that no quality-only action sequence can
// exhaust it; the bound tracks resource cost through EffectiveCP instead.
const durabilityBudget = 60000

// expand reconstructs a synthetic SimulationState to drive craft.UseAction
// during the bound's recursion. Its CP is clamped to the EffectiveCP budget
// (capped at uint16's range) and its Durability is the oversized
// durabilityBudget constant — the recursive step must never fold this
// synthetic Durability back into EffectiveCP (see stateFrom).
func (st State) expand() craft.SimulationState {
	e := effects.Default()
	e = e.WithInnerQuiet(int(st.InnerQuiet))
	e = e.WithInnovation(int(st.Innovation))
	e = e.WithGreatStrides(int(st.GreatStrides))
	e = e.WithCombo(st.Combo)
	e = e.WithTrainedPerfectionAvailable(st.TrainedPerfectionAvailable)
	e = e.WithTrainedPerfectionActive(st.TrainedPerfectionActive)
	e = e.WithHeartAndSoulAvailable(st.HeartAndSoulAvailable)
	e = e.WithHeartAndSoulActive(st.HeartAndSoulActive)
	e = e.WithQuickInnovationAvailable(st.QuickInnovationAvailable)
	cp := st.EffectiveCP
	if cp > 65535 {
		cp = 65535
	}
	return craft.SimulationState{
		CP:         uint16(cp),
		Durability: durabilityBudget,
		Effects:    e,
	}
}

// actionCost is the EffectiveCP this action spends, folding its real
// Durability cost in at the same rate the one-time Reduce fold uses. This is
// computed from the action table directly rather than by inspecting a
// synthetic next state, since the synthetic Durability carries no meaningful
// budget information.
func actionCost(a action.Action, e effects.Effects) uint32 {
	cp := action.CPCost(a, action.Combo(e.Combo()))
	dur := action.DurabilityCost(a, e)
	return uint32(cp) + uint32(float64(dur)*manipulationCPPerDurability)
}

// candidateActions is the fixed action set the bound considers: every
// action that can raise Quality, plus the buffs that make a future quality
// action more efficient. Durability-restoring actions (Manipulation, Waste
// Not, Master's Mend...) are deliberately excluded — their entire effect is
// already captured once, up front, by folding Durability into EffectiveCP.
var candidateActions = action.QualityActions.
	With(action.Innovation).
	With(action.GreatStrides).
	With(action.HeartAndSoul).
	With(action.QuickInnovation).
	With(action.TrainedPerfection)
