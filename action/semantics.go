package action

import (
	"github.com/rooroodev/raphael-go/effects"
)

// info is the fixed game-data row for one Action: CP cost, base durability
// cost, progress/quality efficiency (in percent of base_progress/
// base_quality), the combo this action requires to be usable at all, the
// combo state it leaves behind on success, and the job level that unlocks
// it. These numbers are standard, widely published FFXIV crafting-ability
// constants; see SPEC_FULL.md §14.2 for why they are hardcoded rather than
// sourced from spec.md (which treats them as opaque "efficiency(action)").
type info struct {
	cpCost        int
	comboCPCost   int // used instead of cpCost when currentCombo matches discountCombo
	durability    int
	progressPct   int
	qualityPct    int
	requiredCombo Combo
	grantsCombo   Combo
	minLevel      int
	singleUse     bool
}

var table = [numActions]info{
	BasicSynthesis:     {cpCost: 0, durability: 10, progressPct: 120, minLevel: 1},
	CarefulSynthesis:   {cpCost: 7, durability: 10, progressPct: 180, minLevel: 62},
	PrudentSynthesis:   {cpCost: 18, durability: 5, progressPct: 180, minLevel: 88},
	Groundwork:         {cpCost: 18, durability: 20, progressPct: 360, minLevel: 72},
	MuscleMemory:       {cpCost: 6, durability: 10, progressPct: 300, requiredCombo: ComboSynthesisBegin, minLevel: 54},
	IntensiveSynthesis: {cpCost: 6, durability: 10, progressPct: 400, minLevel: 78},
	DelicateSynthesis:  {cpCost: 32, durability: 10, progressPct: 100, qualityPct: 100, minLevel: 76},

	BasicTouch:       {cpCost: 18, durability: 10, qualityPct: 100, grantsCombo: ComboBasicTouch, minLevel: 5},
	StandardTouch:    {cpCost: 32, comboCPCost: 18, durability: 10, qualityPct: 125, grantsCombo: ComboStandardTouch, minLevel: 18},
	AdvancedTouch:    {cpCost: 46, comboCPCost: 18, durability: 10, qualityPct: 150, requiredCombo: ComboStandardTouch, minLevel: 84},
	ByregotsBlessing: {cpCost: 24, durability: 10, qualityPct: 100, minLevel: 50},
	PreciseTouch:     {cpCost: 18, durability: 10, qualityPct: 150, minLevel: 53},
	PrudentTouch:     {cpCost: 25, durability: 5, qualityPct: 100, minLevel: 66},
	PreparatoryTouch: {cpCost: 40, durability: 20, qualityPct: 200, minLevel: 55},
	TrainedFinesse:   {cpCost: 32, durability: 0, qualityPct: 100, minLevel: 90},
	Reflect:          {cpCost: 6, durability: 10, qualityPct: 100, requiredCombo: ComboSynthesisBegin, minLevel: 69},
	RefinedTouch:     {cpCost: 24, durability: 10, qualityPct: 100, requiredCombo: ComboBasicTouch, minLevel: 92},

	ImmaculateMend: {cpCost: 112, durability: 0, minLevel: 86},
	MasterMend:     {cpCost: 88, durability: 0, minLevel: 7},
	Manipulation:   {cpCost: 96, durability: 0, minLevel: 65},
	WasteNot:       {cpCost: 56, durability: 0, minLevel: 15},
	WasteNot2:      {cpCost: 98, durability: 0, minLevel: 47},
	Veneration:     {cpCost: 18, durability: 0, minLevel: 15},
	Innovation:     {cpCost: 18, durability: 0, minLevel: 26},
	GreatStrides:   {cpCost: 32, durability: 0, minLevel: 21},

	TrainedPerfection: {cpCost: 1, durability: 0, singleUse: true, minLevel: 85},
	TricksOfTheTrade:  {cpCost: 0, durability: 0, minLevel: 13},
	Observe:           {cpCost: 7, durability: 0, minLevel: 13},
	HeartAndSoul:      {cpCost: 0, durability: 0, singleUse: true, minLevel: 86},
	QuickInnovation:   {cpCost: 0, durability: 0, singleUse: true, minLevel: 96},
	TrainedEye:        {cpCost: 250, durability: 0, requiredCombo: ComboSynthesisBegin, singleUse: true, minLevel: 80},
}

// AdversarialReliability is the fraction of a quality gain that is treated
// as guaranteed under adversarial mode; the remainder is routed to
// unreliable_quality by the caller (package craft). See SPEC_FULL.md §14.1
// for why this is a documented approximation rather than a literal port.
const AdversarialReliability = 0.75

// MinLevel returns the job level that unlocks a.
func MinLevel(a Action) int { return table[a].minLevel }

// SingleUse reports whether a may only be used once per craft.
func SingleUse(a Action) bool { return table[a].singleUse }

// RequiredCombo returns the Combo state a requires to be usable, or
// ComboNone if a has no combo precondition.
func RequiredCombo(a Action) Combo { return table[a].requiredCombo }

// GrantsCombo returns the Combo state a leaves behind on success.
func GrantsCombo(a Action) Combo { return table[a].grantsCombo }

// CPCost computes an action's CP cost given the current combo state. Combo
// discounts (StandardTouch after BasicTouch, AdvancedTouch after
// StandardTouch) are the only state-dependent cost in the table; every
// other action's cost is fixed.
func CPCost(a Action, currentCombo Combo) int {
	t := table[a]
	if t.comboCPCost != 0 && currentCombo == discountCombo(a) {
		return t.comboCPCost
	}
	return t.cpCost
}

// discountCombo returns the combo state that triggers a's discounted CP
// cost. Only StandardTouch and AdvancedTouch have one; both key off "the
// previous action continued the Basic/Standard Touch chain".
func discountCombo(a Action) Combo {
	switch a {
	case StandardTouch:
		return ComboBasicTouch
	case AdvancedTouch:
		return ComboStandardTouch
	default:
		return ComboNone
	}
}

// DurabilityCost computes an action's durability cost after Waste Not and
// Trained Perfection modifiers (spec §4.A): halved while waste_not>0,
// zeroed while trained_perfection_active.
func DurabilityCost(a Action, e effects.Effects) int {
	base := table[a].durability
	if base == 0 {
		return 0
	}
	if e.TrainedPerfectionActive() {
		return 0
	}
	if e.WasteNot() > 0 {
		return (base + 1) / 2 // FFXIV rounds durability-cost halving up
	}
	return base
}

// progressMultiplier folds in Veneration/Muscle Memory and qualityMultiplier
// folds in Innovation/Great Strides, per spec §4.A.
func progressMultiplier(e effects.Effects) float64 {
	m := 1.0
	if e.Veneration() > 0 {
		m += 0.5
	}
	if e.MuscleMemory() > 0 {
		m += 1.0
	}
	return m
}

func qualityMultiplier(e effects.Effects) float64 {
	m := 1.0
	if e.Innovation() > 0 {
		m += 0.5
	}
	if e.GreatStrides() > 0 {
		m += 1.0
	}
	return m
}

// ProgressIncrease computes the floored Progress yield of a (spec §4.A).
// base_progress/base_quality come from Settings; this package has no
// dependency on package settings to avoid an import cycle, so callers pass
// the two scalars directly.
func ProgressIncrease(baseProgress int, a Action, e effects.Effects) uint32 {
	pct := table[a].progressPct
	if pct == 0 {
		return 0
	}
	v := float64(baseProgress) * float64(pct) / 100.0 * progressMultiplier(e)
	return uint32(v)
}

// QualityIncrease computes the floored Quality yield of a (spec §4.A),
// before any adversarial unreliable-quality split.
func QualityIncrease(baseQuality int, a Action, e effects.Effects) uint32 {
	pct := table[a].qualityPct
	if pct == 0 {
		return 0
	}
	iq := 1.0 + 0.1*float64(e.InnerQuiet())
	v := float64(baseQuality) * float64(pct) / 100.0 * iq * qualityMultiplier(e)
	return uint32(v)
}

// InnerQuietGain returns how much Inner Quiet a successful quality gain
// from a adds, per spec §4.B step 3 (job_level gate applied by the
// caller).
func InnerQuietGain(a Action) int {
	switch a {
	case Reflect, PreciseTouch, PreparatoryTouch:
		return 2
	default:
		return 1
	}
}
