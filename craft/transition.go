package craft

import (
	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/effects"
	"github.com/rooroodev/raphael-go/settings"
)

// CanUseAction reports whether a's precondition holds in state under s,
// given the crafting-turn condition cond. It mirrors the original
// implementation's can_use_action / required_combo checks; UseAction calls
// it first and returns (SimulationState{}, Invalid) if it fails.
func CanUseAction(state SimulationState, a action.Action, cond action.Condition, s settings.Settings) bool {
	if !s.AllowedActions.Contains(a) {
		return false
	}
	if s.JobLevel < uint8(action.MinLevel(a)) {
		return false
	}
	if rc := action.RequiredCombo(a); rc != action.ComboNone && state.Effects.Combo() != uint8(rc) {
		return false
	}
	if action.CPCost(a, action.Combo(state.Effects.Combo())) > int(state.CP) {
		return false
	}
	if s.BackloadProgress {
		if action.ProgressActions.Contains(a) && !state.Effects.AllowProgressActions() {
			return false
		}
		if action.QualityActions.Contains(a) && !state.Effects.AllowQualityActions() {
			return false
		}
	}

	switch a {
	case action.ByregotsBlessing:
		if state.Effects.InnerQuiet() == 0 {
			return false
		}
	case action.PrudentSynthesis, action.PrudentTouch:
		if state.Effects.WasteNot() > 0 {
			return false
		}
	case action.Groundwork:
		if action.DurabilityCost(a, state.Effects) > int(state.Durability) {
			return false
		}
	case action.TrainedFinesse:
		if state.Effects.InnerQuiet() != effects.MaxInnerQuiet {
			return false
		}
	case action.IntensiveSynthesis, action.PreciseTouch, action.TricksOfTheTrade:
		if cond != action.Good && cond != action.Excellent && !state.Effects.HeartAndSoulActive() {
			return false
		}
	case action.TrainedPerfection:
		if !state.Effects.TrainedPerfectionAvailable() {
			return false
		}
	case action.HeartAndSoul:
		if !state.Effects.HeartAndSoulAvailable() {
			return false
		}
	case action.QuickInnovation:
		if !state.Effects.QuickInnovationAvailable() {
			return false
		}
	}

	return true
}

// UseAction resolves one turn of crafting: state under configuration s, the
// action a, and the turn's crafting condition cond. It implements spec
// §4.B's nine-step ordering exactly:
//
//  1. Deduct CP and durability cost.
//  2. Apply Progress increase; clear Muscle Memory if it fired.
//  3. Apply Quality increase (split under adversarial mode); clear Great
//     Strides if it fired, grow Inner Quiet.
//  4. Check Completed (Progress target reached).
//  5. Check Failed (Durability exhausted).
//  6. Clear Manipulation if this action was Manipulation itself finishing.
//  7. Restore durability if Manipulation is active.
//  8. Tick every duration counter down by one.
//  9. Apply action-specific effect writes (buffs granted, single-use flags
//     consumed, combo state advanced).
//
// A failed precondition returns (SimulationState{}, Invalid); the returned
// state must be ignored in that case.
func UseAction(state SimulationState, a action.Action, cond action.Condition, s settings.Settings) (SimulationState, Status) {
	if !CanUseAction(state, a, cond, s) {
		return SimulationState{}, Invalid
	}

	next := state
	e := next.Effects

	usedHeartAndSoulGuard := e.HeartAndSoulActive() && cond != action.Good && cond != action.Excellent &&
		(a == action.IntensiveSynthesis || a == action.PreciseTouch || a == action.TricksOfTheTrade)
	wasTrainedPerfectionActive := e.TrainedPerfectionActive()

	// 1) Deduct CP and durability.
	next.CP -= uint16(action.CPCost(a, action.Combo(e.Combo())))
	durabilityCost := action.DurabilityCost(a, e)
	if durabilityCost >= int(next.Durability) {
		next.Durability = 0
	} else {
		next.Durability -= uint16(durabilityCost)
	}

	// 2) Progress.
	progressGain := action.ProgressIncrease(int(s.BaseProgress), a, e)
	if progressGain > 0 {
		next.Progress += progressGain
		e = e.WithMuscleMemory(0)
	}

	// 3) Quality.
	qualityGain := action.QualityIncrease(int(s.BaseQuality), a, e)
	if qualityGain > 0 {
		if s.Adversarial {
			reliable := uint32(float64(qualityGain) * action.AdversarialReliability)
			next.UnreliableQuality += qualityGain - reliable
			qualityGain = reliable
		}
		next.Quality += qualityGain
		e = e.WithGreatStrides(0)
		if s.JobLevel >= 11 {
			e = e.WithInnerQuiet(e.InnerQuiet() + action.InnerQuietGain(a))
		}
	}
	if a == action.ByregotsBlessing {
		e = e.WithInnerQuiet(0)
	}

	// 4) Completed.
	status := InProgress
	if next.Progress >= s.MaxProgress {
		status = Completed
	}

	// 5) Failed.
	if status == InProgress && next.Durability == 0 {
		status = Failed
	}

	// 6) Manipulation clearing itself.
	if a == action.Manipulation {
		e = e.WithManipulation(0)
	}

	// 7) Manipulation restores durability.
	if e.Manipulation() > 0 {
		next.Durability = minU16(next.Durability+5, s.MaxDurability)
	}

	// 8) Tick every counter down by one.
	e = e.TickDown()

	// 9) Action-specific effect writes.
	switch a {
	case action.MuscleMemory:
		e = e.WithMuscleMemory(effects.MaxMuscleMemory)
	case action.GreatStrides:
		e = e.WithGreatStrides(effects.MaxGreatStrides)
	case action.Veneration:
		e = e.WithVeneration(effects.MaxVeneration)
	case action.Innovation:
		e = e.WithInnovation(effects.MaxInnovation)
	case action.QuickInnovation:
		e = e.WithInnovation(1)
		e = e.WithQuickInnovationAvailable(false)
	case action.WasteNot:
		e = e.WithWasteNot(4)
	case action.WasteNot2:
		e = e.WithWasteNot(effects.MaxWasteNot)
	case action.Manipulation:
		e = e.WithManipulation(effects.MaxManipulation)
	case action.MasterMend:
		next.Durability = minU16(next.Durability+30, s.MaxDurability)
	case action.ImmaculateMend:
		next.Durability = s.MaxDurability
	case action.TricksOfTheTrade:
		next.CP = minU16(next.CP+20, s.MaxCP)
	case action.TrainedPerfection:
		e = e.WithTrainedPerfectionActive(true)
		e = e.WithTrainedPerfectionAvailable(false)
	case action.HeartAndSoul:
		e = e.WithHeartAndSoulActive(true)
		e = e.WithHeartAndSoulAvailable(false)
	}

	if wasTrainedPerfectionActive && a != action.TrainedPerfection {
		e = e.WithTrainedPerfectionActive(false)
	}
	if usedHeartAndSoulGuard {
		e = e.WithHeartAndSoulActive(false)
		e = e.WithAdversarialGuard(true)
	}

	if rc := action.GrantsCombo(a); rc != action.ComboNone {
		e = e.WithCombo(uint8(rc))
	} else {
		e = e.WithCombo(uint8(action.ComboNone))
	}

	if s.BackloadProgress {
		if progressGain > 0 {
			e = e.WithAllowQualityActions(false)
		}
		if qualityGain > 0 {
			e = e.WithAllowProgressActions(false)
		}
	}

	next.Effects = e
	return next, status
}

func minU16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}
