package effects

// Effects is a bit-packed record of every buff counter and flag that can be
// active on a crafting state, packed into a single uint64 so it remains
// cheap to copy, compare, and hash. Effects is a value type: every mutator
// below returns a new Effects rather than mutating in place.
type Effects uint64

// Saturation maxima for the seven duration counters (spec §3).
const (
	MaxInnerQuiet   = 10
	MaxWasteNot     = 8
	MaxInnovation   = 4
	MaxVeneration   = 4
	MaxGreatStrides = 3
	MaxMuscleMemory = 5
	MaxManipulation = 8
)

// Bit layout: seven saturating counters, eight boolean flags, then the
// 3-bit Combo value. Each width is the fewest bits that hold its maximum
// above, and set clamps every value to its field width, so a write can never
// overflow into a neighbor.
const (
	shiftInnerQuiet   = 0
	widthInnerQuiet   = 4
	shiftWasteNot     = shiftInnerQuiet + widthInnerQuiet
	widthWasteNot     = 4
	shiftInnovation   = shiftWasteNot + widthWasteNot
	widthInnovation   = 3
	shiftVeneration   = shiftInnovation + widthInnovation
	widthVeneration   = 3
	shiftGreatStrides = shiftVeneration + widthVeneration
	widthGreatStrides = 2
	shiftMuscleMemory = shiftGreatStrides + widthGreatStrides
	widthMuscleMemory = 3
	shiftManipulation = shiftMuscleMemory + widthMuscleMemory
	widthManipulation = 4

	shiftFlags = shiftManipulation + widthManipulation
	widthFlags = 8

	shiftCombo = shiftFlags + widthFlags
	widthCombo = 3
)

// Flag bit indices within the 8-bit flags field.
const (
	flagTrainedPerfectionAvailable = iota
	flagTrainedPerfectionActive
	flagHeartAndSoulAvailable
	flagHeartAndSoulActive
	flagQuickInnovationAvailable
	flagAdversarialGuard
	flagAllowQualityActions
	flagAllowProgressActions
)

func get(e Effects, shift, width uint) uint64 {
	mask := uint64(1)<<width - 1
	return (uint64(e) >> shift) & mask
}

func set(e Effects, shift, width uint, v uint64) Effects {
	mask := uint64(1)<<width - 1
	v = min64(v, mask)
	cleared := uint64(e) &^ (mask << shift)
	return Effects(cleared | (v << shift))
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func saturate(v int, max int) uint64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return uint64(max)
	}
	return uint64(v)
}

// InnerQuiet returns the current Inner Quiet stack count (0..=10).
func (e Effects) InnerQuiet() int { return int(get(e, shiftInnerQuiet, widthInnerQuiet)) }

// WithInnerQuiet returns a copy with Inner Quiet saturated to v.
func (e Effects) WithInnerQuiet(v int) Effects {
	return set(e, shiftInnerQuiet, widthInnerQuiet, saturate(v, MaxInnerQuiet))
}

// WasteNot returns the remaining Waste Not duration (0..=8).
func (e Effects) WasteNot() int { return int(get(e, shiftWasteNot, widthWasteNot)) }

// WithWasteNot returns a copy with Waste Not saturated to v.
func (e Effects) WithWasteNot(v int) Effects {
	return set(e, shiftWasteNot, widthWasteNot, saturate(v, MaxWasteNot))
}

// Innovation returns the remaining Innovation duration (0..=4).
func (e Effects) Innovation() int { return int(get(e, shiftInnovation, widthInnovation)) }

// WithInnovation returns a copy with Innovation saturated to v.
func (e Effects) WithInnovation(v int) Effects {
	return set(e, shiftInnovation, widthInnovation, saturate(v, MaxInnovation))
}

// Veneration returns the remaining Veneration duration (0..=4).
func (e Effects) Veneration() int { return int(get(e, shiftVeneration, widthVeneration)) }

// WithVeneration returns a copy with Veneration saturated to v.
func (e Effects) WithVeneration(v int) Effects {
	return set(e, shiftVeneration, widthVeneration, saturate(v, MaxVeneration))
}

// GreatStrides returns the remaining Great Strides duration (0..=3).
func (e Effects) GreatStrides() int { return int(get(e, shiftGreatStrides, widthGreatStrides)) }

// WithGreatStrides returns a copy with Great Strides saturated to v.
func (e Effects) WithGreatStrides(v int) Effects {
	return set(e, shiftGreatStrides, widthGreatStrides, saturate(v, MaxGreatStrides))
}

// MuscleMemory returns the remaining Muscle Memory duration (0..=5).
func (e Effects) MuscleMemory() int { return int(get(e, shiftMuscleMemory, widthMuscleMemory)) }

// WithMuscleMemory returns a copy with Muscle Memory saturated to v.
func (e Effects) WithMuscleMemory(v int) Effects {
	return set(e, shiftMuscleMemory, widthMuscleMemory, saturate(v, MaxMuscleMemory))
}

// Manipulation returns the remaining Manipulation duration (0..=8).
func (e Effects) Manipulation() int { return int(get(e, shiftManipulation, widthManipulation)) }

// WithManipulation returns a copy with Manipulation saturated to v.
func (e Effects) WithManipulation(v int) Effects {
	return set(e, shiftManipulation, widthManipulation, saturate(v, MaxManipulation))
}

func (e Effects) flag(bit uint) bool {
	return get(e, shiftFlags+bit, 1) != 0
}

func (e Effects) withFlag(bit uint, v bool) Effects {
	val := uint64(0)
	if v {
		val = 1
	}
	return set(e, shiftFlags+bit, 1, val)
}

// TrainedPerfectionAvailable reports whether Trained Perfection can still
// be used this craft (single-use per craft).
func (e Effects) TrainedPerfectionAvailable() bool { return e.flag(flagTrainedPerfectionAvailable) }

// WithTrainedPerfectionAvailable returns a copy with the flag set to v.
func (e Effects) WithTrainedPerfectionAvailable(v bool) Effects {
	return e.withFlag(flagTrainedPerfectionAvailable, v)
}

// TrainedPerfectionActive reports whether the next action's durability
// cost is waived by Trained Perfection.
func (e Effects) TrainedPerfectionActive() bool { return e.flag(flagTrainedPerfectionActive) }

// WithTrainedPerfectionActive returns a copy with the flag set to v.
func (e Effects) WithTrainedPerfectionActive(v bool) Effects {
	return e.withFlag(flagTrainedPerfectionActive, v)
}

// HeartAndSoulAvailable reports whether Heart and Soul can still be used.
func (e Effects) HeartAndSoulAvailable() bool { return e.flag(flagHeartAndSoulAvailable) }

// WithHeartAndSoulAvailable returns a copy with the flag set to v.
func (e Effects) WithHeartAndSoulAvailable(v bool) Effects {
	return e.withFlag(flagHeartAndSoulAvailable, v)
}

// HeartAndSoulActive reports whether the next Condition-gated action is
// treated as Good/Excellent by the guard.
func (e Effects) HeartAndSoulActive() bool { return e.flag(flagHeartAndSoulActive) }

// WithHeartAndSoulActive returns a copy with the flag set to v.
func (e Effects) WithHeartAndSoulActive(v bool) Effects {
	return e.withFlag(flagHeartAndSoulActive, v)
}

// QuickInnovationAvailable reports whether Quick Innovation can still be
// used this craft.
func (e Effects) QuickInnovationAvailable() bool { return e.flag(flagQuickInnovationAvailable) }

// WithQuickInnovationAvailable returns a copy with the flag set to v.
func (e Effects) WithQuickInnovationAvailable(v bool) Effects {
	return e.withFlag(flagQuickInnovationAvailable, v)
}

// AdversarialGuard marks that the current Condition precondition was
// satisfied pessimistically (via a guard, not a guaranteed roll). Package
// craft sets it when Heart and Soul's guard is spent; no package reads it,
// and the adversarial quality split routes a fixed fraction of every gain
// (action.AdversarialReliability) into UnreliableQuality regardless of it.
func (e Effects) AdversarialGuard() bool { return e.flag(flagAdversarialGuard) }

// WithAdversarialGuard returns a copy with the flag set to v.
func (e Effects) WithAdversarialGuard(v bool) Effects {
	return e.withFlag(flagAdversarialGuard, v)
}

// AllowQualityActions is the backload_progress latch (spec §9 Open
// Question): false once progress-only actions have closed off quality
// actions for the remainder of the craft.
func (e Effects) AllowQualityActions() bool { return e.flag(flagAllowQualityActions) }

// WithAllowQualityActions returns a copy with the flag set to v.
func (e Effects) WithAllowQualityActions(v bool) Effects {
	return e.withFlag(flagAllowQualityActions, v)
}

// AllowProgressActions is the backload_progress latch's mirror image.
func (e Effects) AllowProgressActions() bool { return e.flag(flagAllowProgressActions) }

// WithAllowProgressActions returns a copy with the flag set to v.
func (e Effects) WithAllowProgressActions(v bool) Effects {
	return e.withFlag(flagAllowProgressActions, v)
}

// Combo reports the active combo chain as a small integer (0=None,
// 1=SynthesisBegin, 2=BasicTouch, 3=StandardTouch, 4=AdvancedTouch); see
// package action for the named constants, imported by callers to avoid a
// dependency cycle here.
func (e Effects) Combo() uint8 { return uint8(get(e, shiftCombo, widthCombo)) }

// WithCombo returns a copy with Combo set to v.
func (e Effects) WithCombo(v uint8) Effects {
	return set(e, shiftCombo, widthCombo, uint64(v))
}

// TickDown advances every duration counter down by one, saturating at
// zero, per spec §4.A ("effects tick down by 1 (saturating at 0)").
func (e Effects) TickDown() Effects {
	e = e.WithInnerQuiet(e.InnerQuiet()) // unaffected; kept for symmetry/documentation
	e = e.WithWasteNot(dec(e.WasteNot()))
	e = e.WithInnovation(dec(e.Innovation()))
	e = e.WithVeneration(dec(e.Veneration()))
	e = e.WithGreatStrides(dec(e.GreatStrides()))
	e = e.WithMuscleMemory(dec(e.MuscleMemory()))
	e = e.WithManipulation(dec(e.Manipulation()))
	return e
}

func dec(v int) int {
	if v <= 0 {
		return 0
	}
	return v - 1
}

// Default returns the zero-value Effects with every single-use capability
// marked available and both backload_progress latches open, the starting
// point for any new craft (spec §3 "Lifecycles").
func Default() Effects {
	var e Effects
	e = e.WithTrainedPerfectionAvailable(true)
	e = e.WithHeartAndSoulAvailable(true)
	e = e.WithQuickInnovationAvailable(true)
	e = e.WithAllowQualityActions(true)
	e = e.WithAllowProgressActions(true)
	return e
}
