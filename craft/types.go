package craft

import (
	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/effects"
)

// Status classifies the outcome of a single use_action transition (spec
// §4.B). It plays the role the original implementation's State enum plays:
// InProgress carries a live SimulationState forward; Completed and Failed
// are terminal; Invalid means the action's precondition was not met and the
// returned SimulationState must not be used.
type Status uint8

const (
	InProgress Status = iota
	Completed
	Failed
	Invalid
)

// String returns the status's canonical name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	case Invalid:
		return "Invalid"
	default:
		return "Status(?)"
	}
}

// SimulationState is the full-fidelity crafting state (spec §3): the exact
// resource counters, cumulative yields and buff effects a real craft tracks
// turn by turn. Every other package's reduced state is a projection of this
// one.
type SimulationState struct {
	CP                uint16
	Durability        uint16
	Progress          uint32
	Quality           uint32
	UnreliableQuality uint32 // spec §4.E: quality routed here under adversarial mode
	Effects           effects.Effects
}

// TotalQuality returns the sum of the guaranteed Quality and the pessimistic
// remainder banked in UnreliableQuality (always zero outside adversarial
// mode). Callers reporting a craft's achieved Quality use this rather than
// Quality alone, so adversarial-mode gains are not silently dropped.
func (s SimulationState) TotalQuality() uint32 {
	return s.Quality + s.UnreliableQuality
}

// New returns the initial SimulationState for a craft with the given
// resource budget, primed so the first action may use a SynthesisBegin-
// gated opener (MuscleMemory, Reflect, TrainedEye).
func New(maxCP, maxDurability uint16) SimulationState {
	return SimulationState{
		CP:         maxCP,
		Durability: maxDurability,
		Effects:    effects.Default().WithCombo(uint8(action.ComboSynthesisBegin)),
	}
}
