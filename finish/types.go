package finish

import (
	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/craft"
	"github.com/rooroodev/raphael-go/effects"
)

// State is the reduced key the Finish Solver memoizes over: everything a
// progress-only continuation of a craft can still depend on, and nothing
// that only affects Quality. Two SimulationStates that differ only in
// Quality, UnreliableQuality, Inner Quiet, Innovation or Great Strides
// reduce to the same State and share one reachability answer.
type State struct {
	MissingProgress uint32
	CP              uint16
	Durability      uint16
	Combo           uint8
	Veneration      uint8
	MuscleMemory    uint8
	WasteNot        uint8
	Manipulation    uint8
	TrainedPerfectionAvailable bool
	TrainedPerfectionActive    bool
	HeartAndSoulAvailable      bool
	HeartAndSoulActive         bool
	AllowProgressActions       bool
}

// Reduce projects a full SimulationState down to the State key relevant to
// progress-only reachability, given the craft's Progress target.
func Reduce(s craft.SimulationState, maxProgress uint32) State {
	missing := uint32(0)
	if s.Progress < maxProgress {
		missing = maxProgress - s.Progress
	}
	e := s.Effects
	return State{
		MissingProgress:            missing,
		CP:                         s.CP,
		Durability:                 s.Durability,
		Combo:                      e.Combo(),
		Veneration:                 uint8(e.Veneration()),
		MuscleMemory:               uint8(e.MuscleMemory()),
		WasteNot:                   uint8(e.WasteNot()),
		Manipulation:               uint8(e.Manipulation()),
		TrainedPerfectionAvailable: e.TrainedPerfectionAvailable(),
		TrainedPerfectionActive:    e.TrainedPerfectionActive(),
		HeartAndSoulAvailable:      e.HeartAndSoulAvailable(),
		HeartAndSoulActive:         e.HeartAndSoulActive(),
		AllowProgressActions:       e.AllowProgressActions(),
	}
}

// expand reconstructs enough of a SimulationState from a reduced State to
// drive craft.UseAction: the fields that do not matter for reachability
// (Quality, Inner Quiet, Innovation, Great Strides) are left at their zero
// value, which is always a legal placeholder since no progress-only action
// reads them. Progress is also left at zero; callers set it from
// MissingProgress, since State does not carry the Progress target.
func (st State) expand() craft.SimulationState {
	e := effects.Default()
	e = e.WithCombo(st.Combo)
	e = e.WithVeneration(int(st.Veneration))
	e = e.WithMuscleMemory(int(st.MuscleMemory))
	e = e.WithWasteNot(int(st.WasteNot))
	e = e.WithManipulation(int(st.Manipulation))
	e = e.WithTrainedPerfectionAvailable(st.TrainedPerfectionAvailable)
	e = e.WithTrainedPerfectionActive(st.TrainedPerfectionActive)
	e = e.WithHeartAndSoulAvailable(st.HeartAndSoulAvailable)
	e = e.WithHeartAndSoulActive(st.HeartAndSoulActive)
	e = e.WithAllowProgressActions(st.AllowProgressActions)
	return craft.SimulationState{
		CP:         st.CP,
		Durability: st.Durability,
		Effects:    e,
	}
}

// progressActions is the fixed set of actions a reachability-only
// continuation ever needs to consider: everything that can move Progress,
// plus the resource/buff actions that can make a later progress action
// affordable or more efficient.
var progressActions = action.ProgressActions.Union(action.ActionMask(0).
	With(action.Veneration).
	With(action.MuscleMemory).
	With(action.WasteNot).
	With(action.WasteNot2).
	With(action.Manipulation).
	With(action.MasterMend).
	With(action.ImmaculateMend).
	With(action.TrainedPerfection).
	With(action.Observe))
