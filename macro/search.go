package macro

import (
	"container/heap"

	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/craft"
	"github.com/rooroodev/raphael-go/finish"
	"github.com/rooroodev/raphael-go/qualityub"
	"github.com/rooroodev/raphael-go/settings"
)

// Solver runs the best-first macro search for one fixed Settings.
type Solver struct {
	s       settings.Settings
	finish  *finish.Solver
	qub     *qualityub.Solver
	combos  []craft.ActionCombo
	trace   []traceEntry
	visited map[visitedKey]uint32
}

// New returns a Solver wired to fresh Finish and Quality Upper-Bound
// solvers for s.
func New(s settings.Settings) *Solver {
	return &Solver{
		s:       s,
		finish:  finish.New(s),
		qub:     qualityub.New(s),
		combos:  craft.AllCombos(s.AllowedActions),
		visited: make(map[visitedKey]uint32),
	}
}

// Result is a completed macro: the action sequence in execution order and
// the final total Quality it reaches (SimulationState.TotalQuality: the
// guaranteed Quality counter plus any UnreliableQuality banked under
// adversarial mode).
type Result struct {
	Actions []action.Action
	Quality uint32
}

// Solve searches from initial for the Completed state with the highest
// Quality reachable under the Solver's Settings (spec §4.F). It returns
// (Result{}, false) if initial cannot reach Completed at all.
func (ms *Solver) Solve(initial craft.SimulationState) (Result, bool) {
	ms.trace = append(ms.trace[:0], traceEntry{parent: -1})
	ms.visited = make(map[visitedKey]uint32)
	ms.visited[keyOf(initial)] = initial.TotalQuality()

	if !ms.finish.CanFinish(initial, ms.s.MaxProgress) {
		return Result{}, false
	}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &node{state: initial, traceIndex: 0, qub: ms.qub.QUB(initial)})

	var (
		bestQuality    uint32
		bestTraceIndex = -1
		found          bool
	)

	recordTerminal := func(state craft.SimulationState, traceIndex int) {
		total := state.TotalQuality()
		if !found || total > bestQuality {
			bestQuality = total
			bestTraceIndex = traceIndex
			found = true
		}
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*node)
		if found && cur.qub <= bestQuality {
			break // no frontier node, current or future, can beat the incumbent
		}
		if prev, seen := ms.visited[keyOf(cur.state)]; seen && prev > cur.state.TotalQuality() {
			continue // stale: a better node with the same key was queued after this one
		}

		if seq, ok := ms.finish.Sequence(cur.state); ok {
			terminal := cur.state
			status := craft.InProgress
			for _, a := range seq {
				var s craft.SimulationState
				s, status = craft.UseAction(terminal, a, action.Normal, ms.s)
				if status == craft.Invalid || status == craft.Failed {
					break
				}
				terminal = s
				if status == craft.Completed {
					break
				}
			}
			if status == craft.Completed {
				idx := len(ms.trace)
				ms.trace = append(ms.trace, traceEntry{parent: cur.traceIndex, combo: craft.ActionCombo{Actions: seq}})
				recordTerminal(terminal, idx)
			}
		}

		for _, combo := range ms.combos {
			child, status, ok := applyCombo(cur.state, combo, ms.s)
			if !ok {
				continue
			}
			if status == craft.Completed {
				idx := len(ms.trace)
				ms.trace = append(ms.trace, traceEntry{parent: cur.traceIndex, combo: combo})
				recordTerminal(child, idx)
				continue
			}

			if !ms.finish.CanFinish(child, ms.s.MaxProgress) {
				continue
			}
			key := keyOf(child)
			childTotal := child.TotalQuality()
			if prev, seen := ms.visited[key]; seen && prev >= childTotal {
				continue
			}
			ms.visited[key] = childTotal

			qub := ms.qub.QUB(child)
			if found && qub <= bestQuality {
				continue
			}

			idx := len(ms.trace)
			ms.trace = append(ms.trace, traceEntry{parent: cur.traceIndex, combo: combo})
			heap.Push(pq, &node{state: child, traceIndex: idx, qub: qub})
		}
	}

	if !found {
		return Result{}, false
	}
	return Result{Actions: ms.reconstruct(bestTraceIndex), Quality: bestQuality}, true
}

// applyCombo plays combo's actions out against state atomically: any
// Invalid or Failed step discards the whole combo, and a Completed step
// ends the sequence early without running the remaining actions.
func applyCombo(state craft.SimulationState, combo craft.ActionCombo, s settings.Settings) (craft.SimulationState, craft.Status, bool) {
	cur := state
	status := craft.InProgress
	for _, a := range combo.Actions {
		next, st := craft.UseAction(cur, a, action.Normal, s)
		if st == craft.Invalid || st == craft.Failed {
			return craft.SimulationState{}, craft.Invalid, false
		}
		cur = next
		status = st
		if status == craft.Completed {
			break
		}
	}
	return cur, status, true
}

// reconstruct walks the trace arena from leafIndex back to the root
// (parent -1), then flattens each step's combo into individual actions in
// execution order.
func (ms *Solver) reconstruct(leafIndex int) []action.Action {
	var combos []craft.ActionCombo
	for i := leafIndex; i > 0; i = ms.trace[i].parent {
		combos = append(combos, ms.trace[i].combo)
	}
	var out []action.Action
	for i := len(combos) - 1; i >= 0; i-- {
		out = append(out, combos[i].Actions...)
	}
	return out
}
