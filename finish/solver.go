package finish

import (
	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/craft"
	"github.com/rooroodev/raphael-go/settings"
)

// visitStatus marks a State's position in the memoized DFS: unvisited
// states are absent from the map, inProgress states are on the current
// recursion stack (so a re-entry is a cycle and is treated as
// non-finishing along that edge), and the remaining two are final answers.
type visitStatus uint8

const (
	inProgress visitStatus = iota
	reachable
	unreachable
)

// Solver answers Finish Solver reachability queries for one fixed
// Settings, memoizing across calls the way a single dtw table is reused
// across repeated alignment queries against the same reference series.
type Solver struct {
	s        settings.Settings
	memo     map[State]visitStatus
	bestNext map[State]action.Action // one canonical finishing step per reachable state
}

// New returns a Solver for s. A Solver must only be queried with states
// produced under the same Settings it was built with.
func New(s settings.Settings) *Solver {
	return &Solver{
		s:        s,
		memo:     make(map[State]visitStatus),
		bestNext: make(map[State]action.Action),
	}
}

// CanFinish reports whether state can still reach Completed using only
// progress-relevant actions (spec §4.D). A state with MissingProgress==0 is
// trivially reachable.
func (fs *Solver) CanFinish(state craft.SimulationState, maxProgress uint32) bool {
	return fs.canFinish(Reduce(state, maxProgress))
}

func (fs *Solver) canFinish(key State) bool {
	if key.MissingProgress == 0 {
		return true
	}
	if status, ok := fs.memo[key]; ok {
		return status == reachable
	}
	fs.memo[key] = inProgress

	full := key.expand()
	full.Progress = fs.s.MaxProgress - key.MissingProgress
	candidates :=action.SearchActions.Intersection(progressActions).Intersection(fs.s.AllowedActions)
	for _, a := range candidates.Actions() {
		next, status := craft.UseAction(full, a, action.Normal, fs.s)
		if status == craft.Invalid || status == craft.Failed {
			continue
		}
		if status == craft.Completed {
			fs.memo[key] = reachable
			fs.bestNext[key] = a
			return true
		}
		nextKey := Reduce(next, fs.s.MaxProgress)
		if st, ok := fs.memo[nextKey]; ok && st == inProgress {
			continue // cycle: don't trust it, let another path decide
		}
		if fs.canFinish(nextKey) {
			fs.memo[key] = reachable
			fs.bestNext[key] = a
			return true
		}
	}

	fs.memo[key] = unreachable
	return false
}

// Sequence reconstructs one canonical action sequence that finishes state,
// following the first finishing step discovered for each state along the
// way. It returns (nil, false) if state cannot finish.
func (fs *Solver) Sequence(state craft.SimulationState) ([]action.Action, bool) {
	key := Reduce(state, fs.s.MaxProgress)
	if !fs.canFinish(key) {
		return nil, false
	}

	var out []action.Action
	full := key.expand()
	full.Progress = fs.s.MaxProgress - key.MissingProgress
	for key.MissingProgress > 0 {
		a, ok := fs.bestNext[key]
		if !ok {
			return nil, false
		}
		out = append(out, a)
		next, status := craft.UseAction(full, a, action.Normal, fs.s)
		if status == craft.Invalid || status == craft.Failed {
			return nil, false
		}
		if status == craft.Completed {
			break
		}
		full = next
		key = Reduce(next, fs.s.MaxProgress)
	}
	return out, true
}
