package macro

import (
	"github.com/rooroodev/raphael-go/craft"
)

// traceEntry is one append-only record in the search tree's backtrack
// arena: a node's parent index and the combo that produced it from that
// parent. Reconstruction walks parent indices back to the root (parent
// -1), the same append-only-vector-plus-parent-index design spec §9 Design
// Notes specifies to keep trace reconstruction free of back-pointer cycles.
type traceEntry struct {
	parent int
	combo  craft.ActionCombo
}

// node is one frontier entry: the full SimulationState it reached, its
// index into the trace arena, and the Quality Upper-Bound solver's estimate
// used to order the priority queue.
type node struct {
	state      craft.SimulationState
	traceIndex int
	qub        uint32
	index      int // heap.Interface bookkeeping
}

// visitedKey identifies a SimulationState up to Quality: the macro solver
// only needs to know the best Quality reached for a given
// (CP, Durability, Progress, Effects) combination, since any combo
// expansion from that combination plays out identically regardless of how
// much Quality was accumulated to get there.
type visitedKey struct {
	cp         uint16
	durability uint16
	progress   uint32
	effects    uint64
}

func keyOf(s craft.SimulationState) visitedKey {
	return visitedKey{
		cp:         s.CP,
		durability: s.Durability,
		progress:   s.Progress,
		effects:    uint64(s.Effects),
	}
}
