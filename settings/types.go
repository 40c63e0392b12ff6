package settings

import "github.com/rooroodev/raphael-go/action"

// Settings is the immutable crafter/recipe configuration a solve runs
// against (spec §3). Every field is a direct analogue of the original
// record; there is no hidden state.
type Settings struct {
	MaxCP          uint16
	MaxDurability  uint16 // must be a multiple of 5
	MaxProgress    uint32
	MaxQuality     uint32
	BaseProgress   uint16
	BaseQuality    uint16
	JobLevel       uint8 // 1..=100
	AllowedActions action.ActionMask

	// Adversarial models quality increases pessimistically (spec §4.E).
	Adversarial bool
	// BackloadProgress locks progress and quality actions out of each
	// other for the remainder of the craft once either kind is used
	// (spec §3, §9 Open Question).
	BackloadProgress bool
}
