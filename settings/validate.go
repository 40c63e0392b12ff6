package settings

// Validate checks the invariants spec §3 places on a Settings record.
//
// Validation order (mirrors the numbered-step style lvlath's dijkstra
// package uses):
//  1. MaxDurability must be a multiple of 5 and positive.
//  2. MaxProgress must be positive (a zero target is trivially complete).
//  3. JobLevel must be in 1..=100.
//  4. AllowedActions must be non-empty.
func (s Settings) Validate() error {
	// 1) Durability budget shape.
	if s.MaxDurability == 0 {
		return ErrZeroDurability
	}
	if s.MaxDurability%5 != 0 {
		return ErrDurabilityNotMultipleOf5
	}

	// 2) Progress target must be reachable in principle.
	if s.MaxProgress == 0 {
		return ErrZeroProgress
	}

	// 3) Job level range.
	if s.JobLevel < 1 || s.JobLevel > 100 {
		return ErrJobLevelOutOfRange
	}

	// 4) Must be able to take at least one action.
	if s.AllowedActions == 0 {
		return ErrNoAllowedActions
	}

	return nil
}
