package settings

import "errors"

// Sentinel errors returned by New/Validate. Callers should branch with
// errors.Is, never by comparing error strings.
var (
	// ErrDurabilityNotMultipleOf5 indicates MaxDurability violates the
	// spec §3 invariant.
	ErrDurabilityNotMultipleOf5 = errors.New("settings: max durability must be a multiple of 5")

	// ErrZeroDurability indicates MaxDurability is zero; a craft with no
	// durability budget can never complete a single action.
	ErrZeroDurability = errors.New("settings: max durability must be positive")

	// ErrZeroProgress indicates MaxProgress is zero, which makes every
	// initial state trivially Completed and is almost certainly a
	// misconfiguration.
	ErrZeroProgress = errors.New("settings: max progress must be positive")

	// ErrJobLevelOutOfRange indicates JobLevel is outside 1..=100.
	ErrJobLevelOutOfRange = errors.New("settings: job level must be in 1..=100")

	// ErrNoAllowedActions indicates AllowedActions is empty, so no craft
	// could ever make progress.
	ErrNoAllowedActions = errors.New("settings: allowed actions must be non-empty")
)
