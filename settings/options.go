package settings

import "github.com/rooroodev/raphael-go/action"

// Option customizes a Settings under construction by New. Per lvlath's
// builder/dijkstra convention, an Option panics when given a value that can
// never be meaningful (a negative-equivalent or malformed constant);
// New itself still runs Validate to catch combinations an individual
// option cannot see (e.g. AllowedActions left empty).
type Option func(*Settings)

// WithResourceBudget sets CP and durability budgets. Panics if durability
// is not a multiple of 5 (spec §3 invariant) — this is a caller mistake,
// not a runtime condition.
func WithResourceBudget(maxCP, maxDurability uint16) Option {
	if maxDurability%5 != 0 {
		panic("settings: WithResourceBudget(durability not a multiple of 5)")
	}
	return func(s *Settings) {
		s.MaxCP = maxCP
		s.MaxDurability = maxDurability
	}
}

// WithTargets sets the Progress and Quality goals.
func WithTargets(maxProgress, maxQuality uint32) Option {
	return func(s *Settings) {
		s.MaxProgress = maxProgress
		s.MaxQuality = maxQuality
	}
}

// WithBasePotency sets the per-synthesis/per-touch base Progress and
// Quality multipliers (derived externally from craftsmanship/control; see
// spec §1 "Out of scope").
func WithBasePotency(baseProgress, baseQuality uint16) Option {
	return func(s *Settings) {
		s.BaseProgress = baseProgress
		s.BaseQuality = baseQuality
	}
}

// WithJobLevel sets the crafter's job level. Panics outside 1..=100: a
// caller passing 0 or >100 has a bug, not a recoverable input.
func WithJobLevel(level uint8) Option {
	if level < 1 || level > 100 {
		panic("settings: WithJobLevel(level out of 1..=100)")
	}
	return func(s *Settings) {
		s.JobLevel = level
	}
}

// WithAllowedActions sets the action set the solver may draw from.
func WithAllowedActions(mask action.ActionMask) Option {
	return func(s *Settings) {
		s.AllowedActions = mask
	}
}

// WithAdversarial toggles pessimistic quality modeling (spec §4.E).
func WithAdversarial(adversarial bool) Option {
	return func(s *Settings) {
		s.Adversarial = adversarial
	}
}

// WithBackloadProgress toggles the progress/quality mutual-exclusion latch
// (spec §3, §9).
func WithBackloadProgress(backload bool) Option {
	return func(s *Settings) {
		s.BackloadProgress = backload
	}
}

// New builds a Settings from opts and validates the result. It is the only
// supported way to obtain a Settings outside of tests, which may still use
// a bare struct literal when they need to exercise pre-validated inputs.
func New(opts ...Option) (Settings, error) {
	s := Settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
