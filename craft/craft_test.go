package craft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/craft"
	"github.com/rooroodev/raphael-go/settings"
)

func baseSettings(t *testing.T) settings.Settings {
	t.Helper()
	s, err := settings.New(
		settings.WithResourceBudget(600, 70),
		settings.WithTargets(2000, 20000),
		settings.WithBasePotency(100, 100),
		settings.WithJobLevel(90),
		settings.WithAllowedActions(action.AllActions()),
	)
	require.NoError(t, err)
	return s
}

func TestBasicSynthesisReducesDurabilityAndAddsProgress(t *testing.T) {
	s := baseSettings(t)
	st := craft.New(s.MaxCP, s.MaxDurability)

	next, status := craft.UseAction(st, action.BasicSynthesis, action.Normal, s)

	require.Equal(t, craft.InProgress, status)
	assert.Equal(t, uint16(60), next.Durability)
	assert.Equal(t, uint32(120), next.Progress)
}

func TestMuscleMemoryOnlyUsableAsOpener(t *testing.T) {
	s := baseSettings(t)
	st := craft.New(s.MaxCP, s.MaxDurability)

	next, status := craft.UseAction(st, action.MuscleMemory, action.Normal, s)
	require.Equal(t, craft.InProgress, status)
	assert.Equal(t, 5, next.Effects.MuscleMemory())

	_, status = craft.UseAction(next, action.MuscleMemory, action.Normal, s)
	assert.Equal(t, craft.Invalid, status)
}

func TestMuscleMemoryClearsOnProgressGain(t *testing.T) {
	s := baseSettings(t)
	st := craft.New(s.MaxCP, s.MaxDurability)

	next, _ := craft.UseAction(st, action.MuscleMemory, action.Normal, s)
	require.Equal(t, 5, next.Effects.MuscleMemory())

	next, status := craft.UseAction(next, action.BasicSynthesis, action.Normal, s)
	require.Equal(t, craft.InProgress, status)
	assert.Equal(t, 0, next.Effects.MuscleMemory())
}

func TestStandardTouchComboDiscount(t *testing.T) {
	s := baseSettings(t)
	st := craft.New(s.MaxCP, s.MaxDurability)

	afterBasic, _ := craft.UseAction(st, action.BasicTouch, action.Normal, s)
	require.Equal(t, uint8(action.ComboBasicTouch), afterBasic.Effects.Combo())

	before := afterBasic.CP
	afterStandard, status := craft.UseAction(afterBasic, action.StandardTouch, action.Normal, s)
	require.Equal(t, craft.InProgress, status)
	assert.Equal(t, uint16(18), before-afterStandard.CP)
}

func TestByregotsBlessingRequiresInnerQuiet(t *testing.T) {
	s := baseSettings(t)
	st := craft.New(s.MaxCP, s.MaxDurability)

	_, status := craft.UseAction(st, action.ByregotsBlessing, action.Normal, s)
	assert.Equal(t, craft.Invalid, status)
}

func TestByregotsBlessingClearsInnerQuiet(t *testing.T) {
	s := baseSettings(t)
	st := craft.New(s.MaxCP, s.MaxDurability)

	withIQ, _ := craft.UseAction(st, action.BasicTouch, action.Normal, s)
	require.Greater(t, withIQ.Effects.InnerQuiet(), 0)

	after, status := craft.UseAction(withIQ, action.ByregotsBlessing, action.Normal, s)
	require.Equal(t, craft.InProgress, status)
	assert.Equal(t, 0, after.Effects.InnerQuiet())
}

func TestManipulationRestoresDurabilityEachTurn(t *testing.T) {
	s := baseSettings(t)
	st := craft.New(s.MaxCP, s.MaxDurability)

	withManip, status := craft.UseAction(st, action.Manipulation, action.Normal, s)
	require.Equal(t, craft.InProgress, status)
	require.Equal(t, 8, withManip.Effects.Manipulation())

	before := withManip.Durability
	next, status := craft.UseAction(withManip, action.BasicSynthesis, action.Normal, s)
	require.Equal(t, craft.InProgress, status)
	assert.Equal(t, before-10+5, next.Durability)
}

func TestDurabilityExhaustionFails(t *testing.T) {
	s, err := settings.New(
		settings.WithResourceBudget(600, 5),
		settings.WithTargets(20000, 20000),
		settings.WithBasePotency(100, 100),
		settings.WithJobLevel(90),
		settings.WithAllowedActions(action.AllActions()),
	)
	require.NoError(t, err)
	st := craft.New(s.MaxCP, s.MaxDurability)

	next, status := craft.UseAction(st, action.BasicSynthesis, action.Normal, s)
	assert.Equal(t, craft.Failed, status)
	assert.Equal(t, uint16(0), next.Durability)
}

func TestProgressTargetReachedCompletes(t *testing.T) {
	s, err := settings.New(
		settings.WithResourceBudget(600, 70),
		settings.WithTargets(100, 20000),
		settings.WithBasePotency(100, 100),
		settings.WithJobLevel(90),
		settings.WithAllowedActions(action.AllActions()),
	)
	require.NoError(t, err)
	st := craft.New(s.MaxCP, s.MaxDurability)

	_, status := craft.UseAction(st, action.BasicSynthesis, action.Normal, s)
	assert.Equal(t, craft.Completed, status)
}

func TestBackloadProgressLocksOutQualityAfterProgress(t *testing.T) {
	s, err := settings.New(
		settings.WithResourceBudget(600, 70),
		settings.WithTargets(2000, 20000),
		settings.WithBasePotency(100, 100),
		settings.WithJobLevel(90),
		settings.WithAllowedActions(action.AllActions()),
		settings.WithBackloadProgress(true),
	)
	require.NoError(t, err)
	st := craft.New(s.MaxCP, s.MaxDurability)

	afterProgress, status := craft.UseAction(st, action.BasicSynthesis, action.Normal, s)
	require.Equal(t, craft.InProgress, status)
	assert.False(t, afterProgress.Effects.AllowQualityActions())

	_, status = craft.UseAction(afterProgress, action.BasicTouch, action.Normal, s)
	assert.Equal(t, craft.Invalid, status)
}

func TestAllCombosIncludesFixedChainsWhenAllowed(t *testing.T) {
	combos := craft.AllCombos(action.AllActions())

	found := false
	for _, c := range combos {
		if c.Len() == 3 {
			found = true
			assert.Equal(t, action.BasicTouch, c.Actions[0])
			assert.Equal(t, action.AdvancedTouch, c.Actions[2])
		}
	}
	assert.True(t, found, "expected the 3-step Basic/Standard/Advanced Touch combo to be present")
}

func TestAllCombosExcludesFixedChainWhenActionDisallowed(t *testing.T) {
	mask := action.AllActions().Without(action.AdvancedTouch)
	combos := craft.AllCombos(mask)

	for _, c := range combos {
		assert.NotEqual(t, 3, c.Len())
	}
}
