package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/effects"
)

func TestProgressIncreaseAppliesVenerationAndMuscleMemory(t *testing.T) {
	base := effects.Default()
	plain := action.ProgressIncrease(100, action.BasicSynthesis, base)
	assert.Equal(t, uint32(120), plain)

	withVeneration := base.WithVeneration(4)
	boosted := action.ProgressIncrease(100, action.BasicSynthesis, withVeneration)
	assert.Equal(t, uint32(180), boosted)

	withBoth := withVeneration.WithMuscleMemory(5)
	bothBoosted := action.ProgressIncrease(100, action.BasicSynthesis, withBoth)
	assert.Equal(t, uint32(300), bothBoosted)
}

func TestQualityIncreaseAppliesInnerQuietAndInnovation(t *testing.T) {
	base := effects.Default().WithInnerQuiet(5)
	q := action.QualityIncrease(100, action.BasicTouch, base)
	// 100 * 100% * (1+0.1*5) = 150
	assert.Equal(t, uint32(150), q)

	withInnovation := base.WithInnovation(4)
	q2 := action.QualityIncrease(100, action.BasicTouch, withInnovation)
	assert.Equal(t, uint32(225), q2)
}

func TestDurabilityCostModifiers(t *testing.T) {
	base := effects.Default()
	assert.Equal(t, 10, action.DurabilityCost(action.BasicSynthesis, base))

	wasted := base.WithWasteNot(4)
	assert.Equal(t, 5, action.DurabilityCost(action.BasicSynthesis, wasted))

	trained := base.WithTrainedPerfectionActive(true)
	assert.Equal(t, 0, action.DurabilityCost(action.BasicSynthesis, trained))
}

func TestComboDiscounts(t *testing.T) {
	assert.Equal(t, 32, action.CPCost(action.StandardTouch, action.ComboNone))
	assert.Equal(t, 18, action.CPCost(action.StandardTouch, action.ComboBasicTouch))
	assert.Equal(t, 46, action.CPCost(action.AdvancedTouch, action.ComboNone))
	assert.Equal(t, 18, action.CPCost(action.AdvancedTouch, action.ComboStandardTouch))
}

func TestInnerQuietGainSpecialCases(t *testing.T) {
	assert.Equal(t, 2, action.InnerQuietGain(action.Reflect))
	assert.Equal(t, 2, action.InnerQuietGain(action.PreciseTouch))
	assert.Equal(t, 2, action.InnerQuietGain(action.PreparatoryTouch))
	assert.Equal(t, 1, action.InnerQuietGain(action.BasicTouch))
}
