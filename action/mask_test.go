package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rooroodev/raphael-go/action"
)

func TestMaskRoundTrip(t *testing.T) {
	m := action.NoActions
	m = m.With(action.BasicTouch)
	m = m.With(action.Groundwork)

	assert.True(t, m.Contains(action.BasicTouch))
	assert.True(t, m.Contains(action.Groundwork))
	assert.False(t, m.Contains(action.MasterMend))

	m = m.Without(action.BasicTouch)
	assert.False(t, m.Contains(action.BasicTouch))
}

func TestAllActionsContainsEveryEnumValue(t *testing.T) {
	all := action.AllActions()
	for _, a := range []action.Action{
		action.BasicSynthesis, action.TrainedEye, action.QuickInnovation,
	} {
		assert.True(t, all.Contains(a), "%s should be in AllActions", a)
	}
}

func TestActionsReturnsSortedSubset(t *testing.T) {
	m := action.NoActions.With(action.Veneration).With(action.BasicSynthesis)
	got := m.Intersection(action.AllActions()).Actions()
	assert.Equal(t, []action.Action{action.BasicSynthesis, action.Veneration}, got)
}

func TestSearchActionsExcludesNothingFundamental(t *testing.T) {
	assert.True(t, action.SearchActions.Contains(action.Groundwork))
	assert.True(t, action.SearchActions.Contains(action.PreparatoryTouch))
	assert.True(t, action.SearchActions.Contains(action.Manipulation))
}
