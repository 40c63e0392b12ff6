package raphael_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	raphael "github.com/rooroodev/raphael-go"
	"github.com/rooroodev/raphael-go/action"
	"github.com/rooroodev/raphael-go/craft"
	"github.com/rooroodev/raphael-go/settings"
)

func TestSolveReplaysToCompletion(t *testing.T) {
	s, err := settings.New(
		settings.WithResourceBudget(600, 70),
		settings.WithTargets(1990, 5000),
		settings.WithBasePotency(100, 100),
		settings.WithJobLevel(90),
		settings.WithAllowedActions(action.AllActions()),
	)
	require.NoError(t, err)

	actions, quality, ok := raphael.Solve(s)
	require.True(t, ok)
	require.NotEmpty(t, actions)

	cur := craft.New(s.MaxCP, s.MaxDurability)
	status := craft.InProgress
	for _, a := range actions {
		var next craft.SimulationState
		next, status = craft.UseAction(cur, a, action.Normal, s)
		require.NotEqual(t, craft.Invalid, status)
		cur = next
		if status == craft.Completed {
			break
		}
	}
	assert.Equal(t, craft.Completed, status)
	assert.Equal(t, quality, cur.TotalQuality())
}

func TestSolveFailsOnImpossibleTarget(t *testing.T) {
	s, err := settings.New(
		settings.WithResourceBudget(10, 10),
		settings.WithTargets(1_000_000, 20000),
		settings.WithBasePotency(100, 100),
		settings.WithJobLevel(90),
		settings.WithAllowedActions(action.AllActions()),
	)
	require.NoError(t, err)

	_, _, ok := raphael.Solve(s)
	assert.False(t, ok)
}
