package effects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rooroodev/raphael-go/effects"
)

func TestSaturation(t *testing.T) {
	var e effects.Effects
	e = e.WithInnerQuiet(99)
	assert.Equal(t, effects.MaxInnerQuiet, e.InnerQuiet())

	e = e.WithManipulation(-5)
	assert.Equal(t, 0, e.Manipulation())

	e = e.WithWasteNot(effects.MaxWasteNot + 3)
	assert.Equal(t, effects.MaxWasteNot, e.WasteNot())
}

func TestTickDownSaturatesAtZero(t *testing.T) {
	var e effects.Effects
	e = e.WithGreatStrides(1)
	e = e.TickDown()
	assert.Equal(t, 0, e.GreatStrides())
	e = e.TickDown()
	assert.Equal(t, 0, e.GreatStrides())
}

func TestFieldsAreIndependent(t *testing.T) {
	var e effects.Effects
	e = e.WithInnerQuiet(10)
	e = e.WithVeneration(4)
	e = e.WithManipulation(8)
	e = e.WithCombo(3)
	e = e.WithAllowQualityActions(true)

	assert.Equal(t, 10, e.InnerQuiet())
	assert.Equal(t, 4, e.Veneration())
	assert.Equal(t, 8, e.Manipulation())
	assert.Equal(t, uint8(3), e.Combo())
	assert.True(t, e.AllowQualityActions())
	assert.False(t, e.AllowProgressActions())

	e = e.WithInnerQuiet(0)
	assert.Equal(t, 4, e.Veneration(), "clearing one field must not disturb another")
}

func TestDefaultMarksSingleUseAvailable(t *testing.T) {
	d := effects.Default()
	assert.True(t, d.TrainedPerfectionAvailable())
	assert.True(t, d.HeartAndSoulAvailable())
	assert.True(t, d.QuickInnovationAvailable())
	assert.True(t, d.AllowQualityActions())
	assert.True(t, d.AllowProgressActions())
	assert.False(t, d.TrainedPerfectionActive())
	assert.Equal(t, uint8(0), d.Combo())
}
