package effects_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rooroodev/raphael-go/effects"
)

func TestEffectsBehaviorConvey(t *testing.T) {
	Convey("Given a fresh Effects value", t, func() {
		e := effects.Default()

		Convey("every single-use capability starts available", func() {
			So(e.TrainedPerfectionAvailable(), ShouldBeTrue)
			So(e.HeartAndSoulAvailable(), ShouldBeTrue)
			So(e.QuickInnovationAvailable(), ShouldBeTrue)
		})

		Convey("both backload_progress latches start open", func() {
			So(e.AllowProgressActions(), ShouldBeTrue)
			So(e.AllowQualityActions(), ShouldBeTrue)
		})

		Convey("when Inner Quiet is set above its cap", func() {
			e = e.WithInnerQuiet(99)

			Convey("it saturates at the documented maximum", func() {
				So(e.InnerQuiet(), ShouldEqual, effects.MaxInnerQuiet)
			})
		})

		Convey("when every duration counter is set to its cap and ticked down", func() {
			e = e.WithWasteNot(effects.MaxWasteNot).
				WithInnovation(effects.MaxInnovation).
				WithVeneration(effects.MaxVeneration).
				WithGreatStrides(effects.MaxGreatStrides).
				WithMuscleMemory(effects.MaxMuscleMemory).
				WithManipulation(effects.MaxManipulation)
			e = e.TickDown()

			Convey("each counter drops by exactly one", func() {
				So(e.WasteNot(), ShouldEqual, effects.MaxWasteNot-1)
				So(e.Innovation(), ShouldEqual, effects.MaxInnovation-1)
				So(e.Veneration(), ShouldEqual, effects.MaxVeneration-1)
				So(e.GreatStrides(), ShouldEqual, effects.MaxGreatStrides-1)
				So(e.MuscleMemory(), ShouldEqual, effects.MaxMuscleMemory-1)
				So(e.Manipulation(), ShouldEqual, effects.MaxManipulation-1)
			})

			Convey("ticking down from zero never goes negative", func() {
				zeroed := effects.Effects(0).TickDown().TickDown().TickDown()
				So(zeroed.WasteNot(), ShouldEqual, 0)
			})
		})
	})
}
