package sim_test

import (
	"context"
	"testing"

	"github.com/okian/hiresim/internal/domain/model"
	"github.com/okian/hiresim/internal/sim"
	"github.com/smartystreets/goconvey/convey"
)

func TestStatsSummary(t *testing.T) {
	convey.Convey("Given a stats collector", t, func() {
		ctx := context.Background()

		// Fractional values whose float sums are sensitive to addition
		// order, so order-dependent folding would show up below.
		results := []model.TrialResult{
			{Trial: model.Trial{Index: 0}, Hired: true, Screened: 3, FinalScore: 70.1, TrueSkill: 68.3, TotalTime: 8.25, Offer: 331000.3},
			{Trial: model.Trial{Index: 1}, Hired: false, Screened: 9},
			{Trial: model.Trial{Index: 2}, Hired: true, Screened: 5, FinalScore: 72.2, TrueSkill: 74.9, TotalTime: 6.75, Offer: 340000.1},
			{Trial: model.Trial{Index: 3}, Hired: true, Screened: 2, FinalScore: 81.7, TrueSkill: 79.4, TotalTime: 4.5, Offer: 402000.7},
		}

		convey.Convey("When results arrive in trial order", func() {
			stats := sim.NewStats()
			for _, r := range results {
				stats.Collect(ctx, r)
			}

			summary := stats.Summary()

			convey.Convey("Then the aggregates cover every trial", func() {
				convey.So(summary.Trials, convey.ShouldEqual, 4)
				convey.So(summary.Hires, convey.ShouldEqual, 3)
				convey.So(summary.HireRate, convey.ShouldEqual, 0.75)
				convey.So(summary.TotalScreened, convey.ShouldEqual, 19)
				convey.So(summary.AvgScreened, convey.ShouldEqual, 4.75)
			})
		})

		convey.Convey("When the same results arrive in reverse order", func() {
			forward := sim.NewStats()
			for _, r := range results {
				forward.Collect(ctx, r)
			}

			reversed := sim.NewStats()
			for i := len(results) - 1; i >= 0; i-- {
				reversed.Collect(ctx, results[i])
			}

			convey.Convey("Then both summaries are bit-identical", func() {
				convey.So(forward.Summary(), convey.ShouldResemble, reversed.Summary())
			})
		})

		convey.Convey("When no trial hired anyone", func() {
			stats := sim.NewStats()
			stats.Collect(ctx, model.TrialResult{Trial: model.Trial{Index: 0}, Screened: 7})

			summary := stats.Summary()

			convey.Convey("Then hire averages stay zero", func() {
				convey.So(summary.Trials, convey.ShouldEqual, 1)
				convey.So(summary.Hires, convey.ShouldEqual, 0)
				convey.So(summary.AvgFinalScore, convey.ShouldEqual, 0)
				convey.So(summary.AvgOffer, convey.ShouldEqual, 0)
			})
		})
	})
}
