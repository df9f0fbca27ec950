package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager construction", t, func() {
		Convey("When created with a private registry", func() {
			m := NewManager(WithRegistry(prometheus.NewRegistry()))

			Convey("Then it should carry the defaults", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "hiresim")
				So(m.subsystem, ShouldEqual, "engine")
			})
		})

		Convey("When created with custom options", func() {
			m := NewManager(
				WithRegistry(prometheus.NewRegistry()),
				WithNamespace("custom"),
				WithSubsystem("test"),
				WithHistogramBuckets([]float64{0.5, 1, 2}),
			)

			Convey("Then the options should apply", func() {
				So(m.namespace, ShouldEqual, "custom")
				So(m.subsystem, ShouldEqual, "test")
				So(m.histogramBuckets, ShouldResemble, []float64{0.5, 1, 2})
			})
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through the package helpers", func() {
			RecordEstimate()
			RecordRangeWarning()
			RecordCandidateScreened()
			RecordCandidatePassed()
			RecordStepShortCircuit()
			RecordFinalScore(72.5)
			RecordInterviewHours(2.5)
			RecordOffer(254000)
			RecordHire()
			RecordTrialCompleted()
			RecordTrialError()
			UpdateQueueSize(3)
			UpdateQueueCapacity(100)
			RecordEnqueueError()
			UpdateWorkerCount(4)

			Convey("Then the registry should gather without error", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
