package main

import (
	"context"
	"os"
	"testing"

	"github.com/okian/hiresim/internal/adapters/repository"
	"github.com/okian/hiresim/internal/config"
	"github.com/okian/hiresim/internal/sim"
	"github.com/okian/hiresim/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("HIRESIM_SEED", "99")
			_ = os.Setenv("HIRESIM_TRIALS", "10")
			_ = os.Setenv("HIRESIM_WORKERS", "2")
			defer func() {
				_ = os.Unsetenv("HIRESIM_SEED")
				_ = os.Unsetenv("HIRESIM_TRIALS")
				_ = os.Unsetenv("HIRESIM_WORKERS")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Seed, convey.ShouldEqual, 99)
				convey.So(cfg.Trials, convey.ShouldEqual, 10)
				convey.So(cfg.Workers, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When testing runner creation", func() {
			cfg := config.New(context.Background())

			convey.Convey("Then the runner should be creatable with defaults", func() {
				r, err := sim.New(cfg)
				convey.So(err, convey.ShouldBeNil)
				convey.So(r, convey.ShouldNotBeNil)
			})

			convey.Convey("And the runner should be creatable with a sink", func() {
				r, err := sim.New(cfg, sim.WithSink(repository.NewMemStore()))
				convey.So(err, convey.ShouldBeNil)
				convey.So(r, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When running a small batch end to end", func() {
			_ = os.Setenv("HIRESIM_SEED", "5")
			_ = os.Setenv("HIRESIM_TRIALS", "3")
			_ = os.Setenv("HIRESIM_WORKERS", "1")
			defer func() {
				_ = os.Unsetenv("HIRESIM_SEED")
				_ = os.Unsetenv("HIRESIM_TRIALS")
				_ = os.Unsetenv("HIRESIM_WORKERS")
			}()

			convey.Convey("Then all components should work together", func() {
				ctx := context.Background()

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)

				store := repository.NewMemStore()
				runner, err := sim.New(cfg, sim.WithSink(store))
				convey.So(err, convey.ShouldBeNil)

				summary, err := runner.Run(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(summary.Trials, convey.ShouldEqual, 3)
				convey.So(store.Count(ctx), convey.ShouldEqual, summary.TotalScreened)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When configuration is invalid", func() {
			_ = os.Setenv("HIRESIM_TRIALS", "0")
			defer func() { _ = os.Unsetenv("HIRESIM_TRIALS") }()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the strategy is unknown", func() {
			cfg := config.New(context.Background())
			cfg.Strategy = "psychic"

			convey.Convey("Then runner creation should fail", func() {
				r, err := sim.New(cfg)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(r, convey.ShouldBeNil)
			})
		})
	})
}
