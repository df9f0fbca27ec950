package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/hiresim/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Trials, convey.ShouldEqual, 100)
				convey.So(cfg.Strategy, convey.ShouldEqual, "immediate")
				convey.So(cfg.TargetScore, convey.ShouldEqual, 70)
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 1000)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("HIRESIM_SEED", "42")
			_ = os.Setenv("HIRESIM_TRIALS", "500")
			_ = os.Setenv("HIRESIM_WORKERS", "8")
			_ = os.Setenv("HIRESIM_STRATEGY", "aggregate")
			_ = os.Setenv("HIRESIM_TARGET_SCORE", "85")
			_ = os.Setenv("HIRESIM_BUDGET", "400000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Seed, convey.ShouldEqual, 42)
				convey.So(cfg.Trials, convey.ShouldEqual, 500)
				convey.So(cfg.Workers, convey.ShouldEqual, 8)
				convey.So(cfg.Strategy, convey.ShouldEqual, "aggregate")
				convey.So(cfg.TargetScore, convey.ShouldEqual, 85)
				convey.So(cfg.Budget, convey.ShouldEqual, 400000)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
seed: 7
trials: 250
strategy: aggregate
target_score: 80
max_candidates: 2000
steps:
  - interviewers: 2
    duration: 0.5
  - interviewers: 3
    duration: 1.0
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("HIRESIM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Seed, convey.ShouldEqual, 7)
				convey.So(cfg.Trials, convey.ShouldEqual, 250)
				convey.So(cfg.Strategy, convey.ShouldEqual, "aggregate")
				convey.So(cfg.TargetScore, convey.ShouldEqual, 80)
				convey.So(cfg.MaxCandidates, convey.ShouldEqual, 2000)
				convey.So(len(cfg.Steps), convey.ShouldEqual, 2)
				convey.So(cfg.Steps[0].Interviewers, convey.ShouldEqual, 2)
				convey.So(cfg.Steps[1].Duration, convey.ShouldEqual, 1.0)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
seed: 7
trials: 250
target_score: 80
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("HIRESIM_CONFIG", tmpFile)
			_ = os.Setenv("HIRESIM_TRIALS", "999")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Trials, convey.ShouldEqual, 999)     // Overridden by env
				convey.So(cfg.Seed, convey.ShouldEqual, 7)         // From file
				convey.So(cfg.TargetScore, convey.ShouldEqual, 80) // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("HIRESIM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("HIRESIM_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-positive trials", func() {
			_ = os.Setenv("HIRESIM_TRIALS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "trials must be positive")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-positive max candidates", func() {
			_ = os.Setenv("HIRESIM_MAX_CANDIDATES", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "max_candidates must be positive")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an out-of-range target score", func() {
			_ = os.Setenv("HIRESIM_TARGET_SCORE", "150")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "target_score")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an empty strategy", func() {
			_ = os.Setenv("HIRESIM_STRATEGY", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "strategy must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("HIRESIM_TRIALS", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a partial YAML file", func() {
			yamlContent := `
trials: 50
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("HIRESIM_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Trials, convey.ShouldEqual, 50)           // From file
				convey.So(cfg.Strategy, convey.ShouldEqual, "immediate") // From defaults
				convey.So(cfg.TargetScore, convey.ShouldEqual, 70)      // From defaults
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"HIRESIM_CONFIG",
		"HIRESIM_SEED",
		"HIRESIM_TRIALS",
		"HIRESIM_WORKERS",
		"HIRESIM_QUEUE_SIZE",
		"HIRESIM_STRATEGY",
		"HIRESIM_TARGET_SCORE",
		"HIRESIM_BUDGET",
		"HIRESIM_MAX_CANDIDATES",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "hiresim-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
