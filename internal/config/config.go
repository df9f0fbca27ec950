// Package config defines simulation configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"runtime"
)

// StepConfig describes one interview round.
type StepConfig struct {
	// Interviewers sets the panel size for the round.
	Interviewers int `koanf:"interviewers"`

	// Duration is the round length in hours.
	Duration float64 `koanf:"duration"`
}

// BreakpointConfig is one point on the compensation curve.
type BreakpointConfig struct {
	Skill float64 `koanf:"skill"`
	Comp  float64 `koanf:"comp"`
}

// AdjustmentConfig is one ordered offer adjustment, e.g. an equity
// multiplier or a signing bonus.
type AdjustmentConfig struct {
	Name  string  `koanf:"name"`
	Kind  string  `koanf:"kind"`
	Value float64 `koanf:"value"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr exposes Prometheus metrics when non-empty, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// Seed is the base random seed; trial i runs on Seed+i.
	Seed int64 `koanf:"seed"`

	// Trials sets how many independent searches to run.
	Trials int `koanf:"trials"`

	// Workers sets the number of trial workers.
	Workers int `koanf:"workers"`

	// QueueSize bounds the in-memory trial queue. Values below Trials
	// are raised so a whole batch always fits.
	QueueSize int `koanf:"queue_size"`

	// Strategy selects the evaluation strategy: immediate or aggregate.
	Strategy string `koanf:"strategy"`

	// TargetScore is the hiring bar on the skill scale.
	TargetScore float64 `koanf:"target_score"`

	// Budget caps the offer; zero derives the cap from the curve at
	// TargetScore.
	Budget float64 `koanf:"budget"`

	// MaxCandidates bounds how many candidates a search may draw.
	MaxCandidates int `koanf:"max_candidates"`

	// Tolerance widens the self-assessment pre-screen envelope.
	Tolerance float64 `koanf:"tolerance"`

	// SelfAssessmentHours is the duration credited to a candidate's
	// self-assessment.
	SelfAssessmentHours float64 `koanf:"self_assessment_hours"`

	// Steps lays out the interview pipeline in order.
	Steps []StepConfig `koanf:"steps"`

	// Curve overrides the built-in compensation curve when non-empty.
	Curve []BreakpointConfig `koanf:"curve"`

	// Adjustments are applied to every offer in order.
	Adjustments []AdjustmentConfig `koanf:"adjustments"`

	// Population parameters.
	SkillMean float64 `koanf:"skill_mean"`
	SkillStd  float64 `koanf:"skill_std"`
	ErrorMean float64 `koanf:"error_mean"`
	ErrorStd  float64 `koanf:"error_std"`
	BiasStd   float64 `koanf:"bias_std"`

	// TopCandidates sets how many leading screening records the run
	// report includes.
	TopCandidates int `koanf:"top_candidates"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		Seed:                1,
		Trials:              100,
		Workers:             runtime.NumCPU(),
		Strategy:            "immediate",
		TargetScore:         70,
		MaxCandidates:       1000,
		Tolerance:           0.15,
		SelfAssessmentHours: 1.0,
		Steps: []StepConfig{
			{Interviewers: 1, Duration: 0.25},
			{Interviewers: 2, Duration: 0.5},
			{Interviewers: 4, Duration: 1.5},
		},
		SkillMean:     50,
		SkillStd:      25,
		ErrorMean:     10,
		ErrorStd:      3,
		BiasStd:       5,
		TopCandidates: 10,
	}
}
