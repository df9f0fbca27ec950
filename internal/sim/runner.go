// Package sim runs batches of independent hiring-search trials and
// aggregates their outcomes.
//
// Every trial owns a private random source seeded from the base seed plus
// the trial index, so a batch is reproducible whether it runs on one
// worker or many.
package sim

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/okian/hiresim/internal/adapters/mq/queue"
	"github.com/okian/hiresim/internal/adapters/mq/worker"
	"github.com/okian/hiresim/internal/app"
	"github.com/okian/hiresim/internal/config"
	"github.com/okian/hiresim/internal/domain/compensation"
	"github.com/okian/hiresim/internal/domain/estimate"
	"github.com/okian/hiresim/internal/domain/model"
	"github.com/okian/hiresim/internal/domain/pipeline"
	"github.com/okian/hiresim/internal/domain/population"
	"github.com/okian/hiresim/pkg/logger"
	"github.com/okian/hiresim/pkg/metrics"
)

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithSink routes every trial's screening records into the given sink.
func WithSink(sink app.Sink) Option {
	return func(r *Runner) {
		r.sink = sink
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// Runner executes the configured number of trials. It implements
// worker.Runner: each RunTrial builds a fresh pipeline and population
// over the trial's own random source.
type Runner struct {
	cfg      *config.Config
	comp     *compensation.Model
	strategy pipeline.Strategy
	budget   float64
	sink     app.Sink
	logger   logger.Logger
}

// New validates the simulation configuration eagerly and returns a
// runner. Configuration problems surface here, never mid-trial.
func New(cfg *config.Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, config.ErrInvalidConfig
	}
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", config.ErrInvalidConfig, cfg.Trials)
	}
	if cfg.MaxCandidates <= 0 {
		return nil, fmt.Errorf("%w: max_candidates must be positive, got %d", config.ErrInvalidConfig, cfg.MaxCandidates)
	}
	if len(cfg.Steps) == 0 {
		return nil, fmt.Errorf("%w: at least one interview step required", config.ErrInvalidConfig)
	}
	for i, s := range cfg.Steps {
		if s.Interviewers <= 0 {
			return nil, fmt.Errorf("%w: step %d needs at least one interviewer", config.ErrInvalidConfig, i)
		}
		if s.Duration <= 0 {
			return nil, fmt.Errorf("%w: step %d duration must be positive", config.ErrInvalidConfig, i)
		}
	}

	strategy, err := pipeline.Parse(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	comp, err := compensationModel(cfg)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:      cfg,
		comp:     comp,
		strategy: strategy,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = logger.Get().Named("sim")
	}

	// A zero budget derives the cap from the curve at the target score,
	// mirroring the original driver's "pay what the target is worth".
	r.budget = cfg.Budget
	if r.budget <= 0 {
		r.budget = comp.Offer(cfg.TargetScore).Final
	}

	return r, nil
}

// compensationModel builds the model from config, falling back to the
// built-in curve when none is configured.
func compensationModel(cfg *config.Config) (*compensation.Model, error) {
	curve := compensation.DefaultCurve()
	if len(cfg.Curve) > 0 {
		curve = make([]compensation.Breakpoint, len(cfg.Curve))
		for i, bp := range cfg.Curve {
			curve[i] = compensation.Breakpoint{Skill: bp.Skill, Comp: bp.Comp}
		}
	}

	adjustments := make([]compensation.Adjustment, len(cfg.Adjustments))
	for i, a := range cfg.Adjustments {
		adjustments[i] = compensation.Adjustment{
			Name:  a.Name,
			Kind:  compensation.Kind(a.Kind),
			Value: a.Value,
		}
	}

	return compensation.New(curve, adjustments)
}

// Run executes the whole batch and returns its summary. Trials flow
// through a bounded queue into the worker pool; workers=1 degenerates to
// a strictly sequential run.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	capacity := r.cfg.QueueSize
	if capacity < r.cfg.Trials {
		capacity = r.cfg.Trials
	}

	q := queue.NewInMemoryQueue(queue.WithCapacity(capacity))
	stats := NewStats()
	pool := worker.NewPool(r.cfg.Workers, q, r, stats)

	r.logger.Info(ctx, "starting simulation batch",
		logger.Int("trials", r.cfg.Trials),
		logger.Int("workers", pool.Size()),
		logger.String("strategy", r.strategy.Name()),
		logger.Float64("targetScore", r.cfg.TargetScore),
		logger.Float64("budget", r.budget),
		logger.Int64("seed", r.cfg.Seed),
	)

	pool.Start(ctx)

	for i := 0; i < r.cfg.Trials; i++ {
		trial := model.Trial{Index: i, Seed: r.cfg.Seed + int64(i)}
		if !q.Enqueue(ctx, trial) {
			return Summary{}, fmt.Errorf("enqueue trial %d: %w", i, ErrBatchAborted)
		}
	}
	if err := q.Close(); err != nil {
		return Summary{}, fmt.Errorf("close trial queue: %w", err)
	}

	if err := pool.Wait(ctx); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrBatchAborted, err)
	}

	// Workers log and drop failed trials; a shortfall here must not be
	// mistaken for a clean batch.
	summary := stats.Summary()
	if summary.Trials != r.cfg.Trials {
		return summary, fmt.Errorf("%w: %d of %d trials completed", ErrTrialFailed, summary.Trials, r.cfg.Trials)
	}
	return summary, nil
}

// RunTrial implements worker.Runner: one full candidate search over a
// trial-private random source.
func (r *Runner) RunTrial(ctx context.Context, trial model.Trial) (model.TrialResult, error) {
	rng := rand.New(rand.NewSource(trial.Seed)) //nolint:gosec // deterministic source is the point
	est := estimate.New(rng, estimate.WithRangeObserver(func(float64) {
		metrics.RecordRangeWarning()
	}))

	prefix := fmt.Sprintf("t%d", trial.Index)
	panelGen := population.NewGenerator(rng, est, model.RoleInterviewer,
		population.WithIDPrefix(prefix+"-int"),
		population.WithSkillDistribution(r.cfg.SkillMean, r.cfg.SkillStd),
		population.WithErrorDistribution(r.cfg.ErrorMean, r.cfg.ErrorStd),
		population.WithBiasStd(r.cfg.BiasStd),
		population.WithSelfAssessmentDuration(r.cfg.SelfAssessmentHours),
	)

	steps := make([]pipeline.StepSpec, len(r.cfg.Steps))
	for i, plan := range r.cfg.Steps {
		steps[i] = pipeline.StepSpec{
			Duration:  plan.Duration,
			Assessors: panelGen.Panel(plan.Interviewers),
		}
	}

	p, err := pipeline.New(steps, r.cfg.TargetScore, r.strategy, est)
	if err != nil {
		return model.TrialResult{}, fmt.Errorf("trial %d pipeline: %w", trial.Index, err)
	}

	svc, err := app.New(p, r.comp,
		app.WithMaxCandidates(r.cfg.MaxCandidates),
		app.WithBudget(r.budget),
		app.WithSink(r.sink),
		app.WithLogger(r.logger.Named(prefix)),
	)
	if err != nil {
		return model.TrialResult{}, fmt.Errorf("trial %d search: %w", trial.Index, err)
	}

	candidates := population.NewGenerator(rng, est, model.RoleCandidate,
		population.WithIDPrefix(prefix+"-cand"),
		population.WithSkillDistribution(r.cfg.SkillMean, r.cfg.SkillStd),
		population.WithErrorDistribution(r.cfg.ErrorMean, r.cfg.ErrorStd),
		population.WithBiasStd(r.cfg.BiasStd),
		population.WithSelfAssessmentDuration(r.cfg.SelfAssessmentHours),
		population.WithTargetScreen(r.cfg.TargetScore, r.cfg.Tolerance),
	)

	outcome, err := svc.Run(ctx, candidates)
	if err != nil {
		return model.TrialResult{}, fmt.Errorf("trial %d: %w", trial.Index, err)
	}

	result := model.TrialResult{
		Trial:    trial,
		Hired:    outcome.Hired,
		Screened: outcome.Screened,
	}
	if outcome.Hired {
		result.FinalScore = outcome.Result.FinalScore
		result.TrueSkill = outcome.Candidate.TrueSkill
		result.TotalTime = outcome.Result.TotalTime
		result.Offer = outcome.Offer.Final
	}
	return result, nil
}
