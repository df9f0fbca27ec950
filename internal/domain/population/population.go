// Package population generates the engineers a simulation draws from.
//
// Generation is driven entirely by an injected random source, so a fixed
// seed reproduces the exact same population. Engineer IDs are name-based
// UUIDs derived from the generator prefix and draw counter, which keeps
// identities stable across identically seeded runs.
package population

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/hiresim/internal/domain/estimate"
	"github.com/okian/hiresim/internal/domain/model"
)

// Defaults mirror the calibration of the source system: skill is drawn
// from N(50,25) clamped into [1,100], error rates from N(10,3) floored at
// zero, and biases from N(0,5).
const (
	defaultSkillMean    = 50.0
	defaultSkillStd     = 25.0
	defaultErrorMean    = 10.0
	defaultErrorStd     = 3.0
	defaultBiasStd      = 5.0
	defaultSelfDuration = 1.0
	defaultMaxAttempts  = 10_000
)

// Skill domain bounds.
const (
	minSkill = 1.0
	maxSkill = 100.0
)

// Source supplies engineers to the search loop. The second return value
// reports whether a next engineer was available.
type Source interface {
	Next(ctx context.Context) (model.Engineer, bool)
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSkillDistribution sets the mean and spread of true skill draws.
func WithSkillDistribution(mean, std float64) Option {
	return func(g *Generator) {
		if std >= 0 {
			g.skillMean = mean
			g.skillStd = std
		}
	}
}

// WithErrorDistribution sets the mean and spread of error-rate draws.
func WithErrorDistribution(mean, std float64) Option {
	return func(g *Generator) {
		if std >= 0 {
			g.errorMean = mean
			g.errorStd = std
		}
	}
}

// WithBiasStd sets the spread of bias draws.
func WithBiasStd(std float64) Option {
	return func(g *Generator) {
		if std >= 0 {
			g.biasStd = std
		}
	}
}

// WithSelfAssessmentDuration sets the duration used for the one-time
// self-assessment at creation.
func WithSelfAssessmentDuration(d float64) Option {
	return func(g *Generator) {
		if d > 0 {
			g.selfDuration = d
		}
	}
}

// WithTargetScreen enables the candidate pre-screen: only engineers whose
// self-perceived skill falls within tolerance of their own noisy read of
// the target score are yielded. This models candidates self-selecting
// into roles they believe match their level.
func WithTargetScreen(targetScore, tolerance float64) Option {
	return func(g *Generator) {
		if tolerance > 0 {
			g.targetScore = targetScore
			g.tolerance = tolerance
		}
	}
}

// WithIDPrefix scopes generated engineer IDs, e.g. per trial.
func WithIDPrefix(prefix string) Option {
	return func(g *Generator) {
		if prefix != "" {
			g.idPrefix = prefix
		}
	}
}

// WithMaxAttempts bounds how many rejected draws Next tolerates before
// reporting exhaustion.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// Generator produces an effectively infinite stream of random engineers.
type Generator struct {
	rng       *rand.Rand
	estimator estimate.Estimator
	role      model.Role
	idPrefix  string
	counter   int

	skillMean    float64
	skillStd     float64
	errorMean    float64
	errorStd     float64
	biasStd      float64
	selfDuration float64

	// Candidate pre-screen; tolerance zero disables it.
	targetScore float64
	tolerance   float64
	maxAttempts int
}

// NewGenerator creates a generator for the given role over the given
// random source. The estimator must share the same source so draw order
// stays deterministic.
func NewGenerator(rng *rand.Rand, estimator estimate.Estimator, role model.Role, opts ...Option) *Generator {
	g := &Generator{
		rng:          rng,
		estimator:    estimator,
		role:         role,
		idPrefix:     string(role),
		skillMean:    defaultSkillMean,
		skillStd:     defaultSkillStd,
		errorMean:    defaultErrorMean,
		errorStd:     defaultErrorStd,
		biasStd:      defaultBiasStd,
		selfDuration: defaultSelfDuration,
		maxAttempts:  defaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Next draws engineers until one clears the pre-screen (when enabled).
// It reports false only when maxAttempts draws were all rejected.
func (g *Generator) Next(_ context.Context) (model.Engineer, bool) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		eng := g.draw()
		if g.tolerance <= 0 {
			return eng, true
		}

		// The candidate's own noisy read of the target score; consumes
		// one draw like any other estimate.
		estimatedTarget, err := g.estimator.Estimate(g.targetScore, eng.Bias, eng.ErrorRate, g.selfDuration)
		if err != nil {
			return model.Engineer{}, false
		}
		lower := estimatedTarget * (1 - g.tolerance)
		upper := estimatedTarget * (1 + g.tolerance)
		if eng.SelfPerceived >= lower && eng.SelfPerceived <= upper {
			return eng, true
		}
	}
	return model.Engineer{}, false
}

// Panel draws n engineers regardless of any pre-screen, for building
// interviewer rosters.
func (g *Generator) Panel(n int) []model.Engineer {
	out := make([]model.Engineer, n)
	for i := range out {
		out[i] = g.draw()
	}
	return out
}

// draw creates one engineer, consuming three parameter draws plus one
// estimate draw for the self-assessment.
func (g *Generator) draw() model.Engineer {
	skill := clamp(g.rng.NormFloat64()*g.skillStd+g.skillMean, minSkill, maxSkill)
	errorRate := g.rng.NormFloat64()*g.errorStd + g.errorMean
	if errorRate < 0 {
		errorRate = 0
	}
	bias := g.rng.NormFloat64() * g.biasStd

	g.counter++
	eng := model.Engineer{
		ID:        g.id(g.counter),
		Role:      g.role,
		TrueSkill: skill,
		Bias:      bias,
		ErrorRate: errorRate,
	}

	// Self-assessment uses the engineer's own bias and error rate. The
	// estimator only rejects a non-positive duration or a negative error
	// rate; selfDuration is guarded by its option and errorRate is
	// floored at zero above, so the error path cannot trigger here.
	perceived, err := g.estimator.Estimate(skill, bias, errorRate, g.selfDuration)
	if err == nil {
		eng.SelfPerceived = perceived
	}
	return eng
}

// id derives a stable, reproducible UUID from the prefix and counter.
func (g *Generator) id(n int) string {
	name := fmt.Sprintf("%s-%d", g.idPrefix, n)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// Sampler draws with replacement from a fixed panel, so the same engineer
// can surface more than once; the search layer screens out repeats.
type Sampler struct {
	rng  *rand.Rand
	pool []model.Engineer
}

// NewSampler creates a sampler over a fixed pool.
func NewSampler(rng *rand.Rand, pool []model.Engineer) *Sampler {
	return &Sampler{
		rng:  rng,
		pool: append([]model.Engineer(nil), pool...),
	}
}

// Next implements Source.
func (s *Sampler) Next(_ context.Context) (model.Engineer, bool) {
	if len(s.pool) == 0 {
		return model.Engineer{}, false
	}
	return s.pool[s.rng.Intn(len(s.pool))], true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
