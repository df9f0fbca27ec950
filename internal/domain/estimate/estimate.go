// Package estimate implements the noisy perceived-skill model.
//
// An estimator turns a true skill value into a perceived one:
//
//	perceived = trueSkill + bias + Normal(0, errorRate/f(duration))
//
// where f is monotonically increasing in duration, so longer assessments
// produce lower-variance reads. The default spread function is
// f(d) = sqrt(d); it is a documented tunable, not a law, and can be
// replaced with WithSpread.
package estimate

import (
	"fmt"
	"math"
	"math/rand"
)

// Skill range observed by the range observer. Estimates themselves are
// never clamped here; clamping is the compensation boundary's policy.
const (
	minSkill = 1.0
	maxSkill = 100.0
)

// Estimator produces a perceived skill value from a true one.
type Estimator interface {
	// Estimate returns the perceived skill for a candidate with the given
	// true skill, as read by an assessor with the given bias and error
	// rate over an assessment of the given duration (hours).
	Estimate(trueSkill, bias, errorRate, duration float64) (float64, error)
}

// RangeObserver is notified whenever a produced estimate falls outside
// [1,100] before any clamping. Used for calibration diagnostics.
type RangeObserver func(value float64)

// SpreadFunc maps an assessment duration to the divisor applied to the
// assessor's error rate. Must be positive for positive durations and
// monotonically increasing.
type SpreadFunc func(duration float64) float64

// Option applies a configuration option to the NoisyEstimator.
type Option func(*NoisyEstimator)

// WithSpread replaces the default sqrt spread function.
func WithSpread(f SpreadFunc) Option {
	return func(e *NoisyEstimator) {
		if f != nil {
			e.spread = f
		}
	}
}

// WithRangeObserver registers a hook fired on out-of-range estimates.
func WithRangeObserver(obs RangeObserver) Option {
	return func(e *NoisyEstimator) {
		if obs != nil {
			e.observer = obs
		}
	}
}

// NoisyEstimator implements Estimator over an explicitly injected random
// source. The source is owned by the caller: one source per trial,
// candidates evaluated strictly sequentially against it.
type NoisyEstimator struct {
	rng      *rand.Rand
	spread   SpreadFunc
	observer RangeObserver
}

// New creates an estimator bound to the given random source.
func New(rng *rand.Rand, opts ...Option) *NoisyEstimator {
	e := &NoisyEstimator{
		rng:    rng,
		spread: math.Sqrt,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Estimate produces one perceived-skill reading. It consumes exactly one
// normal draw from the random source per call, regardless of parameters,
// so the stream position stays aligned across configurations.
func (e *NoisyEstimator) Estimate(trueSkill, bias, errorRate, duration float64) (float64, error) {
	if duration <= 0 {
		return 0, fmt.Errorf("%w: duration %v", ErrInvalidDuration, duration)
	}
	if errorRate < 0 {
		return 0, fmt.Errorf("%w: error rate %v", ErrInvalidErrorRate, errorRate)
	}

	noise := e.rng.NormFloat64() * (errorRate / e.spread(duration))
	perceived := trueSkill + bias + noise

	if e.observer != nil && (perceived < minSkill || perceived > maxSkill) {
		e.observer(perceived)
	}

	return perceived, nil
}
