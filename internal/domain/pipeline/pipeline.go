// Package pipeline runs candidates through an ordered interview sequence
// and turns the collected estimates into a pass/fail decision.
package pipeline

import (
	"context"
	"fmt"

	"github.com/okian/hiresim/internal/domain/estimate"
	"github.com/okian/hiresim/internal/domain/model"
)

// Pipeline is an immutable ordered sequence of interview steps plus the
// evaluation strategy and pass threshold. All configuration is validated
// at construction; evaluation itself cannot fail for well-formed
// candidate data.
type Pipeline struct {
	steps     []StepSpec
	threshold float64
	strategy  Strategy
	estimator estimate.Estimator
}

// New builds a pipeline, validating every step eagerly.
func New(steps []StepSpec, threshold float64, strategy Strategy, estimator estimate.Estimator) (*Pipeline, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if estimator == nil {
		return nil, ErrNilEstimator
	}
	for i, s := range steps {
		if err := s.validate(i); err != nil {
			return nil, err
		}
	}

	return &Pipeline{
		steps:     append([]StepSpec(nil), steps...),
		threshold: threshold,
		strategy:  strategy,
		estimator: estimator,
	}, nil
}

// Threshold returns the configured pass threshold.
func (p *Pipeline) Threshold() float64 {
	return p.threshold
}

// Len returns the number of configured steps.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Evaluate runs one candidate through the pipeline under the configured
// strategy. Context is accepted per project convention; evaluation is a
// synchronous CPU-bound computation with no suspension points.
func (p *Pipeline) Evaluate(ctx context.Context, candidate model.Engineer) (model.PipelineResult, error) {
	result, err := p.strategy.Evaluate(ctx, p, candidate)
	if err != nil {
		return model.PipelineResult{}, fmt.Errorf("evaluate candidate %s: %w", candidate.ID, err)
	}
	result.CandidateID = candidate.ID
	return result, nil
}

// meanStepScore averages the per-step scores of executed steps.
func meanStepScore(steps []model.StepResult) float64 {
	sum := 0.0
	for _, s := range steps {
		sum += s.Score
	}
	return sum / float64(len(steps))
}

// totalTime sums the durations of executed steps.
func totalTime(steps []model.StepResult) float64 {
	sum := 0.0
	for _, s := range steps {
		sum += s.Duration
	}
	return sum
}
