package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/hiresim/internal/domain/model"
)

// Strategy combines per-step scores into an accept/reject decision.
// A score exactly equal to the threshold counts as passing under both
// variants; that is the canonical tie-break rule here.
type Strategy interface {
	// Evaluate runs the candidate through the pipeline's steps and
	// returns the decision plus the estimates collected along the way.
	Evaluate(ctx context.Context, p *Pipeline, candidate model.Engineer) (model.PipelineResult, error)

	// Name returns the strategy's configuration name.
	Name() string
}

// Strategy configuration names.
const (
	StrategyImmediate = "immediate"
	StrategyAggregate = "aggregate"
)

// Parse maps a configuration name to a strategy variant.
func Parse(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyImmediate:
		return Immediate{}, nil
	case StrategyAggregate:
		return Aggregate{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Immediate fails fast: evaluation stops at the first step whose score
// falls below the threshold, and the result records only the steps that
// actually ran.
type Immediate struct{}

// Name implements Strategy.
func (Immediate) Name() string { return StrategyImmediate }

// Evaluate implements Strategy.
func (Immediate) Evaluate(_ context.Context, p *Pipeline, candidate model.Engineer) (model.PipelineResult, error) {
	executed := make([]model.StepResult, 0, len(p.steps))
	for i := range p.steps {
		step, err := p.runStep(i, candidate)
		if err != nil {
			return model.PipelineResult{}, err
		}
		executed = append(executed, step)

		if step.Score < p.threshold {
			return model.PipelineResult{
				Pass:       false,
				Steps:      executed,
				FinalScore: step.Score,
				TotalTime:  totalTime(executed),
			}, nil
		}
	}

	return model.PipelineResult{
		Pass:       true,
		Steps:      executed,
		FinalScore: meanStepScore(executed),
		TotalTime:  totalTime(executed),
	}, nil
}

// Aggregate runs every step unconditionally and thresholds the mean of
// all per-step scores once at the end.
type Aggregate struct{}

// Name implements Strategy.
func (Aggregate) Name() string { return StrategyAggregate }

// Evaluate implements Strategy.
func (Aggregate) Evaluate(_ context.Context, p *Pipeline, candidate model.Engineer) (model.PipelineResult, error) {
	executed := make([]model.StepResult, 0, len(p.steps))
	for i := range p.steps {
		step, err := p.runStep(i, candidate)
		if err != nil {
			return model.PipelineResult{}, err
		}
		executed = append(executed, step)
	}

	final := meanStepScore(executed)
	return model.PipelineResult{
		Pass:       final >= p.threshold,
		Steps:      executed,
		FinalScore: final,
		TotalTime:  totalTime(executed),
	}, nil
}
