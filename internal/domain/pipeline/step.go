package pipeline

import (
	"fmt"

	"github.com/okian/hiresim/internal/domain/model"
	"github.com/okian/hiresim/pkg/metrics"
)

// StepSpec is the immutable configuration of one interview step: a
// duration in hours and at least one interviewer. Specs are shared
// read-only across every candidate run through the pipeline.
type StepSpec struct {
	Duration  float64
	Assessors []model.Engineer
}

// validate checks a step at pipeline-construction time.
func (s StepSpec) validate(index int) error {
	if s.Duration <= 0 {
		return fmt.Errorf("%w: step %d duration %v", ErrInvalidDuration, index, s.Duration)
	}
	if len(s.Assessors) == 0 {
		return fmt.Errorf("%w: step %d", ErrNoAssessors, index)
	}
	for _, a := range s.Assessors {
		if a.Role != model.RoleInterviewer {
			return fmt.Errorf("%w: step %d assessor %s has role %q", ErrNotInterviewer, index, a.ID, a.Role)
		}
	}
	return nil
}

// runStep collects one estimate per assessor, iterating assessors in
// their configured order so the random-draw order is deterministic. The
// per-step score is the mean of the step's estimates.
func (p *Pipeline) runStep(index int, candidate model.Engineer) (model.StepResult, error) {
	spec := p.steps[index]
	estimates := make([]model.Estimate, 0, len(spec.Assessors))
	sum := 0.0
	for _, assessor := range spec.Assessors {
		value, err := p.estimator.Estimate(candidate.TrueSkill, assessor.Bias, assessor.ErrorRate, spec.Duration)
		if err != nil {
			return model.StepResult{}, fmt.Errorf("step %d assessor %s: %w", index, assessor.ID, err)
		}
		metrics.RecordEstimate()
		estimates = append(estimates, model.Estimate{
			AssessorID: assessor.ID,
			Step:       index,
			Value:      value,
		})
		sum += value
	}

	return model.StepResult{
		Step:      index,
		Duration:  spec.Duration,
		Estimates: estimates,
		Score:     sum / float64(len(estimates)),
	}, nil
}
