package pipeline

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNoSteps         = errors.New("pipeline must have at least one step")
	ErrNoAssessors     = errors.New("interview step must have at least one assessor")
	ErrInvalidDuration = errors.New("interview step duration must be positive")
	ErrNotInterviewer  = errors.New("step assessor must have the interviewer role")
	ErrNilStrategy     = errors.New("evaluation strategy must be provided")
	ErrNilEstimator    = errors.New("estimator must be provided")
	ErrUnknownStrategy = errors.New("unknown evaluation strategy")
)
