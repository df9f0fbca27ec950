package sim

import "errors"

// Package-level sentinel errors.
var (
	// ErrBatchAborted indicates the batch could not run to completion.
	ErrBatchAborted = errors.New("simulation batch aborted")

	// ErrTrialFailed indicates one or more trials errored and were
	// dropped, so the summary does not cover the whole batch.
	ErrTrialFailed = errors.New("trial failed")
)
