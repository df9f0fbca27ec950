package app

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNilPipeline          = errors.New("pipeline must be provided")
	ErrNilCompensation      = errors.New("compensation model must be provided")
	ErrInvalidMaxCandidates = errors.New("max candidates must be positive")
)
