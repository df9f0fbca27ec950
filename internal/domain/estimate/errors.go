package estimate

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidDuration  = errors.New("assessment duration must be positive")
	ErrInvalidErrorRate = errors.New("error rate must be non-negative")
)
