package compensation

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidCurve      = errors.New("invalid compensation curve")
	ErrUnknownAdjustment = errors.New("unknown adjustment kind")
)
