package repository

import "errors"

// Sentinel kinds for screening-store errors.
var (
	ErrNotFound        = errors.New("candidate not found")
	ErrInvalidLimit    = errors.New("invalid result limit")
	ErrDuplicateRecord = errors.New("candidate already recorded")
)
