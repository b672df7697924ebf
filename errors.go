package avlmap

import "errors"

var (
	// ErrInvariantViolation signals that the diagnostic checker found a broken
	// tree invariant. A violation indicates a logic defect, not a recoverable
	// runtime condition.
	ErrInvariantViolation = errors.New("avlmap: invariant violation")
)
