package domain

import "errors"

// Contract violations. None of these are retried: each one means the policy or
// its caller produced an impossible command, and the run must stop.
var (
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrOutOfBounds       = errors.New("out of bounds")
	ErrInvalidBoarding   = errors.New("invalid boarding")
	ErrInvalidDisembark  = errors.New("invalid disembark")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrTickLimitExceeded = errors.New("tick limit exceeded")
)
