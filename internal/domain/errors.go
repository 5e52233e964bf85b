package domain

import "errors"

// Sentinel errors for missing entities. Callers distinguish these from
// infrastructure failures with errors.Is; everything else propagates
// unchanged.
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrActivityNotFound = errors.New("activity not found")
)
