package fsrs

import (
	"errors"
	"fmt"
)

// ErrInvalidInstant is returned when a time.Time argument is not UTC. A
// non-new card with no LastReview is reported as an InvariantError instead.
var ErrInvalidInstant = errors.New("fsrs: invalid instant")

// ErrInvalidParameter is returned by NewEngine when Parameters fail
// construction-time validation.
var ErrInvalidParameter = errors.New("fsrs: invalid parameter")

// InvariantError reports a Card that violates the data-model invariants
// for its state. The engine returns it rather than panicking; a library
// linked into a request path does not get to crash its host over a
// caller's bad state.
type InvariantError struct {
	Field   string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("fsrs: invariant violated on %s: %s", e.Field, e.Message)
}
