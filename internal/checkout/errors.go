package checkout

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when Submit is called while a
// previous submission is still awaiting its response. At most one
// submission may be in flight per checkout session.
var ErrSubmissionInFlight = errors.New("checkout: submission already in flight")

// ValidationError reports a pre-submission contract violation
// (missing required customer fields or an empty cart). It is raised
// before any network I/O.
type ValidationError struct {
	Field  string // "name", "email" or "cart"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: invalid %s: %s", e.Field, e.Reason)
}

// SubmissionError reports a network or server failure while the order
// was being submitted. The cart is left intact so the same contents
// can be resubmitted.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("checkout: submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
