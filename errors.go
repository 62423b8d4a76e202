package turboselect

import "fmt"

// PreconditionError reports a violated precondition at the selection
// boundary: an out-of-range rank, most commonly. Per spec.md §7 these are
// programmer errors, not recoverable conditions, so the entry points in
// this package panic with a *PreconditionError rather than returning one —
// callers that want to turn the panic back into a value can recover and
// check with errors.As, in the style of the teacher's typed
// frequencies.ErrorTypeEnum rather than a loose string.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return e.Msg
}

func checkRank(k, n int) {
	if n == 0 {
		panic(&PreconditionError{Msg: "turboselect: cannot select from an empty slice"})
	}
	if k < 0 || k >= n {
		panic(&PreconditionError{Msg: fmt.Sprintf("turboselect: rank %d out of range for length %d", k, n)})
	}
}
