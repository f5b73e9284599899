// Package errs defines the typed error kinds algorithms and the HTTP
// façade agree on. Every algorithm in pkg/algorithm reports the first
// error it hits and never retries.
package errs

import "fmt"

// Kind classifies a failure the way the algorithms layer can produce it.
type Kind string

const (
	// InvalidInput covers malformed matrices, bad k, or combinatorially
	// infeasible requests (k > n for brute force).
	InvalidInput Kind = "InvalidInput"

	// SolverUnavailable means the assignment or ASP solver backend
	// could not be constructed at runtime.
	SolverUnavailable Kind = "SolverUnavailable"

	// NoSolution means a solver ran but returned a non-optimal status.
	NoSolution Kind = "NoSolution"

	// SolverOutputMalformed means the ASP solver's stdout didn't match
	// the expected Answer/Optimization structure.
	SolverOutputMalformed Kind = "SolverOutputMalformed"

	// Numerical covers eigendecomposition failing to converge, or a
	// Laplacian that isn't symmetric within tolerance.
	Numerical Kind = "Numerical"
)

// Error is the concrete error type carrying a Kind alongside a message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an *Error of the given kind wrapping a lower-level cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}

// HTTPStatus maps every Kind to the 400 the HTTP boundary always
// returns — spec policy is that no algorithm error is ever partial or
// retried, so there's no 5xx path for algorithm-level failures.
func HTTPStatus(err error) int {
	return 400
}
