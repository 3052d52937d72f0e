// Package apperrors defines the domain error taxonomy. Services return these
// sentinels (possibly wrapped with fmt.Errorf %w); handlers map them to HTTP
// status codes without inspecting error strings.
package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed a pre-flight business check.
// Such errors never reach the database — no mutation has been attempted.
var ErrValidation = errors.New("validation error")

// ErrDuplicateClosure indicates a daily closure already exists for the
// (park, date) pair. The caller should show the existing closure instead.
var ErrDuplicateClosure = errors.New("closure already exists for this date")

// ErrInvalidStateTransition indicates a closure lifecycle operation was called
// out of order (validate on non-pending, lock on non-validated, …). Not
// retryable without fixing state.
var ErrInvalidStateTransition = errors.New("invalid closure state transition")

// ErrStaleWrite indicates the optimistic-concurrency token did not match:
// another actor mutated the record between read and write. Distinct from
// ErrInvalidStateTransition so the UI can ask the user to reload.
var ErrStaleWrite = errors.New("record was modified by another user")

// ErrForbidden indicates the actor's role does not permit the operation.
var ErrForbidden = errors.New("insufficient role for this operation")
