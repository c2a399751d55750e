package spy

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCalled indicates the method has no unconsumed recorded call, either
	// because it was never called or because every call was already verified.
	ErrNotCalled = errors.New("method not called")

	// ErrArityMismatch indicates the expected and recorded argument counts differ.
	ErrArityMismatch = errors.New("argument count mismatch")

	// ErrArgumentMismatch indicates a positional argument failed equality or matching.
	ErrArgumentMismatch = errors.New("argument mismatch")

	// ErrUnverifiedCalls is returned by VerifyNoMoreCalls when recorded calls remain.
	ErrUnverifiedCalls = errors.New("unverified calls remain")
)

// ArityError reports a verification whose expected argument count differs
// from the recorded one. It unwraps to ErrArityMismatch.
type ArityError struct {
	Method   string
	Expected int
	Found    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s: expected %d arguments, found %d", ErrArityMismatch, e.Method, e.Expected, e.Found)
}

func (e *ArityError) Unwrap() error { return ErrArityMismatch }

// ArgumentError reports the first argument that did not match during a
// verification. It unwraps to ErrArgumentMismatch.
type ArgumentError struct {
	Method string

	// Index is the zero-based position of the offending argument.
	Index int

	// Expected describes the expected literal or matcher.
	Expected string

	// Found describes the recorded value.
	Found string

	// FoundType is the recorded value's type name, or "null".
	FoundType string

	// Diff holds a structural diff for composite literals, if any.
	Diff string
}

func (e *ArgumentError) Error() string {
	msg := fmt.Sprintf("%s: %s argument %d: expected %s, found %s (%s)",
		ErrArgumentMismatch, e.Method, e.Index, e.Expected, e.Found, e.FoundType)
	if e.Diff != "" {
		msg += "\n" + e.Diff
	}
	return msg
}

func (e *ArgumentError) Unwrap() error { return ErrArgumentMismatch }
