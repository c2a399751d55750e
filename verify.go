package spy

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tarmac-project/spy/match"
	"go.uber.org/zap"
)

// Verify checks the oldest unverified call of method against expected and
// consumes it. Each expected element is either a match.Matcher or a literal
// compared with match.Equal.
//
// The call is consumed even when the check fails, so every Verify inspects
// exactly one recorded call.
func (l *Ledger) Verify(method string, expected ...any) error {
	r, ok := l.records[method]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotCalled, method)
	}

	if len(r.history) == 0 {
		return fmt.Errorf("%w: %s: no more recorded calls (%d recorded)", ErrNotCalled, method, r.count)
	}

	args := r.history[0]
	r.history[0] = nil
	r.history = r.history[1:]

	err := check(method, expected, args)
	l.logger().Debug("call verified",
		zap.String("method", method),
		zap.Int("pending", len(r.history)),
		zap.Error(err),
	)
	return err
}

// VerifyNoMoreCalls fails when any recorded call has not been verified yet.
func (l *Ledger) VerifyNoMoreCalls() error {
	var left []string
	for _, name := range l.Methods() {
		if n := len(l.records[name].history); n > 0 {
			left = append(left, fmt.Sprintf("%s (%d)", name, n))
		}
	}

	if len(left) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnverifiedCalls, strings.Join(left, ", "))
}

// check compares a single recorded tuple with the expected arguments.
func check(method string, expected, args []any) error {
	if len(expected) != len(args) {
		return &ArityError{Method: method, Expected: len(expected), Found: len(args)}
	}

	for i, want := range expected {
		got := args[i]

		if m, ok := want.(match.Matcher); ok {
			if !m.Matches(got) {
				return &ArgumentError{
					Method:    method,
					Index:     i,
					Expected:  m.String(),
					Found:     fmt.Sprintf("%v", got),
					FoundType: match.TypeName(got),
				}
			}
			continue
		}

		if !match.Equal(want, got) {
			return &ArgumentError{
				Method:    method,
				Index:     i,
				Expected:  fmt.Sprintf("%v (%s)", want, match.TypeName(want)),
				Found:     fmt.Sprintf("%v", got),
				FoundType: match.TypeName(got),
				Diff:      diff(want, got),
			}
		}
	}

	return nil
}

// diff returns a structural diff for composite values only; scalars are
// already fully described by the error message.
func diff(want, got any) string {
	if want == nil {
		return ""
	}
	switch reflect.TypeOf(want).Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map, reflect.Pointer:
		return match.Diff(want, got)
	}
	return ""
}
