package spytest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarmac-project/spy"
	"go.uber.org/zap/zaptest"
)

// NewLedger returns a Ledger that logs to t, so recorded and verified calls
// show up in `go test -v` output.
func NewLedger(t testing.TB) *spy.Ledger {
	t.Helper()
	return spy.New(spy.Config{Logger: zaptest.NewLogger(t)})
}

type tHelper interface {
	Helper()
}

// Verify asserts that the next unverified call of method matches expected. It
// marks the test as failed but lets it continue, like assert.NoError.
func Verify(t assert.TestingT, l *spy.Ledger, method string, expected ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.NoError(t, l.Verify(method, expected...), "verify %s", method)
}

// Require is like Verify but stops the test on failure.
func Require(t require.TestingT, l *spy.Ledger, method string, expected ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	require.NoError(t, l.Verify(method, expected...), "verify %s", method)
}

// NotCalled asserts that method has no unverified call left.
func NotCalled(t assert.TestingT, l *spy.Ledger, method string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.Zero(t, l.Pending(method), "expected no unverified %s calls, found %v", method, l.Calls(method))
}

// NoMoreCalls asserts that every recorded call was verified.
func NoMoreCalls(t assert.TestingT, l *spy.Ledger) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.NoError(t, l.VerifyNoMoreCalls())
}

// CallCount asserts the aggregate call counter of l.
func CallCount(t assert.TestingT, l *spy.Ledger, want int) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return assert.Equal(t, want, l.CallCount(), "call count")
}
