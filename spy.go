package spy

import (
	"sort"

	"go.uber.org/zap"
)

// Config provides configuration options for a Ledger.
type Config struct {
	// Logger receives debug entries for every record and verification.
	// If nil, logging is disabled.
	Logger *zap.Logger
}

// record holds the history of a single method.
type record struct {
	// count is the number of times the method was recorded. It is never
	// decremented, not even by verification.
	count int

	// history is the FIFO of argument tuples not yet consumed by Verify.
	history [][]any
}

// Ledger records the calls made against a test double, keyed by method name,
// and verifies them in call order.
//
// The zero value is an empty Ledger that does not log. A Ledger is owned by
// one test and is not safe for concurrent use.
type Ledger struct {
	records map[string]*record
	calls   int
	log     *zap.Logger
}

// New creates an empty Ledger.
func New(config Config) *Ledger {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Ledger{
		records: make(map[string]*record),
		log:     logger,
	}
}

// Record appends args to the history of method. It never fails, whatever the
// method name or arguments, so instrumentation cannot break a test by itself.
func (l *Ledger) Record(method string, args ...any) {
	if l.records == nil {
		l.records = make(map[string]*record)
	}

	r, ok := l.records[method]
	if !ok {
		r = &record{}
		l.records[method] = r
	}

	r.count++
	r.history = append(r.history, append([]any{}, args...))
	l.calls++

	l.logger().Debug("call recorded",
		zap.String("method", method),
		zap.Int("arity", len(args)),
		zap.Int("pending", len(r.history)),
	)
}

func (l *Ledger) logger() *zap.Logger {
	if l.log == nil {
		l.log = zap.NewNop()
	}
	return l.log
}

// CallCount returns the number of calls recorded across all methods since the
// Ledger was created or last Reset.
func (l *Ledger) CallCount() int { return l.calls }

// Reset zeroes the aggregate call counter. Recorded argument histories are
// kept and remain verifiable; use Clear to drop them too.
func (l *Ledger) Reset() {
	l.calls = 0
	l.logger().Debug("call counter reset")
}

// Clear drops every recorded history and zeroes all counters.
func (l *Ledger) Clear() {
	l.records = make(map[string]*record)
	l.calls = 0
	l.logger().Debug("ledger cleared")
}

// Count returns how many times method was recorded, verified or not.
func (l *Ledger) Count(method string) int {
	if r, ok := l.records[method]; ok {
		return r.count
	}
	return 0
}

// Pending returns how many recorded calls of method are still unverified.
func (l *Ledger) Pending(method string) int {
	if r, ok := l.records[method]; ok {
		return len(r.history)
	}
	return 0
}

// Calls returns a copy of the unverified argument tuples of method, oldest
// first. It does not consume them.
func (l *Ledger) Calls(method string) [][]any {
	r, ok := l.records[method]
	if !ok {
		return nil
	}

	calls := make([][]any, 0, len(r.history))
	for _, args := range r.history {
		calls = append(calls, append([]any{}, args...))
	}
	return calls
}

// Methods returns the sorted names of every method recorded at least once.
func (l *Ledger) Methods() []string {
	names := make([]string, 0, len(l.records))
	for name := range l.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
