package hostmock

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tarmac-project/spy"
	wapc "github.com/wapc/wapc-guest-tinygo"
	"go.uber.org/zap"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// HostCall is the waPC host function signature.
type HostCall func(namespace, capability, function string, payload []byte) ([]byte, error)

// Mock simulates the waPC host. Every HostCall is recorded in Ledger before
// any validation happens.
type Mock struct {
	// ExpectedNamespace, when set, is the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability, when set, is the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction, when set, is the function name expected in the host call.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool

	// Passthrough forwards validated calls without a Response to the real host.
	Passthrough bool

	// Ledger holds every host call observed by the mock.
	Ledger *spy.Ledger

	// host is used when Passthrough is set.
	host HostCall
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	// Leave empty to accept any namespace.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	// Leave empty to accept any capability.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	// Leave empty to accept any function.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool

	// Passthrough forwards validated calls without a Response to HostCall.
	Passthrough bool

	// HostCall is the real host used by Passthrough. Defaults to wapc.HostCall.
	HostCall HostCall

	// Ledger records the host calls. If nil, a new Ledger is created.
	Ledger *spy.Ledger

	// Logger is passed to the Ledger created when Ledger is nil.
	Logger *zap.Logger
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	ledger := config.Ledger
	if ledger == nil {
		ledger = spy.New(spy.Config{Logger: config.Logger})
	}

	host := config.HostCall
	if host == nil {
		host = wapc.HostCall
	}

	return &Mock{
		ExpectedNamespace:  config.ExpectedNamespace,
		ExpectedCapability: config.ExpectedCapability,
		ExpectedFunction:   config.ExpectedFunction,
		Error:              config.Error,
		Fail:               config.Fail,
		PayloadValidator:   config.PayloadValidator,
		Response:           config.Response,
		Passthrough:        config.Passthrough,
		Ledger:             ledger,
		host:               host,
	}, nil
}

// Key returns the ledger method name under which a host call is recorded.
func Key(namespace, capability, function string) string {
	return namespace + "/" + capability + "/" + function
}

// HostCall records the call, then validates inputs and returns a response or error.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.Ledger.Record(Key(namespace, capability, function), slices.Clone(payload))

	// Return user-defined error if Fail is set
	if m.Fail && m.Error != nil {
		return nil, m.Error
	}

	// Return default error if Fail is set but no custom error is provided
	if m.Fail {
		return nil, ErrOperationFailed
	}

	// Validate namespace
	if m.ExpectedNamespace != "" && m.ExpectedNamespace != namespace {
		return nil, fmt.Errorf(
			"%w: expected namespace %s, got %s",
			ErrUnexpectedNamespace,
			m.ExpectedNamespace,
			namespace,
		)
	}

	// Validate capability
	if m.ExpectedCapability != "" && m.ExpectedCapability != capability {
		return nil, fmt.Errorf(
			"%w: expected capability %s, got %s",
			ErrUnexpectedCapability,
			m.ExpectedCapability,
			capability,
		)
	}

	// Validate function
	if m.ExpectedFunction != "" && m.ExpectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.ExpectedFunction, function)
	}

	// Validate payload using user-defined validator, if provided
	if m.PayloadValidator != nil {
		if err := m.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	// Return user-defined response if provided
	if m.Response != nil {
		return m.Response(), nil
	}

	if m.Passthrough {
		return m.host(namespace, capability, function, payload)
	}

	// Default to no response
	return nil, nil
}

// Verify checks the oldest unverified host call to namespace/capability/function
// against the expected payload, a []byte literal or a match.Matcher such as
// match.Proto.
func (m *Mock) Verify(namespace, capability, function string, payload any) error {
	return m.Ledger.Verify(Key(namespace, capability, function), payload)
}
