/*
Package hostmock provides a friendly pretend host for waPC calls.

It's designed for tests where you want to validate exactly what a component is
sending across the host boundary, without needing a real host running. Every
call is recorded in a spy.Ledger, so payloads can be verified after the fact,
in call order, with literals or matchers.

Why use hostmock?

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Inspect payloads: verify recorded protobuf payloads with match.Proto, or plug in a PayloadValidator.
  - Script responses: return custom bytes, simulate failures, or pass through to the real host.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "tarmac",
	  ExpectedCapability: "httpclient",
	  Response:           func() []byte { return []byte("ok") },
	})

	// Inject into a component under test
	resp, err := m.HostCall("tarmac", "httpclient", "call", payload)

	// Later, assert on what was sent
	err = m.Verify("tarmac", "httpclient", "call", match.Proto(&http.HTTPClient{Method: "GET", Url: "http://example.com"}))

Behavior

  - HostCall first records the payload under Key(namespace, capability, function).
  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces the Expected fields that are set and runs
    PayloadValidator when provided. Response (when set) provides the return
    bytes; with Passthrough the call goes to Config.HostCall, which defaults to
    wapc.HostCall; otherwise it returns nil.

Tips

  - Use table-driven tests for different routing and payload cases.
  - Share one Ledger between hostmock and other doubles to check interleaving per method.
  - Leave fields blank when you want a wildcard-hostmock only enforces values you set.
*/
package hostmock
