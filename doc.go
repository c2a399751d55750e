/*
Package spy provides the call ledger and verification engine behind hand-rolled
test doubles for interfaces with very large method surfaces.

Generated mocks and reflection based proxies struggle once an interface grows to
hundreds of methods. Here every method of the double is a one line forwarder
into a shared Ledger, and all of the interesting logic lives in one place.

Recording

	type GL struct{ *spy.Ledger }

	func (g *GL) BindTexture(target, texture uint32) {
		g.Record("BindTexture", target, texture)
	}

Record never fails. Argument tuples are kept per method name, in call order.

Verifying

	err := l.Verify("BindTexture", gl.TEXTURE_2D, uint32(7))
	err = l.Verify("ClearColor", match.AnyFloat32(), match.AnyFloat32(), match.AnyFloat32(), match.AnyFloat32())

Verify consumes the oldest unverified call of the method and compares it with
the expected arguments, which may be literals or match.Matcher values. The
returned error wraps ErrNotCalled, ErrArityMismatch or ErrArgumentMismatch and
can be checked with errors.Is; ArityError and ArgumentError carry the details.
The spytest package turns these errors into test failures.

Counters

CallCount reports the calls recorded across all methods. Reset zeroes that
counter only; unverified calls stay verifiable. Clear drops everything.

A Ledger is not safe for concurrent use. Parallel tests each build their own.
*/
package spy
