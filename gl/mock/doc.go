/*
Package mock provides a ledger backed implementation of the gl.GL interface.

Every method forwards its arguments to a spy.Ledger and does nothing else, so
tests assert on what a renderer asked GL to do rather than on pixels.

	m := mock.New(mock.Config{})
	drawQuad(m)

	err := m.Verify("BindTexture", gl.TEXTURE_2D, match.AnyUint32())
	err = m.Verify("DrawArrays", gl.TRIANGLE_STRIP, int32(0), int32(4))

Calls are keyed by the Go method name. Use Ledger to reach the counters or to
share one ledger between several doubles.
*/
package mock
