/*
Package spytest connects a spy.Ledger to the test runner.

spy.Ledger.Verify returns errors; the helpers here hand those errors to testify
so a mismatch fails the test with the full verification message.

	func TestRender(t *testing.T) {
		l := spytest.NewLedger(t)
		g := mock.New(mock.Config{Ledger: l})

		render(g)

		spytest.Require(t, l, "BindTexture", gl.TEXTURE_2D, match.AnyUint32())
		spytest.Verify(t, l, "DrawArrays", gl.TRIANGLES, int32(0), int32(6))
		spytest.NoMoreCalls(t, l)
	}
*/
package spytest
