/*
Package gl declares the OpenGL ES 2.0 surface renderers draw through.

The GL interface is large on purpose: it mirrors the C API one function per
method, which is what makes it awkward to mock with generated doubles. The
gl/mock package provides a ledger backed implementation for tests.

Constants use the GL header names and the Enum alias, so gl.TEXTURE_2D and a
recorded target argument are both uint32 and compare equal during verification.
*/
package gl
