/*
Package match provides the argument matchers used when verifying recorded calls.

A Matcher stands in for a literal expected argument. It is handy when the
literal is nondeterministic, such as a freshly generated object name, or simply
irrelevant to what the test is about.

	l.Verify("ClearColor", match.AnyFloat32(), match.AnyFloat32(), match.AnyFloat32(), match.AnyFloat32())
	l.Verify("BufferData", gl.ARRAY_BUFFER, match.AnyInt(), match.Or(match.AnyBytes(), match.Null()), gl.STATIC_DRAW)

Available matchers

  - Type[T] and the AnyXxx factories: any non-null value of type T.
  - InstanceOf: the same check against a reflect.Type chosen at runtime.
  - Null: nil, or a typed nil pointer, map, slice, channel, function or interface.
  - Or: any child matches, evaluated left to right. Or() never matches.
  - Eq: structural equality with a literal, see Equal.
  - Func: an arbitrary pure predicate.
  - Proto: protobuf messages, either as values or as []byte wire payloads.

Matchers never panic and never return errors; a value that does not fit simply
does not match.
*/
package match
