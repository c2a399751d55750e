package match

// Factories for the Go primitive types. Each is a Type matcher, so
// AnyFloat32 matches float32(0) but not float64(0) or nil.

func AnyBool() Matcher    { return Type[bool]() }
func AnyInt() Matcher     { return Type[int]() }
func AnyInt8() Matcher    { return Type[int8]() }
func AnyInt16() Matcher   { return Type[int16]() }
func AnyInt32() Matcher   { return Type[int32]() }
func AnyInt64() Matcher   { return Type[int64]() }
func AnyUint() Matcher    { return Type[uint]() }
func AnyUint8() Matcher   { return Type[uint8]() }
func AnyUint16() Matcher  { return Type[uint16]() }
func AnyUint32() Matcher  { return Type[uint32]() }
func AnyUint64() Matcher  { return Type[uint64]() }
func AnyFloat32() Matcher { return Type[float32]() }
func AnyFloat64() Matcher { return Type[float64]() }
func AnyString() Matcher  { return Type[string]() }

// AnyBytes matches any non-nil byte slice, including an empty one.
func AnyBytes() Matcher { return Type[[]byte]() }

// Any matches every non-null value.
func Any() Matcher { return Type[any]() }
