package match

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

// cmpOptions compare every field, exported or not, and treat nested protobuf
// messages by value instead of by their internal state.
var cmpOptions = []cmp.Option{
	protocmp.Transform(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether want and got are structurally equal. Values of
// different dynamic types are never equal, so uint32(7) does not equal 7.
// Null values, as defined by IsNull, are equal to each other only.
func Equal(want, got any) (eq bool) {
	if IsNull(want) || IsNull(got) {
		return IsNull(want) && IsNull(got)
	}

	if wm, ok := want.(proto.Message); ok {
		gm, ok := got.(proto.Message)
		return ok && reflect.TypeOf(want) == reflect.TypeOf(got) && proto.Equal(wm, gm)
	}

	if reflect.TypeOf(want) != reflect.TypeOf(got) {
		return false
	}

	// cmp panics on values it cannot compare, such as unexported cyclic
	// structures; those are reported as unequal.
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return cmp.Equal(want, got, cmpOptions...)
}

// Diff returns a human readable report of the differences between want and
// got, or an empty string when no structural diff is available.
func Diff(want, got any) (diff string) {
	if want == nil || got == nil || reflect.TypeOf(want) != reflect.TypeOf(got) {
		return ""
	}
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	return cmp.Diff(want, got, cmpOptions...)
}
