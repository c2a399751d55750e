package match

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

type protoMatcher struct {
	want proto.Message
}

// Proto returns a Matcher for protobuf traffic. It accepts a message of the
// same type that is proto.Equal to want, or a []byte wire payload that
// unmarshals into such a message. This is how host call payloads recorded as
// raw bytes are asserted on.
func Proto(want proto.Message) Matcher { return protoMatcher{want: want} }

func (m protoMatcher) Matches(v any) bool {
	if IsNull(m.want) || IsNull(v) {
		return false
	}

	switch got := v.(type) {
	case []byte:
		msg := m.want.ProtoReflect().New().Interface()
		if err := proto.Unmarshal(got, msg); err != nil {
			return false
		}
		return proto.Equal(m.want, msg)
	case proto.Message:
		return got.ProtoReflect().Descriptor().FullName() == m.want.ProtoReflect().Descriptor().FullName() &&
			proto.Equal(m.want, got)
	}
	return false
}

func (m protoMatcher) String() string {
	if IsNull(m.want) {
		return "proto <nil>"
	}
	return "proto " + string(m.want.ProtoReflect().Descriptor().FullName()) +
		" {" + prototext.MarshalOptions{}.Format(m.want) + "}"
}
