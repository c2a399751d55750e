package match

import (
	"fmt"
	"reflect"
	"strings"
)

// Matcher is a predicate used in place of a literal expected argument.
//
// Implementations must be pure: Matches has no side effects and never panics.
type Matcher interface {
	// Matches reports whether v satisfies the matcher.
	Matches(v any) bool

	// String describes the matcher for failure messages.
	String() string
}

// typeMatcher matches any non-null value assignable to T.
type typeMatcher[T any] struct{}

// Type returns a Matcher accepting any non-null value of type T. When T is an
// interface type, any value implementing it matches.
func Type[T any]() Matcher { return typeMatcher[T]{} }

func (typeMatcher[T]) Matches(v any) bool {
	if IsNull(v) {
		return false
	}
	_, ok := v.(T)
	return ok
}

func (typeMatcher[T]) String() string {
	return "any " + reflect.TypeFor[T]().String()
}

// instanceMatcher is the runtime counterpart of typeMatcher.
type instanceMatcher struct {
	target reflect.Type
}

// InstanceOf returns a Matcher accepting any non-null value whose dynamic type
// is assignable to t. A nil t never matches.
func InstanceOf(t reflect.Type) Matcher { return instanceMatcher{target: t} }

func (m instanceMatcher) Matches(v any) bool {
	if m.target == nil || IsNull(v) {
		return false
	}
	return reflect.TypeOf(v).AssignableTo(m.target)
}

func (m instanceMatcher) String() string {
	if m.target == nil {
		return "any <nil type>"
	}
	return "any " + m.target.String()
}

type nullMatcher struct{}

// Null returns a Matcher accepting only null values, see IsNull.
func Null() Matcher { return nullMatcher{} }

func (nullMatcher) Matches(v any) bool { return IsNull(v) }
func (nullMatcher) String() string     { return "null" }

type orMatcher struct {
	children []Matcher
}

// Or returns a Matcher that succeeds when any of ms matches, evaluated left to
// right. Or with no children never matches.
func Or(ms ...Matcher) Matcher {
	return orMatcher{children: append([]Matcher(nil), ms...)}
}

func (m orMatcher) Matches(v any) bool {
	for _, c := range m.children {
		if c != nil && c.Matches(v) {
			return true
		}
	}
	return false
}

func (m orMatcher) String() string {
	parts := make([]string, 0, len(m.children))
	for _, c := range m.children {
		if c == nil {
			parts = append(parts, "<nil>")
			continue
		}
		parts = append(parts, c.String())
	}
	return "or(" + strings.Join(parts, ", ") + ")"
}

type eqMatcher struct {
	want any
}

// Eq returns a Matcher accepting values structurally equal to want. It exists
// so literals can be combined with other matchers, e.g. Or(Eq(0), Null()).
func Eq(want any) Matcher { return eqMatcher{want: want} }

func (m eqMatcher) Matches(v any) bool { return Equal(m.want, v) }

func (m eqMatcher) String() string {
	return fmt.Sprintf("%v (%s)", m.want, TypeName(m.want))
}

type funcMatcher struct {
	desc string
	fn   func(any) bool
}

// Func wraps a predicate as a Matcher. fn must be pure. A panicking fn is
// treated as a non-match.
func Func(desc string, fn func(any) bool) Matcher {
	return funcMatcher{desc: desc, fn: fn}
}

func (m funcMatcher) Matches(v any) (ok bool) {
	if m.fn == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return m.fn(v)
}

func (m funcMatcher) String() string { return m.desc }

// IsNull reports whether v is nil or a typed nil pointer, map, slice, channel,
// function or interface.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// TypeName returns the dynamic type name of v, or "null" when IsNull(v).
func TypeName(v any) string {
	if IsNull(v) {
		return "null"
	}
	return reflect.TypeOf(v).String()
}
