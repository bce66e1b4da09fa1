package coerce

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MissingValue is the type of [Missing].
type MissingValue struct{}

// Missing marks a field that was never supplied. It is distinct from nil,
// which marks a value that is deliberately absent.
var Missing = MissingValue{}

// IsEmpty reports whether v carries no meaningful content: nil, a nil
// pointer, [Missing], or the empty string. Pointers are followed, so a
// *string pointing at "" is empty. Whitespace, zero and empty collections
// are not empty.
func IsEmpty(v any) bool {
	v, isNil := indirect(v)
	if isNil || isMissing(v) {
		return true
	}
	return isEmptyString(v)
}

// OrNil collapses an empty value to nil.
func (c Value) OrNil() Value {
	if IsEmpty(c.v) {
		return c.with(nil)
	}
	return c
}

// OrMissing replaces nil or the empty string with [Missing]. It uses a
// narrower rule than [IsEmpty]; Missing itself passes through.
func (c Value) OrMissing() Value {
	v, isNil := indirect(c.v)
	if isNil {
		return c.with(Missing)
	}
	if isEmptyString(v) {
		return c.with(Missing)
	}
	return c
}

// isEmptyString reports whether v is "" of any string kind.
func isEmptyString(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.String && rv.Len() == 0
}

func isMissing(v any) bool {
	_, ok := v.(MissingValue)
	return ok
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// indirect follows pointers. isNil is true for nil and for nil pointers.
func indirect(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	if reflect.ValueOf(v).Kind() != reflect.Ptr {
		return v, false
	}
	return validation.Indirect(v)
}
