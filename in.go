package coerce

import (
	"reflect"
)

// IsEqual reports whether the held value strictly equals expected: same
// dynamic type and same value. Slices and maps held directly compare by
// identity; values nested inside structs, arrays or interfaces compare by
// content.
func (c Value) IsEqual(expected any) Value {
	return c.with(strictEqual(c.v, expected))
}

// OneOf reports whether the held value strictly equals one of candidates.
// Slice and array candidates are flattened one level, so OneOf("a", "b")
// and OneOf([]string{"a", "b"}) are equivalent.
func (c Value) OneOf(candidates ...any) Value {
	for _, cand := range flatten(candidates) {
		if strictEqual(c.v, cand) {
			return c.with(true)
		}
	}
	return c.with(false)
}

// AsEnum keeps the held value if it strictly equals one of the values of
// mapping, otherwise it becomes nil. mapping is a map, or a struct whose
// exported fields are the allowed values:
//
//	var Status = map[string]string{"Active": "active", "Closed": "closed"}
//	coerce.Wrap(q.Get("status")).AsEnum(Status).Get()
func (c Value) AsEnum(mapping any) Value {
	for _, allowed := range enumValues(mapping) {
		if strictEqual(c.v, allowed) {
			return c
		}
	}
	return c.with(nil)
}

func flatten(values []any) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		if !isSequence(v) {
			out = append(out, v)
			continue
		}
		rv := reflect.Indirect(reflect.ValueOf(v))
		for i := range rv.Len() {
			out = append(out, rv.Index(i).Interface())
		}
	}
	return out
}

func enumValues(mapping any) []any {
	if isAbsent(mapping) {
		return nil
	}
	rv := reflect.Indirect(reflect.ValueOf(mapping))
	var out []any
	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, iter.Value().Interface())
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if rv.Type().Field(i).IsExported() {
				out = append(out, rv.Field(i).Interface())
			}
		}
	}
	return out
}

func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ra.Kind() {
	case reflect.Slice, reflect.Map:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	case reflect.Func:
		return false
	}
	if ta.Comparable() {
		var eq bool
		// Structs holding interfaces with incomparable dynamic values panic on ==.
		if err := guard(func() error {
			eq = a == b
			return nil
		}); err == nil {
			return eq
		}
	}
	return reflect.DeepEqual(a, b)
}
