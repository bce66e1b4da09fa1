package coerce

import (
	"encoding/json"
	"reflect"
	"time"

	"gopkg.in/yaml.v3"
)

var timeType = reflect.TypeOf(time.Time{})

// ToArray keeps slices and arrays (or non-nil pointers to them) as they are. Text is decoded as JSON and
// kept only when it holds an array. Anything else becomes nil; non-text
// values are never decoded.
func (c Value) ToArray() Value {
	if isSequence(c.v) {
		return c
	}
	s, ok := textual(c.v)
	if !ok {
		return c.with(nil)
	}
	d, ok := c.decodeJSON("to_array", s)
	if !ok {
		return c.with(nil)
	}
	a, ok := d.([]any)
	if !ok {
		c.emitDecodeFailed("to_array", ErrTypeMismatch, nil)
		return c.with(nil)
	}
	return c.with(a)
}

// ToObject keeps maps and structs (or non-nil pointers to them) as they
// are. Text is decoded as JSON and kept only when it holds an object.
// Anything else, including arrays and null, becomes nil.
func (c Value) ToObject() Value {
	if isRecord(c.v) {
		return c
	}
	s, ok := textual(c.v)
	if !ok {
		return c.with(nil)
	}
	d, ok := c.decodeJSON("to_object", s)
	if !ok {
		return c.with(nil)
	}
	m, ok := d.(map[string]any)
	if !ok {
		c.emitDecodeFailed("to_object", ErrTypeMismatch, nil)
		return c.with(nil)
	}
	return c.with(m)
}

// DecodeJSON decodes the text form of any held value as JSON. Structured
// values therefore come back in their generic form (map[string]any, []any,
// float64). Invalid JSON becomes nil.
func (c Value) DecodeJSON() Value {
	d, ok := c.decodeJSON("decode_json", text(c.v))
	if !ok {
		return c.with(nil)
	}
	return c.with(d)
}

// DecodeYAML decodes text as YAML. Mappings with string keys decode to
// map[string]any and integers stay integers. Non-text input and invalid
// YAML become nil.
func (c Value) DecodeYAML() Value {
	s, ok := textual(c.v)
	if !ok {
		return c.with(nil)
	}
	var out any
	if err := guard(func() error {
		return yaml.Unmarshal([]byte(s), &out)
	}); err != nil {
		c.emitDecodeFailed("decode_yaml", ErrParse, err)
		return c.with(nil)
	}
	return c.with(out)
}

func (c Value) decodeJSON(op, s string) (any, bool) {
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		c.emitDecodeFailed(op, ErrParse, err)
		return nil, false
	}
	return out, true
}

// textual returns v as text when it is a string kind or a byte slice.
// Pointers are followed.
func textual(v any) (string, bool) {
	v, isNil := indirect(v)
	if isNil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return rv.String(), true
	case isBytes(rv):
		return string(rv.Bytes()), true
	}
	return "", false
}

// isSequence reports whether v is a slice or array other than a byte slice,
// or a non-nil pointer to one.
func isSequence(v any) bool {
	if isAbsent(v) {
		return false
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Array:
		return true
	case reflect.Slice:
		return !isBytes(rv)
	}
	return false
}

// isRecord reports whether v is a map or a struct other than time.Time, or
// a non-nil pointer to one.
func isRecord(v any) bool {
	if isAbsent(v) {
		return false
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map:
		return true
	case reflect.Struct:
		return rv.Type() != timeType && rv.Type() != reflect.TypeOf(Missing)
	}
	return false
}

func isBytes(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8
}
