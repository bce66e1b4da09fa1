package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

// ToString converts the held value to trimmed text. nil and [Missing] become
// "", maps, slices and structs are JSON encoded, times are ISO-8601 UTC.
// Applying ToString twice gives the same result as applying it once.
func (c Value) ToString() Value {
	return c.with(strings.TrimSpace(text(c.v)))
}

// ToBoolean applies truthiness: nil, [Missing], "", false, zero and NaN are
// false; everything else, including any map, slice or struct, is true. A
// []byte is a slice here, so even an empty one is true.
func (c Value) ToBoolean() Value {
	return c.with(truthy(c.v))
}

// ParseBooleanString matches the text form case-insensitively against
// "true" and "false". Anything else becomes nil.
func (c Value) ParseBooleanString() Value {
	s := text(c.v)
	switch {
	case strings.EqualFold(s, "true"):
		return c.with(true)
	case strings.EqualFold(s, "false"):
		return c.with(false)
	}
	return c.with(nil)
}

// Matches reports whether the text form matches pattern. A nil pattern
// never matches.
func (c Value) Matches(pattern *regexp.Regexp) Value {
	if pattern == nil {
		return c.with(false)
	}
	return c.with(pattern.MatchString(text(c.v)))
}

// MatchesPattern is like [Value.Matches] but compiles expr first. An invalid
// expression never matches.
func (c Value) MatchesPattern(expr string) Value {
	re, err := regexp.Compile(expr)
	if err != nil {
		return c.with(false)
	}
	return c.Matches(re)
}

// text returns the untrimmed textual form of v.
func text(v any) string {
	v, isNil := indirect(v)
	if isNil || isMissing(v) {
		return ""
	}
	var s string
	if err := guard(func() error {
		s = textOf(v)
		return nil
	}); err != nil {
		return govalidator.ToString(v)
	}
	return s
}

func textOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case json.Number:
		return t.String()
	case time.Time:
		return formatISO(t)
	case float64:
		return formatFloat(t, 64)
	case float32:
		return formatFloat(float64(t), 32)
	case fmt.Stringer:
		return t.String()
	}
	if isStructured(v) {
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}
	return govalidator.ToString(v)
}

// formatFloat renders finite floats in plain decimal notation so that the
// digits survive numeric cleaning.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// isStructured reports whether v is a record or a sequence.
func isStructured(v any) bool {
	return isRecord(v) || isSequence(v)
}

func truthy(v any) bool {
	v, isNil := indirect(v)
	if isNil || isMissing(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}
