package coerce

import (
	"math"
	"reflect"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/Gobd/coerce/transform"
)

// ToNumber parses the held value as a float64. The text form is cleaned with
// [transform.Numeric]; more than one decimal point, nothing left after
// cleaning, or a non-finite result yields fallback[0] if given, else nil.
func (c Value) ToNumber(fallback ...float64) Value {
	if f, ok := parseNumber(c.v); ok {
		return c.with(f)
	}
	if len(fallback) > 0 {
		return c.with(fallback[0])
	}
	return c.with(nil)
}

// Clamp parses the held value like ToNumber and bounds it to [lo, hi]. A
// value that does not parse becomes lo.
func (c Value) Clamp(lo, hi float64) Value {
	f, ok := parseNumber(c.v)
	if !ok {
		return c.with(lo)
	}
	return c.with(math.Min(math.Max(f, lo), hi))
}

func parseNumber(v any) (float64, bool) {
	if IsEmpty(v) {
		return 0, false
	}
	if f, ok := getFloat(v); ok {
		return f, finite(f)
	}
	s := transform.Numeric(text(v))
	if s == "" || strings.Count(s, ".") > 1 {
		return 0, false
	}
	f, err := govalidator.ToFloat(s)
	if err != nil {
		return 0, false
	}
	return f, finite(f)
}

var floatType = reflect.TypeOf(float64(0))

// getFloat converts Go numeric kinds to float64. Strings, bools and
// everything else report false.
func getFloat(unk any) (float64, bool) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return v.Convert(floatType).Float(), true
	}
	return 0, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
