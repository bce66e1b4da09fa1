package coerce

import "errors"

var errNilCallback = errors.New("nil callback")

// Map applies fn to the held value. A panic inside fn, or a nil fn, yields
// fallback[0] if given, else nil; it never reaches the caller.
func (c Value) Map(fn func(any) any, fallback ...any) Value {
	if fn == nil {
		return c.TryMap(nil, fallback...)
	}
	return c.TryMap(func(v any) (any, error) {
		return fn(v), nil
	}, fallback...)
}

// TryMap is like Map for callbacks that report failure with an error.
func (c Value) TryMap(fn func(any) (any, error), fallback ...any) Value {
	if fn == nil {
		c.emitCallbackFailed("map", errNilCallback)
		return c.with(first(fallback))
	}
	var out any
	err := guard(func() error {
		var err error
		out, err = fn(c.v)
		return err
	})
	if err != nil {
		c.emitCallbackFailed("map", err)
		return c.with(first(fallback))
	}
	return c.with(out)
}

func first(values []any) any {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}
