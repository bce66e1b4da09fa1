package coerce

// Value holds a single loosely typed value. It is immutable: every method
// returns a new Value and leaves the receiver untouched.
type Value struct {
	v   any
	cfg *Config
}

// Wrap returns a Value holding v unchanged, bound to the default [Config].
func Wrap(v any) Value {
	return defaultConfig.Wrap(v)
}

// Get returns the held value.
func (c Value) Get() any {
	return c.v
}

// As returns the held value as a T. ok is false when the value is nil,
// [Missing], or of a different dynamic type.
func As[T any](c Value) (T, bool) {
	var zero T
	if isAbsent(c.v) || isMissing(c.v) {
		return zero, false
	}
	t, ok := c.v.(T)
	return t, ok
}

func (c Value) with(v any) Value {
	return Value{v: v, cfg: c.cfg}
}

func (c Value) config() *Config {
	if c.cfg == nil {
		return defaultConfig
	}
	return c.cfg
}
