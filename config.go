package coerce

import "time"

// Config controls the environment-dependent parts of a chain. A Config must
// not be modified after it has been used to wrap a value.
type Config struct {
	// Location is used for date-times without a zone and for day boundaries
	// in StartOfDay and EndOfDay. Nil means time.Local.
	Location *time.Location

	// Layouts are time.Parse layouts tried before the permissive parser.
	Layouts []string

	// Silent disables failure signals.
	Silent bool
}

var defaultConfig = &Config{}

// Wrap returns a Value holding v, bound to c.
func (c *Config) Wrap(v any) Value {
	return Value{v: v, cfg: c}
}

func (c *Config) location() *time.Location {
	if c == nil || c.Location == nil {
		return time.Local
	}
	return c.Location
}
