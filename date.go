package coerce

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// isoLayout matches the millisecond ISO-8601 form used by ToISODate.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Dates are limited to years 0000 through 9999, the range the ISO layout
// can write and read back.
const (
	minEpochMillis = -62167219200000
	maxEpochMillis = 253402300799999
)

// ToDate converts the held value to a time.Time. Empty values, unparsable
// text and unsupported types become nil. Numbers are milliseconds since the
// Unix epoch. Dates outside years 0000 through 9999 become nil. Text is tried as an ISO date (UTC midnight), RFC 3339, each
// Config.Layouts entry, then a permissive parser in Config.Location.
func (c Value) ToDate() Value {
	if t, ok := c.date(); ok {
		return c.with(t)
	}
	return c.with(nil)
}

// ToISODate formats ToDate in UTC as 2006-01-02T15:04:05.000Z, or nil.
func (c Value) ToISODate() Value {
	if t, ok := c.date(); ok {
		return c.with(formatISO(t))
	}
	return c.with(nil)
}

// StartOfDay is ToDate with the clock set to 00:00:00.000 in Config.Location.
func (c Value) StartOfDay() Value {
	t, ok := c.date()
	if !ok {
		return c.with(nil)
	}
	t = t.In(c.config().location())
	return c.with(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()))
}

// EndOfDay is ToDate with the clock set to 23:59:59.999 in Config.Location.
func (c Value) EndOfDay() Value {
	t, ok := c.date()
	if !ok {
		return c.with(nil)
	}
	t = t.In(c.config().location())
	return c.with(time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location()))
}

// ToEpochMillis is ToDate as int64 milliseconds since the Unix epoch, or nil.
func (c Value) ToEpochMillis() Value {
	if t, ok := c.date(); ok {
		return c.with(t.UnixMilli())
	}
	return c.with(nil)
}

func (c Value) date() (time.Time, bool) {
	v, isNil := indirect(c.v)
	if isNil || IsEmpty(v) {
		return time.Time{}, false
	}
	if t, ok := v.(time.Time); ok {
		return t, inRange(t)
	}
	if s, ok := textual(v); ok {
		t, ok := c.config().parseDate(s)
		return t, ok && inRange(t)
	}
	if f, ok := getFloat(v); ok && finite(f) && f >= minEpochMillis && f <= maxEpochMillis {
		return time.UnixMilli(int64(f)), true
	}
	return time.Time{}, false
}

func inRange(t time.Time) bool {
	ms := t.UnixMilli()
	return ms >= minEpochMillis && ms <= maxEpochMillis
}

func (c *Config) parseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	loc := c.location()
	for _, layout := range c.Layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	err := guard(func() error {
		var err error
		t, err = dateparse.ParseIn(s, loc)
		return err
	})
	return t, err == nil
}

func formatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
