package coerce

// WithDefault substitutes fallback when the held value is empty per
// [IsEmpty]; otherwise the value is kept.
func (c Value) WithDefault(fallback any) Value {
	if IsEmpty(c.v) {
		return c.with(fallback)
	}
	return c
}
