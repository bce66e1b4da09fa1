package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	empty, blank := "", " "
	var nilString *string
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "nil pointer", value: nilString, want: true},
		{name: "pointer to empty string", value: &empty, want: true},
		{name: "missing", value: Missing, want: true},
		{name: "empty string", value: "", want: true},
		{name: "whitespace", value: " ", want: false},
		{name: "pointer to whitespace", value: &blank, want: false},
		{name: "zero", value: 0, want: false},
		{name: "false", value: false, want: false},
		{name: "empty slice", value: []any{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.value))
		})
	}
}

func TestOrNil(t *testing.T) {
	assert.Nil(t, Wrap("").OrNil().Get())
	assert.Nil(t, Wrap(Missing).OrNil().Get())
	assert.Nil(t, Wrap(nil).OrNil().Get())
	assert.Equal(t, "x", Wrap("x").OrNil().Get())
	assert.Equal(t, 0, Wrap(0).OrNil().Get())
}

func TestOrMissing(t *testing.T) {
	assert.Equal(t, Missing, Wrap(nil).OrMissing().Get())
	assert.Equal(t, Missing, Wrap("").OrMissing().Get())
	assert.Equal(t, Missing, Wrap(Missing).OrMissing().Get())
	assert.Equal(t, 0, Wrap(0).OrMissing().Get())
	assert.Equal(t, " ", Wrap(" ").OrMissing().Get())

	empty := ""
	assert.Equal(t, Missing, Wrap(&empty).OrMissing().Get())
}

type status string

func TestNamedStringEmptiness(t *testing.T) {
	assert.True(t, IsEmpty(status("")))
	assert.Nil(t, Wrap(status("")).OrNil().Get())
	assert.Equal(t, Missing, Wrap(status("")).OrMissing().Get())
	assert.Equal(t, "d", Wrap(status("")).WithDefault("d").Get())
	assert.Equal(t, status("on"), Wrap(status("on")).OrMissing().Get())
}

func TestWithDefault(t *testing.T) {
	for _, x := range []any{"a", "  ", 0, false, []any{}} {
		assert.Equal(t, x, Wrap(x).WithDefault("d").Get(), "non-empty %#v", x)
	}
	for _, x := range []any{nil, "", Missing} {
		assert.Equal(t, "d", Wrap(x).WithDefault("d").Get(), "empty %#v", x)
	}
}

func TestAs(t *testing.T) {
	n, ok := As[float64](Wrap("12").ToNumber())
	assert.True(t, ok)
	assert.Equal(t, 12.0, n)

	_, ok = As[float64](Wrap("x").ToNumber())
	assert.False(t, ok)

	_, ok = As[string](Wrap(12))
	assert.False(t, ok)

	_, ok = As[any](Wrap(Missing))
	assert.False(t, ok)
}

func TestValueIsImmutable(t *testing.T) {
	base := Wrap(" 7 ")
	_ = base.ToNumber()
	_ = base.ToString()
	_ = base.WithDefault("x")
	assert.Equal(t, " 7 ", base.Get())

	var zero Value
	assert.Nil(t, zero.Get())
	assert.Equal(t, "x", zero.WithDefault("x").Get())
}
