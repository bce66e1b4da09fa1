package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToArray(t *testing.T) {
	seq := &[]int{1}
	var nilSeq *[]int
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "json array", value: "[1,2,3]", want: []any{1.0, 2.0, 3.0}},
		{name: "padded json array", value: " [\"a\"] ", want: []any{"a"}},
		{name: "bytes", value: []byte("[true]"), want: []any{true}},
		{name: "not json", value: "not json", want: nil},
		{name: "json object", value: `{"a":1}`, want: nil},
		{name: "json null", value: "null", want: nil},
		{name: "slice passes through", value: []int{1, 2}, want: []int{1, 2}},
		{name: "array passes through", value: [2]string{"a", "b"}, want: [2]string{"a", "b"}},
		{name: "slice pointer passes through", value: seq, want: seq},
		{name: "nil slice pointer", value: nilSeq, want: nil},
		{name: "number is not decoded", value: 42, want: nil},
		{name: "map", value: map[string]any{}, want: nil},
		{name: "nil", value: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.value).ToArray().Get())
		})
	}
}

func TestToObject(t *testing.T) {
	rec := labeled{Name: "x"}
	var nilRec *labeled
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "json object", value: `{"a":1}`, want: map[string]any{"a": 1.0}},
		{name: "json array", value: "[1]", want: nil},
		{name: "json null", value: "null", want: nil},
		{name: "not json", value: "{", want: nil},
		{name: "map passes through", value: map[string]int{"a": 1}, want: map[string]int{"a": 1}},
		{name: "struct passes through", value: rec, want: rec},
		{name: "struct pointer passes through", value: &rec, want: &rec},
		{name: "nil struct pointer", value: nilRec, want: nil},
		{name: "time is not a record", value: time.Unix(0, 0), want: nil},
		{name: "missing", value: Missing, want: nil},
		{name: "slice", value: []any{}, want: nil},
		{name: "nil", value: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.value).ToObject().Get())
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	assert.Equal(t, "x", Wrap(`"x"`).DecodeJSON().Get())
	assert.Equal(t, 42.0, Wrap(42).DecodeJSON().Get())
	assert.Equal(t, []any{1.0, 2.0}, Wrap([]int{1, 2}).DecodeJSON().Get())
	assert.Equal(t, map[string]any{"name": "x", "n": 0.0}, Wrap(labeled{Name: "x"}).DecodeJSON().Get())
	assert.Equal(t, true, Wrap(true).DecodeJSON().Get())
	assert.Nil(t, Wrap("nope").DecodeJSON().Get())
	assert.Nil(t, Wrap(nil).DecodeJSON().Get())
}

func TestDecodeYAML(t *testing.T) {
	assert.Equal(t,
		map[string]any{"a": 1, "b": []any{"x", "y"}},
		Wrap("a: 1\nb: [x, y]\n").DecodeYAML().Get(),
	)
	assert.Equal(t, []any{1, 2}, Wrap("- 1\n- 2\n").DecodeYAML().Get())
	assert.Nil(t, Wrap("a: [1, 2").DecodeYAML().Get())
	assert.Nil(t, Wrap(42).DecodeYAML().Get())
	assert.Nil(t, Wrap("").DecodeYAML().Get())
}
