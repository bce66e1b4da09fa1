package coerce

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// Conform keeps the held value if its JSON form validates against schema,
// otherwise it becomes nil. A nil schema rejects everything.
func (c Value) Conform(schema *openapi3.Schema) Value {
	if schema == nil {
		return c.with(nil)
	}
	doc, ok := jsonForm(c.v)
	if !ok {
		return c.with(nil)
	}
	err := guard(func() error {
		return schema.VisitJSON(doc)
	})
	if err != nil {
		c.emitRuleFailed("conform", err)
		return c.with(nil)
	}
	return c
}

// Schema describes the Go type of the held value as an OpenAPI 3 schema.
// nil and [Missing] give a nullable schema with no type. It returns nil when
// no schema can be generated, e.g. for funcs and channels.
func (c Value) Schema() *openapi3.Schema {
	v, isNil := indirect(c.v)
	if isNil || isMissing(v) {
		s := openapi3.NewSchema()
		s.Nullable = true
		return s
	}
	var ref *openapi3.SchemaRef
	err := guard(func() error {
		var err error
		g := openapi3gen.NewGenerator()
		ref, err = g.NewSchemaRefForValue(v, nil)
		return err
	})
	if err != nil || ref == nil {
		return nil
	}
	return ref.Value
}

// jsonForm round-trips v through JSON so kin-openapi sees float64,
// map[string]any and []any.
func jsonForm(v any) (any, bool) {
	if isMissing(v) {
		return nil, true
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false
	}
	return out, true
}
