// Package coerce normalizes loosely typed input (form values, query
// parameters, decoded JSON, missing fields) into predictable, well-typed
// values through a chain of pure coercion steps.
//
// Wrap a value and chain the steps you need; every step returns a new
// [Value] and never fails:
//
//	qty := coerce.Wrap(r.FormValue("qty")).ToNumber(1).Get()       // float64, 1 when unparsable
//	page := coerce.Wrap(q.Get("page")).Clamp(1, 100).Get()          // float64 within [1, 100]
//	tags := coerce.Wrap(raw["tags"]).ToArray().WithDefault([]any{}) // []any
//	since := coerce.Wrap(q.Get("since")).StartOfDay().Get()         // time.Time or nil
//
// Failures degrade to nil (the absent value) or to a caller-supplied
// fallback. [Missing] marks a field that was never supplied and is distinct
// from nil. [IsEmpty] is the single emptiness rule shared by every step.
//
// Use [As] to leave the chain with a typed value:
//
//	n, ok := coerce.As[float64](coerce.Wrap("١٢٣").ToNumber()) // 123, true
//
// Sub-packages:
//   - transform – digit normalization and numeric text cleaning
package coerce
