// Package model provides:
//
// - Runtime type descriptors for JSON-shaped data (scalars, objects, arrays, unions, decorators)
// - Decoding of untyped input with opt-in casting, strictness and error accumulation (Decode/DecodeWithoutValidation)
// - Refinement validation and wire-shape encoding (Validate/Encode/ValidateAndEncode)
// - Random example generation from descriptors (Arbitrary)
// - A stable error model via DecodeErrors/ValidationErrors carrying structured paths
//
// Design policy:
// - Keep the descriptor model and the four walkers in the root package; put projections under jsonschema/ and custom descriptors under types/.
// - Descriptors are immutable once built; With* methods return copies.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := model.Object().
//		Field("name", model.String()).
//		Field("age", model.Optional(model.Integer())).
//		MustBuild()
//
//	v, err := model.DecodeJSON(user, data, model.DecodeOptions{Casting: model.TryCasting})
//	wire := model.Encode(user, v)
package model
