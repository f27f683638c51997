// Package sdkmodel provides the descriptor-driven field model shared by generated
// service clients:
//
// - Field descriptors (member name, marshalling type, location/format traits) bound to
//   closures instead of reflection
// - Generic equality, hashing, string rendering with redaction, and lookup by name
// - Auto-construct sentinel collections that keep "never set" apart from "set to empty"
// - Copiers that move collections between values and builders
// - Enum sets that stay forward compatible with values added by the service
//
// Design policy:
// - Keep the field model in the root package; timestamp codecs live under codec/,
//   wire bindings under protocol/, generated models under service/.
// - Values are immutable once built; builders are single-owner.
// - Absence is data (nil, sentinel, unknown variant), never an error.
//
// Typical usage:
//
//	req := codecatalyst.NewCreateAccessTokenRequestBuilder().
//		Name(ptr.String("demo")).
//		ExpiresTime(ptr.Time(expires)).
//		Build()
//
//	name, ok, err := sdkmodel.GetValueForField[string](req, "name")
//	b, err := protocol.Bind(ctx, protocol.JSON, req)
package sdkmodel
