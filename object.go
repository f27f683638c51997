package sdkmodel

import (
	"fmt"
	"slices"
)

// Object is implemented by every generated value type. All methods are safe
// on a nil receiver.
type Object interface {
	Schema() SchemaInfo
	Equaler
	Hasher
	fmt.Stringer
}

// AnyBuilder is the type-erased builder used by decoders and catalogs.
type AnyBuilder interface {
	Schema() SchemaInfo
	// BuildObject freezes the current state into a new Object.
	BuildObject() Object
}

// Builder is the typed builder of V. A builder is single-owner; every Build
// returns an independent snapshot and the builder stays usable.
type Builder[V Object] interface {
	AnyBuilder
	Build() V
}

// GetValueForField looks up the field called name on obj and returns its
// normalized value as T (see Descriptor.Get).
//
// An unknown name and a known field without a value both report
// (zero, false, nil). A value that is not a T reports *TypeMismatchError.
// Collection fields are always present: an unset one yields its sentinel.
func GetValueForField[T any](obj Object, name string) (T, bool, error) {
	var zero T
	if obj == nil {
		return zero, false, nil
	}
	f, ok := obj.Schema().FieldByName(name)
	if !ok {
		return zero, false, nil
	}
	v, err := f.Get(obj)
	if err != nil {
		return zero, false, err
	}
	if v == nil {
		return zero, false, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, false, mismatch(name, typeName[T](), v)
	}
	return t, true, nil
}

// Modify copies v into a builder, applies mutate, and builds the result.
// v is left untouched.
//
//	next := sdkmodel.Modify[*ListDevEnvironmentsRequest](req, func(b *ListDevEnvironmentsRequestBuilder) {
//		b.NextToken(page.NextToken())
//	})
func Modify[V any, B interface{ Build() V }](v interface{ ToBuilder() B }, mutate func(B)) V {
	b := v.ToBuilder()
	if mutate != nil {
		mutate(b)
	}
	return b.Build()
}

// ClonePtr returns a pointer to a copy of *p, or nil.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CloneBytes returns a copy of b; nil stays nil.
func CloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return slices.Clone(b)
}
