package sdkmodel

import (
	"reflect"
	"slices"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"
)

// Descriptor is the type-erased metadata of one field. It is what encoders,
// decoders, and the generic value operations consume.
type Descriptor interface {
	// MemberName is the stable identifier used for lookup by name.
	MemberName() string
	// DisplayName is the name used by String().
	DisplayName() string
	MarshallingType() MarshallingType
	// Traits returns a copy of the traits in declaration order.
	Traits() []Trait
	Location() LocationTrait
	// TimestampFormat reports the pinned wire format, if any.
	TimestampFormat() (TimestampFormat, bool)
	Sensitive() bool
	// Member describes list elements or map values; nil for other types.
	Member() *MemberInfo
	// NewBuilder returns a builder for STRUCTURE fields; nil otherwise.
	NewBuilder() AnyBuilder
	// Get returns the normalized value of this field on obj: dereferenced
	// scalars, time.Time, []byte, a nested Object, an AnyList or AnyMap (the
	// sentinel when unset), or nil when absent.
	Get(obj any) (any, error)
	// Set stores v on builder through the field's setter.
	Set(builder any, v any) error
}

// Field is the Descriptor of one field of value type S with builder type B.
// Fields are created once per type, typically in package-level vars, and are
// never mutated afterwards.
type Field[S, B any] struct {
	memberName string
	mtype      MarshallingType
	cfg        fieldConfig
	location   LocationTrait
	locations  int
	format     *TimestampFormat
	newBuilder func() AnyBuilder
	get        func(*S) any
	set        func(*B, any) error
}

var _ Descriptor = (*Field[struct{}, struct{}])(nil)

func newField[S, B any](name string, mt MarshallingType, get func(*S) any, set func(*B, any) error, opts []FieldOption) *Field[S, B] {
	f := &Field[S, B]{memberName: name, mtype: mt, get: get, set: set}
	for _, o := range opts {
		if o != nil {
			o.applyField(&f.cfg)
		}
	}
	for _, t := range f.cfg.traits {
		switch tt := t.(type) {
		case LocationTrait:
			f.locations++
			if f.locations == 1 {
				f.location = tt
			}
		case TimestampFormatTrait:
			ft := tt.Format
			f.format = &ft
		}
	}
	if f.format == nil && f.cfg.member != nil && f.cfg.member.Format != nil {
		ft := *f.cfg.member.Format
		f.format = &ft
	}
	return f
}

func (f *Field[S, B]) MemberName() string               { return f.memberName }
func (f *Field[S, B]) MarshallingType() MarshallingType { return f.mtype }
func (f *Field[S, B]) Traits() []Trait                  { return slices.Clone(f.cfg.traits) }
func (f *Field[S, B]) Location() LocationTrait          { return f.location }
func (f *Field[S, B]) Sensitive() bool                  { return f.cfg.sensitive }
func (f *Field[S, B]) Member() *MemberInfo              { return f.cfg.member }

func (f *Field[S, B]) DisplayName() string {
	if f.cfg.displayName != "" {
		return f.cfg.displayName
	}
	r, n := utf8.DecodeRuneInString(f.memberName)
	return string(unicode.ToUpper(r)) + f.memberName[n:]
}

func (f *Field[S, B]) TimestampFormat() (TimestampFormat, bool) {
	if f.format == nil {
		return 0, false
	}
	return *f.format, true
}

func (f *Field[S, B]) NewBuilder() AnyBuilder {
	if f.newBuilder == nil {
		return nil
	}
	return f.newBuilder()
}

func (f *Field[S, B]) Get(obj any) (any, error) {
	s, ok := obj.(*S)
	if !ok {
		return nil, mismatch(f.memberName, typeName[*S](), obj)
	}
	return f.GetFrom(s), nil
}

// GetFrom is the typed form of Get.
func (f *Field[S, B]) GetFrom(s *S) any {
	if s == nil {
		return nil
	}
	return f.get(s)
}

func (f *Field[S, B]) Set(builder any, v any) error {
	b, ok := builder.(*B)
	if !ok || b == nil {
		return mismatch(f.memberName, typeName[*B](), builder)
	}
	return f.set(b, v)
}

// ---- constructors, one per marshalling type ----

// StringField describes a *string field. Enum-valued fields are STRING fields
// over the raw wire value.
func StringField[S, B any](name string, get func(*S) *string, set func(*B, *string) *B, opts ...FieldOption) *Field[S, B] {
	return pointerField(name, MarshallingString, get, set, opts)
}

// IntegerField describes a *int32 field.
func IntegerField[S, B any](name string, get func(*S) *int32, set func(*B, *int32) *B, opts ...FieldOption) *Field[S, B] {
	return pointerField(name, MarshallingInteger, get, set, opts)
}

// LongField describes a *int64 field.
func LongField[S, B any](name string, get func(*S) *int64, set func(*B, *int64) *B, opts ...FieldOption) *Field[S, B] {
	return pointerField(name, MarshallingLong, get, set, opts)
}

// BooleanField describes a *bool field.
func BooleanField[S, B any](name string, get func(*S) *bool, set func(*B, *bool) *B, opts ...FieldOption) *Field[S, B] {
	return pointerField(name, MarshallingBoolean, get, set, opts)
}

// DoubleField describes a *float64 field.
func DoubleField[S, B any](name string, get func(*S) *float64, set func(*B, *float64) *B, opts ...FieldOption) *Field[S, B] {
	return pointerField(name, MarshallingDouble, get, set, opts)
}

// FloatField describes a *float32 field.
func FloatField[S, B any](name string, get func(*S) *float32, set func(*B, *float32) *B, opts ...FieldOption) *Field[S, B] {
	return pointerField(name, MarshallingFloat, get, set, opts)
}

// InstantField describes a *time.Time field.
func InstantField[S, B any](name string, get func(*S) *time.Time, set func(*B, *time.Time) *B, opts ...FieldOption) *Field[S, B] {
	return pointerField(name, MarshallingInstant, get, set, opts)
}

// BytesField describes a []byte (SDK_BYTES) field.
func BytesField[S, B any](name string, get func(*S) []byte, set func(*B, []byte) *B, opts ...FieldOption) *Field[S, B] {
	return newField[S, B](name, MarshallingBytes,
		func(s *S) any {
			if p := get(s); p != nil {
				return p
			}
			return nil
		},
		func(b *B, v any) error {
			switch x := v.(type) {
			case nil:
				set(b, nil)
			case []byte:
				set(b, x)
			default:
				return mismatch(name, "[]byte", v)
			}
			return nil
		}, opts)
}

// StructureField describes a nested structure *T. newBuilder creates the
// builder a decoder fills before setting the built value.
func StructureField[S, B, T any](name string, get func(*S) *T, set func(*B, *T) *B, newBuilder func() AnyBuilder, opts ...FieldOption) *Field[S, B] {
	f := newField[S, B](name, MarshallingStructure,
		func(s *S) any {
			if p := get(s); p != nil {
				return p
			}
			return nil
		},
		func(b *B, v any) error {
			switch x := v.(type) {
			case nil:
				set(b, nil)
			case *T:
				set(b, x)
			default:
				return mismatch(name, typeName[*T](), v)
			}
			return nil
		}, opts)
	f.newBuilder = newBuilder
	return f
}

// ListField describes a List[E] field whose builder setter takes a []E (nil
// meaning "unset"). Pass a ListTrait to describe the elements.
func ListField[S, B, E any](name string, get func(*S) List[E], set func(*B, []E) *B, opts ...FieldOption) *Field[S, B] {
	return newField[S, B](name, MarshallingList,
		func(s *S) any {
			if l := get(s); l != nil {
				return l
			}
			return AutoConstructList[E]()
		},
		func(b *B, v any) error {
			switch x := v.(type) {
			case nil:
				set(b, nil)
			case []E:
				set(b, x)
			case List[E]:
				set(b, x.Slice())
			case []any:
				out := make([]E, len(x))
				for i, el := range x {
					if el == nil {
						continue
					}
					e, ok := el.(E)
					if !ok {
						return mismatch(name+"/"+strconv.Itoa(i), typeName[E](), el)
					}
					out[i] = e
				}
				set(b, out)
			default:
				return mismatch(name, typeName[[]E](), v)
			}
			return nil
		}, opts)
}

// MapField describes a Map[string, V] field whose builder setter takes a
// map[string]V (nil meaning "unset"). Pass a MapTrait to describe the values.
func MapField[S, B, V any](name string, get func(*S) Map[string, V], set func(*B, map[string]V) *B, opts ...FieldOption) *Field[S, B] {
	return newField[S, B](name, MarshallingMap,
		func(s *S) any {
			if m := get(s); m != nil {
				return m
			}
			return AutoConstructMap[string, V]()
		},
		func(b *B, v any) error {
			switch x := v.(type) {
			case nil:
				set(b, nil)
			case map[string]V:
				set(b, x)
			case Map[string, V]:
				set(b, x.Clone())
			case map[string]any:
				out := make(map[string]V, len(x))
				for k, el := range x {
					if el == nil {
						var zero V
						out[k] = zero
						continue
					}
					e, ok := el.(V)
					if !ok {
						return mismatch(name+"/"+k, typeName[V](), el)
					}
					out[k] = e
				}
				set(b, out)
			default:
				return mismatch(name, typeName[map[string]V](), v)
			}
			return nil
		}, opts)
}

func pointerField[S, B, T any](name string, mt MarshallingType, get func(*S) *T, set func(*B, *T) *B, opts []FieldOption) *Field[S, B] {
	return newField[S, B](name, mt,
		func(s *S) any {
			if p := get(s); p != nil {
				return *p
			}
			return nil
		},
		func(b *B, v any) error {
			switch x := v.(type) {
			case nil:
				set(b, nil)
			case T:
				set(b, &x)
			case *T:
				set(b, x)
			default:
				return mismatch(name, typeName[T](), v)
			}
			return nil
		}, opts)
}

func typeName[T any]() string { return reflect.TypeFor[T]().String() }
