package sdkmodel

import "strconv"

// SchemaInfo is the type-erased descriptor registry of one value type.
type SchemaInfo interface {
	TypeName() string
	Kind() Kind
	// Fields is the ordered descriptor list. The slice is shared by every
	// caller and must not be modified.
	Fields() []Descriptor
	// FieldByName reports false for unknown names; that is never an error.
	FieldByName(name string) (Descriptor, bool)
}

// Schema holds the descriptors of value type S built by builder type B and
// derives the generic operations of S from them. A Schema is built once per
// type and is safe for concurrent use.
type Schema[S, B any] struct {
	typeName string
	kind     Kind
	fields   []*Field[S, B]
	erased   []Descriptor
	byName   map[string]*Field[S, B]
}

var _ SchemaInfo = (*Schema[struct{}, struct{}])(nil)

// NewSchema validates fields and returns the registry. Every field must carry
// exactly one location, member names must be non-empty and unique, and a
// timestamp format may only be pinned on INSTANT fields or collections of
// INSTANT.
func NewSchema[S, B any](typeName string, kind Kind, fields ...*Field[S, B]) (*Schema[S, B], error) {
	s := &Schema[S, B]{
		typeName: typeName,
		kind:     kind,
		fields:   make([]*Field[S, B], 0, len(fields)),
		erased:   make([]Descriptor, 0, len(fields)),
		byName:   make(map[string]*Field[S, B], len(fields)),
	}
	var iss Issues
	for i, f := range fields {
		if f == nil {
			iss = AppendIssues(iss, NewIssue("/"+strconv.Itoa(i), CodeInvalidTrait, "nil field", nil))
			continue
		}
		if f.memberName == "" {
			iss = AppendIssues(iss, NewIssue("/"+strconv.Itoa(i), CodeInvalidTrait, "empty member name", nil))
			continue
		}
		path := "/" + f.memberName
		if _, dup := s.byName[f.memberName]; dup {
			iss = AppendIssues(iss, NewIssue(path, CodeDuplicateField, typeName, nil))
			continue
		}
		switch {
		case f.locations == 0:
			iss = AppendIssues(iss, NewIssue(path, CodeMissingLocation, "", nil))
		case f.locations > 1:
			iss = AppendIssues(iss, NewIssue(path, CodeInvalidTrait, "more than one location", nil))
		}
		iss = append(iss, checkTraits(path, f.mtype, f.cfg.traits)...)
		s.fields = append(s.fields, f)
		s.erased = append(s.erased, f)
		s.byName[f.memberName] = f
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return s, nil
}

// MustSchema is NewSchema that panics on error. Generated code uses it in
// package-level vars.
func MustSchema[S, B any](typeName string, kind Kind, fields ...*Field[S, B]) *Schema[S, B] {
	s, err := NewSchema(typeName, kind, fields...)
	if err != nil {
		panic(typeName + ": " + err.Error())
	}
	return s
}

func checkTraits(path string, mt MarshallingType, traits []Trait) Issues {
	var iss Issues
	var member *MemberInfo
	for _, t := range traits {
		switch tt := t.(type) {
		case ListTrait:
			if mt != MarshallingList {
				iss = AppendIssues(iss, NewIssue(path, CodeInvalidTrait, "list trait on "+mt.String(), nil))
			}
			member = &tt.Member
		case MapTrait:
			if mt != MarshallingMap {
				iss = AppendIssues(iss, NewIssue(path, CodeInvalidTrait, "map trait on "+mt.String(), nil))
			}
			member = &tt.Value
		}
	}
	for _, t := range traits {
		if _, ok := t.(TimestampFormatTrait); !ok {
			continue
		}
		switch {
		case mt == MarshallingInstant:
		case mt.IsCollection() && member != nil && member.Type == MarshallingInstant:
		default:
			iss = AppendIssues(iss, NewIssue(path, CodeInvalidTrait, "timestampFormat on "+mt.String(), nil))
		}
	}
	return iss
}

func (s *Schema[S, B]) TypeName() string     { return s.typeName }
func (s *Schema[S, B]) Kind() Kind           { return s.kind }
func (s *Schema[S, B]) Fields() []Descriptor { return s.erased }

func (s *Schema[S, B]) FieldByName(name string) (Descriptor, bool) {
	f, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return f, true
}

// Field is the typed form of FieldByName.
func (s *Schema[S, B]) Field(name string) (*Field[S, B], bool) {
	f, ok := s.byName[name]
	return f, ok
}

type overrideCarrier interface {
	OverrideConfiguration() *OverrideConfiguration
}

// Equal reports whether other is a *S holding the same field values as a.
// Request override configuration takes part; response metadata does not.
func (s *Schema[S, B]) Equal(a *S, other any) bool {
	if other == nil {
		return a == nil
	}
	b, ok := other.(*S)
	if !ok {
		return false
	}
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	for _, f := range s.fields {
		if !valueEqual(f.get(a), f.get(b)) {
			return false
		}
	}
	if s.kind == KindRequest {
		if oa, ok := any(a).(overrideCarrier); ok {
			return oa.OverrideConfiguration().Equal(any(b).(overrideCarrier).OverrideConfiguration())
		}
	}
	return true
}

// Hash folds the field values in descriptor order, consistent with Equal.
func (s *Schema[S, B]) Hash(a *S) uint64 {
	if a == nil {
		return 0
	}
	h := uint64(1)
	for _, f := range s.fields {
		h = 31*h + hashValue(f.get(a))
	}
	if s.kind == KindRequest {
		if oa, ok := any(a).(overrideCarrier); ok {
			h = 31*h + oa.OverrideConfiguration().HashCode()
		}
	}
	return h
}

// String renders TypeName(Field=value, ...). Absent values and unset
// collections are left out; sensitive fields always show Redacted.
func (s *Schema[S, B]) String(a *S) string {
	if a == nil {
		return "null"
	}
	ts := newToString(s.typeName)
	for _, f := range s.fields {
		if f.cfg.sensitive {
			ts.add(f.DisplayName(), Redacted)
			continue
		}
		v := f.get(a)
		if v == nil || IsAutoConstruct(v) {
			continue
		}
		ts.add(f.DisplayName(), formatValue(v))
	}
	return ts.build()
}
