package sdkmodel

import "slices"

// EnumSet is the closed set of known variants of a wire enum E. The zero
// value of E, the empty string, is the unknown variant: it stands for any
// wire value this client does not recognize and has no wire value itself.
type EnumSet[E ~string] struct {
	known []E
	index map[string]E
}

// NewEnumSet panics when a variant is empty or repeated; enum sets are
// declared by generated code in package-level vars.
func NewEnumSet[E ~string](known ...E) EnumSet[E] {
	s := EnumSet[E]{known: slices.Clone(known), index: make(map[string]E, len(known))}
	for _, k := range known {
		if k == "" {
			panic("sdkmodel: empty enum variant")
		}
		if _, dup := s.index[string(k)]; dup {
			panic("sdkmodel: duplicate enum variant " + string(k))
		}
		s.index[string(k)] = k
	}
	return s
}

// FromValue resolves a wire value. A nil value has no variant and yields nil;
// an unrecognized one yields the unknown variant.
func (s EnumSet[E]) FromValue(v *string) *E {
	if v == nil {
		return nil
	}
	e := s.Parse(*v)
	return &e
}

// Parse resolves a present wire value, mapping unrecognized input to the
// unknown variant.
func (s EnumSet[E]) Parse(v string) E {
	return s.index[v]
}

// KnownValues returns the known variants in declaration order, without the
// unknown variant.
func (s EnumSet[E]) KnownValues() []E { return slices.Clone(s.known) }

func (s EnumSet[E]) IsKnown(e E) bool {
	_, ok := s.index[string(e)]
	return ok
}

// EnumValue returns the wire value of e. The unknown variant has none.
func EnumValue[E ~string](e E) (string, bool) {
	if e == "" {
		return "", false
	}
	return string(e), true
}
