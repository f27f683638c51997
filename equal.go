package sdkmodel

import (
	"bytes"
	"time"
)

// Equaler is implemented by values with structural equality: generated
// objects, collection views, and envelope values. Implementations accept an
// untyped nil and report true only when the receiver is itself nil.
type Equaler interface {
	Equal(other any) bool
}

// valueEqual compares two normalized field values (see Descriptor.Get).
func valueEqual(a, b any) bool {
	if a == nil {
		return isNilValue(b)
	}
	if b == nil {
		return isNilValue(a)
	}
	switch x := a.(type) {
	case Equaler:
		return x.Equal(b)
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	case float64:
		y, ok := b.(float64)
		return ok && (x == y || (x != x && y != y))
	case float32:
		y, ok := b.(float32)
		return ok && (x == y || (x != x && y != y))
	default:
		// Normalized scalars (string, bool, int32, int64) are comparable.
		return a == b
	}
}

// isNilValue detects typed nil objects carried inside collections, e.g. a nil
// *RepositoryInput element of a List.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	if e, ok := v.(Equaler); ok {
		return e.Equal(nil)
	}
	return false
}
