package sdkmodel

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// AnyList is the element-type-erased view of a List used by generic operations
// and wire encoders.
type AnyList interface {
	Len() int
	AnyAt(i int) any
	// AutoConstruct reports whether this is the "never set" sentinel.
	AutoConstruct() bool
	Equal(other any) bool
	HashCode() uint64
	String() string
}

// List is an immutable ordered collection owned by a value or builder.
type List[T any] interface {
	AnyList
	At(i int) T
	All() iter.Seq2[int, T]
	// Slice returns a fresh copy of the elements; nil for the sentinel.
	Slice() []T
}

// AnyMap is the value-type-erased view of a Map. Keys are reported in
// ascending order.
type AnyMap interface {
	Len() int
	Keys() []string
	AnyGet(key string) (any, bool)
	AutoConstruct() bool
	Equal(other any) bool
	HashCode() uint64
	String() string
}

// Map is an immutable string-keyed collection owned by a value or builder.
type Map[K ~string, V any] interface {
	AnyMap
	Get(key K) (V, bool)
	// All yields entries in ascending key order.
	All() iter.Seq2[K, V]
	// Clone returns a fresh copy of the entries; nil for the sentinel.
	Clone() map[K]V
}

// IsAutoConstruct reports whether c is an auto-construct sentinel collection.
// Nil and non-collection values report false.
func IsAutoConstruct(c any) bool {
	a, ok := c.(interface{ AutoConstruct() bool })
	return ok && a.AutoConstruct()
}

// ---- sentinels ----

// autoConstructList is zero-sized: every value of autoConstructList[T] is the
// same sentinel, and no other List implementation compares equal to it.
type autoConstructList[T any] struct{}

// AutoConstructList returns the shared "never set" sentinel for lists of T.
// Compare with == to test for it; a caller-supplied empty list is never equal.
func AutoConstructList[T any]() List[T] { return autoConstructList[T]{} }

func (autoConstructList[T]) Len() int            { return 0 }
func (autoConstructList[T]) AnyAt(i int) any     { panic(outOfRange(i, 0)) }
func (autoConstructList[T]) At(i int) T          { panic(outOfRange(i, 0)) }
func (autoConstructList[T]) AutoConstruct() bool { return true }
func (autoConstructList[T]) Slice() []T          { return nil }
func (autoConstructList[T]) HashCode() uint64    { return 0 }
func (autoConstructList[T]) String() string      { return "[]" }
func (autoConstructList[T]) All() iter.Seq2[int, T] {
	return func(func(int, T) bool) {}
}
func (autoConstructList[T]) Equal(other any) bool { return IsAutoConstruct(other) }

type autoConstructMap[K ~string, V any] struct{}

// AutoConstructMap returns the shared "never set" sentinel for maps of K to V.
func AutoConstructMap[K ~string, V any]() Map[K, V] { return autoConstructMap[K, V]{} }

func (autoConstructMap[K, V]) Len() int                  { return 0 }
func (autoConstructMap[K, V]) Keys() []string            { return nil }
func (autoConstructMap[K, V]) AnyGet(string) (any, bool) { return nil, false }
func (autoConstructMap[K, V]) Get(K) (V, bool) {
	var zero V
	return zero, false
}
func (autoConstructMap[K, V]) AutoConstruct() bool  { return true }
func (autoConstructMap[K, V]) Clone() map[K]V       { return nil }
func (autoConstructMap[K, V]) HashCode() uint64     { return 0 }
func (autoConstructMap[K, V]) String() string       { return "{}" }
func (autoConstructMap[K, V]) Equal(other any) bool { return IsAutoConstruct(other) }
func (autoConstructMap[K, V]) All() iter.Seq2[K, V] {
	return func(func(K, V) bool) {}
}

// ---- views over caller data ----

// listView owns items; it is always used through a pointer so that interface
// comparison against the sentinel never inspects the slice.
type listView[T any] struct {
	items []T
}

// ListOf returns an immutable list holding a copy of items. A nil or empty
// argument yields an explicitly empty list, never the sentinel.
func ListOf[T any](items ...T) List[T] {
	out := make([]T, len(items))
	copy(out, items)
	return &listView[T]{items: out}
}

func (l *listView[T]) Len() int            { return len(l.items) }
func (l *listView[T]) AnyAt(i int) any     { return l.items[i] }
func (l *listView[T]) At(i int) T          { return l.items[i] }
func (l *listView[T]) AutoConstruct() bool { return false }
func (l *listView[T]) Slice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
func (l *listView[T]) All() iter.Seq2[int, T] { return slices.All(l.items) }

func (l *listView[T]) Equal(other any) bool {
	o, ok := other.(AnyList)
	if !ok || o.AutoConstruct() || o.Len() != len(l.items) {
		return false
	}
	for i := range l.items {
		if !valueEqual(l.AnyAt(i), o.AnyAt(i)) {
			return false
		}
	}
	return true
}

func (l *listView[T]) HashCode() uint64 {
	h := uint64(1)
	for i := range l.items {
		h = 31*h + hashValue(l.AnyAt(i))
	}
	return h
}

func (l *listView[T]) String() string {
	parts := make([]string, len(l.items))
	for i := range l.items {
		parts[i] = formatValue(l.AnyAt(i))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type mapView[K ~string, V any] struct {
	m    map[K]V
	keys []K
}

// MapOf returns an immutable map holding a copy of m. A nil or empty argument
// yields an explicitly empty map, never the sentinel.
func MapOf[K ~string, V any](m map[K]V) Map[K, V] {
	out := make(map[K]V, len(m))
	keys := make([]K, 0, len(m))
	for k, v := range m {
		out[k] = v
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return &mapView[K, V]{m: out, keys: keys}
}

func (m *mapView[K, V]) Len() int            { return len(m.m) }
func (m *mapView[K, V]) AutoConstruct() bool { return false }

func (m *mapView[K, V]) Keys() []string {
	out := make([]string, len(m.keys))
	for i, k := range m.keys {
		out[i] = string(k)
	}
	return out
}

func (m *mapView[K, V]) AnyGet(key string) (any, bool) {
	v, ok := m.m[K(key)]
	if !ok {
		return nil, false
	}
	return v, true
}

func (m *mapView[K, V]) Get(key K) (V, bool) {
	v, ok := m.m[key]
	return v, ok
}

func (m *mapView[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

func (m *mapView[K, V]) Clone() map[K]V {
	out := make(map[K]V, len(m.m))
	for k, v := range m.m {
		out[k] = v
	}
	return out
}

func (m *mapView[K, V]) Equal(other any) bool {
	o, ok := other.(AnyMap)
	if !ok || o.AutoConstruct() || o.Len() != len(m.m) {
		return false
	}
	for k, v := range m.m {
		ov, ok := o.AnyGet(string(k))
		if !ok || !valueEqual(any(v), ov) {
			return false
		}
	}
	return true
}

// HashCode is order-insensitive so that equal maps hash alike whatever the
// insertion history.
func (m *mapView[K, V]) HashCode() uint64 {
	var h uint64
	for k, v := range m.m {
		h += hashValue(string(k)) ^ hashValue(any(v))
	}
	return h
}

func (m *mapView[K, V]) String() string {
	parts := make([]string, len(m.keys))
	for i, k := range m.keys {
		parts[i] = string(k) + "=" + formatValue(any(m.m[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func outOfRange(i, n int) string {
	return "sdkmodel: index " + strconv.Itoa(i) + " out of range [0:" + strconv.Itoa(n) + "]"
}
