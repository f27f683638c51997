package sdkmodel

// CopyList freezes a builder's working slice. A nil slice means the caller
// never set the field and yields the sentinel; any other slice, empty
// included, yields an immutable copy.
func CopyList[T any](src []T) List[T] {
	if src == nil {
		return AutoConstructList[T]()
	}
	return ListOf(src...)
}

// CopyListOf copies an existing list, preserving the sentinel.
func CopyListOf[T any](src List[T]) List[T] {
	if src == nil || src.AutoConstruct() {
		return AutoConstructList[T]()
	}
	return ListOf(src.Slice()...)
}

// CopyMap is the map form of CopyList.
func CopyMap[K ~string, V any](src map[K]V) Map[K, V] {
	if src == nil {
		return AutoConstructMap[K, V]()
	}
	return MapOf(src)
}

// CopyMapOf is the map form of CopyListOf.
func CopyMapOf[K ~string, V any](src Map[K, V]) Map[K, V] {
	if src == nil || src.AutoConstruct() {
		return AutoConstructMap[K, V]()
	}
	return MapOf(src.Clone())
}

// StructListCopier converts lists of nested structures S to and from lists of
// their builders B. Nil elements keep their position in every direction.
type StructListCopier[S, B any] struct {
	Build     func(*B) *S
	ToBuilder func(*S) *B
}

// Copy is CopyList for structure elements.
func (c StructListCopier[S, B]) Copy(src []*S) List[*S] { return CopyList(src) }

// CopyFromBuilder builds every non-nil element.
func (c StructListCopier[S, B]) CopyFromBuilder(src []*B) List[*S] {
	if src == nil {
		return AutoConstructList[*S]()
	}
	out := make([]*S, len(src))
	for i, b := range src {
		if b != nil {
			out[i] = c.Build(b)
		}
	}
	return &listView[*S]{items: out}
}

// CopyToBuilder converts every non-nil element back to a builder. The result
// is nil for the sentinel so that a builder keeps the field unset.
func (c StructListCopier[S, B]) CopyToBuilder(src List[*S]) []*B {
	if src == nil || src.AutoConstruct() {
		return nil
	}
	out := make([]*B, src.Len())
	for i, s := range src.All() {
		if s != nil {
			out[i] = c.ToBuilder(s)
		}
	}
	return out
}

// StructMapCopier is the map form of StructListCopier. Nil values keep their
// key.
type StructMapCopier[S, B any] struct {
	Build     func(*B) *S
	ToBuilder func(*S) *B
}

func (c StructMapCopier[S, B]) Copy(src map[string]*S) Map[string, *S] { return CopyMap(src) }

func (c StructMapCopier[S, B]) CopyFromBuilder(src map[string]*B) Map[string, *S] {
	if src == nil {
		return AutoConstructMap[string, *S]()
	}
	out := make(map[string]*S, len(src))
	for k, b := range src {
		if b == nil {
			out[k] = nil
			continue
		}
		out[k] = c.Build(b)
	}
	return MapOf(out)
}

func (c StructMapCopier[S, B]) CopyToBuilder(src Map[string, *S]) map[string]*B {
	if src == nil || src.AutoConstruct() {
		return nil
	}
	out := make(map[string]*B, src.Len())
	for k, s := range src.All() {
		if s == nil {
			out[k] = nil
			continue
		}
		out[k] = c.ToBuilder(s)
	}
	return out
}

// CopyEnumsToStrings stores enum values by their wire strings. Unknown
// variants are kept as the empty string.
func CopyEnumsToStrings[E ~string](src []E) List[string] {
	if src == nil {
		return AutoConstructList[string]()
	}
	out := make([]string, len(src))
	for i, e := range src {
		out[i] = string(e)
	}
	return &listView[string]{items: out}
}

// EnumsOf resolves a list of wire strings against set. Unrecognized strings
// become the unknown variant.
func EnumsOf[E ~string](src List[string], set EnumSet[E]) List[E] {
	if src == nil || src.AutoConstruct() {
		return AutoConstructList[E]()
	}
	out := make([]E, src.Len())
	for i, s := range src.All() {
		out[i] = set.Parse(s)
	}
	return &listView[E]{items: out}
}
