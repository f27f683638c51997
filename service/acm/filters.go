package acm

import "github.com/reoring/sdkmodel"

// Filters narrows ListCertificates by key properties. Each list holds wire
// values, so variants added by the service survive a round trip.
type Filters struct {
	extendedKeyUsage sdkmodel.List[string]
	keyUsage         sdkmodel.List[string]
	keyTypes         sdkmodel.List[string]
}

var filtersSchema = sdkmodel.MustSchema("Filters", sdkmodel.KindStructure,
	sdkmodel.ListField("extendedKeyUsage",
		func(r *Filters) sdkmodel.List[string] { return r.extendedKeyUsage },
		(*FiltersBuilder).ExtendedKeyUsageRaw,
		sdkmodel.Payload("extendedKeyUsage"), sdkmodel.ListOfMembers(sdkmodel.MarshallingString)),
	sdkmodel.ListField("keyUsage",
		func(r *Filters) sdkmodel.List[string] { return r.keyUsage },
		(*FiltersBuilder).KeyUsageRaw,
		sdkmodel.Payload("keyUsage"), sdkmodel.ListOfMembers(sdkmodel.MarshallingString)),
	sdkmodel.ListField("keyTypes",
		func(r *Filters) sdkmodel.List[string] { return r.keyTypes },
		(*FiltersBuilder).KeyTypesRaw,
		sdkmodel.Payload("keyTypes"), sdkmodel.ListOfMembers(sdkmodel.MarshallingString)),
)

func (r *Filters) ExtendedKeyUsage() sdkmodel.List[ExtendedKeyUsageName] {
	if r == nil {
		return sdkmodel.AutoConstructList[ExtendedKeyUsageName]()
	}
	return sdkmodel.EnumsOf(r.extendedKeyUsage, extendedKeyUsageNames)
}

func (r *Filters) ExtendedKeyUsageAsStrings() sdkmodel.List[string] {
	if r == nil {
		return sdkmodel.AutoConstructList[string]()
	}
	return stringsOrSentinel(r.extendedKeyUsage)
}

func (r *Filters) HasExtendedKeyUsage() bool { return r != nil && isSet(r.extendedKeyUsage) }

func (r *Filters) KeyUsage() sdkmodel.List[KeyUsageName] {
	if r == nil {
		return sdkmodel.AutoConstructList[KeyUsageName]()
	}
	return sdkmodel.EnumsOf(r.keyUsage, keyUsageNames)
}

func (r *Filters) KeyUsageAsStrings() sdkmodel.List[string] {
	if r == nil {
		return sdkmodel.AutoConstructList[string]()
	}
	return stringsOrSentinel(r.keyUsage)
}

func (r *Filters) HasKeyUsage() bool { return r != nil && isSet(r.keyUsage) }

// KeyTypes resolves each wire value; unknown algorithms become
// KeyAlgorithmUnknownToSDKVersion.
func (r *Filters) KeyTypes() sdkmodel.List[KeyAlgorithm] {
	if r == nil {
		return sdkmodel.AutoConstructList[KeyAlgorithm]()
	}
	return sdkmodel.EnumsOf(r.keyTypes, keyAlgorithms)
}

func (r *Filters) KeyTypesAsStrings() sdkmodel.List[string] {
	if r == nil {
		return sdkmodel.AutoConstructList[string]()
	}
	return stringsOrSentinel(r.keyTypes)
}

func (r *Filters) HasKeyTypes() bool { return r != nil && isSet(r.keyTypes) }

func (r *Filters) Schema() sdkmodel.SchemaInfo { return filtersSchema }
func (r *Filters) Equal(other any) bool        { return filtersSchema.Equal(r, other) }
func (r *Filters) HashCode() uint64            { return filtersSchema.Hash(r) }
func (r *Filters) String() string              { return filtersSchema.String(r) }

func (r *Filters) ToBuilder() *FiltersBuilder {
	if r == nil {
		return NewFiltersBuilder()
	}
	return &FiltersBuilder{
		extendedKeyUsage: stringsOrSentinel(r.extendedKeyUsage).Slice(),
		keyUsage:         stringsOrSentinel(r.keyUsage).Slice(),
		keyTypes:         stringsOrSentinel(r.keyTypes).Slice(),
	}
}

type FiltersBuilder struct {
	extendedKeyUsage []string
	keyUsage         []string
	keyTypes         []string
}

var _ sdkmodel.Builder[*Filters] = (*FiltersBuilder)(nil)

func NewFiltersBuilder() *FiltersBuilder { return &FiltersBuilder{} }

func (b *FiltersBuilder) ExtendedKeyUsage(v []ExtendedKeyUsageName) *FiltersBuilder {
	b.extendedKeyUsage = sdkmodel.CopyEnumsToStrings(v).Slice()
	return b
}

func (b *FiltersBuilder) ExtendedKeyUsageRaw(v []string) *FiltersBuilder {
	b.extendedKeyUsage = v
	return b
}

func (b *FiltersBuilder) KeyUsage(v []KeyUsageName) *FiltersBuilder {
	b.keyUsage = sdkmodel.CopyEnumsToStrings(v).Slice()
	return b
}

func (b *FiltersBuilder) KeyUsageRaw(v []string) *FiltersBuilder {
	b.keyUsage = v
	return b
}

func (b *FiltersBuilder) KeyTypes(v []KeyAlgorithm) *FiltersBuilder {
	b.keyTypes = sdkmodel.CopyEnumsToStrings(v).Slice()
	return b
}

func (b *FiltersBuilder) KeyTypesRaw(v []string) *FiltersBuilder {
	b.keyTypes = v
	return b
}

func (b *FiltersBuilder) Schema() sdkmodel.SchemaInfo  { return filtersSchema }
func (b *FiltersBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *FiltersBuilder) Build() *Filters {
	return &Filters{
		extendedKeyUsage: sdkmodel.CopyList(b.extendedKeyUsage),
		keyUsage:         sdkmodel.CopyList(b.keyUsage),
		keyTypes:         sdkmodel.CopyList(b.keyTypes),
	}
}

func newFiltersBuilder() sdkmodel.AnyBuilder { return NewFiltersBuilder() }

func stringsOrSentinel(l sdkmodel.List[string]) sdkmodel.List[string] {
	if l == nil {
		return sdkmodel.AutoConstructList[string]()
	}
	return l
}

func isSet[T any](l sdkmodel.List[T]) bool { return l != nil && !l.AutoConstruct() }
