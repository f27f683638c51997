package sdkmodel

// FieldOption configures a descriptor at construction time. Traits are
// FieldOptions; a few options (Sensitive, DisplayName) are not traits.
type FieldOption interface {
	applyField(*fieldConfig)
}

// Trait is wire metadata attached to a descriptor.
type Trait interface {
	FieldOption
	TraitName() string
}

type fieldConfig struct {
	traits      []Trait
	sensitive   bool
	displayName string
	member      *MemberInfo
}

type optionFunc func(*fieldConfig)

func (f optionFunc) applyField(c *fieldConfig) { f(c) }

// Sensitive marks a field whose value must never appear in String().
func Sensitive() FieldOption {
	return optionFunc(func(c *fieldConfig) { c.sensitive = true })
}

// DisplayName overrides the name used by String(). The default is the member
// name with its first letter upper-cased.
func DisplayName(name string) FieldOption {
	return optionFunc(func(c *fieldConfig) { c.displayName = name })
}

// LocationTrait declares where a field's value travels and under which name.
type LocationTrait struct {
	Location Location
	Name     string
}

func (t LocationTrait) TraitName() string         { return "location" }
func (t LocationTrait) applyField(c *fieldConfig) { c.traits = append(c.traits, t) }
func (t LocationTrait) String() string            { return t.Location.String() + ":" + t.Name }

// Path places a field in a request path segment.
func Path(name string) LocationTrait { return LocationTrait{Location: LocationPath, Name: name} }

// QueryParam places a field in the query string.
func QueryParam(name string) LocationTrait {
	return LocationTrait{Location: LocationQueryParam, Name: name}
}

// Header places a field in an HTTP header. Map fields use name as a header prefix.
func Header(name string) LocationTrait { return LocationTrait{Location: LocationHeader, Name: name} }

// Payload places a field in the message body.
func Payload(name string) LocationTrait { return LocationTrait{Location: LocationPayload, Name: name} }

// TimestampFormatTrait pins the wire format of an INSTANT field.
type TimestampFormatTrait struct {
	Format TimestampFormat
}

func (t TimestampFormatTrait) TraitName() string         { return "timestampFormat" }
func (t TimestampFormatTrait) applyField(c *fieldConfig) { c.traits = append(c.traits, t) }

// Format returns a TimestampFormatTrait.
func Format(f TimestampFormat) TimestampFormatTrait { return TimestampFormatTrait{Format: f} }

// MemberInfo describes the elements of a list or the values of a map.
type MemberInfo struct {
	Type MarshallingType
	// NewBuilder materializes nested structures; nil for scalar members.
	NewBuilder func() AnyBuilder
	// Format applies to INSTANT members.
	Format *TimestampFormat
}

// ListTrait carries member information for LIST fields.
type ListTrait struct {
	Member MemberInfo
}

func (t ListTrait) TraitName() string { return "list" }
func (t ListTrait) applyField(c *fieldConfig) {
	c.traits = append(c.traits, t)
	m := t.Member
	c.member = &m
}

// MapTrait carries value information for MAP fields.
type MapTrait struct {
	Value MemberInfo
}

func (t MapTrait) TraitName() string { return "map" }
func (t MapTrait) applyField(c *fieldConfig) {
	c.traits = append(c.traits, t)
	m := t.Value
	c.member = &m
}

// ListOfMembers returns a ListTrait for scalar members.
func ListOfMembers(mt MarshallingType) ListTrait { return ListTrait{Member: MemberInfo{Type: mt}} }

// ListOfStructures returns a ListTrait whose members are built with newBuilder.
func ListOfStructures(newBuilder func() AnyBuilder) ListTrait {
	return ListTrait{Member: MemberInfo{Type: MarshallingStructure, NewBuilder: newBuilder}}
}

// MapOfValues returns a MapTrait for scalar values.
func MapOfValues(mt MarshallingType) MapTrait { return MapTrait{Value: MemberInfo{Type: mt}} }

// MapOfStructures returns a MapTrait whose values are built with newBuilder.
func MapOfStructures(newBuilder func() AnyBuilder) MapTrait {
	return MapTrait{Value: MemberInfo{Type: MarshallingStructure, NewBuilder: newBuilder}}
}
