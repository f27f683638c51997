package acm

import "github.com/reoring/sdkmodel"

// Tag is a key-value pair attached to a certificate.
type Tag struct {
	key   *string
	value *string
}

var tagSchema = sdkmodel.MustSchema("Tag", sdkmodel.KindStructure,
	sdkmodel.StringField("key", func(r *Tag) *string { return r.key }, (*TagBuilder).Key, sdkmodel.Payload("Key")),
	sdkmodel.StringField("value", func(r *Tag) *string { return r.value }, (*TagBuilder).Value, sdkmodel.Payload("Value")),
)

func (r *Tag) Key() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.key)
}

func (r *Tag) Value() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.value)
}

func (r *Tag) Schema() sdkmodel.SchemaInfo { return tagSchema }
func (r *Tag) Equal(other any) bool        { return tagSchema.Equal(r, other) }
func (r *Tag) HashCode() uint64            { return tagSchema.Hash(r) }
func (r *Tag) String() string              { return tagSchema.String(r) }

func (r *Tag) ToBuilder() *TagBuilder {
	if r == nil {
		return NewTagBuilder()
	}
	return &TagBuilder{key: sdkmodel.ClonePtr(r.key), value: sdkmodel.ClonePtr(r.value)}
}

type TagBuilder struct {
	key   *string
	value *string
}

var _ sdkmodel.Builder[*Tag] = (*TagBuilder)(nil)

func NewTagBuilder() *TagBuilder { return &TagBuilder{} }

func (b *TagBuilder) Key(v *string) *TagBuilder {
	b.key = v
	return b
}

func (b *TagBuilder) Value(v *string) *TagBuilder {
	b.value = v
	return b
}

func (b *TagBuilder) Schema() sdkmodel.SchemaInfo  { return tagSchema }
func (b *TagBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *TagBuilder) Build() *Tag {
	return &Tag{key: sdkmodel.ClonePtr(b.key), value: sdkmodel.ClonePtr(b.value)}
}

func newTagBuilder() sdkmodel.AnyBuilder { return NewTagBuilder() }

var tagListCopier = sdkmodel.StructListCopier[Tag, TagBuilder]{
	Build:     (*TagBuilder).Build,
	ToBuilder: (*Tag).ToBuilder,
}
