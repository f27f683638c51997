package sdkmodel_test

import (
	"time"

	"github.com/reoring/sdkmodel"
)

// part and gadget are hand-written shapes in the form generated code takes.

type part struct {
	label *string
}

type partBuilder struct {
	label *string
}

var partSchema = sdkmodel.MustSchema("Part", sdkmodel.KindStructure,
	sdkmodel.StringField("label", func(p *part) *string { return p.label }, (*partBuilder).Label, sdkmodel.Payload("label")),
)

func newPart(label string) *part { return (&partBuilder{}).Label(&label).Build() }

func (p *part) Schema() sdkmodel.SchemaInfo { return partSchema }
func (p *part) Equal(other any) bool        { return partSchema.Equal(p, other) }
func (p *part) HashCode() uint64            { return partSchema.Hash(p) }
func (p *part) String() string              { return partSchema.String(p) }
func (p *part) ToBuilder() *partBuilder     { return &partBuilder{label: sdkmodel.ClonePtr(p.label)} }

func (b *partBuilder) Label(v *string) *partBuilder {
	b.label = v
	return b
}
func (b *partBuilder) Schema() sdkmodel.SchemaInfo  { return partSchema }
func (b *partBuilder) BuildObject() sdkmodel.Object { return b.Build() }
func (b *partBuilder) Build() *part                 { return &part{label: sdkmodel.ClonePtr(b.label)} }

func newPartBuilder() sdkmodel.AnyBuilder { return &partBuilder{} }

var partCopier = sdkmodel.StructListCopier[part, partBuilder]{Build: (*partBuilder).Build, ToBuilder: (*part).ToBuilder}

type gadget struct {
	sdkmodel.RequestEnvelope
	name   *string
	count  *int32
	size   *int64
	on     *bool
	ratio  *float64
	weight *float32
	at     *time.Time
	blob   []byte
	secret *string
	tags   sdkmodel.List[string]
	parts  sdkmodel.List[*part]
	attrs  sdkmodel.Map[string, string]
	byKey  sdkmodel.Map[string, *part]
	main   *part
}

type gadgetBuilder struct {
	sdkmodel.RequestEnvelopeBuilder
	name   *string
	count  *int32
	size   *int64
	on     *bool
	ratio  *float64
	weight *float32
	at     *time.Time
	blob   []byte
	secret *string
	tags   []string
	parts  []*part
	attrs  map[string]string
	byKey  map[string]*part
	main   *part
}

var gadgetSchema = sdkmodel.MustSchema("Gadget", sdkmodel.KindRequest,
	sdkmodel.StringField("name", func(g *gadget) *string { return g.name }, (*gadgetBuilder).Name, sdkmodel.Path("name")),
	sdkmodel.IntegerField("count", func(g *gadget) *int32 { return g.count }, (*gadgetBuilder).Count, sdkmodel.QueryParam("count")),
	sdkmodel.LongField("size", func(g *gadget) *int64 { return g.size }, (*gadgetBuilder).Size, sdkmodel.Header("X-Size")),
	sdkmodel.BooleanField("on", func(g *gadget) *bool { return g.on }, (*gadgetBuilder).On, sdkmodel.Payload("on")),
	sdkmodel.DoubleField("ratio", func(g *gadget) *float64 { return g.ratio }, (*gadgetBuilder).Ratio, sdkmodel.Payload("ratio")),
	sdkmodel.FloatField("weight", func(g *gadget) *float32 { return g.weight }, (*gadgetBuilder).Weight, sdkmodel.Payload("weight")),
	sdkmodel.InstantField("at", func(g *gadget) *time.Time { return g.at }, (*gadgetBuilder).At,
		sdkmodel.Payload("at"), sdkmodel.Format(sdkmodel.UnixTimestampMillis)),
	sdkmodel.BytesField("blob", func(g *gadget) []byte { return g.blob }, (*gadgetBuilder).Blob, sdkmodel.Payload("blob")),
	sdkmodel.StringField("secret", func(g *gadget) *string { return g.secret }, (*gadgetBuilder).Secret,
		sdkmodel.Payload("secret"), sdkmodel.Sensitive()),
	sdkmodel.ListField("tags", func(g *gadget) sdkmodel.List[string] { return g.tags }, (*gadgetBuilder).Tags,
		sdkmodel.Payload("tags"), sdkmodel.ListOfMembers(sdkmodel.MarshallingString)),
	sdkmodel.ListField("parts", func(g *gadget) sdkmodel.List[*part] { return g.parts }, (*gadgetBuilder).Parts,
		sdkmodel.Payload("parts"), sdkmodel.ListOfStructures(newPartBuilder)),
	sdkmodel.MapField("attrs", func(g *gadget) sdkmodel.Map[string, string] { return g.attrs }, (*gadgetBuilder).Attrs,
		sdkmodel.Payload("attrs"), sdkmodel.MapOfValues(sdkmodel.MarshallingString)),
	sdkmodel.MapField("byKey", func(g *gadget) sdkmodel.Map[string, *part] { return g.byKey }, (*gadgetBuilder).ByKey,
		sdkmodel.Payload("byKey"), sdkmodel.MapOfStructures(newPartBuilder), sdkmodel.DisplayName("PartsByKey")),
	sdkmodel.StructureField("main", func(g *gadget) *part { return g.main }, (*gadgetBuilder).Main, newPartBuilder,
		sdkmodel.Payload("main")),
)

func (g *gadget) Schema() sdkmodel.SchemaInfo { return gadgetSchema }
func (g *gadget) Equal(other any) bool        { return gadgetSchema.Equal(g, other) }
func (g *gadget) HashCode() uint64            { return gadgetSchema.Hash(g) }
func (g *gadget) String() string              { return gadgetSchema.String(g) }

func (g *gadget) ToBuilder() *gadgetBuilder {
	return &gadgetBuilder{
		RequestEnvelopeBuilder: g.EnvelopeBuilder(),
		name:                   g.name,
		count:                  g.count,
		size:                   g.size,
		on:                     g.on,
		ratio:                  g.ratio,
		weight:                 g.weight,
		at:                     g.at,
		blob:                   sdkmodel.CloneBytes(g.blob),
		secret:                 g.secret,
		tags:                   listSlice(g.tags),
		parts:                  listSlice(g.parts),
		attrs:                  mapClone(g.attrs),
		byKey:                  mapClone(g.byKey),
		main:                   g.main,
	}
}

func listSlice[T any](l sdkmodel.List[T]) []T {
	if l == nil {
		return nil
	}
	return l.Slice()
}

func mapClone[V any](m sdkmodel.Map[string, V]) map[string]V {
	if m == nil {
		return nil
	}
	return m.Clone()
}

func (b *gadgetBuilder) Name(v *string) *gadgetBuilder    { b.name = v; return b }
func (b *gadgetBuilder) Count(v *int32) *gadgetBuilder    { b.count = v; return b }
func (b *gadgetBuilder) Size(v *int64) *gadgetBuilder     { b.size = v; return b }
func (b *gadgetBuilder) On(v *bool) *gadgetBuilder        { b.on = v; return b }
func (b *gadgetBuilder) Ratio(v *float64) *gadgetBuilder  { b.ratio = v; return b }
func (b *gadgetBuilder) Weight(v *float32) *gadgetBuilder { b.weight = v; return b }
func (b *gadgetBuilder) At(v *time.Time) *gadgetBuilder   { b.at = v; return b }
func (b *gadgetBuilder) Blob(v []byte) *gadgetBuilder     { b.blob = v; return b }
func (b *gadgetBuilder) Secret(v *string) *gadgetBuilder  { b.secret = v; return b }
func (b *gadgetBuilder) Tags(v []string) *gadgetBuilder   { b.tags = v; return b }
func (b *gadgetBuilder) Parts(v []*part) *gadgetBuilder   { b.parts = v; return b }
func (b *gadgetBuilder) Main(v *part) *gadgetBuilder      { b.main = v; return b }
func (b *gadgetBuilder) Attrs(v map[string]string) *gadgetBuilder {
	b.attrs = v
	return b
}
func (b *gadgetBuilder) ByKey(v map[string]*part) *gadgetBuilder {
	b.byKey = v
	return b
}

func (b *gadgetBuilder) Schema() sdkmodel.SchemaInfo  { return gadgetSchema }
func (b *gadgetBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *gadgetBuilder) Build() *gadget {
	return &gadget{
		RequestEnvelope: b.BuildEnvelope(),
		name:            sdkmodel.ClonePtr(b.name),
		count:           sdkmodel.ClonePtr(b.count),
		size:            sdkmodel.ClonePtr(b.size),
		on:              sdkmodel.ClonePtr(b.on),
		ratio:           sdkmodel.ClonePtr(b.ratio),
		weight:          sdkmodel.ClonePtr(b.weight),
		at:              sdkmodel.ClonePtr(b.at),
		blob:            sdkmodel.CloneBytes(b.blob),
		secret:          sdkmodel.ClonePtr(b.secret),
		tags:            sdkmodel.CopyList(b.tags),
		parts:           partCopier.Copy(b.parts),
		attrs:           sdkmodel.CopyMap(b.attrs),
		byKey:           sdkmodel.CopyMap(b.byKey),
		main:            b.main,
	}
}

func ptrTo[T any](v T) *T { return &v }
