package protocol_test

import (
	"net/http"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/protocol"
)

// search is a request whose members all travel in the query string.
type search struct {
	sdkmodel.RequestEnvelope
	states sdkmodel.List[string]
	extra  sdkmodel.Map[string, string]
	limit  *int32
	cursor *string
}

type searchBuilder struct {
	sdkmodel.RequestEnvelopeBuilder
	states []string
	extra  map[string]string
	limit  *int32
	cursor *string
}

var searchSchema = sdkmodel.MustSchema("Search", sdkmodel.KindRequest,
	sdkmodel.ListField("states", func(s *search) sdkmodel.List[string] { return s.states }, (*searchBuilder).States,
		sdkmodel.QueryParam("state"), sdkmodel.ListOfMembers(sdkmodel.MarshallingString)),
	sdkmodel.MapField("extra", func(s *search) sdkmodel.Map[string, string] { return s.extra }, (*searchBuilder).Extra,
		sdkmodel.QueryParam("extra"), sdkmodel.MapOfValues(sdkmodel.MarshallingString)),
	sdkmodel.IntegerField("limit", func(s *search) *int32 { return s.limit }, (*searchBuilder).Limit,
		sdkmodel.QueryParam("limit")),
	sdkmodel.StringField("cursor", func(s *search) *string { return s.cursor }, (*searchBuilder).Cursor,
		sdkmodel.QueryParam("cursor")),
)

var searchOperation = protocol.Operation{Method: http.MethodGet, Path: "/search"}

func (s *search) Schema() sdkmodel.SchemaInfo { return searchSchema }
func (s *search) Equal(other any) bool        { return searchSchema.Equal(s, other) }
func (s *search) HashCode() uint64            { return searchSchema.Hash(s) }
func (s *search) String() string              { return searchSchema.String(s) }

func (b *searchBuilder) States(v []string) *searchBuilder {
	b.states = v
	return b
}

func (b *searchBuilder) Extra(v map[string]string) *searchBuilder {
	b.extra = v
	return b
}

func (b *searchBuilder) Limit(v *int32) *searchBuilder {
	b.limit = v
	return b
}

func (b *searchBuilder) Cursor(v *string) *searchBuilder {
	b.cursor = v
	return b
}

func (b *searchBuilder) Schema() sdkmodel.SchemaInfo  { return searchSchema }
func (b *searchBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *searchBuilder) Build() *search {
	return &search{
		RequestEnvelope: b.BuildEnvelope(),
		states:          sdkmodel.CopyList(b.states),
		extra:           sdkmodel.CopyMap(b.extra),
		limit:           sdkmodel.ClonePtr(b.limit),
		cursor:          sdkmodel.ClonePtr(b.cursor),
	}
}
