package codecatalyst

import "github.com/reoring/sdkmodel"

// ListDevEnvironmentsRequest lists the dev environments of a space, one page
// at a time.
type ListDevEnvironmentsRequest struct {
	sdkmodel.RequestEnvelope
	spaceName   *string
	projectName *string
	filters     sdkmodel.List[*Filter]
	nextToken   *string
	maxResults  *int32
}

var listDevEnvironmentsRequestSchema = sdkmodel.MustSchema("ListDevEnvironmentsRequest", sdkmodel.KindRequest,
	sdkmodel.StringField("spaceName",
		func(r *ListDevEnvironmentsRequest) *string { return r.spaceName },
		(*ListDevEnvironmentsRequestBuilder).SpaceName,
		sdkmodel.Path("spaceName")),
	sdkmodel.StringField("projectName",
		func(r *ListDevEnvironmentsRequest) *string { return r.projectName },
		(*ListDevEnvironmentsRequestBuilder).ProjectName,
		sdkmodel.Payload("projectName")),
	sdkmodel.ListField("filters",
		func(r *ListDevEnvironmentsRequest) sdkmodel.List[*Filter] { return r.filters },
		(*ListDevEnvironmentsRequestBuilder).Filters,
		sdkmodel.Payload("filters"), sdkmodel.ListOfStructures(newFilterBuilder)),
	sdkmodel.StringField("nextToken",
		func(r *ListDevEnvironmentsRequest) *string { return r.nextToken },
		(*ListDevEnvironmentsRequestBuilder).NextToken,
		sdkmodel.Payload("nextToken")),
	sdkmodel.IntegerField("maxResults",
		func(r *ListDevEnvironmentsRequest) *int32 { return r.maxResults },
		(*ListDevEnvironmentsRequestBuilder).MaxResults,
		sdkmodel.Payload("maxResults")),
)

func newFilterBuilder() sdkmodel.AnyBuilder { return NewFilterBuilder() }

func (r *ListDevEnvironmentsRequest) SpaceName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.spaceName)
}

func (r *ListDevEnvironmentsRequest) ProjectName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.projectName)
}

func (r *ListDevEnvironmentsRequest) Filters() sdkmodel.List[*Filter] {
	if r == nil || r.filters == nil {
		return sdkmodel.AutoConstructList[*Filter]()
	}
	return r.filters
}

func (r *ListDevEnvironmentsRequest) HasFilters() bool {
	return r != nil && r.filters != nil && !r.filters.AutoConstruct()
}

func (r *ListDevEnvironmentsRequest) NextToken() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.nextToken)
}

func (r *ListDevEnvironmentsRequest) MaxResults() *int32 {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.maxResults)
}

func (r *ListDevEnvironmentsRequest) Schema() sdkmodel.SchemaInfo {
	return listDevEnvironmentsRequestSchema
}
func (r *ListDevEnvironmentsRequest) Equal(other any) bool {
	return listDevEnvironmentsRequestSchema.Equal(r, other)
}
func (r *ListDevEnvironmentsRequest) HashCode() uint64 {
	return listDevEnvironmentsRequestSchema.Hash(r)
}
func (r *ListDevEnvironmentsRequest) String() string {
	return listDevEnvironmentsRequestSchema.String(r)
}

func (r *ListDevEnvironmentsRequest) ToBuilder() *ListDevEnvironmentsRequestBuilder {
	if r == nil {
		return NewListDevEnvironmentsRequestBuilder()
	}
	return &ListDevEnvironmentsRequestBuilder{
		RequestEnvelopeBuilder: r.EnvelopeBuilder(),
		spaceName:              sdkmodel.ClonePtr(r.spaceName),
		projectName:            sdkmodel.ClonePtr(r.projectName),
		filters:                r.Filters().Slice(),
		nextToken:              sdkmodel.ClonePtr(r.nextToken),
		maxResults:             sdkmodel.ClonePtr(r.maxResults),
	}
}

type ListDevEnvironmentsRequestBuilder struct {
	sdkmodel.RequestEnvelopeBuilder
	spaceName   *string
	projectName *string
	filters     []*Filter
	nextToken   *string
	maxResults  *int32
}

var _ sdkmodel.Builder[*ListDevEnvironmentsRequest] = (*ListDevEnvironmentsRequestBuilder)(nil)

func NewListDevEnvironmentsRequestBuilder() *ListDevEnvironmentsRequestBuilder {
	return &ListDevEnvironmentsRequestBuilder{}
}

func (b *ListDevEnvironmentsRequestBuilder) SpaceName(v *string) *ListDevEnvironmentsRequestBuilder {
	b.spaceName = v
	return b
}

func (b *ListDevEnvironmentsRequestBuilder) ProjectName(v *string) *ListDevEnvironmentsRequestBuilder {
	b.projectName = v
	return b
}

func (b *ListDevEnvironmentsRequestBuilder) Filters(v []*Filter) *ListDevEnvironmentsRequestBuilder {
	b.filters = v
	return b
}

func (b *ListDevEnvironmentsRequestBuilder) FilterBuilders(v []*FilterBuilder) *ListDevEnvironmentsRequestBuilder {
	b.filters = filterListCopier.CopyFromBuilder(v).Slice()
	return b
}

func (b *ListDevEnvironmentsRequestBuilder) NextToken(v *string) *ListDevEnvironmentsRequestBuilder {
	b.nextToken = v
	return b
}

func (b *ListDevEnvironmentsRequestBuilder) MaxResults(v *int32) *ListDevEnvironmentsRequestBuilder {
	b.maxResults = v
	return b
}

func (b *ListDevEnvironmentsRequestBuilder) OverrideConfiguration(c *sdkmodel.OverrideConfiguration) *ListDevEnvironmentsRequestBuilder {
	b.SetOverrideConfiguration(c)
	return b
}

func (b *ListDevEnvironmentsRequestBuilder) Schema() sdkmodel.SchemaInfo {
	return listDevEnvironmentsRequestSchema
}
func (b *ListDevEnvironmentsRequestBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *ListDevEnvironmentsRequestBuilder) Build() *ListDevEnvironmentsRequest {
	return &ListDevEnvironmentsRequest{
		RequestEnvelope: b.BuildEnvelope(),
		spaceName:       sdkmodel.ClonePtr(b.spaceName),
		projectName:     sdkmodel.ClonePtr(b.projectName),
		filters:         filterListCopier.Copy(b.filters),
		nextToken:       sdkmodel.ClonePtr(b.nextToken),
		maxResults:      sdkmodel.ClonePtr(b.maxResults),
	}
}

// ListDevEnvironmentsResponse is one page of dev environments.
type ListDevEnvironmentsResponse struct {
	sdkmodel.ResponseEnvelope
	items     sdkmodel.List[*DevEnvironmentSummary]
	nextToken *string
}

var listDevEnvironmentsResponseSchema = sdkmodel.MustSchema("ListDevEnvironmentsResponse", sdkmodel.KindResponse,
	sdkmodel.ListField("items",
		func(r *ListDevEnvironmentsResponse) sdkmodel.List[*DevEnvironmentSummary] { return r.items },
		(*ListDevEnvironmentsResponseBuilder).Items,
		sdkmodel.Payload("items"), sdkmodel.ListOfStructures(newDevEnvironmentSummaryBuilder)),
	sdkmodel.StringField("nextToken",
		func(r *ListDevEnvironmentsResponse) *string { return r.nextToken },
		(*ListDevEnvironmentsResponseBuilder).NextToken,
		sdkmodel.Payload("nextToken")),
)

func newDevEnvironmentSummaryBuilder() sdkmodel.AnyBuilder { return NewDevEnvironmentSummaryBuilder() }

func (r *ListDevEnvironmentsResponse) Items() sdkmodel.List[*DevEnvironmentSummary] {
	if r == nil || r.items == nil {
		return sdkmodel.AutoConstructList[*DevEnvironmentSummary]()
	}
	return r.items
}

func (r *ListDevEnvironmentsResponse) HasItems() bool {
	return r != nil && r.items != nil && !r.items.AutoConstruct()
}

// NextToken is nil on the last page.
func (r *ListDevEnvironmentsResponse) NextToken() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.nextToken)
}

func (r *ListDevEnvironmentsResponse) Schema() sdkmodel.SchemaInfo {
	return listDevEnvironmentsResponseSchema
}
func (r *ListDevEnvironmentsResponse) Equal(other any) bool {
	return listDevEnvironmentsResponseSchema.Equal(r, other)
}
func (r *ListDevEnvironmentsResponse) HashCode() uint64 {
	return listDevEnvironmentsResponseSchema.Hash(r)
}
func (r *ListDevEnvironmentsResponse) String() string {
	return listDevEnvironmentsResponseSchema.String(r)
}

func (r *ListDevEnvironmentsResponse) ToBuilder() *ListDevEnvironmentsResponseBuilder {
	if r == nil {
		return NewListDevEnvironmentsResponseBuilder()
	}
	return &ListDevEnvironmentsResponseBuilder{
		ResponseEnvelopeBuilder: r.EnvelopeBuilder(),
		items:                   r.Items().Slice(),
		nextToken:               sdkmodel.ClonePtr(r.nextToken),
	}
}

type ListDevEnvironmentsResponseBuilder struct {
	sdkmodel.ResponseEnvelopeBuilder
	items     []*DevEnvironmentSummary
	nextToken *string
}

var _ sdkmodel.Builder[*ListDevEnvironmentsResponse] = (*ListDevEnvironmentsResponseBuilder)(nil)

func NewListDevEnvironmentsResponseBuilder() *ListDevEnvironmentsResponseBuilder {
	return &ListDevEnvironmentsResponseBuilder{}
}

func (b *ListDevEnvironmentsResponseBuilder) Items(v []*DevEnvironmentSummary) *ListDevEnvironmentsResponseBuilder {
	b.items = v
	return b
}

func (b *ListDevEnvironmentsResponseBuilder) ItemBuilders(v []*DevEnvironmentSummaryBuilder) *ListDevEnvironmentsResponseBuilder {
	b.items = devEnvironmentSummaryListCopier.CopyFromBuilder(v).Slice()
	return b
}

func (b *ListDevEnvironmentsResponseBuilder) NextToken(v *string) *ListDevEnvironmentsResponseBuilder {
	b.nextToken = v
	return b
}

func (b *ListDevEnvironmentsResponseBuilder) Schema() sdkmodel.SchemaInfo {
	return listDevEnvironmentsResponseSchema
}
func (b *ListDevEnvironmentsResponseBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *ListDevEnvironmentsResponseBuilder) Build() *ListDevEnvironmentsResponse {
	return &ListDevEnvironmentsResponse{
		ResponseEnvelope: b.BuildEnvelope(),
		items:            devEnvironmentSummaryListCopier.Copy(b.items),
		nextToken:        sdkmodel.ClonePtr(b.nextToken),
	}
}
