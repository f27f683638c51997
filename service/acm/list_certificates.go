package acm

import "github.com/reoring/sdkmodel"

// ListCertificatesRequest pages through the certificates of the account.
type ListCertificatesRequest struct {
	sdkmodel.RequestEnvelope
	certificateStatuses sdkmodel.List[string]
	includes            *Filters
	nextToken           *string
	maxItems            *int32
	sortBy              *string
	sortOrder           *string
}

var listCertificatesRequestSchema = sdkmodel.MustSchema("ListCertificatesRequest", sdkmodel.KindRequest,
	sdkmodel.ListField("certificateStatuses",
		func(r *ListCertificatesRequest) sdkmodel.List[string] { return r.certificateStatuses },
		(*ListCertificatesRequestBuilder).CertificateStatusesRaw,
		sdkmodel.Payload("CertificateStatuses"), sdkmodel.ListOfMembers(sdkmodel.MarshallingString)),
	sdkmodel.StructureField("includes",
		func(r *ListCertificatesRequest) *Filters { return r.includes },
		(*ListCertificatesRequestBuilder).Includes,
		newFiltersBuilder,
		sdkmodel.Payload("Includes")),
	sdkmodel.StringField("nextToken",
		func(r *ListCertificatesRequest) *string { return r.nextToken },
		(*ListCertificatesRequestBuilder).NextToken,
		sdkmodel.Payload("NextToken")),
	sdkmodel.IntegerField("maxItems",
		func(r *ListCertificatesRequest) *int32 { return r.maxItems },
		(*ListCertificatesRequestBuilder).MaxItems,
		sdkmodel.Payload("MaxItems")),
	sdkmodel.StringField("sortBy",
		func(r *ListCertificatesRequest) *string { return r.sortBy },
		(*ListCertificatesRequestBuilder).SortByRaw,
		sdkmodel.Payload("SortBy")),
	sdkmodel.StringField("sortOrder",
		func(r *ListCertificatesRequest) *string { return r.sortOrder },
		(*ListCertificatesRequestBuilder).SortOrderRaw,
		sdkmodel.Payload("SortOrder")),
)

// CertificateStatuses resolves each wire value. Unknown ones become
// CertificateStatusUnknownToSDKVersion.
func (r *ListCertificatesRequest) CertificateStatuses() sdkmodel.List[CertificateStatus] {
	if r == nil {
		return sdkmodel.AutoConstructList[CertificateStatus]()
	}
	return sdkmodel.EnumsOf(r.certificateStatuses, certificateStatuses)
}

func (r *ListCertificatesRequest) CertificateStatusesAsStrings() sdkmodel.List[string] {
	if r == nil {
		return sdkmodel.AutoConstructList[string]()
	}
	return stringsOrSentinel(r.certificateStatuses)
}

func (r *ListCertificatesRequest) HasCertificateStatuses() bool {
	return r != nil && isSet(r.certificateStatuses)
}

// Includes holds the key filters, or nil.
func (r *ListCertificatesRequest) Includes() *Filters {
	if r == nil {
		return nil
	}
	return r.includes
}

func (r *ListCertificatesRequest) NextToken() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.nextToken)
}

func (r *ListCertificatesRequest) MaxItems() *int32 {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.maxItems)
}

func (r *ListCertificatesRequest) SortBy() *SortBy {
	if r == nil {
		return nil
	}
	return SortByFromValue(r.sortBy)
}

func (r *ListCertificatesRequest) SortByAsString() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.sortBy)
}

func (r *ListCertificatesRequest) SortOrder() *SortOrder {
	if r == nil {
		return nil
	}
	return SortOrderFromValue(r.sortOrder)
}

func (r *ListCertificatesRequest) SortOrderAsString() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.sortOrder)
}

func (r *ListCertificatesRequest) Schema() sdkmodel.SchemaInfo { return listCertificatesRequestSchema }
func (r *ListCertificatesRequest) Equal(other any) bool {
	return listCertificatesRequestSchema.Equal(r, other)
}
func (r *ListCertificatesRequest) HashCode() uint64 { return listCertificatesRequestSchema.Hash(r) }
func (r *ListCertificatesRequest) String() string   { return listCertificatesRequestSchema.String(r) }

func (r *ListCertificatesRequest) ToBuilder() *ListCertificatesRequestBuilder {
	if r == nil {
		return NewListCertificatesRequestBuilder()
	}
	return &ListCertificatesRequestBuilder{
		RequestEnvelopeBuilder: r.EnvelopeBuilder(),
		certificateStatuses:    r.CertificateStatusesAsStrings().Slice(),
		includes:               r.includes,
		nextToken:              sdkmodel.ClonePtr(r.nextToken),
		maxItems:               sdkmodel.ClonePtr(r.maxItems),
		sortBy:                 sdkmodel.ClonePtr(r.sortBy),
		sortOrder:              sdkmodel.ClonePtr(r.sortOrder),
	}
}

type ListCertificatesRequestBuilder struct {
	sdkmodel.RequestEnvelopeBuilder
	certificateStatuses []string
	includes            *Filters
	nextToken           *string
	maxItems            *int32
	sortBy              *string
	sortOrder           *string
}

var _ sdkmodel.Builder[*ListCertificatesRequest] = (*ListCertificatesRequestBuilder)(nil)

func NewListCertificatesRequestBuilder() *ListCertificatesRequestBuilder {
	return &ListCertificatesRequestBuilder{}
}

// CertificateStatuses stores the wire value of each status. A nil slice
// leaves the member unset.
func (b *ListCertificatesRequestBuilder) CertificateStatuses(v []CertificateStatus) *ListCertificatesRequestBuilder {
	b.certificateStatuses = sdkmodel.CopyEnumsToStrings(v).Slice()
	return b
}

func (b *ListCertificatesRequestBuilder) CertificateStatusesRaw(v []string) *ListCertificatesRequestBuilder {
	b.certificateStatuses = v
	return b
}

func (b *ListCertificatesRequestBuilder) Includes(v *Filters) *ListCertificatesRequestBuilder {
	b.includes = v
	return b
}

// IncludesWith builds the filters in place.
func (b *ListCertificatesRequestBuilder) IncludesWith(fn func(*FiltersBuilder)) *ListCertificatesRequestBuilder {
	fb := b.includes.ToBuilder()
	fn(fb)
	b.includes = fb.Build()
	return b
}

func (b *ListCertificatesRequestBuilder) NextToken(v *string) *ListCertificatesRequestBuilder {
	b.nextToken = v
	return b
}

func (b *ListCertificatesRequestBuilder) MaxItems(v *int32) *ListCertificatesRequestBuilder {
	b.maxItems = v
	return b
}

// SortBy stores the wire value of v. The unknown variant clears the field.
func (b *ListCertificatesRequestBuilder) SortBy(v SortBy) *ListCertificatesRequestBuilder {
	b.sortBy = enumPtr(v)
	return b
}

func (b *ListCertificatesRequestBuilder) SortByRaw(v *string) *ListCertificatesRequestBuilder {
	b.sortBy = v
	return b
}

func (b *ListCertificatesRequestBuilder) SortOrder(v SortOrder) *ListCertificatesRequestBuilder {
	b.sortOrder = enumPtr(v)
	return b
}

func (b *ListCertificatesRequestBuilder) SortOrderRaw(v *string) *ListCertificatesRequestBuilder {
	b.sortOrder = v
	return b
}

func (b *ListCertificatesRequestBuilder) OverrideConfiguration(c *sdkmodel.OverrideConfiguration) *ListCertificatesRequestBuilder {
	b.SetOverrideConfiguration(c)
	return b
}

func (b *ListCertificatesRequestBuilder) Schema() sdkmodel.SchemaInfo {
	return listCertificatesRequestSchema
}
func (b *ListCertificatesRequestBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *ListCertificatesRequestBuilder) Build() *ListCertificatesRequest {
	return &ListCertificatesRequest{
		RequestEnvelope:     b.BuildEnvelope(),
		certificateStatuses: sdkmodel.CopyList(b.certificateStatuses),
		includes:            b.includes,
		nextToken:           sdkmodel.ClonePtr(b.nextToken),
		maxItems:            sdkmodel.ClonePtr(b.maxItems),
		sortBy:              sdkmodel.ClonePtr(b.sortBy),
		sortOrder:           sdkmodel.ClonePtr(b.sortOrder),
	}
}

// ListCertificatesResponse is one page of certificate summaries.
type ListCertificatesResponse struct {
	sdkmodel.ResponseEnvelope
	nextToken              *string
	certificateSummaryList sdkmodel.List[*CertificateSummary]
}

var listCertificatesResponseSchema = sdkmodel.MustSchema("ListCertificatesResponse", sdkmodel.KindResponse,
	sdkmodel.StringField("nextToken",
		func(r *ListCertificatesResponse) *string { return r.nextToken },
		(*ListCertificatesResponseBuilder).NextToken,
		sdkmodel.Payload("NextToken")),
	sdkmodel.ListField("certificateSummaryList",
		func(r *ListCertificatesResponse) sdkmodel.List[*CertificateSummary] { return r.certificateSummaryList },
		(*ListCertificatesResponseBuilder).CertificateSummaryList,
		sdkmodel.Payload("CertificateSummaryList"), sdkmodel.ListOfStructures(newCertificateSummaryBuilder)),
)

func (r *ListCertificatesResponse) NextToken() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.nextToken)
}

func (r *ListCertificatesResponse) CertificateSummaryList() sdkmodel.List[*CertificateSummary] {
	if r == nil || r.certificateSummaryList == nil {
		return sdkmodel.AutoConstructList[*CertificateSummary]()
	}
	return r.certificateSummaryList
}

func (r *ListCertificatesResponse) HasCertificateSummaryList() bool {
	return r != nil && r.certificateSummaryList != nil && !r.certificateSummaryList.AutoConstruct()
}

func (r *ListCertificatesResponse) Schema() sdkmodel.SchemaInfo {
	return listCertificatesResponseSchema
}
func (r *ListCertificatesResponse) Equal(other any) bool {
	return listCertificatesResponseSchema.Equal(r, other)
}
func (r *ListCertificatesResponse) HashCode() uint64 { return listCertificatesResponseSchema.Hash(r) }
func (r *ListCertificatesResponse) String() string   { return listCertificatesResponseSchema.String(r) }

func (r *ListCertificatesResponse) ToBuilder() *ListCertificatesResponseBuilder {
	if r == nil {
		return NewListCertificatesResponseBuilder()
	}
	return &ListCertificatesResponseBuilder{
		ResponseEnvelopeBuilder: r.EnvelopeBuilder(),
		nextToken:               sdkmodel.ClonePtr(r.nextToken),
		certificateSummaryList:  r.CertificateSummaryList().Slice(),
	}
}

type ListCertificatesResponseBuilder struct {
	sdkmodel.ResponseEnvelopeBuilder
	nextToken              *string
	certificateSummaryList []*CertificateSummary
}

var _ sdkmodel.Builder[*ListCertificatesResponse] = (*ListCertificatesResponseBuilder)(nil)

func NewListCertificatesResponseBuilder() *ListCertificatesResponseBuilder {
	return &ListCertificatesResponseBuilder{}
}

func (b *ListCertificatesResponseBuilder) NextToken(v *string) *ListCertificatesResponseBuilder {
	b.nextToken = v
	return b
}

func (b *ListCertificatesResponseBuilder) CertificateSummaryList(v []*CertificateSummary) *ListCertificatesResponseBuilder {
	b.certificateSummaryList = v
	return b
}

func (b *ListCertificatesResponseBuilder) CertificateSummaryBuilders(v []*CertificateSummaryBuilder) *ListCertificatesResponseBuilder {
	b.certificateSummaryList = certificateSummaryListCopier.CopyFromBuilder(v).Slice()
	return b
}

func (b *ListCertificatesResponseBuilder) Schema() sdkmodel.SchemaInfo {
	return listCertificatesResponseSchema
}
func (b *ListCertificatesResponseBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *ListCertificatesResponseBuilder) Build() *ListCertificatesResponse {
	return &ListCertificatesResponse{
		ResponseEnvelope:       b.BuildEnvelope(),
		nextToken:              sdkmodel.ClonePtr(b.nextToken),
		certificateSummaryList: certificateSummaryListCopier.Copy(b.certificateSummaryList),
	}
}
