package acm

import (
	"time"

	"github.com/reoring/sdkmodel"
)

type GetCertificateRequest struct {
	sdkmodel.RequestEnvelope
	certificateArn *string
}

var getCertificateRequestSchema = sdkmodel.MustSchema("GetCertificateRequest", sdkmodel.KindRequest,
	sdkmodel.StringField("certificateArn",
		func(r *GetCertificateRequest) *string { return r.certificateArn },
		(*GetCertificateRequestBuilder).CertificateArn,
		sdkmodel.Path("certificateArn")),
)

func (r *GetCertificateRequest) CertificateArn() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.certificateArn)
}

func (r *GetCertificateRequest) Schema() sdkmodel.SchemaInfo { return getCertificateRequestSchema }
func (r *GetCertificateRequest) Equal(other any) bool        { return getCertificateRequestSchema.Equal(r, other) }
func (r *GetCertificateRequest) HashCode() uint64            { return getCertificateRequestSchema.Hash(r) }
func (r *GetCertificateRequest) String() string              { return getCertificateRequestSchema.String(r) }

func (r *GetCertificateRequest) ToBuilder() *GetCertificateRequestBuilder {
	if r == nil {
		return NewGetCertificateRequestBuilder()
	}
	return &GetCertificateRequestBuilder{
		RequestEnvelopeBuilder: r.EnvelopeBuilder(),
		certificateArn:         sdkmodel.ClonePtr(r.certificateArn),
	}
}

type GetCertificateRequestBuilder struct {
	sdkmodel.RequestEnvelopeBuilder
	certificateArn *string
}

var _ sdkmodel.Builder[*GetCertificateRequest] = (*GetCertificateRequestBuilder)(nil)

func NewGetCertificateRequestBuilder() *GetCertificateRequestBuilder {
	return &GetCertificateRequestBuilder{}
}

func (b *GetCertificateRequestBuilder) CertificateArn(v *string) *GetCertificateRequestBuilder {
	b.certificateArn = v
	return b
}

func (b *GetCertificateRequestBuilder) OverrideConfiguration(c *sdkmodel.OverrideConfiguration) *GetCertificateRequestBuilder {
	b.SetOverrideConfiguration(c)
	return b
}

func (b *GetCertificateRequestBuilder) Schema() sdkmodel.SchemaInfo  { return getCertificateRequestSchema }
func (b *GetCertificateRequestBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *GetCertificateRequestBuilder) Build() *GetCertificateRequest {
	return &GetCertificateRequest{
		RequestEnvelope: b.BuildEnvelope(),
		certificateArn:  sdkmodel.ClonePtr(b.certificateArn),
	}
}

// GetCertificateResponse carries the PEM-encoded certificate and chain.
// Expires and the X-Amz-Meta- headers come from the response headers.
type GetCertificateResponse struct {
	sdkmodel.ResponseEnvelope
	certificate      *string
	certificateChain *string
	expires          *time.Time
	metadata         sdkmodel.Map[string, string]
}

var getCertificateResponseSchema = sdkmodel.MustSchema("GetCertificateResponse", sdkmodel.KindResponse,
	sdkmodel.StringField("certificate",
		func(r *GetCertificateResponse) *string { return r.certificate },
		(*GetCertificateResponseBuilder).Certificate,
		sdkmodel.Payload("Certificate")),
	sdkmodel.StringField("certificateChain",
		func(r *GetCertificateResponse) *string { return r.certificateChain },
		(*GetCertificateResponseBuilder).CertificateChain,
		sdkmodel.Payload("CertificateChain")),
	sdkmodel.InstantField("expires",
		func(r *GetCertificateResponse) *time.Time { return r.expires },
		(*GetCertificateResponseBuilder).Expires,
		sdkmodel.Header("Expires")),
	sdkmodel.MapField("metadata",
		func(r *GetCertificateResponse) sdkmodel.Map[string, string] { return r.metadata },
		(*GetCertificateResponseBuilder).Metadata,
		sdkmodel.Header("X-Amz-Meta-"), sdkmodel.MapOfValues(sdkmodel.MarshallingString)),
)

func (r *GetCertificateResponse) Certificate() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.certificate)
}

func (r *GetCertificateResponse) CertificateChain() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.certificateChain)
}

func (r *GetCertificateResponse) Expires() *time.Time {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.expires)
}

// Metadata is keyed by the lower-cased header suffix.
func (r *GetCertificateResponse) Metadata() sdkmodel.Map[string, string] {
	if r == nil || r.metadata == nil {
		return sdkmodel.AutoConstructMap[string, string]()
	}
	return r.metadata
}

func (r *GetCertificateResponse) HasMetadata() bool {
	return r != nil && r.metadata != nil && !r.metadata.AutoConstruct()
}

func (r *GetCertificateResponse) Schema() sdkmodel.SchemaInfo { return getCertificateResponseSchema }
func (r *GetCertificateResponse) Equal(other any) bool {
	return getCertificateResponseSchema.Equal(r, other)
}
func (r *GetCertificateResponse) HashCode() uint64 { return getCertificateResponseSchema.Hash(r) }
func (r *GetCertificateResponse) String() string   { return getCertificateResponseSchema.String(r) }

func (r *GetCertificateResponse) ToBuilder() *GetCertificateResponseBuilder {
	if r == nil {
		return NewGetCertificateResponseBuilder()
	}
	return &GetCertificateResponseBuilder{
		ResponseEnvelopeBuilder: r.EnvelopeBuilder(),
		certificate:             sdkmodel.ClonePtr(r.certificate),
		certificateChain:        sdkmodel.ClonePtr(r.certificateChain),
		expires:                 sdkmodel.ClonePtr(r.expires),
		metadata:                r.Metadata().Clone(),
	}
}

type GetCertificateResponseBuilder struct {
	sdkmodel.ResponseEnvelopeBuilder
	certificate      *string
	certificateChain *string
	expires          *time.Time
	metadata         map[string]string
}

var _ sdkmodel.Builder[*GetCertificateResponse] = (*GetCertificateResponseBuilder)(nil)

func NewGetCertificateResponseBuilder() *GetCertificateResponseBuilder {
	return &GetCertificateResponseBuilder{}
}

func (b *GetCertificateResponseBuilder) Certificate(v *string) *GetCertificateResponseBuilder {
	b.certificate = v
	return b
}

func (b *GetCertificateResponseBuilder) CertificateChain(v *string) *GetCertificateResponseBuilder {
	b.certificateChain = v
	return b
}

func (b *GetCertificateResponseBuilder) Expires(v *time.Time) *GetCertificateResponseBuilder {
	b.expires = v
	return b
}

func (b *GetCertificateResponseBuilder) Metadata(v map[string]string) *GetCertificateResponseBuilder {
	b.metadata = v
	return b
}

func (b *GetCertificateResponseBuilder) Schema() sdkmodel.SchemaInfo {
	return getCertificateResponseSchema
}
func (b *GetCertificateResponseBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *GetCertificateResponseBuilder) Build() *GetCertificateResponse {
	return &GetCertificateResponse{
		ResponseEnvelope: b.BuildEnvelope(),
		certificate:      sdkmodel.ClonePtr(b.certificate),
		certificateChain: sdkmodel.ClonePtr(b.certificateChain),
		expires:          sdkmodel.ClonePtr(b.expires),
		metadata:         sdkmodel.CopyMap(b.metadata),
	}
}
