package codecatalyst

import (
	"time"

	"github.com/reoring/sdkmodel"
)

// CreateAccessTokenRequest creates a personal access token for the calling user.
type CreateAccessTokenRequest struct {
	sdkmodel.RequestEnvelope
	name        *string
	expiresTime *time.Time
}

var createAccessTokenRequestSchema = sdkmodel.MustSchema("CreateAccessTokenRequest", sdkmodel.KindRequest,
	sdkmodel.StringField("name",
		func(r *CreateAccessTokenRequest) *string { return r.name },
		(*CreateAccessTokenRequestBuilder).Name,
		sdkmodel.Payload("name")),
	sdkmodel.InstantField("expiresTime",
		func(r *CreateAccessTokenRequest) *time.Time { return r.expiresTime },
		(*CreateAccessTokenRequestBuilder).ExpiresTime,
		sdkmodel.Payload("expiresTime"), sdkmodel.Format(sdkmodel.ISO8601)),
)

// Name is the friendly name of the token.
func (r *CreateAccessTokenRequest) Name() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.name)
}

// ExpiresTime is when the token stops working.
func (r *CreateAccessTokenRequest) ExpiresTime() *time.Time {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.expiresTime)
}

func (r *CreateAccessTokenRequest) Schema() sdkmodel.SchemaInfo { return createAccessTokenRequestSchema }
func (r *CreateAccessTokenRequest) Equal(other any) bool {
	return createAccessTokenRequestSchema.Equal(r, other)
}
func (r *CreateAccessTokenRequest) HashCode() uint64 { return createAccessTokenRequestSchema.Hash(r) }
func (r *CreateAccessTokenRequest) String() string   { return createAccessTokenRequestSchema.String(r) }

func (r *CreateAccessTokenRequest) ToBuilder() *CreateAccessTokenRequestBuilder {
	if r == nil {
		return NewCreateAccessTokenRequestBuilder()
	}
	return &CreateAccessTokenRequestBuilder{
		RequestEnvelopeBuilder: r.EnvelopeBuilder(),
		name:                   sdkmodel.ClonePtr(r.name),
		expiresTime:            sdkmodel.ClonePtr(r.expiresTime),
	}
}

type CreateAccessTokenRequestBuilder struct {
	sdkmodel.RequestEnvelopeBuilder
	name        *string
	expiresTime *time.Time
}

var _ sdkmodel.Builder[*CreateAccessTokenRequest] = (*CreateAccessTokenRequestBuilder)(nil)

func NewCreateAccessTokenRequestBuilder() *CreateAccessTokenRequestBuilder {
	return &CreateAccessTokenRequestBuilder{}
}

func (b *CreateAccessTokenRequestBuilder) Name(v *string) *CreateAccessTokenRequestBuilder {
	b.name = v
	return b
}

func (b *CreateAccessTokenRequestBuilder) ExpiresTime(v *time.Time) *CreateAccessTokenRequestBuilder {
	b.expiresTime = v
	return b
}

func (b *CreateAccessTokenRequestBuilder) OverrideConfiguration(c *sdkmodel.OverrideConfiguration) *CreateAccessTokenRequestBuilder {
	b.SetOverrideConfiguration(c)
	return b
}

func (b *CreateAccessTokenRequestBuilder) Schema() sdkmodel.SchemaInfo {
	return createAccessTokenRequestSchema
}
func (b *CreateAccessTokenRequestBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *CreateAccessTokenRequestBuilder) Build() *CreateAccessTokenRequest {
	return &CreateAccessTokenRequest{
		RequestEnvelope: b.BuildEnvelope(),
		name:            sdkmodel.ClonePtr(b.name),
		expiresTime:     sdkmodel.ClonePtr(b.expiresTime),
	}
}
