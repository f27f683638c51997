package acm

import "github.com/reoring/sdkmodel"

// ImportCertificateRequest imports a certificate and its private key, or
// reimports over an existing ARN.
type ImportCertificateRequest struct {
	sdkmodel.RequestEnvelope
	certificateArn   *string
	certificate      []byte
	privateKey       []byte
	certificateChain []byte
	tags             sdkmodel.List[*Tag]
}

var importCertificateRequestSchema = sdkmodel.MustSchema("ImportCertificateRequest", sdkmodel.KindRequest,
	sdkmodel.StringField("certificateArn",
		func(r *ImportCertificateRequest) *string { return r.certificateArn },
		(*ImportCertificateRequestBuilder).CertificateArn,
		sdkmodel.Payload("CertificateArn")),
	sdkmodel.BytesField("certificate",
		func(r *ImportCertificateRequest) []byte { return r.certificate },
		(*ImportCertificateRequestBuilder).Certificate,
		sdkmodel.Payload("Certificate")),
	sdkmodel.BytesField("privateKey",
		func(r *ImportCertificateRequest) []byte { return r.privateKey },
		(*ImportCertificateRequestBuilder).PrivateKey,
		sdkmodel.Payload("PrivateKey"), sdkmodel.Sensitive()),
	sdkmodel.BytesField("certificateChain",
		func(r *ImportCertificateRequest) []byte { return r.certificateChain },
		(*ImportCertificateRequestBuilder).CertificateChain,
		sdkmodel.Payload("CertificateChain")),
	sdkmodel.ListField("tags",
		func(r *ImportCertificateRequest) sdkmodel.List[*Tag] { return r.tags },
		(*ImportCertificateRequestBuilder).Tags,
		sdkmodel.Payload("Tags"), sdkmodel.ListOfStructures(newTagBuilder)),
)

func (r *ImportCertificateRequest) CertificateArn() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.certificateArn)
}

// Certificate returns a copy of the PEM-encoded certificate.
func (r *ImportCertificateRequest) Certificate() []byte {
	if r == nil {
		return nil
	}
	return sdkmodel.CloneBytes(r.certificate)
}

// PrivateKey returns a copy of the PEM-encoded private key. It never appears
// in String.
func (r *ImportCertificateRequest) PrivateKey() []byte {
	if r == nil {
		return nil
	}
	return sdkmodel.CloneBytes(r.privateKey)
}

func (r *ImportCertificateRequest) CertificateChain() []byte {
	if r == nil {
		return nil
	}
	return sdkmodel.CloneBytes(r.certificateChain)
}

func (r *ImportCertificateRequest) Tags() sdkmodel.List[*Tag] {
	if r == nil || r.tags == nil {
		return sdkmodel.AutoConstructList[*Tag]()
	}
	return r.tags
}

func (r *ImportCertificateRequest) HasTags() bool {
	return r != nil && r.tags != nil && !r.tags.AutoConstruct()
}

func (r *ImportCertificateRequest) Schema() sdkmodel.SchemaInfo {
	return importCertificateRequestSchema
}
func (r *ImportCertificateRequest) Equal(other any) bool {
	return importCertificateRequestSchema.Equal(r, other)
}
func (r *ImportCertificateRequest) HashCode() uint64 { return importCertificateRequestSchema.Hash(r) }
func (r *ImportCertificateRequest) String() string   { return importCertificateRequestSchema.String(r) }

func (r *ImportCertificateRequest) ToBuilder() *ImportCertificateRequestBuilder {
	if r == nil {
		return NewImportCertificateRequestBuilder()
	}
	return &ImportCertificateRequestBuilder{
		RequestEnvelopeBuilder: r.EnvelopeBuilder(),
		certificateArn:         sdkmodel.ClonePtr(r.certificateArn),
		certificate:            sdkmodel.CloneBytes(r.certificate),
		privateKey:             sdkmodel.CloneBytes(r.privateKey),
		certificateChain:       sdkmodel.CloneBytes(r.certificateChain),
		tags:                   r.Tags().Slice(),
	}
}

type ImportCertificateRequestBuilder struct {
	sdkmodel.RequestEnvelopeBuilder
	certificateArn   *string
	certificate      []byte
	privateKey       []byte
	certificateChain []byte
	tags             []*Tag
}

var _ sdkmodel.Builder[*ImportCertificateRequest] = (*ImportCertificateRequestBuilder)(nil)

func NewImportCertificateRequestBuilder() *ImportCertificateRequestBuilder {
	return &ImportCertificateRequestBuilder{}
}

func (b *ImportCertificateRequestBuilder) CertificateArn(v *string) *ImportCertificateRequestBuilder {
	b.certificateArn = v
	return b
}

func (b *ImportCertificateRequestBuilder) Certificate(v []byte) *ImportCertificateRequestBuilder {
	b.certificate = v
	return b
}

func (b *ImportCertificateRequestBuilder) PrivateKey(v []byte) *ImportCertificateRequestBuilder {
	b.privateKey = v
	return b
}

func (b *ImportCertificateRequestBuilder) CertificateChain(v []byte) *ImportCertificateRequestBuilder {
	b.certificateChain = v
	return b
}

func (b *ImportCertificateRequestBuilder) Tags(v []*Tag) *ImportCertificateRequestBuilder {
	b.tags = v
	return b
}

func (b *ImportCertificateRequestBuilder) TagBuilders(v []*TagBuilder) *ImportCertificateRequestBuilder {
	b.tags = tagListCopier.CopyFromBuilder(v).Slice()
	return b
}

func (b *ImportCertificateRequestBuilder) OverrideConfiguration(c *sdkmodel.OverrideConfiguration) *ImportCertificateRequestBuilder {
	b.SetOverrideConfiguration(c)
	return b
}

func (b *ImportCertificateRequestBuilder) Schema() sdkmodel.SchemaInfo {
	return importCertificateRequestSchema
}
func (b *ImportCertificateRequestBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *ImportCertificateRequestBuilder) Build() *ImportCertificateRequest {
	return &ImportCertificateRequest{
		RequestEnvelope:  b.BuildEnvelope(),
		certificateArn:   sdkmodel.ClonePtr(b.certificateArn),
		certificate:      sdkmodel.CloneBytes(b.certificate),
		privateKey:       sdkmodel.CloneBytes(b.privateKey),
		certificateChain: sdkmodel.CloneBytes(b.certificateChain),
		tags:             tagListCopier.Copy(b.tags),
	}
}
