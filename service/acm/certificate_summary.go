package acm

import (
	"time"

	"github.com/reoring/sdkmodel"
)

// CertificateSummary is the listing view of a certificate.
type CertificateSummary struct {
	certificateArn          *string
	domainName              *string
	subjectAlternativeNames sdkmodel.List[string]
	status                  *string
	inUse                   *bool
	notAfter                *time.Time
}

var certificateSummarySchema = sdkmodel.MustSchema("CertificateSummary", sdkmodel.KindStructure,
	sdkmodel.StringField("certificateArn",
		func(r *CertificateSummary) *string { return r.certificateArn },
		(*CertificateSummaryBuilder).CertificateArn,
		sdkmodel.Payload("CertificateArn")),
	sdkmodel.StringField("domainName",
		func(r *CertificateSummary) *string { return r.domainName },
		(*CertificateSummaryBuilder).DomainName,
		sdkmodel.Payload("DomainName")),
	sdkmodel.ListField("subjectAlternativeNames",
		func(r *CertificateSummary) sdkmodel.List[string] { return r.subjectAlternativeNames },
		(*CertificateSummaryBuilder).SubjectAlternativeNames,
		sdkmodel.Payload("SubjectAlternativeNameSummaries"), sdkmodel.ListOfMembers(sdkmodel.MarshallingString)),
	sdkmodel.StringField("status",
		func(r *CertificateSummary) *string { return r.status },
		(*CertificateSummaryBuilder).StatusRaw,
		sdkmodel.Payload("Status")),
	sdkmodel.BooleanField("inUse",
		func(r *CertificateSummary) *bool { return r.inUse },
		(*CertificateSummaryBuilder).InUse,
		sdkmodel.Payload("InUse")),
	sdkmodel.InstantField("notAfter",
		func(r *CertificateSummary) *time.Time { return r.notAfter },
		(*CertificateSummaryBuilder).NotAfter,
		sdkmodel.Payload("NotAfter")),
)

func (r *CertificateSummary) CertificateArn() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.certificateArn)
}

func (r *CertificateSummary) DomainName() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.domainName)
}

func (r *CertificateSummary) SubjectAlternativeNames() sdkmodel.List[string] {
	if r == nil || r.subjectAlternativeNames == nil {
		return sdkmodel.AutoConstructList[string]()
	}
	return r.subjectAlternativeNames
}

func (r *CertificateSummary) HasSubjectAlternativeNames() bool {
	return r != nil && r.subjectAlternativeNames != nil && !r.subjectAlternativeNames.AutoConstruct()
}

// Status resolves the wire value; values this version does not know map to
// CertificateStatusUnknownToSDKVersion.
func (r *CertificateSummary) Status() *CertificateStatus {
	if r == nil {
		return nil
	}
	return CertificateStatusFromValue(r.status)
}

func (r *CertificateSummary) StatusAsString() *string {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.status)
}

func (r *CertificateSummary) InUse() *bool {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.inUse)
}

func (r *CertificateSummary) NotAfter() *time.Time {
	if r == nil {
		return nil
	}
	return sdkmodel.ClonePtr(r.notAfter)
}

func (r *CertificateSummary) Schema() sdkmodel.SchemaInfo { return certificateSummarySchema }
func (r *CertificateSummary) Equal(other any) bool        { return certificateSummarySchema.Equal(r, other) }
func (r *CertificateSummary) HashCode() uint64            { return certificateSummarySchema.Hash(r) }
func (r *CertificateSummary) String() string              { return certificateSummarySchema.String(r) }

func (r *CertificateSummary) ToBuilder() *CertificateSummaryBuilder {
	if r == nil {
		return NewCertificateSummaryBuilder()
	}
	return &CertificateSummaryBuilder{
		certificateArn:          sdkmodel.ClonePtr(r.certificateArn),
		domainName:              sdkmodel.ClonePtr(r.domainName),
		subjectAlternativeNames: r.SubjectAlternativeNames().Slice(),
		status:                  sdkmodel.ClonePtr(r.status),
		inUse:                   sdkmodel.ClonePtr(r.inUse),
		notAfter:                sdkmodel.ClonePtr(r.notAfter),
	}
}

type CertificateSummaryBuilder struct {
	certificateArn          *string
	domainName              *string
	subjectAlternativeNames []string
	status                  *string
	inUse                   *bool
	notAfter                *time.Time
}

var _ sdkmodel.Builder[*CertificateSummary] = (*CertificateSummaryBuilder)(nil)

func NewCertificateSummaryBuilder() *CertificateSummaryBuilder { return &CertificateSummaryBuilder{} }

func (b *CertificateSummaryBuilder) CertificateArn(v *string) *CertificateSummaryBuilder {
	b.certificateArn = v
	return b
}

func (b *CertificateSummaryBuilder) DomainName(v *string) *CertificateSummaryBuilder {
	b.domainName = v
	return b
}

func (b *CertificateSummaryBuilder) SubjectAlternativeNames(v []string) *CertificateSummaryBuilder {
	b.subjectAlternativeNames = v
	return b
}

// Status stores the wire value of v. The unknown variant clears the field.
func (b *CertificateSummaryBuilder) Status(v CertificateStatus) *CertificateSummaryBuilder {
	b.status = enumPtr(v)
	return b
}

func (b *CertificateSummaryBuilder) StatusRaw(v *string) *CertificateSummaryBuilder {
	b.status = v
	return b
}

func (b *CertificateSummaryBuilder) InUse(v *bool) *CertificateSummaryBuilder {
	b.inUse = v
	return b
}

func (b *CertificateSummaryBuilder) NotAfter(v *time.Time) *CertificateSummaryBuilder {
	b.notAfter = v
	return b
}

func (b *CertificateSummaryBuilder) Schema() sdkmodel.SchemaInfo  { return certificateSummarySchema }
func (b *CertificateSummaryBuilder) BuildObject() sdkmodel.Object { return b.Build() }

func (b *CertificateSummaryBuilder) Build() *CertificateSummary {
	return &CertificateSummary{
		certificateArn:          sdkmodel.ClonePtr(b.certificateArn),
		domainName:              sdkmodel.ClonePtr(b.domainName),
		subjectAlternativeNames: sdkmodel.CopyList(b.subjectAlternativeNames),
		status:                  sdkmodel.ClonePtr(b.status),
		inUse:                   sdkmodel.ClonePtr(b.inUse),
		notAfter:                sdkmodel.ClonePtr(b.notAfter),
	}
}

func newCertificateSummaryBuilder() sdkmodel.AnyBuilder { return NewCertificateSummaryBuilder() }

var certificateSummaryListCopier = sdkmodel.StructListCopier[CertificateSummary, CertificateSummaryBuilder]{
	Build:     (*CertificateSummaryBuilder).Build,
	ToBuilder: (*CertificateSummary).ToBuilder,
}
