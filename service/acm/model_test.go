package acm

import (
	"strings"
	"testing"

	"github.com/aws/smithy-go/ptr"

	"github.com/reoring/sdkmodel"
)

func importReq() *ImportCertificateRequest {
	return NewImportCertificateRequestBuilder().
		Certificate([]byte("cert")).
		PrivateKey([]byte("secret-key")).
		TagBuilders([]*TagBuilder{NewTagBuilder().Key(ptr.String("env")).Value(ptr.String("prod"))}).
		Build()
}

func TestSensitiveFieldIsRedacted(t *testing.T) {
	s := importReq().String()
	if strings.Contains(s, "secret-key") || strings.Contains(s, "7365637265742d6b6579") {
		t.Fatalf("private key leaked: %s", s)
	}
	if !strings.Contains(s, "PrivateKey="+sdkmodel.Redacted) {
		t.Fatalf("redaction marker missing: %s", s)
	}
	if !strings.Contains(s, "Certificate=0x63657274") {
		t.Fatalf("certificate bytes: %s", s)
	}
	if !strings.Contains(s, "Tags=[Tag(Key=env, Value=prod)]") {
		t.Fatalf("tags: %s", s)
	}
	// Sensitive fields render as redacted even when absent.
	if s := NewImportCertificateRequestBuilder().Build().String(); s != "ImportCertificateRequest(PrivateKey="+sdkmodel.Redacted+")" {
		t.Fatalf("empty request: %s", s)
	}
}

func TestBytesAreCopied(t *testing.T) {
	key := []byte("secret-key")
	req := NewImportCertificateRequestBuilder().PrivateKey(key).Build()
	key[0] = 'X'
	if string(req.PrivateKey()) != "secret-key" {
		t.Fatalf("builder input aliased")
	}
	req.PrivateKey()[0] = 'Y'
	if string(req.PrivateKey()) != "secret-key" {
		t.Fatalf("accessor exposed internal bytes")
	}
	v, ok, err := sdkmodel.GetValueForField[[]byte](req, "privateKey")
	if err != nil || !ok || string(v) != "secret-key" {
		t.Fatalf("descriptor: %q ok=%v err=%v", v, ok, err)
	}
	if !req.Equal(req.ToBuilder().Build()) {
		t.Fatalf("bytes roundtrip")
	}
}

func TestEnumList(t *testing.T) {
	req := NewListCertificatesRequestBuilder().
		CertificateStatuses([]CertificateStatus{CertificateStatusIssued, CertificateStatusExpired}).
		Build()
	got := req.CertificateStatuses()
	if got.Len() != 2 || got.At(0) != CertificateStatusIssued || got.At(1) != CertificateStatusExpired {
		t.Fatalf("statuses: %v", got)
	}
	if s := req.CertificateStatusesAsStrings().At(1); s != "EXPIRED" {
		t.Fatalf("wire value: %s", s)
	}

	raw := NewListCertificatesRequestBuilder().CertificateStatusesRaw([]string{"ISSUED", "QUARANTINED"}).Build()
	if raw.CertificateStatuses().At(1) != CertificateStatusUnknownToSDKVersion {
		t.Fatalf("unknown status: %v", raw.CertificateStatuses())
	}
	if raw.CertificateStatusesAsStrings().At(1) != "QUARANTINED" {
		t.Fatalf("raw status lost")
	}

	unset := NewListCertificatesRequestBuilder().Build()
	if !sdkmodel.IsAutoConstruct(unset.CertificateStatuses()) || unset.HasCertificateStatuses() {
		t.Fatalf("unset enum list should be the sentinel")
	}
	empty := NewListCertificatesRequestBuilder().CertificateStatuses([]CertificateStatus{}).Build()
	if !empty.HasCertificateStatuses() || empty.Equal(unset) {
		t.Fatalf("explicit empty enum list")
	}
}

func TestMapFieldSentinel(t *testing.T) {
	unset := NewGetCertificateResponseBuilder().Build()
	if !unset.Metadata().AutoConstruct() || unset.Metadata().Len() != 0 || unset.HasMetadata() {
		t.Fatalf("unset map")
	}
	a := NewGetCertificateResponseBuilder().Metadata(map[string]string{"stage": "prod", "owner": "team-a"}).Build()
	b := NewGetCertificateResponseBuilder().Metadata(map[string]string{"owner": "team-a", "stage": "prod"}).Build()
	if !a.Equal(b) || a.HashCode() != b.HashCode() {
		t.Fatalf("maps built in different order differ")
	}
	if a.String() != "GetCertificateResponse(Metadata={owner=team-a, stage=prod})" {
		t.Fatalf("String: %s", a)
	}
	if v, ok := a.Metadata().Get("owner"); !ok || v != "team-a" {
		t.Fatalf("Get: %q %v", v, ok)
	}
}

func TestNestedFiltersEnumLists(t *testing.T) {
	req := NewListCertificatesRequestBuilder().
		IncludesWith(func(f *FiltersBuilder) {
			f.KeyTypes([]KeyAlgorithm{KeyAlgorithmRsa2048, KeyAlgorithmEcPrime256v1}).
				ExtendedKeyUsage([]ExtendedKeyUsageName{ExtendedKeyUsageNameAny})
		}).
		SortBy(SortByCreatedAt).
		Build()

	inc := req.Includes()
	if got := inc.KeyTypes(); got.Len() != 2 || got.At(1) != KeyAlgorithmEcPrime256v1 {
		t.Fatalf("key types: %v", got)
	}
	if inc.HasKeyUsage() || !sdkmodel.IsAutoConstruct(inc.KeyUsage()) {
		t.Fatalf("unset key usage should be the sentinel")
	}
	want := "ListCertificatesRequest(Includes=Filters(ExtendedKeyUsage=[ANY], KeyTypes=[RSA_2048, EC_prime256v1]), SortBy=CREATED_AT)"
	if req.String() != want {
		t.Fatalf("String:\n got %s\nwant %s", req, want)
	}

	raw := NewFiltersBuilder().KeyTypesRaw([]string{"RSA_2048", "ML_DSA_65"}).Build()
	if raw.KeyTypes().At(1) != KeyAlgorithmUnknownToSDKVersion || raw.KeyTypesAsStrings().At(1) != "ML_DSA_65" {
		t.Fatalf("unknown key type: %v", raw.KeyTypesAsStrings())
	}

	same := NewListCertificatesRequestBuilder().
		Includes(NewFiltersBuilder().
			ExtendedKeyUsageRaw([]string{"ANY"}).
			KeyTypesRaw([]string{"RSA_2048", "EC_prime256v1"}).
			Build()).
		SortByRaw(ptr.String("CREATED_AT")).
		Build()
	if !req.Equal(same) || req.HashCode() != same.HashCode() {
		t.Fatalf("typed and raw setters should agree")
	}
	if !req.Equal(req.ToBuilder().Build()) {
		t.Fatalf("ToBuilder roundtrip")
	}
	if (*Filters)(nil).KeyTypes().Len() != 0 || NewListCertificatesRequestBuilder().Build().Includes() != nil {
		t.Fatalf("nil filters")
	}
}

func TestCertificateStatusFromValue(t *testing.T) {
	if CertificateStatusFromValue(nil) != nil {
		t.Fatalf("nil")
	}
	if *CertificateStatusFromValue(ptr.String("REVOKED")) != CertificateStatusRevoked {
		t.Fatalf("known")
	}
	if len(CertificateStatus("").Values()) != 7 {
		t.Fatalf("values: %v", CertificateStatus("").Values())
	}
	sum := NewCertificateSummaryBuilder().Status(CertificateStatusIssued).Build()
	if *sum.Status() != CertificateStatusIssued || *sum.StatusAsString() != "ISSUED" {
		t.Fatalf("summary status")
	}
}

func TestCatalogShapes(t *testing.T) {
	c := Catalog()
	if c.Service() != ServiceName || len(c.Shapes()) != 8 {
		t.Fatalf("catalog: %s %v", c.Service(), c.Shapes())
	}
	sc, err := c.Schema("GetCertificateResponse")
	if err != nil {
		t.Fatal(err)
	}
	d, ok := sc.FieldByName("metadata")
	if !ok || d.Location().Location != sdkmodel.LocationHeader || d.Location().Name != "X-Amz-Meta-" {
		t.Fatalf("metadata descriptor: %v", d)
	}
	d, _ = sc.FieldByName("expires")
	if _, explicit := d.TimestampFormat(); explicit {
		t.Fatalf("expires should use the location default")
	}
}
