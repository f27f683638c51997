package protocol_test

import (
	"context"
	"testing"
	"time"

	"github.com/aws/smithy-go/ptr"
	"github.com/davecgh/go-spew/spew"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/protocol"
	"github.com/reoring/sdkmodel/service/acm"
	"github.com/reoring/sdkmodel/service/codecatalyst"
)

var updated = time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

func summaryPage() *codecatalyst.ListDevEnvironmentsResponse {
	ide := codecatalyst.NewIdeConfigurationBuilder().Name(ptr.String("VSCode")).Build()
	env := codecatalyst.NewDevEnvironmentSummaryBuilder().
		ID(ptr.String("env-1")).
		LastUpdatedTime(ptr.Time(updated)).
		Status(codecatalyst.DevEnvironmentStatusRunning).
		Ides([]*codecatalyst.IdeConfiguration{ide}).
		InactivityTimeoutMinutes(ptr.Int32(15)).
		PersistentStorage(codecatalyst.NewPersistentStorageConfigurationBuilder().SizeInGiB(ptr.Int32(16)).Build()).
		Build()
	return codecatalyst.NewListDevEnvironmentsResponseBuilder().
		Items([]*codecatalyst.DevEnvironmentSummary{env, nil}).
		NextToken(ptr.String("t2")).
		Build()
}

func TestJSON_Roundtrip(t *testing.T) {
	ctx := context.Background()
	in := summaryPage()

	data, err := protocol.MarshalJSON(ctx, in)
	require.NoError(t, err)

	b := codecatalyst.NewListDevEnvironmentsResponseBuilder()
	require.NoError(t, protocol.UnmarshalJSON(ctx, data, b))
	out := b.Build()
	assert.True(t, in.Equal(out), "in:  %s\nout: %s\njson: %s", in, out, data)
	assert.Nil(t, out.Items().At(1))
}

func TestJSON_Shape(t *testing.T) {
	data, err := protocol.MarshalJSON(context.Background(), summaryPage())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	items := doc["items"].([]any)
	require.Len(t, items, 2)
	assert.Nil(t, items[1])
	first := items[0].(map[string]any)
	assert.Equal(t, "2024-01-01T12:30:00Z", first["lastUpdatedTime"])
	assert.Equal(t, "RUNNING", first["status"])
	assert.NotContains(t, first, "alias")
	assert.Equal(t, map[string]any{"sizeInGiB": float64(16)}, first["persistentStorage"])
}

func TestJSON_EpochSecondsDefault(t *testing.T) {
	in := acm.NewListCertificatesResponseBuilder().
		CertificateSummaryList([]*acm.CertificateSummary{
			acm.NewCertificateSummaryBuilder().NotAfter(ptr.Time(time.Unix(1704067200, 0).UTC())).Build(),
		}).
		Build()
	data, err := protocol.MarshalJSON(context.Background(), in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"CertificateSummaryList":[{"NotAfter":1704067200}]}`, string(data))

	b := acm.NewListCertificatesResponseBuilder()
	require.NoError(t, protocol.UnmarshalJSON(context.Background(), data, b))
	assert.True(t, in.Equal(b.Build()))
}

func TestJSON_BytesAreBase64(t *testing.T) {
	in := acm.NewImportCertificateRequestBuilder().Certificate([]byte("cert")).Build()
	data, err := protocol.MarshalJSON(context.Background(), in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Certificate":"Y2VydA=="}`, string(data))

	b := acm.NewImportCertificateRequestBuilder()
	require.NoError(t, protocol.UnmarshalJSON(context.Background(), data, b))
	assert.Equal(t, []byte("cert"), b.Build().Certificate())
}

func TestJSON_ExplicitEmptyListSurvives(t *testing.T) {
	b := codecatalyst.NewCreateDevEnvironmentRequestBuilder()
	require.NoError(t, protocol.UnmarshalJSON(context.Background(), []byte(`{"repositories":[]}`), b))
	req := b.Build()
	assert.True(t, req.HasRepositories())
	assert.Equal(t, 0, req.Repositories().Len())
	assert.False(t, req.HasIdes())
}

func TestJSON_TypeMismatchPath(t *testing.T) {
	b := codecatalyst.NewListDevEnvironmentsRequestBuilder()
	err := protocol.UnmarshalJSON(context.Background(), []byte(`{"maxResults":"ten","filters":[{"values":[1]}]}`), b)
	iss, ok := sdkmodel.AsIssues(err)
	require.True(t, ok, "%v", err)

	paths := map[string]string{}
	for _, it := range iss {
		paths[it.Path] = it.Code
	}
	assert.Equal(t, sdkmodel.CodeTypeMismatch, paths["/maxResults"], spew.Sdump(iss))
	assert.Equal(t, sdkmodel.CodeTypeMismatch, paths["/filters/0/values/0"], spew.Sdump(iss))
}

func TestJSON_Malformed(t *testing.T) {
	err := protocol.UnmarshalJSON(context.Background(), []byte(`{"name":`), codecatalyst.NewCreateAccessTokenRequestBuilder())
	iss, ok := sdkmodel.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, sdkmodel.CodeParseError, iss[0].Code)
}

func TestJSON_DuplicateKeys(t *testing.T) {
	b := codecatalyst.NewListDevEnvironmentsRequestBuilder()
	data := `{"maxResults":1,"filters":[{"key":"status"},{"key":"a","values":[],"key":"b"}],"maxResults":2}`
	err := protocol.UnmarshalJSON(context.Background(), []byte(data), b)
	iss, ok := sdkmodel.AsIssues(err)
	require.True(t, ok, "%v", err)
	require.Len(t, iss, 2, spew.Sdump(iss))
	assert.Equal(t, "/filters/1/key", iss[0].Path)
	assert.Equal(t, "/maxResults", iss[1].Path)
	for _, it := range iss {
		assert.Equal(t, sdkmodel.CodeDuplicateField, it.Code)
	}

	// Same key in sibling objects is fine.
	err = protocol.UnmarshalJSON(context.Background(), []byte(`{"filters":[{"key":"a"},{"key":"b"}]}`), b)
	require.NoError(t, err)
}

func TestCBOR_Roundtrip(t *testing.T) {
	ctx := context.Background()
	in := summaryPage()

	data, err := protocol.MarshalCBOR(ctx, in)
	require.NoError(t, err)

	b := codecatalyst.NewListDevEnvironmentsResponseBuilder()
	require.NoError(t, protocol.UnmarshalCBOR(ctx, data, b))
	out := b.Build()

	diag, _ := protocol.DiagnoseCBOR(data)
	assert.True(t, in.Equal(out), "in:  %s\nout: %s\ncbor: %s", in, out, diag)
}

func TestCBOR_Deterministic(t *testing.T) {
	ctx := context.Background()
	a, err := protocol.MarshalCBOR(ctx, summaryPage())
	require.NoError(t, err)
	b, err := protocol.MarshalCBOR(ctx, summaryPage().ToBuilder().Build())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCBOR_BytesAndSensitive(t *testing.T) {
	ctx := context.Background()
	in := acm.NewImportCertificateRequestBuilder().
		Certificate([]byte("cert")).
		PrivateKey([]byte{0, 1, 2}).
		Build()
	data, err := protocol.MarshalCBOR(ctx, in)
	require.NoError(t, err)

	b := acm.NewImportCertificateRequestBuilder()
	require.NoError(t, protocol.UnmarshalCBOR(ctx, data, b))
	// Redaction applies to String only; the wire carries the key.
	assert.Equal(t, []byte{0, 1, 2}, b.Build().PrivateKey())
	assert.True(t, in.Equal(b.Build()))
}

func TestUnmarshalJSONMembers_AllLocations(t *testing.T) {
	in := []byte(`{
		"spaceName": "s",
		"projectName": "p",
		"repositories": [{"repositoryName": "r"}],
		"persistentStorage": {"sizeInGiB": 32}
	}`)
	b := codecatalyst.NewCreateDevEnvironmentRequestBuilder()
	require.NoError(t, protocol.UnmarshalJSONMembers(context.Background(), in, b))
	req := b.Build()
	assert.Equal(t, "s", *req.SpaceName())
	assert.Equal(t, "r", *req.Repositories().At(0).RepositoryName())
	assert.Equal(t, int32(32), *req.PersistentStorage().SizeInGiB())

	// Member-keyed input ignores wire names.
	b2 := acm.NewGetCertificateResponseBuilder()
	require.NoError(t, protocol.UnmarshalJSONMembers(context.Background(),
		[]byte(`{"Certificate":"wire","expires":"2024-01-01T00:00:00Z","metadata":{"owner":"a"}}`), b2))
	resp := b2.Build()
	assert.Nil(t, resp.Certificate())
	assert.True(t, resp.Expires().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, resp.Metadata().Len())
}

func TestJSON_NestedFiltersKeepUnknownVariants(t *testing.T) {
	b := acm.NewListCertificatesRequestBuilder()
	err := protocol.UnmarshalJSON(context.Background(),
		[]byte(`{"Includes":{"keyTypes":["RSA_2048","ML_DSA_65"]},"SortBy":"CREATED_AT"}`), b)
	require.NoError(t, err)
	req := b.Build()

	types := req.Includes().KeyTypes()
	require.Equal(t, 2, types.Len())
	assert.Equal(t, acm.KeyAlgorithmRsa2048, types.At(0))
	assert.Equal(t, acm.KeyAlgorithmUnknownToSDKVersion, types.At(1))
	assert.Equal(t, acm.SortByCreatedAt, *req.SortBy())

	out, err := protocol.MarshalJSON(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Includes":{"keyTypes":["RSA_2048","ML_DSA_65"]},"SortBy":"CREATED_AT"}`, string(out))
}
