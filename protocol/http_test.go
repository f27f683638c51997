package protocol_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/aws/smithy-go/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/protocol"
	"github.com/reoring/sdkmodel/service/acm"
	"github.com/reoring/sdkmodel/service/codecatalyst"
)

func TestNewHTTPRequest_GetWithoutBody(t *testing.T) {
	req := acm.NewGetCertificateRequestBuilder().
		CertificateArn(ptr.String("arn:aws:acm:us-east-1:123456789012:certificate/abc")).
		Build()
	op := acm.Operations["GetCertificateRequest"]

	hr, err := protocol.NewHTTPRequest(context.Background(), protocol.JSON, "https://acm.example.com/", op, req)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, hr.Method)
	assert.Equal(t, "/certificates/arn:aws:acm:us-east-1:123456789012:certificate%2Fabc", hr.URL.EscapedPath())
	assert.Empty(t, hr.Header.Get("Content-Type"))

	body, err := io.ReadAll(hr.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestNewHTTPRequest_PutWithPayload(t *testing.T) {
	req := codecatalyst.NewCreateAccessTokenRequestBuilder().
		Name(ptr.String("demo")).
		ExpiresTime(ptr.Time(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))).
		Build()
	op := codecatalyst.Operations["CreateAccessTokenRequest"]

	hr, err := protocol.NewHTTPRequest(context.Background(), protocol.JSON, "https://codecatalyst.example.com", op, req)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, hr.Method)
	assert.Equal(t, "/v1/accessTokens", hr.URL.Path)
	assert.Equal(t, "application/json", hr.Header.Get("Content-Type"))

	body, err := io.ReadAll(hr.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"demo","expiresTime":"2024-01-01T00:00:00Z"}`, string(body))
}

func TestNewHTTPRequest_Query(t *testing.T) {
	req := (&searchBuilder{}).
		States([]string{"ISSUED"}).
		Cursor(ptr.String("n 1")).
		Build()
	hr, err := protocol.NewHTTPRequest(context.Background(), protocol.CBOR, "https://acm.example.com", searchOperation, req)
	require.NoError(t, err)
	assert.Equal(t, "cursor=n+1&state=ISSUED", hr.URL.RawQuery)
	assert.Equal(t, http.NoBody, hr.Body)
}

func TestNewHTTPRequest_ListCertificatesPayload(t *testing.T) {
	req := acm.NewListCertificatesRequestBuilder().
		IncludesWith(func(f *acm.FiltersBuilder) {
			f.ExtendedKeyUsage([]acm.ExtendedKeyUsageName{acm.ExtendedKeyUsageNameTLSWebServerAuthentication})
		}).
		SortOrder(acm.SortOrderDescending).
		Build()
	hr, err := protocol.NewHTTPRequest(context.Background(), protocol.JSON, "https://acm.example.com", acm.Operations["ListCertificatesRequest"], req)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, hr.Method)
	assert.Empty(t, hr.URL.RawQuery)

	body, err := io.ReadAll(hr.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Includes":{"extendedKeyUsage":["TLS_WEB_SERVER_AUTHENTICATION"]},"SortOrder":"DESCENDING"}`, string(body))
}

func TestDecodeResponse_HeadersAndMetadata(t *testing.T) {
	h := http.Header{}
	h.Set("Expires", "Mon, 01 Jan 2024 00:00:00 GMT")
	h.Set("X-Amz-Meta-Owner", "team-a")
	h.Set("X-Amz-Meta-Stage", "prod")
	h.Set("X-Amzn-RequestId", "req-1")
	h.Set("X-Amz-Id-2", "ext-1")
	body := []byte(`{"Certificate":"-----BEGIN CERTIFICATE-----"}`)

	obj, err := protocol.DecodeResponse(context.Background(), protocol.JSON,
		acm.NewGetCertificateResponseBuilder(), http.StatusOK, h, body)
	require.NoError(t, err)
	resp, ok := obj.(*acm.GetCertificateResponse)
	require.True(t, ok, "%T", obj)

	assert.Equal(t, "-----BEGIN CERTIFICATE-----", *resp.Certificate())
	assert.True(t, resp.Expires().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, map[string]string{"owner": "team-a", "stage": "prod"}, resp.Metadata().Clone())
	assert.Nil(t, resp.CertificateChain())

	md := resp.ResponseMetadata()
	assert.Equal(t, "req-1", md.RequestID)
	assert.Equal(t, "ext-1", md.ExtendedRequestID)
	assert.Equal(t, http.StatusOK, md.StatusCode)
}

func TestDecodeResponse_NoMetaHeadersLeavesMapUnset(t *testing.T) {
	obj, err := protocol.DecodeResponse(context.Background(), protocol.JSON,
		acm.NewGetCertificateResponseBuilder(), http.StatusOK, http.Header{}, nil)
	require.NoError(t, err)
	resp := obj.(*acm.GetCertificateResponse)
	assert.False(t, resp.HasMetadata())
	assert.True(t, sdkmodel.IsAutoConstruct(resp.Metadata()))
}

func TestDecodeHeaders_BadTimestamp(t *testing.T) {
	h := http.Header{}
	h.Set("Expires", "tomorrow")
	err := protocol.DecodeHeaders(context.Background(), acm.NewGetCertificateResponseBuilder(), h)
	iss, ok := sdkmodel.AsIssues(err)
	require.True(t, ok, "%v", err)
	assert.Equal(t, "/expires", iss[0].Path)
	assert.Equal(t, sdkmodel.CodeInvalidFormat, iss[0].Code)
}
