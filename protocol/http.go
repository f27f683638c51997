package protocol

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/codec"
)

// Operation names the HTTP binding of one request shape.
type Operation struct {
	Method string
	// Path is a template with {label} and {label+} segments.
	Path string
}

// NewHTTPRequest binds req and builds the HTTP request for op against
// endpoint. The request is not sent.
func NewHTTPRequest(ctx context.Context, w Wire, endpoint string, op Operation, req sdkmodel.Object) (*http.Request, error) {
	b, err := Bind(ctx, w, req)
	if err != nil {
		return nil, err
	}
	path, err := ExpandPath(op.Path, b.PathParams)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(strings.TrimSuffix(endpoint, "/") + path)
	if err != nil {
		return nil, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidFormat, endpoint, err)}
	}
	q := u.Query()
	for k, vs := range b.Query {
		q[k] = append(q[k], vs...)
	}
	u.RawQuery = q.Encode()

	var body []byte
	if len(b.Payload) > 0 || op.Method != http.MethodGet {
		body, err = w.Marshal(b.Payload)
		if err != nil {
			return nil, err
		}
	}
	hr, err := http.NewRequestWithContext(ctx, op.Method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, vs := range b.Header {
		hr.Header[k] = vs
	}
	if body != nil {
		hr.Header.Set("Content-Type", w.ContentType())
	}
	return hr, nil
}

// Marshal encodes a payload document such as Binding.Payload. A nil document
// encodes as an empty object.
func (w Wire) Marshal(doc map[string]any) ([]byte, error) {
	if doc == nil {
		doc = map[string]any{}
	}
	if w == CBOR {
		return cborEnc.Marshal(doc)
	}
	return jsonMarshal(doc)
}

// DecodeHeaders fills the HEADER fields of b from h. Header maps collect
// every header that starts with the location name, keyed by the lower-cased
// remainder.
func DecodeHeaders(ctx context.Context, b sdkmodel.AnyBuilder, h http.Header) error {
	var iss sdkmodel.Issues
	for _, d := range b.Schema().Fields() {
		if d.Location().Location != sdkmodel.LocationHeader {
			continue
		}
		v, ok, err := headerValue(ctx, d, h)
		if err == nil && ok {
			err = d.Set(b, v)
		}
		if err != nil {
			iss = append(iss, sdkmodel.RebaseIssues("/"+d.MemberName(), issuesOf(err))...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func headerValue(ctx context.Context, d sdkmodel.Descriptor, h http.Header) (any, bool, error) {
	name := wireName(d)
	f := timestampFormat(d, DefaultHeaderTimestampFormat)
	switch d.MarshallingType() {
	case sdkmodel.MarshallingList:
		vs, ok := h[http.CanonicalHeaderKey(name)]
		if !ok || d.Member() == nil {
			return nil, false, nil
		}
		out := make([]any, 0, len(vs))
		for _, s := range vs {
			if s == "" {
				continue
			}
			v, err := parseScalar(ctx, d.Member().Type, f, s)
			if err != nil {
				return nil, false, err
			}
			out = append(out, v)
		}
		return out, true, nil
	case sdkmodel.MarshallingMap:
		if d.Member() == nil {
			return nil, false, nil
		}
		prefix := http.CanonicalHeaderKey(name)
		out := map[string]any{}
		for k, vs := range h {
			if len(k) <= len(prefix) || !strings.EqualFold(k[:len(prefix)], prefix) || len(vs) == 0 {
				continue
			}
			v, err := parseScalar(ctx, d.Member().Type, f, vs[0])
			if err != nil {
				return nil, false, err
			}
			out[strings.ToLower(k[len(prefix):])] = v
		}
		if len(out) == 0 {
			return nil, false, nil
		}
		return out, true, nil
	}
	s := h.Get(name)
	if s == "" {
		return nil, false, nil
	}
	v, err := parseScalar(ctx, d.MarshallingType(), f, s)
	return v, err == nil, err
}

func parseScalar(ctx context.Context, mt sdkmodel.MarshallingType, f sdkmodel.TimestampFormat, s string) (any, error) {
	bad := func(err error) error {
		return sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidFormat, mt.String(), err)}
	}
	switch mt {
	case sdkmodel.MarshallingString:
		return s, nil
	case sdkmodel.MarshallingInteger:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, bad(err)
		}
		return int32(n), nil
	case sdkmodel.MarshallingLong:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, bad(err)
		}
		return n, nil
	case sdkmodel.MarshallingBoolean:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, bad(err)
		}
		return v, nil
	case sdkmodel.MarshallingDouble:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, bad(err)
		}
		return v, nil
	case sdkmodel.MarshallingFloat:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, bad(err)
		}
		return float32(v), nil
	case sdkmodel.MarshallingInstant:
		t, err := codec.Timestamp(f).Decode(ctx, s)
		if err != nil {
			return nil, err
		}
		return t, nil
	case sdkmodel.MarshallingBytes:
		b, err := codec.Base64().Decode(ctx, s)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, bad(nil)
}

// Request ID headers, in lookup order.
var requestIDHeaders = []string{"X-Amzn-Requestid", "X-Amz-Request-Id"}

// ResponseMetadataFromHeaders extracts request identifiers from h.
func ResponseMetadataFromHeaders(status int, h http.Header) sdkmodel.ResponseMetadata {
	md := sdkmodel.ResponseMetadata{StatusCode: status, ExtendedRequestID: h.Get("X-Amz-Id-2")}
	for _, k := range requestIDHeaders {
		if v := h.Get(k); v != "" {
			md.RequestID = v
			break
		}
	}
	return md
}

// DecodeResponse fills b from a complete HTTP response and builds it.
// Response metadata is attached when b accepts it.
func DecodeResponse(ctx context.Context, w Wire, b sdkmodel.AnyBuilder, status int, h http.Header, body []byte) (sdkmodel.Object, error) {
	if len(bytes.TrimSpace(body)) > 0 {
		var err error
		if w == CBOR {
			err = UnmarshalCBOR(ctx, body, b)
		} else {
			err = UnmarshalJSON(ctx, body, b)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := DecodeHeaders(ctx, b, h); err != nil {
		return nil, err
	}
	if ms, ok := b.(sdkmodel.ResponseMetadataSetter); ok {
		ms.SetResponseMetadata(ResponseMetadataFromHeaders(status, h))
	}
	return b.BuildObject(), nil
}
