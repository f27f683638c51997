package sdkmodel

import (
	"maps"
	"net/textproto"
	"slices"
	"strconv"
	"strings"
	"time"
)

// OverrideConfiguration carries per-call adjustments a request makes to the
// client: extra headers, extra raw query parameters, and timeouts. It is an
// immutable value; use ToBuilder to derive a modified copy.
type OverrideConfiguration struct {
	headers               map[string][]string
	rawQuery              map[string][]string
	apiCallTimeout        *time.Duration
	apiCallAttemptTimeout *time.Duration
}

// Headers returns a copy of the extra headers, keyed by canonical name.
func (c *OverrideConfiguration) Headers() map[string][]string {
	if c == nil {
		return nil
	}
	return cloneMulti(c.headers)
}

// RawQueryParameters returns a copy of the extra query parameters.
func (c *OverrideConfiguration) RawQueryParameters() map[string][]string {
	if c == nil {
		return nil
	}
	return cloneMulti(c.rawQuery)
}

func (c *OverrideConfiguration) APICallTimeout() (time.Duration, bool) {
	if c == nil || c.apiCallTimeout == nil {
		return 0, false
	}
	return *c.apiCallTimeout, true
}

func (c *OverrideConfiguration) APICallAttemptTimeout() (time.Duration, bool) {
	if c == nil || c.apiCallAttemptTimeout == nil {
		return 0, false
	}
	return *c.apiCallAttemptTimeout, true
}

func (c *OverrideConfiguration) ToBuilder() *OverrideConfigurationBuilder {
	b := NewOverrideConfigurationBuilder()
	if c == nil {
		return b
	}
	b.headers = cloneMulti(c.headers)
	b.rawQuery = cloneMulti(c.rawQuery)
	b.apiCallTimeout = ClonePtr(c.apiCallTimeout)
	b.apiCallAttemptTimeout = ClonePtr(c.apiCallAttemptTimeout)
	return b
}

// Equal accepts nil and typed nil *OverrideConfiguration alike.
func (c *OverrideConfiguration) Equal(other any) bool {
	var o *OverrideConfiguration
	switch x := other.(type) {
	case nil:
	case *OverrideConfiguration:
		o = x
	default:
		return false
	}
	if c == nil || o == nil {
		return c == o
	}
	return equalMulti(c.headers, o.headers) &&
		equalMulti(c.rawQuery, o.rawQuery) &&
		equalDuration(c.apiCallTimeout, o.apiCallTimeout) &&
		equalDuration(c.apiCallAttemptTimeout, o.apiCallAttemptTimeout)
}

func (c *OverrideConfiguration) HashCode() uint64 {
	if c == nil {
		return 0
	}
	h := uint64(1)
	h = 31*h + hashMulti(c.headers)
	h = 31*h + hashMulti(c.rawQuery)
	if c.apiCallTimeout != nil {
		h = 31*h + hashValue(int64(*c.apiCallTimeout))
	}
	if c.apiCallAttemptTimeout != nil {
		h = 31*h + hashValue(int64(*c.apiCallAttemptTimeout))
	}
	return h
}

func (c *OverrideConfiguration) String() string {
	if c == nil {
		return "null"
	}
	ts := newToString("OverrideConfiguration")
	if len(c.headers) > 0 {
		ts.add("Headers", formatMulti(c.headers))
	}
	if len(c.rawQuery) > 0 {
		ts.add("RawQueryParameters", formatMulti(c.rawQuery))
	}
	if c.apiCallTimeout != nil {
		ts.add("ApiCallTimeout", c.apiCallTimeout.String())
	}
	if c.apiCallAttemptTimeout != nil {
		ts.add("ApiCallAttemptTimeout", c.apiCallAttemptTimeout.String())
	}
	return ts.build()
}

// OverrideConfigurationBuilder is the mutable counterpart of
// OverrideConfiguration.
type OverrideConfigurationBuilder struct {
	headers               map[string][]string
	rawQuery              map[string][]string
	apiCallTimeout        *time.Duration
	apiCallAttemptTimeout *time.Duration
}

func NewOverrideConfigurationBuilder() *OverrideConfigurationBuilder {
	return &OverrideConfigurationBuilder{}
}

// PutHeader replaces the values of the named header.
func (b *OverrideConfigurationBuilder) PutHeader(name string, values ...string) *OverrideConfigurationBuilder {
	if b.headers == nil {
		b.headers = map[string][]string{}
	}
	b.headers[textproto.CanonicalMIMEHeaderKey(name)] = slices.Clone(values)
	return b
}

// Headers replaces every extra header.
func (b *OverrideConfigurationBuilder) Headers(h map[string][]string) *OverrideConfigurationBuilder {
	b.headers = nil
	for k, v := range h {
		b.PutHeader(k, v...)
	}
	return b
}

// PutRawQueryParameter replaces the values of the named query parameter.
func (b *OverrideConfigurationBuilder) PutRawQueryParameter(name string, values ...string) *OverrideConfigurationBuilder {
	if b.rawQuery == nil {
		b.rawQuery = map[string][]string{}
	}
	b.rawQuery[name] = slices.Clone(values)
	return b
}

func (b *OverrideConfigurationBuilder) RawQueryParameters(q map[string][]string) *OverrideConfigurationBuilder {
	b.rawQuery = cloneMulti(q)
	return b
}

func (b *OverrideConfigurationBuilder) APICallTimeout(d time.Duration) *OverrideConfigurationBuilder {
	b.apiCallTimeout = &d
	return b
}

func (b *OverrideConfigurationBuilder) APICallAttemptTimeout(d time.Duration) *OverrideConfigurationBuilder {
	b.apiCallAttemptTimeout = &d
	return b
}

func (b *OverrideConfigurationBuilder) Build() *OverrideConfiguration {
	return &OverrideConfiguration{
		headers:               cloneMulti(b.headers),
		rawQuery:              cloneMulti(b.rawQuery),
		apiCallTimeout:        ClonePtr(b.apiCallTimeout),
		apiCallAttemptTimeout: ClonePtr(b.apiCallAttemptTimeout),
	}
}

// RequestEnvelope is embedded by every generated request type. It is not a
// field: it has no location and is left out of String.
type RequestEnvelope struct {
	override *OverrideConfiguration
}

// OverrideConfiguration returns the per-call override, or nil.
func (e RequestEnvelope) OverrideConfiguration() *OverrideConfiguration { return e.override }

// EnvelopeBuilder seeds a request builder from this envelope.
func (e RequestEnvelope) EnvelopeBuilder() RequestEnvelopeBuilder {
	return RequestEnvelopeBuilder{override: e.override}
}

// RequestEnvelopeBuilder is embedded by every generated request builder.
type RequestEnvelopeBuilder struct {
	override *OverrideConfiguration
}

func (b *RequestEnvelopeBuilder) SetOverrideConfiguration(c *OverrideConfiguration) {
	b.override = c
}

func (b RequestEnvelopeBuilder) BuildEnvelope() RequestEnvelope {
	return RequestEnvelope{override: b.override}
}

// ResponseMetadata describes the exchange that produced a response. It never
// takes part in equality, hashing, or String.
type ResponseMetadata struct {
	RequestID         string
	ExtendedRequestID string
	StatusCode        int
}

func (m ResponseMetadata) String() string {
	ts := newToString("ResponseMetadata")
	if m.RequestID != "" {
		ts.add("RequestId", m.RequestID)
	}
	if m.ExtendedRequestID != "" {
		ts.add("ExtendedRequestId", m.ExtendedRequestID)
	}
	if m.StatusCode != 0 {
		ts.add("StatusCode", strconv.Itoa(m.StatusCode))
	}
	return ts.build()
}

// ResponseEnvelope is embedded by every generated response type.
type ResponseEnvelope struct {
	metadata ResponseMetadata
}

func (e ResponseEnvelope) ResponseMetadata() ResponseMetadata { return e.metadata }

func (e ResponseEnvelope) EnvelopeBuilder() ResponseEnvelopeBuilder {
	return ResponseEnvelopeBuilder{metadata: e.metadata}
}

// ResponseEnvelopeBuilder is embedded by every generated response builder.
// Decoders fill it through SetResponseMetadata.
type ResponseEnvelopeBuilder struct {
	metadata ResponseMetadata
}

func (b *ResponseEnvelopeBuilder) SetResponseMetadata(m ResponseMetadata) { b.metadata = m }

func (b ResponseEnvelopeBuilder) BuildEnvelope() ResponseEnvelope {
	return ResponseEnvelope{metadata: b.metadata}
}

// ResponseMetadataSetter is implemented by every generated response builder.
type ResponseMetadataSetter interface {
	SetResponseMetadata(ResponseMetadata)
}

// OverrideSetter is implemented by every generated request builder.
type OverrideSetter interface {
	SetOverrideConfiguration(*OverrideConfiguration)
}

func cloneMulti(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

func equalMulti(a, b map[string][]string) bool {
	return maps.EqualFunc(a, b, slices.Equal[[]string])
}

func hashMulti(m map[string][]string) uint64 {
	var h uint64
	for k, vs := range m {
		e := uint64(1)
		for _, v := range vs {
			e = 31*e + hashValue(v)
		}
		h += hashValue(k) ^ e
	}
	return h
}

func formatMulti(m map[string][]string) string {
	keys := slices.Sorted(maps.Keys(m))
	ts := &toString{first: true}
	ts.b.WriteByte('{')
	for _, k := range keys {
		ts.add(k, "["+strings.Join(m[k], ", ")+"]")
	}
	ts.b.WriteByte('}')
	return ts.b.String()
}

func equalDuration(a, b *time.Duration) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
