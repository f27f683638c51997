package protocol

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/reoring/sdkmodel"
)

// Binding is a value laid out by location.
type Binding struct {
	PathParams map[string]string
	Query      url.Values
	Header     http.Header
	// Payload holds the PAYLOAD fields keyed by wire name, ready for the
	// payload encoder.
	Payload map[string]any
}

// Bind lays out obj by location.
//
// Unset collections are left off the wire entirely. Explicitly empty ones
// are emitted: [] in the payload, an empty query value, an empty header.
// A PATH field without a value is reported as missing_path_param. Header maps
// add one header per entry under the location name as prefix; query maps add
// one parameter per entry. A request's override configuration is applied
// last.
func Bind(ctx context.Context, w Wire, obj sdkmodel.Object) (*Binding, error) {
	b := &Binding{
		PathParams: map[string]string{},
		Query:      url.Values{},
		Header:     http.Header{},
	}
	var iss sdkmodel.Issues
	for _, d := range obj.Schema().Fields() {
		if d.Location().Location == sdkmodel.LocationPayload {
			continue
		}
		v, err := d.Get(obj)
		if err != nil {
			return nil, err
		}
		path := "/" + d.MemberName()
		if err := b.bindField(ctx, d, v); err != nil {
			iss = append(iss, sdkmodel.RebaseIssues(path, issuesOf(err))...)
		}
	}
	payload, err := encoder{wire: w}.object(ctx, obj)
	if err != nil {
		iss = append(iss, issuesOf(err)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	b.Payload = payload

	if oc, ok := obj.(interface {
		OverrideConfiguration() *sdkmodel.OverrideConfiguration
	}); ok {
		b.applyOverride(oc.OverrideConfiguration())
	}
	return b, nil
}

func (b *Binding) bindField(ctx context.Context, d sdkmodel.Descriptor, v any) error {
	name := wireName(d)
	switch d.Location().Location {
	case sdkmodel.LocationPath:
		if v == nil {
			return sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeMissingPathParam, name, nil)}
		}
		if d.MarshallingType().IsCollection() {
			return sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidTrait, "collection in path", nil)}
		}
		s, err := scalarString(ctx, v, timestampFormat(d, DefaultPathTimestampFormat))
		if err != nil {
			return err
		}
		b.PathParams[name] = s
	case sdkmodel.LocationQueryParam:
		return bindMulti(ctx, d, v, timestampFormat(d, DefaultQueryTimestampFormat), "",
			func(k, s string) { b.Query.Add(k, s) },
			func(k string) { b.Query.Set(k, "") })
	case sdkmodel.LocationHeader:
		return bindMulti(ctx, d, v, timestampFormat(d, DefaultHeaderTimestampFormat), name,
			func(k, s string) { b.Header.Add(k, s) },
			func(k string) { b.Header.Set(k, "") })
	}
	return nil
}

// bindMulti handles the locations that carry repeated string values. Map
// entries are keyed by prefix+key.
func bindMulti(ctx context.Context, d sdkmodel.Descriptor, v any, f sdkmodel.TimestampFormat, prefix string, add func(k, s string), empty func(k string)) error {
	name := wireName(d)
	switch x := v.(type) {
	case nil:
		return nil
	case sdkmodel.AnyList:
		if x.AutoConstruct() {
			return nil
		}
		if x.Len() == 0 {
			empty(name)
			return nil
		}
		for i := range x.Len() {
			el := x.AnyAt(i)
			if isNil(el) {
				continue
			}
			s, err := scalarString(ctx, el, f)
			if err != nil {
				return sdkmodel.RebaseIssues("/"+strconv.Itoa(i), issuesOf(err))
			}
			add(name, s)
		}
	case sdkmodel.AnyMap:
		for _, k := range x.Keys() {
			el, _ := x.AnyGet(k)
			if isNil(el) {
				continue
			}
			if l, ok := el.(sdkmodel.AnyList); ok {
				for i := range l.Len() {
					s, err := scalarString(ctx, l.AnyAt(i), f)
					if err != nil {
						return sdkmodel.RebaseIssues("/"+k, issuesOf(err))
					}
					add(prefix+k, s)
				}
				continue
			}
			s, err := scalarString(ctx, el, f)
			if err != nil {
				return sdkmodel.RebaseIssues("/"+k, issuesOf(err))
			}
			add(prefix+k, s)
		}
	default:
		s, err := scalarString(ctx, v, f)
		if err != nil {
			return err
		}
		add(name, s)
	}
	return nil
}

func (b *Binding) applyOverride(oc *sdkmodel.OverrideConfiguration) {
	if oc == nil {
		return
	}
	for k, vs := range oc.Headers() {
		b.Header[k] = vs
	}
	for k, vs := range oc.RawQueryParameters() {
		b.Query[k] = append(b.Query[k], vs...)
	}
}

// scalarString renders a scalar for a path, query, or header.
func scalarString(ctx context.Context, v any, f sdkmodel.TimestampFormat) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case time.Time:
		return encodeTimestamp(ctx, f, x)
	case []byte:
		return base64.StdEncoding.EncodeToString(x), nil
	}
	return "", sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeTypeMismatch, fmt.Sprintf("%T is not a scalar", v), nil)}
}
