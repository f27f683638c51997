package protocol

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/codec"
)

// encoder renders PAYLOAD fields into a document tree of maps, slices, and
// scalars for one wire encoding.
type encoder struct {
	wire Wire
}

func (e encoder) object(ctx context.Context, obj sdkmodel.Object) (map[string]any, error) {
	out := map[string]any{}
	var iss sdkmodel.Issues
	for _, d := range obj.Schema().Fields() {
		if d.Location().Location != sdkmodel.LocationPayload {
			continue
		}
		v, err := d.Get(obj)
		if err != nil {
			return nil, err
		}
		if v == nil || sdkmodel.IsAutoConstruct(v) {
			continue
		}
		ev, err := e.value(ctx, timestampFormat(d, DefaultPayloadTimestampFormat), v)
		if err != nil {
			iss = append(iss, sdkmodel.RebaseIssues("/"+wireName(d), issuesOf(err))...)
			continue
		}
		out[wireName(d)] = ev
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (e encoder) value(ctx context.Context, f sdkmodel.TimestampFormat, v any) (any, error) {
	if isNil(v) {
		return nil, nil
	}
	switch x := v.(type) {
	case sdkmodel.AnyList:
		out := make([]any, x.Len())
		for i := range x.Len() {
			ev, err := e.value(ctx, f, x.AnyAt(i))
			if err != nil {
				return nil, sdkmodel.RebaseIssues("/"+strconv.Itoa(i), issuesOf(err))
			}
			out[i] = ev
		}
		return out, nil
	case sdkmodel.AnyMap:
		out := make(map[string]any, x.Len())
		for _, k := range x.Keys() {
			el, _ := x.AnyGet(k)
			ev, err := e.value(ctx, f, el)
			if err != nil {
				return nil, sdkmodel.RebaseIssues("/"+k, issuesOf(err))
			}
			out[k] = ev
		}
		return out, nil
	case sdkmodel.Object:
		return e.object(ctx, x)
	case time.Time:
		return e.timestamp(ctx, f, x)
	}
	return v, nil
}

func (e encoder) timestamp(ctx context.Context, f sdkmodel.TimestampFormat, t time.Time) (any, error) {
	if e.wire == CBOR {
		return t.UTC(), nil
	}
	switch f {
	case sdkmodel.UnixTimestamp:
		return codec.EpochSeconds(t), nil
	case sdkmodel.UnixTimestampMillis:
		return t.UnixMilli(), nil
	}
	return encodeTimestamp(ctx, f, t)
}

// decoder fills builders from a document tree produced by the JSON or CBOR
// decoder. With byMember set it reads every field under its member name
// instead of only PAYLOAD fields under their wire names.
type decoder struct {
	wire     Wire
	byMember bool
}

func (dc decoder) object(ctx context.Context, b sdkmodel.AnyBuilder, doc map[string]any) error {
	var iss sdkmodel.Issues
	for _, d := range b.Schema().Fields() {
		name, def := wireName(d), DefaultPayloadTimestampFormat
		switch {
		case dc.byMember:
			name, def = d.MemberName(), sdkmodel.ISO8601
		case d.Location().Location != sdkmodel.LocationPayload:
			continue
		}
		raw, ok := doc[name]
		if !ok {
			continue
		}
		v, err := dc.value(ctx, d.MarshallingType(), d.Member(), d.NewBuilder, timestampFormat(d, def), raw)
		if err == nil {
			err = d.Set(b, v)
		}
		if err != nil {
			iss = append(iss, sdkmodel.RebaseIssues("/"+name, issuesOf(err))...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// value converts raw into the form Descriptor.Set accepts for mt. Nested
// structures are decoded into a fresh builder and built.
func (dc decoder) value(ctx context.Context, mt sdkmodel.MarshallingType, member *sdkmodel.MemberInfo, newBuilder func() sdkmodel.AnyBuilder, f sdkmodel.TimestampFormat, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	switch mt {
	case sdkmodel.MarshallingString:
		s, ok := raw.(string)
		if !ok {
			return nil, unexpected("string", raw)
		}
		return s, nil
	case sdkmodel.MarshallingInteger:
		n, err := toInt64(raw)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, unexpected("int32", raw)
		}
		return int32(n), nil
	case sdkmodel.MarshallingLong:
		return toInt64(raw)
	case sdkmodel.MarshallingBoolean:
		v, ok := raw.(bool)
		if !ok {
			return nil, unexpected("bool", raw)
		}
		return v, nil
	case sdkmodel.MarshallingDouble:
		return toFloat64(raw)
	case sdkmodel.MarshallingFloat:
		v, err := toFloat64(raw)
		return float32(v), err
	case sdkmodel.MarshallingInstant:
		return dc.timestamp(ctx, f, raw)
	case sdkmodel.MarshallingBytes:
		switch x := raw.(type) {
		case []byte:
			return x, nil
		case string:
			return codec.Base64().Decode(ctx, x)
		}
		return nil, unexpected("bytes", raw)
	case sdkmodel.MarshallingStructure:
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, unexpected("object", raw)
		}
		if newBuilder == nil {
			return nil, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidTrait, "structure without builder", nil)}
		}
		nb := newBuilder()
		if nb == nil {
			return nil, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidTrait, "structure without builder", nil)}
		}
		if err := dc.object(ctx, nb, m); err != nil {
			return nil, err
		}
		return nb.BuildObject(), nil
	case sdkmodel.MarshallingList:
		items, ok := raw.([]any)
		if !ok {
			return nil, unexpected("array", raw)
		}
		if member == nil {
			return nil, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidTrait, "list without member", nil)}
		}
		out := make([]any, len(items))
		var iss sdkmodel.Issues
		for i, it := range items {
			v, err := dc.value(ctx, member.Type, nil, member.NewBuilder, f, it)
			if err != nil {
				iss = append(iss, sdkmodel.RebaseIssues("/"+strconv.Itoa(i), issuesOf(err))...)
				continue
			}
			out[i] = v
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	case sdkmodel.MarshallingMap:
		entries, ok := raw.(map[string]any)
		if !ok {
			return nil, unexpected("object", raw)
		}
		if member == nil {
			return nil, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidTrait, "map without value", nil)}
		}
		out := make(map[string]any, len(entries))
		var iss sdkmodel.Issues
		for k, it := range entries {
			v, err := dc.value(ctx, member.Type, nil, member.NewBuilder, f, it)
			if err != nil {
				iss = append(iss, sdkmodel.RebaseIssues("/"+k, issuesOf(err))...)
				continue
			}
			out[k] = v
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	}
	return nil, unexpected(mt.String(), raw)
}

func (dc decoder) timestamp(ctx context.Context, f sdkmodel.TimestampFormat, raw any) (time.Time, error) {
	switch x := raw.(type) {
	case time.Time:
		return x.UTC(), nil
	case string:
		return codec.Timestamp(f).Decode(ctx, x)
	}
	if f == sdkmodel.UnixTimestampMillis {
		ms, err := toInt64(raw)
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ms).UTC(), nil
	}
	secs, err := toFloat64(raw)
	if err != nil {
		return time.Time{}, err
	}
	return codec.FromEpochSeconds(secs), nil
}

func toInt64(raw any) (int64, error) {
	switch x := raw.(type) {
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeTypeMismatch, "integer", err)}
		}
		return n, nil
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, unexpected("int64", raw)
		}
		return int64(x), nil
	case int:
		return int64(x), nil
	case float64:
		if x == math.Trunc(x) && x >= math.MinInt64 && x <= math.MaxInt64 {
			return int64(x), nil
		}
	}
	return 0, unexpected("integer", raw)
}

func toFloat64(raw any) (float64, error) {
	switch x := raw.(type) {
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeTypeMismatch, "number", err)}
		}
		return f, nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case int:
		return float64(x), nil
	}
	return 0, unexpected("number", raw)
}

func unexpected(want string, raw any) error {
	return sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeTypeMismatch, fmt.Sprintf("want %s, got %T", want, raw), nil)}
}
