// Package protocol is a reference wire binding for sdkmodel values. It places
// every field at its declared location, honors the unset/empty distinction of
// collections, and decodes payloads and headers back into builders.
//
// Transport concerns (signing, retries, sending) stay with the caller.
package protocol

import (
	"context"
	"errors"
	"time"

	"github.com/reoring/sdkmodel"
	"github.com/reoring/sdkmodel/codec"
)

// Wire selects the payload encoding.
type Wire int

const (
	JSON Wire = iota
	CBOR
)

func (w Wire) String() string {
	switch w {
	case JSON:
		return "json"
	case CBOR:
		return "cbor"
	}
	return "unknown"
}

// ContentType is the media type of payloads encoded with w.
func (w Wire) ContentType() string {
	if w == CBOR {
		return "application/cbor"
	}
	return "application/json"
}

// ParseWire accepts "json" and "cbor".
func ParseWire(s string) (Wire, error) {
	switch s {
	case "json", "":
		return JSON, nil
	case "cbor":
		return CBOR, nil
	}
	return JSON, sdkmodel.Issues{sdkmodel.NewIssue("/protocol", sdkmodel.CodeInvalidFormat, s, nil)}
}

// Default timestamp formats by location, used when a field pins none.
const (
	DefaultHeaderTimestampFormat  = sdkmodel.RFC822
	DefaultPathTimestampFormat    = sdkmodel.ISO8601
	DefaultQueryTimestampFormat   = sdkmodel.ISO8601
	DefaultPayloadTimestampFormat = sdkmodel.UnixTimestamp
)

func wireName(d sdkmodel.Descriptor) string {
	if n := d.Location().Name; n != "" {
		return n
	}
	return d.MemberName()
}

func timestampFormat(d sdkmodel.Descriptor, def sdkmodel.TimestampFormat) sdkmodel.TimestampFormat {
	if f, ok := d.TimestampFormat(); ok {
		return f
	}
	return def
}

// isNil reports nil and typed nil objects, which appear as list elements and
// map values.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	if o, ok := v.(sdkmodel.Object); ok {
		return o.Equal(nil)
	}
	return false
}

// issuesOf folds any error into the structured model.
func issuesOf(err error) sdkmodel.Issues {
	if iss, ok := sdkmodel.AsIssues(err); ok {
		return iss
	}
	var tm *sdkmodel.TypeMismatchError
	if errors.As(err, &tm) {
		return sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeTypeMismatch, "want "+tm.Want+", got "+tm.Got, tm)}
	}
	return sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeParseError, "", err)}
}

func encodeTimestamp(ctx context.Context, f sdkmodel.TimestampFormat, t time.Time) (string, error) {
	return codec.Timestamp(f).Encode(ctx, t)
}
