package codec

import (
	"context"
	"strconv"
	"time"

	smithytime "github.com/aws/smithy-go/time"

	"github.com/reoring/sdkmodel"
)

// Timestamp returns a Codec that converts between the textual wire form of
// format and time.Time. Epoch formats travel as decimal strings here; bindings
// that carry numbers use EpochSeconds and FromEpochSeconds instead.
func Timestamp(format sdkmodel.TimestampFormat) sdkmodel.Codec[string, time.Time] {
	return timestampCodec{format: format}
}

type timestampCodec struct {
	format sdkmodel.TimestampFormat
}

func (c timestampCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	var (
		t   time.Time
		err error
	)
	switch c.format {
	case sdkmodel.ISO8601:
		t, err = smithytime.ParseDateTime(a)
	case sdkmodel.RFC822:
		t, err = smithytime.ParseHTTPDate(a)
	case sdkmodel.UnixTimestamp:
		var f float64
		if f, err = strconv.ParseFloat(a, 64); err == nil {
			t = smithytime.ParseEpochSeconds(f)
		}
	case sdkmodel.UnixTimestampMillis:
		var ms int64
		if ms, err = strconv.ParseInt(a, 10, 64); err == nil {
			t = time.UnixMilli(ms)
		}
	default:
		return time.Time{}, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidFormat, c.format.String(), nil)}
	}
	if err != nil {
		return time.Time{}, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidFormat, c.format.String(), err)}
	}
	return t.UTC(), nil
}

func (c timestampCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	switch c.format {
	case sdkmodel.ISO8601:
		return smithytime.FormatDateTime(b), nil
	case sdkmodel.RFC822:
		return smithytime.FormatHTTPDate(b), nil
	case sdkmodel.UnixTimestamp:
		return strconv.FormatFloat(EpochSeconds(b), 'f', -1, 64), nil
	case sdkmodel.UnixTimestampMillis:
		return strconv.FormatInt(b.UnixMilli(), 10), nil
	}
	return "", sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidFormat, c.format.String(), nil)}
}

// EpochSeconds returns t as fractional seconds since the Unix epoch with
// millisecond precision.
func EpochSeconds(t time.Time) float64 { return smithytime.FormatEpochSeconds(t) }

// FromEpochSeconds is the inverse of EpochSeconds.
func FromEpochSeconds(v float64) time.Time { return smithytime.ParseEpochSeconds(v).UTC() }
