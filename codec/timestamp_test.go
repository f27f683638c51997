package codec

import (
	"context"
	"testing"
	"time"

	"github.com/reoring/sdkmodel"
)

func TestTimestamp_Formats_Roundtrip(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		format sdkmodel.TimestampFormat
		wire   string
	}{
		{sdkmodel.ISO8601, "2024-01-01T00:00:00Z"},
		{sdkmodel.RFC822, "Mon, 01 Jan 2024 00:00:00 GMT"},
		{sdkmodel.UnixTimestamp, "1704067200"},
		{sdkmodel.UnixTimestampMillis, "1704067200000"},
	}
	for _, tc := range cases {
		t.Run(tc.format.String(), func(t *testing.T) {
			c := Timestamp(tc.format)
			out, err := c.Encode(ctx, at)
			if err != nil {
				t.Fatalf("encode err: %v", err)
			}
			if out != tc.wire {
				t.Fatalf("encode: got %q want %q", out, tc.wire)
			}
			got, err := c.Decode(ctx, tc.wire)
			if err != nil {
				t.Fatalf("decode err: %v", err)
			}
			if !got.Equal(at) {
				t.Fatalf("decode: got %v want %v", got, at)
			}
		})
	}
}

func TestTimestamp_ISO8601_Fraction(t *testing.T) {
	got, err := Timestamp(sdkmodel.ISO8601).Decode(context.Background(), "2024-01-01T00:00:00.250Z")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if got.Nanosecond() != 250_000_000 {
		t.Fatalf("unexpected nanos: %d", got.Nanosecond())
	}
}

func TestTimestamp_Decode_Invalid(t *testing.T) {
	_, err := Timestamp(sdkmodel.RFC822).Decode(context.Background(), "yesterday")
	iss, ok := sdkmodel.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != sdkmodel.CodeInvalidFormat {
		t.Fatalf("expected invalid_format issue, got %v", err)
	}
	if iss[0].Hint != "RFC_822" {
		t.Fatalf("unexpected hint: %q", iss[0].Hint)
	}
}

func TestEpochSeconds_Millis(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 500_000_000, time.UTC)
	if got := EpochSeconds(at); got != 1704067200.5 {
		t.Fatalf("unexpected seconds: %v", got)
	}
	if back := FromEpochSeconds(1704067200.5); !back.Equal(at) {
		t.Fatalf("unexpected time: %v", back)
	}
}

func TestBase64_Roundtrip(t *testing.T) {
	ctx := context.Background()
	c := Base64()
	s, err := sdkmodel.Encode(ctx, c, []byte("cert"))
	if err != nil || s != "Y2VydA==" {
		t.Fatalf("encode: %q %v", s, err)
	}
	b, err := sdkmodel.Decode(ctx, c, s)
	if err != nil || string(b) != "cert" {
		t.Fatalf("decode: %q %v", b, err)
	}
	if _, err := c.Decode(ctx, "%%%"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
}
