package codec

import (
	"context"
	"encoding/base64"

	"github.com/reoring/sdkmodel"
)

// Base64 returns a Codec between standard base64 text and SDK_BYTES values.
// Blobs use it wherever the wire is textual: JSON payloads and headers.
func Base64() sdkmodel.Codec[string, []byte] { return base64Codec{} }

type base64Codec struct{}

func (base64Codec) Decode(ctx context.Context, a string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(a)
	if err != nil {
		return nil, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidFormat, "base64", err)}
	}
	return b, nil
}

func (base64Codec) Encode(ctx context.Context, b []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(b), nil
}
