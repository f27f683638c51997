package protocol

import (
	"context"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/reoring/sdkmodel"
)

// cborEnc uses Core Deterministic Encoding with timestamps as tag 1, so
// equal values always produce identical bytes.
var cborEnc cbor.EncMode

// cborDec decodes maps under any into map[string]any and tag 0/1 into
// time.Time.
var cborDec cbor.DecMode

func init() {
	var err error

	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeUnixDynamic
	opts.TimeTag = cbor.EncTagRequired
	cborEnc, err = opts.EncMode()
	if err != nil {
		panic("protocol: CBOR encoder initialization failed: " + err.Error())
	}

	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		TimeTagToAny:   cbor.TimeTagToTime,
	}.DecMode()
	if err != nil {
		panic("protocol: CBOR decoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes the PAYLOAD fields of obj as a CBOR map.
func MarshalCBOR(ctx context.Context, obj sdkmodel.Object) ([]byte, error) {
	doc, err := encoder{wire: CBOR}.object(ctx, obj)
	if err != nil {
		return nil, err
	}
	return cborEnc.Marshal(doc)
}

// UnmarshalCBOR decodes a CBOR map into the PAYLOAD fields of b.
func UnmarshalCBOR(ctx context.Context, data []byte, b sdkmodel.AnyBuilder) error {
	var doc map[string]any
	if err := cborDec.Unmarshal(data, &doc); err != nil {
		return sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeParseError, "cbor", err)}
	}
	return decoder{wire: CBOR}.object(ctx, b, doc)
}

// DiagnoseCBOR renders data in CBOR diagnostic notation.
func DiagnoseCBOR(data []byte) (string, error) { return cbor.Diagnose(data) }
