package protocol

import (
	"bytes"
	"context"

	json "github.com/goccy/go-json"

	"github.com/reoring/sdkmodel"
)

// MarshalJSON encodes the PAYLOAD fields of obj as a JSON object. Timestamps
// default to epoch seconds.
func MarshalJSON(ctx context.Context, obj sdkmodel.Object) ([]byte, error) {
	doc, err := encoder{wire: JSON}.object(ctx, obj)
	if err != nil {
		return nil, err
	}
	return jsonMarshal(doc)
}

func jsonMarshal(doc map[string]any) ([]byte, error) {
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeInvalidFormat, "json", err)}
	}
	return out, nil
}

// UnmarshalJSON decodes a JSON object into the PAYLOAD fields of b. Members
// absent from data leave the builder untouched; null clears the field.
func UnmarshalJSON(ctx context.Context, data []byte, b sdkmodel.AnyBuilder) error {
	doc, err := decodeJSONDocument(data)
	if err != nil {
		return err
	}
	return decoder{wire: JSON}.object(ctx, b, doc)
}

// UnmarshalJSONMembers decodes a JSON object keyed by member name into every
// field of b, whatever its location. Timestamps without a pinned format are
// read as ISO 8601 strings or epoch seconds. Tools use it for hand-written
// inputs.
func UnmarshalJSONMembers(ctx context.Context, data []byte, b sdkmodel.AnyBuilder) error {
	doc, err := decodeJSONDocument(data)
	if err != nil {
		return err
	}
	return decoder{wire: JSON, byMember: true}.object(ctx, b, doc)
}

// decodeJSONDocument rejects duplicate object keys before decoding.
func decodeJSONDocument(data []byte) (map[string]any, error) {
	if iss := duplicateKeys(data); len(iss) > 0 {
		return nil, iss
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, sdkmodel.Issues{sdkmodel.NewIssue("/", sdkmodel.CodeParseError, "json", err)}
	}
	return doc, nil
}
