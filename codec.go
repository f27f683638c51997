package sdkmodel

import "context"

// Codec converts between a wire representation A and a field value B.
// Protocol bindings use codecs for timestamps and blobs.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // wire -> value
	Encode(ctx context.Context, b B) (A, error) // value -> wire
}

// Decode is a convenience wrapper over Codec.Decode.
func Decode[A, B any](ctx context.Context, c Codec[A, B], a A) (B, error) {
	return c.Decode(ctx, a)
}

// Encode is a convenience wrapper over Codec.Encode.
func Encode[A, B any](ctx context.Context, c Codec[A, B], b B) (A, error) {
	return c.Encode(ctx, b)
}
