package compress

import "github.com/arloliu/textpack/internal/native"

// NoOpCodec is a pass-through backend: the payload is the text itself.
//
// It is useful for baselines and for exercising the container and bridge
// paths without a real compression library in the way. It is not exposed on
// the textpack facade.
//
// Unlike the real backends, NoOp has no framing: empty text yields an empty
// payload, which the container's 2-byte structural floor cannot carry. Only
// non-empty text round-trips through a None-backend container.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the text bytes unchanged.
func (c NoOpCodec) Compress(text string) ([]byte, error) {
	return compressText(text, native.CompressNone)
}

// Decompress returns the payload bytes unchanged, still subject to the
// length cross-check and UTF-8 validation.
func (c NoOpCodec) Decompress(payload []byte, sizeHint uint64) (string, error) {
	return decompressPayload(payload, sizeHint, 1, native.DecompressNone)
}
