package compress

import "github.com/arloliu/textpack/internal/native"

// zstdMinPayload is the length of the zstd frame magic number; nothing
// shorter can be the start of a valid frame.
const zstdMinPayload = 4

// ZstdCodec adapts the Zstandard frame backend.
//
// The frame header embeds a content size of its own, but the adapter keys
// off the container's external size hint so that all backends share one code
// path; the hint is cross-checked against the decoded length.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Compress compresses text into a zstd frame.
func (c ZstdCodec) Compress(text string) ([]byte, error) {
	return compressText(text, native.CompressZstd)
}

// Decompress decompresses a zstd frame back into text.
func (c ZstdCodec) Decompress(payload []byte, sizeHint uint64) (string, error) {
	return decompressPayload(payload, sizeHint, zstdMinPayload, native.DecompressZstd)
}
