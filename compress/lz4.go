package compress

import "github.com/arloliu/textpack/internal/native"

// lz4MinPayload is the smallest decodable LZ4 block: a single token byte.
const lz4MinPayload = 1

// LZ4Codec adapts the LZ4 block backend.
//
// LZ4 blocks carry no decompressed length, so the container's size hint is
// mandatory and authoritative: it sizes the output buffer, and a block that
// does not fill it exactly fails to decompress.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses text into a single LZ4 block.
func (c LZ4Codec) Compress(text string) ([]byte, error) {
	return compressText(text, native.CompressLZ4)
}

// Decompress decompresses an LZ4 block back into text.
func (c LZ4Codec) Decompress(payload []byte, sizeHint uint64) (string, error) {
	return decompressPayload(payload, sizeHint, lz4MinPayload, native.DecompressLZ4)
}
