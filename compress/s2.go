package compress

import "github.com/arloliu/textpack/internal/native"

// s2MinPayload is the smallest decodable S2 block: the decoded-length varint.
const s2MinPayload = 1

// S2Codec adapts the S2 block backend.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress compresses text into a single S2 block.
func (c S2Codec) Compress(text string) ([]byte, error) {
	return compressText(text, native.CompressS2)
}

// Decompress decompresses an S2 block back into text.
func (c S2Codec) Decompress(payload []byte, sizeHint uint64) (string, error) {
	return decompressPayload(payload, sizeHint, s2MinPayload, native.DecompressS2)
}
