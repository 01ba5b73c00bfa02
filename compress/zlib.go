package compress

import "github.com/arloliu/textpack/internal/native"

// zlibMinPayload is the size of the smallest complete zlib stream:
// a 2-byte header, one empty stored block, and the 4-byte Adler-32 trailer.
const zlibMinPayload = 8

// ZlibCodec adapts the zlib (deflate) backend.
//
// The zlib stream carries its own trailer, so the container's size hint is
// advisory; the adapter cross-checks the decompressed length against it.
type ZlibCodec struct{}

var _ Codec = (*ZlibCodec)(nil)

// NewZlibCodec creates a new zlib codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress compresses text into a zlib stream.
func (c ZlibCodec) Compress(text string) ([]byte, error) {
	return compressText(text, native.CompressZlib)
}

// Decompress inflates a zlib stream back into text.
func (c ZlibCodec) Decompress(payload []byte, sizeHint uint64) (string, error) {
	return decompressPayload(payload, sizeHint, zlibMinPayload, native.DecompressZlib)
}
