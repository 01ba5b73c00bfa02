//go:build gozstd

package native

import (
	"github.com/valyala/gozstd"
)

// CompressZstd compresses data into a complete zstd frame via the cgo
// bindings to libzstd.
func CompressZstd(data []byte) *Buffer {
	buf := newBuffer()
	buf.bb.B = gozstd.CompressLevel(buf.bb.B[:0], data, 3)

	return buf
}

// DecompressZstd decompresses a zstd frame via the cgo bindings. The frame
// self-describes its content size; sizeHint only pre-sizes the output buffer.
func DecompressZstd(data []byte, sizeHint uint64) *Buffer {
	if sizeHint > maxDecompressSize {
		return nil
	}

	buf := newBuffer()
	buf.bb.Grow(int(sizeHint))

	out, err := gozstd.Decompress(buf.bb.B[:0], data)
	if err != nil {
		buf.Release()
		return nil
	}

	buf.bb.B = out

	return buf
}
