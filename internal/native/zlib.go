package native

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// CompressZlib compresses data into a complete zlib stream.
// Returns nil if the stream cannot be produced.
func CompressZlib(data []byte) *Buffer {
	buf := newBuffer()

	zw := zlib.NewWriter(buf.bb)
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		buf.Release()

		return nil
	}

	if err := zw.Close(); err != nil {
		buf.Release()
		return nil
	}

	return buf
}

// DecompressZlib inflates a zlib stream. The zlib trailer makes the stream
// self-describing, so sizeHint only pre-sizes the output buffer and bounds
// how much a lying stream may inflate before the caller's length check.
func DecompressZlib(data []byte, sizeHint uint64) *Buffer {
	if sizeHint > maxDecompressSize {
		return nil
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	defer zr.Close()

	buf := newBuffer()
	buf.bb.Grow(int(sizeHint))

	// Read one byte past the hint so a stream longer than declared is
	// observable by the caller instead of silently truncated.
	if _, err := io.Copy(buf.bb, io.LimitReader(zr, int64(sizeHint)+1)); err != nil { //nolint:gosec
		buf.Release()
		return nil
	}

	return buf
}
