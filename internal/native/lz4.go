package native

import (
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/textpack/internal/pool"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// CompressLZ4 compresses data as a single LZ4 block.
//
// The block format carries no decompressed length, so DecompressLZ4 depends
// entirely on the caller-supplied size hint. Incompressible input, which the
// block compressor reports as a zero-length result, is stored as a
// literal-only block so that every input remains representable.
func CompressLZ4(data []byte) *Buffer {
	buf := newBuffer()
	buf.bb.ExtendOrGrow(lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, buf.bb.B)
	if err != nil {
		buf.Release()
		return nil
	}

	if n == 0 {
		// Incompressible (or empty) input: emit a literal-only block.
		buf.bb.Reset()
		appendLiteralBlock(buf.bb, data)

		return buf
	}

	buf.bb.SetLength(n)

	return buf
}

// DecompressLZ4 decompresses a single LZ4 block into exactly sizeHint bytes.
// The hint is authoritative: it sizes the output buffer, and any block that
// does not fill it exactly is rejected.
func DecompressLZ4(data []byte, sizeHint uint64) *Buffer {
	if sizeHint > maxDecompressSize {
		return nil
	}

	buf := newBuffer()
	buf.bb.ExtendOrGrow(int(sizeHint))

	n, err := lz4.UncompressBlock(data, buf.bb.B)
	if err != nil || uint64(n) != sizeHint { //nolint:gosec
		buf.Release()
		return nil
	}

	buf.bb.SetLength(n)

	return buf
}

// appendLiteralBlock writes src as an LZ4 block consisting of a single
// literal run: a token whose high nibble holds the literal length, optional
// length extension bytes in 255 steps, then the literal bytes themselves.
// The last sequence of a block may legally omit the match part.
func appendLiteralBlock(bb *pool.ByteBuffer, src []byte) {
	n := len(src)
	if n < 15 {
		bb.MustWrite([]byte{byte(n) << 4}) //nolint:gosec
	} else {
		bb.MustWrite([]byte{0xF0})
		for rem := n - 15; ; rem -= 255 {
			if rem < 255 {
				bb.MustWrite([]byte{byte(rem)}) //nolint:gosec
				break
			}
			bb.MustWrite([]byte{0xFF})
		}
	}

	bb.MustWrite(src)
}
