//go:build !gozstd

package native

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// "The decoder has been designed to operate without allocations after a warmup.
// This means that you should store the decoder for best performance."
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for reuse to eliminate allocation overhead.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),  // Disable CRC for performance
			zstd.WithZeroFrames(true),   // Empty input still emits a complete frame
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// CompressZstd compresses data into a complete zstd frame using a pooled
// encoder.
func CompressZstd(data []byte) *Buffer {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	buf := newBuffer()
	// EncodeAll is stateless - safe to use with pooled encoder
	buf.bb.B = encoder.EncodeAll(data, buf.bb.B[:0])

	return buf
}

// DecompressZstd decompresses a zstd frame using a pooled decoder. The frame
// self-describes its content size; sizeHint only pre-sizes the output buffer.
func DecompressZstd(data []byte, sizeHint uint64) *Buffer {
	if sizeHint > maxDecompressSize {
		return nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	buf := newBuffer()
	buf.bb.Grow(int(sizeHint))

	// DecodeAll is stateless - safe to use with pooled decoder.
	// Even if this call fails, the decoder can be reused for next call.
	out, err := decoder.DecodeAll(data, buf.bb.B[:0])
	if err != nil {
		buf.Release()
		return nil
	}

	buf.bb.B = out

	return buf
}
