package native

import "github.com/arloliu/textpack/internal/pool"

// maxDecompressSize bounds the output any primitive will allocate for a
// single decompression, independent of the container-level limit.
const maxDecompressSize = 1 << 31

// Buffer is the output of a raw primitive: pooled storage whose ownership
// transfers to the caller exactly once.
//
// After Release the buffer must not be read or released again; the backing
// storage may already be serving another call.
type Buffer struct {
	bb *pool.ByteBuffer
}

func newBuffer() *Buffer {
	return &Buffer{bb: pool.GetNativeBuffer()}
}

// Bytes returns the buffer contents. Only valid before Release.
func (b *Buffer) Bytes() []byte {
	return b.bb.Bytes()
}

// Len returns the number of bytes held by the buffer.
func (b *Buffer) Len() int {
	return b.bb.Len()
}

// Release returns the backing storage to the pool. Calling Release more
// than once is a no-op; the first call is the one that transfers ownership
// back.
func (b *Buffer) Release() {
	if b == nil || b.bb == nil {
		return
	}

	pool.PutNativeBuffer(b.bb)
	b.bb = nil
}
