package native

import "github.com/klauspost/compress/s2"

// CompressS2 compresses data as a single S2 block.
func CompressS2(data []byte) *Buffer {
	buf := newBuffer()
	buf.bb.ExtendOrGrow(s2.MaxEncodedLen(len(data)))
	buf.bb.B = s2.Encode(buf.bb.B, data)

	return buf
}

// DecompressS2 decompresses a single S2 block. sizeHint pre-sizes the output
// buffer; the block itself carries the decoded length.
func DecompressS2(data []byte, sizeHint uint64) *Buffer {
	if sizeHint > maxDecompressSize {
		return nil
	}

	buf := newBuffer()
	buf.bb.ExtendOrGrow(int(sizeHint))

	out, err := s2.Decode(buf.bb.B, data)
	if err != nil {
		buf.Release()
		return nil
	}

	buf.bb.B = out

	return buf
}
