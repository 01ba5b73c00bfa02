package native

// CompressNone copies data unchanged. It exists so the pass-through backend
// exercises the same ownership protocol as the real ones.
func CompressNone(data []byte) *Buffer {
	buf := newBuffer()
	buf.bb.MustWrite(data)

	return buf
}

// DecompressNone copies data unchanged. sizeHint is ignored; the caller's
// length check still applies.
func DecompressNone(data []byte, _ uint64) *Buffer {
	buf := newBuffer()
	buf.bb.MustWrite(data)

	return buf
}
