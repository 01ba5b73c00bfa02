package encoding

import (
	"fmt"

	"github.com/arloliu/textpack/errs"
)

// MaxVarintLen is the maximum number of bytes a varint-encoded uint64 can
// occupy: ceil(64 / 7) = 10.
const MaxVarintLen = 10

// AppendUvarint appends the varint encoding of value to dst and returns the
// extended slice.
//
// Encoding format:
//   - Each byte carries 7 value bits in bits 6..0, least-significant chunk first
//   - Bit 7 is the continuation bit: set on every byte except the last
//   - At least one byte is always emitted, even for value 0
//
// The encoding is minimal and deterministic: the output length is exactly
// ceil(bitlength(value)/7) bytes (minimum 1, maximum MaxVarintLen), and
// repeated calls with the same value produce identical bytes.
func AppendUvarint(dst []byte, value uint64) []byte {
	for value >= 0x80 {
		dst = append(dst, byte(value)|0x80)
		value >>= 7
	}

	return append(dst, byte(value))
}

// EncodeUvarint returns the varint encoding of value as a new slice.
func EncodeUvarint(value uint64) []byte {
	return AppendUvarint(make([]byte, 0, MaxVarintLen), value)
}

// UvarintLen returns the number of bytes EncodeUvarint emits for value.
func UvarintLen(value uint64) int {
	n := 1
	for value >= 0x80 {
		value >>= 7
		n++
	}

	return n
}

// DecodeUvarint decodes a varint from the beginning of buf.
//
// On success it returns the decoded value and the exact number of bytes the
// varint occupied, which is not necessarily len(buf): trailing bytes beyond
// the terminating byte are never inspected, so callers can decode a varint
// embedded in a larger buffer and continue parsing right after it.
//
// Failure modes:
//   - errs.ErrEmptyInput: buf is empty
//   - errs.ErrVarintTruncated: every byte in buf has the continuation bit set
//   - errs.ErrVarintOverflow: more than MaxVarintLen bytes carry the
//     continuation bit (a malicious all-continuation stream)
func DecodeUvarint(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, fmt.Errorf("%w: cannot decode varint", errs.ErrEmptyInput)
	}

	var value uint64
	var shift uint

	for i, b := range buf {
		if i >= MaxVarintLen {
			return 0, 0, fmt.Errorf("%w: no terminator within %d bytes", errs.ErrVarintOverflow, MaxVarintLen)
		}

		value |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}

	return 0, 0, fmt.Errorf("%w: continuation bit set at end of %d-byte input", errs.ErrVarintTruncated, len(buf))
}
