package compress

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/textpack/errs"
	"github.com/arloliu/textpack/internal/native"
)

// capture takes ownership of a raw primitive's output buffer.
//
// A nil buffer means the native call failed and nothing was allocated.
// Otherwise the bytes are copied into a caller-owned slice and the buffer is
// released back to its pool exactly once, on every path. Nothing may touch
// the buffer after the release.
func capture(buf *native.Buffer) ([]byte, error) {
	if buf == nil {
		return nil, errs.ErrBackendFailure
	}
	defer buf.Release()

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// compressText is the shared compress path: reject NUL bytes, run the raw
// primitive, bridge the result.
func compressText(text string, raw func([]byte) *native.Buffer) ([]byte, error) {
	if strings.IndexByte(text, 0) >= 0 {
		return nil, fmt.Errorf("%w: text contains a NUL byte", errs.ErrInvalidInput)
	}

	payload, err := capture(raw([]byte(text)))
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	return payload, nil
}

// decompressPayload is the shared decompress path: structural checks, raw
// primitive, bridge, length cross-check, UTF-8 validation.
func decompressPayload(payload []byte, sizeHint uint64, minSize int, raw func([]byte, uint64) *native.Buffer) (string, error) {
	if len(payload) < minSize {
		return "", fmt.Errorf("%w: payload is %d bytes, backend needs at least %d",
			errs.ErrInputTooSmall, len(payload), minSize)
	}

	out, err := capture(raw(payload, sizeHint))
	if err != nil {
		return "", fmt.Errorf("decompress: %w", err)
	}

	if uint64(len(out)) != sizeHint {
		return "", fmt.Errorf("%w: decompressed %d bytes, container declared %d",
			errs.ErrBackendFailure, len(out), sizeHint)
	}

	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: %d decompressed bytes", errs.ErrInvalidUTF8, len(out))
	}

	return string(out), nil
}
