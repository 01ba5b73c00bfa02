package compress

import (
	"fmt"

	"github.com/arloliu/textpack/errs"
	"github.com/arloliu/textpack/format"
)

// Compressor compresses UTF-8 text into backend-specific payload bytes.
type Compressor interface {
	// Compress compresses text and returns the compressed payload.
	//
	// Fails with errs.ErrInvalidInput if the text contains a NUL byte, and
	// with errs.ErrBackendFailure if the native backend produced no output.
	// The returned slice is newly allocated and owned by the caller.
	Compress(text string) ([]byte, error)
}

// Decompressor restores text from backend-specific payload bytes.
type Decompressor interface {
	// Decompress decompresses payload back into text. sizeHint is the
	// original text length in bytes, as recorded by the container header.
	//
	// Fails with errs.ErrInputTooSmall for payloads below the backend's
	// minimum viable stream size, errs.ErrBackendFailure if the native
	// backend rejected the payload or produced a length other than
	// sizeHint, and errs.ErrInvalidUTF8 if the output is not valid text.
	Decompress(payload []byte, sizeHint uint64) (string, error)
}

// Codec combines both directions for one backend.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// backend.
//
// Parameters:
//   - backend: Backend type (Zlib, LZ4, Zstd, S2, or None)
//   - target: Description of target usage (for error messages)
func CreateCodec(backend format.BackendType, target string) (Codec, error) {
	switch backend {
	case format.BackendZlib:
		return NewZlibCodec(), nil
	case format.BackendLZ4:
		return NewLZ4Codec(), nil
	case format.BackendZstd:
		return NewZstdCodec(), nil
	case format.BackendS2:
		return NewS2Codec(), nil
	case format.BackendNone:
		return NewNoOpCodec(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s backend: %s", errs.ErrUnknownBackend, target, backend)
	}
}

var builtinCodecs = map[format.BackendType]Codec{
	format.BackendZlib: NewZlibCodec(),
	format.BackendLZ4:  NewLZ4Codec(),
	format.BackendZstd: NewZstdCodec(),
	format.BackendS2:   NewS2Codec(),
	format.BackendNone: NewNoOpCodec(),
}

// GetCodec retrieves a built-in Codec for the specified backend.
func GetCodec(backend format.BackendType) (Codec, error) {
	if codec, ok := builtinCodecs[backend]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownBackend, backend)
}
