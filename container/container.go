package container

import (
	"fmt"

	"github.com/arloliu/textpack/compress"
	"github.com/arloliu/textpack/encoding"
	"github.com/arloliu/textpack/errs"
	"github.com/arloliu/textpack/format"
	"github.com/arloliu/textpack/internal/options"
)

const (
	// minContainerSize is the structural floor for a container: at least one
	// header byte and at least one payload byte.
	minContainerSize = 2

	// DefaultMaxDecompressedSize caps the original length a container header
	// may declare. Headers above it are treated as corrupt before any
	// backend call runs.
	DefaultMaxDecompressedSize = 100 * 1024 * 1024 // 100MiB
)

type unpackConfig struct {
	maxDecompressedSize uint64
}

// Option configures Unpack.
type Option = options.Option[*unpackConfig]

// WithMaxDecompressedSize overrides the cap on the original length a
// container header may declare. n must be positive.
func WithMaxDecompressedSize(n uint64) Option {
	return options.New(func(cfg *unpackConfig) error {
		if n == 0 {
			return fmt.Errorf("max decompressed size must be positive")
		}
		cfg.maxDecompressedSize = n

		return nil
	})
}

// Pack compresses text with the given backend and prefixes the payload with
// the varint-encoded original length.
//
// Compression failures from the codec are returned unchanged.
func Pack(text string, backend format.BackendType) ([]byte, error) {
	codec, err := compress.GetCodec(backend)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(text)
	if err != nil {
		return nil, err
	}

	originalLen := uint64(len(text))
	out := make([]byte, 0, encoding.UvarintLen(originalLen)+len(payload))
	out = encoding.AppendUvarint(out, originalLen)

	return append(out, payload...), nil
}

// Unpack decodes a container produced by Pack with the same backend and
// returns the original text.
//
// Validation happens in order, before any backend call:
//  1. data must meet the 2-byte structural floor (errs.ErrEmptyInput)
//  2. the varint header must decode (errs.ErrCorruptHeader, wrapping the
//     varint error)
//  3. the declared length must not exceed the configured cap
//     (errs.ErrCorruptHeader)
//  4. at least one payload byte must follow the header
//     (errs.ErrInputTooSmall)
//
// The declared length is then handed to the backend codec as its size hint.
func Unpack(data []byte, backend format.BackendType, opts ...Option) (string, error) {
	cfg := &unpackConfig{maxDecompressedSize: DefaultMaxDecompressedSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return "", err
	}

	if len(data) < minContainerSize {
		return "", fmt.Errorf("%w: container needs at least %d bytes, got %d",
			errs.ErrEmptyInput, minContainerSize, len(data))
	}

	originalLen, headerSize, err := encoding.DecodeUvarint(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrCorruptHeader, err)
	}

	if originalLen > cfg.maxDecompressedSize {
		return "", fmt.Errorf("%w: declared length %d exceeds limit %d",
			errs.ErrCorruptHeader, originalLen, cfg.maxDecompressedSize)
	}

	if headerSize >= len(data) {
		return "", fmt.Errorf("%w: no payload after %d-byte header",
			errs.ErrInputTooSmall, headerSize)
	}

	codec, err := compress.GetCodec(backend)
	if err != nil {
		return "", err
	}

	return codec.Decompress(data[headerSize:], originalLen)
}
