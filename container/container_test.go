package container

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/textpack/encoding"
	"github.com/arloliu/textpack/errs"
	"github.com/arloliu/textpack/format"
)

var allBackends = []format.BackendType{
	format.BackendZlib,
	format.BackendLZ4,
	format.BackendZstd,
	format.BackendS2,
	format.BackendNone,
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	texts := []string{
		"hello, world",
		"a",
		"Hello, 世界! 🦀 café naïve résumé",
		strings.Repeat("the quick brown fox jumps over the lazy dog ", 500),
	}

	for _, backend := range allBackends {
		t.Run(backend.String(), func(t *testing.T) {
			for _, text := range texts {
				data, err := Pack(text, backend)
				require.NoError(t, err)

				// Header must be the varint of the original length.
				declared, headerSize, err := encoding.DecodeUvarint(data)
				require.NoError(t, err)
				require.Equal(t, uint64(len(text)), declared)
				require.Greater(t, len(data), headerSize)

				got, err := Unpack(data, backend)
				require.NoError(t, err)
				require.Equal(t, text, got)
			}
		})
	}
}

func TestPackUnpack_EmptyText(t *testing.T) {
	// Every real backend emits a complete stream even for empty input, so
	// an empty string survives the round trip: zlib and zstd as an empty
	// frame, LZ4 as a literal-only token, S2 as a zero-length varint.
	backends := []format.BackendType{
		format.BackendZlib,
		format.BackendLZ4,
		format.BackendZstd,
		format.BackendS2,
	}

	for _, backend := range backends {
		t.Run(backend.String(), func(t *testing.T) {
			data, err := Pack("", backend)
			require.NoError(t, err)
			require.Equal(t, byte(0x00), data[0], "empty text encodes a zero-length header")
			require.GreaterOrEqual(t, len(data), 2, "payload must not be empty")

			got, err := Unpack(data, backend)
			require.NoError(t, err)
			require.Equal(t, "", got)
		})
	}
}

func TestPackUnpack_EmptyTextNoOpUnrepresentable(t *testing.T) {
	// The pass-through backend has no framing, so empty text packs into a
	// bare 1-byte header that the structural floor rejects on the way back.
	data, err := Pack("", format.BackendNone)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, data)

	_, err = Unpack(data, format.BackendNone)
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestPack_RejectsEmbeddedNUL(t *testing.T) {
	for _, backend := range allBackends {
		_, err := Pack("hello\x00world", backend)
		require.ErrorIs(t, err, errs.ErrInvalidInput, "backend %s", backend)
	}
}

func TestPack_UnknownBackend(t *testing.T) {
	_, err := Pack("text", format.BackendType(0xFF))
	require.ErrorIs(t, err, errs.ErrUnknownBackend)
}

func TestUnpack_BelowStructuralFloor(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {0x05}} {
		_, err := Unpack(data, format.BackendZlib)
		require.ErrorIs(t, err, errs.ErrEmptyInput, "input %v", data)
	}
}

func TestUnpack_CorruptHeader(t *testing.T) {
	t.Run("truncated varint", func(t *testing.T) {
		_, err := Unpack([]byte{0x80, 0x80}, format.BackendZlib)
		require.ErrorIs(t, err, errs.ErrCorruptHeader)
		require.ErrorIs(t, err, errs.ErrVarintTruncated)
	})

	t.Run("overflowing varint", func(t *testing.T) {
		data := make([]byte, 12)
		for i := range data {
			data[i] = 0xFF
		}

		_, err := Unpack(data, format.BackendZlib)
		require.ErrorIs(t, err, errs.ErrCorruptHeader)
		require.ErrorIs(t, err, errs.ErrVarintOverflow)
	})

	t.Run("declared length above cap", func(t *testing.T) {
		data := encoding.EncodeUvarint(DefaultMaxDecompressedSize + 1)
		data = append(data, 0xAA, 0xBB)

		_, err := Unpack(data, format.BackendZlib)
		require.ErrorIs(t, err, errs.ErrCorruptHeader)
	})
}

func TestUnpack_OverwrittenHeaderNeverSilentlySucceeds(t *testing.T) {
	text := strings.Repeat("fuzz hardening target ", 10)

	for _, backend := range allBackends {
		data, err := Pack(text, backend)
		require.NoError(t, err)

		data[0] = 0xFF
		data[1] = 0xFF

		_, err = Unpack(data, backend)
		require.Error(t, err, "backend %s must reject a clobbered header", backend)
	}
}

func TestUnpack_HeaderWithoutPayload(t *testing.T) {
	// A valid 2-byte varint header with nothing after it.
	data := encoding.EncodeUvarint(300)
	require.Len(t, data, 2)

	_, err := Unpack(data, format.BackendZlib)
	require.ErrorIs(t, err, errs.ErrInputTooSmall)
}

func TestUnpack_MaxDecompressedSizeOption(t *testing.T) {
	text := strings.Repeat("x", 100)
	data, err := Pack(text, format.BackendZstd)
	require.NoError(t, err)

	_, err = Unpack(data, format.BackendZstd, WithMaxDecompressedSize(99))
	require.ErrorIs(t, err, errs.ErrCorruptHeader)

	got, err := Unpack(data, format.BackendZstd, WithMaxDecompressedSize(100))
	require.NoError(t, err)
	require.Equal(t, text, got)
}

func TestUnpack_InvalidOption(t *testing.T) {
	data, err := Pack("text", format.BackendZlib)
	require.NoError(t, err)

	_, err = Unpack(data, format.BackendZlib, WithMaxDecompressedSize(0))
	require.Error(t, err)
}

func TestUnpack_MixedBackendFails(t *testing.T) {
	// The format carries no backend tag; unpacking with a different
	// backend is a caller error that surfaces as a decode failure for
	// these pairings.
	data, err := Pack("mixing backends is a caller error", format.BackendZlib)
	require.NoError(t, err)

	_, err = Unpack(data, format.BackendZstd)
	require.Error(t, err)
}
