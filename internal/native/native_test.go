package native

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureAndRelease copies a buffer's contents and releases it, the same
// sequence the compress bridge performs.
func captureAndRelease(t *testing.T, buf *Buffer) []byte {
	t.Helper()
	require.NotNil(t, buf)
	defer buf.Release()

	return bytes.Clone(buf.Bytes())
}

// incompressibleData returns deterministic pseudo-random bytes that the LZ4
// block compressor cannot shrink.
func incompressibleData(size int) []byte {
	rng := rand.New(rand.NewSource(42)) //nolint:gosec
	data := make([]byte, size)
	rng.Read(data)

	return data
}

func TestBuffer_ReleaseTwice(t *testing.T) {
	buf := CompressZlib([]byte("release me"))
	require.NotNil(t, buf)

	buf.Release()
	require.NotPanics(t, func() { buf.Release() })

	var nilBuf *Buffer
	require.NotPanics(t, func() { nilBuf.Release() })
}

func TestZlib_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte(strings.Repeat("compress me ", 200)),
		incompressibleData(512),
	}

	for _, input := range inputs {
		compressed := captureAndRelease(t, CompressZlib(input))
		require.NotEmpty(t, compressed)

		out := DecompressZlib(compressed, uint64(len(input)))
		got := captureAndRelease(t, out)
		require.Equal(t, input, got)
	}
}

func TestZlib_DecompressGarbage(t *testing.T) {
	require.Nil(t, DecompressZlib([]byte("definitely not zlib"), 16))
}

func TestLZ4_RoundTrip(t *testing.T) {
	input := []byte(strings.Repeat("block codec block codec ", 100))

	compressed := captureAndRelease(t, CompressLZ4(input))
	require.NotEmpty(t, compressed)
	require.Less(t, len(compressed), len(input))

	got := captureAndRelease(t, DecompressLZ4(compressed, uint64(len(input))))
	require.Equal(t, input, got)
}

func TestLZ4_WrongHintRejected(t *testing.T) {
	input := []byte(strings.Repeat("hint sensitive ", 50))
	compressed := captureAndRelease(t, CompressLZ4(input))

	// The block has no embedded length; a wrong hint must not decode.
	require.Nil(t, DecompressLZ4(compressed, uint64(len(input))+1))
	require.Nil(t, DecompressLZ4(compressed, uint64(len(input))-1))
}

func TestLZ4_LiteralFallback(t *testing.T) {
	// Sizes chosen to cover every literal-length shape: empty block, short
	// token-only length, the 15-byte extension boundary, and a length that
	// needs a full 0xFF extension byte.
	for _, size := range []int{0, 1, 14, 15, 269, 270, 400} {
		input := incompressibleData(size)

		compressed := captureAndRelease(t, CompressLZ4(input))
		require.NotEmpty(t, compressed, "size %d", size)

		got := captureAndRelease(t, DecompressLZ4(compressed, uint64(size)))
		require.Equal(t, input, got, "size %d", size)
	}
}

func TestZstd_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte(""),
		[]byte("frame codec"),
		incompressibleData(2048),
	}

	for _, input := range inputs {
		compressed := captureAndRelease(t, CompressZstd(input))
		require.NotEmpty(t, compressed)

		got := captureAndRelease(t, DecompressZstd(compressed, uint64(len(input))))
		require.Equal(t, input, got)
	}
}

func TestZstd_DecompressGarbage(t *testing.T) {
	require.Nil(t, DecompressZstd([]byte("not a zstd frame at all"), 16))
}

func TestS2_RoundTrip(t *testing.T) {
	input := []byte(strings.Repeat("s2 block data ", 300))

	compressed := captureAndRelease(t, CompressS2(input))
	require.NotEmpty(t, compressed)

	got := captureAndRelease(t, DecompressS2(compressed, uint64(len(input))))
	require.Equal(t, input, got)
}

func TestS2_DecompressGarbage(t *testing.T) {
	require.Nil(t, DecompressS2([]byte{0xFF, 0xFF, 0xFF, 0xFF}, 16))
}

func TestNone_RoundTrip(t *testing.T) {
	input := []byte("pass through unchanged")

	compressed := captureAndRelease(t, CompressNone(input))
	require.Equal(t, input, compressed)

	got := captureAndRelease(t, DecompressNone(compressed, uint64(len(input))))
	require.Equal(t, input, got)
}

func TestDecompress_HintAboveAllocationCap(t *testing.T) {
	payload := captureAndRelease(t, CompressZlib([]byte("small")))

	require.Nil(t, DecompressZlib(payload, maxDecompressSize+1))
	require.Nil(t, DecompressLZ4(payload, maxDecompressSize+1))
	require.Nil(t, DecompressZstd(payload, maxDecompressSize+1))
	require.Nil(t, DecompressS2(payload, maxDecompressSize+1))
}
