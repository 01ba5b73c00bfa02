// Package compress provides the per-backend codec adapters behind textpack
// containers.
//
// Each adapter exposes the same two operations over one native backend:
//
//	type Compressor interface {
//	    Compress(text string) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(payload []byte, sizeHint uint64) (string, error)
//	}
//
// Compress validates that the text carries no NUL byte (the native backends
// take NUL-terminated input and cannot represent embedded zeros), runs the raw
// primitive, and hands the result through the ownership bridge. Decompress
// runs the raw primitive with the caller's size hint, bridges the result,
// verifies the decompressed length against the hint, and validates the bytes
// as UTF-8 before returning them as text.
//
// The size hint matters differently per backend:
//   - Zlib: the stream self-describes its end; the hint is advisory and
//     cross-checked after the fact
//   - LZ4: the block format has no embedded length; the hint is mandatory and
//     authoritative, and a wrong hint is a decode failure
//   - Zstd: the frame embeds a content size, but the adapter still keys off
//     the external hint so all backends share one code path
//   - S2: the block embeds the decoded length; the hint pre-sizes the buffer
//     and is cross-checked
//
// All codecs are stateless values and safe for concurrent use; pooled
// encoder and decoder state lives behind sync.Pool in the native layer.
package compress
