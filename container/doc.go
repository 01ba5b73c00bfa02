// Package container implements the length-prefixed wire format that wraps
// backend-compressed payloads:
//
//	container := varint(original_length) payload
//
// The varint header records the uncompressed text length, which doubles as
// the decompression size hint for backends whose native format does not
// describe its own output size. The format carries no backend identifier:
// a container must be unpacked with the same backend that packed it, and
// mixing backends is a caller error the format cannot detect.
package container
