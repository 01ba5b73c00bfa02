// Package textpack compresses text into self-describing byte containers and
// restores it.
//
// A container is the varint-encoded original text length followed by the
// compressed payload of one backend:
//
//	container := varint(original_length) payload
//
// The length header gives every backend a uniform decompression path: block
// codecs that cannot recover the output size from their own format get it
// from the header, and self-describing codecs are cross-checked against it.
//
// # Basic Usage
//
//	import "github.com/arloliu/textpack"
//
//	data, err := textpack.CompressZstd("hello, world")
//	if err != nil {
//	    return err
//	}
//
//	text, err := textpack.DecompressZstd(data)
//	if err != nil {
//	    return err
//	}
//
// The format stores no backend identifier, so a container must be
// decompressed with the same backend that produced it. Decompressing with
// the wrong backend fails at best and misinterprets bytes at worst; keeping
// the pairing straight is the caller's responsibility.
//
// All failures are typed: wrap checks with errors.Is against the sentinel
// values in the errs package.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the container
// package. For fine-grained control (size caps, direct codec access), use
// the container and compress packages directly.
package textpack

import (
	"github.com/arloliu/textpack/container"
	"github.com/arloliu/textpack/encoding"
	"github.com/arloliu/textpack/format"
)

// Compress compresses text into a container using the given backend.
func Compress(text string, backend format.BackendType) ([]byte, error) {
	return container.Pack(text, backend)
}

// Decompress restores text from a container produced with the same backend.
func Decompress(data []byte, backend format.BackendType) (string, error) {
	return container.Unpack(data, backend)
}

// CompressZlib compresses text into a zlib-backed container.
func CompressZlib(text string) ([]byte, error) {
	return container.Pack(text, format.BackendZlib)
}

// DecompressZlib restores text from a zlib-backed container.
func DecompressZlib(data []byte) (string, error) {
	return container.Unpack(data, format.BackendZlib)
}

// CompressLZ4 compresses text into an LZ4-backed container.
func CompressLZ4(text string) ([]byte, error) {
	return container.Pack(text, format.BackendLZ4)
}

// DecompressLZ4 restores text from an LZ4-backed container.
func DecompressLZ4(data []byte) (string, error) {
	return container.Unpack(data, format.BackendLZ4)
}

// CompressZstd compresses text into a zstd-backed container.
func CompressZstd(text string) ([]byte, error) {
	return container.Pack(text, format.BackendZstd)
}

// DecompressZstd restores text from a zstd-backed container.
func DecompressZstd(data []byte) (string, error) {
	return container.Unpack(data, format.BackendZstd)
}

// CompressS2 compresses text into an S2-backed container.
func CompressS2(text string) ([]byte, error) {
	return container.Pack(text, format.BackendS2)
}

// DecompressS2 restores text from an S2-backed container.
func DecompressS2(data []byte) (string, error) {
	return container.Unpack(data, format.BackendS2)
}

// EncodeVarint encodes value with the container header's varint codec.
func EncodeVarint(value uint64) []byte {
	return encoding.EncodeUvarint(value)
}

// DecodeVarint decodes a varint from the beginning of buf, returning the
// value and the number of bytes it occupied.
func DecodeVarint(buf []byte) (uint64, int, error) {
	return encoding.DecodeUvarint(buf)
}
