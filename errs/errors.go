// Package errs defines the sentinel errors shared across textpack packages.
//
// Every failure surfaced by the library wraps one of these values, so callers
// can classify errors with errors.Is without parsing messages.
package errs

import "errors"

var (
	// ErrEmptyInput indicates the input was empty or below the container's
	// structural minimum of a 1-byte header plus a 1-byte payload.
	ErrEmptyInput = errors.New("input is empty or too short")

	// ErrInputTooSmall indicates a payload shorter than the backend's
	// minimum viable compressed stream.
	ErrInputTooSmall = errors.New("payload too small")

	// ErrInvalidInput indicates input text the backend cannot carry,
	// such as an embedded NUL byte.
	ErrInvalidInput = errors.New("invalid input text")

	// ErrBackendFailure indicates the raw backend call failed and
	// returned no buffer.
	ErrBackendFailure = errors.New("backend failure")

	// ErrCorruptHeader indicates the container's varint length header
	// could not be decoded.
	ErrCorruptHeader = errors.New("corrupt container header")

	// ErrInvalidUTF8 indicates decompressed bytes that are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("decompressed data is not valid UTF-8")

	// ErrVarintTruncated indicates a varint whose continuation bit never
	// cleared before the end of the buffer.
	ErrVarintTruncated = errors.New("truncated varint")

	// ErrVarintOverflow indicates a varint occupying more bytes than a
	// 64-bit value can require.
	ErrVarintOverflow = errors.New("varint overflows 64 bits")

	// ErrUnknownBackend indicates an unrecognized backend type.
	ErrUnknownBackend = errors.New("unknown compression backend")
)
