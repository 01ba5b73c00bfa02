// Package encoding implements the variable-length integer codec used by the
// container wire format.
//
// A varint stores an unsigned 64-bit integer in 1 to 10 bytes. Each byte
// carries 7 value bits, least-significant chunk first, with bit 7 as the
// continuation flag. The encoding is minimal (no byte a value does not
// require) and deterministic, and the decoder reports the exact byte count a
// varint occupied so it can be read out of the front of a larger buffer.
package encoding
