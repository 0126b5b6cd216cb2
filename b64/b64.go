// Package b64 contains field-level conversion adaptors that re-express a
// field's byte content as URL-safe base64 text.
//
// Three adaptors are provided:
//
//   - Encode/Decode convert any sequence of fixed-width plain-data elements
//     to and from base64 text, unconditionally.
//   - EncodeIfReadable/DecodeIfReadable apply base64 only when the active
//     format is human-readable; binary formats keep the value's native
//     encoding.
//   - EncodeString/DecodeString re-express a string's UTF-8 bytes as base64
//     text.
//
// Every adaptor is a pure, stateless transform: encode-then-decode
// reproduces the original value exactly, or decoding fails with a
// descriptive error.
package b64

import (
	"encoding/base64"
	"errors"
)

// encoding is the wire alphabet for all portable text produced by this
// package: URL-safe base64 with padding. The decoder accepts exactly what
// the encoder emits.
var encoding = base64.URLEncoding

var (
	// ErrMalformedText is returned when input text is not valid base64.
	ErrMalformedText = errors.New("b64: malformed base64 text")

	// ErrLengthMismatch is returned when a decoded byte sequence cannot be
	// divided into elements of the requested width, or when the element
	// count does not fit the target container.
	ErrLengthMismatch = errors.New("b64: length mismatch")

	// ErrInvalidUTF8 is returned when decoded bytes are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("b64: invalid utf-8")
)

// Pod constrains the element types whose in-memory representation is a
// fixed-width run of bytes with no padding and no invalid bit patterns,
// and which are therefore safe to view as raw bytes.
//
// Multi-byte elements are laid out in native byte order; the portable
// representation carries no cross-endianness guarantee.
type Pod interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}
