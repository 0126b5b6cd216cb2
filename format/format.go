// Package format models the downstream serialization format at the point of
// a single field conversion.
//
// A Writer receives exactly one value per conversion, a Reader yields
// exactly one. Both report whether the underlying format is human-readable
// text or binary, which the readability-aware adaptors use to decide
// between base64 framing and the value's native encoding.
package format

// Writer is the sink a field adaptor writes its portable representation to.
type Writer interface {
	// HumanReadable reports whether the format's native representation is
	// human-readable text (e.g. JSON) rather than binary.
	HumanReadable() bool

	// WriteText writes a single text value.
	WriteText(text string) error

	// WriteNative writes a single value using the format's own encoding.
	WriteNative(value any) error
}

// Reader is the source a field adaptor reads a portable representation from.
type Reader interface {
	// HumanReadable reports whether the format's native representation is
	// human-readable text rather than binary.
	HumanReadable() bool

	// ReadText reads a single text value.
	ReadText() (string, error)

	// ReadNative reads a single value using the format's own encoding.
	// The target must be a non-nil pointer.
	ReadNative(target any) error
}
