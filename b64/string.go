package b64

import (
	"fmt"
	"unicode/utf8"

	"github.com/mintlu8/serde-repr-base64/format"
	"github.com/mintlu8/serde-repr-base64/serde"
)

// encodeText re-expresses a string's UTF-8 bytes as base64 text.
func encodeText(value string) string {
	return encoding.EncodeToString([]byte(value))
}

// decodeText parses base64 text and validates the decoded bytes as UTF-8.
func decodeText(text string) (string, error) {
	data, err := encoding.DecodeString(text)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not valid base64", ErrMalformedText, text)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: decoded bytes are not valid utf-8 text", ErrInvalidUTF8)
	}

	return string(data), nil
}

// NewString returns a Serde that re-expresses a string-like value as the
// base64 encoding of its UTF-8 bytes. It is built as a two-stage chain:
// target type to plain string, then plain string to base64 text.
func NewString[T ~string]() serde.Chained[T, string, string] {
	return serde.Chain[T, string, string](
		serde.Fuse[T, string](
			serde.AsInfallibleSerializerFunc(func(value T) string { return string(value) }),
			serde.AsDeserializerFunc(AsString[T]()),
		),
		serde.Fuse[string, string](
			serde.AsInfallibleSerializerFunc(encodeText),
			serde.AsDeserializerFunc(decodeText),
		),
	)
}

// EncodeString writes the value's UTF-8 bytes to w as a single base64 text
// value, regardless of the format's readability.
func EncodeString[T ~string](w format.Writer, value T) error {
	return w.WriteText(encodeText(string(value)))
}

// DecodeString reads a single base64 text value from r, validates the
// decoded bytes as UTF-8, and rebuilds the target through construct, the
// string-like type's own fallible construction-from-text. Construction
// errors are propagated with their original message.
func DecodeString[T any](r format.Reader, construct func(string) (T, error)) (T, error) {
	var zeroValue T

	text, err := r.ReadText()
	if err != nil {
		return zeroValue, err
	}

	value, err := decodeText(text)
	if err != nil {
		return zeroValue, err
	}

	target, err := construct(value)
	if err != nil {
		return zeroValue, fmt.Errorf("b64: failed to construct target value, %w", err)
	}

	return target, nil
}
