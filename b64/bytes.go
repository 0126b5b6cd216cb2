package b64

import (
	"fmt"

	"github.com/mintlu8/serde-repr-base64/format"
	"github.com/mintlu8/serde-repr-base64/serde"
)

// encodeElements re-expresses an element sequence as base64 text.
// Any valid sequence encodes successfully.
func encodeElements[U Pod](elems []U) string {
	return encoding.EncodeToString(byteView(elems))
}

// decodeElements parses base64 text back into a fresh element sequence.
func decodeElements[U Pod](text string) ([]U, error) {
	data, err := encoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not valid base64", ErrMalformedText, text)
	}

	return elementsOf[U](data)
}

// NewBytes returns a Serde that re-expresses a sequence of fixed-width
// plain-data elements as URL-safe base64 text.
func NewBytes[U Pod]() serde.Fused[[]U, string] {
	return serde.Fuse[[]U, string](
		serde.AsInfallibleSerializerFunc(encodeElements[U]),
		serde.AsDeserializerFunc(decodeElements[U]),
	)
}

// Encode writes the element sequence to w as a single base64 text value.
func Encode[U Pod](w format.Writer, elems []U) error {
	return w.WriteText(encodeElements(elems))
}

// Decode reads a single base64 text value from r and rebuilds the target
// container through construct, the container's own fallible
// construction-from-sequence. See AsSlice, AsArray and AsCapped for common
// container shapes.
func Decode[T any, U Pod](r format.Reader, construct func([]U) (T, error)) (T, error) {
	var zeroValue T

	text, err := r.ReadText()
	if err != nil {
		return zeroValue, err
	}

	elems, err := decodeElements[U](text)
	if err != nil {
		return zeroValue, err
	}

	value, err := construct(elems)
	if err != nil {
		return zeroValue, fmt.Errorf("b64: failed to construct target value, %w", err)
	}

	return value, nil
}
