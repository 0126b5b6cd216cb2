package b64

import (
	"github.com/mintlu8/serde-repr-base64/format"
)

// EncodeIfReadable writes value to w as base64 text when the format is
// human-readable; for binary formats the value's own native encoding is
// used instead, avoiding double-encoding overhead. borrow views the
// container as its element sequence (see SliceOf for slice containers).
func EncodeIfReadable[T any, U Pod](w format.Writer, value T, borrow func(T) []U) error {
	if !w.HumanReadable() {
		return w.WriteNative(value)
	}

	return w.WriteText(encodeElements(borrow(value)))
}

// DecodeIfReadable reads a value from r, expecting base64 text when the
// format is human-readable and the value's native encoding otherwise.
// construct is only consulted on the base64 path; the native path decodes
// directly into the target type.
func DecodeIfReadable[T any, U Pod](r format.Reader, construct func([]U) (T, error)) (T, error) {
	if r.HumanReadable() {
		return Decode(r, construct)
	}

	var value T
	if err := r.ReadNative(&value); err != nil {
		var zeroValue T
		return zeroValue, err
	}

	return value, nil
}
