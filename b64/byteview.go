package b64

import (
	"fmt"
	"unsafe"
)

// byteView aliases the memory of elems as a flat byte sequence.
// The view borrows the slice's backing array and must not outlive it.
func byteView[U Pod](elems []U) []byte {
	if len(elems) == 0 {
		return nil
	}

	size := len(elems) * int(unsafe.Sizeof(elems[0]))

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(elems))), size)
}

// elementsOf rebuilds a freshly-allocated element sequence from raw bytes.
// The byte length must be an exact multiple of the element width.
func elementsOf[U Pod](data []byte) ([]U, error) {
	var zero U

	width := int(unsafe.Sizeof(zero))
	if len(data)%width != 0 {
		return nil, fmt.Errorf(
			"%w: %d bytes cannot be divided into %d-byte elements",
			ErrLengthMismatch, len(data), width,
		)
	}

	elems := make([]U, len(data)/width)
	copy(byteView(elems), data)

	return elems, nil
}
