package b64

import (
	"fmt"
	"reflect"
)

// AsSlice returns a constructor that yields the decoded element sequence
// unchanged, for growable slice containers.
func AsSlice[U Pod]() func([]U) ([]U, error) {
	return func(elems []U) ([]U, error) {
		return elems, nil
	}
}

// AsArray returns a constructor that copies the decoded elements into the
// fixed-size array type A, failing when the element count does not match
// the array length.
func AsArray[A any, U Pod]() func([]U) (A, error) {
	return func(elems []U) (A, error) {
		var arr A

		target := reflect.ValueOf(&arr).Elem()
		elemType := reflect.TypeOf((*U)(nil)).Elem()
		if target.Kind() != reflect.Array || target.Type().Elem() != elemType {
			return arr, fmt.Errorf("b64: %v is not an array of %v elements", target.Type(), elemType)
		}

		if target.Len() != len(elems) {
			return arr, fmt.Errorf(
				"%w: target array holds %d elements, decoded %d",
				ErrLengthMismatch, target.Len(), len(elems),
			)
		}

		reflect.Copy(target, reflect.ValueOf(elems))

		return arr, nil
	}
}

// AsCapped returns a constructor for small-capacity containers: the decoded
// element sequence is returned unchanged, but sequences longer than
// capacity are rejected.
func AsCapped[U Pod](capacity int) func([]U) ([]U, error) {
	return func(elems []U) ([]U, error) {
		if len(elems) > capacity {
			return nil, fmt.Errorf(
				"%w: %d elements exceed the container capacity of %d",
				ErrLengthMismatch, len(elems), capacity,
			)
		}

		return elems, nil
	}
}

// AsString returns a constructor that converts decoded text into the
// string-like type T. It never fails; string-like types with their own
// validation should supply a custom constructor instead.
func AsString[T ~string]() func(string) (T, error) {
	return func(value string) (T, error) {
		return T(value), nil
	}
}

// SliceOf views a slice container as its own element sequence, for use as
// the borrow argument of EncodeIfReadable.
func SliceOf[U Pod](elems []U) []U { return elems }
