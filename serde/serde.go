// Package serde defines the conversion contract used by the field adaptors
// in this module: a pair of symmetric, fallible transforms between a Source
// type and its portable Destination representation.
package serde

// Serializer converts a Source type into its portable Destination type.
type Serializer[Src any, Dst any] interface {
	Serialize(src Src) (Dst, error)
}

// SerializerFunc is a functional implementation of the Serializer interface.
type SerializerFunc[Src any, Dst any] func(src Src) (Dst, error)

// Serialize implements the serde.Serializer interface.
func (fn SerializerFunc[Src, Dst]) Serialize(src Src) (Dst, error) { return fn(src) }

// AsSerializerFunc casts the given conversion function into a
// compatible Serializer interface type.
func AsSerializerFunc[Src, Dst any](f func(src Src) (Dst, error)) SerializerFunc[Src, Dst] {
	return SerializerFunc[Src, Dst](f)
}

// AsInfallibleSerializerFunc casts a conversion function that cannot fail
// into a compatible Serializer interface type.
func AsInfallibleSerializerFunc[Src, Dst any](f func(src Src) Dst) SerializerFunc[Src, Dst] {
	return SerializerFunc[Src, Dst](func(src Src) (Dst, error) {
		return f(src), nil
	})
}

// Deserializer recovers a Source type from its portable Destination type.
type Deserializer[Src any, Dst any] interface {
	Deserialize(dst Dst) (Src, error)
}

// DeserializerFunc is a functional implementation of the Deserializer interface.
type DeserializerFunc[Src any, Dst any] func(dst Dst) (Src, error)

// Deserialize implements the serde.Deserializer interface.
func (fn DeserializerFunc[Src, Dst]) Deserialize(dst Dst) (Src, error) { return fn(dst) }

// AsDeserializerFunc casts the given conversion function into a
// compatible Deserializer interface type.
func AsDeserializerFunc[Src, Dst any](f func(dst Dst) (Src, error)) DeserializerFunc[Src, Dst] {
	return DeserializerFunc[Src, Dst](f)
}

// AsInfallibleDeserializerFunc casts a conversion function that cannot fail
// into a compatible Deserializer interface type.
func AsInfallibleDeserializerFunc[Src, Dst any](f func(dst Dst) Src) DeserializerFunc[Src, Dst] {
	return DeserializerFunc[Src, Dst](func(dst Dst) (Src, error) {
		return f(dst), nil
	})
}

// Serde groups the symmetric pair of transforms between a Source type and
// its portable Destination type.
//
// Implementations must uphold the round-trip law: for every legal src,
// Deserialize(Serialize(src)) returns a value equal to src.
type Serde[Src any, Dst any] interface {
	Serializer[Src, Dst]
	Deserializer[Src, Dst]
}

// Fused provides a convenient way to fuse together different implementations
// of a Serializer and Deserializer, and use it as a Serde.
type Fused[Src any, Dst any] struct {
	Serializer[Src, Dst]
	Deserializer[Src, Dst]
}

// Fuse combines two given Serializer and Deserializer with compatible types
// and returns a Serde implementation through serde.Fused.
func Fuse[Src, Dst any](serializer Serializer[Src, Dst], deserializer Deserializer[Src, Dst]) Fused[Src, Dst] {
	return Fused[Src, Dst]{
		Serializer:   serializer,
		Deserializer: deserializer,
	}
}
