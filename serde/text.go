package serde

// TextSerializer is a specialized Serializer to serialize a Source type
// into a text string.
type TextSerializer[Src any] interface {
	Serializer[Src, string]
}

// TextDeserializer is a specialized Deserializer to deserialize a Source type
// from a text string.
type TextDeserializer[Src any] interface {
	Deserializer[Src, string]
}

// Text is a Serde implementation used to serialize a Source type to and
// deserialize it from a text string. The base64 field adaptors in this
// module all produce Text serdes.
type Text[Src any] interface {
	Serde[Src, string]
}

// BytesSerializer is a specialized Serializer to serialize a Source type
// into a byte array.
type BytesSerializer[Src any] interface {
	Serializer[Src, []byte]
}

// BytesDeserializer is a specialized Deserializer to deserialize a Source type
// from a byte array.
type BytesDeserializer[Src any] interface {
	Deserializer[Src, []byte]
}

// Bytes is a Serde implementation used to serialize a Source type to and
// deserialize it from a byte array.
type Bytes[Src any] interface {
	Serde[Src, []byte]
}
