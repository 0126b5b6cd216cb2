// Package serderepr provides field-level base64 conversion adaptors for
// structured-data serialization.
//
// The library re-expresses the byte content of a single field as URL-safe
// base64 text when crossing a serialization boundary, so binary payloads,
// numeric arrays and UTF-8 strings survive textual formats (such as JSON)
// with exact byte fidelity.
//
// The packages are:
//
//   - `serde` defines the generic conversion contract (Serializer,
//     Deserializer, Serde) the adaptors plug into.
//   - `format` defines the single-value Writer and Reader sinks and their
//     textual (JSON) and binary (msgpack) implementations.
//   - `b64` contains the adaptors themselves: the binary-sequence adaptor,
//     the readability-aware variant, and the string adaptor.
//
// Start from `b64` to use the adaptors directly, or from `serde` to compose
// them with your own conversions.
package serderepr
