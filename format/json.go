package format

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONWriter is a Writer producing a single JSON-encoded value.
// JSON is a textual format, so HumanReadable reports true.
type JSONWriter struct {
	buf bytes.Buffer
}

// NewJSONWriter returns a new, empty JSONWriter.
func NewJSONWriter() *JSONWriter {
	return new(JSONWriter)
}

// HumanReadable implements the format.Writer interface. Always true for JSON.
func (w *JSONWriter) HumanReadable() bool { return true }

// WriteText implements the format.Writer interface,
// writing the text as a JSON string.
func (w *JSONWriter) WriteText(text string) error {
	return w.WriteNative(text)
}

// WriteNative implements the format.Writer interface,
// writing the value in its JSON representation.
func (w *JSONWriter) WriteNative(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("format.JSONWriter: failed to encode value, %w", err)
	}

	_, _ = w.buf.Write(data)

	return nil
}

// Bytes returns the JSON document written so far.
func (w *JSONWriter) Bytes() []byte { return w.buf.Bytes() }

// JSONReader is a Reader yielding a single JSON-encoded value.
type JSONReader struct {
	data []byte
}

// NewJSONReader returns a JSONReader over the given JSON document.
func NewJSONReader(data []byte) *JSONReader {
	return &JSONReader{data: data}
}

// HumanReadable implements the format.Reader interface. Always true for JSON.
func (r *JSONReader) HumanReadable() bool { return true }

// ReadText implements the format.Reader interface,
// reading a single JSON string value.
func (r *JSONReader) ReadText() (string, error) {
	var text string

	if err := json.Unmarshal(r.data, &text); err != nil {
		return "", fmt.Errorf("format.JSONReader: failed to decode text value, %w", err)
	}

	return text, nil
}

// ReadNative implements the format.Reader interface,
// decoding the JSON value into the given target.
func (r *JSONReader) ReadNative(target any) error {
	if err := json.Unmarshal(r.data, target); err != nil {
		return fmt.Errorf("format.JSONReader: failed to decode value, %w", err)
	}

	return nil
}
