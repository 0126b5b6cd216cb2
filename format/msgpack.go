package format

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackWriter is a Writer producing a single msgpack-encoded value.
// Msgpack is a binary format, so HumanReadable reports false.
type MsgpackWriter struct {
	buf bytes.Buffer
}

// NewMsgpackWriter returns a new, empty MsgpackWriter.
func NewMsgpackWriter() *MsgpackWriter {
	return new(MsgpackWriter)
}

// HumanReadable implements the format.Writer interface. Always false for msgpack.
func (w *MsgpackWriter) HumanReadable() bool { return false }

// WriteText implements the format.Writer interface,
// writing the text as a msgpack string.
func (w *MsgpackWriter) WriteText(text string) error {
	return w.WriteNative(text)
}

// WriteNative implements the format.Writer interface,
// writing the value in its msgpack representation.
func (w *MsgpackWriter) WriteNative(value any) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("format.MsgpackWriter: failed to encode value, %w", err)
	}

	_, _ = w.buf.Write(data)

	return nil
}

// Bytes returns the msgpack payload written so far.
func (w *MsgpackWriter) Bytes() []byte { return w.buf.Bytes() }

// MsgpackReader is a Reader yielding a single msgpack-encoded value.
type MsgpackReader struct {
	data []byte
}

// NewMsgpackReader returns a MsgpackReader over the given msgpack payload.
func NewMsgpackReader(data []byte) *MsgpackReader {
	return &MsgpackReader{data: data}
}

// HumanReadable implements the format.Reader interface. Always false for msgpack.
func (r *MsgpackReader) HumanReadable() bool { return false }

// ReadText implements the format.Reader interface,
// reading a single msgpack string value.
func (r *MsgpackReader) ReadText() (string, error) {
	var text string

	if err := msgpack.Unmarshal(r.data, &text); err != nil {
		return "", fmt.Errorf("format.MsgpackReader: failed to decode text value, %w", err)
	}

	return text, nil
}

// ReadNative implements the format.Reader interface,
// decoding the msgpack value into the given target.
func (r *MsgpackReader) ReadNative(target any) error {
	if err := msgpack.Unmarshal(r.data, target); err != nil {
		return fmt.Errorf("format.MsgpackReader: failed to decode value, %w", err)
	}

	return nil
}
