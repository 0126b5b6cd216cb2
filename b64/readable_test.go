package b64_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mintlu8/serde-repr-base64/b64"
	"github.com/mintlu8/serde-repr-base64/format"
)

func TestEncodeIfReadable(t *testing.T) {
	value := []byte{123, 12, 84, 2}

	t.Run("it emits base64 text under a textual format", func(t *testing.T) {
		w := format.NewJSONWriter()
		require.NoError(t, b64.EncodeIfReadable(w, value, b64.SliceOf[byte]))

		text, err := format.NewJSONReader(w.Bytes()).ReadText()
		assert.NoError(t, err)
		assert.NotContains(t, text, "+")
		assert.NotContains(t, text, "/")

		decoded, err := b64.DecodeIfReadable(format.NewJSONReader(w.Bytes()), b64.AsSlice[byte]())
		assert.NoError(t, err)
		assert.Equal(t, value, decoded)
	})

	t.Run("it emits the native encoding under a binary format", func(t *testing.T) {
		w := format.NewMsgpackWriter()
		require.NoError(t, b64.EncodeIfReadable(w, value, b64.SliceOf[byte]))

		native, err := msgpack.Marshal(value)
		require.NoError(t, err)
		assert.Equal(t, native, w.Bytes())

		decoded, err := b64.DecodeIfReadable(format.NewMsgpackReader(w.Bytes()), b64.AsSlice[byte]())
		assert.NoError(t, err)
		assert.Equal(t, value, decoded)
	})
}

func TestDecodeIfReadable(t *testing.T) {
	t.Run("it round-trips integer sequences through both formats", func(t *testing.T) {
		values := []int64{1, 23, 14, 51, 125}

		jsonWriter := format.NewJSONWriter()
		require.NoError(t, b64.EncodeIfReadable(jsonWriter, values, b64.SliceOf[int64]))

		fromJSON, err := b64.DecodeIfReadable(format.NewJSONReader(jsonWriter.Bytes()), b64.AsSlice[int64]())
		assert.NoError(t, err)
		assert.Equal(t, values, fromJSON)

		msgpackWriter := format.NewMsgpackWriter()
		require.NoError(t, b64.EncodeIfReadable(msgpackWriter, values, b64.SliceOf[int64]))

		fromMsgpack, err := b64.DecodeIfReadable(format.NewMsgpackReader(msgpackWriter.Bytes()), b64.AsSlice[int64]())
		assert.NoError(t, err)
		assert.Equal(t, values, fromMsgpack)
	})

	t.Run("it rejects malformed base64 text under a textual format", func(t *testing.T) {
		r := format.NewJSONReader([]byte(`"!!!not-base64!!!"`))

		decoded, err := b64.DecodeIfReadable(r, b64.AsSlice[byte]())
		assert.ErrorIs(t, err, b64.ErrMalformedText)
		assert.ErrorContains(t, err, "!!!not-base64!!!")
		assert.Zero(t, decoded)
	})

	t.Run("it honors the container constructor under a textual format", func(t *testing.T) {
		w := format.NewJSONWriter()
		require.NoError(t, b64.EncodeIfReadable(w, []byte{1, 2, 3}, b64.SliceOf[byte]))

		decoded, err := b64.DecodeIfReadable(format.NewJSONReader(w.Bytes()), b64.AsCapped[byte](2))
		assert.ErrorIs(t, err, b64.ErrLengthMismatch)
		assert.Zero(t, decoded)
	})
}
