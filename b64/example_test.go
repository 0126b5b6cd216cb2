package b64_test

import (
	"encoding/json"
	"fmt"

	"github.com/mintlu8/serde-repr-base64/b64"
	"github.com/mintlu8/serde-repr-base64/format"
)

// avatar shows how a record type plugs the adaptors into its own
// marshalling, substituting the Image field's bytes with base64 text.
type avatar struct {
	Name  string
	Image []byte
}

type avatarJSON struct {
	Name  string          `json:"name"`
	Image json.RawMessage `json:"image"`
}

func (a avatar) MarshalJSON() ([]byte, error) {
	w := format.NewJSONWriter()
	if err := b64.Encode(w, a.Image); err != nil {
		return nil, err
	}

	return json.Marshal(avatarJSON{Name: a.Name, Image: w.Bytes()})
}

func (a *avatar) UnmarshalJSON(data []byte) error {
	var raw avatarJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	image, err := b64.Decode(format.NewJSONReader(raw.Image), b64.AsSlice[byte]())
	if err != nil {
		return err
	}

	a.Name, a.Image = raw.Name, image

	return nil
}

func Example() {
	data, _ := json.Marshal(avatar{Name: "gopher", Image: []byte{123, 74}})
	fmt.Println(string(data))

	var decoded avatar
	_ = json.Unmarshal(data, &decoded)
	fmt.Println(decoded.Name, decoded.Image)

	// Output:
	// {"name":"gopher","image":"e0o="}
	// gopher [123 74]
}

func ExampleNewString() {
	mySerde := b64.NewString[string]()

	text, _ := mySerde.Serialize("Hello, World")
	fmt.Println(text)

	value, _ := mySerde.Deserialize(text)
	fmt.Println(value)

	// Output:
	// SGVsbG8sIFdvcmxk
	// Hello, World
}
