// Package format provides byte codecs implementing the storekit.Format
// contract.
//
// Formats are stateless and backend-agnostic: the same codec serves the
// filesystem backend and any backend that stores payloads whole. Payloads
// carry no envelope; the stored bytes are exactly the codec's output.
package format

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

// JSON encodes objects as JSON documents.
type JSON struct{}

// Marshal encodes v as a JSON document.
func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes a JSON document into v.
func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType returns the MIME type of the encoded form.
func (JSON) ContentType() string {
	return "application/json"
}

// CBOR encodes objects in CBOR binary form, a compact alternative to JSON
// for payload-heavy types.
type CBOR struct{}

// Marshal encodes v in CBOR binary form.
func (CBOR) Marshal(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

// Unmarshal decodes CBOR bytes into v.
func (CBOR) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}

// ContentType returns the MIME type of the encoded form.
func (CBOR) ContentType() string {
	return "application/cbor"
}
