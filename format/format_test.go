package format

import (
	"reflect"
	"testing"

	"github.com/keelworks/storekit"
)

type account struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Active  bool    `json:"active"`
}

func (a account) ObjectType() string { return "Account" }
func (a account) ObjectKey() string  { return a.Key }

func TestRoundTrip(t *testing.T) {
	formats := []struct {
		name  string
		codec storekit.Format
	}{
		{"json", JSON{}},
		{"cbor", CBOR{}},
	}

	value := account{Key: "a-1", Name: "checking", Balance: 1042.5, Active: true}

	for _, f := range formats {
		t.Run(f.name, func(t *testing.T) {
			data, err := f.codec.Marshal(value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			var got account
			if err := f.codec.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			if !reflect.DeepEqual(got, value) {
				t.Errorf("round trip = %+v, want %+v", got, value)
			}
		})
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	var got account

	if err := (JSON{}).Unmarshal([]byte(`{"key": `), &got); err == nil {
		t.Error("JSON Unmarshal should reject truncated input")
	}

	if err := (CBOR{}).Unmarshal([]byte{0xff, 0x00}, &got); err == nil {
		t.Error("CBOR Unmarshal should reject malformed input")
	}
}

func TestUnmarshalShapeMismatch(t *testing.T) {
	var got account
	if err := (JSON{}).Unmarshal([]byte(`{"balance": "not-a-number"}`), &got); err == nil {
		t.Error("JSON Unmarshal should reject a payload that does not match the target shape")
	}
}

func TestContentType(t *testing.T) {
	if got := (JSON{}).ContentType(); got != "application/json" {
		t.Errorf("ContentType() = %q, want %q", got, "application/json")
	}
	if got := (CBOR{}).ContentType(); got != "application/cbor" {
		t.Errorf("ContentType() = %q, want %q", got, "application/cbor")
	}
}

func TestFormatsSatisfyContract(t *testing.T) {
	var _ storekit.Format = JSON{}
	var _ storekit.Format = CBOR{}
}
