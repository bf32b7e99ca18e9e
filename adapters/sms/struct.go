package sms

import (
	"bytes"
	"encoding/json"
	"net/url"
)

const StatusSuccess = "success"

type SendReqSt struct {
	Message string
	Numbers []string
	Params  url.Values
}

// RepSt is the provider reply. Only Status decides the outcome, the other
// fields are filled on a best-effort basis and Raw always holds the body.
type RepSt struct {
	Status      string        `json:"status" xml:"status"`
	Errors      []ErrorSt     `json:"errors,omitempty" xml:"errors>error"`
	Warnings    []ErrorSt     `json:"warnings,omitempty" xml:"warnings>warning"`
	Balance     Value         `json:"balance,omitempty" xml:"balance,omitempty"`
	BatchId     Value         `json:"batch_id,omitempty" xml:"batch_id,omitempty"`
	Cost        Value         `json:"cost,omitempty" xml:"cost,omitempty"`
	NumMessages Value         `json:"num_messages,omitempty" xml:"num_messages,omitempty"`
	Message     *MessageSt    `json:"message,omitempty" xml:"message,omitempty"`
	ReceiptUrl  string        `json:"receipt_url,omitempty" xml:"receipt_url,omitempty"`
	Custom      Value         `json:"custom,omitempty" xml:"custom,omitempty"`
	Messages    []MessageIdSt `json:"messages,omitempty" xml:"messages>message"`

	Raw []byte `json:"-" xml:"-"`
}

type ErrorSt struct {
	Code    Value  `json:"code" xml:"code"`
	Message string `json:"message" xml:"message"`
}

type MessageSt struct {
	NumParts Value  `json:"num_parts,omitempty" xml:"num_parts,omitempty"`
	Sender   string `json:"sender,omitempty" xml:"sender,omitempty"`
	Content  string `json:"content,omitempty" xml:"content,omitempty"`
}

type MessageIdSt struct {
	Id        Value `json:"id" xml:"id"`
	Recipient Value `json:"recipient" xml:"recipient"`
}

// Value is a scalar the provider sends either quoted or bare: 3, "3", "" and
// null all decode. Objects and arrays are kept as their json text.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
	default:
		*v = Value(data)
	}

	return nil
}

func (v Value) String() string {
	return string(v)
}
