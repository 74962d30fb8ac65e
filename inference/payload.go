package inference

import (
	"encoding/json"
	"errors"
	"unicode/utf8"
)

// ContentTypeJSON is the content type the payload is sent with.
const ContentTypeJSON = "application/json"

var ErrMalformedResponse = errors.New("endpoint response is not valid UTF-8")

// Payload is the request body hosted text models expect. The key must be "inputs".
type Payload struct {
	Inputs string `json:"inputs"`
}

func NewPayload(message string) Payload {
	return Payload{Inputs: message}
}

func EncodePayload(p Payload) ([]byte, error) {
	return json.Marshal(p)
}

func DecodePayload(data []byte) (Payload, error) {
	var p Payload
	err := json.Unmarshal(data, &p)
	return p, err
}

// DecodeResult turns the endpoint's octet stream into text. The content is not parsed further.
func DecodeResult(body []byte) (string, error) {
	if !utf8.Valid(body) {
		return "", ErrMalformedResponse
	}
	return string(body), nil
}
