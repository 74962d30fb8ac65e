package handler

import (
	"bytes"
	"encoding/json"
)

// MessageKey is the query parameter holding the text to classify.
const MessageKey = "message"

// DefaultMessage is used when the request carries no message.
const DefaultMessage = ""

// QueryParams maps query parameter names to values. A nil QueryParams means the request had no
// query string at all.
type QueryParams map[string]string

// Get returns the value for key and whether it was present.
func (q QueryParams) Get(key string) (string, bool) {
	if q == nil {
		return "", false
	}
	v, ok := q[key]
	return v, ok
}

// InboundRequest is the platform-neutral form of the request the proxy receives.
type InboundRequest struct {
	HTTPMethod            string      `json:"httpMethod,omitempty"`
	Path                  string      `json:"path,omitempty"`
	QueryStringParameters QueryParams `json:"queryStringParameters"`
}

// OutboundResponse is what the proxy answers with. Body holds the JSON-encoded inference result.
type OutboundResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

// MessageFrom returns the message parameter, or DefaultMessage when the query string or the key is
// missing. The value is returned exactly as received.
func MessageFrom(req InboundRequest) string {
	if msg, ok := req.QueryStringParameters.Get(MessageKey); ok {
		return msg
	}
	return DefaultMessage
}

// EncodeBody JSON-encodes the raw inference result as a string value. HTML characters are left as is.
func EncodeBody(result string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
