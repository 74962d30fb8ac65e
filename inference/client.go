package inference

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"smproxy/backend"
	"smproxy/logging"
)

// Client sends one message to a hosted model endpoint and returns the raw prediction text.
type Client struct {
	backend     backend.Invoker
	contentType string
	log         logrus.FieldLogger
}

// NewClient creates a Client. An empty contentType means application/json and a nil logger means the
// process logger.
func NewClient(b backend.Invoker, contentType string, logger logrus.FieldLogger) *Client {
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Client{
		backend:     b,
		contentType: contentType,
		log:         logger,
	}
}

// Invoke performs a single blocking call to endpoint. Errors from the backend are returned wrapped,
// without retry.
func (c *Client) Invoke(ctx context.Context, endpoint, message string) (string, error) {
	log := c.log.WithField("endpoint", endpoint)
	log.Debugf("invoke_endpoint: message: %q", message)

	data, err := EncodePayload(NewPayload(message))
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	log.Debugf("invoke_endpoint: data: %s", data)

	body, err := c.backend.Invoke(ctx, endpoint, c.contentType, data)
	if err != nil {
		return "", err
	}
	log.Debugf("invoke_endpoint: received %d bytes", len(body))

	result, err := DecodeResult(body)
	if err != nil {
		return "", fmt.Errorf("endpoint %s: %w", endpoint, err)
	}
	log.Debugf("invoke_endpoint: response: %s", result)
	return result, nil
}
