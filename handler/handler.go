package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"smproxy/logging"
)

type contextKey string

const requestIDKey = contextKey("requestID")

// Predictor runs one inference call against a named endpoint.
type Predictor interface {
	Invoke(ctx context.Context, endpoint, message string) (string, error)
}

// Handler turns an InboundRequest into an OutboundResponse by asking the configured endpoint
// for a prediction on the request's message.
type Handler struct {
	predictor Predictor
	endpoint  string
	log       logrus.FieldLogger
}

// NewHandler creates a Handler bound to a single endpoint. A nil logger means the process logger.
func NewHandler(p Predictor, endpoint string, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Handler{
		predictor: p,
		endpoint:  endpoint,
		log:       logger,
	}
}

// Handle answers 200 with the JSON-encoded prediction. A failed call returns the error and no response;
// reporting it is left to whatever invoked the handler.
func (h *Handler) Handle(ctx context.Context, req InboundRequest) (OutboundResponse, error) {
	log := h.logger(ctx)
	log.Debugf("event: %s", indent(req))

	message := MessageFrom(req)
	log.Infof("message: %q", message)
	log.Infof("endpoint_name: %s", h.endpoint)

	result, err := h.predictor.Invoke(ctx, h.endpoint, message)
	if err != nil {
		return OutboundResponse{}, err
	}
	log.Infof("response: %s", result)

	body, err := EncodeBody(result)
	if err != nil {
		return OutboundResponse{}, err
	}
	resp := OutboundResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
	log.Debugf("return_val: %s", indent(resp))
	return resp, nil
}

func (h *Handler) logger(ctx context.Context) logrus.FieldLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return h.log.WithField("request_id", id)
	}
	return h.log
}

// RequestIDFromContext returns the Lambda request ID, or the ID assigned by HTTPHandler.
func RequestIDFromContext(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func indent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(b)
}
