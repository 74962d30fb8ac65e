package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGateway converts an API Gateway proxy event. A missing query string stays nil.
func FromAPIGateway(ev events.APIGatewayProxyRequest) InboundRequest {
	return InboundRequest{
		HTTPMethod:            ev.HTTPMethod,
		Path:                  ev.Path,
		QueryStringParameters: QueryParams(ev.QueryStringParameters),
	}
}

// HandleAPIGateway is the Lambda entrypoint for the API Gateway proxy integration. Errors go back to the
// Lambda runtime untouched so the invocation is reported as failed.
func (h *Handler) HandleAPIGateway(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := h.Handle(ctx, FromAPIGateway(ev))
	if err != nil {
		h.logger(ctx).WithError(err).Error("invocation failed")
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}
