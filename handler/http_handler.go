package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// HTTPHandler serves the Handler over plain HTTP when the proxy runs outside Lambda.
type HTTPHandler struct {
	Handler *Handler
}

// NewHTTPHandler creates a new instance of HTTPHandler
func NewHTTPHandler(h *Handler) *HTTPHandler {
	return &HTTPHandler{
		Handler: h,
	}
}

// NewServeMux routes /health to a liveness probe and every other path to the handler,
// like an API Gateway proxy resource.
func NewServeMux(h *HTTPHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/", h)
	return mux
}

// FromHTTP converts a net/http request. Only the first value of a repeated parameter is kept, and a
// request without a query string has nil parameters.
func FromHTTP(r *http.Request) InboundRequest {
	var params QueryParams
	if r.URL.RawQuery != "" {
		params = QueryParams{}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}
	}
	return InboundRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		QueryStringParameters: params,
	}
}

// ServeHTTP implements the http.Handler interface for HTTPHandler.
func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", requestID)
	ctx := context.WithValue(r.Context(), requestIDKey, requestID)
	r = r.WithContext(ctx)

	resp, err := h.Handler.Handle(ctx, FromHTTP(r))
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			logAndReturnError(w, r, h.Handler.logger(ctx), "Gateway Timeout: endpoint did not answer in time", http.StatusGatewayTimeout, err)
		case errors.Is(err, context.Canceled):
			logAndReturnError(w, r, h.Handler.logger(ctx), "Client canceled the request", http.StatusBadRequest, err)
		default:
			logAndReturnError(w, r, h.Handler.logger(ctx), "Bad Gateway: endpoint invocation failed", http.StatusBadGateway, err)
		}
		return
	}

	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
	logRequest(h.Handler.logger(ctx), r, resp.StatusCode)
}
