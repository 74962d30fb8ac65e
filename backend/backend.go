package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"smproxy/config"
	"smproxy/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}

var ErrUnsupportedBackend = errors.New("unsupported backend")

// Invoker performs the single remote call to a hosted model endpoint.
type Invoker interface {
	Invoke(ctx context.Context, endpoint, contentType string, body []byte) ([]byte, error)
}

// StatusError is returned by the HTTP backend when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code   int
	Status string
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("endpoint returned %s", e.Status)
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg *config.Config) (Invoker, error) {
	switch cfg.Backend {
	case config.BackendSageMaker:
		return NewSageMakerBackend(ctx, cfg.Region)
	case config.BackendHTTP:
		return NewHTTPBackend(cfg.RequestTimeout), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}
