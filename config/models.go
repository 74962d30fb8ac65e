package config

import "time"

const (
	BackendSageMaker = "sagemaker"
	BackendHTTP      = "http"
)

// DefaultEndpointName is the SST-2 text classification endpoint the proxy was first deployed against.
const DefaultEndpointName = "sst2-text-classification-ep-2022-10-06-18-26-57"

// Config holds the application configuration. It is read once at startup and never mutated.
type Config struct {
	// EndpointName is the SageMaker endpoint name, or the full URL when Backend is "http".
	EndpointName   string        `mapstructure:"endpoint_name" validate:"required"`
	Backend        string        `mapstructure:"backend" validate:"oneof=sagemaker http"`
	Region         string        `mapstructure:"region"`
	ContentType    string        `mapstructure:"content_type" validate:"required"`
	ListenAddress  string        `mapstructure:"listen_address" validate:"required,hostname_port"`
	LogLevel       string        `mapstructure:"log_level" validate:"oneof=panic fatal error warn warning info debug trace"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gte=0"`
}
