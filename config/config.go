package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading overrides from the environment,
// e.g. SM_PROXY_ENDPOINT_NAME.
const EnvPrefix = "SM_PROXY"

// DotEnvFile is the default .env path.
const DotEnvFile = ".env"

var validate = validator.New()

// LoadDotEnv copies the variables of a .env file into the environment. Variables already set win.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads the optional config file and the environment, applies defaults and validates the result.
// An empty configFile means environment and defaults only, which is how the Lambda deployment runs.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("endpoint_name", DefaultEndpointName)
	v.SetDefault("backend", BackendSageMaker)
	v.SetDefault("region", "")
	v.SetDefault("content_type", "application/json")
	v.SetDefault("listen_address", "127.0.0.1:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout", "0s")

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

// Validate checks field constraints, and that the endpoint is a URL when the HTTP backend is selected.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Backend == BackendHTTP {
		if err := validate.Var(c.EndpointName, "url"); err != nil {
			return fmt.Errorf("invalid config: endpoint_name must be a URL for the http backend: %w", err)
		}
	}
	return nil
}
