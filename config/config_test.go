package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENDPOINT_NAME", "BACKEND", "REGION", "CONTENT_TYPE", "LISTEN_ADDRESS", "LOG_LEVEL", "REQUEST_TIMEOUT",
	} {
		t.Setenv(EnvPrefix+"_"+key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	clearEnv(t)

	cfg, err := LoadConfig("")
	req.NoError(err)
	req.Equal(DefaultEndpointName, cfg.EndpointName)
	req.Equal(BackendSageMaker, cfg.Backend)
	req.Equal("application/json", cfg.ContentType)
	req.Equal("127.0.0.1:8080", cfg.ListenAddress)
	req.Equal("info", cfg.LogLevel)
	req.Zero(cfg.RequestTimeout)
	req.Empty(cfg.Region)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	req := require.New(t)
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
endpoint_name: from-file
region: eu-west-1
listen_address: 0.0.0.0:9000
request_timeout: 30s
`)

	cfg, err := LoadConfig(path)
	req.NoError(err)
	req.Equal("from-file", cfg.EndpointName)
	req.Equal("eu-west-1", cfg.Region)
	req.Equal("0.0.0.0:9000", cfg.ListenAddress)
	req.Equal(30*time.Second, cfg.RequestTimeout)

	t.Setenv("SM_PROXY_ENDPOINT_NAME", "from-env")
	cfg, err = LoadConfig(path)
	req.NoError(err)
	req.Equal("from-env", cfg.EndpointName)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		description string
		env         map[string]string
	}{
		{"Should fail on an unknown backend", map[string]string{"SM_PROXY_BACKEND": "grpc"}},
		{"Should fail on an unknown log level", map[string]string{"SM_PROXY_LOG_LEVEL": "chatty"}},
		{"Should fail on a listen address without port", map[string]string{"SM_PROXY_LISTEN_ADDRESS": "localhost"}},
		{
			"Should fail when the http backend has no URL",
			map[string]string{"SM_PROXY_BACKEND": "http", "SM_PROXY_ENDPOINT_NAME": "not a url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig("")
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestLoadConfig_HTTPBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("SM_PROXY_BACKEND", "http")
	t.Setenv("SM_PROXY_ENDPOINT_NAME", "http://localhost:8000/predict")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, BackendHTTP, cfg.Backend)
}

func TestLoadDotEnv(t *testing.T) {
	req := require.New(t)
	clearEnv(t)
	os.Unsetenv("SM_PROXY_REGION")
	path := writeFile(t, ".env", "SM_PROXY_REGION=us-east-2\n")
	t.Cleanup(func() { os.Unsetenv("SM_PROXY_REGION") })

	req.NoError(LoadDotEnv(path))
	cfg, err := LoadConfig("")
	req.NoError(err)
	req.Equal("us-east-2", cfg.Region)

	req.NoError(LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	req.NoError(LoadDotEnv(""))
}

func TestParseArgs(t *testing.T) {
	req := require.New(t)

	cli, err := ParseArgs("sm-proxy", nil)
	req.NoError(err)
	req.Equal(DotEnvFile, cli.EnvFile)
	req.False(cli.Debug)

	cli, err = ParseArgs("sm-proxy", []string{"-config", "prod.yaml", "-d", "-v"})
	req.NoError(err)
	req.Equal("prod.yaml", cli.ConfigFile)
	req.True(cli.Debug)
	req.True(cli.Version)

	_, err = ParseArgs("sm-proxy", []string{"-nope"})
	req.Error(err)
}
