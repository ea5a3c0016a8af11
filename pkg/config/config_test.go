package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	HTTPPort        string        `mapstructure:"http_port"`
	MongoURI        string        `mapstructure:"mongo_uri"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

var testDefaults = map[string]any{
	"http_port":        "3400",
	"mongo_uri":        "mongodb://localhost:27017",
	"shutdown_timeout": "10s",
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, LoadArgs("test-service", nil, testDefaults, &cfg))

	assert.Equal(t, "3400", cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")

	var cfg testConfig
	require.NoError(t, LoadArgs("test-service", nil, testDefaults, &cfg))

	assert.Equal(t, "9999", cfg.HTTPPort)
}

func TestLoad_FileFromFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mongo_uri: mongodb://db:27017\nshutdown_timeout: 3s\n"), 0o644))

	var cfg testConfig
	require.NoError(t, LoadArgs("test-service", []string{"--config", path}, testDefaults, &cfg))

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "3400", cfg.HTTPPort)
}

func TestLoad_FileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"4000\"\n"), 0o644))
	t.Setenv("TEST_SERVICE_CONFIG_FILE", path)

	var cfg testConfig
	require.NoError(t, LoadArgs("test-service", nil, testDefaults, &cfg))

	assert.Equal(t, "4000", cfg.HTTPPort)
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg testConfig
	err := LoadArgs("test-service", []string{"--config", "/does/not/exist.yaml"}, testDefaults, &cfg)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_UnknownFlagsIgnored(t *testing.T) {
	var cfg testConfig
	require.NoError(t, LoadArgs("test-service", []string{"--verbose"}, testDefaults, &cfg))
	assert.Equal(t, "3400", cfg.HTTPPort)
}
