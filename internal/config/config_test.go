package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.0.0.0:50070", cfg.ListenAddress)
	assert.Equal(t, "fs", cfg.DriverKind)
	assert.Equal(t, "./data/storage", cfg.FSRoot)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.True(t, cfg.S3UsePathStyle)
	assert.False(t, cfg.MinioUseSSL)
	assert.Equal(t, 1<<20, cfg.ChunkSizeBytes)
	assert.Equal(t, 64, cfg.MaxMessageMB)
	assert.False(t, cfg.CacheEnabled)
	assert.True(t, cfg.RetryEnabled)
	assert.Equal(t, 3, cfg.RetryMaxAttempts)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.InstanceID)

	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_REMOTE_ADDRESS", "127.0.0.1:6000")
	t.Setenv("DRIVER_KIND", "minio")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORAGE_CHUNK_SIZE", "65536")
	t.Setenv("CACHE_ENABLED", "1")
	t.Setenv("CACHE_MAX_BYTES", "1048576")
	t.Setenv("RATE_LIMIT_PER_SEC", "12.5")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:6000", cfg.ListenAddress)
	assert.Equal(t, "minio", cfg.DriverKind)
	assert.Equal(t, "localhost:9000", cfg.MinioEndpoint)
	assert.True(t, cfg.MinioUseSSL)
	assert.Equal(t, 65536, cfg.ChunkSizeBytes)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, int64(1<<20), cfg.CacheMaxBytes)
	assert.Equal(t, 12.5, cfg.RateLimitPerSec)
	assert.Equal(t, "json", cfg.LogFormat)

	require.NoError(t, cfg.Validate())
}

func TestLoad_MalformedValuesFailValidation(t *testing.T) {
	t.Setenv("STORAGE_CHUNK_SIZE", "1MB")
	t.Setenv("CACHE_ENABLED", "maybe")
	t.Setenv("RATE_LIMIT_PER_SEC", "fast")

	cfg := Load()

	// The typo'd values fall back to defaults, but Validate names the
	// offending variables instead of letting the defaults mask them.
	assert.Equal(t, 1<<20, cfg.ChunkSizeBytes)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, float64(0), cfg.RateLimitPerSec)

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, `STORAGE_CHUNK_SIZE="1MB"`)
	assert.ErrorContains(t, err, "CACHE_ENABLED")
	assert.ErrorContains(t, err, "RATE_LIMIT_PER_SEC")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{ChunkSizeBytes: 1 << 20, MaxMessageMB: 64, LogFormat: "text"}
	}

	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("zero chunk size", func(t *testing.T) {
		cfg := base()
		cfg.ChunkSizeBytes = 0
		assert.ErrorContains(t, cfg.Validate(), "STORAGE_CHUNK_SIZE")
	})

	t.Run("zero max message", func(t *testing.T) {
		cfg := base()
		cfg.MaxMessageMB = 0
		assert.ErrorContains(t, cfg.Validate(), "STORAGE_GRPC_MAX_MSG_MB")
	})

	t.Run("chunk exceeds max message", func(t *testing.T) {
		cfg := base()
		cfg.ChunkSizeBytes = 2 << 20
		cfg.MaxMessageMB = 1
		assert.ErrorContains(t, cfg.Validate(), "exceeds max message")
	})

	t.Run("unknown log format", func(t *testing.T) {
		cfg := base()
		cfg.LogFormat = "xml"
		assert.ErrorContains(t, cfg.Validate(), "LOG_FORMAT")
	})
}
