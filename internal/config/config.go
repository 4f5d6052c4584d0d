// Package config loads storage node configuration from environment
// variables, optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the storage node.
type Config struct {
	// ListenAddress is the gRPC bind address.
	ListenAddress string
	DriverKind    string
	InstanceID    string

	// FSRoot is the storage root directory for the fs driver.
	FSRoot string

	S3EndpointURL  string
	S3AccessKeyID  string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3KeyPrefix    string
	S3UsePathStyle bool

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioKeyPrefix string
	MinioUseSSL    bool

	// ChunkSizeBytes bounds each streamed content chunk.
	ChunkSizeBytes int
	// MaxMessageMB bounds gRPC message sizes in both directions.
	MaxMessageMB int

	CacheEnabled       bool
	CacheMaxBytes      int64
	CacheMaxObjectByte int64

	RetryEnabled     bool
	RetryMaxAttempts int

	RateLimitPerSec float64
	RateLimitBurst  int

	LogFormat string // "text" or "json"
	LogLevel  string // "debug", "info", "warn", "error"

	// malformed records env entries whose value failed to parse;
	// Validate reports them instead of letting defaults mask a typo.
	malformed []string
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing values fall back to development defaults;
// malformed values are collected and surfaced by Validate. Kind-specific
// completeness is checked at driver construction, not here.
func Load() *Config {
	// A missing .env file is the normal production case.
	_ = godotenv.Load()

	var env envReader
	cfg := &Config{
		ListenAddress: getEnv("STORAGE_REMOTE_ADDRESS", "0.0.0.0:50070"),
		DriverKind:    getEnv("DRIVER_KIND", "fs"),
		InstanceID:    getEnv("STORAGE_INSTANCE_ID", hostnameOrDefault()),

		FSRoot: getEnv("APP_STORAGE_FS_ROOT", "./data/storage"),

		S3EndpointURL:  getEnv("S3_ENDPOINT_URL", ""),
		S3AccessKeyID:  getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:    getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Bucket:       getEnv("S3_BUCKET_NAME", ""),
		S3Region:       getEnv("S3_REGION_NAME", "us-east-1"),
		S3KeyPrefix:    getEnv("S3_KEY_PREFIX", ""),
		S3UsePathStyle: env.getBool("S3_USE_PATH_STYLE", true),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET_NAME", ""),
		MinioKeyPrefix: getEnv("MINIO_KEY_PREFIX", ""),
		MinioUseSSL:    env.getBool("MINIO_USE_SSL", false),

		ChunkSizeBytes: env.getInt("STORAGE_CHUNK_SIZE", 1<<20),
		MaxMessageMB:   env.getInt("STORAGE_GRPC_MAX_MSG_MB", 64),

		CacheEnabled:       env.getBool("CACHE_ENABLED", false),
		CacheMaxBytes:      env.getInt64("CACHE_MAX_BYTES", 256<<20),
		CacheMaxObjectByte: env.getInt64("CACHE_MAX_OBJECT_BYTES", 1<<20),

		RetryEnabled:     env.getBool("RETRY_ENABLED", true),
		RetryMaxAttempts: env.getInt("RETRY_MAX_ATTEMPTS", 3),

		RateLimitPerSec: env.getFloat("RATE_LIMIT_PER_SEC", 0),
		RateLimitBurst:  env.getInt("RATE_LIMIT_BURST", 0),

		LogFormat: getEnv("LOG_FORMAT", "text"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
	cfg.malformed = env.malformed
	return cfg
}

// Validate rejects values that would only fail later in confusing ways.
func (c *Config) Validate() error {
	if len(c.malformed) > 0 {
		return fmt.Errorf("config: malformed values: %s", strings.Join(c.malformed, ", "))
	}
	if c.ChunkSizeBytes <= 0 {
		return fmt.Errorf("config: STORAGE_CHUNK_SIZE must be positive, got %d", c.ChunkSizeBytes)
	}
	if c.MaxMessageMB <= 0 {
		return fmt.Errorf("config: STORAGE_GRPC_MAX_MSG_MB must be positive, got %d", c.MaxMessageMB)
	}
	if c.ChunkSizeBytes > c.MaxMessageMB<<20 {
		return fmt.Errorf("config: chunk size %d exceeds max message size %d MB", c.ChunkSizeBytes, c.MaxMessageMB)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}

func hostnameOrDefault() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	return "ytstorage-node"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envReader parses typed env values and remembers the ones that did
// not parse, so a typo fails Validate instead of silently becoming the
// default.
type envReader struct {
	malformed []string
}

func (e *envReader) reject(key, value string) {
	e.malformed = append(e.malformed, fmt.Sprintf("%s=%q", key, value))
}

func (e *envReader) getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.reject(key, v)
		return fallback
	}
	return b
}

func (e *envReader) getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.reject(key, v)
		return fallback
	}
	return n
}

func (e *envReader) getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.reject(key, v)
		return fallback
	}
	return n
}

func (e *envReader) getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.reject(key, v)
		return fallback
	}
	return f
}
