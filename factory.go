package ytstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniogo "github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/time/rate"

	"github.com/sphynkx/ytstorage/driver"
	"github.com/sphynkx/ytstorage/driver/fs"
	"github.com/sphynkx/ytstorage/driver/minio"
	"github.com/sphynkx/ytstorage/driver/s3"
)

// Driver kinds accepted by Config.Kind.
const (
	KindFS    = "fs"
	KindS3    = "s3"
	KindMinio = "minio"
)

// FSConfig configures the local filesystem backend.
type FSConfig struct {
	Root string
}

// S3Config configures the aws-sdk-go-v2 backend.
type S3Config struct {
	// Endpoint overrides the AWS endpoint; required for MinIO/Ceph/GCS,
	// empty for real AWS.
	Endpoint     string
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	Prefix       string
	UsePathStyle bool
	PartSize     int64
}

// MinioConfig configures the minio-go backend.
type MinioConfig struct {
	Endpoint  string // host:port, no scheme
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

// RetryConfig enables the retry decorator around the backend.
type RetryConfig struct {
	Enabled        bool
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// CacheConfig enables the read-cache decorator around the backend.
type CacheConfig struct {
	Enabled        bool
	MaxBytes       int64
	MaxObjectBytes int64
	StatTTL        time.Duration
	DataTTL        time.Duration
}

// Config selects and configures the backend for one gateway process.
// Exactly one Kind is active per process; it is chosen once at startup
// and never mutated afterwards.
type Config struct {
	Kind string

	FS    FSConfig
	S3    S3Config
	Minio MinioConfig

	Retry RetryConfig
	Cache CacheConfig

	// RateLimit caps backend operations per second; 0 disables limiting.
	RateLimit float64
	RateBurst int

	// Metrics receives per-operation records. Nil means no collection.
	Metrics MetricsCollector
}

// Open validates cfg and constructs the process-wide driver instance.
// Decorators wrap the backend innermost-to-outermost as rate limit,
// retry, cache, metrics: every retry attempt pays a rate-limit token,
// a cache hit never reaches the limiter, and metrics see the latency
// the RPC layer sees.
//
// Open fails fast on an unknown kind or incomplete configuration; the
// process must not come up half-configured.
func Open(ctx context.Context, cfg Config) (driver.Driver, error) {
	d, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		d = driver.RateLimited(d, rate.NewLimiter(rate.Limit(cfg.RateLimit), burst))
	}
	if cfg.Retry.Enabled {
		opts := driver.RetryOptions{
			MaxAttempts:    cfg.Retry.MaxAttempts,
			InitialBackoff: cfg.Retry.InitialBackoff,
			MaxBackoff:     cfg.Retry.MaxBackoff,
		}
		if opts.MaxAttempts == 0 {
			opts = driver.DefaultRetryOptions()
		}
		d = driver.Retry(d, opts)
	}
	if cfg.Cache.Enabled {
		d = driver.Cached(d, driver.CacheOptions{
			MaxBytes:       cfg.Cache.MaxBytes,
			MaxObjectBytes: cfg.Cache.MaxObjectBytes,
			StatTTL:        cfg.Cache.StatTTL,
			DataTTL:        cfg.Cache.DataTTL,
		})
	}
	if cfg.Metrics != nil {
		d = WithMetrics(d, cfg.Metrics)
	}
	return d, nil
}

func openBackend(ctx context.Context, cfg Config) (driver.Driver, error) {
	switch cfg.Kind {
	case KindFS:
		if cfg.FS.Root == "" {
			return nil, fmt.Errorf("fs driver: root path is required")
		}
		return fs.New(cfg.FS.Root)

	case KindS3:
		if cfg.S3.Bucket == "" || cfg.S3.AccessKey == "" || cfg.S3.SecretKey == "" {
			return nil, fmt.Errorf("s3 driver: bucket and credentials are required")
		}
		region := cfg.S3.Region
		if region == "" {
			region = "us-east-1"
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("s3 driver: load config: %w", err)
		}
		client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
			if cfg.S3.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			}
			o.UsePathStyle = cfg.S3.UsePathStyle
		})
		return s3.New(client, cfg.S3.Bucket, s3.Options{
			Prefix:   cfg.S3.Prefix,
			PartSize: cfg.S3.PartSize,
		}), nil

	case KindMinio:
		if cfg.Minio.Endpoint == "" || cfg.Minio.Bucket == "" ||
			cfg.Minio.AccessKey == "" || cfg.Minio.SecretKey == "" {
			return nil, fmt.Errorf("minio driver: endpoint, bucket and credentials are required")
		}
		client, err := miniogo.New(cfg.Minio.Endpoint, &miniogo.Options{
			Creds:  miniocreds.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("minio driver: create client: %w", err)
		}
		return minio.New(client, cfg.Minio.Bucket, cfg.Minio.Prefix), nil

	default:
		return nil, fmt.Errorf("unknown driver kind %q (want %s, %s or %s)",
			cfg.Kind, KindFS, KindS3, KindMinio)
	}
}
