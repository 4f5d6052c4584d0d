// Command ytstorage runs a storage node: one configured backend served
// over gRPC.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/sphynkx/ytstorage"
	"github.com/sphynkx/ytstorage/internal/config"
	"github.com/sphynkx/ytstorage/internal/server"
)

const appName = "ytstorage"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	drv, err := ytstorage.Open(ctx, driverConfig(cfg))
	if err != nil {
		return fmt.Errorf("open driver: %w", err)
	}

	srv := server.New(server.Options{
		Driver:          drv,
		Logger:          log,
		ChunkSize:       cfg.ChunkSizeBytes,
		MaxMessageBytes: cfg.MaxMessageMB << 20,
		AppName:         appName,
		Version:         ytstorage.Version,
		InstanceID:      cfg.InstanceID,
	})

	log.Info("starting storage node",
		"version", ytstorage.Version,
		"driver", drv.Kind(),
		"addr", cfg.ListenAddress,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(srv, cfg.ListenAddress)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		srv.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("stopped")
	return nil
}

func newLogger(cfg *config.Config) *ytstorage.Logger {
	level := parseLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		return ytstorage.NewJSONLogger(level)
	}
	return ytstorage.NewLogger(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// driverConfig translates flat environment config into the factory
// form.
func driverConfig(cfg *config.Config) ytstorage.Config {
	return ytstorage.Config{
		Kind: cfg.DriverKind,
		FS: ytstorage.FSConfig{
			Root: cfg.FSRoot,
		},
		S3: ytstorage.S3Config{
			Endpoint:     cfg.S3EndpointURL,
			AccessKey:    cfg.S3AccessKeyID,
			SecretKey:    cfg.S3SecretKey,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			Prefix:       cfg.S3KeyPrefix,
			UsePathStyle: cfg.S3UsePathStyle,
		},
		Minio: ytstorage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			Prefix:    cfg.MinioKeyPrefix,
			UseSSL:    cfg.MinioUseSSL,
		},
		Retry: ytstorage.RetryConfig{
			Enabled:     cfg.RetryEnabled,
			MaxAttempts: cfg.RetryMaxAttempts,
		},
		Cache: ytstorage.CacheConfig{
			Enabled:        cfg.CacheEnabled,
			MaxBytes:       cfg.CacheMaxBytes,
			MaxObjectBytes: cfg.CacheMaxObjectByte,
		},
		RateLimit: cfg.RateLimitPerSec,
		RateBurst: cfg.RateLimitBurst,
		Metrics:   &ytstorage.BasicMetricsCollector{},
	}
}
