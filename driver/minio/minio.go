// Package minio implements the storage driver over an S3-compatible
// service using the MinIO client library.
//
// It is functionally equivalent to the s3 package; deployments pick
// whichever client fits their backend better (self-hosted MinIO and Ceph
// installations are usually run against this one).
package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/sphynkx/ytstorage/driver"
)

// Driver wraps a single bucket on a MinIO/S3-compatible endpoint.
type Driver struct {
	client *minio.Client
	bucket string
	prefix string
}

// New creates the driver. The bucket must already exist; nothing is
// created implicitly so a typo in configuration fails fast instead of
// writing into a fresh empty bucket.
func New(client *minio.Client, bucket, prefix string) *Driver {
	prefix = driver.CleanPrefix(prefix)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Driver{client: client, bucket: bucket, prefix: prefix}
}

// Kind implements driver.Driver.
func (d *Driver) Kind() string { return "minio" }

func (d *Driver) objectKey(key string) (string, error) {
	key, err := driver.NormalizeKey(key)
	if err != nil {
		return "", err
	}
	return d.prefix + key, nil
}

// Put implements driver.Driver. PutObject streams from r; with a size
// hint it uploads in one request below the part threshold, multipart
// above it, and with size -1 it falls back to multipart streaming.
func (d *Driver) Put(ctx context.Context, key string, r io.Reader, size int64, opts driver.PutOptions) error {
	objKey, err := d.objectKey(key)
	if err != nil {
		return err
	}
	_, err = d.client.PutObject(ctx, d.bucket, objKey, r, size, minio.PutObjectOptions{
		ContentType: opts.ContentType,
	})
	if err != nil {
		return translate(opWrite, key, err)
	}
	return nil
}

// Get implements driver.Driver.
func (d *Driver) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	objKey, err := d.objectKey(key)
	if err != nil {
		return nil, err
	}
	obj, err := d.client.GetObject(ctx, d.bucket, objKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, translate(opRead, key, err)
	}
	// GetObject is lazy; the first Stat forces the request so a missing
	// key surfaces here, not on the first Read inside the RPC stream.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, translate(opRead, key, err)
	}
	return obj, nil
}

// Delete implements driver.Driver. RemoveObject succeeds on missing keys,
// so a stat first preserves the not-found contract.
func (d *Driver) Delete(ctx context.Context, key string) error {
	objKey, err := d.objectKey(key)
	if err != nil {
		return err
	}
	if _, err := d.client.StatObject(ctx, d.bucket, objKey, minio.StatObjectOptions{}); err != nil {
		return translate(opRead, key, err)
	}
	if err := d.client.RemoveObject(ctx, d.bucket, objKey, minio.RemoveObjectOptions{}); err != nil {
		return translate(opWrite, key, err)
	}
	return nil
}

// Exists implements driver.Driver.
func (d *Driver) Exists(ctx context.Context, key string) (bool, error) {
	_, err := d.Stat(ctx, key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, driver.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Stat implements driver.Driver.
func (d *Driver) Stat(ctx context.Context, key string) (driver.ObjectInfo, error) {
	objKey, err := d.objectKey(key)
	if err != nil {
		return driver.ObjectInfo{}, err
	}
	info, err := d.client.StatObject(ctx, d.bucket, objKey, minio.StatObjectOptions{})
	if err != nil {
		return driver.ObjectInfo{}, translate(opRead, key, err)
	}
	normKey, _ := driver.NormalizeKey(key)
	return driver.ObjectInfo{
		Key:          normKey,
		Size:         info.Size,
		ContentType:  info.ContentType,
		LastModified: info.LastModified,
		ETag:         strings.Trim(info.ETag, `"`),
	}, nil
}

// List implements driver.Driver. ListObjects with Recursive already
// yields keys in lexicographic order; the channel is drained lazily, one
// callback per key.
func (d *Driver) List(ctx context.Context, prefix string, fn driver.ListFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // stops the lister goroutine on early return

	fullPrefix := d.prefix + driver.CleanPrefix(prefix)
	for obj := range d.client.ListObjects(ctx, d.bucket, minio.ListObjectsOptions{
		Prefix:    fullPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return translate(opRead, prefix, obj.Err)
		}
		key := strings.TrimPrefix(obj.Key, d.prefix)
		if key == "" {
			continue
		}
		if err := fn(key); err != nil {
			return err
		}
	}
	return nil
}

type op int

const (
	opRead op = iota
	opWrite
)

// translate maps minio error responses onto the shared error kinds.
func translate(o op, key string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NotFound":
		return fmt.Errorf("%w: %s", driver.ErrNotFound, key)
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch",
		"ExpiredToken", "SlowDown", "Throttling", "RequestTimeout",
		"ServiceUnavailable", "InternalError":
		return fmt.Errorf("%w: %s: %v", driver.ErrUnavailable, resp.Code, err)
	case "":
		// No S3-level response: transport failure.
		return fmt.Errorf("%w: %v", driver.ErrUnavailable, err)
	}
	if o == opWrite {
		return fmt.Errorf("%w: %q: %v", driver.ErrWriteFailed, key, err)
	}
	return fmt.Errorf("%w: %q: %v", driver.ErrReadFailed, key, err)
}
