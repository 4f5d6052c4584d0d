// Package s3 implements the storage driver over any S3 API-compatible
// service (AWS S3, MinIO, Ceph RGW, GCS in S3-compat mode) using
// aws-sdk-go-v2.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/sphynkx/ytstorage/driver"
)

// Client is the subset of the S3 API the driver uses. *awss3.Client
// satisfies it; tests substitute a mock.
type Client interface {
	HeadObject(ctx context.Context, in *awss3.HeadObjectInput, opts ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *awss3.GetObjectInput, opts ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, in *awss3.DeleteObjectInput, opts ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *awss3.ListObjectsV2Input, opts ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)

	// Required by manager.Uploader for streamed/multipart puts.
	PutObject(ctx context.Context, in *awss3.PutObjectInput, opts ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	CreateMultipartUpload(ctx context.Context, in *awss3.CreateMultipartUploadInput, opts ...func(*awss3.Options)) (*awss3.CreateMultipartUploadOutput, error)
	UploadPart(ctx context.Context, in *awss3.UploadPartInput, opts ...func(*awss3.Options)) (*awss3.UploadPartOutput, error)
	CompleteMultipartUpload(ctx context.Context, in *awss3.CompleteMultipartUploadInput, opts ...func(*awss3.Options)) (*awss3.CompleteMultipartUploadOutput, error)
	AbortMultipartUpload(ctx context.Context, in *awss3.AbortMultipartUploadInput, opts ...func(*awss3.Options)) (*awss3.AbortMultipartUploadOutput, error)
}

// Options tunes the driver beyond the required bucket/client pair.
type Options struct {
	// Prefix is prepended to every key inside the bucket, e.g. "media/".
	Prefix string
	// PartSize is the multipart threshold and part size for uploads.
	// Payloads below it go up as one request. Zero keeps the SDK default.
	PartSize int64
	// Concurrency is the number of parallel part uploads. Zero keeps the
	// SDK default.
	Concurrency int
}

// Driver wraps a single bucket behind one endpoint/credential pair.
type Driver struct {
	client   Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// New creates the driver. The bucket must already exist.
func New(client Client, bucket string, opts Options) *Driver {
	prefix := driver.CleanPrefix(opts.Prefix)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		if opts.PartSize > 0 {
			u.PartSize = opts.PartSize
		}
		if opts.Concurrency > 0 {
			u.Concurrency = opts.Concurrency
		}
	})
	return &Driver{
		client:   client,
		uploader: uploader,
		bucket:   bucket,
		prefix:   prefix,
	}
}

// Kind implements driver.Driver.
func (d *Driver) Kind() string { return "s3" }

func (d *Driver) objectKey(key string) (string, error) {
	key, err := driver.NormalizeKey(key)
	if err != nil {
		return "", err
	}
	return d.prefix + key, nil
}

// Put implements driver.Driver. The uploader streams parts from r; the
// payload is never held in memory whole.
func (d *Driver) Put(ctx context.Context, key string, r io.Reader, size int64, opts driver.PutOptions) error {
	objKey, err := d.objectKey(key)
	if err != nil {
		return err
	}

	in := &awss3.PutObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(objKey),
		Body:   r,
	}
	if opts.ContentType != "" {
		in.ContentType = aws.String(opts.ContentType)
	}
	if _, err := d.uploader.Upload(ctx, in); err != nil {
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

	out, err := d.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		return nil, translate(opRead, key, err)
	}
	return out.Body, nil
}

// Delete implements driver.Driver. S3 deletes are unconditionally
// successful, so a head request first preserves the not-found contract.
func (d *Driver) Delete(ctx context.Context, key string) error {
	objKey, err := d.objectKey(key)
	if err != nil {
		return err
	}

	if _, err := d.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(objKey),
	}); err != nil {
		return translate(opRead, key, err)
	}
	if _, err := d.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(objKey),
	}); err != nil {
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

	head, err := d.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		return driver.ObjectInfo{}, translate(opRead, key, err)
	}
	normKey, _ := driver.NormalizeKey(key)
	return driver.ObjectInfo{
		Key:          normKey,
		Size:         aws.ToInt64(head.ContentLength),
		ContentType:  aws.ToString(head.ContentType),
		LastModified: aws.ToTime(head.LastModified),
		ETag:         strings.Trim(aws.ToString(head.ETag), `"`),
	}, nil
}

// List implements driver.Driver. The backend paginates; the walk flattens
// pages into one ordered enumeration. S3 lists keys in UTF-8 binary
// order, which matches the lexicographic guarantee.
func (d *Driver) List(ctx context.Context, prefix string, fn driver.ListFunc) error {
	fullPrefix := d.prefix + driver.CleanPrefix(prefix)

	paginator := awss3.NewListObjectsV2Paginator(d.client, &awss3.ListObjectsV2Input{
		Bucket: aws.String(d.bucket),
		Prefix: aws.String(fullPrefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return translate(opRead, prefix, err)
		}
		for _, obj := range page.Contents {
			key := strings.TrimPrefix(aws.ToString(obj.Key), d.prefix)
			if key == "" {
				continue
			}
			if err := fn(key); err != nil {
				return err
			}
		}
	}
	return nil
}

type op int

const (
	opRead op = iota
	opWrite
)

// translate maps every backend-native failure onto the shared error
// kinds; nothing S3-specific crosses the driver boundary.
func translate(o op, key string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var nsk *types.NoSuchKey
	var nf *types.NotFound
	if errors.As(err, &nsk) || errors.As(err, &nf) {
		return fmt.Errorf("%w: %s", driver.ErrNotFound, key)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "404":
			return fmt.Errorf("%w: %s", driver.ErrNotFound, key)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch",
			"ExpiredToken", "SlowDown", "Throttling", "ThrottlingException",
			"RequestTimeout", "ServiceUnavailable", "InternalError":
			return fmt.Errorf("%w: %s: %v", driver.ErrUnavailable, apiErr.ErrorCode(), err)
		}
		if o == opWrite {
			return fmt.Errorf("%w: %q: %v", driver.ErrWriteFailed, key, err)
		}
		return fmt.Errorf("%w: %q: %v", driver.ErrReadFailed, key, err)
	}

	// No API-level response at all: connection refused, DNS failure,
	// timeout below the HTTP layer.
	return fmt.Errorf("%w: %v", driver.ErrUnavailable, err)
}
