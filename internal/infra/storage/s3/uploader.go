package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader stores binary content under a key and returns a public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (publicURL string, err error)
}

// PhotoBucket keeps listing photos in an S3-compatible bucket. Keys follow
// the listings/<id>/<file> layout the upload handler produces, and objects
// are public-read so the gallery can fetch them without going through this
// service.
type PhotoBucket struct {
	bucket         string
	publicBaseURL  string
	client         *minio.Client
	logger         *slog.Logger
	bucketInitOnce sync.Once
	bucketInitErr  error
}

func NewPhotoBucket(endpoint string, useSSL bool, accessKey, secretKey, bucket, publicBaseURL string, logger *slog.Logger) (*PhotoBucket, error) {
	cleanEndpoint := strings.TrimSpace(endpoint)
	if cleanEndpoint == "" {
		return nil, errors.New("s3: endpoint is required")
	}
	if bucket = strings.TrimSpace(bucket); bucket == "" {
		return nil, errors.New("s3: bucket is required")
	}

	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(strings.TrimSpace(accessKey), strings.TrimSpace(secretKey), ""),
		Secure: useSSL,
	}
	minioClient, err := minio.New(parseEndpoint(cleanEndpoint), opts)
	if err != nil {
		return nil, fmt.Errorf("s3: create client: %w", err)
	}

	base := strings.TrimSpace(publicBaseURL)
	if base == "" {
		base = cleanEndpoint
	}

	return &PhotoBucket{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
		client:        minioClient,
		logger:        logger,
	}, nil
}

func (b *PhotoBucket) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	if reader == nil {
		return "", errors.New("s3: reader is required")
	}
	key = strings.Trim(strings.TrimSpace(key), "/")
	if key == "" {
		return "", errors.New("s3: object key is required")
	}
	if err := b.ensureBucket(ctx); err != nil {
		return "", err
	}

	if contentType == "" {
		// Browsers upload photos without a type often enough that the
		// gallery would otherwise serve them as downloads.
		contentType = "image/jpeg"
	}

	_, err := b.client.PutObject(ctx, b.bucket, key, reader, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("s3: put object: %w", err)
	}

	publicURL := b.objectURL(key)
	if b.logger != nil {
		b.logger.Info("listing photo stored", "bucket", b.bucket, "key", key, "url", publicURL)
	}
	return publicURL, nil
}

// NoopPhotoStore fails fast when photo storage is not configured.
type NoopPhotoStore struct{}

func (NoopPhotoStore) Upload(_ context.Context, _ string, _ io.Reader, _ string) (string, error) {
	return "", errors.New("photo storage is not configured")
}

func (b *PhotoBucket) ensureBucket(ctx context.Context) error {
	b.bucketInitOnce.Do(func() {
		exists, err := b.client.BucketExists(ctx, b.bucket)
		if err != nil {
			b.bucketInitErr = fmt.Errorf("s3: check bucket: %w", err)
			return
		}
		if exists {
			return
		}
		if err := b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{}); err != nil {
			b.bucketInitErr = fmt.Errorf("s3: create bucket: %w", err)
			return
		}
		if err := b.allowPublicRead(ctx); err != nil {
			b.bucketInitErr = err
		}
	})
	return b.bucketInitErr
}

// Photos must be directly fetchable by the browser.
func (b *PhotoBucket) allowPublicRead(ctx context.Context) error {
	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, b.bucket)
	if err := b.client.SetBucketPolicy(ctx, b.bucket, policy); err != nil {
		return fmt.Errorf("s3: set bucket policy: %w", err)
	}
	return nil
}

func (b *PhotoBucket) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", b.publicBaseURL, b.bucket, strings.TrimLeft(key, "/"))
}

func parseEndpoint(endpoint string) string {
	if parsed, err := url.Parse(endpoint); err == nil && parsed.Host != "" {
		return parsed.Host
	}
	return endpoint
}

var _ Uploader = (*PhotoBucket)(nil)
var _ Uploader = NoopPhotoStore{}
