// Package storage keeps uploaded resume files in S3 compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ObjectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Enabled reports whether uploads are kept at all.
	Enabled() bool
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("loading s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *S3Store) Enabled() bool {
	return true
}

func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64) error {
	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}

	return nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	presigner := s3.NewPresignClient(s.client)

	presigned, err := presigner.PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		},
		func(po *s3.PresignOptions) {
			po.Expires = expiry
		},
	)
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", key, err)
	}

	return presigned.URL, nil
}

// NoopStore is used when no bucket is configured. Only the parsed resume text
// is kept.
type NoopStore struct{}

func (NoopStore) Enabled() bool { return false }

func (NoopStore) Put(ctx context.Context, key string, body io.Reader, size int64) error {
	return nil
}

func (NoopStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "", nil
}

// ResumeKey builds the object key for a user's uploaded resume file.
func ResumeKey(userID fmt.Stringer, uploadedAt time.Time, filename string) string {
	ext := path.Ext(path.Base(filename))
	return fmt.Sprintf("resumes/%s/%d%s", userID, uploadedAt.UnixMilli(), ext)
}
