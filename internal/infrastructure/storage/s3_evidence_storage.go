package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tour_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var ErrEvidenceStorageNotConfigured = errors.New("evidence storage not configured")

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3EvidenceStorage keeps transfer screenshots in a single bucket and returns
// s3://bucket/key references.
type S3EvidenceStorage struct {
	client   putObjectAPI
	bucket   string
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IEvidenceStorage = (*S3EvidenceStorage)(nil)

// ConnectS3 creates an S3 client from the shared AWS config.
func ConnectS3(awsCfg aws.Config, usePathStyle bool) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = usePathStyle
	})
}

func NewS3EvidenceStorage(client *s3.Client, bucket string, mockMode bool) *S3EvidenceStorage {
	s := &S3EvidenceStorage{bucket: strings.TrimSpace(bucket), mockMode: mockMode, logger: zap.L().Named("evidence_storage")}
	if client != nil {
		s.client = client
	}
	return s
}

func (s *S3EvidenceStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if s.mockMode {
		s.logger.Debug("mock upload", zap.String("key", key), zap.Int64("size", size))
		return "mock://" + key, nil
	}
	if s.client == nil || s.bucket == "" {
		return "", ErrEvidenceStorageNotConfigured
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.Error("upload failed", zap.String("bucket", s.bucket), zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("upload evidence %s: %w", key, err)
	}
	s.logger.Info("uploaded", zap.String("bucket", s.bucket), zap.String("key", key), zap.Int64("size", size))
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
