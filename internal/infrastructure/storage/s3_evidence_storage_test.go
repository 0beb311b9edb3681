package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePutObject struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutObject) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		b, _ := io.ReadAll(params.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func newTestStorage(client putObjectAPI, bucket string) *S3EvidenceStorage {
	return &S3EvidenceStorage{client: client, bucket: bucket, logger: zap.NewNop()}
}

func TestS3EvidenceStorage_Upload(t *testing.T) {
	fake := &fakePutObject{}
	s := newTestStorage(fake, "evidence")

	ref, err := s.Upload(context.Background(), "bookings/doc-1/ev-1.png", "image/png", strings.NewReader("png"), 3)
	require.NoError(t, err)
	assert.Equal(t, "s3://evidence/bookings/doc-1/ev-1.png", ref)
	assert.Equal(t, "evidence", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(fake.input.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(fake.input.ContentLength))
	assert.Equal(t, "png", fake.body)
}

func TestS3EvidenceStorage_UploadError(t *testing.T) {
	s := newTestStorage(&fakePutObject{err: errors.New("access denied")}, "evidence")

	_, err := s.Upload(context.Background(), "k", "", strings.NewReader("x"), 1)
	assert.ErrorContains(t, err, "access denied")
}

func TestS3EvidenceStorage_NotConfigured(t *testing.T) {
	s := NewS3EvidenceStorage(nil, "", false)
	_, err := s.Upload(context.Background(), "k", "", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrEvidenceStorageNotConfigured)
}

func TestS3EvidenceStorage_Mock(t *testing.T) {
	s := NewS3EvidenceStorage(nil, "", true)
	ref, err := s.Upload(context.Background(), "bookings/doc-1/ev-1.png", "image/png", strings.NewReader("x"), 1)
	require.NoError(t, err)
	assert.Equal(t, "mock://bookings/doc-1/ev-1.png", ref)
}
