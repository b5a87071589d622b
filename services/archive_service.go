package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"github.com/google/uuid"
)

// ArchiveService interface for raw invocation payload storage
type ArchiveService interface {
	SaveEvent(ctx context.Context, key string, payload []byte) error
	GetEvent(ctx context.Context, key string) ([]byte, error)
}

// LocalArchiveService implements ArchiveService using the local filesystem
type LocalArchiveService struct {
	basePath string
}

func NewLocalArchiveService(basePath string) (*LocalArchiveService, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, err
	}
	return &LocalArchiveService{basePath: basePath}, nil
}

func (s *LocalArchiveService) SaveEvent(ctx context.Context, key string, payload []byte) error {
	fullPath := filepath.Join(s.basePath, key)

	// Create directory if needed
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, payload, 0644)
}

func (s *LocalArchiveService) GetEvent(ctx context.Context, key string) ([]byte, error) {
	fullPath := filepath.Join(s.basePath, key)
	return os.ReadFile(fullPath)
}

// S3ArchiveService implements ArchiveService using AWS S3
type S3ArchiveService struct {
	client *s3.Client
	bucket string
}

func NewS3ArchiveService(bucket string) (*S3ArchiveService, error) {
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}

	// Instrument AWS SDK v2 with X-Ray for automatic S3 operation tracing
	awsv2.AWSV2Instrumentor(&cfg.APIOptions)

	client := s3.NewFromConfig(cfg)
	return &S3ArchiveService{client: client, bucket: bucket}, nil
}

func (s *S3ArchiveService) SaveEvent(ctx context.Context, key string, payload []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	return err
}

func (s *S3ArchiveService) GetEvent(ctx context.Context, key string) ([]byte, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer output.Body.Close()

	return io.ReadAll(output.Body)
}

// NewArchiveService creates the appropriate archive service based on environment
func NewArchiveService(archiveType, pathOrBucket string) (ArchiveService, error) {
	switch archiveType {
	case "s3":
		return NewS3ArchiveService(pathOrBucket)
	case "local":
		return NewLocalArchiveService(pathOrBucket)
	default:
		return nil, fmt.Errorf("unknown archive type: %s", archiveType)
	}
}

// GenerateEventKey produces a date-partitioned object key for one payload
func GenerateEventKey(ts time.Time) string {
	return fmt.Sprintf("events/lineitems/%s/%s.json", ts.Format("2006/01/02"), uuid.NewString())
}
