package services

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage is the S3-backed alternative to LocalStorage, for deployments
// where the container filesystem is ephemeral. It implements the same
// contract, including the protected-defaults rule.
type S3Storage struct {
	BucketName string
	Client     *s3.Client
}

// NewS3Storage initializes the S3-backed blob store.
func NewS3Storage(bucket, region string) (*S3Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	if bucket == "" {
		return nil, fmt.Errorf("bucket name is not set")
	}

	return &S3Storage{
		BucketName: bucket,
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

func (s *S3Storage) Put(data []byte, originalName string, contentType string) (string, error) {
	if err := validateImage(data, originalName, contentType); err != nil {
		return "", err
	}

	filename := uploadFilename(originalName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.BucketName),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}
	return filename, nil
}

func (s *S3Storage) Delete(filename string) error {
	if isProtectedFilename(filename) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// DeleteObject succeeds on missing keys, so delete stays idempotent.
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(filename),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image from S3: %w", err)
	}
	return nil
}

func (s *S3Storage) Protected(filename string) bool {
	return isProtectedFilename(filename)
}

// PublicURL returns the public bucket URL for a stored object. The /gallery
// route redirects here so the src paths recorded in the gallery document stay
// reachable when images live in S3.
func (s *S3Storage) PublicURL(filename string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.BucketName, url.PathEscape(filename))
}
