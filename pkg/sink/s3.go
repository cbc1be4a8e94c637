package sink

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// S3Sink writes documents to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	s := sink.NewS3(s3.NewFromConfig(cfg), "my-bucket")
//	err := s.Write(ctx, "pages/index.html", html)
type S3Sink struct {
	client *s3.Client
	bucket string
}

// NewS3 creates an S3 sink for the given bucket.
func NewS3(client *s3.Client, bucket string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket}
}

// Write uploads content to the object at key dest with a text/html
// content type.
func (s *S3Sink) Write(ctx context.Context, dest, content string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(dest),
		Body:        strings.NewReader(content),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	return errors.Wrapf(err, "put s3://%s/%s", s.bucket, dest)
}
