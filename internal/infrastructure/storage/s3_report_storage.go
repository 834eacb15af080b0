package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"agenda_tecnica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3PresignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3ReportStorage uploads rendered reports to a bucket and hands out
// presigned download links.
type S3ReportStorage struct {
	client    S3PutAPI
	presigner S3PresignAPI
	bucket    string
}

var _ interfaces.IReportStorage = (*S3ReportStorage)(nil)

func NewS3ReportStorage(client S3PutAPI, presigner S3PresignAPI, bucket string) *S3ReportStorage {
	return &S3ReportStorage{client: client, presigner: presigner, bucket: bucket}
}

// NewS3ReportStorageFromConfig builds the S3 client and presigner from the
// shared AWS configuration.
func NewS3ReportStorageFromConfig(awsCfg aws.Config, bucket string) *S3ReportStorage {
	client := s3.NewFromConfig(awsCfg)
	return NewS3ReportStorage(client, s3.NewPresignClient(client), bucket)
}

func (s *S3ReportStorage) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(body),
		ContentType:        aws.String(contentType),
		ContentLength:      aws.Int64(int64(len(body))),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", path.Base(key))),
	})
	return err
}

func (s *S3ReportStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
