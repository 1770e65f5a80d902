// Where: internal/export/s3.go
// What: S3 upload adapter.
// Why: Push exported image archives to S3-compatible storage.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader defines the storage operation the export flow needs.
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader) error
}

type awsS3Uploader struct {
	client *s3.Client
}

func (u awsS3Uploader) Upload(ctx context.Context, bucket, key string, body io.Reader) error {
	if u.client == nil {
		return fmt.Errorf("s3 client is nil")
	}
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	return err
}
