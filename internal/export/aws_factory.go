// Where: internal/export/aws_factory.go
// What: AWS client construction for archive uploads.
// Why: Encapsulate SDK configuration for custom and local endpoints.
package export

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultAWSRegion = "us-east-1"

// NewS3Uploader builds an Uploader against the given endpoint. An empty
// endpoint uses the default AWS resolution chain; a set endpoint switches to
// path-style addressing for S3-compatible stores like MinIO.
func NewS3Uploader(ctx context.Context, endpoint string) (Uploader, error) {
	cfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg, func(options *s3.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
			options.UsePathStyle = true
		}
	})
	return awsS3Uploader{client: client}, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = defaultAWSRegion
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	accessKey := os.Getenv("WSGIBOX_S3_ACCESS_KEY")
	secretKey := os.Getenv("WSGIBOX_S3_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	return config.LoadDefaultConfig(ctx, opts...)
}
