package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// LoadAWSConfig resolves credentials from the default chain for region.
func LoadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return cfg, nil
}

// S3Config holds the client used to archive uploaded images.
type S3Config struct {
	Client     *s3.Client
	BucketName string
}

// NewS3Config creates a new S3 configuration
func NewS3Config(ctx context.Context, region, bucket string) (*S3Config, error) {
	awsCfg, err := LoadAWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: bucket,
	}, nil
}
