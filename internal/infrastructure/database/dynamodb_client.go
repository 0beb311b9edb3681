package database

import (
	"context"

	"tour_billing/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectDynamoDB creates a DynamoDB client from the shared AWS config.
func ConnectDynamoDB(awsCfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg)
}

// NewAWSConfig loads the AWS config shared by the DynamoDB and S3 clients.
//
// Static credentials are used only when AWS_ACCESS_KEY_ID is set (local
// DynamoDB and S3 emulators need them); otherwise the default chain applies.
// DYNAMODB_ENDPOINT and S3_ENDPOINT redirect the matching service.
func NewAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	if cfg.AWSAccessKeyID != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(creds))
	}

	endpoints := map[string]string{}
	if cfg.DynamoDBEndpoint != "" {
		endpoints[dynamodb.ServiceID] = cfg.DynamoDBEndpoint
	}
	if cfg.S3Endpoint != "" {
		endpoints[s3.ServiceID] = cfg.S3Endpoint
	}
	if len(endpoints) > 0 {
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(endpointResolver(endpoints)))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func endpointResolver(endpoints map[string]string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if url, ok := endpoints[service]; ok {
			return aws.Endpoint{URL: url, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}
