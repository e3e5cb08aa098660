package database

import (
	"context"
	"log"

	"woodcraft/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client. DynamoDBEndpoint, when set,
// points the client at DynamoDB Local (e.g. http://dynamodb:8000).
func ConnectDynamoDB(cfg config.AWSConfig) *dynamodb.Client {
	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(awsCfg, dynamoOptions(cfg)...)
}

func NewAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

func dynamoOptions(cfg config.AWSConfig) []func(*dynamodb.Options) {
	if cfg.DynamoDBEndpoint == "" {
		return nil
	}
	log.Printf("[database][dynamodb] using custom endpoint=%s", cfg.DynamoDBEndpoint)
	return []func(*dynamodb.Options){
		func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		},
	}
}
