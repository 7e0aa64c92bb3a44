// Package dynamodb stores the journal's key-value pairs in a DynamoDB table
// using the single-table PK/SK layout. Each store key is one item.
package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Adams-404/Between/application/ports"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	keyPrefix  = "KV#"
	valueSK    = "VALUE"
	batchLimit = 25

	defaultMaxRetries = 3
	defaultRetryDelay = 50 * time.Millisecond
)

// API is the subset of the DynamoDB client the store calls.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// ddbValue represents one stored key in DynamoDB.
type ddbValue struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Key       string `dynamodbav:"Key"`
	Value     string `dynamodbav:"Value"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

// KVStore is a KeyValueStore over a DynamoDB table.
type KVStore struct {
	client     API
	tableName  string
	logger     *zap.Logger
	now        func() time.Time
	maxRetries int
	retryDelay time.Duration
}

// NewKVStore creates a store writing to tableName
func NewKVStore(
	client API,
	tableName string,
	logger *zap.Logger,
) *KVStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KVStore{
		client:     client,
		tableName:  tableName,
		logger:     logger,
		now:        time.Now,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
}

// NewClient builds a DynamoDB client from the default AWS credential chain.
// A non-empty endpoint points the client at DynamoDB Local.
func NewClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: keyPrefix + key},
		"SK": &types.AttributeValueMemberS{Value: valueSK},
	}
}

// Get retrieves the value stored under key
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	proj := expression.NamesList(expression.Name("Value"))
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return "", false, appErrors.NewInternal("failed to build projection", err)
	}

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(s.tableName),
		Key:                      itemKey(key),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
		ConsistentRead:           aws.Bool(true),
	})
	if err != nil {
		return "", false, s.classify("GetItem", key, err)
	}
	if result.Item == nil {
		return "", false, nil
	}

	var item ddbValue
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return "", false, appErrors.NewCorrupted(fmt.Sprintf("item for %s does not decode", key), err)
	}
	return item.Value, true, nil
}

// Set replaces the value stored under key
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	item, err := attributevalue.MarshalMap(ddbValue{
		PK:        keyPrefix + key,
		SK:        valueSK,
		Key:       key,
		Value:     value,
		UpdatedAt: s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return appErrors.NewInternal("failed to marshal item", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return s.classify("PutItem", key, err)
	}

	s.logger.Debug("Value stored",
		zap.String("key", key),
		zap.Int("bytes", len(value)),
	)
	return nil
}

// MultiRemove deletes the listed keys in batches of 25. Batches run in
// parallel and unprocessed items are retried with backoff.
func (s *KVStore) MultiRemove(ctx context.Context, keys []string) error {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if !seen[key] {
			seen[key] = true
			unique = append(unique, key)
		}
	}
	if len(unique) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < len(unique); i += batchLimit {
		end := i + batchLimit
		if end > len(unique) {
			end = len(unique)
		}
		batch := unique[i:end]

		g.Go(func() error {
			return s.deleteBatch(ctx, batch)
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to remove keys", zap.Strings("keys", unique), zap.Error(err))
		return err
	}
	return nil
}

func (s *KVStore) deleteBatch(ctx context.Context, keys []string) error {
	requests := make([]types.WriteRequest, 0, len(keys))
	for _, key := range keys {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: itemKey(key)},
		})
	}

	pending := map[string][]types.WriteRequest{s.tableName: requests}
	delay := s.retryDelay

	for attempt := 0; ; attempt++ {
		result, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: pending,
		})
		if err != nil {
			return s.classify("BatchWriteItem", fmt.Sprintf("%d keys", len(keys)), err)
		}

		pending = result.UnprocessedItems
		if len(pending[s.tableName]) == 0 {
			return nil
		}
		if attempt >= s.maxRetries {
			return appErrors.NewUnavailable(
				fmt.Sprintf("%d deletes still unprocessed after %d retries", len(pending[s.tableName]), s.maxRetries),
				nil,
			)
		}

		s.logger.Warn("Retrying unprocessed deletes",
			zap.Int("attempt", attempt+1),
			zap.Int("unprocessed", len(pending[s.tableName])),
			zap.Duration("backoff", delay),
		)

		select {
		case <-time.After(delay):
			delay *= 2
		case <-ctx.Done():
			return appErrors.NewUnavailable("batch delete cancelled", ctx.Err())
		}
	}
}

// classify maps DynamoDB API errors to the application taxonomy. Throttling
// and service-side faults are UNAVAILABLE; everything else is PERSISTENCE.
func (s *KVStore) classify(operation, resource string, err error) error {
	message := fmt.Sprintf("dynamodb %s failed for %s", operation, resource)

	var ae smithy.APIError
	if errors.As(err, &ae) {
		switch ae.ErrorCode() {
		case "ProvisionedThroughputExceededException",
			"RequestLimitExceeded",
			"ThrottlingException",
			"InternalServerError",
			"ServiceUnavailable":
			return appErrors.NewUnavailable(message, err)
		case "ResourceNotFoundException":
			return appErrors.NewPersistence(fmt.Sprintf("table %s not found", s.tableName), err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return appErrors.NewUnavailable(message, err)
	}
	return appErrors.NewPersistence(message, err)
}

var _ ports.KeyValueStore = (*KVStore)(nil)
