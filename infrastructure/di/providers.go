package di

import (
	"context"
	"fmt"

	"todo-backend/application/ports"
	"todo-backend/application/todos"
	"todo-backend/infrastructure/config"
	dynamostore "todo-backend/infrastructure/persistence/dynamodb"
	"todo-backend/infrastructure/persistence/memory"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideTodoStore creates the todo store selected by STORE_DRIVER
func ProvideTodoStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) (ports.TodoStore, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return memory.NewTodoStore(), nil
	case config.StoreDriverDynamoDB:
		return dynamostore.NewTodoStore(client, cfg.DynamoDBTable, logger), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// ProvideRepository creates the todo repository
func ProvideRepository(store ports.TodoStore, logger *zap.Logger) *todos.Repository {
	return todos.NewRepository(store, logger)
}
