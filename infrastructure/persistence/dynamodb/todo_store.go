// Package dynamodb implements the todo store on an AWS DynamoDB table.
package dynamodb

import (
	"context"
	"fmt"

	"todo-backend/application/ports"
	"todo-backend/domain/todo"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// DBClient defines the DynamoDB operations the store uses, making it testable.
type DBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// TodoStore implements ports.TodoStore using a DynamoDB table whose
// partition key is the todo id.
type TodoStore struct {
	client    DBClient
	tableName string
	logger    *zap.Logger
}

// NewTodoStore creates a new TodoStore.
func NewTodoStore(client DBClient, tableName string, logger *zap.Logger) ports.TodoStore {
	return &TodoStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// todoItem represents the DynamoDB item structure for a todo record.
type todoItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Completed bool   `dynamodbav:"completed"`
}

// Get returns the record with the given id, or (nil, nil) if absent.
// Point reads are strongly consistent by the table default.
func (s *TodoStore) Get(ctx context.Context, id string) (*todo.Todo, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	}

	result, err := s.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	if len(result.Item) == 0 {
		return nil, nil
	}

	var item todoItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal todo: %w", err)
	}

	return &todo.Todo{
		ID:        item.ID,
		Title:     item.Title,
		Completed: item.Completed,
	}, nil
}

// Put upserts the record by its id.
func (s *TodoStore) Put(ctx context.Context, t *todo.Todo) error {
	item := todoItem{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal todo: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		s.logger.Error("Failed to put todo to DynamoDB",
			zap.Error(err),
			zap.String("todoID", t.ID),
		)
		return fmt.Errorf("failed to put todo: %w", err)
	}

	return nil
}

// ScanAll reads every record in the table, following LastEvaluatedKey until
// the scan is exhausted. Scans may be eventually consistent.
func (s *TodoStore) ScanAll(ctx context.Context) ([]todo.Todo, error) {
	proj := expression.NamesList(
		expression.Name("id"),
		expression.Name("title"),
		expression.Name("completed"),
	)
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	todosList := make([]todo.Todo, 0)
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:                aws.String(s.tableName),
			ProjectionExpression:     expr.Projection(),
			ExpressionAttributeNames: expr.Names(),
			ExclusiveStartKey:        lastEvaluatedKey,
		}

		result, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todos: %w", err)
		}

		var items []todoItem
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal todos: %w", err)
		}

		for _, item := range items {
			todosList = append(todosList, todo.Todo{
				ID:        item.ID,
				Title:     item.Title,
				Completed: item.Completed,
			})
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return todosList, nil
}

// DeleteByID removes the record if present. ReturnValues=ALL_OLD lets the
// caller learn whether the item existed without a prior read.
func (s *TodoStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	}

	result, err := s.client.DeleteItem(ctx, input)
	if err != nil {
		s.logger.Error("Failed to delete todo from DynamoDB",
			zap.Error(err),
			zap.String("todoID", id),
		)
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}

	return len(result.Attributes) > 0, nil
}
