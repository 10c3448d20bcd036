package repository

import (
	"context"
	"errors"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServicesTableName = "services"
	servicesTenantIDIndex    = "tenant_id-index"
)

type serviceRecord struct {
	ID             string `dynamodbav:"id"`
	TenantID       string `dynamodbav:"tenant_id"`
	Category       string `dynamodbav:"category,omitempty"`
	Name           string `dynamodbav:"name"`
	Description    string `dynamodbav:"description,omitempty"`
	Unit           string `dynamodbav:"unit,omitempty"`
	BasePrice      string `dynamodbav:"base_price"`
	EstimatedHours string `dynamodbav:"estimated_hours"`
	MinValue       string `dynamodbav:"min_value"`
	MaxValue       string `dynamodbav:"max_value"`
	IsActive       bool   `dynamodbav:"is_active"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists the service catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceRecord(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var rec serviceRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Service{}, err
	}
	return fromServiceRecord(rec), nil
}

func (r *ServiceDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Service, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(servicesTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	services := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec serviceRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		services = append(services, fromServiceRecord(rec))
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceRecord(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceRecord(s entities.Service) serviceRecord {
	return serviceRecord{
		ID:             s.ID,
		TenantID:       s.TenantID,
		Category:       s.Category,
		Name:           s.Name,
		Description:    s.Description,
		Unit:           s.Unit,
		BasePrice:      decToString(s.BasePrice),
		EstimatedHours: decToString(s.EstimatedHours),
		MinValue:       decToString(s.MinValue),
		MaxValue:       decToString(s.MaxValue),
		IsActive:       s.IsActive,
		CreatedAt:      timeToString(s.CreatedAt),
		UpdatedAt:      timeToString(s.UpdatedAt),
	}
}

func fromServiceRecord(rec serviceRecord) entities.Service {
	return entities.Service{
		ID:             rec.ID,
		TenantID:       rec.TenantID,
		Category:       rec.Category,
		Name:           rec.Name,
		Description:    rec.Description,
		Unit:           rec.Unit,
		BasePrice:      decFromString(rec.BasePrice),
		EstimatedHours: decFromString(rec.EstimatedHours),
		MinValue:       decFromString(rec.MinValue),
		MaxValue:       decFromString(rec.MaxValue),
		IsActive:       rec.IsActive,
		CreatedAt:      timeFromString(rec.CreatedAt),
		UpdatedAt:      timeFromString(rec.UpdatedAt),
	}
}
