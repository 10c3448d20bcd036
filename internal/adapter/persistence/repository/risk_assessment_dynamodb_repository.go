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
	defaultRiskAssessmentsTableName = "risk_assessments"
	riskAssessmentsTenantIDIndex    = "tenant_id-index"
	riskAssessmentsClientIDIndex    = "client_id-index"
)

type riskAssessmentRecord struct {
	ID                  string `dynamodbav:"id"`
	TenantID            string `dynamodbav:"tenant_id"`
	ClientID            string `dynamodbav:"client_id"`
	Sector              string `dynamodbav:"sector"`
	RiskLevel           string `dynamodbav:"risk_level"`
	PsychosocialFactors string `dynamodbav:"psychosocial_factors,omitempty"`
	Recommendations     string `dynamodbav:"recommendations,omitempty"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// RiskAssessmentDynamoRepository persists RiskAssessment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)
//   - GSI: client_id-index (PK: client_id)

type RiskAssessmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRiskAssessmentRepository = (*RiskAssessmentDynamoRepository)(nil)

func NewRiskAssessmentDynamoRepository(ddb *dynamodb.Client) *RiskAssessmentDynamoRepository {
	return &RiskAssessmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RISK_ASSESSMENTS_TABLE", defaultRiskAssessmentsTableName),
	}
}

func (r *RiskAssessmentDynamoRepository) Create(ctx context.Context, a entities.RiskAssessment) (entities.RiskAssessment, error) {
	av, err := attributevalue.MarshalMap(toRiskAssessmentRecord(a))
	if err != nil {
		return entities.RiskAssessment{}, err
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
		return entities.RiskAssessment{}, err
	}
	return a, nil
}

func (r *RiskAssessmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.RiskAssessment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RiskAssessment{}, err
	}
	if len(out.Item) == 0 {
		return entities.RiskAssessment{}, nil
	}

	var rec riskAssessmentRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.RiskAssessment{}, err
	}
	return fromRiskAssessmentRecord(rec), nil
}

func (r *RiskAssessmentDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.RiskAssessment, error) {
	return r.queryIndex(ctx, riskAssessmentsTenantIDIndex, "tenant_id", tenantID)
}

func (r *RiskAssessmentDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.RiskAssessment, error) {
	return r.queryIndex(ctx, riskAssessmentsClientIDIndex, "client_id", clientID)
}

func (r *RiskAssessmentDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.RiskAssessment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	assessments := make([]entities.RiskAssessment, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec riskAssessmentRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		assessments = append(assessments, fromRiskAssessmentRecord(rec))
	}
	return assessments, nil
}

func (r *RiskAssessmentDynamoRepository) Update(ctx context.Context, a entities.RiskAssessment) (entities.RiskAssessment, error) {
	av, err := attributevalue.MarshalMap(toRiskAssessmentRecord(a))
	if err != nil {
		return entities.RiskAssessment{}, err
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
			return entities.RiskAssessment{}, nil
		}
		return entities.RiskAssessment{}, err
	}
	return a, nil
}

func (r *RiskAssessmentDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toRiskAssessmentRecord(a entities.RiskAssessment) riskAssessmentRecord {
	return riskAssessmentRecord{
		ID:                  a.ID,
		TenantID:            a.TenantID,
		ClientID:            a.ClientID,
		Sector:              a.Sector,
		RiskLevel:           string(a.RiskLevel),
		PsychosocialFactors: a.PsychosocialFactors,
		Recommendations:     a.Recommendations,
		CreatedAt:           timeToString(a.CreatedAt),
		UpdatedAt:           timeToString(a.UpdatedAt),
	}
}

func fromRiskAssessmentRecord(rec riskAssessmentRecord) entities.RiskAssessment {
	return entities.RiskAssessment{
		ID:                  rec.ID,
		TenantID:            rec.TenantID,
		ClientID:            rec.ClientID,
		Sector:              rec.Sector,
		RiskLevel:           entities.RiskLevel(rec.RiskLevel),
		PsychosocialFactors: rec.PsychosocialFactors,
		Recommendations:     rec.Recommendations,
		CreatedAt:           timeFromString(rec.CreatedAt),
		UpdatedAt:           timeFromString(rec.UpdatedAt),
	}
}
