package repository

import (
	"context"
	"errors"
	"time"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultProposalsTableName = "proposals"
	proposalsTenantIDIndex    = "tenant_id-index"
)

type proposalRecord struct {
	ID              string `dynamodbav:"id"`
	TenantID        string `dynamodbav:"tenant_id"`
	ClientID        string `dynamodbav:"client_id"`
	Title           string `dynamodbav:"title"`
	Description     string `dynamodbav:"description,omitempty"`
	Status          string `dynamodbav:"status"`
	ValidityDays    int    `dynamodbav:"validity_days"`
	Notes           string `dynamodbav:"notes,omitempty"`
	DiscountGeneral string `dynamodbav:"discount_general"`
	DisplacementFee string `dynamodbav:"displacement_fee"`
	TotalValue      string `dynamodbav:"total_value"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tenant_id-index (PK: tenant_id)

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalRecord(p))
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var rec proposalRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalRecord(rec), nil
}

func (r *ProposalDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	proposals := make([]entities.Proposal, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec proposalRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		proposals = append(proposals, fromProposalRecord(rec))
	}
	return proposals, nil
}

func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalRecord(p))
	if err != nil {
		return entities.Proposal{}, err
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
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

// SetTotalByID rewrites only the derived total, leaving the user-editable
// fields untouched even if another writer raced us.
func (r *ProposalDynamoRepository) SetTotalByID(ctx context.Context, id string, total decimal.Decimal) (entities.Proposal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #total_value = :total, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total":      &types.AttributeValueMemberS{Value: decToString(total)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#total_value": "total_value",
			"#updated_at":  "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var rec proposalRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalRecord(rec), nil
}

func (r *ProposalDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProposalRecord(p entities.Proposal) proposalRecord {
	return proposalRecord{
		ID:              p.ID,
		TenantID:        p.TenantID,
		ClientID:        p.ClientID,
		Title:           p.Title,
		Description:     p.Description,
		Status:          string(p.Status),
		ValidityDays:    p.ValidityDays,
		Notes:           p.Notes,
		DiscountGeneral: decToString(p.DiscountGeneral),
		DisplacementFee: decToString(p.DisplacementFee),
		TotalValue:      decToString(p.TotalValue),
		CreatedAt:       timeToString(p.CreatedAt),
		UpdatedAt:       timeToString(p.UpdatedAt),
	}
}

func fromProposalRecord(rec proposalRecord) entities.Proposal {
	return entities.Proposal{
		ID:              rec.ID,
		TenantID:        rec.TenantID,
		ClientID:        rec.ClientID,
		Title:           rec.Title,
		Description:     rec.Description,
		Status:          entities.ProposalStatus(rec.Status),
		ValidityDays:    rec.ValidityDays,
		Notes:           rec.Notes,
		DiscountGeneral: decFromString(rec.DiscountGeneral),
		DisplacementFee: decFromString(rec.DisplacementFee),
		TotalValue:      decFromString(rec.TotalValue),
		CreatedAt:       timeFromString(rec.CreatedAt),
		UpdatedAt:       timeFromString(rec.UpdatedAt),
	}
}
