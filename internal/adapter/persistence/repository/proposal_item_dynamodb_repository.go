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
	defaultProposalItemsTableName = "proposal_items"
	proposalItemsProposalIDIndex  = "proposal_id-index"
)

type proposalItemRecord struct {
	ID                        string `dynamodbav:"id"`
	ProposalID                string `dynamodbav:"proposal_id"`
	ServiceID                 string `dynamodbav:"service_id"`
	Quantity                  int    `dynamodbav:"quantity"`
	UnitPrice                 string `dynamodbav:"unit_price"`
	EstimatedHours            string `dynamodbav:"estimated_hours"`
	AdjustmentPersonalization string `dynamodbav:"adjustment_personalization"`
	AdjustmentRisk            string `dynamodbav:"adjustment_risk"`
	AdjustmentSeniority       string `dynamodbav:"adjustment_seniority"`
	VolumeDiscount            string `dynamodbav:"volume_discount"`
	TotalValue                string `dynamodbav:"total_value"`
	CreatedAt                 string `dynamodbav:"created_at"`
}

// ProposalItemDynamoRepository persists ProposalItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)

type ProposalItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalItemRepository = (*ProposalItemDynamoRepository)(nil)

func NewProposalItemDynamoRepository(ddb *dynamodb.Client) *ProposalItemDynamoRepository {
	return &ProposalItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSAL_ITEMS_TABLE", defaultProposalItemsTableName),
	}
}

func (r *ProposalItemDynamoRepository) Create(ctx context.Context, it entities.ProposalItem) (entities.ProposalItem, error) {
	av, err := attributevalue.MarshalMap(toProposalItemRecord(it))
	if err != nil {
		return entities.ProposalItem{}, err
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
		return entities.ProposalItem{}, err
	}
	return it, nil
}

func (r *ProposalItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProposalItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProposalItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProposalItem{}, nil
	}

	var rec proposalItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.ProposalItem{}, err
	}
	return fromProposalItemRecord(rec), nil
}

func (r *ProposalItemDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalItemsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProposalItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec proposalItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromProposalItemRecord(rec))
	}
	return items, nil
}

func (r *ProposalItemDynamoRepository) Update(ctx context.Context, it entities.ProposalItem) (entities.ProposalItem, error) {
	av, err := attributevalue.MarshalMap(toProposalItemRecord(it))
	if err != nil {
		return entities.ProposalItem{}, err
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
			return entities.ProposalItem{}, nil
		}
		return entities.ProposalItem{}, err
	}
	return it, nil
}

func (r *ProposalItemDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// DeleteByProposalID removes every item that belongs to the proposal. The
// GSI only projects keys we need, so we query and delete one by one; the
// cascade is not atomic, a retry after a partial failure is safe.
func (r *ProposalItemDynamoRepository) DeleteByProposalID(ctx context.Context, proposalID string) error {
	items, err := r.ListByProposalID(ctx, proposalID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := r.DeleteByID(ctx, it.ID); err != nil {
			return err
		}
	}
	return nil
}

func toProposalItemRecord(it entities.ProposalItem) proposalItemRecord {
	return proposalItemRecord{
		ID:                        it.ID,
		ProposalID:                it.ProposalID,
		ServiceID:                 it.ServiceID,
		Quantity:                  it.Quantity,
		UnitPrice:                 decToString(it.UnitPrice),
		EstimatedHours:            decToString(it.EstimatedHours),
		AdjustmentPersonalization: decToString(it.AdjustmentPersonalization),
		AdjustmentRisk:            decToString(it.AdjustmentRisk),
		AdjustmentSeniority:       decToString(it.AdjustmentSeniority),
		VolumeDiscount:            decToString(it.VolumeDiscount),
		TotalValue:                decToString(it.TotalValue),
		CreatedAt:                 timeToString(it.CreatedAt),
	}
}

func fromProposalItemRecord(rec proposalItemRecord) entities.ProposalItem {
	return entities.ProposalItem{
		ID:                        rec.ID,
		ProposalID:                rec.ProposalID,
		ServiceID:                 rec.ServiceID,
		Quantity:                  rec.Quantity,
		UnitPrice:                 decFromString(rec.UnitPrice),
		EstimatedHours:            decFromString(rec.EstimatedHours),
		AdjustmentPersonalization: decFromString(rec.AdjustmentPersonalization),
		AdjustmentRisk:            decFromString(rec.AdjustmentRisk),
		AdjustmentSeniority:       decFromString(rec.AdjustmentSeniority),
		VolumeDiscount:            decFromString(rec.VolumeDiscount),
		TotalValue:                decFromString(rec.TotalValue),
		CreatedAt:                 timeFromString(rec.CreatedAt),
	}
}
