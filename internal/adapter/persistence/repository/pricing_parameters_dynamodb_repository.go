package repository

import (
	"context"
	"time"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricingParametersTableName = "pricing_parameters"

type pricingParametersRecord struct {
	TenantID      string `dynamodbav:"tenant_id"`
	EffectiveDate string `dynamodbav:"effective_date"`
	ID            string `dynamodbav:"id"`

	MonthlyFixedCosts       string `dynamodbav:"monthly_fixed_costs"`
	MonthlyProLabore        string `dynamodbav:"monthly_pro_labore"`
	ProductiveHoursPerMonth string `dynamodbav:"productive_hours_per_month"`
	UnexpectedMarginPercent string `dynamodbav:"unexpected_margin_percent"`

	TaxMEIPercent             string `dynamodbav:"tax_mei_percent"`
	TaxSimplesNacionalPercent string `dynamodbav:"tax_simples_nacional_percent"`
	TaxLucroPresumidoPercent  string `dynamodbav:"tax_lucro_presumido_percent"`
	TaxAutonomoPercent        string `dynamodbav:"tax_autonomo_percent"`

	VolumeDiscount6To15Percent  string `dynamodbav:"volume_discount_6_to_15_percent"`
	VolumeDiscount16To30Percent string `dynamodbav:"volume_discount_16_to_30_percent"`
	VolumeDiscount30PlusPercent string `dynamodbav:"volume_discount_30_plus_percent"`

	PersonalizationAdjustmentMinPercent string `dynamodbav:"personalization_adjustment_min_percent"`
	PersonalizationAdjustmentMaxPercent string `dynamodbav:"personalization_adjustment_max_percent"`
	RiskAdjustmentMinPercent            string `dynamodbav:"risk_adjustment_min_percent"`
	RiskAdjustmentMaxPercent            string `dynamodbav:"risk_adjustment_max_percent"`
	SeniorityAdjustmentMinPercent       string `dynamodbav:"seniority_adjustment_min_percent"`
	SeniorityAdjustmentMaxPercent       string `dynamodbav:"seniority_adjustment_max_percent"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PricingParametersDynamoRepository persists the versioned parameter store.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: effective_date (string, RFC3339Nano)
//
// RFC3339Nano sorts lexicographically in timestamp order, so "latest
// version in force" is a reverse range query with Limit 1. Versions are
// append-only; there is no update or delete path.

type PricingParametersDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingParametersRepository = (*PricingParametersDynamoRepository)(nil)

func NewPricingParametersDynamoRepository(ddb *dynamodb.Client) *PricingParametersDynamoRepository {
	return &PricingParametersDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_PARAMETERS_TABLE", defaultPricingParametersTableName),
	}
}

func (r *PricingParametersDynamoRepository) Create(ctx context.Context, p entities.PricingParameters) (entities.PricingParameters, error) {
	av, err := attributevalue.MarshalMap(toPricingParametersRecord(p))
	if err != nil {
		return entities.PricingParameters{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#tenant_id)"),
		ExpressionAttributeNames: map[string]string{
			"#tenant_id": "tenant_id",
		},
	})
	if err != nil {
		return entities.PricingParameters{}, err
	}
	return p, nil
}

func (r *PricingParametersDynamoRepository) GetCurrentByTenantID(ctx context.Context, tenantID string, at time.Time) (entities.PricingParameters, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("tenant_id = :tid AND effective_date <= :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
			":at":  &types.AttributeValueMemberS{Value: timeToString(at)},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.PricingParameters{}, err
	}
	if len(out.Items) == 0 {
		return entities.PricingParameters{}, nil
	}

	var rec pricingParametersRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return entities.PricingParameters{}, err
	}
	return fromPricingParametersRecord(rec), nil
}

func (r *PricingParametersDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.PricingParameters, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	versions := make([]entities.PricingParameters, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec pricingParametersRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		versions = append(versions, fromPricingParametersRecord(rec))
	}
	return versions, nil
}

func toPricingParametersRecord(p entities.PricingParameters) pricingParametersRecord {
	return pricingParametersRecord{
		TenantID:      p.TenantID,
		EffectiveDate: timeToString(p.EffectiveDate),
		ID:            p.ID,

		MonthlyFixedCosts:       decToString(p.MonthlyFixedCosts),
		MonthlyProLabore:        decToString(p.MonthlyProLabore),
		ProductiveHoursPerMonth: decToString(p.ProductiveHoursPerMonth),
		UnexpectedMarginPercent: decToString(p.UnexpectedMarginPercent),

		TaxMEIPercent:             decToString(p.TaxMEIPercent),
		TaxSimplesNacionalPercent: decToString(p.TaxSimplesNacionalPercent),
		TaxLucroPresumidoPercent:  decToString(p.TaxLucroPresumidoPercent),
		TaxAutonomoPercent:        decToString(p.TaxAutonomoPercent),

		VolumeDiscount6To15Percent:  decToString(p.VolumeDiscount6To15Percent),
		VolumeDiscount16To30Percent: decToString(p.VolumeDiscount16To30Percent),
		VolumeDiscount30PlusPercent: decToString(p.VolumeDiscount30PlusPercent),

		PersonalizationAdjustmentMinPercent: decToString(p.PersonalizationAdjustmentMinPercent),
		PersonalizationAdjustmentMaxPercent: decToString(p.PersonalizationAdjustmentMaxPercent),
		RiskAdjustmentMinPercent:            decToString(p.RiskAdjustmentMinPercent),
		RiskAdjustmentMaxPercent:            decToString(p.RiskAdjustmentMaxPercent),
		SeniorityAdjustmentMinPercent:       decToString(p.SeniorityAdjustmentMinPercent),
		SeniorityAdjustmentMaxPercent:       decToString(p.SeniorityAdjustmentMaxPercent),

		CreatedAt: timeToString(p.CreatedAt),
		UpdatedAt: timeToString(p.UpdatedAt),
	}
}

func fromPricingParametersRecord(rec pricingParametersRecord) entities.PricingParameters {
	return entities.PricingParameters{
		ID:       rec.ID,
		TenantID: rec.TenantID,

		MonthlyFixedCosts:       decFromString(rec.MonthlyFixedCosts),
		MonthlyProLabore:        decFromString(rec.MonthlyProLabore),
		ProductiveHoursPerMonth: decFromString(rec.ProductiveHoursPerMonth),
		UnexpectedMarginPercent: decFromString(rec.UnexpectedMarginPercent),

		TaxMEIPercent:             decFromString(rec.TaxMEIPercent),
		TaxSimplesNacionalPercent: decFromString(rec.TaxSimplesNacionalPercent),
		TaxLucroPresumidoPercent:  decFromString(rec.TaxLucroPresumidoPercent),
		TaxAutonomoPercent:        decFromString(rec.TaxAutonomoPercent),

		VolumeDiscount6To15Percent:  decFromString(rec.VolumeDiscount6To15Percent),
		VolumeDiscount16To30Percent: decFromString(rec.VolumeDiscount16To30Percent),
		VolumeDiscount30PlusPercent: decFromString(rec.VolumeDiscount30PlusPercent),

		PersonalizationAdjustmentMinPercent: decFromString(rec.PersonalizationAdjustmentMinPercent),
		PersonalizationAdjustmentMaxPercent: decFromString(rec.PersonalizationAdjustmentMaxPercent),
		RiskAdjustmentMinPercent:            decFromString(rec.RiskAdjustmentMinPercent),
		RiskAdjustmentMaxPercent:            decFromString(rec.RiskAdjustmentMaxPercent),
		SeniorityAdjustmentMinPercent:       decFromString(rec.SeniorityAdjustmentMinPercent),
		SeniorityAdjustmentMaxPercent:       decFromString(rec.SeniorityAdjustmentMaxPercent),

		EffectiveDate: timeFromString(rec.EffectiveDate),
		CreatedAt:     timeFromString(rec.CreatedAt),
		UpdatedAt:     timeFromString(rec.UpdatedAt),
	}
}
