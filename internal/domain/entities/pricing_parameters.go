package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingParameters is a versioned snapshot of a tenant's cost structure.
//
// Storage model (DynamoDB):
//   - PK: tenant_id
//   - SK: effective_date (RFC3339)
//
// The record in force for a tenant is the one with the greatest
// effective_date that is not in the future. New parameter sets are appended
// as new versions; existing versions are never mutated, which keeps already
// quoted items reproducible.
//
// The adjustment min/max bounds are advisory: the UI uses them to suggest
// ranges, the calculation engine never enforces them.

type PricingParameters struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`

	MonthlyFixedCosts       decimal.Decimal `json:"monthly_fixed_costs"`
	MonthlyProLabore        decimal.Decimal `json:"monthly_pro_labore"`
	ProductiveHoursPerMonth decimal.Decimal `json:"productive_hours_per_month"`
	UnexpectedMarginPercent decimal.Decimal `json:"unexpected_margin_percent"`

	TaxMEIPercent             decimal.Decimal `json:"tax_mei_percent"`
	TaxSimplesNacionalPercent decimal.Decimal `json:"tax_simples_nacional_percent"`
	TaxLucroPresumidoPercent  decimal.Decimal `json:"tax_lucro_presumido_percent"`
	TaxAutonomoPercent        decimal.Decimal `json:"tax_autonomo_percent"`

	VolumeDiscount6To15Percent  decimal.Decimal `json:"volume_discount_6_to_15_percent"`
	VolumeDiscount16To30Percent decimal.Decimal `json:"volume_discount_16_to_30_percent"`
	VolumeDiscount30PlusPercent decimal.Decimal `json:"volume_discount_30_plus_percent"`

	PersonalizationAdjustmentMinPercent decimal.Decimal `json:"personalization_adjustment_min_percent"`
	PersonalizationAdjustmentMaxPercent decimal.Decimal `json:"personalization_adjustment_max_percent"`
	RiskAdjustmentMinPercent            decimal.Decimal `json:"risk_adjustment_min_percent"`
	RiskAdjustmentMaxPercent            decimal.Decimal `json:"risk_adjustment_max_percent"`
	SeniorityAdjustmentMinPercent       decimal.Decimal `json:"seniority_adjustment_min_percent"`
	SeniorityAdjustmentMaxPercent       decimal.Decimal `json:"seniority_adjustment_max_percent"`

	EffectiveDate time.Time `json:"effective_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
