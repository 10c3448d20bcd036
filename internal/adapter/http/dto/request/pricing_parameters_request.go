package request

import (
	"time"

	"consultoria_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateParametersRequest appends a new parameter version for the tenant.
//
// effective_date omitted means "in force immediately".

type CreateParametersRequest struct {
	MonthlyFixedCosts       decimal.Decimal `json:"monthly_fixed_costs"`
	MonthlyProLabore        decimal.Decimal `json:"monthly_pro_labore"`
	ProductiveHoursPerMonth decimal.Decimal `json:"productive_hours_per_month" binding:"required"`
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
}

func (r CreateParametersRequest) ToInput(tenantID string) usecase.CreateParametersInput {
	return usecase.CreateParametersInput{
		TenantID: tenantID,

		MonthlyFixedCosts:       r.MonthlyFixedCosts,
		MonthlyProLabore:        r.MonthlyProLabore,
		ProductiveHoursPerMonth: r.ProductiveHoursPerMonth,
		UnexpectedMarginPercent: r.UnexpectedMarginPercent,

		TaxMEIPercent:             r.TaxMEIPercent,
		TaxSimplesNacionalPercent: r.TaxSimplesNacionalPercent,
		TaxLucroPresumidoPercent:  r.TaxLucroPresumidoPercent,
		TaxAutonomoPercent:        r.TaxAutonomoPercent,

		VolumeDiscount6To15Percent:  r.VolumeDiscount6To15Percent,
		VolumeDiscount16To30Percent: r.VolumeDiscount16To30Percent,
		VolumeDiscount30PlusPercent: r.VolumeDiscount30PlusPercent,

		PersonalizationAdjustmentMinPercent: r.PersonalizationAdjustmentMinPercent,
		PersonalizationAdjustmentMaxPercent: r.PersonalizationAdjustmentMaxPercent,
		RiskAdjustmentMinPercent:            r.RiskAdjustmentMinPercent,
		RiskAdjustmentMaxPercent:            r.RiskAdjustmentMaxPercent,
		SeniorityAdjustmentMinPercent:       r.SeniorityAdjustmentMinPercent,
		SeniorityAdjustmentMaxPercent:       r.SeniorityAdjustmentMaxPercent,

		EffectiveDate: r.EffectiveDate,
	}
}
