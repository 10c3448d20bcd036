package response

import (
	"time"

	"consultoria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PricingParametersResponse struct {
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

func FromPricingParameters(p entities.PricingParameters) PricingParametersResponse {
	return PricingParametersResponse{
		ID:       p.ID,
		TenantID: p.TenantID,

		MonthlyFixedCosts:       p.MonthlyFixedCosts,
		MonthlyProLabore:        p.MonthlyProLabore,
		ProductiveHoursPerMonth: p.ProductiveHoursPerMonth,
		UnexpectedMarginPercent: p.UnexpectedMarginPercent,

		TaxMEIPercent:             p.TaxMEIPercent,
		TaxSimplesNacionalPercent: p.TaxSimplesNacionalPercent,
		TaxLucroPresumidoPercent:  p.TaxLucroPresumidoPercent,
		TaxAutonomoPercent:        p.TaxAutonomoPercent,

		VolumeDiscount6To15Percent:  p.VolumeDiscount6To15Percent,
		VolumeDiscount16To30Percent: p.VolumeDiscount16To30Percent,
		VolumeDiscount30PlusPercent: p.VolumeDiscount30PlusPercent,

		PersonalizationAdjustmentMinPercent: p.PersonalizationAdjustmentMinPercent,
		PersonalizationAdjustmentMaxPercent: p.PersonalizationAdjustmentMaxPercent,
		RiskAdjustmentMinPercent:            p.RiskAdjustmentMinPercent,
		RiskAdjustmentMaxPercent:            p.RiskAdjustmentMaxPercent,
		SeniorityAdjustmentMinPercent:       p.SeniorityAdjustmentMinPercent,
		SeniorityAdjustmentMaxPercent:       p.SeniorityAdjustmentMaxPercent,

		EffectiveDate: p.EffectiveDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromPricingParametersList(ps []entities.PricingParameters) []PricingParametersResponse {
	out := make([]PricingParametersResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPricingParameters(p))
	}
	return out
}
