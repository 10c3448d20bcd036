package request

import (
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

// ItemValueRequest asks "what would this item cost". Nothing is persisted.
//
// estimated_hours omitted or zero means "use the catalog estimate".

type ItemValueRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	TaxRegime string `json:"tax_regime"`
	Quantity  int    `json:"quantity" binding:"required"`

	EstimatedHours            decimal.Decimal `json:"estimated_hours"`
	AdjustmentPersonalization decimal.Decimal `json:"adjustment_personalization"`
	AdjustmentRisk            decimal.Decimal `json:"adjustment_risk"`
	AdjustmentSeniority       decimal.Decimal `json:"adjustment_seniority"`
}

func (r ItemValueRequest) ToInput(tenantID string) usecase.ItemQuoteInput {
	return usecase.ItemQuoteInput{
		TenantID:                  tenantID,
		ServiceID:                 r.ServiceID,
		TaxRegime:                 entities.TaxRegime(r.TaxRegime),
		Quantity:                  r.Quantity,
		EstimatedHours:            r.EstimatedHours,
		AdjustmentPersonalization: r.AdjustmentPersonalization,
		AdjustmentRisk:            r.AdjustmentRisk,
		AdjustmentSeniority:       r.AdjustmentSeniority,
	}
}
