package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalItem is one quoted service inside a proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
//
// Price locking: UnitPrice (the technical hour at quoting time),
// VolumeDiscount and TotalValue are snapshots taken when the item is
// created. Later changes to the tenant's pricing parameters or tier
// thresholds never flow back into an existing item; an explicit item update
// recomputes TotalValue from the stored UnitPrice only.

type ProposalItem struct {
	ID         string `json:"id"`
	ProposalID string `json:"proposal_id"`
	ServiceID  string `json:"service_id"`

	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`

	AdjustmentPersonalization decimal.Decimal `json:"adjustment_personalization"`
	AdjustmentRisk            decimal.Decimal `json:"adjustment_risk"`
	AdjustmentSeniority       decimal.Decimal `json:"adjustment_seniority"`

	// VolumeDiscount is the percent resolved from the quantity tiers at
	// creation time. Never re-resolved afterwards.
	VolumeDiscount decimal.Decimal `json:"volume_discount"`
	TotalValue     decimal.Decimal `json:"total_value"`

	CreatedAt time.Time `json:"created_at"`
}
