package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the commercial lifecycle of a proposal.

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
	ProposalStatusArchived ProposalStatus = "archived"
)

// IsValid reports whether s is one of the enumerated statuses.
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusApproved, ProposalStatusRejected, ProposalStatusArchived:
		return true
	}
	return false
}

// Proposal is a commercial proposal owned by a tenant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//
// TotalValue is derived state: it must always equal the sum of the stored
// item totals after the general discount (percentage of the subtotal) and
// the displacement fee. Every item mutation ends with a synchronous
// recalculation that rewrites it; nothing else writes this field.
//
// A proposal owns its items: deleting the proposal deletes the items first.

type Proposal struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	ClientID string `json:"client_id"`

	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Status       ProposalStatus `json:"status"`
	ValidityDays int            `json:"validity_days"`
	Notes        string         `json:"notes"`

	// DiscountGeneral is a percentage of the items subtotal, never an
	// absolute amount.
	DiscountGeneral decimal.Decimal `json:"discount_general"`
	DisplacementFee decimal.Decimal `json:"displacement_fee"`
	TotalValue      decimal.Decimal `json:"total_value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
