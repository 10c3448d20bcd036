package request

import (
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateProposalRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ValidityDays int    `json:"validity_days"`
	Notes        string `json:"notes"`

	DiscountGeneral decimal.Decimal `json:"discount_general"`
	DisplacementFee decimal.Decimal `json:"displacement_fee"`
}

func (r CreateProposalRequest) ToInput(tenantID string) usecase.CreateProposalInput {
	return usecase.CreateProposalInput{
		TenantID:        tenantID,
		ClientID:        r.ClientID,
		Title:           r.Title,
		Description:     r.Description,
		ValidityDays:    r.ValidityDays,
		Notes:           r.Notes,
		DiscountGeneral: r.DiscountGeneral,
		DisplacementFee: r.DisplacementFee,
	}
}

// UpdateProposalRequest is a partial update: absent fields stay untouched.
type UpdateProposalRequest struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	Status          *string          `json:"status"`
	ValidityDays    *int             `json:"validity_days"`
	Notes           *string          `json:"notes"`
	DiscountGeneral *decimal.Decimal `json:"discount_general"`
	DisplacementFee *decimal.Decimal `json:"displacement_fee"`
}

func (r UpdateProposalRequest) ToInput(id string) usecase.UpdateProposalInput {
	in := usecase.UpdateProposalInput{
		ID:              id,
		Title:           r.Title,
		Description:     r.Description,
		ValidityDays:    r.ValidityDays,
		Notes:           r.Notes,
		DiscountGeneral: r.DiscountGeneral,
		DisplacementFee: r.DisplacementFee,
	}
	if r.Status != nil {
		status := entities.ProposalStatus(*r.Status)
		in.Status = &status
	}
	return in
}

type AddProposalItemRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`

	EstimatedHours            decimal.Decimal `json:"estimated_hours"`
	AdjustmentPersonalization decimal.Decimal `json:"adjustment_personalization"`
	AdjustmentRisk            decimal.Decimal `json:"adjustment_risk"`
	AdjustmentSeniority       decimal.Decimal `json:"adjustment_seniority"`
}

func (r AddProposalItemRequest) ToInput(proposalID string) usecase.AddItemInput {
	return usecase.AddItemInput{
		ProposalID:                proposalID,
		ServiceID:                 r.ServiceID,
		Quantity:                  r.Quantity,
		EstimatedHours:            r.EstimatedHours,
		AdjustmentPersonalization: r.AdjustmentPersonalization,
		AdjustmentRisk:            r.AdjustmentRisk,
		AdjustmentSeniority:       r.AdjustmentSeniority,
	}
}

type UpdateProposalItemRequest struct {
	Quantity                  *int             `json:"quantity"`
	EstimatedHours            *decimal.Decimal `json:"estimated_hours"`
	AdjustmentPersonalization *decimal.Decimal `json:"adjustment_personalization"`
	AdjustmentRisk            *decimal.Decimal `json:"adjustment_risk"`
	AdjustmentSeniority       *decimal.Decimal `json:"adjustment_seniority"`
}

func (r UpdateProposalItemRequest) ToInput(proposalID, itemID string) usecase.UpdateItemInput {
	return usecase.UpdateItemInput{
		ProposalID:                proposalID,
		ItemID:                    itemID,
		Quantity:                  r.Quantity,
		EstimatedHours:            r.EstimatedHours,
		AdjustmentPersonalization: r.AdjustmentPersonalization,
		AdjustmentRisk:            r.AdjustmentRisk,
		AdjustmentSeniority:       r.AdjustmentSeniority,
	}
}
