package response

import (
	"time"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

type ProposalResponse struct {
	ID           string `json:"id"`
	TenantID     string `json:"tenant_id"`
	ClientID     string `json:"client_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	ValidityDays int    `json:"validity_days"`
	Notes        string `json:"notes,omitempty"`

	DiscountGeneral decimal.Decimal `json:"discount_general"`
	DisplacementFee decimal.Decimal `json:"displacement_fee"`
	TotalValue      decimal.Decimal `json:"total_value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:              p.ID,
		TenantID:        p.TenantID,
		ClientID:        p.ClientID,
		Title:           p.Title,
		Description:     p.Description,
		Status:          string(p.Status),
		ValidityDays:    p.ValidityDays,
		Notes:           p.Notes,
		DiscountGeneral: p.DiscountGeneral,
		DisplacementFee: p.DisplacementFee,
		TotalValue:      p.TotalValue,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

type ProposalItemResponse struct {
	ID         string `json:"id"`
	ProposalID string `json:"proposal_id"`
	ServiceID  string `json:"service_id"`
	Quantity   int    `json:"quantity"`

	UnitPrice      decimal.Decimal `json:"unit_price"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`

	AdjustmentPersonalization decimal.Decimal `json:"adjustment_personalization"`
	AdjustmentRisk            decimal.Decimal `json:"adjustment_risk"`
	AdjustmentSeniority       decimal.Decimal `json:"adjustment_seniority"`

	VolumeDiscount decimal.Decimal `json:"volume_discount"`
	TotalValue     decimal.Decimal `json:"total_value"`

	CreatedAt time.Time `json:"created_at"`
}

func FromProposalItem(it entities.ProposalItem) ProposalItemResponse {
	return ProposalItemResponse{
		ID:                        it.ID,
		ProposalID:                it.ProposalID,
		ServiceID:                 it.ServiceID,
		Quantity:                  it.Quantity,
		UnitPrice:                 it.UnitPrice,
		EstimatedHours:            it.EstimatedHours,
		AdjustmentPersonalization: it.AdjustmentPersonalization,
		AdjustmentRisk:            it.AdjustmentRisk,
		AdjustmentSeniority:       it.AdjustmentSeniority,
		VolumeDiscount:            it.VolumeDiscount,
		TotalValue:                it.TotalValue,
		CreatedAt:                 it.CreatedAt,
	}
}

type ProposalDetailResponse struct {
	ProposalResponse
	Client ClientResponse         `json:"client"`
	Items  []ProposalItemResponse `json:"items"`
}

func FromProposalWithItems(d usecase.ProposalWithItems) ProposalDetailResponse {
	items := make([]ProposalItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, FromProposalItem(it))
	}
	return ProposalDetailResponse{
		ProposalResponse: FromProposal(d.Proposal),
		Client:           FromClient(d.Client),
		Items:            items,
	}
}
