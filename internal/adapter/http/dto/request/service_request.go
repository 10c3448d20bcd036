package request

import (
	"consultoria_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	Category    string `json:"category"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Unit        string `json:"unit"`

	BasePrice      decimal.Decimal `json:"base_price"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	MinValue       decimal.Decimal `json:"min_value"`
	MaxValue       decimal.Decimal `json:"max_value"`
}

func (r CreateServiceRequest) ToInput(tenantID string) usecase.CreateServiceInput {
	return usecase.CreateServiceInput{
		TenantID:       tenantID,
		Category:       r.Category,
		Name:           r.Name,
		Description:    r.Description,
		Unit:           r.Unit,
		BasePrice:      r.BasePrice,
		EstimatedHours: r.EstimatedHours,
		MinValue:       r.MinValue,
		MaxValue:       r.MaxValue,
	}
}

type UpdateServiceRequest struct {
	Category       *string          `json:"category"`
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Unit           *string          `json:"unit"`
	BasePrice      *decimal.Decimal `json:"base_price"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours"`
	MinValue       *decimal.Decimal `json:"min_value"`
	MaxValue       *decimal.Decimal `json:"max_value"`
	IsActive       *bool            `json:"is_active"`
}

func (r UpdateServiceRequest) ToInput(id string) usecase.UpdateServiceInput {
	return usecase.UpdateServiceInput{
		ID:             id,
		Category:       r.Category,
		Name:           r.Name,
		Description:    r.Description,
		Unit:           r.Unit,
		BasePrice:      r.BasePrice,
		EstimatedHours: r.EstimatedHours,
		MinValue:       r.MinValue,
		MaxValue:       r.MaxValue,
		IsActive:       r.IsActive,
	}
}
