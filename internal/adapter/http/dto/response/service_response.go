package response

import (
	"time"

	"consultoria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ServiceResponse struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	Category    string `json:"category,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`

	BasePrice      decimal.Decimal `json:"base_price"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	MinValue       decimal.Decimal `json:"min_value"`
	MaxValue       decimal.Decimal `json:"max_value"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:             s.ID,
		TenantID:       s.TenantID,
		Category:       s.Category,
		Name:           s.Name,
		Description:    s.Description,
		Unit:           s.Unit,
		BasePrice:      s.BasePrice,
		EstimatedHours: s.EstimatedHours,
		MinValue:       s.MinValue,
		MaxValue:       s.MaxValue,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func FromServices(ss []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromService(s))
	}
	return out
}
