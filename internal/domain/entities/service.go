package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a catalog entry the consultancy can quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//
// EstimatedHours is the fallback effort used when a proposal item does not
// override hours. MinValue/MaxValue describe the advisory price band shown
// alongside a quote; the engine never clamps to them.

type Service struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Unit of sale, e.g. "Pessoa", "Projeto", "Evento", "Mês".
	Unit string `json:"unit"`

	BasePrice      decimal.Decimal `json:"base_price"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	MinValue       decimal.Decimal `json:"min_value"`
	MaxValue       decimal.Decimal `json:"max_value"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
