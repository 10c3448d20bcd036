package response

import (
	"consultoria_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

// TechnicalHourResponse breaks the loaded hourly rate down so the UI can
// show where the number came from.

type TechnicalHourResponse struct {
	TechnicalHour decimal.Decimal `json:"technical_hour"`
	TaxRate       decimal.Decimal `json:"tax_rate"`

	FixedCosts      decimal.Decimal `json:"fixed_costs"`
	ProLabore       decimal.Decimal `json:"pro_labore"`
	ProductiveHours decimal.Decimal `json:"productive_hours"`
	MarginPercent   decimal.Decimal `json:"margin_percent"`
}

func FromTechnicalHourResult(r usecase.TechnicalHourResult) TechnicalHourResponse {
	return TechnicalHourResponse{
		TechnicalHour:   r.TechnicalHour,
		TaxRate:         r.TaxRate,
		FixedCosts:      r.FixedCosts,
		ProLabore:       r.ProLabore,
		ProductiveHours: r.ProductiveHours,
		MarginPercent:   r.MarginPercent,
	}
}

type ItemQuoteResponse struct {
	ServiceID      string          `json:"service_id"`
	ServiceName    string          `json:"service_name"`
	TechnicalHour  decimal.Decimal `json:"technical_hour"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	VolumeDiscount decimal.Decimal `json:"volume_discount"`
	TotalValue     decimal.Decimal `json:"total_value"`

	MinValue decimal.Decimal `json:"min_value"`
	MaxValue decimal.Decimal `json:"max_value"`
}

func FromItemQuote(q usecase.ItemQuote) ItemQuoteResponse {
	return ItemQuoteResponse{
		ServiceID:      q.ServiceID,
		ServiceName:    q.ServiceName,
		TechnicalHour:  q.TechnicalHour,
		TaxRate:        q.TaxRate,
		EstimatedHours: q.EstimatedHours,
		Quantity:       q.Quantity,
		UnitPrice:      q.UnitPrice,
		VolumeDiscount: q.VolumeDiscount,
		TotalValue:     q.TotalValue,
		MinValue:       q.MinValue,
		MaxValue:       q.MaxValue,
	}
}
