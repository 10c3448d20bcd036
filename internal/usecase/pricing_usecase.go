package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/domain/pricing"
	"consultoria_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidTenantID           = errors.New("invalid tenant_id")
	ErrInvalidServiceID          = errors.New("invalid service_id")
	ErrInvalidQuantity           = errors.New("invalid quantity")
	ErrServiceNotFound           = errors.New("service not found")
	ErrPricingParametersNotFound = errors.New("pricing parameters not found for tenant")
)

// TechnicalHourResult is the breakdown returned by a technical-hour quote.
type TechnicalHourResult struct {
	TechnicalHour decimal.Decimal
	TaxRate       decimal.Decimal

	FixedCosts      decimal.Decimal
	ProLabore       decimal.Decimal
	ProductiveHours decimal.Decimal
	MarginPercent   decimal.Decimal
}

// ItemQuoteInput carries the raw inputs of an item value quote.
//
// EstimatedHours <= 0 means "use the catalog estimate of the service".
type ItemQuoteInput struct {
	TenantID  string
	ServiceID string
	TaxRegime entities.TaxRegime
	Quantity  int

	EstimatedHours            decimal.Decimal
	AdjustmentPersonalization decimal.Decimal
	AdjustmentRisk            decimal.Decimal
	AdjustmentSeniority       decimal.Decimal
}

// ItemQuote is the full breakdown of a quoted item. Nothing is persisted;
// the same numbers are recomputed server-side when the item is actually
// added to a proposal.
type ItemQuote struct {
	ServiceID      string
	ServiceName    string
	TechnicalHour  decimal.Decimal
	TaxRate        decimal.Decimal
	EstimatedHours decimal.Decimal
	Quantity       int
	UnitPrice      decimal.Decimal
	VolumeDiscount decimal.Decimal
	TotalValue     decimal.Decimal

	// Advisory catalog band, informational only.
	MinValue decimal.Decimal
	MaxValue decimal.Decimal
}

// IPricingUseCase exposes the pure pricing computations over the stored
// tenant configuration:
//   - "what does my hour cost under regime X" => CalculateTechnicalHour()
//   - "what would this item cost"             => CalculateItemValue()

type IPricingUseCase interface {
	CalculateTechnicalHour(ctx context.Context, tenantID string, regime entities.TaxRegime) (TechnicalHourResult, error)
	CalculateItemValue(ctx context.Context, in ItemQuoteInput) (ItemQuote, error)
}

type PricingUseCase struct {
	paramsRepo  interfaces.IPricingParametersRepository
	serviceRepo interfaces.IServiceRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(paramsRepo interfaces.IPricingParametersRepository, serviceRepo interfaces.IServiceRepository) *PricingUseCase {
	return &PricingUseCase{paramsRepo: paramsRepo, serviceRepo: serviceRepo}
}

func (u *PricingUseCase) CalculateTechnicalHour(ctx context.Context, tenantID string, regime entities.TaxRegime) (TechnicalHourResult, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return TechnicalHourResult{}, ErrInvalidTenantID
	}

	params, err := u.currentParams(ctx, tenantID)
	if err != nil {
		return TechnicalHourResult{}, err
	}

	taxRate := pricing.TaxRateForRegime(regime, params)
	rate, err := loadedTechnicalHour(params, taxRate)
	if err != nil {
		return TechnicalHourResult{}, err
	}

	// Quotes are external presentation, so the loaded rate leaves here
	// rounded to 2 decimals. Persisted snapshots keep full precision.
	return TechnicalHourResult{
		TechnicalHour:   rate.Round(2),
		TaxRate:         taxRate,
		FixedCosts:      params.MonthlyFixedCosts,
		ProLabore:       params.MonthlyProLabore,
		ProductiveHours: params.ProductiveHoursPerMonth,
		MarginPercent:   params.UnexpectedMarginPercent,
	}, nil
}

func (u *PricingUseCase) CalculateItemValue(ctx context.Context, in ItemQuoteInput) (ItemQuote, error) {
	in.TenantID = strings.TrimSpace(in.TenantID)
	in.ServiceID = strings.TrimSpace(in.ServiceID)
	if in.TenantID == "" {
		return ItemQuote{}, ErrInvalidTenantID
	}
	if in.ServiceID == "" {
		return ItemQuote{}, ErrInvalidServiceID
	}
	if in.Quantity <= 0 {
		return ItemQuote{}, ErrInvalidQuantity
	}

	service, err := u.serviceRepo.GetByID(ctx, in.ServiceID)
	if err != nil {
		return ItemQuote{}, err
	}
	if service.ID == "" {
		return ItemQuote{}, ErrServiceNotFound
	}

	params, err := u.currentParams(ctx, in.TenantID)
	if err != nil {
		return ItemQuote{}, err
	}

	taxRate := pricing.TaxRateForRegime(in.TaxRegime, params)
	rate, err := loadedTechnicalHour(params, taxRate)
	if err != nil {
		return ItemQuote{}, err
	}

	hours := in.EstimatedHours
	if hours.Sign() <= 0 {
		hours = service.EstimatedHours
	}

	volumeDiscount := pricing.VolumeDiscountPercent(in.Quantity, params)

	total := pricing.ItemTotal(pricing.ItemInput{
		BasePrice:              rate,
		EstimatedHours:         hours,
		Quantity:               in.Quantity,
		PersonalizationPercent: in.AdjustmentPersonalization,
		RiskPercent:            in.AdjustmentRisk,
		SeniorityPercent:       in.AdjustmentSeniority,
		VolumeDiscountPercent:  volumeDiscount,
	})
	if total.Sign() < 0 {
		log.Printf("[pricing][usecase] warning: negative item value service_id=%s quantity=%d total=%s", in.ServiceID, in.Quantity, total)
	}

	// The chain above runs at full precision; monetary outputs are rounded
	// only here, at the presentation boundary.
	return ItemQuote{
		ServiceID:      service.ID,
		ServiceName:    service.Name,
		TechnicalHour:  rate.Round(2),
		TaxRate:        taxRate,
		EstimatedHours: hours,
		Quantity:       in.Quantity,
		UnitPrice:      rate.Mul(hours).Round(2),
		VolumeDiscount: volumeDiscount,
		TotalValue:     total.Round(2),
		MinValue:       service.MinValue,
		MaxValue:       service.MaxValue,
	}, nil
}

func (u *PricingUseCase) currentParams(ctx context.Context, tenantID string) (entities.PricingParameters, error) {
	params, err := u.paramsRepo.GetCurrentByTenantID(ctx, tenantID, time.Now().UTC())
	if err != nil {
		return entities.PricingParameters{}, err
	}
	if params.ID == "" {
		return entities.PricingParameters{}, ErrPricingParametersNotFound
	}
	return params, nil
}

// loadedTechnicalHour applies the full loading chain: base hour, then the
// unexpected-costs margin, then the regime tax.
func loadedTechnicalHour(params entities.PricingParameters, taxRate decimal.Decimal) (decimal.Decimal, error) {
	base, err := pricing.TechnicalHour(params.MonthlyFixedCosts, params.MonthlyProLabore, params.ProductiveHoursPerMonth)
	if err != nil {
		return decimal.Zero, err
	}
	return pricing.WithTax(pricing.WithMargin(base, params.UnexpectedMarginPercent), taxRate), nil
}
