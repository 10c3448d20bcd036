package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"
)

var ErrInvalidProductiveHours = errors.New("productive hours must be greater than zero")

type CreateParametersInput struct {
	TenantID string

	MonthlyFixedCosts       decimal.Decimal
	MonthlyProLabore        decimal.Decimal
	ProductiveHoursPerMonth decimal.Decimal
	UnexpectedMarginPercent decimal.Decimal

	TaxMEIPercent             decimal.Decimal
	TaxSimplesNacionalPercent decimal.Decimal
	TaxLucroPresumidoPercent  decimal.Decimal
	TaxAutonomoPercent        decimal.Decimal

	VolumeDiscount6To15Percent  decimal.Decimal
	VolumeDiscount16To30Percent decimal.Decimal
	VolumeDiscount30PlusPercent decimal.Decimal

	PersonalizationAdjustmentMinPercent decimal.Decimal
	PersonalizationAdjustmentMaxPercent decimal.Decimal
	RiskAdjustmentMinPercent            decimal.Decimal
	RiskAdjustmentMaxPercent            decimal.Decimal
	SeniorityAdjustmentMinPercent       decimal.Decimal
	SeniorityAdjustmentMaxPercent       decimal.Decimal

	// Zero means "in force immediately".
	EffectiveDate time.Time
}

// IPricingParametersUseCase manages the versioned cost/tax configuration.
//
// Parameter sets are append-only: publishing a change means creating a new
// version with a new effective date. Existing versions are never edited,
// which is what keeps already quoted items auditable.

type IPricingParametersUseCase interface {
	Create(ctx context.Context, in CreateParametersInput) (entities.PricingParameters, error)
	GetCurrent(ctx context.Context, tenantID string) (entities.PricingParameters, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.PricingParameters, error)
}

type PricingParametersUseCase struct {
	repo interfaces.IPricingParametersRepository
}

var _ IPricingParametersUseCase = (*PricingParametersUseCase)(nil)

func NewPricingParametersUseCase(repo interfaces.IPricingParametersRepository) *PricingParametersUseCase {
	return &PricingParametersUseCase{repo: repo}
}

func (u *PricingParametersUseCase) Create(ctx context.Context, in CreateParametersInput) (entities.PricingParameters, error) {
	in.TenantID = strings.TrimSpace(in.TenantID)
	if in.TenantID == "" {
		return entities.PricingParameters{}, ErrInvalidTenantID
	}
	// Reject unusable configurations at the door instead of failing every
	// later technical-hour computation.
	if in.ProductiveHoursPerMonth.Sign() <= 0 {
		return entities.PricingParameters{}, ErrInvalidProductiveHours
	}

	now := time.Now().UTC()
	effective := in.EffectiveDate
	if effective.IsZero() {
		effective = now
	}

	p := entities.PricingParameters{
		ID:       uuid.NewString(),
		TenantID: in.TenantID,

		MonthlyFixedCosts:       in.MonthlyFixedCosts,
		MonthlyProLabore:        in.MonthlyProLabore,
		ProductiveHoursPerMonth: in.ProductiveHoursPerMonth,
		UnexpectedMarginPercent: in.UnexpectedMarginPercent,

		TaxMEIPercent:             in.TaxMEIPercent,
		TaxSimplesNacionalPercent: in.TaxSimplesNacionalPercent,
		TaxLucroPresumidoPercent:  in.TaxLucroPresumidoPercent,
		TaxAutonomoPercent:        in.TaxAutonomoPercent,

		VolumeDiscount6To15Percent:  in.VolumeDiscount6To15Percent,
		VolumeDiscount16To30Percent: in.VolumeDiscount16To30Percent,
		VolumeDiscount30PlusPercent: in.VolumeDiscount30PlusPercent,

		PersonalizationAdjustmentMinPercent: in.PersonalizationAdjustmentMinPercent,
		PersonalizationAdjustmentMaxPercent: in.PersonalizationAdjustmentMaxPercent,
		RiskAdjustmentMinPercent:            in.RiskAdjustmentMinPercent,
		RiskAdjustmentMaxPercent:            in.RiskAdjustmentMaxPercent,
		SeniorityAdjustmentMinPercent:       in.SeniorityAdjustmentMinPercent,
		SeniorityAdjustmentMaxPercent:       in.SeniorityAdjustmentMaxPercent,

		EffectiveDate: effective.UTC(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PricingParametersUseCase) GetCurrent(ctx context.Context, tenantID string) (entities.PricingParameters, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.PricingParameters{}, ErrInvalidTenantID
	}

	p, err := u.repo.GetCurrentByTenantID(ctx, tenantID, time.Now().UTC())
	if err != nil {
		return entities.PricingParameters{}, err
	}
	if p.ID == "" {
		return entities.PricingParameters{}, ErrPricingParametersNotFound
	}
	return p, nil
}

func (u *PricingParametersUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.PricingParameters, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}
