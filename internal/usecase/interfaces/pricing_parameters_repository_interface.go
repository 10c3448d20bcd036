package interfaces

import (
	"context"
	"time"

	"consultoria_xpto/internal/domain/entities"
)

// IPricingParametersRepository abstracts the versioned parameter store.
//
// Parameters are append-only versions keyed by tenant and effective date.
// GetCurrentByTenantID resolves the version in force at the given instant:
// the greatest effective_date <= at. There is no "active" flag to toggle.

type IPricingParametersRepository interface {
	Create(ctx context.Context, p entities.PricingParameters) (entities.PricingParameters, error)
	GetCurrentByTenantID(ctx context.Context, tenantID string, at time.Time) (entities.PricingParameters, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.PricingParameters, error)
}
