package interfaces

import (
	"context"

	"consultoria_xpto/internal/domain/entities"
)

// IRiskAssessmentRepository abstracts DynamoDB persistence for RiskAssessment.

type IRiskAssessmentRepository interface {
	Create(ctx context.Context, a entities.RiskAssessment) (entities.RiskAssessment, error)
	GetByID(ctx context.Context, id string) (entities.RiskAssessment, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.RiskAssessment, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.RiskAssessment, error)
	Update(ctx context.Context, a entities.RiskAssessment) (entities.RiskAssessment, error)
	DeleteByID(ctx context.Context, id string) error
}
