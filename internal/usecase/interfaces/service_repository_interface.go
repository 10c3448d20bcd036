package interfaces

import (
	"context"

	"consultoria_xpto/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	DeleteByID(ctx context.Context, id string) error
}
