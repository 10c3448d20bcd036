package interfaces

import (
	"context"

	"consultoria_xpto/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	DeleteByID(ctx context.Context, id string) error
}
