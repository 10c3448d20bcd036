package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"consultoria_xpto/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Not-found is signalled by a zero-value entity (empty ID), not an error,
// so callers can distinguish "missing" from "storage failed".
//
// SetTotalByID exists separately from Update because the recalculation flow
// must replace only the derived total, never the user-editable fields.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	SetTotalByID(ctx context.Context, id string, total decimal.Decimal) (entities.Proposal, error)
	DeleteByID(ctx context.Context, id string) error
}
