package interfaces

import (
	"context"

	"consultoria_xpto/internal/domain/entities"
)

// IProposalItemRepository abstracts DynamoDB persistence for ProposalItem.
//
// DeleteByProposalID implements the cascade when a proposal is removed.

type IProposalItemRepository interface {
	Create(ctx context.Context, it entities.ProposalItem) (entities.ProposalItem, error)
	GetByID(ctx context.Context, id string) (entities.ProposalItem, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalItem, error)
	Update(ctx context.Context, it entities.ProposalItem) (entities.ProposalItem, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByProposalID(ctx context.Context, proposalID string) error
}
