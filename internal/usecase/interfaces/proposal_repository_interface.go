package interfaces

import (
	"context"

	"crm_xpto/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for finalized
// proposals (the submission sink of the wizard).
//
// The proposal-service must be able to:
//   - persist a finalized proposal at wizard submission
//   - resolve a proposal by ID (back office) or access token (client portal)
//   - move a pending proposal through accept/reject/cancel
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	GetByToken(ctx context.Context, token string) (entities.Proposal, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
}
