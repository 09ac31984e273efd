package usecase

import (
	"context"
	"errors"
	"strings"

	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/usecase/interfaces"
)

var (
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrInvalidProposalID  = errors.New("invalid proposal id")
	ErrInvalidAccessToken = errors.New("invalid access token")
	ErrProposalNotPending = errors.New("proposal is not pending")
)

// IProposalUseCase exposes operations on submitted proposals.
//
// These cover the post-wizard lifecycle:
//   - back-office lookup by id
//   - client-portal lookup by numeric access token
//   - accept / reject / cancel of a pending proposal
type IProposalUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	GetByToken(ctx context.Context, token string) (entities.Proposal, error)
	AcceptByID(ctx context.Context, id string) (entities.Proposal, error)
	RejectByID(ctx context.Context, id string) (entities.Proposal, error)
	CancelByID(ctx context.Context, id string) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo interfaces.IProposalRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo}
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) GetByToken(ctx context.Context, token string) (entities.Proposal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Proposal{}, ErrInvalidAccessToken
	}

	p, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) AcceptByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatusByID(ctx, id, entities.ProposalStatusAceita)
}

func (u *ProposalUseCase) RejectByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatusByID(ctx, id, entities.ProposalStatusRecusada)
}

func (u *ProposalUseCase) CancelByID(ctx context.Context, id string) (entities.Proposal, error) {
	return u.updateStatusByID(ctx, id, entities.ProposalStatusCancelada)
}

// updateStatusByID transitions a pending proposal. The repository applies
// the transition conditionally; a zero-value result means either the
// proposal does not exist or it already left the pending state.
func (u *ProposalUseCase) updateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID != "" {
		return updated, nil
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if existing.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return entities.Proposal{}, ErrProposalNotPending
}
