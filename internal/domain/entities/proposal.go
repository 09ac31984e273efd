package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus represents the lifecycle of a submitted proposal.
//
// Domain notes:
//   - The proposal-service is the source of truth for proposal state.
//   - A proposal is created as "pendente" at wizard submission and moves
//     on through client-portal or back-office actions.
type ProposalStatus string

const (
	ProposalStatusPendente  ProposalStatus = "pendente"
	ProposalStatusAceita    ProposalStatus = "aceita"
	ProposalStatusRecusada  ProposalStatus = "recusada"
	ProposalStatusCancelada ProposalStatus = "cancelada"
)

// Proposal is the finalized commercial proposal handed to persistence when
// the wizard submits. Unlike DraftProposal it is immutable except for its
// status, and carries resolved values: computed totals, the resolved
// validity window and the numeric client-portal access token.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (access_token-index): access_token
type Proposal struct {
	ID                    string          `json:"id"`
	Title                 string          `json:"title"`
	Seller                Seller          `json:"seller"`
	Client                Client          `json:"client"`
	LineItems             []LineItem      `json:"line_items"`
	GlobalDiscountPercent decimal.Decimal `json:"global_discount_percent"`
	TaxPercent            decimal.Decimal `json:"tax_percent"`
	Totals                Totals          `json:"totals"`
	PaymentMethod         PaymentMethod   `json:"payment_method"`
	ValidityDays          int             `json:"validity_days"`
	ValidUntil            time.Time       `json:"valid_until"`
	Notes                 string          `json:"notes,omitempty"`
	AccessToken           string          `json:"access_token"`
	PaymentLinkURL        string          `json:"payment_link_url,omitempty"`
	Status                ProposalStatus  `json:"status"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}
