package interfaces

import (
	"context"

	"crm_xpto/internal/domain/entities"
)

// IPaymentLinkGateway abstracts external checkout providers (e.g. Mercado
// Pago). The wizard uses it to attach a checkout link to proposals paid by
// card or installments; link creation is best effort and never blocks
// submission.
type IPaymentLinkGateway interface {
	CreateCheckoutLink(ctx context.Context, p entities.Proposal) (string, error)
}
