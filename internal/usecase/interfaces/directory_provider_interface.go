package interfaces

import (
	"context"

	"crm_xpto/internal/domain/entities"
)

// IDirectoryProvider resolves clients and salespeople for the wizard.
//
// FetchCurrentSeller returns the seller bound to the running session, or a
// zero-value Seller (empty ID) when none is configured; that is not an
// error, the wizard just opens without a preselected salesperson.
type IDirectoryProvider interface {
	FetchClients(ctx context.Context) ([]entities.Client, error)
	FetchSellers(ctx context.Context) ([]entities.Seller, error)
	FetchCurrentSeller(ctx context.Context) (entities.Seller, error)
}
