package interfaces

import (
	"context"

	"crm_xpto/internal/domain/entities"
)

// ICatalogProvider supplies the immutable catalog snapshot the wizard
// searches against. A failed fetch must leave any previously loaded
// snapshot usable; the read-through cache in the wizard enforces that.
type ICatalogProvider interface {
	FetchCatalog(ctx context.Context, filter string) ([]entities.CatalogItem, error)
}
