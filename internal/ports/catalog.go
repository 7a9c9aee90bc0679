package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// ProductCatalog — поиск товара витрины по имени.
type ProductCatalog interface {
	Lookup(ctx context.Context, name string) (domain.Product, bool)
}
