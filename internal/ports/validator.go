package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// ProductValidator — проверка товара, прочитанного с витрины.
type ProductValidator interface {
	Validate(ctx context.Context, product *domain.Product) error
}
