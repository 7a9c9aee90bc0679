package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity — количество меньше 1 (или не разобралось как целое).
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrQuantityTooLarge — количество больше MaxQuantity; тоже ErrInvalidQuantity.
	ErrQuantityTooLarge = fmt.Errorf("%w and at most %d", ErrInvalidQuantity, MaxQuantity)
	// ErrEmptyCart — попытка оформить пустую корзину.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderDeclined — пользователь не подтвердил оформление.
	ErrOrderDeclined = errors.New("order confirmation declined")

	// Ошибки поиска по идентификатору. Через штатный UI недостижимы,
	// поэтому считаются ошибками интеграции.
	ErrLineItemNotFound = errors.New("line item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrProductNotFound  = errors.New("product not found")
)
