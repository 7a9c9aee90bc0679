package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// Проверка, что ProductValidator удовлетворяет интерфейсу ports.ProductValidator.
var _ ports.ProductValidator = (*ProductValidator)(nil)

// ErrInvalidProduct — базовая (sentinel error) ошибка валидации товара.
var ErrInvalidProduct = errors.New("product validation failed")

// ProductValidator — проверка товара, прочитанного из разметки витрины.
type ProductValidator struct{}

// NewProductValidator — конструктор ProductValidator.
// Возвращает ErrInvalidProduct (с обёрнутой причиной) при любой проблеме.
func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// Validate — имя и картинка обязательны, цена неотрицательна.
func (v *ProductValidator) Validate(_ context.Context, product *domain.Product) error {
	if product == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidProduct)
	}
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidProduct)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным (%s)", ErrInvalidProduct, product.Name)
	}
	if strings.TrimSpace(product.ImageRef) == "" {
		return fmt.Errorf("%w: image_ref обязателен (%s)", ErrInvalidProduct, product.Name)
	}
	return nil
}
