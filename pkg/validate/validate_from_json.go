package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// ValidateProductFromJSON — строгий парсинг одного товара из JSON и его валидация.
func ValidateProductFromJSON(ctx context.Context, validator ports.ProductValidator, raw []byte) (*domain.Product, error) {
	var product domain.Product
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&product); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", ErrInvalidProduct, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidProduct)
	}
	if err := validator.Validate(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
