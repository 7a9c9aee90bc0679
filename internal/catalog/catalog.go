package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// Проверка, что Catalog удовлетворяет интерфейсу ports.ProductCatalog.
var _ ports.ProductCatalog = (*Catalog)(nil)

// Catalog — неизменяемый индекс товаров витрины по имени.
// Безопасен для конкурентного чтения.
type Catalog struct {
	products []domain.Product
	byName   map[string]int
}

// New — строит индекс. Невалидный товар — ошибка; при повторе имени остаётся первое вхождение.
func New(ctx context.Context, products []domain.Product, validator ports.ProductValidator) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]int, len(products))}
	for i := range products {
		p := products[i]
		if err := validator.Validate(ctx, &p); err != nil {
			return nil, err
		}
		if _, dup := c.byName[p.Name]; dup {
			continue
		}
		c.byName[p.Name] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Load — читает страницу витрины и строит индекс. Любой битый товар на странице — ошибка.
func Load(ctx context.Context, r io.Reader, validator ports.ProductValidator) (*Catalog, error) {
	entries, err := ReadPage(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	products := make([]domain.Product, 0, len(entries))
	var errs []error
	for _, e := range entries {
		if e.Err != nil {
			errs = append(errs, e.Err)
			continue
		}
		products = append(products, e.Product)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return New(ctx, products, validator)
}

// LoadFile — Load из файла.
func LoadFile(ctx context.Context, path string, validator ports.ProductValidator) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return Load(ctx, f, validator)
}

// Lookup — товар по точному имени.
func (c *Catalog) Lookup(_ context.Context, name string) (domain.Product, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Products — товары в порядке страницы.
func (c *Catalog) Products() []domain.Product {
	return append([]domain.Product(nil), c.products...)
}

func (c *Catalog) Len() int { return len(c.products) }
