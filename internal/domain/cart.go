package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxQuantity — наибольшее количество одной позиции.
const MaxQuantity = 9999

// IDFunc — генератор непрозрачных идентификаторов позиций корзины.
type IDFunc func() string

// LineItem — позиция корзины.
type LineItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice Money  `json:"unit_price"`
	ImageRef  string `json:"image_ref"`
	Quantity  int    `json:"quantity"`
}

// Subtotal — quantity × unit price.
func (li LineItem) Subtotal() Money { return li.UnitPrice.Times(li.Quantity) }

// Cart — упорядоченная по вставке корзина; не более одной позиции на имя товара.
// Не потокобезопасна: синхронизацию обеспечивает владелец (сессия).
type Cart struct {
	items []LineItem
	newID IDFunc
}

// NewCart — конструктор. При newID == nil идентификаторы — UUID.
func NewCart(newID IDFunc) *Cart {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Cart{newID: newID}
}

// Add — увеличивает количество существующей позиции с тем же именем
// или добавляет новую с количеством 1. Количество не растёт выше MaxQuantity.
// Возвращает итоговую позицию.
func (c *Cart) Add(p Product) LineItem {
	for i := range c.items {
		if c.items[i].Name == p.Name {
			if c.items[i].Quantity < MaxQuantity {
				c.items[i].Quantity++
			}
			return c.items[i]
		}
	}
	item := LineItem{
		ID:        c.newID(),
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageRef:  p.ImageRef,
		Quantity:  1,
	}
	c.items = append(c.items, item)
	return item
}

// SetQuantity — задаёт количество позиции; quantity вне [1, MaxQuantity] отклоняется без изменений.
func (c *Cart) SetQuantity(id string, quantity int) error {
	i, err := c.indexOf(id)
	if err != nil {
		return err
	}
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if quantity > MaxQuantity {
		return fmt.Errorf("%w: got %d", ErrQuantityTooLarge, quantity)
	}
	c.items[i].Quantity = quantity
	return nil
}

// Remove — удаляет позицию, сохраняя порядок остальных.
func (c *Cart) Remove(id string) error {
	i, err := c.indexOf(id)
	if err != nil {
		return err
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// Clear — очищает корзину (используется только при оформлении заказа).
func (c *Cart) Clear() { c.items = nil }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) Len() int { return len(c.items) }

// Items — независимая копия позиций в порядке добавления.
func (c *Cart) Items() []LineItem {
	if len(c.items) == 0 {
		return nil
	}
	return append([]LineItem(nil), c.items...)
}

func (c *Cart) indexOf(id string) (int, error) {
	for i := range c.items {
		if c.items[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: id=%s", ErrLineItemNotFound, id)
}
