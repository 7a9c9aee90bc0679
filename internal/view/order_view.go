package view

import (
	"io"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// OrderItemLine — строка деталей заказа.
type OrderItemLine struct {
	Name     string `json:"name"`
	ImageRef string `json:"image_ref"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

// OrderLine — карточка заказа.
type OrderLine struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	Total       string          `json:"total"`
	DetailsOpen bool            `json:"details_open"`
	Items       []OrderItemLine `json:"items"`
}

// OrderModel — тело модалки заказов.
type OrderModel struct {
	Visible     bool        `json:"visible"`
	Empty       bool        `json:"empty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Orders      []OrderLine `json:"orders"`
	Notice      string      `json:"notice,omitempty"`
}

// BuildOrders — модель списка заказов. recent уже идёт от новых к старым;
// openID — раскрытая карточка ("" — все свёрнуты).
func (v *View) BuildOrders(recent []domain.Order, openID string, visible bool) OrderModel {
	m := OrderModel{
		Visible: visible,
		Empty:   len(recent) == 0,
		Orders:  make([]OrderLine, 0, len(recent)),
	}
	if m.Empty {
		m.Placeholder = MsgNoOrders
		return m
	}
	for i := range recent {
		o := &recent[i]
		line := OrderLine{
			ID:          o.ID,
			Status:      o.Status.String(),
			Total:       v.Price(o.Total()),
			DetailsOpen: openID != "" && o.ID == openID,
			Items:       make([]OrderItemLine, 0, len(o.Items)),
		}
		for j := range o.Items {
			it := &o.Items[j]
			line.Items = append(line.Items, OrderItemLine{
				Name:     it.Name,
				ImageRef: it.ImageRef,
				Quantity: it.Quantity,
				Subtotal: v.Price(it.Subtotal()),
			})
		}
		m.Orders = append(m.Orders, line)
	}
	return m
}

// RenderOrders — HTML тела модалки заказов.
func (v *View) RenderOrders(w io.Writer, m *OrderModel) error { return v.render(w, "orders", m) }
