package view

import (
	"io"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// CartLine — строка корзины.
type CartLine struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageRef  string `json:"image_ref"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// CartModel — тело модалки корзины.
type CartModel struct {
	Visible       bool       `json:"visible"`
	Empty         bool       `json:"empty"`
	Placeholder   string     `json:"placeholder,omitempty"`
	Lines         []CartLine `json:"lines"`
	ConfirmPrompt string     `json:"confirm_prompt"`
	Notice        string     `json:"notice,omitempty"`
	Warning       string     `json:"warning,omitempty"`
}

// BuildCart — модель корзины по текущим позициям.
func (v *View) BuildCart(items []domain.LineItem, visible bool) CartModel {
	m := CartModel{
		Visible:       visible,
		Empty:         len(items) == 0,
		Lines:         make([]CartLine, 0, len(items)),
		ConfirmPrompt: MsgConfirmPrompt,
	}
	if m.Empty {
		m.Placeholder = MsgCartEmpty
		return m
	}
	for i := range items {
		it := &items[i]
		m.Lines = append(m.Lines, CartLine{
			ID:        it.ID,
			Name:      it.Name,
			ImageRef:  it.ImageRef,
			UnitPrice: v.Price(it.UnitPrice),
			Quantity:  it.Quantity,
		})
	}
	return m
}

// RenderCart — HTML тела модалки корзины.
func (v *View) RenderCart(w io.Writer, m *CartModel) error { return v.render(w, "cart", m) }
