// Package view — модели и HTML-отрисовка модалок корзины и заказов.
// Модели строятся целиком из состояния сессии при каждой отрисовке; своего состояния у view нет.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// Тексты, которые видит пользователь.
const (
	MsgCartEmpty        = "Your cart is empty."
	MsgNoOrders         = "No orders placed yet."
	MsgItemAdded        = "Item added to cart."
	MsgInvalidQuantity  = "Quantity must be at least 1."
	MsgQuantityTooLarge = "Quantity must be at most 9999."
	MsgOrderCanceled    = "Order canceled."
	MsgConfirmPrompt    = "Are you sure to confirm?"
)

// DefaultCurrency — символ валюты витрины по умолчанию.
const DefaultCurrency = "₱"

//go:embed templates/*.tmpl
var templatesFS embed.FS

// View — построение моделей и их отрисовка.
type View struct {
	currency string
	tmpl     *template.Template
}

// New — конструктор; пустая валюта → DefaultCurrency.
func New(currency string) (*View, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	tmpl, err := template.New("view").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &View{currency: currency, tmpl: tmpl}, nil
}

// Price — сумма с валютой и двумя знаками: ₱25.50.
func (v *View) Price(m domain.Money) string { return v.currency + m.String() }

func (v *View) render(w io.Writer, name string, data any) error {
	return v.tmpl.ExecuteTemplate(w, name, data)
}
