package domain

import (
	"fmt"
	"time"
)

// Status — жизненный цикл заказа.
type Status int

const (
	StatusToBeShipped Status = iota
	StatusOutForDelivery
	StatusDelivered

	statusCount = 3
)

var statusLabels = [statusCount]string{
	StatusToBeShipped:    "To be shipped",
	StatusOutForDelivery: "Out for delivery",
	StatusDelivered:      "Delivered",
}

// Next — следующий статус по кругу: ToBeShipped → OutForDelivery → Delivered → ToBeShipped.
func (s Status) Next() Status { return (s + 1) % statusCount }

// String — подпись статуса для пользователя.
func (s Status) String() string {
	if s < 0 || s >= statusCount {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusLabels[s]
}

// MarshalText — статус сериализуется подписью.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText — обратное к MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	for i, label := range statusLabels {
		if label == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown order status %q", text)
}

// OrderIDPrefix — префикс идентификатора заказа: ORDER-1, ORDER-2, ...
const OrderIDPrefix = "ORDER-"

// Order — снимок корзины на момент оформления плюс изменяемый статус.
type Order struct {
	ID       string     `json:"id"`
	Items    []LineItem `json:"items"`
	Status   Status     `json:"status"`
	PlacedAt time.Time  `json:"placed_at"`
}

// Total — сумма quantity × unit price по всем позициям.
func (o *Order) Total() Money {
	var total Money
	for i := range o.Items {
		total = total.Plus(o.Items[i].Subtotal())
	}
	return total
}

func (o *Order) clone() Order {
	c := *o
	c.Items = append([]LineItem(nil), o.Items...)
	return c
}

// Ledger — журнал заказов в порядке создания. Удаления нет,
// счётчик идентификаторов только растёт.
type Ledger struct {
	orders []*Order
	seq    int
}

func NewLedger() *Ledger { return &Ledger{} }

// Confirm — оформляет заказ из корзины.
// Пустая корзина → ErrEmptyCart, отказ пользователя → ErrOrderDeclined; в обоих случаях без изменений.
// При успехе: снимок позиций, следующий ORDER-<n>, статус ToBeShipped, корзина очищается.
func (l *Ledger) Confirm(cart *Cart, affirmed bool, at time.Time) (Order, error) {
	if cart.IsEmpty() {
		return Order{}, ErrEmptyCart
	}
	if !affirmed {
		return Order{}, ErrOrderDeclined
	}

	l.seq++
	order := &Order{
		ID:       fmt.Sprintf("%s%d", OrderIDPrefix, l.seq),
		Items:    cart.Items(),
		Status:   StatusToBeShipped,
		PlacedAt: at,
	}
	l.orders = append(l.orders, order)
	cart.Clear()

	return order.clone(), nil
}

// AdvanceStatus — переводит заказ в следующий статус цикла.
func (l *Ledger) AdvanceStatus(id string) (Order, error) {
	order := l.find(id)
	if order == nil {
		return Order{}, fmt.Errorf("%w: id=%s", ErrOrderNotFound, id)
	}
	order.Status = order.Status.Next()
	return order.clone(), nil
}

// Get — копия заказа по идентификатору.
func (l *Ledger) Get(id string) (Order, bool) {
	order := l.find(id)
	if order == nil {
		return Order{}, false
	}
	return order.clone(), true
}

// Orders — копии заказов в порядке создания.
func (l *Ledger) Orders() []Order {
	out := make([]Order, 0, len(l.orders))
	for _, o := range l.orders {
		out = append(out, o.clone())
	}
	return out
}

// Recent — копии заказов, новые первыми. Порядок журнала не меняется.
func (l *Ledger) Recent() []Order {
	out := make([]Order, 0, len(l.orders))
	for i := len(l.orders) - 1; i >= 0; i-- {
		out = append(out, l.orders[i].clone())
	}
	return out
}

func (l *Ledger) Len() int { return len(l.orders) }

func (l *Ledger) find(id string) *Order {
	for _, o := range l.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}
