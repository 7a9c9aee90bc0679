package domain

import "time"

// OrderEventType — тип события журнала заказов.
type OrderEventType string

const (
	OrderPlaced        OrderEventType = "order.placed"
	OrderStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent — уведомление о заказе для внешних подписчиков.
type OrderEvent struct {
	Type       OrderEventType `json:"type"`
	SessionID  string         `json:"session_id"`
	OrderID    string         `json:"order_id"`
	Status     Status         `json:"status"`
	Total      Money          `json:"total"`
	Items      []LineItem     `json:"items,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewOrderEvent — событие по снимку заказа.
func NewOrderEvent(t OrderEventType, sessionID string, o *Order, at time.Time) OrderEvent {
	ev := OrderEvent{
		Type:       t,
		SessionID:  sessionID,
		OrderID:    o.ID,
		Status:     o.Status,
		Total:      o.Total(),
		OccurredAt: at,
	}
	if t == OrderPlaced {
		ev.Items = append([]LineItem(nil), o.Items...)
	}
	return ev
}
