package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// EventPublisher — доставка событий о заказах внешним подписчикам.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.OrderEvent) error
}
