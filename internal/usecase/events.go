package usecase

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/domain"
)

// publish — отправка события best-effort: ошибка логируется, пользователю не отдаётся.
func (s *StorefrontService) publish(ctx context.Context, t domain.OrderEventType, sessionID string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.NewOrderEvent(t, sessionID, order, s.now())
	if err := s.publisher.Publish(ctx, &event); err != nil {
		s.log.Warnf(ctx, "publish %s order=%s failed: %v", t, order.ID, err)
	}
}
