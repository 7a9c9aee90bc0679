package ports

import (
	"context"

	"github.com/Gunvolt24/storefront/internal/session"
)

// SessionStore — хранилище сессий страницы.
// Требования к реализации: потокобезопасность; возврат живых (не копий) сессий.
type SessionStore interface {
	// Get — сессия по ID; (nil, false) при промахе или истечении.
	Get(ctx context.Context, id string) (*session.Session, bool)

	// GetOrCreate — существующая сессия или новая, атомарно.
	GetOrCreate(ctx context.Context, id string) *session.Session

	// Delete — удалить сессию (идемпотентно).
	Delete(ctx context.Context, id string)
}
