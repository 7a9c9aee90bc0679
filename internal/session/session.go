// Package session — состояние одной страницы пользователя: корзина, журнал заказов,
// раскрытая карточка заказа, видимость модалок и меню.
package session

import (
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/navmenu"
)

// Session — агрегат страницы. Все изменения и отрисовка идут через Do,
// поэтому внутри одной сессии операции строго последовательны.
type Session struct {
	ID        string
	CreatedAt time.Time

	Cart          *domain.Cart
	Ledger        *domain.Ledger
	Disclosure    Disclosure
	CartVisible   bool
	OrdersVisible bool
	Menu          navmenu.Menu

	mu sync.Mutex
}

// New — новая пустая сессия. newID — генератор ID позиций корзины (nil → UUID).
func New(id string, newID domain.IDFunc, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		Cart:      domain.NewCart(newID),
		Ledger:    domain.NewLedger(),
	}
}

// Do — выполняет fn под блокировкой сессии.
func (s *Session) Do(fn func(s *Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// Disclosure — какая карточка заказа раскрыта. Не хранится в заказе,
// сбрасывается любой перерисовкой списка, кроме самого переключения.
type Disclosure struct {
	openID string
}

// Toggle — закрывает все карточки, кроме orderID, и переключает её.
func (d *Disclosure) Toggle(orderID string) {
	if d.openID == orderID {
		d.openID = ""
		return
	}
	d.openID = orderID
}

// OpenID — ID раскрытой карточки или "".
func (d *Disclosure) OpenID() string { return d.openID }

func (d *Disclosure) IsOpen(orderID string) bool { return orderID != "" && d.openID == orderID }

// Reset — свернуть все карточки.
func (d *Disclosure) Reset() { d.openID = "" }
