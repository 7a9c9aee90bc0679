package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/session"
	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// Проверка, что SessionCache удовлетворяет интерфейсу ports.SessionStore.
var _ ports.SessionStore = (*SessionCache)(nil)

// Factory — создание новой сессии по ID.
type Factory func(id string) *session.Session

type entry struct {
	id        string
	sess      *session.Session
	expiresAt time.Time
}

// SessionCache — LRU-хранилище сессий с TTL простоя.
// Каждое обращение продлевает жизнь сессии; при переполнении вытесняется самая давняя.
type SessionCache struct {
	capacity int
	ttl      time.Duration
	factory  Factory
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewSessionCache — конструктор; capacity <= 0 → 1, ttl <= 0 → без истечения.
func NewSessionCache(capacity int, ttl time.Duration, factory Factory) *SessionCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &SessionCache{
		capacity: capacity,
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — сессия по ID без создания.
func (c *SessionCache) Get(_ context.Context, id string) (*session.Session, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.lookup(id, now)
	if !ok {
		return nil, false
	}
	metrics.SessionOps.WithLabelValues("hit").Inc()
	return elem.Value.(*entry).sess, true
}

// GetOrCreate — существующая сессия или новая из фабрики.
func (c *SessionCache) GetOrCreate(_ context.Context, id string) *session.Session {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.lookup(id, now); ok {
		metrics.SessionOps.WithLabelValues("hit").Inc()
		return elem.Value.(*entry).sess
	}

	c.pruneExpiredFromBack(now)

	sess := c.factory(id)
	c.index[id] = c.ll.PushFront(&entry{
		id:        id,
		sess:      sess,
		expiresAt: c.expiryFrom(now),
	})
	metrics.SessionOps.WithLabelValues("created").Inc()

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.SessionsActive.Set(float64(c.ll.Len()))
	return sess
}

// Delete — удалить сессию, если она есть.
func (c *SessionCache) Delete(_ context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[id]; ok {
		c.removeElement(elem)
		metrics.SessionsActive.Set(float64(c.ll.Len()))
	}
}

// Sweep — удаляет все истёкшие сессии; возвращает их число.
func (c *SessionCache) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pruneExpiredFromBack(now)
}

// Len — число сессий в хранилище (включая ещё не выметенные истёкшие).
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
