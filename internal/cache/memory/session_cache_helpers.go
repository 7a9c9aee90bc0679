package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// lookup — элемент по ID с проверкой TTL; при попадании продлевает жизнь и поднимает в голову.
// Вызывается под c.mu.
func (c *SessionCache) lookup(id string, now time.Time) (*list.Element, bool) {
	elem, ok := c.index[id]
	if !ok {
		metrics.SessionOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.SessionOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.SessionsActive.Set(float64(c.ll.Len()))
		return nil, false
	}
	c.ll.MoveToFront(elem)
	ent.expiresAt = c.expiryFrom(now)
	return elem, true
}

// evictLRU — удаляет наименее используемую сессию.
func (c *SessionCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.SessionOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *SessionCache) removeElement(elem *list.Element) {
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.id)
	}
	c.ll.Remove(elem)
}

func (c *SessionCache) isExpired(ent *entry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (c *SessionCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет истёкшие сессии из хвоста до первой актуальной.
// TTL одинаковый и продлевается при касании, поэтому хвост списка истекает первым.
func (c *SessionCache) pruneExpiredFromBack(now time.Time) int {
	if c.ttl <= 0 {
		return 0
	}
	removed := 0
	for {
		back := c.ll.Back()
		if back == nil {
			break
		}
		if !c.isExpired(back.Value.(*entry), now) {
			break
		}
		c.removeElement(back)
		metrics.SessionOps.WithLabelValues("expired").Inc()
		removed++
	}
	if removed > 0 {
		metrics.SessionsActive.Set(float64(c.ll.Len()))
	}
	return removed
}
