package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/ports"
)

// Проверка, что Janitor удовлетворяет интерфейсу ports.BackgroundWorker.
var _ ports.BackgroundWorker = (*Janitor)(nil)

// Janitor — периодически выметает истёкшие сессии, чтобы брошенные страницы
// не занимали память до вытеснения по LRU.
type Janitor struct {
	cache    *SessionCache
	interval time.Duration
	log      ports.Logger

	stop      chan struct{}
	closeOnce sync.Once
}

// NewJanitor — конструктор; interval <= 0 → 1 минута.
func NewJanitor(cache *SessionCache, interval time.Duration, log ports.Logger) *Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Janitor{
		cache:    cache,
		interval: interval,
		log:      log,
		stop:     make(chan struct{}),
	}
}

// Run — цикл до отмены контекста или Close.
func (j *Janitor) Run(ctx context.Context) error {
	j.log.Infof(ctx, "session janitor started interval=%s", j.interval)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-j.stop:
			return nil
		case now := <-ticker.C:
			if n := j.cache.Sweep(now); n > 0 {
				j.log.Debugf(ctx, "swept %d expired sessions, %d left", n, j.cache.Len())
			}
		}
	}
}

// Close — останавливает Run; повторный вызов безопасен.
func (j *Janitor) Close() error {
	j.closeOnce.Do(func() { close(j.stop) })
	return nil
}
