package kafka

import (
	"context"
	"time"

	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// deliver пишет сообщение с ретраями; после maxAttempts событие теряется (best-effort).
func (p *Producer) deliver(ctx context.Context, msg *kafka.Message) bool {
	retry := p.retryInitial
	for attempt := 1; ; attempt++ {
		ctxTimeout, cancel := context.WithTimeout(ctx, p.writeTimeout)
		err := p.writer.WriteMessages(ctxTimeout, *msg)
		cancel()

		if err == nil {
			metrics.EventsPublished.WithLabelValues(p.topic).Inc()
			return true
		}
		if attempt >= p.maxAttempts || ctx.Err() != nil {
			metrics.EventsFailed.WithLabelValues(p.topic).Inc()
			p.log.Errorf(ctx, "write failed key=%s attempts=%d: %v (dropped)", msg.Key, attempt, err)
			return false
		}

		sleep := p.withJitterEqual(retry)
		p.log.Warnf(ctx, "write failed key=%s: %v (will retry in %s)", msg.Key, err, sleep)
		if !p.sleepWithBackoff(ctx, sleep) {
			metrics.EventsFailed.WithLabelValues(p.topic).Inc()
			return false
		}
		retry = p.nextBackoff(retry)
	}
}

// drain дописывает оставшиеся в очереди сообщения без ретраев.
func (p *Producer) drain(ctx context.Context) {
	for {
		select {
		case msg := <-p.queue:
			ctxTimeout, cancel := context.WithTimeout(ctx, p.writeTimeout)
			err := p.writer.WriteMessages(ctxTimeout, msg)
			cancel()
			if err != nil {
				metrics.EventsFailed.WithLabelValues(p.topic).Inc()
				p.log.Warnf(ctx, "drain write failed key=%s: %v", msg.Key, err)
				continue
			}
			metrics.EventsPublished.WithLabelValues(p.topic).Inc()
		default:
			return
		}
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (p *Producer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (p *Producer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > p.retryMax {
		return p.retryMax
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (p *Producer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(p.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}
