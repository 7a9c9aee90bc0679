package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет портам приложения.
var (
	_ ports.EventPublisher   = (*Producer)(nil)
	_ ports.BackgroundWorker = (*Producer)(nil)
)

// ErrQueueFull — очередь отправки переполнена, событие отброшено.
var ErrQueueFull = errors.New("kafka producer queue is full")

// ErrProducerClosed — Publish после Close.
var ErrProducerClosed = errors.New("kafka producer is closed")

// messageWriter — минимальный контракт над kafka.Writer,
// чтобы подменять его моками в тестах.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — асинхронная отправка событий о заказах.
// Publish кладёт сообщение в очередь и не блокирует запрос; Run пишет в Kafka с ретраями.
type Producer struct {
	writer       messageWriter
	topic        string
	log          ports.Logger
	queue        chan kafka.Message
	writeTimeout time.Duration
	maxAttempts  int
	retryInitial time.Duration
	retryMax     time.Duration
	jitterRand   *rand.Rand

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
	running   bool
}

// NewProducer — конструктор поверх kafka.Writer.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	return newProducer(cfg.writer(), cfg, log)
}

func newProducer(w messageWriter, cfg *ProducerConfig, log ports.Logger) *Producer {
	// Параметры по умолчанию (если не заданы в конфиге)
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	qs := cfg.QueueSize
	if qs <= 0 {
		qs = 1024
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = 200 * time.Millisecond
	}
	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 5 * time.Second
	}

	return &Producer{
		writer:       w,
		topic:        cfg.Topic,
		log:          log,
		queue:        make(chan kafka.Message, qs),
		writeTimeout: wt,
		maxAttempts:  attempts,
		retryInitial: rInit,
		retryMax:     rMax,
		jitterRand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Publish — сериализует событие и ставит в очередь. Ключ сообщения — ID сессии.
func (p *Producer) Publish(ctx context.Context, event *domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrProducerClosed
	}

	select {
	case p.queue <- msg:
		return nil
	default:
		metrics.EventsFailed.WithLabelValues(p.topic).Inc()
		p.log.Warnf(ctx, "event dropped type=%s order=%s: queue full", event.Type, event.OrderID)
		return ErrQueueFull
	}
}

// Run — цикл отправки до отмены контекста или Close.
// Перед выходом дописывает то, что уже стоит в очереди.
// После Close сразу возвращает nil: writer уже закрыт.
func (p *Producer) Run(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.running = true
	p.mu.Unlock()
	defer close(p.done)
	p.log.Infof(ctx, "kafka producer started topic=%s", p.topic)

	for {
		select {
		case <-ctx.Done():
			p.drain(context.WithoutCancel(ctx))
			return ctx.Err()
		case <-p.stop:
			p.drain(context.WithoutCancel(ctx))
			return nil
		case msg := <-p.queue:
			p.deliver(ctx, &msg)
		}
	}
}

// Close — остановка цикла, ожидание дописывания очереди и закрытие writer'а; идемпотентно.
// Если Run не запускался, очередь дописывается здесь же.
func (p *Producer) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		running := p.running
		p.mu.Unlock()
		close(p.stop)
		if running {
			<-p.done
		} else {
			p.drain(context.Background())
		}
		err = p.writer.Close()
	})
	return err
}
