package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

type ProducerConfig struct {
	Brokers      []string
	Topic        string
	RequiredAcks string // none|one|all
	WriteTimeout time.Duration
	QueueSize    int
	MaxAttempts  int
	RetryInitial time.Duration
	RetryMax     time.Duration
}

func (c *ProducerConfig) writer() *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        c.Topic,
		Balancer:     &kafka.Hash{}, // события одной сессии попадают в одну партицию
		RequiredAcks: c.requiredAcks(),
		WriteTimeout: c.WriteTimeout,
		// ретраи делает Producer с backoff
		MaxAttempts: 1,
	}
}

func (c *ProducerConfig) requiredAcks() kafka.RequiredAcks {
	switch strings.ToLower(strings.TrimSpace(c.RequiredAcks)) {
	case "none":
		return kafka.RequireNone
	case "one":
		return kafka.RequireOne
	default:
		return kafka.RequireAll
	}
}
