//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

var topicUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// TopicName — уникальный топик для теста: "<prefix>-<имя теста>-<наносекунды>".
func TopicName(prefix, testName string) string {
	return fmt.Sprintf("%s-%s-%d", prefix, topicUnsafe.ReplaceAllString(testName, "-"), time.Now().UnixNano())
}

// CreateTopic — создаёт топик через контроллер и ждёт его в метаданных.
// Уже существующий топик не ошибка.
func (b *Broker) CreateTopic(ctx context.Context, topic string) error {
	conn, err := kafka.DialContext(ctx, "tcp", b.Addr)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	ctrl, err := conn.Controller()
	_ = conn.Close()
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}

	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}
	return b.waitTopic(ctx, topic)
}

// ReadFirst — первое сообщение топика (партиция 0).
func (b *Broker) ReadFirst(ctx context.Context, topic string) (kafka.Message, error) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   b.Brokers(),
		Topic:     topic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  1 << 20,
	})
	defer r.Close()

	if err := r.SetOffset(kafka.FirstOffset); err != nil {
		return kafka.Message{}, err
	}
	return r.ReadMessage(ctx)
}

func (b *Broker) waitTopic(ctx context.Context, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	var lastErr error
	for {
		conn, err := kafka.DialContext(ctx, "tcp", b.Addr)
		if err == nil {
			var parts []kafka.Partition
			parts, err = conn.ReadPartitions(topic)
			_ = conn.Close()
			if err == nil && len(parts) > 0 {
				return nil
			}
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q not ready: %w", topic, errors.Join(ctx.Err(), lastErr))
		case <-tick.C:
		}
	}
}

// plainHost — снимает схему вида "PLAINTEXT://" с адреса брокера.
func plainHost(raw string) string {
	first := strings.TrimSpace(strings.Split(raw, ",")[0])
	if strings.Contains(first, "://") {
		if u, err := url.Parse(first); err == nil && u.Host != "" {
			return u.Host
		}
	}
	return first
}
