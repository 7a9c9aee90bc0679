//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/storefront/internal/domain"
	ikafka "github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/Gunvolt24/storefront/internal/testutil"
	"github.com/Gunvolt24/storefront/pkg/logger"
)

// Событие order.placed доходит до брокера и читается обратно
func TestProducer_PublishesOrderPlaced_TC(t *testing.T) {
	// длинный контекст только на старт контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	broker, err := testutil.StartRedpanda(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = broker.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	topic := testutil.TopicName("order-events-itc", t.Name())
	require.NoError(t, broker.CreateTopic(ctx, topic))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	producer := ikafka.NewProducer(&ikafka.ProducerConfig{
		Brokers:      broker.Brokers(),
		Topic:        topic,
		RequiredAcks: "all",
		WriteTimeout: 10 * time.Second,
		RetryInitial: 200 * time.Millisecond,
		RetryMax:     2 * time.Second,
	}, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go func() { _ = producer.Run(runCtx) }()

	order := &domain.Order{
		ID:     "ORDER-1",
		Status: domain.StatusToBeShipped,
		Items:  []domain.LineItem{{ID: "i1", Name: "Tote", UnitPrice: 1275, ImageRef: "tote.png", Quantity: 2}},
	}
	ev := domain.NewOrderEvent(domain.OrderPlaced, "sess-itc", order, time.Now().UTC())
	require.NoError(t, producer.Publish(ctx, &ev))

	msg, err := broker.ReadFirst(ctx, topic)
	require.NoError(t, err)
	require.Equal(t, "sess-itc", string(msg.Key))

	var got domain.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, domain.OrderPlaced, got.Type)
	require.Equal(t, "ORDER-1", got.OrderID)
	require.Equal(t, domain.Money(2550), got.Total)
	require.Len(t, got.Items, 1)

	require.NoError(t, producer.Close())
}
