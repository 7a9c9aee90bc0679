//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
)

const redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"

var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// Broker — одноразовый Redpanda для интеграционных тестов продюсера событий.
type Broker struct {
	container *redpanda.Container
	Addr      string // host:port для kafka-go
}

// StartRedpanda — поднимает брокер с автосозданием топиков.
func StartRedpanda(ctx context.Context) (*Broker, error) {
	rp, err := redpanda.Run(ctx, redpandaImage,
		tc.WithLifecycleHooks(lifecycleLog(tcLogger)),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, fmt.Errorf("run redpanda: %w", err)
	}

	addr, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, fmt.Errorf("seed broker: %w", err)
	}
	return &Broker{container: rp, Addr: plainHost(addr)}, nil
}

// Brokers — список адресов для ProducerConfig.
func (b *Broker) Brokers() []string { return []string{b.Addr} }

// Close — останавливает контейнер.
func (b *Broker) Close() error { return tc.TerminateContainer(b.container) }

func lifecycleLog(l *log.Logger) tc.ContainerLifecycleHooks {
	short := func(c tc.Container) string {
		id := c.GetContainerID()
		if len(id) > 12 {
			id = id[:12]
		}
		return id
	}
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(_ context.Context, req tc.ContainerRequest) error {
				l.Printf("creating image=%s", req.Image)
				return nil
			},
		},
		PostReadies: []tc.ContainerHook{
			func(_ context.Context, c tc.Container) error {
				l.Printf("ready id=%s", short(c))
				return nil
			},
		},
		PostTerminates: []tc.ContainerHook{
			func(_ context.Context, c tc.Container) error {
				l.Printf("terminated id=%s", short(c))
				return nil
			},
		},
	}
}
