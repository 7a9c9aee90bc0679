package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Cart operations",
		},
		[]string{"op"}, // add|set_quantity|remove|rejected
	)
	OrderConfirmations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_order_confirmations_total",
			Help: "Order confirmation attempts by result",
		},
		[]string{"result"}, // placed|declined|empty
	)
	OrderStatusTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_order_status_transitions_total",
			Help: "Order status advances by resulting status",
		},
		[]string{"status"},
	)
)

var (
	SessionOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_session_operations_total",
			Help: "Session store operations",
		},
		[]string{"op"}, // hit|miss|created|evicted|expired
	)
	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_sessions_active",
			Help: "Number of sessions currently in store",
		},
	)
)

var (
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_events_published_total",
			Help: "Order events written to Kafka",
		},
		[]string{"topic"},
	)
	EventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_events_failed_total",
			Help: "Order events failed to write",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует метрики в глобальном реестре; повторный вызов ничего не делает.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CartOps, OrderConfirmations, OrderStatusTransitions,
			SessionOps, SessionsActive,
			EventsPublished, EventsFailed,
		)
	})
}
