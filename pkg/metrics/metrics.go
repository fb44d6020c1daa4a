package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// События витрины.
var (
	Events = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_events_total",
			Help: "UI events applied to the storefront",
		},
		[]string{"type", "result"}, // ok|rejected|error
	)
	CartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Mutations of itemized collections",
		},
		[]string{"op"}, // add|increment|decrement|remove|clear
	)
	Checkouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Checkout attempts by flow and outcome",
		},
		[]string{"flow", "outcome"}, // cart|order ; empty|summary|copied|copy_failed
	)
	BannerRotations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "banner_rotations_total",
			Help: "Automatic banner slide changes",
		},
	)
)

// Хранилище корзины.
var BlobOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "blob_operations_total",
		Help: "Blob store operations",
	},
	[]string{"backend", "op", "result"}, // op: get|put ; result: hit|miss|ok|error|corrupt
)

// Kafka.
var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister - регистрирует метрики в глобальном реестре (повторный вызов безопасен).
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			Events, CartMutations, Checkouts, BannerRotations, BlobOps,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		)
	})
}
