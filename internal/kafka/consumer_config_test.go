package kafka

import (
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestConsumerConfig_StartOffset(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]int64{
		"first":     kafka.FirstOffset,
		" FiRsT \n": kafka.FirstOffset,
		"":          kafka.LastOffset,
		"last":      kafka.LastOffset,
		"earliest":  kafka.LastOffset,
	} {
		cfg := ConsumerConfig{Brokers: []string{"k1:9092"}, Topic: "storefront-events", GroupID: "storefront", StartOffset: raw}
		rc := cfg.ReaderConfig()

		require.Equal(t, want, rc.StartOffset, "start offset %q", raw)
		require.Equal(t, "storefront-events", rc.Topic)
		require.Equal(t, "storefront", rc.GroupID)
		require.Zero(t, rc.CommitInterval, "offsets are committed manually")
	}
}

func TestConsumerConfig_withDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          ConsumerConfig
		wantProcess time.Duration
		wantInitial time.Duration
		wantMax     time.Duration
	}{
		{"zero_values", ConsumerConfig{}, 5 * time.Second, time.Second, 30 * time.Second},
		{"negative_values", ConsumerConfig{ProcessTimeout: -1, RetryInitial: -1, RetryMax: -1}, 5 * time.Second, time.Second, 30 * time.Second},
		{"max_below_initial", ConsumerConfig{RetryInitial: 2 * time.Second, RetryMax: 500 * time.Millisecond}, 5 * time.Second, 2 * time.Second, 2 * time.Second},
		{"initial_above_default_max", ConsumerConfig{RetryInitial: time.Minute}, 5 * time.Second, time.Minute, time.Minute},
		{"explicit_kept", ConsumerConfig{ProcessTimeout: time.Second, RetryInitial: 100 * time.Millisecond, RetryMax: 3 * time.Second}, time.Second, 100 * time.Millisecond, 3 * time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.in.withDefaults()
			require.Equal(t, tt.wantProcess, got.ProcessTimeout)
			require.Equal(t, tt.wantInitial, got.RetryInitial)
			require.Equal(t, tt.wantMax, got.RetryMax)
		})
	}
}

func TestNewConsumer_AppliesDefaults(t *testing.T) {
	c := NewConsumer(&ConsumerConfig{
		Brokers:      []string{"127.0.0.1:1"},
		Topic:        "storefront-events",
		RetryInitial: 2 * time.Second,
		RetryMax:     time.Second,
	}, nil, nopLogger{})
	defer func() { _ = c.Close() }()

	require.Equal(t, 5*time.Second, c.processTimeout)
	require.Equal(t, 2*time.Second, c.retryMax)
}
