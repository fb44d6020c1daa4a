package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу ports.MessageConsumer.
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader - часть kafka.Reader, которой пользуется Consumer.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// eventApplier - витрина, применяющая событие из сырого JSON.
type eventApplier interface {
	ApplyMessage(ctx context.Context, raw []byte) error
}

// Consumer - читает UI-события из топика и применяет их к витрине.
// Гарантия at-least-once: оффсет коммитится после применения или
// после окончательного отказа (некорректное событие).
type Consumer struct {
	reader  reader
	applier eventApplier
	log     ports.Logger

	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration

	rndMu     sync.Mutex
	rnd       *rand.Rand
	closeOnce sync.Once
}

// NewConsumer - конструктор поверх настоящего kafka.Reader.
func NewConsumer(cfg *ConsumerConfig, applier eventApplier, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg, applier, log)
}

func newConsumer(r reader, cfg *ConsumerConfig, applier eventApplier, log ports.Logger) *Consumer {
	c := cfg.withDefaults()
	return &Consumer{
		reader:         r,
		applier:        applier,
		log:            log,
		processTimeout: c.ProcessTimeout,
		retryInitial:   c.RetryInitial,
		retryMax:       c.RetryMax,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run - цикл чтения до отмены ctx.
//   - применено или отклонено навсегда -> коммит;
//   - временная ошибка -> без коммита; group reader не перечитает сообщение
//     до перезапуска или ребаланса, а следующий коммит сдвинет оффсет дальше;
//   - ошибка чтения -> экспоненциальная пауза с джиттером.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	wait := c.retryInitial
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			d := c.jitter(wait)
			c.log.Warnf(ctx, "fetch failed: %v (retry in %s)", err, d)
			if !sleepCtx(ctx, d) {
				return ctx.Err()
			}
			wait = c.next(wait)
			continue
		}
		wait = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handle(ctx, rc.Topic, &msg) {
			c.commit(ctx, &msg)
			continue
		}
		_ = sleepCtx(ctx, c.jitter(min(c.retryInitial, 500*time.Millisecond)))
	}
}

// Close - закрыть reader; повторный вызов ничего не делает.
func (c *Consumer) Close() (err error) {
	c.closeOnce.Do(func() { err = c.reader.Close() })
	return err
}

// handle - применить событие; true, если оффсет можно коммитить.
func (c *Consumer) handle(ctx context.Context, topic string, msg *kafka.Message) bool {
	pctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.applier.ApplyMessage(pctx, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case domain.IsRejection(err):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "event rejected offset=%d: %v (skipped)", msg.Offset, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "event failed offset=%d: %v (left uncommitted)", msg.Offset, err)
		return false
	}
}

func (c *Consumer) commit(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}

// next - удвоение паузы с потолком retryMax.
func (c *Consumer) next(d time.Duration) time.Duration {
	return min(2*d, c.retryMax)
}

// jitter - половина паузы фиксирована, вторая половина случайна.
func (c *Consumer) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	c.rndMu.Lock()
	extra := time.Duration(c.rnd.Int63n(int64(d-half) + 1))
	c.rndMu.Unlock()
	return half + extra
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
