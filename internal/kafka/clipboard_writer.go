package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/segmentio/kafka-go"
)

// Проверка, что ClipboardWriter удовлетворяет интерфейсу ports.Clipboard.
var _ ports.Clipboard = (*ClipboardWriter)(nil)

// ClipboardKey - ключ сообщений с текстом заказа.
const ClipboardKey = "order-message"

// messageWriter - часть kafka.Writer, которой пользуется ClipboardWriter.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ClipboardWriter - «буфер обмена», публикующий текст заказа в топик,
// откуда его забирает оператор магазина.
type ClipboardWriter struct {
	writer messageWriter
	topic  string
	log    ports.Logger
}

// NewClipboardWriter - синхронный writer: Write возвращается после подтверждения брокера.
func NewClipboardWriter(brokers []string, topic string, log ports.Logger) *ClipboardWriter {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &ClipboardWriter{writer: w, topic: topic, log: log}
}

// Write - опубликовать текст; ошибка означает, что копирование не удалось.
func (w *ClipboardWriter) Write(ctx context.Context, text string) error {
	msg := kafka.Message{
		Key:   []byte(ClipboardKey),
		Value: []byte(text),
		Time:  time.Now(),
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("clipboard publish topic=%s: %w", w.topic, err)
	}
	w.log.Infof(ctx, "order message published topic=%s bytes=%d", w.topic, len(text))
	return nil
}

func (w *ClipboardWriter) Close() error { return w.writer.Close() }
