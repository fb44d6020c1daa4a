package ports

import "context"

// MessageConsumer - фоновый источник событий (Kafka).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

// BackgroundRunner - фоновая задача, работающая до отмены контекста.
type BackgroundRunner interface {
	Run(ctx context.Context) error
}
