package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/metrics"
	goredis "github.com/go-redis/redis/v8"
)

// Проверка, что BlobRepository удовлетворяет интерфейсу ports.BlobStore.
var _ ports.BlobStore = (*BlobRepository)(nil)

const (
	backendName = "redis"
	dataField   = "data" // поле хэша с сериализованным значением
)

// BlobRepository - значения хранятся в хэше под своим ключом.
type BlobRepository struct {
	client goredis.UniversalClient
}

// NewBlobRepository - конструктор BlobRepository.
func NewBlobRepository(client goredis.UniversalClient) *BlobRepository {
	return &BlobRepository{client: client}
}

// Get - redis.Nil означает отсутствие ключа, а не ошибку.
func (r *BlobRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.HGet(ctx, key, dataField).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		metrics.BlobOps.WithLabelValues(backendName, "get", "miss").Inc()
		return nil, false, nil
	case err != nil:
		metrics.BlobOps.WithLabelValues(backendName, "get", "error").Inc()
		return nil, false, fmt.Errorf("redis hget key=%s: %w", key, err)
	}
	metrics.BlobOps.WithLabelValues(backendName, "get", "hit").Inc()
	return data, true, nil
}

// Put - перезаписать значение.
func (r *BlobRepository) Put(ctx context.Context, key string, data []byte) error {
	if err := r.client.HSet(ctx, key, dataField, data).Err(); err != nil {
		metrics.BlobOps.WithLabelValues(backendName, "put", "error").Inc()
		return fmt.Errorf("redis hset key=%s: %w", key, err)
	}
	metrics.BlobOps.WithLabelValues(backendName, "put", "ok").Inc()
	return nil
}
