package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что BlobRepository удовлетворяет интерфейсу ports.BlobStore.
var _ ports.BlobStore = (*BlobRepository)(nil)

const backendName = "postgres"

// BlobRepository - хранилище «ключ -> байты» в таблице storefront_blobs.
type BlobRepository struct {
	pool *pgxpool.Pool
}

// NewBlobRepository - конструктор BlobRepository.
func NewBlobRepository(pool *pgxpool.Pool) *BlobRepository { return &BlobRepository{pool: pool} }

// Get - значение по ключу; отсутствие строки не является ошибкой.
func (r *BlobRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM storefront_blobs WHERE key = $1`, key).Scan(&data)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		metrics.BlobOps.WithLabelValues(backendName, "get", "miss").Inc()
		return nil, false, nil
	case err != nil:
		metrics.BlobOps.WithLabelValues(backendName, "get", "error").Inc()
		return nil, false, fmt.Errorf("select blob key=%s: %w", key, err)
	}
	metrics.BlobOps.WithLabelValues(backendName, "get", "hit").Inc()
	return data, true, nil
}

// Put - идемпотентный upsert значения.
func (r *BlobRepository) Put(ctx context.Context, key string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO storefront_blobs (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, key, data)
	if err != nil {
		metrics.BlobOps.WithLabelValues(backendName, "put", "error").Inc()
		return fmt.Errorf("upsert blob key=%s: %w", key, err)
	}
	metrics.BlobOps.WithLabelValues(backendName, "put", "ok").Inc()
	return nil
}
