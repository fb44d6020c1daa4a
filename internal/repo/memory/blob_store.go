package memory

import (
	"context"
	"sync"

	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/metrics"
)

// Проверка, что BlobStore удовлетворяет интерфейсу ports.BlobStore.
var _ ports.BlobStore = (*BlobStore)(nil)

const backendName = "memory"

// BlobStore - хранилище «ключ -> байты» в памяти процесса.
// Значения копируются при записи и чтении, чтобы вызывающий не мог
// изменить сохранённое состояние.
type BlobStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewBlobStore - пустое хранилище.
func NewBlobStore() *BlobStore {
	return &BlobStore{data: make(map[string][]byte)}
}

// Get - копия значения по ключу.
func (s *BlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		metrics.BlobOps.WithLabelValues(backendName, "get", "miss").Inc()
		return nil, false, nil
	}
	metrics.BlobOps.WithLabelValues(backendName, "get", "hit").Inc()
	return cloneBytes(v), true, nil
}

// Put - перезаписать значение по ключу.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		metrics.BlobOps.WithLabelValues(backendName, "put", "error").Inc()
		return err
	}

	s.mu.Lock()
	s.data[key] = cloneBytes(data)
	s.mu.Unlock()

	metrics.BlobOps.WithLabelValues(backendName, "put", "ok").Inc()
	return nil
}

// Len - число ключей.
func (s *BlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
