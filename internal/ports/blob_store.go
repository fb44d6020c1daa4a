package ports

import "context"

// BlobStore - хранилище сериализованного состояния «ключ -> байты».
type BlobStore interface {
	// Get - (data, true, nil) при наличии ключа, (nil, false, nil) при его отсутствии.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put - перезаписать значение по ключу целиком.
	Put(ctx context.Context, key string, data []byte) error
}
