package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/validate"
)

// DefaultCartKey - ключ, под которым корзина лежит в хранилище.
const DefaultCartKey = "ohsushiCart"

// CartStore - корзина: сохраняется после каждой мутации, количество задаёт вызывающий.
type CartStore struct {
	*Collection
}

// blobPersistence - сериализация всей корзины в JSON под одним ключом.
type blobPersistence struct {
	blob ports.BlobStore
	key  string
}

func (p blobPersistence) Save(ctx context.Context, items []domain.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return p.blob.Put(ctx, p.key, raw)
}

// LoadCartStore - читает корзину из хранилища один раз при старте.
// Отсутствие ключа, ошибка чтения или повреждённые данные дают пустую корзину.
func LoadCartStore(
	ctx context.Context,
	blob ports.BlobStore,
	key string,
	validator ports.CartValidator,
	log ports.Logger,
) *CartStore {
	if key == "" {
		key = DefaultCartKey
	}
	items := loadItems(ctx, blob, key, validator, log)
	return &CartStore{
		Collection: NewCollection(items, ExplicitQuantity, blobPersistence{blob: blob, key: key}),
	}
}

func loadItems(
	ctx context.Context,
	blob ports.BlobStore,
	key string,
	validator ports.CartValidator,
	log ports.Logger,
) []domain.LineItem {
	raw, found, err := blob.Get(ctx, key)
	switch {
	case err != nil:
		log.Warnf(ctx, "cart load failed key=%s err=%v, starting with empty cart", key, err)
		return nil
	case !found:
		log.Infof(ctx, "no saved cart key=%s, starting with empty cart", key)
		return nil
	}

	items, err := validate.DecodeCartJSON(ctx, validator, raw)
	if err != nil {
		log.Warnf(ctx, "saved cart is corrupt key=%s err=%v, starting with empty cart", key, err)
		return nil
	}
	log.Infof(ctx, "cart restored key=%s items=%d", key, len(items))
	return items
}
