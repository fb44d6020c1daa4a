package ports

import (
	"context"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
)

// CartValidator - проверка содержимого корзины, прочитанного из хранилища.
type CartValidator interface {
	ValidateItems(ctx context.Context, items []domain.LineItem) error
}
