package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
)

// Проверка, что CartValidator удовлетворяет интерфейсу ports.CartValidator.
var _ ports.CartValidator = (*CartValidator)(nil)

// ErrInvalidCart - базовая (sentinel) ошибка валидации сохранённой корзины.
var ErrInvalidCart = errors.New("cart validation failed")

// CartValidator - проверка позиций корзины, прочитанных извне (хранилище, файл).
type CartValidator struct{}

// NewCartValidator - конструктор CartValidator.
func NewCartValidator() *CartValidator { return &CartValidator{} }

// ValidateItems - все позиции корректны, имена не повторяются.
func (v *CartValidator) ValidateItems(_ context.Context, items []domain.LineItem) error {
	seen := make(map[string]int, len(items))
	for i := range items {
		if err := v.validateItem(&items[i]); err != nil {
			return fmt.Errorf("%w: items[%d]: %v", ErrInvalidCart, i, err)
		}
		if prev, dup := seen[items[i].Name]; dup {
			return fmt.Errorf("%w: items[%d].name %q duplicates items[%d]", ErrInvalidCart, i, items[i].Name, prev)
		}
		seen[items[i].Name] = i
	}
	return nil
}

// ValidateItem - проверка одной позиции.
func (v *CartValidator) ValidateItem(_ context.Context, item *domain.LineItem) error {
	if err := v.validateItem(item); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCart, err)
	}
	return nil
}

func (v *CartValidator) validateItem(item *domain.LineItem) error {
	if item.Name == "" {
		return errors.New("name обязателен")
	}
	if item.Price.IsNegative() {
		return errors.New("price должен быть неотрицательным")
	}
	if item.Quantity < 1 {
		return errors.New("quantity должен быть не меньше 1")
	}
	return nil
}
