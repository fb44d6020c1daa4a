package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
)

// DecodeCartJSON - строгий разбор сериализованной корзины (JSON-массив позиций) и её валидация.
// Литерал null трактуется как пустая корзина.
func DecodeCartJSON(ctx context.Context, validator ports.CartValidator, raw []byte) ([]domain.LineItem, error) {
	var items []domain.LineItem
	if err := strictDecode(raw, &items); err != nil {
		return nil, err
	}
	if err := validator.ValidateItems(ctx, items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	return items, nil
}

// DecodeItemJSON - строгий разбор одной позиции.
func DecodeItemJSON(ctx context.Context, validator *CartValidator, raw []byte) (*domain.LineItem, error) {
	var item domain.LineItem
	if err := strictDecode(raw, &item); err != nil {
		return nil, err
	}
	if err := validator.ValidateItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// strictDecode - неизвестные поля и данные после объекта запрещены.
func strictDecode(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json: %v", ErrInvalidCart, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("%w: invalid json: trailing data", ErrInvalidCart)
	}
	return nil
}
