package cart

import (
	"context"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// OrderList - список «старого» потока заказа: только в памяти, +1 за каждое добавление.
type OrderList struct {
	items *Collection
}

// NewOrderList - пустой список заказа.
func NewOrderList() *OrderList {
	return &OrderList{items: NewCollection(nil, FixedStep(1), nil)}
}

// Add - добавить товар или увеличить его количество на 1.
func (o *OrderList) Add(ctx context.Context, name string, price decimal.Decimal) error {
	return o.items.Add(ctx, name, price, 1)
}

// Clear - очищается только после успешного оформления.
func (o *OrderList) Clear(ctx context.Context) error { return o.items.Clear(ctx) }

func (o *OrderList) Items() []domain.LineItem { return o.items.Items() }
func (o *OrderList) Total() decimal.Decimal   { return o.items.Total() }
func (o *OrderList) ItemCount() int           { return o.items.ItemCount() }
func (o *OrderList) IsEmpty() bool            { return o.items.IsEmpty() }
