package domain

import "github.com/shopspring/decimal"

// LineItem - позиция корзины или заказа. Уникальна по Name в пределах списка.
type LineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Subtotal - цена позиции с учётом количества.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Selection - товар, выбранный в каталоге до подтверждения количества.
type Selection struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
