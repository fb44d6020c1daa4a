// Пакет view - чистое отображение состояния витрины во view-model и HTML.
package view

import (
	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Тексты пустых списков.
const (
	EmptyCartText  = "Your cart is empty"
	EmptyOrderText = "No items added yet."
)

// State - снимок состояния, из которого строится ViewModel.
// Итоги и бейдж считает коллекция, рендерер их только форматирует.
type State struct {
	Cart       []domain.LineItem
	CartTotal  decimal.Decimal
	CartCount  int
	Order      []domain.LineItem
	OrderTotal decimal.Decimal
	Modals     map[domain.ModalKey]bool
	Picker     PickerView
	Banner     BannerView
	Notices    []domain.Notice
}

// ViewModel - то, что видит пользователь после обработки события.
type ViewModel struct {
	Badge   int                      `json:"badge"`
	Cart    CartView                 `json:"cart"`
	Order   OrderView                `json:"order"`
	Modals  map[domain.ModalKey]bool `json:"modals"`
	Picker  PickerView               `json:"picker"`
	Banner  BannerView               `json:"banner"`
	Notices []domain.Notice          `json:"notices"`
}

// CartView - содержимое окна корзины.
type CartView struct {
	Empty     bool      `json:"empty"`
	EmptyText string    `json:"empty_text,omitempty"`
	Rows      []CartRow `json:"rows"`
	Total     string    `json:"total"`
}

// CartRow - строка корзины с элементами управления по индексу.
type CartRow struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	PriceLine string `json:"price_line"` // "₱150 x 5"
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"` // "Subtotal: ₱750"
}

// OrderView - содержимое окна заказа.
type OrderView struct {
	Empty     bool       `json:"empty"`
	EmptyText string     `json:"empty_text,omitempty"`
	Rows      []OrderRow `json:"rows"`
	Total     string     `json:"total,omitempty"`
}

// OrderRow - строка заказа; суммы с разделителями разрядов.
type OrderRow struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

// PickerView - окно выбора количества.
type PickerView struct {
	Active     bool   `json:"active"`
	Title      string `json:"title,omitempty"`
	PriceLabel string `json:"price_label,omitempty"`
	Quantity   int    `json:"quantity"`
}

// BannerView - текущий слайд.
type BannerView struct {
	Index int `json:"index"`
	Count int `json:"count"`
}
