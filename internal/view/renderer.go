package view

import (
	"strconv"
	"strings"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/money"
	"github.com/shopspring/decimal"
)

// DefaultShopName - имя магазина в приветствии сообщения заказа.
const DefaultShopName = "Oh Sushi"

// Renderer - построение ViewModel и текстов оформления заказа.
type Renderer struct {
	money *money.Formatter
	shop  string
}

func NewRenderer(f *money.Formatter, shopName string) *Renderer {
	if shopName == "" {
		shopName = DefaultShopName
	}
	return &Renderer{money: f, shop: shopName}
}

// Formatter - форматтер сумм, с которым работает рендерер.
func (r *Renderer) Formatter() *money.Formatter { return r.money }

// Render - ViewModel из снимка; вход не изменяется.
func (r *Renderer) Render(s State) ViewModel {
	modals := make(map[domain.ModalKey]bool, len(domain.ModalKeys()))
	for _, k := range domain.ModalKeys() {
		modals[k] = s.Modals[k]
	}
	notices := s.Notices
	if notices == nil {
		notices = []domain.Notice{}
	}
	return ViewModel{
		Badge:   s.CartCount,
		Cart:    r.cartView(s.Cart, s.CartTotal),
		Order:   r.orderView(s.Order, s.OrderTotal),
		Modals:  modals,
		Picker:  s.Picker,
		Banner:  s.Banner,
		Notices: notices,
	}
}

func (r *Renderer) cartView(items []domain.LineItem, total decimal.Decimal) CartView {
	if len(items) == 0 {
		return CartView{Empty: true, EmptyText: EmptyCartText, Rows: []CartRow{}, Total: "0"}
	}
	rows := make([]CartRow, 0, len(items))
	for i, it := range items {
		rows = append(rows, CartRow{
			Index:     i,
			Name:      it.Name,
			PriceLine: r.money.Plain(it.Price) + " x " + strconv.Itoa(it.Quantity),
			Quantity:  it.Quantity,
			Subtotal:  "Subtotal: " + r.money.Plain(it.Subtotal()),
		})
	}
	return CartView{Rows: rows, Total: total.String()}
}

func (r *Renderer) orderView(items []domain.LineItem, total decimal.Decimal) OrderView {
	if len(items) == 0 {
		return OrderView{Empty: true, EmptyText: EmptyOrderText, Rows: []OrderRow{}}
	}
	rows := make([]OrderRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, OrderRow{
			Name:     it.Name,
			Quantity: it.Quantity,
			Subtotal: r.money.Grouped(it.Subtotal()),
		})
	}
	return OrderView{Rows: rows, Total: r.money.Grouped(total)}
}

// CartSummary - текст подтверждения корзины:
//
//	Order Summary:
//
//	<name> (x<qty>)
//
//	Total: <cur><total>
//
//	Please contact us to complete your order!
func (r *Renderer) CartSummary(items []domain.LineItem, total decimal.Decimal) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, it.Name+" (x"+strconv.Itoa(it.Quantity)+")")
	}
	var b strings.Builder
	b.WriteString("Order Summary:\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nTotal: ")
	b.WriteString(r.money.Plain(total))
	b.WriteString("\n\nPlease contact us to complete your order!")
	return b.String()
}

// OrderMessage - текст заказа для отправки магазину, суммы по локали.
func (r *Renderer) OrderMessage(items []domain.LineItem, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("Hi " + r.shop + "! Here's my order:\n\n")
	for _, it := range items {
		b.WriteString(it.Name + " x " + strconv.Itoa(it.Quantity) + " - " + r.money.Grouped(it.Subtotal()) + "\n")
	}
	b.WriteString("\nTotal: " + r.money.Grouped(total))
	return b.String()
}
