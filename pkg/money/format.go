// Пакет money - форматирование сумм для витрины.
// Корзина выводит суммы простой конкатенацией символа и числа,
// список заказа - с разделителями разрядов по локали.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter - символ валюты + принтер локали.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter - конструктор; нераспознанная локаль -> en-US.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Symbol - символ валюты.
func (f *Formatter) Symbol() string { return f.symbol }

// Plain - "₱1500": символ и число без группировки.
func (f *Formatter) Plain(d decimal.Decimal) string { return f.symbol + d.String() }

// Grouped - "₱1,500": символ и число с группировкой разрядов.
func (f *Formatter) Grouped(d decimal.Decimal) string { return f.symbol + f.Number(d) }

// Number - число с группировкой разрядов, не более трёх знаков после запятой.
func (f *Formatter) Number(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(3)))
}
