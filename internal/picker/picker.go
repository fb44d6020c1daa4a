// Пакет picker - выбор количества перед добавлением в корзину.
package picker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/money"
)

// State - состояние выбора.
type State int

const (
	Idle State = iota
	Picking
)

func (s State) String() string {
	if s == Picking {
		return "picking"
	}
	return "idle"
}

// Picker - ожидающий выбор и текущее количество.
type Picker struct {
	state    State
	pending  domain.Selection
	quantity int
}

// New - пустой выбор.
func New() *Picker { return &Picker{quantity: 1} }

// Start - запомнить товар и сбросить количество на 1.
// Повторный вызов заменяет предыдущий выбор.
func (p *Picker) Start(sel domain.Selection) error {
	if sel.Name == "" {
		return fmt.Errorf("%w: empty name", domain.ErrInvalidItem)
	}
	if sel.Price.IsNegative() {
		return fmt.Errorf("%w: negative price %s", domain.ErrInvalidItem, sel.Price)
	}
	p.pending = sel
	p.quantity = 1
	p.state = Picking
	return nil
}

// Increment - +1 без верхней границы.
func (p *Picker) Increment() error {
	if p.state != Picking {
		return domain.ErrNotPicking
	}
	p.quantity++
	return nil
}

// Decrement - -1, но не ниже 1.
func (p *Picker) Decrement() error {
	if p.state != Picking {
		return domain.ErrNotPicking
	}
	if p.quantity > 1 {
		p.quantity--
	}
	return nil
}

// SetRaw - ручной ввод; всё, что не целое >= 1, становится 1.
func (p *Picker) SetRaw(raw string) error {
	if p.state != Picking {
		return domain.ErrNotPicking
	}
	p.quantity = CoerceQuantity(raw)
	return nil
}

// Confirm - отдать выбор и количество, вернуться в Idle.
func (p *Picker) Confirm() (domain.Selection, int, error) {
	if p.state != Picking {
		return domain.Selection{}, 0, domain.ErrNoPendingSelection
	}
	sel, qty := p.pending, p.quantity
	p.Reset()
	return sel, qty, nil
}

// Reset - сбросить выбор без добавления.
func (p *Picker) Reset() {
	p.state = Idle
	p.pending = domain.Selection{}
	p.quantity = 1
}

func (p *Picker) State() State              { return p.state }
func (p *Picker) Active() bool              { return p.state == Picking }
func (p *Picker) Quantity() int             { return p.quantity }
func (p *Picker) Pending() domain.Selection { return p.pending }

// Title - заголовок окна выбора.
func (p *Picker) Title() string {
	return "Select Quantity - " + p.pending.Name
}

// PriceLabel - строка с ценой за единицу.
func (p *Picker) PriceLabel(f *money.Formatter) string {
	return "Price: " + f.Plain(p.pending.Price) + " per item"
}

// CoerceQuantity - разбор введённого количества: всё, что не является
// целым числом >= 1 ("", "abc", "2.5", "0", "-3"), даёт 1.
func CoerceQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
