// Пакет cart - упорядоченные коллекции позиций (корзина и список заказа).
// Логика слияния реализована один раз в Collection; корзина и список заказа
// отличаются только политикой сохранения и политикой прироста количества.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/metrics"
	"github.com/shopspring/decimal"
)

// ErrPersist - мутация применена в памяти, но не сохранена.
var ErrPersist = errors.New("persist items")

// Persistence - политика сохранения: вызывается после каждой успешной мутации.
type Persistence interface {
	Save(ctx context.Context, items []domain.LineItem) error
}

// IncrementPolicy - сколько добавить к позиции при Add с запрошенным количеством.
type IncrementPolicy func(requested int) (int, error)

// ExplicitQuantity - количество задаёт вызывающий, допускается только >= 1.
func ExplicitQuantity(requested int) (int, error) {
	if requested < 1 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, requested)
	}
	return requested, nil
}

// FixedStep - каждое добавление увеличивает позицию ровно на step.
func FixedStep(step int) IncrementPolicy {
	return func(int) (int, error) { return step, nil }
}

// Collection - упорядоченный список позиций, уникальных по имени.
type Collection struct {
	items   []domain.LineItem
	step    IncrementPolicy
	persist Persistence // nil - коллекция живёт только в памяти
}

// NewCollection - коллекция с начальным содержимым (копируется).
func NewCollection(initial []domain.LineItem, step IncrementPolicy, persist Persistence) *Collection {
	if step == nil {
		step = ExplicitQuantity
	}
	return &Collection{
		items:   cloneItems(initial),
		step:    step,
		persist: persist,
	}
}

// Add - слияние по имени: существующая позиция увеличивается и сохраняет
// первую цену, новая добавляется в конец.
func (c *Collection) Add(ctx context.Context, name string, price decimal.Decimal, quantity int) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", domain.ErrInvalidItem)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: negative price %s", domain.ErrInvalidItem, price)
	}
	delta, err := c.step(quantity)
	if err != nil {
		return err
	}

	if i := c.indexOf(name); i >= 0 {
		c.items[i].Quantity += delta
	} else {
		c.items = append(c.items, domain.LineItem{Name: name, Price: price, Quantity: delta})
	}
	return c.commit(ctx, "add")
}

// Increment - +1 к позиции i.
func (c *Collection) Increment(ctx context.Context, i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.items[i].Quantity++
	return c.commit(ctx, "increment")
}

// Decrement - -1 к позиции i, но не ниже 1; на количестве 1 ничего не меняется.
func (c *Collection) Decrement(ctx context.Context, i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	if c.items[i].Quantity <= 1 {
		return nil
	}
	c.items[i].Quantity--
	return c.commit(ctx, "decrement")
}

// Remove - удаляет позицию i; последующие индексы сдвигаются.
func (c *Collection) Remove(ctx context.Context, i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return c.commit(ctx, "remove")
}

// Clear - очищает коллекцию.
func (c *Collection) Clear(ctx context.Context) error {
	c.items = c.items[:0]
	return c.commit(ctx, "clear")
}

// Total - сумма price*quantity; 0 для пустой коллекции.
func (c *Collection) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ItemCount - сумма количеств (для бейджа), а не число позиций.
func (c *Collection) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Items - копия позиций.
func (c *Collection) Items() []domain.LineItem { return cloneItems(c.items) }

func (c *Collection) Len() int      { return len(c.items) }
func (c *Collection) IsEmpty() bool { return len(c.items) == 0 }

func (c *Collection) indexOf(name string) int {
	for i := range c.items {
		if c.items[i].Name == name {
			return i
		}
	}
	return -1
}

func (c *Collection) checkIndex(i int) error {
	if i < 0 || i >= len(c.items) {
		return fmt.Errorf("%w: %d (len=%d)", domain.ErrIndexOutOfRange, i, len(c.items))
	}
	return nil
}

// commit - метрика и синхронное сохранение после мутации.
func (c *Collection) commit(ctx context.Context, op string) error {
	metrics.CartMutations.WithLabelValues(op).Inc()
	if c.persist == nil {
		return nil
	}
	if err := c.persist.Save(ctx, cloneItems(c.items)); err != nil {
		return fmt.Errorf("%w after %s: %w", ErrPersist, op, err)
	}
	return nil
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}
