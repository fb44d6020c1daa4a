// Пакет modal - видимость модальных окон витрины.
// Окна не исключают друг друга: открытие одного не закрывает остальные.
package modal

import (
	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
)

// EscapeKey - клавиша, закрывающая все окна.
const EscapeKey = "Escape"

// Controller - флаги видимости для фиксированного набора окон.
type Controller struct {
	open map[domain.ModalKey]bool
}

// NewController - все окна скрыты.
func NewController() *Controller {
	c := &Controller{open: make(map[domain.ModalKey]bool, len(domain.ModalKeys()))}
	for _, k := range domain.ModalKeys() {
		c.open[k] = false
	}
	return c
}

// Open - показать окно key, не трогая остальные.
func (c *Controller) Open(key domain.ModalKey) error {
	if err := c.check(key); err != nil {
		return err
	}
	c.open[key] = true
	return nil
}

// Close - скрыть окно key.
func (c *Controller) Close(key domain.ModalKey) error {
	if err := c.check(key); err != nil {
		return err
	}
	c.open[key] = false
	return nil
}

// CloseAll - скрыть все окна (кнопки закрытия и Escape).
func (c *Controller) CloseAll() {
	for k := range c.open {
		c.open[k] = false
	}
}

// IsOpen - видимо ли окно; для неизвестного ключа false.
func (c *Controller) IsOpen(key domain.ModalKey) bool { return c.open[key] }

// Visible - копия флагов.
func (c *Controller) Visible() map[domain.ModalKey]bool {
	out := make(map[domain.ModalKey]bool, len(c.open))
	for k, v := range c.open {
		out[k] = v
	}
	return out
}

// Active - открытые окна в порядке domain.ModalKeys.
func (c *Controller) Active() []domain.ModalKey {
	var out []domain.ModalKey
	for _, k := range domain.ModalKeys() {
		if c.open[k] {
			out = append(out, k)
		}
	}
	return out
}

// HandleClick - клик по фону окна закрывает это окно.
// Возвращает закрытое окно или false, если клик пришёлся не на фон.
func (c *Controller) HandleClick(target string) (domain.ModalKey, bool) {
	for _, k := range domain.ModalKeys() {
		if target == k.ElementID() {
			c.open[k] = false
			return k, true
		}
	}
	return "", false
}

// HandleKey - Escape закрывает все окна; остальные клавиши игнорируются.
func (c *Controller) HandleKey(key string) bool {
	if key != EscapeKey {
		return false
	}
	c.CloseAll()
	return true
}

func (c *Controller) check(key domain.ModalKey) error {
	if _, ok := c.open[key]; !ok {
		_, err := domain.ParseModalKey(string(key))
		return err
	}
	return nil
}
