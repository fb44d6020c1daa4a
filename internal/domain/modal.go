package domain

import "fmt"

// ModalKey - имя модального окна витрины.
type ModalKey string

const (
	ModalOrder    ModalKey = "order"
	ModalQuantity ModalKey = "quantity"
	ModalCart     ModalKey = "cart"
)

// ModalKeys - фиксированный набор окон в порядке отображения.
func ModalKeys() []ModalKey {
	return []ModalKey{ModalOrder, ModalQuantity, ModalCart}
}

// ParseModalKey - разбор имени окна; неизвестное имя -> ErrUnknownModal.
func ParseModalKey(s string) (ModalKey, error) {
	for _, k := range ModalKeys() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModal, s)
}

// ElementID - id фонового элемента окна, по которому определяется клик «мимо».
func (k ModalKey) ElementID() string { return string(k) + "-modal" }
