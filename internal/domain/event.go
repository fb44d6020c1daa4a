package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EventType - тип UI-события витрины.
type EventType string

const (
	EventCartAdd       EventType = "cart.add"
	EventCartIncrement EventType = "cart.increment"
	EventCartDecrement EventType = "cart.decrement"
	EventCartRemove    EventType = "cart.remove"
	EventCartClear     EventType = "cart.clear"
	EventCartCheckout  EventType = "cart.checkout"
	EventCartView      EventType = "cart.view"

	EventPickerStart     EventType = "picker.start"
	EventPickerIncrement EventType = "picker.increment"
	EventPickerDecrement EventType = "picker.decrement"
	EventPickerSet       EventType = "picker.set"
	EventPickerConfirm   EventType = "picker.confirm"

	EventOrderAdd      EventType = "order.add"
	EventOrderView     EventType = "order.view"
	EventOrderCheckout EventType = "order.checkout"

	EventModalOpen     EventType = "modal.open"
	EventModalClose    EventType = "modal.close"
	EventModalCloseAll EventType = "modal.close_all"

	EventClick   EventType = "ui.click"
	EventKeyDown EventType = "ui.keydown"

	EventBannerNext EventType = "banner.next"
	EventBannerPrev EventType = "banner.prev"
	EventBannerShow EventType = "banner.show"
)

var knownEvents = map[EventType]struct{}{
	EventCartAdd: {}, EventCartIncrement: {}, EventCartDecrement: {}, EventCartRemove: {},
	EventCartClear: {}, EventCartCheckout: {}, EventCartView: {},
	EventPickerStart: {}, EventPickerIncrement: {}, EventPickerDecrement: {},
	EventPickerSet: {}, EventPickerConfirm: {},
	EventOrderAdd: {}, EventOrderView: {}, EventOrderCheckout: {},
	EventModalOpen: {}, EventModalClose: {}, EventModalCloseAll: {},
	EventClick: {}, EventKeyDown: {},
	EventBannerNext: {}, EventBannerPrev: {}, EventBannerShow: {},
}

// Event - одно действие пользователя. Заполняются только поля, нужные типу.
type Event struct {
	Type     EventType       `json:"type"`
	Name     string          `json:"name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity,omitempty"`
	Index    int             `json:"index,omitempty"`
	Raw      string          `json:"raw,omitempty"`
	Modal    string          `json:"modal,omitempty"`
	Target   string          `json:"target,omitempty"`
	Key      string          `json:"key,omitempty"`
}

// Check - проверка, что тип события известен.
func (e Event) Check() error {
	if _, ok := knownEvents[e.Type]; !ok {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	return nil
}
