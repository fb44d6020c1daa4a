package modal

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
)

func TestNewController_AllHidden(t *testing.T) {
	c := NewController()
	for _, k := range domain.ModalKeys() {
		if c.IsOpen(k) {
			t.Fatalf("%s should start hidden", k)
		}
	}
	if len(c.Active()) != 0 {
		t.Fatalf("no modal should be active")
	}
}

func TestOpen_NonExclusive(t *testing.T) {
	c := NewController()

	_ = c.Open(domain.ModalCart)
	_ = c.Open(domain.ModalQuantity)

	got := c.Active()
	want := []domain.ModalKey{domain.ModalQuantity, domain.ModalCart}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("both modals must stay visible: want %v got %v", want, got)
	}
}

func TestOpenClose_UnknownKey(t *testing.T) {
	c := NewController()

	if err := c.Open("checkout"); !errors.Is(err, domain.ErrUnknownModal) {
		t.Fatalf("open: want ErrUnknownModal, got %v", err)
	}
	if err := c.Close("checkout"); !errors.Is(err, domain.ErrUnknownModal) {
		t.Fatalf("close: want ErrUnknownModal, got %v", err)
	}
	if len(c.Visible()) != len(domain.ModalKeys()) {
		t.Fatalf("unknown key must not be added to the flag set")
	}
}

func TestHandleClick(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantClosed domain.ModalKey
		wantHit    bool
	}{
		{"backdrop of cart", "cart-modal", domain.ModalCart, true},
		{"backdrop of order", "order-modal", domain.ModalOrder, true},
		{"inside content", "cart-items", "", false},
		{"empty target", "", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			_ = c.Open(domain.ModalCart)
			_ = c.Open(domain.ModalOrder)

			closed, hit := c.HandleClick(tt.target)
			if hit != tt.wantHit || closed != tt.wantClosed {
				t.Fatalf("want (%q,%v) got (%q,%v)", tt.wantClosed, tt.wantHit, closed, hit)
			}
			if hit && c.IsOpen(closed) {
				t.Fatalf("%s should be closed", closed)
			}
			if !hit && len(c.Active()) != 2 {
				t.Fatalf("miss must not close anything")
			}
		})
	}
}

func TestHandleKey(t *testing.T) {
	c := NewController()
	_ = c.Open(domain.ModalCart)
	_ = c.Open(domain.ModalQuantity)

	if c.HandleKey("Enter") || len(c.Active()) != 2 {
		t.Fatalf("non-Escape key must be ignored")
	}
	if !c.HandleKey(EscapeKey) || len(c.Active()) != 0 {
		t.Fatalf("Escape must close all modals")
	}
}

func TestVisible_ReturnsCopy(t *testing.T) {
	c := NewController()
	v := c.Visible()
	v[domain.ModalCart] = true

	if c.IsOpen(domain.ModalCart) {
		t.Fatalf("Visible must return a copy")
	}
}
