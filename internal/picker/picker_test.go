package picker_test

import (
	"errors"
	"testing"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/picker"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/money"
	"github.com/shopspring/decimal"
)

var sushiRoll = domain.Selection{Name: "Sushi Roll", Price: decimal.NewFromInt(150)}

func TestCoerceQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"1", 1},
		{"0", 1},
		{"-4", 1},
		{"2.5", 1},
		{"abc", 1},
		{"", 1},
		{"7x", 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			if got := picker.CoerceQuantity(tt.raw); got != tt.want {
				t.Fatalf("CoerceQuantity(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPicker_Flow(t *testing.T) {
	p := picker.New()
	if p.Active() {
		t.Fatalf("new picker must be idle")
	}

	if err := p.Start(sushiRoll); err != nil {
		t.Fatalf("start: %v", err)
	}
	_ = p.Increment()
	_ = p.Increment()
	_ = p.Increment()
	_ = p.Decrement()

	sel, qty, err := p.Confirm()
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if sel.Name != "Sushi Roll" || qty != 3 {
		t.Fatalf("want Sushi Roll x3, got %s x%d", sel.Name, qty)
	}
	if p.State() != picker.Idle || p.Quantity() != 1 {
		t.Fatalf("confirm must return to idle with quantity 1")
	}
}

func TestPicker_DecrementFloor(t *testing.T) {
	p := picker.New()
	_ = p.Start(sushiRoll)

	_ = p.Decrement()
	_ = p.Decrement()

	if p.Quantity() != 1 {
		t.Fatalf("quantity must not go below 1, got %d", p.Quantity())
	}
}

func TestPicker_StartResetsQuantity(t *testing.T) {
	p := picker.New()
	_ = p.Start(sushiRoll)
	_ = p.SetRaw("9")

	_ = p.Start(domain.Selection{Name: "Miso Soup", Price: decimal.NewFromInt(60)})

	if p.Quantity() != 1 || p.Pending().Name != "Miso Soup" {
		t.Fatalf("restart must replace the selection and reset quantity")
	}
}

func TestPicker_IdleGuards(t *testing.T) {
	p := picker.New()

	if err := p.Increment(); !errors.Is(err, domain.ErrNotPicking) {
		t.Fatalf("increment: want ErrNotPicking, got %v", err)
	}
	if err := p.Decrement(); !errors.Is(err, domain.ErrNotPicking) {
		t.Fatalf("decrement: want ErrNotPicking, got %v", err)
	}
	if err := p.SetRaw("5"); !errors.Is(err, domain.ErrNotPicking) {
		t.Fatalf("set: want ErrNotPicking, got %v", err)
	}
	if _, _, err := p.Confirm(); !errors.Is(err, domain.ErrNoPendingSelection) {
		t.Fatalf("confirm: want ErrNoPendingSelection, got %v", err)
	}
}

func TestPicker_StartRejectsInvalidSelection(t *testing.T) {
	p := picker.New()
	if err := p.Start(domain.Selection{Price: decimal.NewFromInt(1)}); !errors.Is(err, domain.ErrInvalidItem) {
		t.Fatalf("want ErrInvalidItem, got %v", err)
	}
	if p.Active() {
		t.Fatalf("rejected start must leave picker idle")
	}
}

func TestPicker_Labels(t *testing.T) {
	p := picker.New()
	_ = p.Start(sushiRoll)
	f := money.NewFormatter("₱", "en-PH")

	if got := p.Title(); got != "Select Quantity - Sushi Roll" {
		t.Fatalf("title: %q", got)
	}
	if got := p.PriceLabel(f); got != "Price: ₱150 per item" {
		t.Fatalf("price label: %q", got)
	}
}
