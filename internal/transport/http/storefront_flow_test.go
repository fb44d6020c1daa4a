package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/ohsushi_storefront/internal/banner"
	"github.com/Gunvolt24/ohsushi_storefront/internal/cart"
	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/notice"
	"github.com/Gunvolt24/ohsushi_storefront/internal/repo/memory"
	rest "github.com/Gunvolt24/ohsushi_storefront/internal/transport/http"
	"github.com/Gunvolt24/ohsushi_storefront/internal/usecase"
	"github.com/Gunvolt24/ohsushi_storefront/internal/view"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/money"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type flowEnv struct {
	router *gin.Engine
	blob   *memory.BlobStore
}

func newFlowEnv(t testing.TB) *flowEnv {
	t.Helper()
	ctx := context.Background()
	log := noopLogger{}

	blob := memory.NewBlobStore()
	clip := memory.NewClipboard(log)
	store := cart.LoadCartStore(ctx, blob, cart.DefaultCartKey, validate.NewCartValidator(), log)
	svc := usecase.NewStorefront(
		store,
		banner.NewCarousel(3, time.Hour, log),
		clip,
		notice.NewBoard(log),
		view.NewRenderer(money.NewFormatter("₱", "en-US"), view.DefaultShopName),
		log,
	)
	h := rest.NewHandler(svc, log, 2*time.Second)
	h.WithClipboard(clip)
	return &flowEnv{router: rest.NewRouter(h, "", ""), blob: blob}
}

func decodeVM(t *testing.T, body []byte) view.ViewModel {
	t.Helper()
	var vm view.ViewModel
	require.NoError(t, json.Unmarshal(body, &vm), string(body))
	return vm
}

// Выбор количества через окно, корзина, отправка заказа.
func TestHTTP_StorefrontFlow(t *testing.T) {
	env := newFlowEnv(t)
	ctx := context.Background()

	// выбор позиции открывает окно количества
	w := do(env.router, http.MethodPost, "/api/picker", `{"name":"Sushi Roll","price":150}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	vm := decodeVM(t, w.Body.Bytes())
	require.True(t, vm.Modals[domain.ModalQuantity])
	require.True(t, vm.Picker.Active)
	require.Equal(t, 1, vm.Picker.Quantity)

	w = do(env.router, http.MethodPut, "/api/picker/quantity", `{"value":"5"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, 5, decodeVM(t, w.Body.Bytes()).Picker.Quantity)

	w = do(env.router, http.MethodPost, "/api/picker/confirm", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	vm = decodeVM(t, w.Body.Bytes())
	require.Equal(t, 5, vm.Badge)
	require.False(t, vm.Modals[domain.ModalQuantity])
	require.Len(t, vm.Cart.Rows, 1)
	require.Equal(t, "750", vm.Cart.Total)

	// корзина сохранена в хранилище
	raw, ok, err := env.blob.Get(ctx, cart.DefaultCartKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[{"name":"Sushi Roll","price":"150","quantity":5}]`, string(raw))

	// повторное подтверждение без выбора отклоняется
	w = do(env.router, http.MethodPost, "/api/picker/confirm", "")
	require.Equal(t, http.StatusConflict, w.Code)

	// HTML корзины
	w = do(env.router, http.MethodGet, "/fragments/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Sushi Roll")

	// заказ: две добавки одной позиции, затем отправка
	for i := 0; i < 2; i++ {
		w = do(env.router, http.MethodPost, "/api/order/items", `{"name":"Ebi","price":"1500"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	vm = decodeVM(t, w.Body.Bytes())
	require.True(t, vm.Modals[domain.ModalOrder])
	require.Equal(t, "₱3,000", vm.Order.Total)

	w = do(env.router, http.MethodPost, "/api/order/checkout", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	vm = decodeVM(t, w.Body.Bytes())
	require.Len(t, vm.Notices, 1)
	require.Equal(t, usecase.MsgOrderCopied, vm.Notices[0].Text)
	require.False(t, vm.Modals[domain.ModalOrder])
	require.True(t, vm.Order.Empty)

	// скопированный текст можно забрать
	w = do(env.router, http.MethodGet, "/api/clipboard", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var copied struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &copied))
	require.True(t, strings.Contains(copied.Text, "Ebi x 2 - ₱3,000"), copied.Text)

	// уведомления доставляются один раз
	w = do(env.router, http.MethodGet, "/api/state", "")
	require.Empty(t, decodeVM(t, w.Body.Bytes()).Notices)
}

func TestHTTP_ClipboardEmptyBeforeCheckout(t *testing.T) {
	env := newFlowEnv(t)

	w := do(env.router, http.MethodGet, "/api/clipboard", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "clipboard is empty")
}

func TestHTTP_EmptyCartCheckoutWarns(t *testing.T) {
	env := newFlowEnv(t)

	w := do(env.router, http.MethodPost, "/api/cart/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)
	vm := decodeVM(t, w.Body.Bytes())
	require.Len(t, vm.Notices, 1)
	require.Equal(t, domain.NoticeWarning, vm.Notices[0].Level)
	require.Equal(t, usecase.MsgCartEmpty, vm.Notices[0].Text)
	require.False(t, vm.Modals[domain.ModalCart])
}

func TestHTTP_EscapeClosesAllModals(t *testing.T) {
	env := newFlowEnv(t)

	require.Equal(t, http.StatusOK, do(env.router, http.MethodPost, "/api/modals/cart/open", "").Code)
	require.Equal(t, http.StatusOK, do(env.router, http.MethodPost, "/api/modals/order/open", "").Code)
	require.Equal(t, http.StatusNotFound, do(env.router, http.MethodPost, "/api/modals/menu/open", "").Code)

	w := do(env.router, http.MethodPost, "/api/ui/keydown", `{"key":"Escape"}`)
	require.Equal(t, http.StatusOK, w.Code)
	vm := decodeVM(t, w.Body.Bytes())
	for _, k := range domain.ModalKeys() {
		require.False(t, vm.Modals[k], "modal %s", k)
	}
}

// --- Бенчмарки ---

func BenchmarkHTTP_CartIncrement(b *testing.B) {
	gin.SetMode(gin.ReleaseMode)
	env := newFlowEnv(b)
	if w := do(env.router, http.MethodPost, "/api/cart/items", `{"name":"Ebi","price":"99.50","quantity":1}`); w.Code != http.StatusOK {
		b.Fatalf("seed: %d %s", w.Code, w.Body.String())
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := do(env.router, http.MethodPost, "/api/cart/items/0/increment", "")
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status: %d", w.Code)
		}
	}
}

func BenchmarkHTTP_State(b *testing.B) {
	gin.SetMode(gin.ReleaseMode)
	env := newFlowEnv(b)
	for i := 0; i < 20; i++ {
		do(env.router, http.MethodPost, "/api/order/items", `{"name":"Roll `+string(rune('A'+i))+`","price":"150"}`)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := do(env.router, http.MethodGet, "/api/state", "")
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status: %d", w.Code)
		}
	}
}
