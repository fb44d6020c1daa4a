package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports/mocks"
	rest "github.com/Gunvolt24/ohsushi_storefront/internal/transport/http"
	"github.com/Gunvolt24/ohsushi_storefront/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func init() { gin.SetMode(gin.TestMode) }

func newRouter(t *testing.T) (*mocks.MockStorefrontService, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStorefrontService(ctrl)
	h := rest.NewHandler(svc, noopLogger{}, time.Second)
	return svc, rest.NewRouter(h, "", "")
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_TranslateToEvents(t *testing.T) {
	price := decimal.RequireFromString("99.50")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   domain.Event
	}{
		{"cart_add", http.MethodPost, "/api/cart/items", `{"name":"Ebi","price":"99.50","quantity":2}`,
			domain.Event{Type: domain.EventCartAdd, Name: "Ebi", Price: price, Quantity: 2}},
		{"cart_increment", http.MethodPost, "/api/cart/items/1/increment", "",
			domain.Event{Type: domain.EventCartIncrement, Index: 1}},
		{"cart_decrement", http.MethodPost, "/api/cart/items/0/decrement", "",
			domain.Event{Type: domain.EventCartDecrement}},
		{"cart_remove", http.MethodDelete, "/api/cart/items/2", "",
			domain.Event{Type: domain.EventCartRemove, Index: 2}},
		{"cart_clear", http.MethodDelete, "/api/cart", "", domain.Event{Type: domain.EventCartClear}},
		{"cart_checkout", http.MethodPost, "/api/cart/checkout", "", domain.Event{Type: domain.EventCartCheckout}},
		{"cart_open", http.MethodPost, "/api/cart/open", "", domain.Event{Type: domain.EventCartView}},
		{"picker_start", http.MethodPost, "/api/picker", `{"name":"Ebi","price":99.50}`,
			domain.Event{Type: domain.EventPickerStart, Name: "Ebi", Price: price}},
		{"picker_increment", http.MethodPost, "/api/picker/increment", "", domain.Event{Type: domain.EventPickerIncrement}},
		{"picker_decrement", http.MethodPost, "/api/picker/decrement", "", domain.Event{Type: domain.EventPickerDecrement}},
		{"picker_set_string", http.MethodPut, "/api/picker/quantity", `{"value":"7"}`,
			domain.Event{Type: domain.EventPickerSet, Raw: "7"}},
		{"picker_set_number", http.MethodPut, "/api/picker/quantity", `{"value":2.5}`,
			domain.Event{Type: domain.EventPickerSet, Raw: "2.5"}},
		{"picker_confirm", http.MethodPost, "/api/picker/confirm", "", domain.Event{Type: domain.EventPickerConfirm}},
		{"order_add", http.MethodPost, "/api/order/items", `{"name":"Ebi","price":"99.50"}`,
			domain.Event{Type: domain.EventOrderAdd, Name: "Ebi", Price: price}},
		{"order_open", http.MethodPost, "/api/order/open", "", domain.Event{Type: domain.EventOrderView}},
		{"order_checkout", http.MethodPost, "/api/order/checkout", "", domain.Event{Type: domain.EventOrderCheckout}},
		{"modal_open", http.MethodPost, "/api/modals/cart/open", "", domain.Event{Type: domain.EventModalOpen, Modal: "cart"}},
		{"modal_close", http.MethodPost, "/api/modals/order/close", "", domain.Event{Type: domain.EventModalClose, Modal: "order"}},
		{"modal_close_all", http.MethodPost, "/api/modals/close", "", domain.Event{Type: domain.EventModalCloseAll}},
		{"click", http.MethodPost, "/api/ui/click", `{"target":"quantity"}`, domain.Event{Type: domain.EventClick, Target: "quantity"}},
		{"keydown", http.MethodPost, "/api/ui/keydown", `{"key":"Escape"}`, domain.Event{Type: domain.EventKeyDown, Key: "Escape"}},
		{"banner_next", http.MethodPost, "/api/banner/next", "", domain.Event{Type: domain.EventBannerNext}},
		{"banner_prev", http.MethodPost, "/api/banner/prev", "", domain.Event{Type: domain.EventBannerPrev}},
		{"banner_show", http.MethodPost, "/api/banner/2", "", domain.Event{Type: domain.EventBannerShow, Index: 2}},
		{"raw_event", http.MethodPost, "/api/events", `{"type":"cart.remove","index":3}`,
			domain.Event{Type: domain.EventCartRemove, Index: 3}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newRouter(t)

			var got domain.Event
			svc.EXPECT().Apply(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ev domain.Event) (view.ViewModel, error) {
					got = ev
					return view.ViewModel{Badge: 4}, nil
				})

			w := do(r, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			require.Equal(t, tt.want.Type, got.Type)
			require.Equal(t, tt.want.Name, got.Name)
			require.True(t, tt.want.Price.Equal(got.Price), "price %s", got.Price)
			require.Equal(t, tt.want.Quantity, got.Quantity)
			require.Equal(t, tt.want.Index, got.Index)
			require.Equal(t, tt.want.Raw, got.Raw)
			require.Equal(t, tt.want.Modal, got.Modal)
			require.Equal(t, tt.want.Target, got.Target)
			require.Equal(t, tt.want.Key, got.Key)

			var vm view.ViewModel
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vm))
			require.Equal(t, 4, vm.Badge)
		})
	}
}

func TestApply_ErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid_event", fmt.Errorf("%w: unknown type", domain.ErrInvalidEvent), http.StatusBadRequest},
		{"invalid_item", domain.ErrInvalidItem, http.StatusUnprocessableEntity},
		{"invalid_quantity", domain.ErrInvalidQuantity, http.StatusUnprocessableEntity},
		{"index", fmt.Errorf("remove: %w", domain.ErrIndexOutOfRange), http.StatusNotFound},
		{"modal", domain.ErrUnknownModal, http.StatusNotFound},
		{"slide", domain.ErrSlideOutOfRange, http.StatusNotFound},
		{"not_picking", domain.ErrNotPicking, http.StatusConflict},
		{"no_selection", domain.ErrNoPendingSelection, http.StatusConflict},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newRouter(t)
			svc.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(view.ViewModel{}, tt.err)

			w := do(r, http.MethodPost, "/api/cart/checkout", "")
			require.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusInternalServerError {
				require.NotContains(t, w.Body.String(), "boom")
			}
		})
	}
}

func TestBadRequests_DoNotReachService(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"negative_index", http.MethodPost, "/api/cart/items/-1/increment", ""},
		{"text_index", http.MethodDelete, "/api/cart/items/abc", ""},
		{"bad_json", http.MethodPost, "/api/cart/items", `{"name":`},
		{"bad_price", http.MethodPost, "/api/order/items", `{"name":"Ebi","price":"abc"}`},
		{"bad_slide", http.MethodPost, "/api/banner/x1", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, r := newRouter(t)

			w := do(r, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestGetState(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().View(gomock.Any()).Return(view.ViewModel{Badge: 7, Notices: []domain.Notice{}})

	w := do(r, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, w.Code)

	var vm view.ViewModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vm))
	require.Equal(t, 7, vm.Badge)
}

func TestFragments(t *testing.T) {
	t.Run("cart_empty", func(t *testing.T) {
		svc, r := newRouter(t)
		svc.EXPECT().View(gomock.Any()).Return(view.ViewModel{
			Cart: view.CartView{Empty: true, EmptyText: view.EmptyCartText, Total: "0"},
		})

		w := do(r, http.MethodGet, "/fragments/cart", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Header().Get("Content-Type"), "text/html")
		require.Contains(t, w.Body.String(), view.EmptyCartText)
	})

	t.Run("order_rows", func(t *testing.T) {
		svc, r := newRouter(t)
		svc.EXPECT().View(gomock.Any()).Return(view.ViewModel{
			Order: view.OrderView{
				Rows:  []view.OrderRow{{Name: "Salmon <Roll>", Quantity: 2, Subtotal: "₱3,000"}},
				Total: "₱3,000",
			},
		})

		w := do(r, http.MethodGet, "/fragments/order", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "Salmon &lt;Roll&gt;")
		require.Contains(t, w.Body.String(), "₱3,000")
	})
}

func TestClipboard_WriteOnlyBackend(t *testing.T) {
	_, r := newRouter(t)

	w := do(r, http.MethodGet, "/api/clipboard", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "clipboard is not readable")
}

func TestPing(t *testing.T) {
	_, r := newRouter(t)

	w := do(r, http.MethodGet, "/ping", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pong", w.Body.String())
}
