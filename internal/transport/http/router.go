package rest

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/view"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter - gin-роутер витрины. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/state", h.getState)
	api.POST("/events", h.postEvent)
	api.GET("/clipboard", h.getClipboard)

	cart := api.Group("/cart")
	cart.POST("/items", h.addCartItem)
	cart.POST("/items/:index/increment", h.indexed(domain.EventCartIncrement))
	cart.POST("/items/:index/decrement", h.indexed(domain.EventCartDecrement))
	cart.DELETE("/items/:index", h.indexed(domain.EventCartRemove))
	cart.DELETE("", h.simple(domain.EventCartClear))
	cart.POST("/checkout", h.simple(domain.EventCartCheckout))
	cart.POST("/open", h.simple(domain.EventCartView))

	picker := api.Group("/picker")
	picker.POST("", h.startPicker)
	picker.POST("/increment", h.simple(domain.EventPickerIncrement))
	picker.POST("/decrement", h.simple(domain.EventPickerDecrement))
	picker.PUT("/quantity", h.setPickerQuantity)
	picker.POST("/confirm", h.simple(domain.EventPickerConfirm))

	order := api.Group("/order")
	order.POST("/items", h.addOrderItem)
	order.POST("/open", h.simple(domain.EventOrderView))
	order.POST("/checkout", h.simple(domain.EventOrderCheckout))

	modals := api.Group("/modals")
	modals.POST("/close", h.simple(domain.EventModalCloseAll))
	modals.POST("/:key/open", h.modal(domain.EventModalOpen))
	modals.POST("/:key/close", h.modal(domain.EventModalClose))

	api.POST("/ui/click", h.click)
	api.POST("/ui/keydown", h.keyDown)

	bn := api.Group("/banner")
	bn.POST("/next", h.simple(domain.EventBannerNext))
	bn.POST("/prev", h.simple(domain.EventBannerPrev))
	bn.POST("/:index", h.showSlide)

	r.GET("/fragments/cart", h.fragment(func(w io.Writer, vm view.ViewModel) error {
		return view.CartFragment(w, vm.Cart)
	}))
	r.GET("/fragments/order", h.fragment(func(w io.Writer, vm view.ViewModel) error {
		return view.OrderFragment(w, vm.Order)
	}))

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}
	return r
}
