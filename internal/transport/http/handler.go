package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/Gunvolt24/ohsushi_storefront/internal/view"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Handler - HTTP-адаптер над ports.StorefrontService: REST-вызовы превращаются в UI-события.
type Handler struct {
	service   ports.StorefrontService
	clipboard ports.ClipboardReader // nil - буфер обмена только на запись (Kafka)
	log       ports.Logger
	timeout   time.Duration // 0 - без ограничения
}

func NewHandler(service ports.StorefrontService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// WithClipboard - включить чтение последнего скопированного текста заказа.
func (h *Handler) WithClipboard(r ports.ClipboardReader) *Handler {
	h.clipboard = r
	return h
}

type itemRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type quantityRequest struct {
	// Value - содержимое поля ввода: строка или число.
	Value json.RawMessage `json:"value"`
}

type clickRequest struct {
	Target string `json:"target"`
}

type keyRequest struct {
	Key string `json:"key"`
}

func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.View(c.Request.Context()))
}

// postEvent - событие в исходном виде (как в Kafka).
func (h *Handler) postEvent(c *gin.Context) {
	var ev domain.Event
	if !h.bind(c, &ev) {
		return
	}
	h.apply(c, ev)
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req itemRequest
	if !h.bind(c, &req) {
		return
	}
	h.apply(c, domain.Event{Type: domain.EventCartAdd, Name: req.Name, Price: req.Price, Quantity: req.Quantity})
}

// indexed - события корзины, адресуемые индексом позиции.
func (h *Handler) indexed(t domain.EventType) gin.HandlerFunc {
	return func(c *gin.Context) {
		idx, err := httpx.ParseIndex(c, "index")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.apply(c, domain.Event{Type: t, Index: idx})
	}
}

// simple - события без параметров.
func (h *Handler) simple(t domain.EventType) gin.HandlerFunc {
	return func(c *gin.Context) { h.apply(c, domain.Event{Type: t}) }
}

func (h *Handler) startPicker(c *gin.Context) {
	var req itemRequest
	if !h.bind(c, &req) {
		return
	}
	h.apply(c, domain.Event{Type: domain.EventPickerStart, Name: req.Name, Price: req.Price})
}

func (h *Handler) setPickerQuantity(c *gin.Context) {
	var req quantityRequest
	if !h.bind(c, &req) {
		return
	}
	h.apply(c, domain.Event{Type: domain.EventPickerSet, Raw: rawInput(req.Value)})
}

func (h *Handler) addOrderItem(c *gin.Context) {
	var req itemRequest
	if !h.bind(c, &req) {
		return
	}
	h.apply(c, domain.Event{Type: domain.EventOrderAdd, Name: req.Name, Price: req.Price})
}

func (h *Handler) modal(t domain.EventType) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.apply(c, domain.Event{Type: t, Modal: c.Param("key")})
	}
}

func (h *Handler) click(c *gin.Context) {
	var req clickRequest
	if !h.bind(c, &req) {
		return
	}
	h.apply(c, domain.Event{Type: domain.EventClick, Target: req.Target})
}

func (h *Handler) keyDown(c *gin.Context) {
	var req keyRequest
	if !h.bind(c, &req) {
		return
	}
	h.apply(c, domain.Event{Type: domain.EventKeyDown, Key: req.Key})
}

func (h *Handler) showSlide(c *gin.Context) {
	idx, err := httpx.ParseIndex(c, "index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.apply(c, domain.Event{Type: domain.EventBannerShow, Index: idx})
}

// getClipboard - последний скопированный текст заказа.
func (h *Handler) getClipboard(c *gin.Context) {
	if h.clipboard == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "clipboard is not readable"})
		return
	}
	text, ok := h.clipboard.Read(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "clipboard is empty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// fragment - HTML содержимого окна, построенный из текущего состояния.
func (h *Handler) fragment(render func(io.Writer, view.ViewModel) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := render(&buf, h.service.View(c.Request.Context())); err != nil {
			h.log.Errorf(c.Request.Context(), "render fragment path=%s err=%v", c.FullPath(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

func (h *Handler) apply(c *gin.Context, ev domain.Event) {
	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	vm, err := h.service.Apply(ctx, ev)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.log.Errorf(ctx, "apply failed type=%s err=%v", ev.Type, err)
			c.JSON(status, gin.H{"error": http.StatusText(status)})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vm)
}

func (h *Handler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return false
	}
	return true
}

// statusFor - HTTP-статус для ошибки применения события.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidEvent):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidItem), errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrIndexOutOfRange),
		errors.Is(err, domain.ErrUnknownModal),
		errors.Is(err, domain.ErrSlideOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotPicking), errors.Is(err, domain.ErrNoPendingSelection):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// rawInput - значение поля ввода как текст: строка без кавычек или литерал числа.
func rawInput(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(v))
}
