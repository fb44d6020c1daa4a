package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/Gunvolt24/ohsushi_storefront/internal/banner"
	"github.com/Gunvolt24/ohsushi_storefront/internal/cart"
	"github.com/Gunvolt24/ohsushi_storefront/internal/domain"
	"github.com/Gunvolt24/ohsushi_storefront/internal/modal"
	"github.com/Gunvolt24/ohsushi_storefront/internal/picker"
	"github.com/Gunvolt24/ohsushi_storefront/internal/ports"
	"github.com/Gunvolt24/ohsushi_storefront/internal/view"
	"github.com/Gunvolt24/ohsushi_storefront/pkg/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Тексты уведомлений.
const (
	MsgCartEmpty   = "Your cart is empty!"
	MsgOrderEmpty  = "Please add items to your order first!"
	MsgOrderCopied = "Order copied! Please paste and send it via Facebook or SMS."
	msgCopyFailed  = "Copy failed. Please manually send:\n\n"
)

// CopyFailedText - предупреждение с текстом заказа для ручной отправки.
func CopyFailedText(message string) string { return msgCopyFailed + message }

// Проверка, что Storefront удовлетворяет интерфейсу ports.StorefrontService.
var _ ports.StorefrontService = (*Storefront)(nil)

// Storefront - прикладная логика витрины (без знаний о транспорте).
// События применяются строго по одному: мьютекс удерживается до конца
// обработки, включая запись в буфер обмена.
type Storefront struct {
	mu sync.Mutex

	cart   *cart.CartStore // корзина с сохранением
	order  *cart.OrderList // список заказа, только в памяти
	modals *modal.Controller
	picker *picker.Picker
	banner *banner.Carousel // со своей блокировкой

	clipboard ports.Clipboard
	notifier  ports.Notifier
	renderer  *view.Renderer
	log       ports.Logger
	tracer    trace.Tracer
}

// NewStorefront - DI-конструктор.
func NewStorefront(
	cartStore *cart.CartStore,
	carousel *banner.Carousel,
	clipboard ports.Clipboard,
	notifier ports.Notifier,
	renderer *view.Renderer,
	log ports.Logger,
) *Storefront {
	return &Storefront{
		cart:      cartStore,
		order:     cart.NewOrderList(),
		modals:    modal.NewController(),
		picker:    picker.New(),
		banner:    carousel,
		clipboard: clipboard,
		notifier:  notifier,
		renderer:  renderer,
		log:       log,
		tracer:    otel.Tracer("github.com/Gunvolt24/ohsushi_storefront/internal/usecase"),
	}
}

// Apply - применить событие и вернуть состояние после него.
// ViewModel возвращается и при ошибке: отклонённое событие состояние не меняет.
func (s *Storefront) Apply(ctx context.Context, ev domain.Event) (view.ViewModel, error) {
	ctx, span := s.tracer.Start(ctx, "storefront.apply",
		trace.WithAttributes(attribute.String("storefront.event", string(ev.Type))))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	err := ev.Check()
	if err == nil {
		err = s.dispatch(ctx, ev)
		s.syncPicker(ctx)
	}

	switch {
	case err == nil:
		metrics.Events.WithLabelValues(string(ev.Type), "ok").Inc()
		s.log.Infof(ctx, "event applied type=%s", ev.Type)
	case domain.IsRejection(err):
		metrics.Events.WithLabelValues(eventLabel(ev.Type), "rejected").Inc()
		s.log.Warnf(ctx, "event rejected type=%s err=%v", ev.Type, err)
		span.SetStatus(codes.Error, err.Error())
	default:
		metrics.Events.WithLabelValues(eventLabel(ev.Type), "error").Inc()
		s.log.Errorf(ctx, "event failed type=%s err=%v", ev.Type, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return s.render(s.notifier.Drain()), err
}

// ApplyMessage - применить событие, пришедшее сырым JSON (Kafka).
// Неизвестные поля и данные после объекта отклоняются.
func (s *Storefront) ApplyMessage(ctx context.Context, raw []byte) error {
	var ev domain.Event
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		s.log.Warnf(ctx, "invalid event json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", domain.ErrInvalidEvent, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid event json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", domain.ErrInvalidEvent)
	}

	_, err := s.Apply(ctx, ev)
	return err
}

// View - текущее состояние без побочных эффектов; уведомления не забираются.
func (s *Storefront) View(_ context.Context) view.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.render(nil)
}

func (s *Storefront) dispatch(ctx context.Context, ev domain.Event) error {
	switch ev.Type {
	case domain.EventCartAdd:
		return s.persisted(ctx, s.cart.Add(ctx, ev.Name, ev.Price, ev.Quantity))
	case domain.EventCartIncrement:
		return s.persisted(ctx, s.cart.Increment(ctx, ev.Index))
	case domain.EventCartDecrement:
		return s.persisted(ctx, s.cart.Decrement(ctx, ev.Index))
	case domain.EventCartRemove:
		return s.persisted(ctx, s.cart.Remove(ctx, ev.Index))
	case domain.EventCartClear:
		return s.persisted(ctx, s.cart.Clear(ctx))
	case domain.EventCartCheckout:
		s.checkoutCart(ctx)
		return nil
	case domain.EventCartView:
		return s.modals.Open(domain.ModalCart)

	case domain.EventPickerStart:
		if err := s.picker.Start(domain.Selection{Name: ev.Name, Price: ev.Price}); err != nil {
			return err
		}
		return s.modals.Open(domain.ModalQuantity)
	case domain.EventPickerIncrement:
		return s.picker.Increment()
	case domain.EventPickerDecrement:
		return s.picker.Decrement()
	case domain.EventPickerSet:
		return s.picker.SetRaw(ev.Raw)
	case domain.EventPickerConfirm:
		return s.confirmPicker(ctx)

	case domain.EventOrderAdd:
		if err := s.order.Add(ctx, ev.Name, ev.Price); err != nil {
			return err
		}
		return s.modals.Open(domain.ModalOrder)
	case domain.EventOrderView:
		return s.modals.Open(domain.ModalOrder)
	case domain.EventOrderCheckout:
		s.checkoutOrder(ctx)
		return nil

	case domain.EventModalOpen, domain.EventModalClose:
		key, err := domain.ParseModalKey(ev.Modal)
		if err != nil {
			return err
		}
		if ev.Type == domain.EventModalOpen {
			return s.modals.Open(key)
		}
		return s.modals.Close(key)
	case domain.EventModalCloseAll:
		s.modals.CloseAll()
		return nil
	case domain.EventClick:
		if key, hit := s.modals.HandleClick(ev.Target); hit {
			s.log.Infof(ctx, "modal closed by backdrop click modal=%s", key)
		}
		return nil
	case domain.EventKeyDown:
		s.modals.HandleKey(ev.Key)
		return nil

	case domain.EventBannerNext:
		s.banner.Next()
		return nil
	case domain.EventBannerPrev:
		s.banner.Prev()
		return nil
	case domain.EventBannerShow:
		return s.banner.Show(ev.Index)
	}
	return fmt.Errorf("%w: unhandled type %q", domain.ErrInvalidEvent, ev.Type)
}

// syncPicker - выбор количества живёт только пока открыто окно quantity:
// закрытие окна (Escape, клик по фону, кнопка) сбрасывает выбор.
func (s *Storefront) syncPicker(ctx context.Context) {
	if s.picker.Active() && !s.modals.IsOpen(domain.ModalQuantity) {
		s.log.Debugf(ctx, "quantity modal closed, picker reset item=%q", s.picker.Pending().Name)
		s.picker.Reset()
	}
}

// persisted - сбой сохранения не отменяет мутацию: логируем и продолжаем.
func (s *Storefront) persisted(ctx context.Context, err error) error {
	if errors.Is(err, cart.ErrPersist) {
		s.log.Errorf(ctx, "cart save failed, change kept in memory err=%v", err)
		return nil
	}
	return err
}

func (s *Storefront) confirmPicker(ctx context.Context) error {
	sel, qty, err := s.picker.Confirm()
	if err != nil {
		return err
	}
	if err := s.persisted(ctx, s.cart.Add(ctx, sel.Name, sel.Price, qty)); err != nil {
		return err
	}
	return s.modals.Close(domain.ModalQuantity)
}

// checkoutCart - показать сводку корзины; корзина не очищается.
func (s *Storefront) checkoutCart(ctx context.Context) {
	if s.cart.IsEmpty() {
		metrics.Checkouts.WithLabelValues("cart", "empty").Inc()
		s.notifier.Notify(ctx, domain.Notice{Level: domain.NoticeWarning, Text: MsgCartEmpty})
		return
	}
	metrics.Checkouts.WithLabelValues("cart", "summary").Inc()
	s.notifier.Notify(ctx, domain.Notice{Level: domain.NoticeInfo, Text: s.renderer.CartSummary(s.cart.Items(), s.cart.Total())})
}

// checkoutOrder - скопировать текст заказа в буфер обмена.
// При успехе список очищается и окно заказа закрывается; при сбое всё
// остаётся как было, а пользователь получает текст для ручной отправки.
func (s *Storefront) checkoutOrder(ctx context.Context) {
	if s.order.IsEmpty() {
		metrics.Checkouts.WithLabelValues("order", "empty").Inc()
		s.notifier.Notify(ctx, domain.Notice{Level: domain.NoticeWarning, Text: MsgOrderEmpty})
		return
	}

	message := s.renderer.OrderMessage(s.order.Items(), s.order.Total())
	if err := s.clipboard.Write(ctx, message); err != nil {
		metrics.Checkouts.WithLabelValues("order", "copy_failed").Inc()
		s.log.Warnf(ctx, "clipboard write failed err=%v", err)
		s.notifier.Notify(ctx, domain.Notice{Level: domain.NoticeWarning, Text: CopyFailedText(message)})
		return
	}

	metrics.Checkouts.WithLabelValues("order", "copied").Inc()
	s.notifier.Notify(ctx, domain.Notice{Level: domain.NoticeInfo, Text: MsgOrderCopied})
	_ = s.modals.Close(domain.ModalOrder)
	_ = s.order.Clear(ctx)
}

func (s *Storefront) render(notices []domain.Notice) view.ViewModel {
	pv := view.PickerView{Active: s.picker.Active(), Quantity: s.picker.Quantity()}
	if pv.Active {
		pv.Title = s.picker.Title()
		pv.PriceLabel = s.picker.PriceLabel(s.renderer.Formatter())
	}
	return s.renderer.Render(view.State{
		Cart:       s.cart.Items(),
		CartTotal:  s.cart.Total(),
		CartCount:  s.cart.ItemCount(),
		Order:      s.order.Items(),
		OrderTotal: s.order.Total(),
		Modals:     s.modals.Visible(),
		Picker:     pv,
		Banner:     view.BannerView{Index: s.banner.Current(), Count: s.banner.Count()},
		Notices:    notices,
	})
}

// eventLabel - ограничивает кардинальность метки type для мусорных событий.
func eventLabel(t domain.EventType) string {
	if (domain.Event{Type: t}).Check() != nil {
		return "unknown"
	}
	return string(t)
}
