package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/navmenu"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/session"
	"github.com/Gunvolt24/storefront/internal/view"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultToastDuration — сколько держится подсказка "Item added to cart.".
const DefaultToastDuration = 500 * time.Millisecond

// Options — необязательные параметры сервиса.
type Options struct {
	ToastDuration time.Duration
	Now           func() time.Time
}

// StorefrontService — операции витрины над сессией страницы (без знаний о транспорте).
// Единственное место, где меняется состояние корзины, журнала и модалок.
type StorefrontService struct {
	catalog   ports.ProductCatalog
	sessions  ports.SessionStore
	publisher ports.EventPublisher // может быть nil: события не отправляются
	view      *view.View
	log       ports.Logger
	tracer    trace.Tracer

	toast time.Duration
	now   func() time.Time
}

// NewStorefrontService — DI-конструктор.
func NewStorefrontService(
	catalog ports.ProductCatalog,
	sessions ports.SessionStore,
	publisher ports.EventPublisher,
	v *view.View,
	log ports.Logger,
	opts Options,
) *StorefrontService {
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = DefaultToastDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &StorefrontService{
		catalog:   catalog,
		sessions:  sessions,
		publisher: publisher,
		view:      v,
		log:       log,
		tracer:    otel.Tracer("storefront/usecase"),
		toast:     opts.ToastDuration,
		now:       opts.Now,
	}
}

// Toast — кратковременное подтверждение без состояния.
type Toast struct {
	Message    string `json:"message"`
	DurationMS int64  `json:"duration_ms"`
}

// CartResult — ответ операций корзины.
type CartResult struct {
	Cart  view.CartModel `json:"cart"`
	Toast *Toast         `json:"toast,omitempty"`
}

// OrdersResult — ответ операций со списком заказов.
type OrdersResult struct {
	Orders view.OrderModel `json:"orders"`
}

// ConfirmResult — итог попытки оформить заказ.
type ConfirmResult struct {
	Placed  bool            `json:"placed"`
	OrderID string          `json:"order_id,omitempty"`
	Message string          `json:"message"`
	Cart    view.CartModel  `json:"cart"`
	Orders  view.OrderModel `json:"orders"`
}

func (s *StorefrontService) start(ctx context.Context, op, sessionID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "StorefrontService."+op,
		trace.WithAttributes(attribute.String("storefront.session_id", sessionID)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *StorefrontService) cartModel(sess *session.Session) view.CartModel {
	return s.view.BuildCart(sess.Cart.Items(), sess.CartVisible)
}

// ordersModel — любая перерисовка списка, кроме переключения деталей, сворачивает карточки.
func (s *StorefrontService) ordersModel(sess *session.Session, keepDisclosure bool) view.OrderModel {
	if !keepDisclosure {
		sess.Disclosure.Reset()
	}
	return s.view.BuildOrders(sess.Ledger.Recent(), sess.Disclosure.OpenID(), sess.OrdersVisible)
}

// AddToCart — добавить товар витрины по имени (повторное добавление увеличивает количество).
func (s *StorefrontService) AddToCart(ctx context.Context, sessionID, name string) (res CartResult, err error) {
	ctx, span := s.start(ctx, "AddToCart", sessionID)
	defer func() { endSpan(span, err) }()

	product, ok := s.catalog.Lookup(ctx, name)
	if !ok {
		s.log.Warnf(ctx, "add to cart: unknown product name=%q", name)
		return res, fmt.Errorf("%w: %q", domain.ErrProductNotFound, name)
	}

	sess := s.sessions.GetOrCreate(ctx, sessionID)
	_ = sess.Do(func(sess *session.Session) error {
		item := sess.Cart.Add(product)
		s.log.Debugf(ctx, "cart add name=%s qty=%d", item.Name, item.Quantity)
		res.Cart = s.cartModel(sess)
		return nil
	})

	metrics.CartOps.WithLabelValues("add").Inc()
	res.Toast = &Toast{Message: view.MsgItemAdded, DurationMS: s.toast.Milliseconds()}
	return res, nil
}

// EndSession — страница перезагружена: корзина, журнал и состояние меню прежней сессии теряются.
func (s *StorefrontService) EndSession(ctx context.Context, sessionID string) {
	s.sessions.Delete(ctx, sessionID)
	s.log.Debugf(ctx, "session ended id=%s", sessionID)
}

// OpenCart — показать модалку корзины; содержимое всегда строится заново.
func (s *StorefrontService) OpenCart(ctx context.Context, sessionID string) CartResult {
	_, span := s.start(ctx, "OpenCart", sessionID)
	defer span.End()

	var res CartResult
	_ = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		sess.CartVisible = true
		res.Cart = s.cartModel(sess)
		return nil
	})
	return res
}

// CloseCart — скрыть модалку корзины.
func (s *StorefrontService) CloseCart(ctx context.Context, sessionID string) {
	_ = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		sess.CartVisible = false
		return nil
	})
}

// SetQuantity — задать количество позиции из пользовательского ввода.
// Значение < 1 (и нечисловой ввод) отклоняется: корзина не меняется,
// в модели остаётся прежнее количество и предупреждение.
func (s *StorefrontService) SetQuantity(ctx context.Context, sessionID, itemID, raw string) (res CartResult, err error) {
	ctx, span := s.start(ctx, "SetQuantity", sessionID)
	defer func() { endSpan(span, err) }()

	// отклонённый ввод всё равно идёт в корзину: неизвестная позиция важнее (404)
	quantity, parseErr := validate.ParseQuantity(raw)
	switch {
	case errors.Is(parseErr, domain.ErrQuantityTooLarge):
		quantity = domain.MaxQuantity + 1
	case parseErr != nil:
		quantity = 0
	}

	err = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		setErr := sess.Cart.SetQuantity(itemID, quantity)
		res.Cart = s.cartModel(sess)
		return setErr
	})

	switch {
	case err == nil:
		metrics.CartOps.WithLabelValues("set_quantity").Inc()
		return res, nil
	case isInvalidQuantity(err):
		metrics.CartOps.WithLabelValues("rejected").Inc()
		s.log.Infof(ctx, "quantity rejected item=%s raw=%q", itemID, raw)
		res.Cart.Warning = view.MsgInvalidQuantity
		if errors.Is(err, domain.ErrQuantityTooLarge) {
			res.Cart.Warning = view.MsgQuantityTooLarge
		}
		return res, err
	default:
		s.log.Errorf(ctx, "set quantity: %v", err)
		return res, err
	}
}

// RemoveItem — удалить позицию; неизвестный ID — ошибка интеграции.
func (s *StorefrontService) RemoveItem(ctx context.Context, sessionID, itemID string) (res CartResult, err error) {
	ctx, span := s.start(ctx, "RemoveItem", sessionID)
	defer func() { endSpan(span, err) }()

	err = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		if rmErr := sess.Cart.Remove(itemID); rmErr != nil {
			return rmErr
		}
		res.Cart = s.cartModel(sess)
		return nil
	})
	if err != nil {
		s.log.Errorf(ctx, "remove item: %v", err)
		return res, err
	}
	metrics.CartOps.WithLabelValues("remove").Inc()
	return res, nil
}

// ConfirmOrder — оформить заказ из корзины.
// Пустая корзина → ErrEmptyCart с предупреждением в модели корзины.
// Отказ пользователя → без ошибки, сообщение "Order canceled.".
// Успех → заказ в журнале, корзина очищена и скрыта, событие order.placed.
func (s *StorefrontService) ConfirmOrder(ctx context.Context, sessionID string, affirmed bool) (res ConfirmResult, err error) {
	ctx, span := s.start(ctx, "ConfirmOrder", sessionID)
	defer func() { endSpan(span, err) }()

	var placed domain.Order
	err = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		order, confirmErr := sess.Ledger.Confirm(sess.Cart, affirmed, s.now())
		if confirmErr == nil {
			placed = order
			sess.CartVisible = false
		}
		res.Cart = s.cartModel(sess)
		// журнал перерисовывается только если в нём появился заказ
		res.Orders = s.ordersModel(sess, confirmErr != nil)
		return confirmErr
	})

	switch {
	case err == nil:
		metrics.OrderConfirmations.WithLabelValues("placed").Inc()
		res.Placed = true
		res.OrderID = placed.ID
		res.Message = fmt.Sprintf("Order %s placed.", placed.ID)
		s.log.Infof(ctx, "order placed id=%s items=%d total=%s", placed.ID, len(placed.Items), placed.Total())
		s.publish(ctx, domain.OrderPlaced, sessionID, &placed)
		return res, nil
	case isOrderDeclined(err):
		metrics.OrderConfirmations.WithLabelValues("declined").Inc()
		res.Message = view.MsgOrderCanceled
		res.Cart.Notice = view.MsgOrderCanceled
		return res, nil
	default: // пустая корзина
		metrics.OrderConfirmations.WithLabelValues("empty").Inc()
		res.Message = view.MsgCartEmpty
		res.Cart.Warning = view.MsgCartEmpty
		s.log.Infof(ctx, "confirm rejected: %v", err)
		return res, err
	}
}

// OpenOrders — показать модалку заказов (новые сверху, карточки свёрнуты).
func (s *StorefrontService) OpenOrders(ctx context.Context, sessionID string) OrdersResult {
	_, span := s.start(ctx, "OpenOrders", sessionID)
	defer span.End()

	var res OrdersResult
	_ = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		sess.OrdersVisible = true
		res.Orders = s.ordersModel(sess, false)
		return nil
	})
	return res
}

// CloseOrders — скрыть модалку заказов.
func (s *StorefrontService) CloseOrders(ctx context.Context, sessionID string) {
	_ = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		sess.OrdersVisible = false
		return nil
	})
}

// AdvanceStatus — следующий статус заказа по кругу; список перерисовывается целиком.
func (s *StorefrontService) AdvanceStatus(ctx context.Context, sessionID, orderID string) (res OrdersResult, err error) {
	ctx, span := s.start(ctx, "AdvanceStatus", sessionID)
	defer func() { endSpan(span, err) }()

	var updated domain.Order
	err = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		order, advErr := sess.Ledger.AdvanceStatus(orderID)
		if advErr != nil {
			return advErr
		}
		updated = order
		res.Orders = s.ordersModel(sess, false)
		return nil
	})
	if err != nil {
		s.log.Errorf(ctx, "advance status: %v", err)
		return res, err
	}

	metrics.OrderStatusTransitions.WithLabelValues(updated.Status.String()).Inc()
	s.log.Infof(ctx, "order status id=%s status=%s", updated.ID, updated.Status)
	s.publish(ctx, domain.OrderStatusChanged, sessionID, &updated)
	return res, nil
}

// ToggleDetails — раскрыть детали заказа (остальные сворачиваются) или свернуть.
func (s *StorefrontService) ToggleDetails(ctx context.Context, sessionID, orderID string) (res OrdersResult, err error) {
	ctx, span := s.start(ctx, "ToggleDetails", sessionID)
	defer func() { endSpan(span, err) }()

	err = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		if _, ok := sess.Ledger.Get(orderID); !ok {
			return fmt.Errorf("%w: id=%s", domain.ErrOrderNotFound, orderID)
		}
		sess.Disclosure.Toggle(orderID)
		res.Orders = s.ordersModel(sess, true)
		return nil
	})
	if err != nil {
		s.log.Errorf(ctx, "toggle details: %v", err)
	}
	return res, err
}

// MenuEvent — переход меню навигации по событию страницы.
func (s *StorefrontService) MenuEvent(ctx context.Context, sessionID, event, key string) (navmenu.State, error) {
	e, err := navmenu.ParseEvent(event)
	if err != nil {
		s.log.Warnf(ctx, "menu event: %v", err)
		return navmenu.State{}, err
	}

	var state navmenu.State
	_ = s.sessions.GetOrCreate(ctx, sessionID).Do(func(sess *session.Session) error {
		if sess.Menu.Handle(e, key) {
			s.log.Debugf(ctx, "menu open=%t", sess.Menu.Open())
		}
		state = sess.Menu.State()
		return nil
	})
	return state, nil
}

func isInvalidQuantity(err error) bool { return errors.Is(err, domain.ErrInvalidQuantity) }

func isOrderDeclined(err error) bool { return errors.Is(err, domain.ErrOrderDeclined) }
