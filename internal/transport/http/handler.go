package rest

import (
	"context"
	"io"
	"time"

	"github.com/Gunvolt24/storefront/internal/navmenu"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/internal/view"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// storefront — операции витрины, которые нужны HTTP-слою.
type storefront interface {
	AddToCart(ctx context.Context, sessionID, name string) (usecase.CartResult, error)
	OpenCart(ctx context.Context, sessionID string) usecase.CartResult
	CloseCart(ctx context.Context, sessionID string)
	SetQuantity(ctx context.Context, sessionID, itemID, raw string) (usecase.CartResult, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (usecase.CartResult, error)
	ConfirmOrder(ctx context.Context, sessionID string, affirmed bool) (usecase.ConfirmResult, error)
	OpenOrders(ctx context.Context, sessionID string) usecase.OrdersResult
	CloseOrders(ctx context.Context, sessionID string)
	AdvanceStatus(ctx context.Context, sessionID, orderID string) (usecase.OrdersResult, error)
	ToggleDetails(ctx context.Context, sessionID, orderID string) (usecase.OrdersResult, error)
	MenuEvent(ctx context.Context, sessionID, event, key string) (navmenu.State, error)
	EndSession(ctx context.Context, sessionID string)
}

// renderer — HTML-фрагменты модалок.
type renderer interface {
	RenderCart(w io.Writer, m *view.CartModel) error
	RenderOrders(w io.Writer, m *view.OrderModel) error
}

type Handler struct {
	service    storefront
	view       renderer
	log        ports.Logger
	reqTimeout time.Duration
}

// NewHandler — reqTimeout <= 0 отключает таймаут на запрос.
func NewHandler(service storefront, v renderer, log ports.Logger, reqTimeout time.Duration) *Handler {
	return &Handler{service: service, view: v, log: log, reqTimeout: reqTimeout}
}

// endSession — прежняя сессия браузера при загрузке страницы.
func (h *Handler) endSession(ctx context.Context, sessionID string) {
	h.service.EndSession(ctx, sessionID)
}

// requestContext — контекст запроса с таймаутом и ID сессии.
func (h *Handler) requestContext(c *gin.Context) (context.Context, string, context.CancelFunc) {
	ctx := c.Request.Context()
	sessionID, _ := ctxmeta.SessionIDFromContext(ctx)
	if h.reqTimeout <= 0 {
		return ctx, sessionID, func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, h.reqTimeout)
	return ctx, sessionID, cancel
}
