package rest

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/navmenu"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/gin-gonic/gin"
)

const mimeHTMLUTF8 = "text/html; charset=utf-8"

// Заголовки для HTML-ответов: то, что в JSON идёт полями.
const (
	headerToast         = "X-Toast"
	headerToastDuration = "X-Toast-Duration-Ms"
	headerMessage       = "X-Message"
	headerOrderID       = "X-Order-ID"
)

// wantsJSON — клиент предпочитает JSON; по умолчанию отдаём HTML-фрагмент.
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func (h *Handler) respondCart(c *gin.Context, status int, res *usecase.CartResult) {
	if wantsJSON(c) {
		c.JSON(status, res)
		return
	}
	var buf bytes.Buffer
	if err := h.view.RenderCart(&buf, &res.Cart); err != nil {
		h.renderFailed(c, err)
		return
	}
	if res.Toast != nil {
		c.Header(headerToast, res.Toast.Message)
		c.Header(headerToastDuration, strconv.FormatInt(res.Toast.DurationMS, 10))
	}
	c.Data(status, mimeHTMLUTF8, buf.Bytes())
}

func (h *Handler) respondOrders(c *gin.Context, status int, res *usecase.OrdersResult) {
	if wantsJSON(c) {
		c.JSON(status, res)
		return
	}
	var buf bytes.Buffer
	if err := h.view.RenderOrders(&buf, &res.Orders); err != nil {
		h.renderFailed(c, err)
		return
	}
	c.Data(status, mimeHTMLUTF8, buf.Bytes())
}

// respondConfirm — в HTML отдаём тело корзины, сообщение и ID заказа в заголовках.
func (h *Handler) respondConfirm(c *gin.Context, status int, res *usecase.ConfirmResult) {
	if wantsJSON(c) {
		c.JSON(status, res)
		return
	}
	var buf bytes.Buffer
	if err := h.view.RenderCart(&buf, &res.Cart); err != nil {
		h.renderFailed(c, err)
		return
	}
	c.Header(headerMessage, res.Message)
	if res.OrderID != "" {
		c.Header(headerOrderID, res.OrderID)
	}
	c.Data(status, mimeHTMLUTF8, buf.Bytes())
}

func (h *Handler) renderFailed(c *gin.Context, err error) {
	h.log.Errorf(c.Request.Context(), "render failed path=%s err=%v", c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// statusFor — HTTP-код для ошибки операции.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrLineItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusConflict
	case errors.Is(err, navmenu.ErrUnknownEvent):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "request failed path=%s err=%v", c.FullPath(), err)
		c.JSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
