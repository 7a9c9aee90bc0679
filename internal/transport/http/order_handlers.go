package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// confirmForm — ответ пользователя на "Are you sure to confirm?".
type confirmForm struct {
	Confirm *bool `form:"confirm" json:"confirm" binding:"required"`
}

func (h *Handler) confirmOrder(c *gin.Context) {
	var form confirmForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirm is required"})
		return
	}

	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.service.ConfirmOrder(ctx, sessionID, *form.Confirm)
	switch {
	case err == nil && res.Placed:
		h.respondConfirm(c, http.StatusCreated, &res)
	case err == nil:
		h.respondConfirm(c, http.StatusOK, &res)
	case statusFor(err) == http.StatusConflict:
		h.respondConfirm(c, http.StatusConflict, &res)
	default:
		h.respondError(c, err)
	}
}

func (h *Handler) openOrders(c *gin.Context) {
	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	res := h.service.OpenOrders(ctx, sessionID)
	h.respondOrders(c, http.StatusOK, &res)
}

func (h *Handler) closeOrders(c *gin.Context) {
	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	h.service.CloseOrders(ctx, sessionID)
	c.Status(http.StatusNoContent)
}

func (h *Handler) advanceStatus(c *gin.Context) {
	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.service.AdvanceStatus(ctx, sessionID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondOrders(c, http.StatusOK, &res)
}

func (h *Handler) toggleDetails(c *gin.Context) {
	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.service.ToggleDetails(ctx, sessionID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondOrders(c, http.StatusOK, &res)
}
