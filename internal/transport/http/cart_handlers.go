package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemForm struct {
	Name string `form:"name" json:"name" binding:"required"`
}

// quantityForm — пустое или нечисловое значение отклоняет сервис (422), а не биндинг.
type quantityForm struct {
	Quantity string `form:"quantity" json:"quantity"`
}

func (h *Handler) addToCart(c *gin.Context) {
	var form addItemForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.service.AddToCart(ctx, sessionID, form.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK, &res)
}

func (h *Handler) openCart(c *gin.Context) {
	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	res := h.service.OpenCart(ctx, sessionID)
	h.respondCart(c, http.StatusOK, &res)
}

func (h *Handler) closeCart(c *gin.Context) {
	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	h.service.CloseCart(ctx, sessionID)
	c.Status(http.StatusNoContent)
}

func (h *Handler) setQuantity(c *gin.Context) {
	var form quantityForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.service.SetQuantity(ctx, sessionID, c.Param("id"), form.Quantity)
	if err != nil {
		// отклонённое количество: отдаём корзину с прежним значением и предупреждением
		if status := statusFor(err); status == http.StatusUnprocessableEntity {
			h.respondCart(c, status, &res)
			return
		}
		h.respondError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK, &res)
}

func (h *Handler) removeItem(c *gin.Context) {
	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.service.RemoveItem(ctx, sessionID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK, &res)
}
