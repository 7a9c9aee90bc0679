package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type menuEventForm struct {
	Event string `form:"event" json:"event" binding:"required"`
	Key   string `form:"key" json:"key"`
}

// menuEvent — состояние меню всегда отдаётся JSON: фрагмента у меню нет.
func (h *Handler) menuEvent(c *gin.Context) {
	var form menuEventForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event is required"})
		return
	}

	ctx, sessionID, cancel := h.requestContext(c)
	defer cancel()

	state, err := h.service.MenuEvent(ctx, sessionID, form.Event, form.Key)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
