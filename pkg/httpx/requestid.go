package httpx

import (
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок корреляции запросов.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

// RequestIDMiddleware — берёт X-Request-ID клиента (если он печатный и не длиннее 128)
// или генерирует UUID; кладёт в контекст запроса и возвращает в ответе.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !acceptableRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
