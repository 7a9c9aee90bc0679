package httpx

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// служебные маршруты в access-лог не пишем
var quietPaths = map[string]struct{}{
	"/metrics":          {},
	"/ping":             {},
	"/static/*filepath": {},
}

// RequestLogger — access-лог запросов витрины. Уровень зависит от статуса:
// 5xx — Errorf, 4xx — Warnf, остальное — Infof. request_id и session_id добавляет логгер.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if _, quiet := quietPaths[c.FullPath()]; quiet {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		traceID, _ := ctxmeta.TraceIDFromContext(ctx)
		status := c.Writer.Status()

		logf := log.Infof
		switch {
		case status >= http.StatusInternalServerError:
			logf = log.Errorf
		case status >= http.StatusBadRequest:
			logf = log.Warnf
		}
		logf(ctx, "http %s %s status=%d duration=%s size=%d ip=%s trace=%s",
			c.Request.Method, path, status, time.Since(start), c.Writer.Size(), c.ClientIP(), traceID)
	}
}
