package rest

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RouterConfig — параметры роутера, не относящиеся к хендлерам.
type RouterConfig struct {
	StaticDir     string             // каталог ассетов (/static); "" — не раздаём
	PagePath      string             // HTML витрины для "/"; "" — не раздаём
	ServiceName   string             // имя сервиса для otelgin; "" — без трейсинга
	SessionCookie string             // имя cookie сессии; "" — "sid"
	SecureCookie  bool               // Secure у cookie сессии
	RateLimiter   *httpx.RateLimiter // nil — без ограничения
	// TrustedProxies — прокси, чьему X-Forwarded-For верим; пусто — ClientIP берётся из соединения
	TrustedProxies []string
}

func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		h.log.Errorf(context.Background(), "trusted proxies %v rejected, trusting none: %v", cfg.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.StaticDir != "" {
		r.Static("/static", cfg.StaticDir)
	}

	// загрузка страницы начинает новую сессию, прежняя удаляется
	if cfg.PagePath != "" {
		page := []gin.HandlerFunc{
			httpx.RateLimitMiddleware(cfg.RateLimiter),
			httpx.PageSessionMiddleware(cfg.SessionCookie, cfg.SecureCookie, h.endSession),
			func(c *gin.Context) { c.File(cfg.PagePath) },
		}
		r.GET("/", page...)
		r.HEAD("/", page...)
	}

	// всё, что ниже, работает в рамках сессии страницы
	s := r.Group("/",
		httpx.RateLimitMiddleware(cfg.RateLimiter),
		httpx.SessionMiddleware(cfg.SessionCookie, cfg.SecureCookie),
	)

	cart := s.Group("/cart")
	cart.GET("", h.openCart)
	cart.POST("/close", h.closeCart)
	cart.POST("/items", h.addToCart)
	cart.PATCH("/items/:id", h.setQuantity)
	cart.DELETE("/items/:id", h.removeItem)

	orders := s.Group("/orders")
	orders.POST("", h.confirmOrder)
	orders.GET("", h.openOrders)
	orders.POST("/close", h.closeOrders)
	orders.POST("/:id/status", h.advanceStatus)
	orders.POST("/:id/details", h.toggleDetails)

	s.POST("/menu/events", h.menuEvent)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}
