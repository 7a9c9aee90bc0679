package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/config"
	cachemem "github.com/Gunvolt24/storefront/internal/cache/memory"
	"github.com/Gunvolt24/storefront/internal/catalog"
	"github.com/Gunvolt24/storefront/internal/kafka"
	"github.com/Gunvolt24/storefront/internal/ports"
	"github.com/Gunvolt24/storefront/internal/session"
	rest "github.com/Gunvolt24/storefront/internal/transport/http"
	"github.com/Gunvolt24/storefront/internal/usecase"
	"github.com/Gunvolt24/storefront/internal/view"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/Gunvolt24/storefront/pkg/logger"
	"github.com/Gunvolt24/storefront/pkg/metrics"
	"github.com/Gunvolt24/storefront/pkg/telemetry"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение: HTTP-сервер и фоновые компоненты (janitor сессий, продюсер событий).
type App struct {
	Logger          ports.Logger             // логгер
	HTTPServer      *http.Server             // HTTP-сервер
	Workers         []ports.BackgroundWorker // фоновые компоненты
	gracefulTimeout time.Duration            // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	fail := func(err error) (*App, Cleanup, error) {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Каталог товаров читается из той же страницы, что отдаётся браузеру.
	products, err := catalog.LoadFile(ctx, cfg.Storefront.PagePath, validate.NewProductValidator())
	if err != nil {
		logg.Errorf(ctx, "load catalog page=%s: %v", cfg.Storefront.PagePath, err)
		return fail(err)
	}
	logg.Infof(ctx, "catalog loaded products=%d page=%s", products.Len(), cfg.Storefront.PagePath)

	v, err := view.New(cfg.Storefront.Currency)
	if err != nil {
		return fail(err)
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.TracingOptions{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сессии страниц и их уборка.
	sessions := cachemem.NewSessionCache(cfg.Session.Capacity, cfg.Session.TTL, func(id string) *session.Session {
		return session.New(id, nil, time.Now())
	})
	workers := []ports.BackgroundWorker{
		cachemem.NewJanitor(sessions, cfg.Session.SweepInterval, logg),
	}

	// Продюсер событий о заказах (опционально).
	var publisher ports.EventPublisher
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			RequiredAcks: cfg.Kafka.RequiredAcks,
			WriteTimeout: cfg.Kafka.WriteTimeout,
			QueueSize:    cfg.Kafka.QueueSize,
			MaxAttempts:  cfg.Kafka.MaxAttempts,
			RetryInitial: cfg.Kafka.RetryInitial,
			RetryMax:     cfg.Kafka.RetryMax,
		}, logg)
		publisher = producer
		workers = append(workers, producer)
	} else {
		logg.Infof(ctx, "kafka disabled, order events are not published")
	}

	service := usecase.NewStorefrontService(products, sessions, publisher, v, logg, usecase.Options{
		ToastDuration: cfg.Storefront.ToastDuration,
	})

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(service, v, logg, cfg.HTTP.HandlerTimeout)
	var limiter *httpx.RateLimiter
	if cfg.HTTP.RateLimitRPS > 0 {
		limiter = httpx.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, cfg.Session.TTL)
	}

	router := rest.NewRouter(httpHandler, rest.RouterConfig{
		StaticDir:      cfg.Storefront.StaticDir,
		PagePath:       cfg.Storefront.PagePath,
		ServiceName:    otelServiceName,
		SessionCookie:  cfg.Session.CookieName,
		SecureCookie:   cfg.Session.SecureCookie,
		RateLimiter:    limiter,
		TrustedProxies: cfg.HTTP.TrustedProxies,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Workers:         workers,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		for i := len(workers) - 1; i >= 0; i-- {
			if err := workers[i].Close(); err != nil {
				logg.Warnf(ctx, "worker close error: %v", err)
			}
		}
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и фоновые компоненты; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, len(a.Workers)+1)

	// Запуск фоновых компонентов.
	for _, w := range a.Workers {
		go func(w ports.BackgroundWorker) {
			if err := w.Run(ctx); err != nil {
				errCh <- err
			}
		}(w)
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка фоновых компонентов после HTTP: продюсер дописывает очередь.
	for _, w := range a.Workers {
		if err := w.Close(); err != nil {
			a.Logger.Warnf(ctx, "worker close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
