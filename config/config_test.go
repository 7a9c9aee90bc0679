package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/storefront/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("STOREFRONT_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.RateLimitRPS != 20 || c.HTTP.RateLimitBurst != 40 || len(c.HTTP.TrustedProxies) != 0 {
		t.Fatalf("HTTP rate limit defaults wrong: %+v", c.HTTP)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "storefront" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false, got true")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "order-events" || c.Kafka.RequiredAcks != "all" || c.Kafka.QueueSize != 1024 {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.WriteTimeout != 5*time.Second || c.Kafka.RetryInitial != 200*time.Millisecond || c.Kafka.RetryMax != 5*time.Second {
		t.Fatalf("Kafka timeouts wrong: %+v", c.Kafka)
	}

	// Session
	if c.Session.Capacity != 10000 || c.Session.TTL != 30*time.Minute || c.Session.SweepInterval != time.Minute {
		t.Fatalf("Session defaults wrong: %+v", c.Session)
	}
	if c.Session.CookieName != "sid" || c.Session.SecureCookie {
		t.Fatalf("Session cookie defaults wrong: %+v", c.Session)
	}

	// Storefront
	if c.Storefront.Currency != "₱" || c.Storefront.ToastDuration != 500*time.Millisecond {
		t.Fatalf("Storefront defaults wrong: %+v", c.Storefront)
	}
	if c.Storefront.PagePath != "./web/index.html" || c.Storefront.StaticDir != "./web/static" {
		t.Fatalf("Storefront paths wrong: %+v", c.Storefront)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "STOREFRONT_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "9s")
	t.Setenv(p+"_HTTP_RATE_LIMIT_RPS", "0")
	t.Setenv(p+"_HTTP_TRUSTED_PROXIES", "10.0.0.0/8")

	// Tracing
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	// Kafka
	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_TOPIC", "events-test")
	t.Setenv(p+"_KAFKA_REQUIRED_ACKS", "one")
	t.Setenv(p+"_KAFKA_WRITE_TIMEOUT", "7s")

	// Session
	t.Setenv(p+"_SESSION_CAPACITY", "777")
	t.Setenv(p+"_SESSION_TTL", "2h")
	t.Setenv(p+"_SESSION_COOKIE_NAME", "shop")
	t.Setenv(p+"_SESSION_SECURE_COOKIE", "true")

	// Storefront
	t.Setenv(p+"_STOREFRONT_CURRENCY", "$")
	t.Setenv(p+"_STOREFRONT_TOAST_DURATION", "1s")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Проверки
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" || c.HTTP.ReadTimeout != 2*time.Second {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 4500*time.Millisecond || c.HTTP.GracefulTimeout != 9*time.Second || c.HTTP.RateLimitRPS != 0 ||
		!slices.Equal(c.HTTP.TrustedProxies, []string{"10.0.0.0/8"}) {
		t.Fatalf("HTTP timeouts override wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) ||
		c.Kafka.Topic != "events-test" || c.Kafka.RequiredAcks != "one" || c.Kafka.WriteTimeout != 7*time.Second {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Session.Capacity != 777 || c.Session.TTL != 2*time.Hour || c.Session.CookieName != "shop" || !c.Session.SecureCookie {
		t.Fatalf("Session overrides wrong: %+v", c.Session)
	}
	if c.Storefront.Currency != "$" || c.Storefront.ToastDuration != time.Second {
		t.Fatalf("Storefront overrides wrong: %+v", c.Storefront)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "STOREFRONT_TEST_BAD"
	t.Setenv(p+"_SESSION_TTL", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
