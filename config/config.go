package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultPrefix — префикс переменных окружения сервиса.
const DefaultPrefix = "STOREFRONT"

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"3s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
	// лимит запросов сессии с одного IP; 0 — без ограничения
	RateLimitRPS   float64 `default:"20" envconfig:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `default:"40" envconfig:"RATE_LIMIT_BURST"`
	// CIDR/адреса прокси, которым доверяем X-Forwarded-For; пусто — никому
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"storefront" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Kafka — события о заказах; при Enabled=false продюсер не создаётся.
type Kafka struct {
	Enabled      bool          `default:"false" envconfig:"ENABLED"`
	Brokers      []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic        string        `default:"order-events" envconfig:"TOPIC"`
	RequiredAcks string        `default:"all" envconfig:"REQUIRED_ACKS"`
	WriteTimeout time.Duration `default:"5s" envconfig:"WRITE_TIMEOUT"`
	QueueSize    int           `default:"1024" envconfig:"QUEUE_SIZE"`
	MaxAttempts  int           `default:"3" envconfig:"MAX_ATTEMPTS"`
	RetryInitial time.Duration `default:"200ms" envconfig:"RETRY_INITIAL"`
	RetryMax     time.Duration `default:"5s" envconfig:"RETRY_MAX"`
}

type Session struct {
	Capacity      int           `default:"10000" envconfig:"CAPACITY"`
	TTL           time.Duration `default:"30m" envconfig:"TTL"`
	SweepInterval time.Duration `default:"1m" envconfig:"SWEEP_INTERVAL"`
	CookieName    string        `default:"sid" envconfig:"COOKIE_NAME"`
	SecureCookie  bool          `default:"false" envconfig:"SECURE_COOKIE"`
}

type Storefront struct {
	PagePath      string        `default:"./web/index.html" envconfig:"PAGE_PATH"`
	StaticDir     string        `default:"./web/static" envconfig:"STATIC_DIR"`
	Currency      string        `default:"₱" envconfig:"CURRENCY"`
	ToastDuration time.Duration `default:"500ms" envconfig:"TOAST_DURATION"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP       HTTP
	Tracing    Tracing
	Kafka      Kafka
	Session    Session
	Storefront Storefront
	Logger     Logger
}

// Load — конфигурация из окружения с префиксом STOREFRONT.
func Load() (Config, error) { return LoadWithPrefix(DefaultPrefix) }

// LoadWithPrefix — то же с произвольным префиксом (тесты).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
