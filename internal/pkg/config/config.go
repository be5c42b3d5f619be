package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Pricing  PricingConfig
	Timeslot TimeslotConfig
	Payment  PaymentConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`

	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"5m"`
	MaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"1m"`

	// compose starts the API alongside postgres, so the first connects may be refused
	ConnectAttempts   int           `envconfig:"DB_CONNECT_ATTEMPTS" default:"5"`
	ConnectRetryDelay time.Duration `envconfig:"DB_CONNECT_RETRY_DELAY" default:"2s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Toronto"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type JWTConfig struct {
	Secret               string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// PricingConfig holds the delivery fee table and tax rate used by the amount calculator.
type PricingConfig struct {
	StandardFee string `envconfig:"PRICING_STANDARD_FEE" default:"40"`
	ExpressFee  string `envconfig:"PRICING_EXPRESS_FEE" default:"80"`
	SamedayFee  string `envconfig:"PRICING_SAMEDAY_FEE" default:"120"`
	TaxRate     string `envconfig:"PRICING_TAX_RATE" default:"0.18"`
	Currency    string `envconfig:"PRICING_CURRENCY" default:"cad"`
}

type TimeslotConfig struct {
	DefaultMaxOrders      int `envconfig:"TIMESLOT_DEFAULT_MAX_ORDERS" default:"20"`
	DefaultCutoffHours    int `envconfig:"TIMESLOT_DEFAULT_CUTOFF_HOURS" default:"2"`
	DefaultBufferCapacity int `envconfig:"TIMESLOT_DEFAULT_BUFFER_CAPACITY" default:"5"`
}

// PaymentConfig selects the payment gateway. Provider "fake" keeps everything in process.
type PaymentConfig struct {
	Provider         string        `envconfig:"PAYMENT_PROVIDER" default:"stripe"`
	SecretKey        string        `envconfig:"PAYMENT_SECRET_KEY" default:""`
	AuthorizeTimeout time.Duration `envconfig:"PAYMENT_AUTHORIZE_TIMEOUT" default:"10s"`
	VoidTimeout      time.Duration `envconfig:"PAYMENT_VOID_TIMEOUT" default:"10s"`

	WebhookSecret string `envconfig:"PAYMENT_WEBHOOK_SECRET" default:""`
	// Larger webhook bodies are answered with 413 before signature checks. Stripe event
	// payloads stay well under the default; raise it if expanded objects are enabled.
	WebhookMaxBytes int64 `envconfig:"PAYMENT_WEBHOOK_MAX_BYTES" default:"65536"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	DedupTTL time.Duration `envconfig:"REDIS_DEDUP_TTL" default:"48h"`
}

// KafkaConfig drives the outbox relay and the optional payment event consumer.
// Empty Brokers disables both.
type KafkaConfig struct {
	Brokers              []string      `envconfig:"KAFKA_BROKERS" default:""`
	OrderEventsTopic     string        `envconfig:"KAFKA_ORDER_EVENTS_TOPIC" default:"order.events"`
	PaymentEventsTopic   string        `envconfig:"KAFKA_PAYMENT_EVENTS_TOPIC" default:""`
	ConsumerGroup        string        `envconfig:"KAFKA_CONSUMER_GROUP" default:"order-service"`
	ConsumerWorkers      int           `envconfig:"KAFKA_CONSUMER_WORKERS" default:"4"`
	ConsumerMaxRetries   int           `envconfig:"KAFKA_CONSUMER_MAX_RETRIES" default:"5"`
	ConsumerRetryBackoff time.Duration `envconfig:"KAFKA_CONSUMER_RETRY_BACKOFF" default:"500ms"`
	ConsumerRestartDelay time.Duration `envconfig:"KAFKA_CONSUMER_RESTART_DELAY" default:"30s"`
	RelayInterval        time.Duration `envconfig:"KAFKA_RELAY_INTERVAL" default:"2s"`
	RelayBatchSize       int           `envconfig:"KAFKA_RELAY_BATCH_SIZE" default:"50"`
	RelayMaxAttempts     int           `envconfig:"KAFKA_RELAY_MAX_ATTEMPTS" default:"10"`
	ProducerName         string        `envconfig:"KAFKA_PRODUCER_NAME" default:"order-service"`
	PublishWriteTimeout  time.Duration `envconfig:"KAFKA_PUBLISH_WRITE_TIMEOUT" default:"5s"`
}

func (c *KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
			MinConns: 1,

			ConnectAttempts:   1,
			ConnectRetryDelay: 100 * time.Millisecond,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-testing-only",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Pricing: PricingConfig{
			StandardFee: "40",
			ExpressFee:  "80",
			SamedayFee:  "120",
			TaxRate:     "0.18",
			Currency:    "cad",
		},
		Timeslot: TimeslotConfig{
			DefaultMaxOrders:      20,
			DefaultCutoffHours:    2,
			DefaultBufferCapacity: 5,
		},
		Payment: PaymentConfig{
			Provider:         "fake",
			AuthorizeTimeout: 5 * time.Second,
			VoidTimeout:      5 * time.Second,
			WebhookMaxBytes:  64 << 10,
		},
		Redis: RedisConfig{
			Addr:     "localhost:16379",
			DedupTTL: time.Hour,
		},
		Kafka: KafkaConfig{
			OrderEventsTopic:     "order.events",
			ConsumerGroup:        "order-service-test",
			ConsumerWorkers:      1,
			ConsumerMaxRetries:   2,
			ConsumerRetryBackoff: 10 * time.Millisecond,
			ConsumerRestartDelay: time.Second,
			RelayInterval:        100 * time.Millisecond,
			RelayBatchSize:       10,
			RelayMaxAttempts:     3,
			ProducerName:         "order-service-test",
		},
	}
}
