package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache `validate:"required"`
	Redis Redis

	JWT JWT `validate:"required"`

	Checkout Checkout
	Payments Payments `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`

	CallbackTopic string `validate:"required_if=Enabled true"`
	EventsTopic   string `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	AutoMigrate bool
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Backend  string        `validate:"required,oneof=memory redis"`
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type JWT struct {
	Secret string        `validate:"required,min=16"`
	Issuer string        `validate:"required"`
	TTL    time.Duration `validate:"gt=0"`
}

type Checkout struct {
	ShippingFee           decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

type Payments struct {
	BaseURL string `validate:"required,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Enabled:       envBool("KAFKA_ENABLED", false),
			GroupID:       env("KAFKA_GROUP_ID", "pharmacy-checkout"),
			Brokers:       strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			CallbackTopic: env("KAFKA_CALLBACK_TOPIC", "payment-callbacks"),
			EventsTopic:   env("KAFKA_EVENTS_TOPIC", "order-events"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "pharmacy"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			AutoMigrate: envBool("POSTGRES_AUTO_MIGRATE", false),
		},

		Cache: Cache{
			Backend:  env("CACHE_BACKEND", "memory"),
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		JWT: JWT{
			Secret: env("JWT_SECRET", ""),
			Issuer: env("JWT_ISSUER", "herbal-pharmacy"),
			TTL:    envDuration("JWT_TTL", 24*time.Hour),
		},

		Checkout: Checkout{
			ShippingFee:           envDecimal("CHECKOUT_SHIPPING_FEE", decimal.NewFromInt(30000)),
			FreeShippingThreshold: envDecimal("CHECKOUT_FREE_SHIPPING_THRESHOLD", decimal.Zero),
		},

		Payments: Payments{
			BaseURL: env("API_BASE_URL", "http://localhost:8080"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
