package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Cart    CartConfig
	Weather WeatherConfig
	Catalog CatalogConfig
	Events  EventsConfig
	Worker  WorkerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// =====================================================
// CART CONFIGURATION
// =====================================================

const (
	CartStoreRedis    = "redis"
	CartStorePostgres = "postgres"
)

type CartConfig struct {
	Store         string          // redis | postgres
	ShippingFee   decimal.Decimal // flat fee charged on non-empty carts
	SnapshotTTL   time.Duration   // redis only, 0 keeps snapshots forever
	CheckoutDelay time.Duration   // time before a simulated checkout clears the cart
	SessionTTL    time.Duration
	CookieSecure  bool
}

// =====================================================
// WEATHER CONFIGURATION
// =====================================================

type WeatherConfig struct {
	APIKey      string
	BaseURL     string // OpenWeather current weather API
	PostalURL   string // ViaCEP
	DefaultCity string
	Units       string
	Lang        string
	Timeout     time.Duration
	// SuggestionTTL bounds how long a session's last suggestion is kept.
	SuggestionTTL time.Duration
}

type CatalogConfig struct {
	// SpreadsheetPath replaces the built-in menu when set.
	SpreadsheetPath string
}

type EventsConfig struct {
	Brokers []string // empty disables kafka, activity is only logged
	Topic   string
}

type WorkerConfig struct {
	Concurrency int
	HealthPort  string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	shippingFee, err := decimal.NewFromString(getEnv("CART_SHIPPING_FEE", "15.00"))
	if err != nil {
		return nil, fmt.Errorf("invalid CART_SHIPPING_FEE: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Doce Sabor API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cart: CartConfig{
			Store:         strings.ToLower(getEnv("CART_STORE", CartStoreRedis)),
			ShippingFee:   shippingFee,
			SnapshotTTL:   getEnvDuration("CART_SNAPSHOT_TTL", 30*24*time.Hour),
			CheckoutDelay: getEnvDuration("CART_CHECKOUT_DELAY", 2*time.Second),
			SessionTTL:    getEnvDuration("SESSION_TTL", 30*24*time.Hour),
			CookieSecure:  getEnv("COOKIE_SECURE", "false") == "true",
		},
		Weather: WeatherConfig{
			APIKey:        getEnv("OPENWEATHER_API_KEY", ""),
			BaseURL:       getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
			PostalURL:     getEnv("VIACEP_BASE_URL", "https://viacep.com.br/ws"),
			DefaultCity:   getEnv("WEATHER_DEFAULT_CITY", "São Paulo"),
			Units:         getEnv("WEATHER_UNITS", "metric"),
			Lang:          getEnv("WEATHER_LANG", "pt_br"),
			Timeout:       getEnvDuration("WEATHER_TIMEOUT", 10*time.Second),
			SuggestionTTL: getEnvDuration("SUGGESTION_TTL", time.Hour),
		},
		Catalog: CatalogConfig{
			SpreadsheetPath: getEnv("CATALOG_FILE", ""),
		},
		Events: EventsConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_CART_TOPIC", "storefront.cart-activity"),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 5),
			HealthPort:  getEnv("WORKER_HEALTH_PORT", "9999"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the combinations Load cannot catch while parsing.
func (c *Config) Validate() error {
	switch c.Cart.Store {
	case CartStoreRedis, CartStorePostgres:
	default:
		return fmt.Errorf("CART_STORE must be %q or %q, got %q", CartStoreRedis, CartStorePostgres, c.Cart.Store)
	}

	if c.Cart.ShippingFee.IsNegative() {
		return fmt.Errorf("CART_SHIPPING_FEE must not be negative")
	}
	if c.Cart.CheckoutDelay < 0 {
		return fmt.Errorf("CART_CHECKOUT_DELAY must not be negative")
	}
	if strings.TrimSpace(c.Weather.DefaultCity) == "" {
		return fmt.Errorf("WEATHER_DEFAULT_CITY must not be empty")
	}
	if c.Worker.Concurrency <= 0 {
		return fmt.Errorf("WORKER_CONCURRENCY must be positive")
	}
	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT must be positive")
	}

	if c.App.Environment == "production" && c.Weather.APIKey == "" {
		return fmt.Errorf("OPENWEATHER_API_KEY must be set in production")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
