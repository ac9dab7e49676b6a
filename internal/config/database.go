package config

import (
	"fmt"
	"strconv"
	"time"

	"bakery-storefront/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the postgres settings used when CART_STORE=postgres.
// Unlike Load it fails on malformed numbers so a typo never silently
// falls back to the defaults.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	ints := map[string]int{
		"DB_PORT":            5432,
		"DB_MAX_CONNECTIONS": 10,
		"DB_MIN_CONNECTIONS": 2,
		"DB_MAX_RETRIES":     5,
	}
	for key, def := range ints {
		raw := getEnv(key, strconv.Itoa(def))
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		ints[key] = v
	}

	durations := map[string]time.Duration{
		"DB_MAX_CONN_LIFETIME":   5 * time.Minute,
		"DB_MAX_CONN_IDLE_TIME":  time.Minute,
		"DB_HEALTH_CHECK_PERIOD": time.Minute,
		"DB_RETRY_DELAY":         time.Second,
		"DB_CONNECT_TIMEOUT":     10 * time.Second,
	}
	for key, def := range durations {
		raw := getEnv(key, def.String())
		v, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		durations[key] = v
	}

	return &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              ints["DB_PORT"],
		Username:          getEnv("DB_USER", "storefront"),
		Password:          getEnv("DB_PASSWORD", "secret"),
		DBName:            getEnv("DB_NAME", "storefront_dev"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(ints["DB_MAX_CONNECTIONS"]),
		MinConns:          int32(ints["DB_MIN_CONNECTIONS"]),
		MaxConnLifetime:   durations["DB_MAX_CONN_LIFETIME"],
		MaxConnIdleTime:   durations["DB_MAX_CONN_IDLE_TIME"],
		HealthCheckPeriod: durations["DB_HEALTH_CHECK_PERIOD"],
		MaxRetries:        ints["DB_MAX_RETRIES"],
		RetryDelay:        durations["DB_RETRY_DELAY"],
		ConnectTimeout:    durations["DB_CONNECT_TIMEOUT"],
	}, nil
}
