package main

import (
	"bakery-storefront/pkg/container"
	"bakery-storefront/pkg/logger"
)

// Config holds what the worker process needs beyond the container
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Concurrency   int
	HealthPort    string
}

func loadConfig(c *container.Container) *Config {
	cfg := &Config{
		RedisAddr:     c.Config.Redis.Host,
		RedisPassword: c.Config.Redis.Password,
		RedisDB:       c.Config.Redis.DB,
		Concurrency:   c.Config.Worker.Concurrency,
		HealthPort:    c.Config.Worker.HealthPort,
	}

	logger.Info("[Config] Worker configuration loaded", map[string]interface{}{
		"redis":       cfg.RedisAddr,
		"concurrency": cfg.Concurrency,
		"health_port": cfg.HealthPort,
	})

	return cfg
}
