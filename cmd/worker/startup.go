// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bakery-storefront/pkg/container"
	"bakery-storefront/pkg/logger"
)

type healthCheck struct {
	name string
	fn   func(ctx context.Context) error
}

// HealthChecker performs startup health checks
type HealthChecker struct {
	c *container.Container
}

// startServices performs health checks and starts the probe endpoint
func startServices(c *container.Container, cfg *Config) error {
	logger.Info("🚀 Storefront worker starting", nil)

	checker := &HealthChecker{c: c}
	if err := checker.checkAll(); err != nil {
		return err
	}

	go startHealthCheckServer(checker, cfg.HealthPort)
	return nil
}

func (h *HealthChecker) checkAll() error {
	checks := []healthCheck{
		{"Redis Connection", h.c.Redis.HealthCheck},
	}
	if h.c.DB != nil {
		checks = append(checks, healthCheck{"Cart Database", h.c.DB.HealthCheck})
	}

	for _, check := range checks {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := check.fn(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		logger.Info("✓ "+check.name+": OK", nil)
	}
	return nil
}

func startHealthCheckServer(checker *HealthChecker, port string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"UP","service":"storefront-worker"}`))
	})
	// Kubernetes readiness probe
	mux.HandleFunc("/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := checker.checkAll(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = fmt.Fprintf(w, `{"status":"NOT_READY","error":%q}`, err.Error())
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"READY"}`))
	})

	logger.Info("[Health] Starting health check server", map[string]interface{}{"port": port})
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logger.Error("[Health] Failed to start", err)
	}
}
