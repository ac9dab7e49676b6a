// cmd/worker/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"

	"bakery-storefront/pkg/container"
	"bakery-storefront/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	envErr := godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))
	if envErr != nil {
		logger.Info("[Config] No .env file found, using system environment variables", nil)
	}

	// Initialize container
	c, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("[Container] Failed to initialize")
	}
	defer c.Cleanup()

	cfg := loadConfig(c)

	handlers := initializeHandlers(c)

	srv := setupAsynqServer(cfg, handlers)

	if err := startServices(c, cfg); err != nil {
		log.Fatal().Err(err).Msg("[Startup] Health check failed")
	}

	waitForShutdown(srv)
}

func waitForShutdown(srv *asynqServer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("[Shutdown] Gracefully stopping...", nil)
	srv.Shutdown()
	logger.Info("[Shutdown] ✓ Stopped", nil)
}
