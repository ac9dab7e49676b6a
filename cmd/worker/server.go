package main

import (
	"context"

	"bakery-storefront/internal/shared"
	"bakery-storefront/pkg/logger"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// asynqServer wraps asynq.Server with startup and shutdown logging
type asynqServer struct {
	*asynq.Server
}

func setupAsynqServer(cfg *Config, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB},
		asynq.Config{
			Queues: map[string]int{
				shared.QueueCart: 10,
			},
			Concurrency: cfg.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				log.Error().
					Err(err).
					Str("type", task.Type()).
					Int("retry", retried).
					Int("max_retry", maxRetry).
					Msg("[Asynq] ❌ Task failed")
			}),
		},
	)

	go func() {
		logger.Info("[Worker] Starting...", map[string]interface{}{"queues": []string{shared.QueueCart}})
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("[Worker] Failed")
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks; asynq bounds the wait by its
// ShutdownTimeout (8s by default).
func (s *asynqServer) Shutdown() {
	logger.Info("[Worker] Shutting down...", nil)
	s.Server.Shutdown()
	logger.Info("[Worker] ✓ Gracefully stopped", nil)
}
