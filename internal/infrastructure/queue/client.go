package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cartModel "bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/internal/shared"

	"github.com/hibiken/asynq"
)

// Enqueuer is the subset of *asynq.Client used here.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Client schedules background work for the API process.
type Client struct {
	enqueuer Enqueuer
}

func NewClient(enqueuer Enqueuer) *Client {
	return &Client{enqueuer: enqueuer}
}

// NewRedisClient connects an asynq client to the same redis as the cache.
func NewRedisClient(addr, password string, db int) (*Client, *asynq.Client) {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password, DB: db})
	return NewClient(c), c
}

// ScheduleCheckoutCompletion enqueues the cart clearing of a simulated
// checkout to run after delay. The checkout id doubles as task id so a
// retried request cannot schedule it twice.
func (c *Client) ScheduleCheckoutCompletion(ctx context.Context, payload cartModel.CompleteCheckoutPayload, delay time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal checkout payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeCompleteCheckout, data)
	_, err = c.enqueuer.EnqueueContext(
		ctx,
		task,
		asynq.Queue(shared.QueueCart),
		asynq.ProcessIn(delay),
		asynq.TaskID(payload.CheckoutID),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", shared.TypeCompleteCheckout, err)
	}
	return nil
}
