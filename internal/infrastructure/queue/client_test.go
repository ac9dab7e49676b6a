package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	cartModel "bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	task *asynq.Task
	opts []asynq.Option
	err  error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	r.task = task
	r.opts = opts
	if r.err != nil {
		return nil, r.err
	}
	return &asynq.TaskInfo{ID: "t"}, nil
}

func optionValue(opts []asynq.Option, typ asynq.OptionType) interface{} {
	for _, o := range opts {
		if o.Type() == typ {
			return o.Value()
		}
	}
	return nil
}

func TestScheduleCheckoutCompletion(t *testing.T) {
	rec := &recordingEnqueuer{}
	c := NewClient(rec)

	payload := cartModel.CompleteCheckoutPayload{CheckoutID: "chk-1", StorageKey: "cart:user:maria", ItemCount: 2}
	require.NoError(t, c.ScheduleCheckoutCompletion(context.Background(), payload, 2*time.Second))

	require.NotNil(t, rec.task)
	assert.Equal(t, shared.TypeCompleteCheckout, rec.task.Type())

	var got cartModel.CompleteCheckoutPayload
	require.NoError(t, json.Unmarshal(rec.task.Payload(), &got))
	assert.Equal(t, payload.StorageKey, got.StorageKey)

	assert.Equal(t, 2*time.Second, optionValue(rec.opts, asynq.ProcessInOpt))
	assert.Equal(t, "chk-1", optionValue(rec.opts, asynq.TaskIDOpt))
	assert.Equal(t, shared.QueueCart, optionValue(rec.opts, asynq.QueueOpt))
}

func TestScheduleCheckoutCompletion_Error(t *testing.T) {
	c := NewClient(&recordingEnqueuer{err: errors.New("redis down")})

	err := c.ScheduleCheckoutCompletion(context.Background(), cartModel.CompleteCheckoutPayload{CheckoutID: "x"}, time.Second)
	assert.Error(t, err)
}
