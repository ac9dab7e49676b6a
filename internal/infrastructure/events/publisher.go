package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cartModel "bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/pkg/logger"

	"github.com/twmb/franz-go/pkg/kgo"
)

// ProducerClient is the subset of *kgo.Client used by KafkaPublisher.
type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

// KafkaPublisher writes cart activity as JSON records keyed by storage key,
// so every cart's events land on one partition in order.
type KafkaPublisher struct {
	client  ProducerClient
	timeout time.Duration
}

func NewKafkaPublisher(client ProducerClient) *KafkaPublisher {
	return &KafkaPublisher{client: client, timeout: 3 * time.Second}
}

// NewKafkaClient connects a producer to seedBrokers with topic as default.
func NewKafkaClient(ctx context.Context, seedBrokers []string, topic string) (*kgo.Client, error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(seedBrokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	if err := cl.Ping(ctx); err != nil {
		cl.Close()
		return nil, fmt.Errorf("failed to reach kafka: %w", err)
	}
	return cl, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, activity cartModel.Activity) error {
	value, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("failed to encode activity: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	record := &kgo.Record{
		Key:   []byte(activity.StorageKey),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "type", Value: []byte(activity.Type)},
		},
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("failed to produce %s: %w", activity.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() {
	p.client.Close()
}

// LogPublisher is used when no brokers are configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, activity cartModel.Activity) error {
	logger.Info("Cart activity", map[string]interface{}{
		"type":        string(activity.Type),
		"storage_key": activity.StorageKey,
		"product_id":  activity.ProductID,
		"quantity":    activity.Quantity,
		"item_count":  activity.ItemCount,
	})
	return nil
}
