package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Topic is the tracking event stream.
const Topic = "deedflow.tracking"

// KafkaPublisher produces events to the tracking topic.
type KafkaPublisher struct {
	client *kgo.Client
	logger *slog.Logger
}

// NewKafka connects to the brokers and ensures the topic exists.
func NewKafka(ctx context.Context, brokers []string, logger *slog.Logger) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, 1, 1, nil, Topic)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("ensure topic %s: %w", Topic, err)
	}
	for _, res := range resp.Sorted() {
		// An existing topic is fine; anything else is a real setup failure.
		if res.Err != nil && !errors.Is(res.Err, kerr.TopicAlreadyExists) {
			client.Close()
			return nil, fmt.Errorf("create topic %s: %w", res.Topic, res.Err)
		}
	}
	return &KafkaPublisher{client: client, logger: logger}, nil
}

// Emit produces one event asynchronously. Failures are logged, never
// returned: event delivery must not block or fail the write path.
func (p *KafkaPublisher) Emit(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "marshal tracking event", "error", err, "type", event.Type)
		return
	}
	record := &kgo.Record{
		Topic: Topic,
		Key:   []byte(event.TransactionID.String()),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(r *kgo.Record, err error) {
		if err != nil {
			p.logger.Error("produce tracking event",
				"error", err,
				"type", event.Type,
				"transaction_id", event.TransactionID,
			)
		}
	})
}

// Close flushes outstanding produces and releases the client.
func (p *KafkaPublisher) Close() {
	_ = p.client.Flush(context.Background())
	p.client.Close()
}

// Noop discards events. Used when no brokers are configured and in tests.
type Noop struct{}

func (Noop) Emit(ctx context.Context, event Event) {}
