//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"deedflow/internal/tracking/events"
	id "deedflow/pkg/domain"
	"deedflow/pkg/testutil/containers"
)

type KafkaPublisherSuite struct {
	suite.Suite
	broker    string
	publisher *events.KafkaPublisher
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.broker = mgr.GetRedpanda(s.T()).Broker

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher, err := events.NewKafka(context.Background(), []string{s.broker}, logger)
	s.Require().NoError(err)
	s.publisher = publisher
}

func (s *KafkaPublisherSuite) TearDownSuite() {
	if s.publisher != nil {
		s.publisher.Close()
	}
}

func (s *KafkaPublisherSuite) TestEmitDeliversToTopic() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	txID := id.TransactionID(uuid.New())
	want := events.Event{
		Type:            events.TypeStatusToggled,
		TransactionID:   txID,
		Pipeline:        id.PipelineDirectAddition,
		DocTypeKey:      "deed_plan",
		IsNotApplicable: true,
		OccurredAt:      time.Now().UTC().Truncate(time.Millisecond),
	}
	s.publisher.Emit(ctx, want)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics(events.Topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	var got events.Event
	for {
		fetches := consumer.PollFetches(ctx)
		s.Require().NoError(fetches.Err())

		found := false
		fetches.EachRecord(func(r *kgo.Record) {
			var e events.Event
			if err := json.Unmarshal(r.Value, &e); err != nil {
				return
			}
			if e.TransactionID == txID {
				got = e
				found = true
				s.Equal(txID.String(), string(r.Key), "records are keyed by transaction")
			}
		})
		if found {
			break
		}
	}

	s.Equal(want.Type, got.Type)
	s.Equal(want.DocTypeKey, got.DocTypeKey)
	s.True(got.IsNotApplicable)
}

// Creating the publisher twice must tolerate the topic already existing.
func (s *KafkaPublisherSuite) TestNewKafkaIdempotentTopicCreation() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	second, err := events.NewKafka(context.Background(), []string{s.broker}, logger)
	s.Require().NoError(err)
	second.Close()
}
