package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"postboard/internal/model"
	"postboard/pkg/logger"

	kafkago "github.com/segmentio/kafka-go"
)

const batchTimeout = 10 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// CommentPublisher writes comment events to a single topic keyed by comment id,
// so every event of one comment lands on the same partition.
type CommentPublisher struct {
	writer messageWriter
	topic  string
}

func NewCommentPublisher(brokers []string, topic string) (*CommentPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka publisher requires a topic")
	}
	return &CommentPublisher{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			RequiredAcks:           kafkago.RequireAll,
			Balancer:               &kafkago.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           batchTimeout,
			Async:                  true,
			Completion:             logDeliveryFailure,
		},
		topic: topic,
	}, nil
}

func (p *CommentPublisher) Publish(ctx context.Context, ev model.CommentEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal comment event: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(ev.Comment.ID, 10)),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
		},
		Time: time.Now().UTC(),
	})
}

// logDeliveryFailure reports async writes the broker never acknowledged.
func logDeliveryFailure(msgs []kafkago.Message, err error) {
	if err == nil {
		return
	}
	keys := make([]string, 0, len(msgs))
	for _, m := range msgs {
		keys = append(keys, string(m.Key))
	}
	logger.FromContext(context.Background()).Error("kafka comment event delivery", "comment_ids", keys, "error", err)
}

func (p *CommentPublisher) Close() error {
	return p.writer.Close()
}
