package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"adframe/internal/core/domain"
)

// Message is the wire form of a recorded impression or click.
type Message struct {
	ID         int64     `json:"id"`
	Kind       string    `json:"kind"`
	Key        string    `json:"key"`
	CampaignID string    `json:"campaignId"`
	FrameID    string    `json:"frameId"`
	Cost       int64     `json:"costMicros"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Publisher writes activity events to one topic, partitioned by campaign so
// a consumer sees each campaign's events in order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns a publisher for topic on brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka publisher requires a topic")
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, ev domain.Event) error {
	msg, err := encode(ev)
	if err != nil {
		return err
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s %s: %w", ev.Kind, ev.Key, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func encode(ev domain.Event) (kafka.Message, error) {
	value, err := json.Marshal(Message{
		ID:         ev.ID,
		Kind:       string(ev.Kind),
		Key:        ev.Key,
		CampaignID: ev.CampaignID,
		FrameID:    ev.FrameID,
		Cost:       int64(ev.Cost),
		CreatedAt:  ev.CreatedAt.UTC(),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(ev.CampaignID),
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(ev.Kind)},
		},
	}, nil
}
