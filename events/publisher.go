// Package events publishes domain events for downstream consumers
// (fulfilment, analytics). Publishing is best-effort: a failed publish is
// the caller's to log, never to fail the request on.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"marketplace/models"
)

// Publisher emits an event for every created order.
type Publisher interface {
	OrderCreated(ctx context.Context, order *models.Order) error
	Close() error
}

type orderCreatedEvent struct {
	EventID   string            `json:"eventId"`
	OrderID   string            `json:"orderId"`
	UserID    string            `json:"userId"`
	Products  []models.LineItem `json:"products"`
	CreatedAt time.Time         `json:"createdAt"`
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) OrderCreated(ctx context.Context, order *models.Order) error {
	event := orderCreatedEvent{
		EventID:   uuid.NewString(),
		OrderID:   order.ID.Hex(),
		UserID:    order.UserID.Hex(),
		Products:  order.Products,
		CreatedAt: order.CreatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		// order id keys the message so events for one order stay ordered
		Key:   []byte(order.ID.Hex()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order_created")},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(context.Context, *models.Order) error { return nil }

func (NopPublisher) Close() error { return nil }
