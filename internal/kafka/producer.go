package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/segmentio/kafka-go"
)

// Producer handles publishing portfolio events to Kafka
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishHoldingAdded publishes a holding added event
func (p *Producer) PublishHoldingAdded(ctx context.Context, holding *models.Holding) error {
	event := models.HoldingEvent{
		EventType: models.EventHoldingAdded,
		Holding:   holding,
		Symbol:    holding.Symbol,
		Timestamp: time.Now(),
	}
	return p.publish(ctx, holding.Symbol, event)
}

func (p *Producer) publish(ctx context.Context, key string, event models.HoldingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
