package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// HoldingWriter defines the ledger operations the consumer needs
type HoldingWriter interface {
	Add(symbol string, quantity, buyPrice decimal.Decimal) (*models.Holding, error)
}

// Consumer ingests holding events published by external trade pipelines
// into the ledger, so positions entered outside the HTTP boundary still
// show up in portfolio valuation.
type Consumer struct {
	reader *kafka.Reader
	store  HoldingWriter
}

// NewConsumer creates a new Kafka consumer for holding events
func NewConsumer(brokers []string, topic, groupID string, store HoldingWriter) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		MaxWait:        1 * time.Second,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: time.Second,
	})

	return &Consumer{
		reader: reader,
		store:  store,
	}
}

// Start begins consuming messages from Kafka
func (c *Consumer) Start(ctx context.Context) error {
	log.Printf("Starting Kafka consumer for topic: %s", c.reader.Config().Topic)

	for {
		select {
		case <-ctx.Done():
			log.Println("Kafka consumer shutting down...")
			return c.reader.Close()
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil // Context cancelled, normal shutdown
				}
				log.Printf("Error reading message: %v", err)
				continue
			}

			if err := c.processMessage(msg); err != nil {
				log.Printf("Error processing message: %v", err)
				// Continue processing other messages
			}
		}
	}
}

// processMessage handles a single Kafka message
func (c *Consumer) processMessage(msg kafka.Message) error {
	log.Printf("Received message from partition %d offset %d: key=%s",
		msg.Partition, msg.Offset, string(msg.Key))

	var event models.HoldingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal holding event: %w", err)
	}

	if event.EventType != models.EventHoldingAdded {
		log.Printf("Ignoring event type: %s", event.EventType)
		return nil
	}
	if event.Holding == nil {
		return fmt.Errorf("holding event for %s has no holding payload", event.Symbol)
	}

	created, err := c.store.Add(event.Holding.Symbol, event.Holding.Quantity, event.Holding.BuyPrice)
	if err != nil {
		return fmt.Errorf("failed to store holding for %s: %w", event.Symbol, err)
	}

	log.Printf("Ingested holding %d for %s", created.ID, created.Symbol)
	return nil
}
