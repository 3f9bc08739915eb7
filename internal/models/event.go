package models

import "time"

// Event type constants
const (
	EventHoldingAdded = "HOLDING_ADDED"
)

// HoldingEvent represents a Kafka event for portfolio changes
type HoldingEvent struct {
	EventType string    `json:"event_type"`
	Holding   *Holding  `json:"holding,omitempty"`
	Symbol    string    `json:"symbol"`
	Timestamp time.Time `json:"timestamp"`
}
