package kafka

import (
	"time"
)

// ClickMessage - Kafka message cho search.click
type ClickMessage struct {
	EventID    string    `json:"event_id"`
	Query      string    `json:"query"`
	ResultID   string    `json:"result_id"`
	ResultType string    `json:"result_type"`
	Position   int       `json:"position"`
	UserID     string    `json:"user_id,omitempty"`
	ClickedAt  time.Time `json:"clicked_at"`
}
