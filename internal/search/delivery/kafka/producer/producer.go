package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"search-srv/internal/search"
	kafkaDelivery "search-srv/internal/search/delivery/kafka"
)

// PublishClick publishes a click-through event keyed by query, so clicks of one query stay ordered
func (p *implProducer) PublishClick(ctx context.Context, event search.ClickEvent) error {
	// Convert to message DTO
	msg := kafkaDelivery.ClickMessage{
		EventID:    event.EventID,
		Query:      event.Query,
		ResultID:   event.ResultID,
		ResultType: string(event.ResultType),
		Position:   event.Position,
		UserID:     event.UserID,
		ClickedAt:  event.ClickedAt.UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal click event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.Query), body); err != nil {
		return fmt.Errorf("failed to publish click event: %w", err)
	}

	p.l.Debugf(ctx, "search.delivery.kafka.producer.PublishClick: published %s for query %q", event.EventID, event.Query)
	return nil
}
