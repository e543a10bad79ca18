package kafka

import (
	"errors"

	"github.com/IBM/sarama"
)

var (
	ErrNoBrokers     = errors.New("kafka: at least one broker is required")
	ErrTopicRequired = errors.New("kafka: topic is required")
)

// IProducer defines the interface for Kafka producer.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
	HealthCheck() error
}

// NewProducer creates a new Kafka producer. Returns the interface.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrTopicRequired
	}
	return newProducerImpl(cfg)
}

// NewProducerFromSarama wraps an existing sync producer.
func NewProducerFromSarama(p sarama.SyncProducer, topic string) IProducer {
	return &producerImpl{producer: p, topic: topic}
}
