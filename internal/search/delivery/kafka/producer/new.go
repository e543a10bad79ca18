package producer

import (
	"search-srv/internal/search"
	pkgKafka "search-srv/pkg/kafka"
	"search-srv/pkg/log"
)

// Producer interface for search domain
type Producer interface {
	search.ClickPublisher
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new click-through producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
