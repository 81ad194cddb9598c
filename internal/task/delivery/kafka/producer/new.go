package producer

import (
	"insight-srv/internal/task"
	"insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
)

type implProducer struct {
	producer kafka.IProducer
	l        log.Logger
}

// New creates a task dispatch producer backed by Kafka.
func New(producer kafka.IProducer, l log.Logger) task.Producer {
	return &implProducer{
		producer: producer,
		l:        l,
	}
}
