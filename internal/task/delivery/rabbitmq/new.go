package rabbitmq

import (
	"insight-srv/internal/task"
	"insight-srv/pkg/log"
	"insight-srv/pkg/rabbitmq"
)

// DefaultExchange is the topic exchange progress events are published to.
const DefaultExchange = "insight.tasks"

type implNotifier struct {
	conn     rabbitmq.IRabbitMQ
	exchange string
	l        log.Logger
}

// New creates a task progress notifier publishing to a topic exchange.
// The exchange is declared on first use.
func New(conn rabbitmq.IRabbitMQ, exchange string, l log.Logger) (task.Notifier, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(rabbitmq.ExchangeArgs{
		Name:    exchange,
		Type:    rabbitmq.ExchangeTypeTopic,
		Durable: true,
	}); err != nil {
		return nil, err
	}

	return &implNotifier{
		conn:     conn,
		exchange: exchange,
		l:        l,
	}, nil
}
