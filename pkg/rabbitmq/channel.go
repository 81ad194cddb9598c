package rabbitmq

import (
	"context"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	return c.ch.ExchangeDeclare(exc.spread())
}

func (c *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	return c.ch.QueueDeclare(queue.spread())
}

func (c *channelImpl) QueueBind(queueBind QueueBindArgs) error {
	return c.ch.QueueBind(queueBind.spread())
}

func (c *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return c.ch.PublishWithContext(publish.spread(ctx))
}

func (c *channelImpl) Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error) {
	return c.ch.Consume(consume.spread())
}

func (c *channelImpl) Close() error {
	return c.ch.Close()
}

func (c *channelImpl) listenNotifyReconnect() {
	reconnNoti := make(chan bool)
	c.conn.notifyReconnect(reconnNoti)

	go func() {
		for {
			<-reconnNoti

			log.Println("Retry creating RabbitMQ channel...")
			channel, err := c.conn.channel()
			if err != nil {
				log.Printf("RabbitMQ channel failed: %v\n", err)
				continue
			}
			c.Close()
			c.ch = channel

			for _, reconnect := range c.reconnects {
				reconnect <- true
			}
		}
	}()
}

func (c *channelImpl) NotifyReconnect(receiver chan bool) <-chan bool {
	c.reconnects = append(c.reconnects, receiver)
	return receiver
}
