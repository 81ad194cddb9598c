package consumer

import (
	"context"

	kafkaDelivery "insight-srv/internal/task/delivery/kafka"
)

// ConsumeTaskDispatch starts consuming task dispatch messages
func (c *Consumer) ConsumeTaskDispatch(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupTaskDispatch)
	if err != nil {
		return err
	}
	c.taskDispatchGroup = group

	handler := &taskDispatchHandler{
		consumer: c,
	}

	// Consume until the context is cancelled
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicTaskDispatch}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Drain consumer group errors
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicTaskDispatch)

	return nil
}
