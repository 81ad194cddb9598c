package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type taskDispatchHandler struct {
	consumer *Consumer
}

func (h *taskDispatchHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *taskDispatchHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *taskDispatchHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleTaskDispatchMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "worker.delivery.kafka.consumer.ConsumeTaskDispatch: Failed to process dispatch message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
