package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"insight-srv/internal/task"
)

// handleTaskDispatchMessage unmarshals one dispatch message and delegates
// to the usecase. Malformed messages are skipped, not retried.
func (c *Consumer) handleTaskDispatchMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "worker.delivery.kafka.consumer.handleTaskDispatchMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message task.DispatchMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "worker.delivery.kafka.consumer.handleTaskDispatchMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if message.TaskID == "" || message.Type == "" {
		c.l.Warnf(ctx, "worker.delivery.kafka.consumer.handleTaskDispatchMessage: Invalid message: missing required fields (skipping)")
		return nil
	}

	input := toProcessTaskInput(message)

	output, err := c.uc.ProcessTask(ctx, input)
	if err != nil {
		c.l.Errorf(ctx, "worker.delivery.kafka.consumer.handleTaskDispatchMessage: usecase ProcessTask failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "worker.delivery.kafka.consumer.handleTaskDispatchMessage: Successfully processed task %s: total=%d, processed=%d, failed=%d",
		message.TaskID, output.TotalItems, output.ProcessedItems, output.FailedItems)
	return nil
}
