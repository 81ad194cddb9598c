package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"insight-srv/internal/task"
)

// PublishTaskDispatch publishes a task dispatch message keyed by task ID,
// so messages of the same task land on the same partition.
func (p *implProducer) PublishTaskDispatch(ctx context.Context, msg task.DispatchMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal task dispatch: %w", err)
	}

	if err := p.producer.Publish([]byte(msg.TaskID), body); err != nil {
		return fmt.Errorf("failed to publish task dispatch: %w", err)
	}

	p.l.Infof(ctx, "Published task dispatch for task %s: %s", msg.TaskID, msg.Type)
	return nil
}
