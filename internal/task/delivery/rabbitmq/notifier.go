package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"insight-srv/internal/task"
	"insight-srv/pkg/rabbitmq"
)

// NotifyProgress publishes a progress event with routing key
// "task.<type>.<status>", e.g. "task.channel_parse.running".
func (n *implNotifier) NotifyProgress(ctx context.Context, event task.ProgressEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal progress event: %w", err)
	}

	ch, err := n.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	routingKey := fmt.Sprintf("task.%s.%s", event.Type, strings.ToLower(event.Status))
	if err := ch.Publish(ctx, rabbitmq.PublishArgs{
		Exchange:   n.exchange,
		RoutingKey: routingKey,
		Msg: rabbitmq.Publishing{
			ContentType: rabbitmq.ContentTypeJSON,
			Body:        body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish progress event: %w", err)
	}

	n.l.Debugf(ctx, "Published progress event for task %s: %s %d%%", event.TaskID, event.Status, event.Progress)
	return nil
}
