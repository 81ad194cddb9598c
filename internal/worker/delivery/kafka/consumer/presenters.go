package consumer

import (
	"insight-srv/internal/task"
	"insight-srv/internal/worker"
)

// toProcessTaskInput maps the Kafka message DTO to the usecase input.
func toProcessTaskInput(m task.DispatchMessage) worker.ProcessTaskInput {
	return worker.ProcessTaskInput{
		TaskID:    m.TaskID,
		Type:      m.Type,
		ChannelID: m.ChannelID,
		VideoIDs:  m.VideoIDs,
		MaxVideos: m.MaxVideos,
	}
}
