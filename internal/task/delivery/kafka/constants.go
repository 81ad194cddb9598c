package kafka

// Kafka topics
const (
	// TopicTaskDispatch carries task dispatch messages from the API to
	// the worker pool.
	TopicTaskDispatch = "insight.task.dispatch"
)

// Consumer group IDs
const (
	ConsumerGroupTaskDispatch = "insight-worker"
)
