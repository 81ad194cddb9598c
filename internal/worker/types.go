package worker

type ProcessTaskInput struct {
	TaskID    string
	Type      string
	ChannelID string
	VideoIDs  []string
	MaxVideos int64
}

type ProcessTaskOutput struct {
	TotalItems     int
	ProcessedItems int
	FailedItems    int
}
