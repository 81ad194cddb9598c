package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"insight-srv/internal/analysis"
	channelRepo "insight-srv/internal/channel/repository"
	"insight-srv/internal/model"
	"insight-srv/internal/task"
	videoRepo "insight-srv/internal/video/repository"
	"insight-srv/internal/worker"
	"insight-srv/pkg/log"
	pkgYouTube "insight-srv/pkg/youtube"
)

type fakeTaskUC struct {
	mu        sync.Mutex
	running   []string
	completed []task.MarkCompletedInput
	failed    map[string]string
	progress  []task.UpdateProgressInput
}

func newFakeTaskUC() *fakeTaskUC {
	return &fakeTaskUC{failed: make(map[string]string)}
}

func (f *fakeTaskUC) Create(context.Context, task.CreateInput) (task.CreateOutput, error) {
	return task.CreateOutput{}, nil
}

func (f *fakeTaskUC) Get(context.Context, task.GetInput) (task.GetOutput, error) {
	return task.GetOutput{}, nil
}

func (f *fakeTaskUC) List(context.Context, task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}

func (f *fakeTaskUC) Cancel(context.Context, task.CancelInput) (task.CancelOutput, error) {
	return task.CancelOutput{}, nil
}

func (f *fakeTaskUC) MarkRunning(_ context.Context, taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = append(f.running, taskID)
	return nil
}

func (f *fakeTaskUC) UpdateProgress(_ context.Context, input task.UpdateProgressInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress = append(f.progress, input)
	return nil
}

func (f *fakeTaskUC) MarkCompleted(_ context.Context, input task.MarkCompletedInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, input)
	return nil
}

func (f *fakeTaskUC) MarkFailed(_ context.Context, taskID, errorMessage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[taskID] = errorMessage
	return nil
}

type fakeChannelRepo struct {
	mu       sync.Mutex
	upserted []channelRepo.UpsertChannelOptions
}

func (f *fakeChannelRepo) UpsertChannel(_ context.Context, opts channelRepo.UpsertChannelOptions) (*model.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, opts)
	return &model.Channel{ID: opts.ID, Title: opts.Title}, nil
}

func (f *fakeChannelRepo) GetChannelByID(context.Context, string) (*model.Channel, error) {
	return nil, channelRepo.ErrChannelNotFound
}

func (f *fakeChannelRepo) ListChannels(context.Context, channelRepo.ListChannelsOptions) ([]*model.Channel, error) {
	return nil, nil
}

func (f *fakeChannelRepo) CountChannels(context.Context) (int64, error) {
	return 0, nil
}

type fakeVideoRepo struct {
	mu       sync.Mutex
	videos   map[string]*model.Video
	upserted []videoRepo.UpsertVideoOptions
	analyses map[string][]byte
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{
		videos:   make(map[string]*model.Video),
		analyses: make(map[string][]byte),
	}
}

func (f *fakeVideoRepo) UpsertVideo(_ context.Context, opts videoRepo.UpsertVideoOptions) (*model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, opts)
	v := &model.Video{
		ID:              opts.ID,
		ChannelID:       opts.ChannelID,
		Title:           opts.Title,
		Description:     opts.Description,
		DurationSeconds: opts.DurationSeconds,
		ViewCount:       opts.ViewCount,
		LikeCount:       opts.LikeCount,
		CommentCount:    opts.CommentCount,
		PublishedAt:     opts.PublishedAt,
	}
	f.videos[v.ID] = v
	return v, nil
}

func (f *fakeVideoRepo) GetVideoByID(_ context.Context, id string) (*model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.videos[id]
	if !ok {
		return nil, videoRepo.ErrVideoNotFound
	}
	return v, nil
}

func (f *fakeVideoRepo) ListVideos(context.Context, videoRepo.ListVideosOptions) ([]*model.Video, error) {
	return nil, nil
}

func (f *fakeVideoRepo) CountVideos(context.Context, videoRepo.ListVideosOptions) (int64, error) {
	return 0, nil
}

func (f *fakeVideoRepo) UpdateAnalysis(_ context.Context, opts videoRepo.UpdateAnalysisOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.analyses[opts.VideoID] = opts.Analysis
	return nil
}

func (f *fakeVideoRepo) ListVideosByChannel(context.Context, string) ([]*model.Video, error) {
	return nil, nil
}

type fakeAnalysisUC struct {
	err error
}

func (f *fakeAnalysisUC) Analyze(_ context.Context, input analysis.AnalyzeInput) (analysis.AnalysisResult, error) {
	if f.err != nil {
		return analysis.AnalysisResult{}, f.err
	}
	return analysis.AnalysisResult{
		VideoID:    input.VideoID,
		AnalyzedAt: time.Now(),
	}, nil
}

type fakeYouTube struct {
	channel *pkgYouTube.Channel
	uploads []pkgYouTube.Video
	byID    map[string]pkgYouTube.Video
}

func (f *fakeYouTube) ResolveChannelID(_ context.Context, ref string) (string, error) {
	if f.channel == nil {
		return "", pkgYouTube.ErrChannelNotFound
	}
	return f.channel.ID, nil
}

func (f *fakeYouTube) GetChannel(_ context.Context, channelID string) (*pkgYouTube.Channel, error) {
	if f.channel == nil || f.channel.ID != channelID {
		return nil, pkgYouTube.ErrChannelNotFound
	}
	return f.channel, nil
}

func (f *fakeYouTube) ListChannelVideos(_ context.Context, channelID string, maxResults int64) ([]pkgYouTube.Video, error) {
	if int64(len(f.uploads)) > maxResults {
		return f.uploads[:maxResults], nil
	}
	return f.uploads, nil
}

func (f *fakeYouTube) GetVideos(_ context.Context, videoIDs []string) ([]pkgYouTube.Video, error) {
	var out []pkgYouTube.Video
	for _, id := range videoIDs {
		if v, ok := f.byID[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func ytVideo(id string, views int64) pkgYouTube.Video {
	return pkgYouTube.Video{
		ID:          id,
		ChannelID:   "UC1",
		Title:       "Video " + id,
		Duration:    5 * time.Minute,
		ViewCount:   views,
		LikeCount:   views / 20,
		PublishedAt: time.Now().Add(-48 * time.Hour),
	}
}

func TestProcessTaskUnknownType(t *testing.T) {
	taskUC := newFakeTaskUC()
	uc := New(taskUC, &fakeChannelRepo{}, newFakeVideoRepo(), &fakeAnalysisUC{}, &fakeYouTube{}, log.NewNop())

	_, err := uc.ProcessTask(context.Background(), worker.ProcessTaskInput{
		TaskID: "t1",
		Type:   "reindex",
	})
	if !errors.Is(err, worker.ErrUnknownTaskType) {
		t.Fatalf("got %v, want %v", err, worker.ErrUnknownTaskType)
	}

	if _, ok := taskUC.failed["t1"]; !ok {
		t.Error("expected the task to be marked failed")
	}
}

func TestProcessChannelParse(t *testing.T) {
	taskUC := newFakeTaskUC()
	channels := &fakeChannelRepo{}
	videos := newFakeVideoRepo()
	yt := &fakeYouTube{
		channel: &pkgYouTube.Channel{ID: "UC1", Title: "Test Channel", SubscriberCount: 1000},
		uploads: []pkgYouTube.Video{ytVideo("v1", 5000), ytVideo("v2", 12000), ytVideo("v3", 300)},
		byID: map[string]pkgYouTube.Video{
			"v1": ytVideo("v1", 5000),
			"v2": ytVideo("v2", 12000),
			"v3": ytVideo("v3", 300),
		},
	}
	uc := New(taskUC, channels, videos, &fakeAnalysisUC{}, yt, log.NewNop())

	out, err := uc.ProcessTask(context.Background(), worker.ProcessTaskInput{
		TaskID:    "t1",
		Type:      model.TaskTypeChannelParse,
		ChannelID: "UC1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TotalItems != 3 || out.ProcessedItems != 3 || out.FailedItems != 0 {
		t.Errorf("got total=%d processed=%d failed=%d, want 3/3/0",
			out.TotalItems, out.ProcessedItems, out.FailedItems)
	}

	if len(channels.upserted) != 1 {
		t.Errorf("got %d channel upserts, want 1", len(channels.upserted))
	}
	if len(videos.upserted) != 3 {
		t.Errorf("got %d video upserts, want 3", len(videos.upserted))
	}
	if len(videos.analyses) != 3 {
		t.Errorf("got %d stored analyses, want 3", len(videos.analyses))
	}

	if len(taskUC.running) != 1 || taskUC.running[0] != "t1" {
		t.Errorf("expected task t1 marked running, got %v", taskUC.running)
	}
	if len(taskUC.completed) != 1 {
		t.Fatalf("got %d completions, want 1", len(taskUC.completed))
	}
	if taskUC.completed[0].ProcessedItems != 3 {
		t.Errorf("got %d processed in completion, want 3", taskUC.completed[0].ProcessedItems)
	}
}

func TestProcessChannelParseChannelMissing(t *testing.T) {
	taskUC := newFakeTaskUC()
	uc := New(taskUC, &fakeChannelRepo{}, newFakeVideoRepo(), &fakeAnalysisUC{}, &fakeYouTube{}, log.NewNop())

	_, err := uc.ProcessTask(context.Background(), worker.ProcessTaskInput{
		TaskID:    "t1",
		Type:      model.TaskTypeChannelParse,
		ChannelID: "UCmissing",
	})
	if !errors.Is(err, worker.ErrChannelFetch) {
		t.Fatalf("got %v, want %v", err, worker.ErrChannelFetch)
	}
}

func TestProcessVideoAnalysis(t *testing.T) {
	taskUC := newFakeTaskUC()
	videos := newFakeVideoRepo()
	videos.videos["stored"] = &model.Video{ID: "stored", ChannelID: "UC1", Title: "Stored", ViewCount: 100}
	yt := &fakeYouTube{
		byID: map[string]pkgYouTube.Video{"fetched": ytVideo("fetched", 900)},
	}
	uc := New(taskUC, &fakeChannelRepo{}, videos, &fakeAnalysisUC{}, yt, log.NewNop())

	out, err := uc.ProcessTask(context.Background(), worker.ProcessTaskInput{
		TaskID:   "t2",
		Type:     model.TaskTypeVideoAnalysis,
		VideoIDs: []string{"stored", "fetched", "gone"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TotalItems != 3 {
		t.Errorf("got total %d, want 3", out.TotalItems)
	}
	if out.ProcessedItems != 2 {
		t.Errorf("got processed %d, want 2", out.ProcessedItems)
	}
	if out.FailedItems != 1 {
		t.Errorf("got failed %d, want 1", out.FailedItems)
	}

	if _, ok := videos.analyses["stored"]; !ok {
		t.Error("expected an analysis for the stored video")
	}
	if _, ok := videos.analyses["fetched"]; !ok {
		t.Error("expected the missing video to be fetched and analyzed")
	}
}

func TestProcessVideoAnalysisScoringError(t *testing.T) {
	taskUC := newFakeTaskUC()
	videos := newFakeVideoRepo()
	videos.videos["v1"] = &model.Video{ID: "v1", ChannelID: "UC1"}
	uc := New(taskUC, &fakeChannelRepo{}, videos, &fakeAnalysisUC{err: errors.New("scoring broke")}, &fakeYouTube{}, log.NewNop())

	out, err := uc.ProcessTask(context.Background(), worker.ProcessTaskInput{
		TaskID:   "t3",
		Type:     model.TaskTypeVideoAnalysis,
		VideoIDs: []string{"v1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FailedItems != 1 || out.ProcessedItems != 0 {
		t.Errorf("got processed=%d failed=%d, want 0/1", out.ProcessedItems, out.FailedItems)
	}
}
