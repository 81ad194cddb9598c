package usecase

import (
	"context"
	"errors"
	"testing"

	channelRepo "insight-srv/internal/channel/repository"
	"insight-srv/internal/model"
	"insight-srv/internal/stats"
	"insight-srv/internal/stats/repository"
	videoRepo "insight-srv/internal/video/repository"
	"insight-srv/pkg/log"
)

type fakeStatsRepo struct {
	agg          repository.VideoAggregate
	distribution map[string]int64

	aggChannelIDs  []string
	distChannelIDs []string
}

func (f *fakeStatsRepo) GetVideoAggregate(_ context.Context, channelID string) (repository.VideoAggregate, error) {
	f.aggChannelIDs = append(f.aggChannelIDs, channelID)
	return f.agg, nil
}

func (f *fakeStatsRepo) GetVerdictDistribution(_ context.Context, channelID string) (map[string]int64, error) {
	f.distChannelIDs = append(f.distChannelIDs, channelID)
	return f.distribution, nil
}

type fakeChannelRepo struct {
	channels map[string]*model.Channel
}

func (f *fakeChannelRepo) UpsertChannel(_ context.Context, opts channelRepo.UpsertChannelOptions) (*model.Channel, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeChannelRepo) GetChannelByID(_ context.Context, id string) (*model.Channel, error) {
	c, ok := f.channels[id]
	if !ok {
		return nil, channelRepo.ErrChannelNotFound
	}
	return c, nil
}

func (f *fakeChannelRepo) ListChannels(_ context.Context, _ channelRepo.ListChannelsOptions) ([]*model.Channel, error) {
	return nil, nil
}

func (f *fakeChannelRepo) CountChannels(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeVideoRepo struct {
	videos   []*model.Video
	listOpts []videoRepo.ListVideosOptions
}

func (f *fakeVideoRepo) UpsertVideo(_ context.Context, _ videoRepo.UpsertVideoOptions) (*model.Video, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeVideoRepo) GetVideoByID(_ context.Context, _ string) (*model.Video, error) {
	return nil, videoRepo.ErrVideoNotFound
}

func (f *fakeVideoRepo) ListVideos(_ context.Context, opts videoRepo.ListVideosOptions) ([]*model.Video, error) {
	f.listOpts = append(f.listOpts, opts)
	return f.videos, nil
}

func (f *fakeVideoRepo) CountVideos(_ context.Context, _ videoRepo.ListVideosOptions) (int64, error) {
	return int64(len(f.videos)), nil
}

func (f *fakeVideoRepo) UpdateAnalysis(_ context.Context, _ videoRepo.UpdateAnalysisOptions) error {
	return errors.New("not implemented")
}

func (f *fakeVideoRepo) ListVideosByChannel(_ context.Context, _ string) ([]*model.Video, error) {
	return f.videos, nil
}

func newStatsSetup() (*fakeStatsRepo, *fakeChannelRepo, *fakeVideoRepo, stats.UseCase) {
	repo := &fakeStatsRepo{
		agg: repository.VideoAggregate{
			TotalVideos:    4,
			AnalyzedVideos: 3,
			ShortsCount:    1,
			TotalViews:     1000,
			TotalLikes:     80,
			TotalComments:  20,
		},
		distribution: map[string]int64{"must-replicate": 2, "recommended": 1},
	}
	channels := &fakeChannelRepo{channels: map[string]*model.Channel{
		"UC1": {ID: "UC1", Title: "Tech"},
	}}
	videos := &fakeVideoRepo{videos: []*model.Video{
		{ID: "v1", ChannelID: "UC1", Title: "Top", ViewCount: 500},
	}}
	uc := New(repo, channels, videos, log.NewNop())
	return repo, channels, videos, uc
}

func TestChannelStats(t *testing.T) {
	ctx := context.Background()
	repo, _, videos, uc := newStatsSetup()

	o, err := uc.ChannelStats(ctx, stats.ChannelStatsInput{ChannelID: "UC1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.TotalVideos != 4 || o.AnalyzedVideos != 3 || o.ShortsCount != 1 {
		t.Errorf("got counters %d/%d/%d, want 4/3/1", o.TotalVideos, o.AnalyzedVideos, o.ShortsCount)
	}
	if o.AvgViews != 250 {
		t.Errorf("got avg views %v, want 250", o.AvgViews)
	}
	if o.AvgEngagementRate != 10 {
		t.Errorf("got avg engagement %v, want 10", o.AvgEngagementRate)
	}
	if o.VerdictDistribution["must-replicate"] != 2 {
		t.Errorf("got distribution %v, want must-replicate=2", o.VerdictDistribution)
	}
	if len(o.TopVideos) != 1 || o.TopVideos[0].ID != "v1" {
		t.Errorf("got top videos %v, want [v1]", o.TopVideos)
	}

	if len(repo.aggChannelIDs) != 1 || repo.aggChannelIDs[0] != "UC1" {
		t.Errorf("got aggregate channel ids %v, want [UC1]", repo.aggChannelIDs)
	}
	if len(videos.listOpts) != 1 || videos.listOpts[0].Limit != defaultTopVideos {
		t.Errorf("got list options %v, want limit %d", videos.listOpts, defaultTopVideos)
	}
}

func TestChannelStatsValidation(t *testing.T) {
	ctx := context.Background()
	_, _, _, uc := newStatsSetup()

	_, err := uc.ChannelStats(ctx, stats.ChannelStatsInput{})
	if !errors.Is(err, stats.ErrChannelIDRequired) {
		t.Errorf("got %v, want %v", err, stats.ErrChannelIDRequired)
	}

	_, err = uc.ChannelStats(ctx, stats.ChannelStatsInput{ChannelID: "missing"})
	if !errors.Is(err, stats.ErrChannelNotFound) {
		t.Errorf("got %v, want %v", err, stats.ErrChannelNotFound)
	}
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	repo, _, _, uc := newStatsSetup()

	o, err := uc.Overview(ctx, stats.OverviewInput{TopVideos: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.TotalVideos != 4 || o.TotalViews != 1000 {
		t.Errorf("got %d videos / %d views, want 4 / 1000", o.TotalVideos, o.TotalViews)
	}
	if o.AvgEngagementRate != 10 {
		t.Errorf("got avg engagement %v, want 10", o.AvgEngagementRate)
	}

	// Overview spans all channels, the repo must see the empty filter.
	if len(repo.aggChannelIDs) != 1 || repo.aggChannelIDs[0] != "" {
		t.Errorf("got aggregate channel ids %q, want [\"\"]", repo.aggChannelIDs)
	}
	if len(repo.distChannelIDs) != 1 || repo.distChannelIDs[0] != "" {
		t.Errorf("got distribution channel ids %q, want [\"\"]", repo.distChannelIDs)
	}
}

func TestOverviewEmpty(t *testing.T) {
	ctx := context.Background()
	repo, _, videos, uc := newStatsSetup()
	repo.agg = repository.VideoAggregate{}
	repo.distribution = map[string]int64{}
	videos.videos = nil

	o, err := uc.Overview(ctx, stats.OverviewInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.AvgViews != 0 || o.AvgEngagementRate != 0 {
		t.Errorf("got averages %v/%v, want 0/0", o.AvgViews, o.AvgEngagementRate)
	}
}
