package usecase

import (
	"context"
	"errors"
	"testing"

	"insight-srv/internal/model"
	"insight-srv/internal/task"
	"insight-srv/internal/task/repository"
	"insight-srv/pkg/log"
)

type fakeRepo struct {
	tasks      map[string]*model.Task
	created    []repository.CreateTaskOptions
	statuses   []repository.UpdateStatusOptions
	progresses []repository.UpdateProgressOptions
	createErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: make(map[string]*model.Task)}
}

func (f *fakeRepo) CreateTask(_ context.Context, opts repository.CreateTaskOptions) (*model.Task, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, opts)
	t := &model.Task{
		ID:        opts.ID,
		Type:      opts.Type,
		ChannelID: opts.ChannelID,
		VideoIDs:  opts.VideoIDs,
		Payload:   opts.Payload,
		Status:    model.TaskStatusPending,
	}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeRepo) GetTaskByID(_ context.Context, id string) (*model.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeRepo) ListTasks(_ context.Context, _ repository.ListTasksOptions) ([]*model.Task, error) {
	out := make([]*model.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) CountTasks(_ context.Context, _ repository.ListTasksOptions) (int64, error) {
	return int64(len(f.tasks)), nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, opts repository.UpdateStatusOptions) error {
	f.statuses = append(f.statuses, opts)
	if t, ok := f.tasks[opts.TaskID]; ok {
		t.Status = opts.Status
		t.ErrorMessage = opts.ErrorMessage
	}
	return nil
}

func (f *fakeRepo) UpdateProgress(_ context.Context, opts repository.UpdateProgressOptions) error {
	f.progresses = append(f.progresses, opts)
	return nil
}

type fakeProducer struct {
	published []task.DispatchMessage
	err       error
}

func (f *fakeProducer) PublishTaskDispatch(_ context.Context, msg task.DispatchMessage) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

type fakeNotifier struct {
	events []task.ProgressEvent
	err    error
}

func (f *fakeNotifier) NotifyProgress(_ context.Context, event task.ProgressEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func newTestSetup() (*fakeRepo, *fakeProducer, *fakeNotifier, task.UseCase) {
	repo := newFakeRepo()
	producer := &fakeProducer{}
	notifier := &fakeNotifier{}
	uc := New(repo, producer, notifier, log.NewNop())
	return repo, producer, notifier, uc
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   task.CreateInput
		wantErr error
	}{
		{"unknown type", task.CreateInput{Type: "reindex"}, task.ErrInvalidTaskType},
		{"channel parse without channel", task.CreateInput{Type: model.TaskTypeChannelParse}, task.ErrChannelIDRequired},
		{"video analysis without ids", task.CreateInput{Type: model.TaskTypeVideoAnalysis}, task.ErrVideoIDsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, uc := newTestSetup()
			_, err := uc.Create(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateChannelParse(t *testing.T) {
	ctx := context.Background()
	repo, producer, _, uc := newTestSetup()

	out, err := uc.Create(ctx, task.CreateInput{
		Type:      model.TaskTypeChannelParse,
		ChannelID: "UC123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TaskID == "" {
		t.Error("expected a generated task ID")
	}
	if out.Status != model.TaskStatusPending {
		t.Errorf("got status %q, want %q", out.Status, model.TaskStatusPending)
	}

	if len(repo.created) != 1 {
		t.Fatalf("got %d created tasks, want 1", len(repo.created))
	}
	if len(producer.published) != 1 {
		t.Fatalf("got %d dispatched messages, want 1", len(producer.published))
	}

	msg := producer.published[0]
	if msg.TaskID != out.TaskID {
		t.Errorf("got dispatched task %q, want %q", msg.TaskID, out.TaskID)
	}
	if msg.MaxVideos != defaultMaxVideos {
		t.Errorf("got max videos %d, want default %d", msg.MaxVideos, defaultMaxVideos)
	}
}

func TestCreateDispatchFailureMarksFailed(t *testing.T) {
	ctx := context.Background()
	repo, producer, _, uc := newTestSetup()
	producer.err = errors.New("broker unreachable")

	_, err := uc.Create(ctx, task.CreateInput{
		Type:     model.TaskTypeVideoAnalysis,
		VideoIDs: []string{"vid1"},
	})
	if !errors.Is(err, task.ErrDispatchFailed) {
		t.Fatalf("got %v, want %v", err, task.ErrDispatchFailed)
	}

	if len(repo.statuses) != 1 {
		t.Fatalf("got %d status updates, want 1", len(repo.statuses))
	}
	if repo.statuses[0].Status != model.TaskStatusFailed {
		t.Errorf("got status %q, want %q", repo.statuses[0].Status, model.TaskStatusFailed)
	}
}

func TestMarkCompletedNotifies(t *testing.T) {
	ctx := context.Background()
	repo, _, notifier, uc := newTestSetup()
	repo.tasks["t1"] = &model.Task{ID: "t1", Type: model.TaskTypeChannelParse, Status: model.TaskStatusRunning}

	err := uc.MarkCompleted(ctx, task.MarkCompletedInput{
		TaskID:         "t1",
		TotalItems:     30,
		ProcessedItems: 28,
		FailedItems:    2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("got %d events, want 1", len(notifier.events))
	}
	event := notifier.events[0]
	if event.Status != model.TaskStatusCompleted {
		t.Errorf("got status %q, want %q", event.Status, model.TaskStatusCompleted)
	}
	if event.Progress != 100 {
		t.Errorf("got progress %d, want 100", event.Progress)
	}
	if event.Type != model.TaskTypeChannelParse {
		t.Errorf("got type %q, want %q", event.Type, model.TaskTypeChannelParse)
	}
}

func TestNotifierFailureDoesNotPropagate(t *testing.T) {
	ctx := context.Background()
	repo, _, notifier, uc := newTestSetup()
	repo.tasks["t1"] = &model.Task{ID: "t1", Type: model.TaskTypeVideoAnalysis}
	notifier.err = errors.New("exchange gone")

	if err := uc.MarkRunning(ctx, "t1"); err != nil {
		t.Errorf("got %v, want nil", err)
	}
	if err := uc.UpdateProgress(ctx, task.UpdateProgressInput{TaskID: "t1", Progress: 50}); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	repo, _, notifier, uc := newTestSetup()
	repo.tasks["t1"] = &model.Task{ID: "t1", Type: model.TaskTypeChannelParse, Status: model.TaskStatusPending}

	o, err := uc.Cancel(ctx, task.CancelInput{TaskID: "t1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Task.Status != model.TaskStatusCancelled {
		t.Errorf("got status %q, want %q", o.Task.Status, model.TaskStatusCancelled)
	}
	if o.Task.CompletedAt == nil {
		t.Error("got nil CompletedAt, want set")
	}

	if len(repo.statuses) != 1 || repo.statuses[0].Status != model.TaskStatusCancelled {
		t.Fatalf("got status updates %+v, want one CANCELLED", repo.statuses)
	}
	if len(notifier.events) != 1 || notifier.events[0].Status != model.TaskStatusCancelled {
		t.Fatalf("got events %+v, want one CANCELLED", notifier.events)
	}
}

func TestCancelTerminal(t *testing.T) {
	ctx := context.Background()
	repo, _, _, uc := newTestSetup()
	repo.tasks["t1"] = &model.Task{ID: "t1", Status: model.TaskStatusCompleted}

	_, err := uc.Cancel(ctx, task.CancelInput{TaskID: "t1"})
	if !errors.Is(err, task.ErrTaskNotCancellable) {
		t.Errorf("got %v, want %v", err, task.ErrTaskNotCancellable)
	}

	_, err = uc.Cancel(ctx, task.CancelInput{TaskID: "missing"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("got %v, want %v", err, task.ErrTaskNotFound)
	}
}

func TestMarkRunningCancelledTask(t *testing.T) {
	ctx := context.Background()
	repo, _, _, uc := newTestSetup()
	repo.tasks["t1"] = &model.Task{ID: "t1", Status: model.TaskStatusCancelled}

	if err := uc.MarkRunning(ctx, "t1"); !errors.Is(err, task.ErrTaskCancelled) {
		t.Errorf("got %v, want %v", err, task.ErrTaskCancelled)
	}
	if len(repo.statuses) != 0 {
		t.Errorf("got %d status updates, want 0", len(repo.statuses))
	}
}

func TestGetNotFound(t *testing.T) {
	ctx := context.Background()
	_, _, _, uc := newTestSetup()

	_, err := uc.Get(ctx, task.GetInput{TaskID: "missing"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("got %v, want %v", err, task.ErrTaskNotFound)
	}
}
