package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"insight-srv/internal/export"
	"insight-srv/internal/export/repository"
	"insight-srv/internal/model"
	"insight-srv/pkg/log"
)

type fakeExportRepo struct {
	byHash  map[string]*model.Export
	byID    map[string]*model.Export
	created []repository.CreateExportOptions
}

func newFakeExportRepo() *fakeExportRepo {
	return &fakeExportRepo{
		byHash: make(map[string]*model.Export),
		byID:   make(map[string]*model.Export),
	}
}

func (f *fakeExportRepo) CreateExport(_ context.Context, opts repository.CreateExportOptions) (*model.Export, error) {
	f.created = append(f.created, opts)
	exp := &model.Export{
		ID:         opts.ID,
		ChannelID:  opts.ChannelID,
		Format:     opts.Format,
		ParamsHash: opts.ParamsHash,
		Status:     model.ExportStatusProcessing,
		CreatedAt:  time.Now(),
	}
	f.byID[exp.ID] = exp
	return exp, nil
}

func (f *fakeExportRepo) GetExportByID(_ context.Context, id string) (*model.Export, error) {
	exp, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrExportNotFound
	}
	return exp, nil
}

func (f *fakeExportRepo) FindByParamsHash(_ context.Context, opts repository.FindByParamsHashOptions) (*model.Export, error) {
	exp, ok := f.byHash[opts.ParamsHash]
	if !ok || exp.Status != opts.Status {
		return nil, nil
	}
	return exp, nil
}

func (f *fakeExportRepo) UpdateCompleted(_ context.Context, _ repository.UpdateCompletedOptions) error {
	return nil
}

func (f *fakeExportRepo) UpdateFailed(_ context.Context, _ repository.UpdateFailedOptions) error {
	return nil
}

func newTestExportUseCase(repo repository.PostgresRepository) export.UseCase {
	return New(repo, nil, nil, log.NewNop(), Config{})
}

func TestGenerateValidation(t *testing.T) {
	ctx := context.Background()
	uc := newTestExportUseCase(newFakeExportRepo())

	t.Run("missing channel", func(t *testing.T) {
		_, err := uc.Generate(ctx, export.GenerateInput{Format: model.ExportFormatCSV})
		if !errors.Is(err, export.ErrChannelIDRequired) {
			t.Errorf("got %v, want %v", err, export.ErrChannelIDRequired)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := uc.Generate(ctx, export.GenerateInput{ChannelID: "UC1", Format: "xml"})
		if !errors.Is(err, export.ErrInvalidFormat) {
			t.Errorf("got %v, want %v", err, export.ErrInvalidFormat)
		}
	})
}

func TestGenerateReusesProcessingExport(t *testing.T) {
	ctx := context.Background()
	repo := newFakeExportRepo()
	uc := newTestExportUseCase(repo).(*implUseCase)

	input := export.GenerateInput{ChannelID: "UC1", Format: model.ExportFormatCSV}
	hash, err := uc.generateParamsHash(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.byHash[hash] = &model.Export{
		ID:         "existing",
		ParamsHash: hash,
		Status:     model.ExportStatusProcessing,
		CreatedAt:  time.Now(),
	}

	out, err := uc.Generate(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExportID != "existing" {
		t.Errorf("got export %q, want the processing one", out.ExportID)
	}
	if len(repo.created) != 0 {
		t.Errorf("got %d new exports, want 0", len(repo.created))
	}
}

func TestGenerateReusesRecentCompletedExport(t *testing.T) {
	ctx := context.Background()
	repo := newFakeExportRepo()
	uc := newTestExportUseCase(repo).(*implUseCase)

	input := export.GenerateInput{ChannelID: "UC1", Format: model.ExportFormatJSON}
	hash, err := uc.generateParamsHash(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.byHash[hash] = &model.Export{
		ID:         "done",
		ParamsHash: hash,
		Status:     model.ExportStatusCompleted,
		CreatedAt:  time.Now().Add(-10 * time.Minute),
	}

	out, err := uc.Generate(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ExportID != "done" {
		t.Errorf("got export %q, want the completed one", out.ExportID)
	}
	if out.Status != model.ExportStatusCompleted {
		t.Errorf("got status %q, want %q", out.Status, model.ExportStatusCompleted)
	}
}

func TestGenerateParamsHashDistinguishesFilters(t *testing.T) {
	uc := newTestExportUseCase(newFakeExportRepo()).(*implUseCase)

	base := export.GenerateInput{ChannelID: "UC1", Format: model.ExportFormatCSV}
	filtered := base
	filtered.Filters.MinViews = 1000

	h1, err := uc.generateParamsHash(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := uc.generateParamsHash(filtered)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h3, err := uc.generateParamsHash(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h1 == h2 {
		t.Error("different filters produced the same hash")
	}
	if h1 != h3 {
		t.Error("identical inputs produced different hashes")
	}
}

func TestDownloadRequiresCompleted(t *testing.T) {
	ctx := context.Background()
	repo := newFakeExportRepo()
	repo.byID["e1"] = &model.Export{ID: "e1", Status: model.ExportStatusProcessing}
	uc := newTestExportUseCase(repo)

	_, err := uc.Download(ctx, export.DownloadInput{ExportID: "e1"})
	if !errors.Is(err, export.ErrExportNotCompleted) {
		t.Errorf("got %v, want %v", err, export.ErrExportNotCompleted)
	}

	_, err = uc.Download(ctx, export.DownloadInput{ExportID: "missing"})
	if !errors.Is(err, export.ErrExportNotFound) {
		t.Errorf("got %v, want %v", err, export.ErrExportNotFound)
	}
}
