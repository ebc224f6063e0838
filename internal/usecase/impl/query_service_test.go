package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"kindling/internal/domain/entity"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/domain/repository"
	mockRepo "kindling/internal/mocks/repository"
	"kindling/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryServiceMocks struct {
	ideaRepo     *mockRepo.MockIdeaRepository
	artifactRepo *mockRepo.MockArtifactRepository
	settingsRepo *mockRepo.MockSettingsRepository
}

func newQueryServiceForTest(t *testing.T) (usecase.QueryUsecase, queryServiceMocks) {
	t.Helper()

	mocks := queryServiceMocks{
		ideaRepo:     mockRepo.NewMockIdeaRepository(t),
		artifactRepo: mockRepo.NewMockArtifactRepository(t),
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
	}

	service := NewQueryService(QueryServiceParams{
		IdeaRepo:     mocks.ideaRepo,
		ArtifactRepo: mocks.artifactRepo,
		SettingsRepo: mocks.settingsRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mocks
}

func TestQueryService_UnknownQuery(t *testing.T) {
	service, _ := newQueryServiceForTest(t)

	_, err := service.Execute(context.Background(), uuid.New(), "allNotes", nil)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNKNOWN_QUERY", appErr.ErrorCode())
}

func TestQueryService_AllIdeas(t *testing.T) {
	service, mocks := newQueryServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	ideas := []*entity.ContentIdea{{ID: uuid.New(), UserID: caller, OneLiner: "one"}}

	mocks.ideaRepo.EXPECT().ListByOwner(ctx, caller).Return(ideas, nil)

	rows, err := service.Execute(ctx, caller, usecase.QueryAllIdeas, nil)

	require.NoError(t, err)
	assert.Equal(t, ideas, rows)
}

func TestQueryService_InboxIdeas_FiltersByStatus(t *testing.T) {
	service, mocks := newQueryServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	mocks.ideaRepo.EXPECT().
		ListByOwnerAndStatus(ctx, caller, entity.IdeaStatusInbox).
		Return([]*entity.ContentIdea{}, nil)

	rows, err := service.Execute(ctx, caller, usecase.QueryInboxIdeas, nil)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQueryService_IdeaByID_ForeignRowLooksMissing(t *testing.T) {
	service, mocks := newQueryServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	ideaID := uuid.New()

	foreign := &entity.ContentIdea{ID: ideaID, UserID: uuid.New()}
	mocks.ideaRepo.EXPECT().FindByID(ctx, ideaID).Return(foreign, nil)

	rows, err := service.Execute(ctx, caller, usecase.QueryIdeaByID, json.RawMessage(`{"id":"`+ideaID.String()+`"}`))

	require.NoError(t, err)
	assert.Equal(t, []*entity.ContentIdea{}, rows)
}

func TestQueryService_IdeaByID_Found(t *testing.T) {
	service, mocks := newQueryServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	ideaID := uuid.New()

	idea := &entity.ContentIdea{ID: ideaID, UserID: caller}
	mocks.ideaRepo.EXPECT().FindByID(ctx, ideaID).Return(idea, nil)

	rows, err := service.Execute(ctx, caller, usecase.QueryIdeaByID, json.RawMessage(`{"id":"`+ideaID.String()+`"}`))

	require.NoError(t, err)
	assert.Equal(t, []*entity.ContentIdea{idea}, rows)
}

func TestQueryService_IdeaByID_MissingArgs(t *testing.T) {
	service, _ := newQueryServiceForTest(t)

	_, err := service.Execute(context.Background(), uuid.New(), usecase.QueryIdeaByID, nil)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestQueryService_UserSettings_EmptyWhenUnset(t *testing.T) {
	service, mocks := newQueryServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	mocks.settingsRepo.EXPECT().FindByOwner(ctx, caller).Return(nil, repository.ErrSettingsNotFound)

	rows, err := service.Execute(ctx, caller, usecase.QueryUserSettings, nil)

	require.NoError(t, err)
	assert.Equal(t, []*entity.ContentSettings{}, rows)
}

func TestQueryService_RecentArtifactsByType_AppliesLimit(t *testing.T) {
	service, mocks := newQueryServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	mocks.artifactRepo.EXPECT().
		ListRecentByType(ctx, caller, entity.ArtifactTypeThread, 3).
		Return([]*entity.ContentArtifact{}, nil)

	_, err := service.Execute(ctx, caller, usecase.QueryRecentArtifactsByType, json.RawMessage(`{"artifactType":"thread"}`))

	require.NoError(t, err)
}

func TestQueryService_RecentArtifactsByType_RejectsUnknownType(t *testing.T) {
	service, _ := newQueryServiceForTest(t)

	_, err := service.Execute(context.Background(), uuid.New(), usecase.QueryRecentArtifactsByType, json.RawMessage(`{"artifactType":"podcast"}`))

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestQueryService_RecentIdeasWithContent_AppliesLimit(t *testing.T) {
	service, mocks := newQueryServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	mocks.ideaRepo.EXPECT().
		ListRecentByOwner(ctx, caller, 5).
		Return([]*entity.ContentIdea{}, nil)

	_, err := service.Execute(ctx, caller, usecase.QueryRecentIdeasWithContent, nil)

	require.NoError(t, err)
}

func TestQueryService_ScheduledArtifacts(t *testing.T) {
	service, mocks := newQueryServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	artifacts := []*entity.ContentArtifact{{ID: uuid.New(), UserID: caller}}

	mocks.artifactRepo.EXPECT().ListScheduledByOwner(ctx, caller).Return(artifacts, nil)

	rows, err := service.Execute(ctx, caller, usecase.QueryScheduledArtifacts, nil)

	require.NoError(t, err)
	assert.Equal(t, artifacts, rows)
}
