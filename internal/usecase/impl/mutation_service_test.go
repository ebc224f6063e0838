package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"kindling/config"
	"kindling/internal/domain/entity"
	"kindling/internal/domain/repository"
	mockRepo "kindling/internal/mocks/repository"
	"kindling/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMutationServiceForTest(t *testing.T) (usecase.MutationUsecase, *mockRepo.MockTransactionManager) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewMutationService(MutationServiceParams{
		TxManager: txManager,
		Config:    &config.Config{},
		Logger:    logger,
	})

	return service, txManager
}

// expectTransaction wires the transaction manager so the transactional
// closure runs against the given factory and its error becomes the
// transaction outcome.
func expectTransaction(ctx context.Context, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func mutationArgs(t *testing.T, v any) json.RawMessage {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	return raw
}

func TestMutationService_CreateIdea_Success(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	ideaID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	factory.EXPECT().IdeaRepo().Return(ideaRepo)

	var created *entity.ContentIdea
	ideaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContentIdea")).
		Run(func(ctx context.Context, idea *entity.ContentIdea) {
			created = idea
		}).
		Return(nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{{
		ID:   1,
		Name: "idea.create",
		Args: mutationArgs(t, map[string]any{"id": ideaID, "oneLiner": "ship the importer", "tags": []string{"go"}}),
	}})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Error)
	require.NotNil(t, created)
	assert.Equal(t, ideaID, created.ID)
	assert.Equal(t, caller, created.UserID)
	assert.Equal(t, entity.IdeaStatusInbox, created.Status)
	assert.Empty(t, created.Content)
	assert.Equal(t, []string{"go"}, created.Tags)
}

func TestMutationService_CreateIdea_DuplicateID(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	factory.EXPECT().IdeaRepo().Return(ideaRepo)
	ideaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContentIdea")).
		Return(repository.ErrDuplicateID)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{{
		ID:   1,
		Name: "idea.create",
		Args: mutationArgs(t, map[string]any{"id": uuid.New(), "oneLiner": "retried create"}),
	}})

	require.Len(t, results, 1)
	require.NotNil(t, results[0].Error)
	assert.Equal(t, "CONFLICT", results[0].Error.Code)
}

func TestMutationService_CreateIdea_OneLinerLength(t *testing.T) {
	tests := []struct {
		name     string
		oneLiner string
		wantCode string
	}{
		{name: "at limit", oneLiner: strings.Repeat("a", 256), wantCode: ""},
		{name: "over limit", oneLiner: strings.Repeat("a", 257), wantCode: "VALIDATION_FAILED"},
		{name: "empty", oneLiner: "", wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, txManager := newMutationServiceForTest(t)

			ctx := context.Background()

			if tt.wantCode == "" {
				factory := mockRepo.NewMockRepositoryFactory(t)
				ideaRepo := mockRepo.NewMockIdeaRepository(t)
				factory.EXPECT().IdeaRepo().Return(ideaRepo)
				ideaRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*entity.ContentIdea")).
					Return(nil)
				expectTransaction(ctx, txManager, factory)
			}

			results := service.PushBatch(ctx, uuid.New(), []usecase.Mutation{{
				ID:   1,
				Name: "idea.create",
				Args: mutationArgs(t, map[string]any{"id": uuid.New(), "oneLiner": tt.oneLiner}),
			}})

			require.Len(t, results, 1)
			if tt.wantCode == "" {
				assert.Nil(t, results[0].Error)
			} else {
				require.NotNil(t, results[0].Error)
				assert.Equal(t, tt.wantCode, results[0].Error.Code)
			}
		})
	}
}

func TestMutationService_UnknownMutation_DoesNotBlockBatch(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	factory.EXPECT().IdeaRepo().Return(ideaRepo)
	ideaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContentIdea")).
		Return(nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{
		{ID: 1, Name: "idea.archive", Args: nil},
		{ID: 2, Name: "idea.create", Args: mutationArgs(t, map[string]any{"id": uuid.New(), "oneLiner": "still lands"})},
	})

	require.Len(t, results, 2)
	require.NotNil(t, results[0].Error)
	assert.Equal(t, "UNKNOWN_MUTATION", results[0].Error.Code)
	assert.Nil(t, results[1].Error)
}

func TestMutationService_UpdateIdea_AppliesPartialPatch(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	ideaID := uuid.New()

	idea := &entity.ContentIdea{
		ID:       ideaID,
		UserID:   caller,
		OneLiner: "old summary",
		Status:   entity.IdeaStatusInbox,
		Notes:    "keep me",
		Tags:     []string{},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	factory.EXPECT().IdeaRepo().Return(ideaRepo)

	ideaRepo.EXPECT().FindByID(ctx, ideaID).Return(idea, nil).Twice()

	var updated *entity.ContentIdea
	ideaRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ContentIdea")).
		Run(func(ctx context.Context, idea *entity.ContentIdea) {
			updated = idea
		}).
		Return(nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{{
		ID:   1,
		Name: "idea.update",
		Args: json.RawMessage(`{"id":"` + ideaID.String() + `","oneLiner":"new summary","status":"developing"}`),
	}})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Error)
	require.NotNil(t, updated)
	assert.Equal(t, "new summary", updated.OneLiner)
	assert.Equal(t, entity.IdeaStatusDeveloping, updated.Status)
	assert.Equal(t, "keep me", updated.Notes)
}

func TestMutationService_UpdateIdea_RejectsExplicitNull(t *testing.T) {
	service, _ := newMutationServiceForTest(t)

	ctx := context.Background()
	ideaID := uuid.New()

	results := service.PushBatch(ctx, uuid.New(), []usecase.Mutation{{
		ID:   1,
		Name: "idea.update",
		Args: json.RawMessage(`{"id":"` + ideaID.String() + `","notes":null}`),
	}})

	require.Len(t, results, 1)
	require.NotNil(t, results[0].Error)
	assert.Equal(t, "VALIDATION_FAILED", results[0].Error.Code)
	assert.Contains(t, results[0].Error.Message, "must not be null")
}

func TestMutationService_UpdateIdea_RejectsUnknownStatus(t *testing.T) {
	service, _ := newMutationServiceForTest(t)

	ctx := context.Background()
	ideaID := uuid.New()

	results := service.PushBatch(ctx, uuid.New(), []usecase.Mutation{{
		ID:   1,
		Name: "idea.update",
		Args: json.RawMessage(`{"id":"` + ideaID.String() + `","status":"someday"}`),
	}})

	require.Len(t, results, 1)
	require.NotNil(t, results[0].Error)
	assert.Equal(t, "VALIDATION_FAILED", results[0].Error.Code)
}

// Explicit zero values are present fields and must hit the same constraints
// as on create; only absent and null skip them.
func TestMutationService_Update_RejectsExplicitEmptyValues(t *testing.T) {
	tests := []struct {
		name     string
		mutation string
		args     string
	}{
		{name: "empty oneLiner", mutation: "idea.update", args: `{"id":"%s","oneLiner":""}`},
		{name: "empty idea status", mutation: "idea.update", args: `{"id":"%s","status":""}`},
		{name: "empty tag", mutation: "idea.update", args: `{"id":"%s","tags":[""]}`},
		{name: "empty content", mutation: "artifact.update", args: `{"id":"%s","content":""}`},
		{name: "empty artifact type", mutation: "artifact.update", args: `{"id":"%s","artifactType":""}`},
		{name: "empty artifact status", mutation: "artifact.update", args: `{"id":"%s","status":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newMutationServiceForTest(t)

			args := fmt.Sprintf(tt.args, uuid.New())
			results := service.PushBatch(context.Background(), uuid.New(), []usecase.Mutation{{
				ID:   1,
				Name: tt.mutation,
				Args: json.RawMessage(args),
			}})

			require.Len(t, results, 1)
			require.NotNil(t, results[0].Error)
			assert.Equal(t, "VALIDATION_FAILED", results[0].Error.Code)
		})
	}
}

func TestMutationService_UpdateIdea_ForeignRow(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	ideaID := uuid.New()

	foreign := &entity.ContentIdea{ID: ideaID, UserID: uuid.New(), OneLiner: "not yours"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	factory.EXPECT().IdeaRepo().Return(ideaRepo)
	ideaRepo.EXPECT().FindByID(ctx, ideaID).Return(foreign, nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{{
		ID:   1,
		Name: "idea.update",
		Args: json.RawMessage(`{"id":"` + ideaID.String() + `","oneLiner":"hijack"}`),
	}})

	require.Len(t, results, 1)
	require.NotNil(t, results[0].Error)
	assert.Equal(t, "OWNERSHIP_VIOLATION", results[0].Error.Code)
}

func TestMutationService_UpdateIdea_NotFound(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	ideaID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	factory.EXPECT().IdeaRepo().Return(ideaRepo)
	ideaRepo.EXPECT().FindByID(ctx, ideaID).Return(nil, repository.ErrIdeaNotFound)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, uuid.New(), []usecase.Mutation{{
		ID:   1,
		Name: "idea.update",
		Args: json.RawMessage(`{"id":"` + ideaID.String() + `","oneLiner":"missing"}`),
	}})

	require.Len(t, results, 1)
	require.NotNil(t, results[0].Error)
	assert.Equal(t, "NOT_FOUND", results[0].Error.Code)
}

func TestMutationService_UpsertSettings_CreatesOnFirstWrite(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	factory.EXPECT().SettingsRepo().Return(settingsRepo)

	settingsRepo.EXPECT().FindByOwner(ctx, caller).Return(nil, repository.ErrSettingsNotFound)

	var created *entity.ContentSettings
	settingsRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContentSettings")).
		Run(func(ctx context.Context, settings *entity.ContentSettings) {
			created = settings
		}).
		Return(nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{{
		ID:   1,
		Name: "settings.upsert",
		Args: mutationArgs(t, map[string]any{"targetAudience": "indie developers", "brandVoice": "direct"}),
	}})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Error)
	require.NotNil(t, created)
	assert.Equal(t, caller, created.UserID)
	assert.Equal(t, "indie developers", created.TargetAudience)
	assert.Equal(t, "direct", created.BrandVoice)
	assert.Empty(t, created.ContentPillars)
}

func TestMutationService_UpsertSettings_ReplacesExistingRow(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	existing := &entity.ContentSettings{
		ID:             uuid.New(),
		UserID:         caller,
		TargetAudience: "old audience",
		ContentPillars: "old pillars",
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	factory.EXPECT().SettingsRepo().Return(settingsRepo)
	settingsRepo.EXPECT().FindByOwner(ctx, caller).Return(existing, nil)

	var updated *entity.ContentSettings
	settingsRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ContentSettings")).
		Run(func(ctx context.Context, settings *entity.ContentSettings) {
			updated = settings
		}).
		Return(nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{{
		ID:   1,
		Name: "settings.upsert",
		Args: mutationArgs(t, map[string]any{"targetAudience": "new audience"}),
	}})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Error)
	require.NotNil(t, updated)
	assert.Equal(t, "new audience", updated.TargetAudience)
	// Whole-row replacement: fields omitted from the input reset to empty.
	assert.Empty(t, updated.ContentPillars)
}

func TestMutationService_CreateArtifact_Success(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	ideaID := uuid.New()
	artifactID := uuid.New()

	parent := &entity.ContentIdea{ID: ideaID, UserID: caller, OneLiner: "parent"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	artifactRepo := mockRepo.NewMockArtifactRepository(t)
	factory.EXPECT().IdeaRepo().Return(ideaRepo)
	factory.EXPECT().ArtifactRepo().Return(artifactRepo)
	ideaRepo.EXPECT().FindByID(ctx, ideaID).Return(parent, nil)

	var created *entity.ContentArtifact
	artifactRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContentArtifact")).
		Run(func(ctx context.Context, artifact *entity.ContentArtifact) {
			created = artifact
		}).
		Return(nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{{
		ID:   1,
		Name: "artifact.create",
		Args: mutationArgs(t, map[string]any{
			"id":           artifactID,
			"ideaId":       ideaID,
			"content":      "draft body",
			"artifactType": "blog-post",
		}),
	}})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Error)
	require.NotNil(t, created)
	assert.Equal(t, artifactID, created.ID)
	assert.Equal(t, caller, created.UserID)
	assert.Equal(t, entity.ArtifactStatusDraft, created.Status)
	assert.Nil(t, created.Title)
	assert.Nil(t, created.PublishedAt)
}

func TestMutationService_CreateArtifact_ParentOwnership(t *testing.T) {
	tests := []struct {
		name     string
		parent   *entity.ContentIdea
		findErr  error
		wantCode string
	}{
		{name: "parent missing", findErr: repository.ErrIdeaNotFound, wantCode: "NOT_FOUND"},
		{name: "parent foreign", parent: &entity.ContentIdea{UserID: uuid.New()}, wantCode: "OWNERSHIP_VIOLATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, txManager := newMutationServiceForTest(t)

			ctx := context.Background()
			caller := uuid.New()
			ideaID := uuid.New()
			if tt.parent != nil {
				tt.parent.ID = ideaID
			}

			factory := mockRepo.NewMockRepositoryFactory(t)
			ideaRepo := mockRepo.NewMockIdeaRepository(t)
			factory.EXPECT().IdeaRepo().Return(ideaRepo)
			ideaRepo.EXPECT().FindByID(ctx, ideaID).Return(tt.parent, tt.findErr)

			expectTransaction(ctx, txManager, factory)

			results := service.PushBatch(ctx, caller, []usecase.Mutation{{
				ID:   1,
				Name: "artifact.create",
				Args: mutationArgs(t, map[string]any{
					"id":           uuid.New(),
					"ideaId":       ideaID,
					"content":      "body",
					"artifactType": "thread",
				}),
			}})

			require.Len(t, results, 1)
			require.NotNil(t, results[0].Error)
			assert.Equal(t, tt.wantCode, results[0].Error.Code)
		})
	}
}

func TestMutationService_UpdateArtifact_NullClearsNullableColumns(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	artifactID := uuid.New()

	title := "working title"
	planned := time.Now().Add(48 * time.Hour)
	artifact := &entity.ContentArtifact{
		ID:                 artifactID,
		UserID:             caller,
		IdeaID:             uuid.New(),
		Title:              &title,
		Content:            "body",
		ArtifactType:       entity.ArtifactTypeBlogPost,
		Status:             entity.ArtifactStatusDraft,
		PlannedPublishDate: &planned,
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	artifactRepo := mockRepo.NewMockArtifactRepository(t)
	factory.EXPECT().ArtifactRepo().Return(artifactRepo)
	artifactRepo.EXPECT().FindByID(ctx, artifactID).Return(artifact, nil).Twice()

	var updated *entity.ContentArtifact
	artifactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ContentArtifact")).
		Run(func(ctx context.Context, artifact *entity.ContentArtifact) {
			updated = artifact
		}).
		Return(nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{{
		ID:   1,
		Name: "artifact.update",
		Args: json.RawMessage(`{"id":"` + artifactID.String() + `","title":null,"plannedPublishDate":null}`),
	}})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Error)
	require.NotNil(t, updated)
	assert.Nil(t, updated.Title)
	assert.Nil(t, updated.PlannedPublishDate)
	assert.Equal(t, "body", updated.Content)
}

func TestMutationService_UpdateArtifact_RejectsNullContent(t *testing.T) {
	service, _ := newMutationServiceForTest(t)

	ctx := context.Background()
	artifactID := uuid.New()

	results := service.PushBatch(ctx, uuid.New(), []usecase.Mutation{{
		ID:   1,
		Name: "artifact.update",
		Args: json.RawMessage(`{"id":"` + artifactID.String() + `","content":null}`),
	}})

	require.Len(t, results, 1)
	require.NotNil(t, results[0].Error)
	assert.Equal(t, "VALIDATION_FAILED", results[0].Error.Code)
}

func TestMutationService_DeleteArtifact_Success(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	artifactID := uuid.New()

	artifact := &entity.ContentArtifact{ID: artifactID, UserID: caller}

	factory := mockRepo.NewMockRepositoryFactory(t)
	artifactRepo := mockRepo.NewMockArtifactRepository(t)
	factory.EXPECT().ArtifactRepo().Return(artifactRepo)
	artifactRepo.EXPECT().FindByID(ctx, artifactID).Return(artifact, nil)
	artifactRepo.EXPECT().Delete(ctx, artifactID).Return(nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, caller, []usecase.Mutation{{
		ID:   1,
		Name: "artifact.delete",
		Args: json.RawMessage(`{"id":"` + artifactID.String() + `"}`),
	}})

	require.Len(t, results, 1)
	assert.Nil(t, results[0].Error)
}

func TestMutationService_DeleteArtifact_ForeignRow(t *testing.T) {
	service, txManager := newMutationServiceForTest(t)

	ctx := context.Background()
	artifactID := uuid.New()

	artifact := &entity.ContentArtifact{ID: artifactID, UserID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	artifactRepo := mockRepo.NewMockArtifactRepository(t)
	factory.EXPECT().ArtifactRepo().Return(artifactRepo)
	artifactRepo.EXPECT().FindByID(ctx, artifactID).Return(artifact, nil)

	expectTransaction(ctx, txManager, factory)

	results := service.PushBatch(ctx, uuid.New(), []usecase.Mutation{{
		ID:   1,
		Name: "artifact.delete",
		Args: json.RawMessage(`{"id":"` + artifactID.String() + `"}`),
	}})

	require.Len(t, results, 1)
	require.NotNil(t, results[0].Error)
	assert.Equal(t, "OWNERSHIP_VIOLATION", results[0].Error.Code)
}
