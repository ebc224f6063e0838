package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"kindling/config"
	deliverycontext "kindling/internal/delivery/context"
	"kindling/internal/domain/entity"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/domain/repository"
	"kindling/internal/errors"
	"kindling/internal/usecase"
	"kindling/internal/usecase/patch"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// mutatorFunc is one named, server-authoritative write operation. It runs
// validate -> authorize -> apply, entirely inside one transaction.
type mutatorFunc func(ctx context.Context, caller uuid.UUID, args json.RawMessage) error

// mutationService implements the MutationUsecase interface: the registry of
// named mutators invoked by the sync engine's push protocol.
type mutationService struct {
	txManager repository.TransactionManager
	validate  *validator.Validate
	registry  map[string]mutatorFunc
	logger    *slog.Logger
}

// MutationServiceParams holds dependencies for the mutation service, injected by Fx.
type MutationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMutationService is the constructor for mutationService.
func NewMutationService(params MutationServiceParams) usecase.MutationUsecase {
	srv := &mutationService{
		txManager: params.TxManager,
		validate:  newValidate(),
		logger:    params.Logger,
	}

	srv.registry = map[string]mutatorFunc{
		"idea.create":     srv.createIdea,
		"idea.update":     srv.updateIdea,
		"settings.upsert": srv.upsertSettings,
		"artifact.create": srv.createArtifact,
		"artifact.update": srv.updateArtifact,
		"artifact.delete": srv.deleteArtifact,
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mutationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PushBatch applies each mutation in its own transaction and reports
// per-mutation outcomes: one failing mutation never rolls back the others.
func (srv *mutationService) PushBatch(ctx context.Context, caller uuid.UUID, mutations []usecase.Mutation) []usecase.MutationResult {
	results := make([]usecase.MutationResult, 0, len(mutations))

	for _, m := range mutations {
		result := usecase.MutationResult{ID: m.ID, Name: m.Name}

		fn, ok := srv.registry[m.Name]
		if !ok {
			// Unknown names fail loudly; a silent no-op would leave the
			// client cache permanently diverged.
			result.Error = srv.describeFailure(ctx, m.Name, errors.WithStack(domainerrors.ErrUnknownMutation))
			results = append(results, result)

			continue
		}

		if err := fn(ctx, caller, m.Args); err != nil {
			result.Error = srv.describeFailure(ctx, m.Name, err)
		}

		results = append(results, result)
	}

	return results
}

// describeFailure maps a mutator error onto the wire taxonomy. Expected
// domain failures pass through with their business code; anything else is
// logged with full context and surfaced opaquely.
func (srv *mutationService) describeFailure(ctx context.Context, name string, err error) *usecase.MutationError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
		message := appErr.Message()
		if details := appErr.Details(); details != "" {
			message += ": " + details
		}

		return &usecase.MutationError{Code: appErr.ErrorCode(), Message: message}
	}

	srv.log(ctx).Error("Mutation failed", slog.String("mutation", name), slog.Any("error", err))

	return &usecase.MutationError{
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: domainerrors.ErrInternalError.Message(),
	}
}

func (srv *mutationService) createIdea(ctx context.Context, caller uuid.UUID, args json.RawMessage) error {
	input, err := decodeArgs[usecase.CreateIdeaInput](srv.validate, args)
	if err != nil {
		return err
	}

	now := time.Now()
	idea := &entity.ContentIdea{
		ID:        input.ID,
		UserID:    caller,
		OneLiner:  input.OneLiner,
		Status:    entity.IdeaStatusInbox,
		Content:   "",
		Notes:     "",
		Tags:      input.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if err := txRepos.IdeaRepo().Create(ctx, idea); err != nil {
			if errors.Is(err, repository.ErrDuplicateID) {
				// Retried create with the same client-generated id; the row
				// already exists, never duplicate it.
				return errors.WithStack(domainerrors.ErrConflict)
			}

			return errors.Wrap(err, "failed to create idea")
		}

		return nil
	})
}

func (srv *mutationService) updateIdea(ctx context.Context, caller uuid.UUID, args json.RawMessage) error {
	input, err := decodeArgs[usecase.UpdateIdeaInput](srv.validate, args)
	if err != nil {
		return err
	}

	// Every idea column is NOT NULL; explicit nulls are schema violations.
	if err := requireNotNull(map[string]interface{ IsNull() bool }{
		"oneLiner": input.OneLiner,
		"status":   input.Status,
		"content":  input.Content,
		"notes":    input.Notes,
		"tags":     input.Tags,
	}); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		ideaRepo := txRepos.IdeaRepo()

		found, err := ideaRepo.FindByID(ctx, input.ID)
		idea, err := ownedRow(caller, found, err, repository.ErrIdeaNotFound)
		if err != nil {
			return err
		}

		input.OneLiner.Apply(&idea.OneLiner)
		input.Status.Apply(&idea.Status)
		input.Content.Apply(&idea.Content)
		input.Notes.Apply(&idea.Notes)
		input.Tags.Apply(&idea.Tags)
		idea.UpdatedAt = time.Now()

		if err := ideaRepo.Update(ctx, idea); err != nil {
			return errors.Wrap(err, "failed to update idea")
		}

		reloaded, err := ideaRepo.FindByID(ctx, input.ID)

		return assertStillOwned(caller, reloaded, err)
	})
}

func (srv *mutationService) upsertSettings(ctx context.Context, caller uuid.UUID, args json.RawMessage) error {
	input, err := decodeArgs[usecase.UpsertSettingsInput](srv.validate, args)
	if err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		settingsRepo := txRepos.SettingsRepo()
		now := time.Now()

		settings, err := settingsRepo.FindByOwner(ctx, caller)
		if errors.Is(err, repository.ErrSettingsNotFound) {
			id, err := uuid.NewV7()
			if err != nil {
				return errors.Wrap(err, "failed to generate settings id")
			}

			return errors.Wrap(settingsRepo.Create(ctx, &entity.ContentSettings{
				ID:                id,
				UserID:            caller,
				TargetAudience:    input.TargetAudience,
				BrandVoice:        input.BrandVoice,
				ContentPillars:    input.ContentPillars,
				UniquePerspective: input.UniquePerspective,
				CreatedAt:         now,
				UpdatedAt:         now,
			}), "failed to create settings")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load settings")
		}

		settings.TargetAudience = input.TargetAudience
		settings.BrandVoice = input.BrandVoice
		settings.ContentPillars = input.ContentPillars
		settings.UniquePerspective = input.UniquePerspective
		settings.UpdatedAt = now

		return errors.Wrap(settingsRepo.Update(ctx, settings), "failed to update settings")
	})
}

func (srv *mutationService) createArtifact(ctx context.Context, caller uuid.UUID, args json.RawMessage) error {
	input, err := decodeArgs[usecase.CreateArtifactInput](srv.validate, args)
	if err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		// The parent idea must exist and belong to the caller; the foreign
		// key alone cannot distinguish "missing" from "not yours".
		found, err := txRepos.IdeaRepo().FindByID(ctx, input.IdeaID)
		if _, err := ownedRow(caller, found, err, repository.ErrIdeaNotFound); err != nil {
			return err
		}

		now := time.Now()
		artifact := &entity.ContentArtifact{
			ID:                 input.ID,
			UserID:             caller,
			IdeaID:             input.IdeaID,
			Title:              normalizeText(input.Title),
			Content:            input.Content,
			ArtifactType:       input.ArtifactType,
			Platform:           normalizeText(input.Platform),
			Status:             entity.ArtifactStatusDraft,
			PlannedPublishDate: input.PlannedPublishDate,
			Notes:              normalizeText(input.Notes),
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		if err := txRepos.ArtifactRepo().Create(ctx, artifact); err != nil {
			if errors.Is(err, repository.ErrDuplicateID) {
				return errors.WithStack(domainerrors.ErrConflict)
			}

			return errors.Wrap(err, "failed to create artifact")
		}

		return nil
	})
}

func (srv *mutationService) updateArtifact(ctx context.Context, caller uuid.UUID, args json.RawMessage) error {
	input, err := decodeArgs[usecase.UpdateArtifactInput](srv.validate, args)
	if err != nil {
		return err
	}

	if err := requireNotNull(map[string]interface{ IsNull() bool }{
		"content":      input.Content,
		"artifactType": input.ArtifactType,
		"status":       input.Status,
	}); err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		artifactRepo := txRepos.ArtifactRepo()

		found, err := artifactRepo.FindByID(ctx, input.ID)
		artifact, err := ownedRow(caller, found, err, repository.ErrArtifactNotFound)
		if err != nil {
			return err
		}

		applyNullableText(input.Title, &artifact.Title)
		input.Content.Apply(&artifact.Content)
		input.ArtifactType.Apply(&artifact.ArtifactType)
		applyNullableText(input.Platform, &artifact.Platform)
		input.Status.Apply(&artifact.Status)
		input.PlannedPublishDate.ApplyPtr(&artifact.PlannedPublishDate)
		input.PublishedAt.ApplyPtr(&artifact.PublishedAt)
		applyNullableText(input.PublishedURL, &artifact.PublishedURL)
		input.Impressions.ApplyPtr(&artifact.Impressions)
		input.Likes.ApplyPtr(&artifact.Likes)
		input.Comments.ApplyPtr(&artifact.Comments)
		input.Shares.ApplyPtr(&artifact.Shares)
		applyNullableText(input.Notes, &artifact.Notes)
		artifact.UpdatedAt = time.Now()

		if err := artifactRepo.Update(ctx, artifact); err != nil {
			return errors.Wrap(err, "failed to update artifact")
		}

		reloaded, err := artifactRepo.FindByID(ctx, input.ID)

		return assertStillOwned(caller, reloaded, err)
	})
}

func (srv *mutationService) deleteArtifact(ctx context.Context, caller uuid.UUID, args json.RawMessage) error {
	input, err := decodeArgs[usecase.DeleteArtifactInput](srv.validate, args)
	if err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		artifactRepo := txRepos.ArtifactRepo()

		found, err := artifactRepo.FindByID(ctx, input.ID)
		if _, err := ownedRow(caller, found, err, repository.ErrArtifactNotFound); err != nil {
			return err
		}

		return errors.Wrap(artifactRepo.Delete(ctx, input.ID), "failed to delete artifact")
	})
}

// normalizeText coerces empty optional text to NULL at create time.
func normalizeText(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}

	return p
}

// applyNullableText writes a nullable text column: explicit null and empty
// string both clear it, absence leaves it untouched.
func applyNullableText(f patch.Field[string], dst **string) {
	if !f.IsSet() {
		return
	}

	if v, ok := f.Value(); ok && v != "" {
		*dst = &v

		return
	}

	*dst = nil
}
