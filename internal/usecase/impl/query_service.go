package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "kindling/internal/delivery/context"
	"kindling/internal/domain/entity"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/domain/repository"
	"kindling/internal/errors"
	"kindling/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// recentArtifactLimit bounds the few-shot example pool per artifact type.
	recentArtifactLimit = 3
	// recentIdeaLimit bounds the few-shot example pool of developed ideas.
	recentIdeaLimit = 5
)

// queryFunc materializes one named read for the caller.
type queryFunc func(ctx context.Context, caller uuid.UUID, args json.RawMessage) (any, error)

// queryService implements the QueryUsecase interface: named, owner-scoped,
// read-only projections used to hydrate the client cache. Queries read
// committed state through the shared connection; they take no locks and
// never write.
type queryService struct {
	ideaRepo     repository.IdeaRepository
	artifactRepo repository.ArtifactRepository
	settingsRepo repository.SettingsRepository
	validate     *validator.Validate
	registry     map[string]queryFunc
	logger       *slog.Logger
}

// QueryServiceParams holds dependencies for the query service, injected by Fx.
type QueryServiceParams struct {
	fx.In

	IdeaRepo     repository.IdeaRepository
	ArtifactRepo repository.ArtifactRepository
	SettingsRepo repository.SettingsRepository
	Logger       *slog.Logger
}

// NewQueryService is the constructor for queryService.
func NewQueryService(params QueryServiceParams) usecase.QueryUsecase {
	srv := &queryService{
		ideaRepo:     params.IdeaRepo,
		artifactRepo: params.ArtifactRepo,
		settingsRepo: params.SettingsRepo,
		validate:     newValidate(),
		logger:       params.Logger,
	}

	srv.registry = map[string]queryFunc{
		usecase.QueryAllIdeas:               srv.allIdeas,
		usecase.QueryInboxIdeas:             srv.inboxIdeas,
		usecase.QueryIdeaByID:               srv.ideaByID,
		usecase.QueryArtifactsByIdeaID:      srv.artifactsByIdeaID,
		usecase.QueryArtifactByID:           srv.artifactByID,
		usecase.QueryUserSettings:           srv.userSettings,
		usecase.QueryScheduledArtifacts:     srv.scheduledArtifacts,
		usecase.QueryRecentArtifactsByType:  srv.recentArtifactsByType,
		usecase.QueryRecentIdeasWithContent: srv.recentIdeasWithContent,
		usecase.QueryAllArtifacts:           srv.allArtifacts,
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *queryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Execute dispatches the named query. Unknown names fail explicitly so a
// misspelled client query never silently hydrates an empty cache.
func (srv *queryService) Execute(ctx context.Context, caller uuid.UUID, name string, args json.RawMessage) (any, error) {
	fn, ok := srv.registry[name]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnknownQuery.WithDetails(name))
	}

	rows, err := fn(ctx, caller, args)
	if err != nil {
		srv.log(ctx).Error("Query failed", slog.String("query", name), slog.Any("error", err))

		return nil, err
	}

	return rows, nil
}

func (srv *queryService) allIdeas(ctx context.Context, caller uuid.UUID, _ json.RawMessage) (any, error) {
	ideas, err := srv.ideaRepo.ListByOwner(ctx, caller)

	return ideas, errors.Wrap(err, "failed to list ideas")
}

func (srv *queryService) inboxIdeas(ctx context.Context, caller uuid.UUID, _ json.RawMessage) (any, error) {
	ideas, err := srv.ideaRepo.ListByOwnerAndStatus(ctx, caller, entity.IdeaStatusInbox)

	return ideas, errors.Wrap(err, "failed to list inbox ideas")
}

func (srv *queryService) ideaByID(ctx context.Context, caller uuid.UUID, args json.RawMessage) (any, error) {
	input, err := decodeArgs[usecase.IDArgs](srv.validate, args)
	if err != nil {
		return nil, err
	}

	idea, err := srv.ideaRepo.FindByID(ctx, input.ID)
	if errors.Is(err, repository.ErrIdeaNotFound) {
		return []*entity.ContentIdea{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find idea")
	}

	// Owner-scoped: a foreign row is indistinguishable from a missing one.
	if idea.Owner() != caller {
		return []*entity.ContentIdea{}, nil
	}

	return []*entity.ContentIdea{idea}, nil
}

func (srv *queryService) artifactsByIdeaID(ctx context.Context, caller uuid.UUID, args json.RawMessage) (any, error) {
	input, err := decodeArgs[usecase.IDArgs](srv.validate, args)
	if err != nil {
		return nil, err
	}

	artifacts, err := srv.artifactRepo.ListByIdea(ctx, caller, input.ID)

	return artifacts, errors.Wrap(err, "failed to list artifacts for idea")
}

func (srv *queryService) artifactByID(ctx context.Context, caller uuid.UUID, args json.RawMessage) (any, error) {
	input, err := decodeArgs[usecase.IDArgs](srv.validate, args)
	if err != nil {
		return nil, err
	}

	artifact, err := srv.artifactRepo.FindByID(ctx, input.ID)
	if errors.Is(err, repository.ErrArtifactNotFound) {
		return []*entity.ContentArtifact{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find artifact")
	}

	if artifact.Owner() != caller {
		return []*entity.ContentArtifact{}, nil
	}

	return []*entity.ContentArtifact{artifact}, nil
}

func (srv *queryService) userSettings(ctx context.Context, caller uuid.UUID, _ json.RawMessage) (any, error) {
	settings, err := srv.settingsRepo.FindByOwner(ctx, caller)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return []*entity.ContentSettings{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load settings")
	}

	return []*entity.ContentSettings{settings}, nil
}

func (srv *queryService) scheduledArtifacts(ctx context.Context, caller uuid.UUID, _ json.RawMessage) (any, error) {
	artifacts, err := srv.artifactRepo.ListScheduledByOwner(ctx, caller)

	return artifacts, errors.Wrap(err, "failed to list scheduled artifacts")
}

func (srv *queryService) recentArtifactsByType(ctx context.Context, caller uuid.UUID, args json.RawMessage) (any, error) {
	input, err := decodeArgs[usecase.ArtifactTypeArgs](srv.validate, args)
	if err != nil {
		return nil, err
	}

	artifacts, err := srv.artifactRepo.ListRecentByType(ctx, caller, input.ArtifactType, recentArtifactLimit)

	return artifacts, errors.Wrap(err, "failed to list recent artifacts by type")
}

func (srv *queryService) recentIdeasWithContent(ctx context.Context, caller uuid.UUID, _ json.RawMessage) (any, error) {
	ideas, err := srv.ideaRepo.ListRecentByOwner(ctx, caller, recentIdeaLimit)

	return ideas, errors.Wrap(err, "failed to list recent ideas")
}

func (srv *queryService) allArtifacts(ctx context.Context, caller uuid.UUID, _ json.RawMessage) (any, error) {
	artifacts, err := srv.artifactRepo.ListByOwner(ctx, caller)

	return artifacts, errors.Wrap(err, "failed to list artifacts")
}
