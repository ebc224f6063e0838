package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"kindling/config"
	deliverycontext "kindling/internal/delivery/context"
	"kindling/internal/domain/entity"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/domain/repository"
	"kindling/internal/domain/service"
	"kindling/internal/errors"
	"kindling/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// oneLinerLimit caps the idea summary derived from an imported post.
const oneLinerLimit = 100

// accountService implements the AccountUsecase interface: external platform
// connections and post imports.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.ConnectedAccountRepository
	cipher      service.CredentialCipher
	socials     map[entity.Provider]service.SocialPlatformService
	validate    *validator.Validate
	importLimit int
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for the account service, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.ConnectedAccountRepository
	Cipher      service.CredentialCipher
	Bluesky     service.SocialPlatformService `name:"bluesky"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		cipher:      params.Cipher,
		socials: map[entity.Provider]service.SocialPlatformService{
			entity.ProviderBluesky: params.Bluesky,
		},
		validate:    newValidate(),
		importLimit: params.Config.Bluesky.ImportLimit,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccounts returns the caller's connected accounts with credential
// material stripped.
func (srv *accountService) ListAccounts(ctx context.Context, caller uuid.UUID) ([]*usecase.ConnectedAccountView, error) {
	accounts, err := srv.accountRepo.ListByOwner(ctx, caller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connected accounts")
	}

	views := make([]*usecase.ConnectedAccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, redactAccount(account))
	}

	return views, nil
}

// ConnectBluesky authenticates against Bluesky with an app password and
// stores the encrypted session credentials, replacing any existing
// connection for the provider.
func (srv *accountService) ConnectBluesky(ctx context.Context, caller uuid.UUID, input *usecase.ConnectBlueskyInput) (*usecase.ConnectedAccountView, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(describeViolations(err))
	}

	session, err := srv.socials[entity.ProviderBluesky].Login(ctx, input.Identifier, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Bluesky login rejected", slog.Any("userID", caller), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrProviderAuthFailed)
	}

	accessToken, err := srv.cipher.Encrypt(session.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt access token")
	}

	var refreshToken *string
	if session.RefreshToken != "" {
		sealed, err := srv.cipher.Encrypt(session.RefreshToken)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encrypt refresh token")
		}
		refreshToken = &sealed
	}

	var view *usecase.ConnectedAccountView
	err = srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		accountRepo := txRepos.AccountRepo()
		now := time.Now()

		account, err := accountRepo.FindByOwnerAndProvider(ctx, caller, entity.ProviderBluesky)
		if errors.Is(err, repository.ErrAccountNotFound) {
			id, err := uuid.NewV7()
			if err != nil {
				return errors.Wrap(err, "failed to generate account id")
			}

			account = &entity.ConnectedAccount{
				ID:                id,
				UserID:            caller,
				Provider:          entity.ProviderBluesky,
				ProviderAccountID: session.AccountID,
				Username:          session.Username,
				AccessToken:       accessToken,
				RefreshToken:      refreshToken,
				ExpiresAt:         session.ExpiresAt,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
			view = redactAccount(account)

			return errors.Wrap(accountRepo.Create(ctx, account), "failed to create connected account")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load connected account")
		}

		account.ProviderAccountID = session.AccountID
		account.Username = session.Username
		account.AccessToken = accessToken
		account.RefreshToken = refreshToken
		account.ExpiresAt = session.ExpiresAt
		account.UpdatedAt = now
		view = redactAccount(account)

		return errors.Wrap(accountRepo.Update(ctx, account), "failed to update connected account")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Connected Bluesky account",
		slog.Any("userID", caller), slog.String("handle", view.Username))

	return view, nil
}

// Disconnect removes the caller's account for a provider. Disconnecting a
// provider that was never connected is a no-op.
func (srv *accountService) Disconnect(ctx context.Context, caller uuid.UUID, provider entity.Provider) error {
	if !provider.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("provider: unknown provider")
	}

	return srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		err := txRepos.AccountRepo().DeleteByOwnerAndProvider(ctx, caller, provider)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete connected account")
	})
}

// ImportPosts fetches the caller's recent posts from the provider and
// captures each one as a published idea plus artifact. Self-reply chains
// collapse into a single thread artifact; previously imported posts only get
// their engagement metrics refreshed.
func (srv *accountService) ImportPosts(ctx context.Context, caller uuid.UUID, provider entity.Provider) (*usecase.ImportOutput, error) {
	if !provider.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provider: unknown provider")
	}

	social, ok := srv.socials[provider]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provider: imports are not available for " + string(provider))
	}

	account, err := srv.accountRepo.FindByOwnerAndProvider(ctx, caller, provider)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.WithStack(domainerrors.ErrNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load connected account")
	}

	accessToken, err := srv.cipher.Decrypt(account.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt access token")
	}

	posts, err := social.FetchRecentPosts(ctx, accessToken, account.ProviderAccountID, srv.importLimit)
	if err != nil {
		srv.log(ctx).Warn("Fetching posts failed",
			slog.Any("userID", caller), slog.String("provider", string(provider)), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrProviderAuthFailed)
	}

	threads, standalone := groupThreads(posts)

	output := &usecase.ImportOutput{}
	err = srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		for _, thread := range threads {
			imported, err := srv.importThread(ctx, txRepos, caller, provider, thread)
			if err != nil {
				return err
			}
			tally(output, imported)
		}

		for _, post := range standalone {
			imported, err := srv.importPost(ctx, txRepos, caller, provider, post)
			if err != nil {
				return err
			}
			tally(output, imported)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Import finished",
		slog.Any("userID", caller),
		slog.String("provider", string(provider)),
		slog.Int("imported", output.Imported),
		slog.Int("skipped", output.Skipped))

	return output, nil
}

// importThread captures one self-reply chain as a thread artifact rooted at
// its first post. Returns false when the thread was imported before.
func (srv *accountService) importThread(ctx context.Context, txRepos repository.RepositoryFactory, caller uuid.UUID, provider entity.Provider, thread socialThread) (bool, error) {
	refreshed, err := srv.refreshImported(ctx, txRepos, caller, provider, thread.root.ExternalID, thread.root)
	if err != nil || refreshed {
		return false, err
	}

	notes := fmt.Sprintf("Imported thread (%d posts) from %s on %s",
		len(thread.posts), providerLabel(provider), time.Now().Format(time.RFC3339))

	return true, srv.captureImport(ctx, txRepos, caller, provider, capturedImport{
		text:         thread.combinedText(),
		notes:        notes,
		tags:         []string{string(provider), "imported", "thread"},
		artifactType: entity.ArtifactTypeThread,
		root:         thread.root,
	})
}

// importPost captures one standalone post as a short-post artifact.
func (srv *accountService) importPost(ctx context.Context, txRepos repository.RepositoryFactory, caller uuid.UUID, provider entity.Provider, post service.SocialPost) (bool, error) {
	refreshed, err := srv.refreshImported(ctx, txRepos, caller, provider, post.ExternalID, post)
	if err != nil || refreshed {
		return false, err
	}

	notes := fmt.Sprintf("Imported from %s on %s", providerLabel(provider), time.Now().Format(time.RFC3339))

	return true, srv.captureImport(ctx, txRepos, caller, provider, capturedImport{
		text:         post.Text,
		notes:        notes,
		tags:         []string{string(provider), "imported"},
		artifactType: entity.ArtifactTypeShortPost,
		root:         post,
	})
}

// refreshImported updates engagement metrics on an already-imported artifact.
// Returns true when a matching artifact existed.
func (srv *accountService) refreshImported(ctx context.Context, txRepos repository.RepositoryFactory, caller uuid.UUID, provider entity.Provider, externalID string, root service.SocialPost) (bool, error) {
	artifactRepo := txRepos.ArtifactRepo()

	existing, err := artifactRepo.FindByImportID(ctx, caller, string(provider), externalID)
	if errors.Is(err, repository.ErrArtifactNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check import provenance")
	}

	existing.Likes = intPtr(root.Likes)
	existing.Comments = intPtr(root.Replies)
	existing.Shares = intPtr(root.Reposts)
	existing.UpdatedAt = time.Now()

	return true, errors.Wrap(artifactRepo.Update(ctx, existing), "failed to refresh imported metrics")
}

// capturedImport is one unit of imported content: a published idea plus the
// artifact that carries provenance and metrics.
type capturedImport struct {
	text         string
	notes        string
	tags         []string
	artifactType entity.ArtifactType
	root         service.SocialPost
}

func (srv *accountService) captureImport(ctx context.Context, txRepos repository.RepositoryFactory, caller uuid.UUID, provider entity.Provider, capture capturedImport) error {
	ideaID, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate idea id")
	}
	artifactID, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate artifact id")
	}

	now := time.Now()

	if err := txRepos.IdeaRepo().Create(ctx, &entity.ContentIdea{
		ID:        ideaID,
		UserID:    caller,
		OneLiner:  summarize(capture.text),
		Status:    entity.IdeaStatusPublished,
		Content:   capture.text,
		Notes:     capture.notes,
		Tags:      capture.tags,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return errors.Wrap(err, "failed to create imported idea")
	}

	publishedAt := capture.root.CreatedAt
	label := providerLabel(provider)
	source := string(provider)
	externalID := capture.root.ExternalID

	artifact := &entity.ContentArtifact{
		ID:               artifactID,
		UserID:           caller,
		IdeaID:           ideaID,
		Content:          capture.text,
		ArtifactType:     capture.artifactType,
		Platform:         &label,
		Status:           entity.ArtifactStatusPublished,
		PublishedAt:      &publishedAt,
		PublishedURL:     normalizeText(&capture.root.URL),
		Likes:            intPtr(capture.root.Likes),
		Comments:         intPtr(capture.root.Replies),
		Shares:           intPtr(capture.root.Reposts),
		ImportSource:     &source,
		ImportExternalID: &externalID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return errors.Wrap(txRepos.ArtifactRepo().Create(ctx, artifact), "failed to create imported artifact")
}

// socialThread is a self-reply chain rooted at the author's own post, in
// creation order.
type socialThread struct {
	root  service.SocialPost
	posts []service.SocialPost
}

func (t socialThread) combinedText() string {
	parts := make([]string, 0, len(t.posts))
	for _, p := range t.posts {
		parts = append(parts, p.Text)
	}

	return strings.Join(parts, "\n\n")
}

// groupThreads splits fetched posts into self-reply threads and standalone
// posts. Replies whose thread root is not among the fetched posts are replies
// to someone else and are dropped entirely.
func groupThreads(posts []service.SocialPost) ([]socialThread, []service.SocialPost) {
	byID := make(map[string]service.SocialPost, len(posts))
	for _, p := range posts {
		byID[p.ExternalID] = p
	}

	replies := make(map[string][]service.SocialPost)
	rootOrder := make([]string, 0)
	standalone := make([]service.SocialPost, 0)

	for _, post := range posts {
		if post.ReplyRoot == "" || post.ReplyTo == "" {
			standalone = append(standalone, post)

			continue
		}

		if _, ours := byID[post.ReplyRoot]; !ours {
			continue
		}

		if _, seen := replies[post.ReplyRoot]; !seen {
			rootOrder = append(rootOrder, post.ReplyRoot)
		}
		replies[post.ReplyRoot] = append(replies[post.ReplyRoot], post)
	}

	threads := make([]socialThread, 0, len(rootOrder))
	for _, rootID := range rootOrder {
		root := byID[rootID]
		chain := append([]service.SocialPost{root}, replies[rootID]...)
		sort.SliceStable(chain, func(i, j int) bool {
			return chain[i].CreatedAt.Before(chain[j].CreatedAt)
		})

		threads = append(threads, socialThread{root: root, posts: chain})

		// The root itself is no longer standalone.
		for i, p := range standalone {
			if p.ExternalID == rootID {
				standalone = append(standalone[:i], standalone[i+1:]...)

				break
			}
		}
	}

	return threads, standalone
}

// summarize derives an idea one-liner from post text, truncated to the
// summary limit.
func summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= oneLinerLimit {
		return strings.TrimSpace(text)
	}

	return strings.TrimSpace(string(runes[:oneLinerLimit])) + "..."
}

func providerLabel(provider entity.Provider) string {
	switch provider {
	case entity.ProviderBluesky:
		return "Bluesky"
	case entity.ProviderLinkedIn:
		return "LinkedIn"
	default:
		return string(provider)
	}
}

func redactAccount(account *entity.ConnectedAccount) *usecase.ConnectedAccountView {
	return &usecase.ConnectedAccountView{
		ID:                account.ID,
		Provider:          account.Provider,
		ProviderAccountID: account.ProviderAccountID,
		Username:          account.Username,
		ExpiresAt:         account.ExpiresAt,
		CreatedAt:         account.CreatedAt,
	}
}

func tally(output *usecase.ImportOutput, imported bool) {
	if imported {
		output.Imported++
	} else {
		output.Skipped++
	}
}

func intPtr(v int) *int {
	return &v
}
