package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kindling/config"
	"kindling/internal/domain/entity"
	domainerrors "kindling/internal/domain/errors"
	"kindling/internal/domain/repository"
	"kindling/internal/domain/service"
	mockRepo "kindling/internal/mocks/repository"
	mockService "kindling/internal/mocks/service"
	"kindling/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testImportLimit = 100

type accountServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockConnectedAccountRepository
	cipher      *mockService.MockCredentialCipher
	bluesky     *mockService.MockSocialPlatformService
}

func newAccountServiceForTest(t *testing.T) (usecase.AccountUsecase, accountServiceMocks) {
	t.Helper()

	mocks := accountServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		accountRepo: mockRepo.NewMockConnectedAccountRepository(t),
		cipher:      mockService.NewMockCredentialCipher(t),
		bluesky:     mockService.NewMockSocialPlatformService(t),
	}

	cfg := &config.Config{}
	cfg.Bluesky.ImportLimit = testImportLimit

	svc := NewAccountService(AccountServiceParams{
		TxManager:   mocks.txManager,
		AccountRepo: mocks.accountRepo,
		Cipher:      mocks.cipher,
		Bluesky:     mocks.bluesky,
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, mocks
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	return appErr.ErrorCode()
}

func TestAccountService_ListAccounts_RedactsCredentials(t *testing.T) {
	svc, mocks := newAccountServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	refresh := "sealed-refresh"
	accounts := []*entity.ConnectedAccount{{
		ID:                uuid.New(),
		UserID:            caller,
		Provider:          entity.ProviderBluesky,
		ProviderAccountID: "did:plc:abc",
		Username:          "alice.bsky.social",
		AccessToken:       "sealed-access",
		RefreshToken:      &refresh,
	}}

	mocks.accountRepo.EXPECT().ListByOwner(ctx, caller).Return(accounts, nil)

	views, err := svc.ListAccounts(ctx, caller)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "alice.bsky.social", views[0].Username)
	assert.Equal(t, "did:plc:abc", views[0].ProviderAccountID)
}

func TestAccountService_ConnectBluesky_FirstConnection(t *testing.T) {
	svc, mocks := newAccountServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	mocks.bluesky.EXPECT().
		Login(ctx, "alice.bsky.social", "app-password").
		Return(&service.SocialSession{
			AccountID:    "did:plc:abc",
			Username:     "alice.bsky.social",
			AccessToken:  "access-jwt",
			RefreshToken: "refresh-jwt",
		}, nil)

	mocks.cipher.EXPECT().Encrypt("access-jwt").Return("sealed-access", nil)
	mocks.cipher.EXPECT().Encrypt("refresh-jwt").Return("sealed-refresh", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockConnectedAccountRepository(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)
	accountRepo.EXPECT().
		FindByOwnerAndProvider(ctx, caller, entity.ProviderBluesky).
		Return(nil, repository.ErrAccountNotFound)

	var created *entity.ConnectedAccount
	accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ConnectedAccount")).
		Run(func(ctx context.Context, account *entity.ConnectedAccount) {
			created = account
		}).
		Return(nil)

	expectTransaction(ctx, mocks.txManager, factory)

	view, err := svc.ConnectBluesky(ctx, caller, &usecase.ConnectBlueskyInput{
		Identifier: "alice.bsky.social",
		Password:   "app-password",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "sealed-access", created.AccessToken)
	require.NotNil(t, created.RefreshToken)
	assert.Equal(t, "sealed-refresh", *created.RefreshToken)
	assert.Equal(t, caller, created.UserID)
	assert.Equal(t, "alice.bsky.social", view.Username)
}

func TestAccountService_ConnectBluesky_ReconnectUpdatesInPlace(t *testing.T) {
	svc, mocks := newAccountServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	existing := &entity.ConnectedAccount{
		ID:          uuid.New(),
		UserID:      caller,
		Provider:    entity.ProviderBluesky,
		AccessToken: "stale-sealed",
	}

	mocks.bluesky.EXPECT().
		Login(ctx, "alice.bsky.social", "rotated-password").
		Return(&service.SocialSession{AccountID: "did:plc:abc", Username: "alice.bsky.social", AccessToken: "fresh-jwt"}, nil)
	mocks.cipher.EXPECT().Encrypt("fresh-jwt").Return("fresh-sealed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockConnectedAccountRepository(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)
	accountRepo.EXPECT().
		FindByOwnerAndProvider(ctx, caller, entity.ProviderBluesky).
		Return(existing, nil)

	var updated *entity.ConnectedAccount
	accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ConnectedAccount")).
		Run(func(ctx context.Context, account *entity.ConnectedAccount) {
			updated = account
		}).
		Return(nil)

	expectTransaction(ctx, mocks.txManager, factory)

	view, err := svc.ConnectBluesky(ctx, caller, &usecase.ConnectBlueskyInput{
		Identifier: "alice.bsky.social",
		Password:   "rotated-password",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, "fresh-sealed", updated.AccessToken)
	assert.Nil(t, updated.RefreshToken)
	assert.Equal(t, existing.ID, view.ID)
}

func TestAccountService_ConnectBluesky_LoginRejected(t *testing.T) {
	svc, mocks := newAccountServiceForTest(t)

	ctx := context.Background()

	mocks.bluesky.EXPECT().
		Login(ctx, "alice.bsky.social", "wrong-password").
		Return(nil, assert.AnError)

	_, err := svc.ConnectBluesky(ctx, uuid.New(), &usecase.ConnectBlueskyInput{
		Identifier: "alice.bsky.social",
		Password:   "wrong-password",
	})

	require.Error(t, err)
	assert.Equal(t, "PROVIDER_AUTH_FAILED", appErrorCode(t, err))
}

func TestAccountService_ConnectBluesky_MissingPassword(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)

	_, err := svc.ConnectBluesky(context.Background(), uuid.New(), &usecase.ConnectBlueskyInput{
		Identifier: "alice.bsky.social",
	})

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestAccountService_Disconnect_UnknownProvider(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)

	err := svc.Disconnect(context.Background(), uuid.New(), "mastodon")

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestAccountService_Disconnect_NeverConnectedIsNoOp(t *testing.T) {
	svc, mocks := newAccountServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockConnectedAccountRepository(t)
	factory.EXPECT().AccountRepo().Return(accountRepo)
	accountRepo.EXPECT().
		DeleteByOwnerAndProvider(ctx, caller, entity.ProviderBluesky).
		Return(repository.ErrAccountNotFound)

	expectTransaction(ctx, mocks.txManager, factory)

	require.NoError(t, svc.Disconnect(ctx, caller, entity.ProviderBluesky))
}

func TestAccountService_ImportPosts_NotConnected(t *testing.T) {
	svc, mocks := newAccountServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()

	mocks.accountRepo.EXPECT().
		FindByOwnerAndProvider(ctx, caller, entity.ProviderBluesky).
		Return(nil, repository.ErrAccountNotFound)

	_, err := svc.ImportPosts(ctx, caller, entity.ProviderBluesky)

	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrorCode(t, err))
}

func TestAccountService_ImportPosts_ProviderWithoutImporter(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)

	_, err := svc.ImportPosts(context.Background(), uuid.New(), entity.ProviderLinkedIn)

	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestAccountService_ImportPosts_CapturesThreadsAndStandalone(t *testing.T) {
	svc, mocks := newAccountServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	account := &entity.ConnectedAccount{
		ID:                uuid.New(),
		UserID:            caller,
		Provider:          entity.ProviderBluesky,
		ProviderAccountID: "did:plc:abc",
		AccessToken:       "sealed-access",
	}

	base := time.Now().Add(-time.Hour)
	posts := []service.SocialPost{
		{ExternalID: "at://abc/post/root", Text: "thread opener", CreatedAt: base, Likes: 7, Replies: 2, Reposts: 1, URL: "https://bsky.app/profile/alice/post/root"},
		{ExternalID: "at://abc/post/reply", Text: "thread follow-up", CreatedAt: base.Add(time.Minute), ReplyTo: "at://abc/post/root", ReplyRoot: "at://abc/post/root"},
		{ExternalID: "at://abc/post/solo", Text: "standalone take", CreatedAt: base.Add(2 * time.Minute), Likes: 3},
		// A reply into someone else's thread is not the author's content.
		{ExternalID: "at://abc/post/foreign", Text: "reply elsewhere", CreatedAt: base.Add(3 * time.Minute), ReplyTo: "at://other/post/x", ReplyRoot: "at://other/post/x"},
	}

	mocks.accountRepo.EXPECT().
		FindByOwnerAndProvider(ctx, caller, entity.ProviderBluesky).
		Return(account, nil)
	mocks.cipher.EXPECT().Decrypt("sealed-access").Return("access-jwt", nil)
	mocks.bluesky.EXPECT().
		FetchRecentPosts(ctx, "access-jwt", "did:plc:abc", testImportLimit).
		Return(posts, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	artifactRepo := mockRepo.NewMockArtifactRepository(t)
	factory.EXPECT().IdeaRepo().Return(ideaRepo)
	factory.EXPECT().ArtifactRepo().Return(artifactRepo)

	artifactRepo.EXPECT().
		FindByImportID(ctx, caller, "bluesky", "at://abc/post/root").
		Return(nil, repository.ErrArtifactNotFound)
	artifactRepo.EXPECT().
		FindByImportID(ctx, caller, "bluesky", "at://abc/post/solo").
		Return(nil, repository.ErrArtifactNotFound)

	createdIdeas := make([]*entity.ContentIdea, 0, 2)
	ideaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContentIdea")).
		Run(func(ctx context.Context, idea *entity.ContentIdea) {
			createdIdeas = append(createdIdeas, idea)
		}).
		Return(nil)

	createdArtifacts := make([]*entity.ContentArtifact, 0, 2)
	artifactRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ContentArtifact")).
		Run(func(ctx context.Context, artifact *entity.ContentArtifact) {
			createdArtifacts = append(createdArtifacts, artifact)
		}).
		Return(nil)

	expectTransaction(ctx, mocks.txManager, factory)

	output, err := svc.ImportPosts(ctx, caller, entity.ProviderBluesky)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Imported)
	assert.Equal(t, 0, output.Skipped)

	require.Len(t, createdIdeas, 2)
	require.Len(t, createdArtifacts, 2)

	thread := createdArtifacts[0]
	assert.Equal(t, entity.ArtifactTypeThread, thread.ArtifactType)
	assert.Equal(t, "thread opener\n\nthread follow-up", thread.Content)
	assert.Equal(t, entity.ArtifactStatusPublished, thread.Status)
	require.NotNil(t, thread.ImportExternalID)
	assert.Equal(t, "at://abc/post/root", *thread.ImportExternalID)
	require.NotNil(t, thread.Likes)
	assert.Equal(t, 7, *thread.Likes)
	require.NotNil(t, thread.PublishedURL)
	assert.Equal(t, "https://bsky.app/profile/alice/post/root", *thread.PublishedURL)

	solo := createdArtifacts[1]
	assert.Equal(t, entity.ArtifactTypeShortPost, solo.ArtifactType)
	assert.Equal(t, "standalone take", solo.Content)

	threadIdea := createdIdeas[0]
	assert.Equal(t, entity.IdeaStatusPublished, threadIdea.Status)
	assert.Equal(t, []string{"bluesky", "imported", "thread"}, threadIdea.Tags)
	assert.Contains(t, threadIdea.Notes, "Imported thread (2 posts) from Bluesky")
	assert.Equal(t, caller, threadIdea.UserID)

	soloIdea := createdIdeas[1]
	assert.Equal(t, []string{"bluesky", "imported"}, soloIdea.Tags)
	assert.Contains(t, soloIdea.Notes, "Imported from Bluesky")
}

func TestAccountService_ImportPosts_RefreshesAlreadyImported(t *testing.T) {
	svc, mocks := newAccountServiceForTest(t)

	ctx := context.Background()
	caller := uuid.New()
	account := &entity.ConnectedAccount{
		ID:                uuid.New(),
		UserID:            caller,
		Provider:          entity.ProviderBluesky,
		ProviderAccountID: "did:plc:abc",
		AccessToken:       "sealed-access",
	}

	posts := []service.SocialPost{
		{ExternalID: "at://abc/post/solo", Text: "seen before", CreatedAt: time.Now(), Likes: 40, Replies: 5, Reposts: 9},
	}

	source := "bluesky"
	externalID := "at://abc/post/solo"
	existing := &entity.ContentArtifact{
		ID:               uuid.New(),
		UserID:           caller,
		ImportSource:     &source,
		ImportExternalID: &externalID,
		Likes:            intPtr(10),
	}

	mocks.accountRepo.EXPECT().
		FindByOwnerAndProvider(ctx, caller, entity.ProviderBluesky).
		Return(account, nil)
	mocks.cipher.EXPECT().Decrypt("sealed-access").Return("access-jwt", nil)
	mocks.bluesky.EXPECT().
		FetchRecentPosts(ctx, "access-jwt", "did:plc:abc", testImportLimit).
		Return(posts, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	artifactRepo := mockRepo.NewMockArtifactRepository(t)
	factory.EXPECT().ArtifactRepo().Return(artifactRepo)

	artifactRepo.EXPECT().
		FindByImportID(ctx, caller, "bluesky", "at://abc/post/solo").
		Return(existing, nil)

	var refreshed *entity.ContentArtifact
	artifactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.ContentArtifact")).
		Run(func(ctx context.Context, artifact *entity.ContentArtifact) {
			refreshed = artifact
		}).
		Return(nil)

	expectTransaction(ctx, mocks.txManager, factory)

	output, err := svc.ImportPosts(ctx, caller, entity.ProviderBluesky)

	require.NoError(t, err)
	assert.Equal(t, 0, output.Imported)
	assert.Equal(t, 1, output.Skipped)
	require.NotNil(t, refreshed)
	require.NotNil(t, refreshed.Likes)
	assert.Equal(t, 40, *refreshed.Likes)
	require.NotNil(t, refreshed.Comments)
	assert.Equal(t, 5, *refreshed.Comments)
	require.NotNil(t, refreshed.Shares)
	assert.Equal(t, 9, *refreshed.Shares)
}

func TestGroupThreads(t *testing.T) {
	base := time.Now()
	posts := []service.SocialPost{
		{ExternalID: "root", Text: "first", CreatedAt: base},
		{ExternalID: "late-reply", Text: "third", CreatedAt: base.Add(2 * time.Minute), ReplyTo: "early-reply", ReplyRoot: "root"},
		{ExternalID: "early-reply", Text: "second", CreatedAt: base.Add(time.Minute), ReplyTo: "root", ReplyRoot: "root"},
		{ExternalID: "solo", Text: "alone", CreatedAt: base.Add(3 * time.Minute)},
		{ExternalID: "foreign", Text: "elsewhere", CreatedAt: base.Add(4 * time.Minute), ReplyTo: "other", ReplyRoot: "other"},
	}

	threads, standalone := groupThreads(posts)

	require.Len(t, threads, 1)
	assert.Equal(t, "root", threads[0].root.ExternalID)
	assert.Equal(t, "first\n\nsecond\n\nthird", threads[0].combinedText())

	require.Len(t, standalone, 1)
	assert.Equal(t, "solo", standalone[0].ExternalID)
}

func TestSummarize(t *testing.T) {
	short := "a concise thought"
	assert.Equal(t, short, summarize(short))

	long := ""
	for range 40 {
		long += "abc"
	}
	summary := summarize(long)
	assert.Len(t, []rune(summary), 103)
	assert.Equal(t, "...", summary[len(summary)-3:])
}
