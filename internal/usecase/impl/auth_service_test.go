package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kindling/config"
	"kindling/internal/domain/entity"
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

const (
	testSessionTTL   = 30 * 24 * time.Hour
	testSessionRenew = 15 * 24 * time.Hour
)

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockTransactionManager, *mockService.MockSessionTokenService) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	tokenSvc := mockService.NewMockSessionTokenService(t)

	cfg := &config.Config{}
	cfg.Session.TTL = testSessionTTL
	cfg.Session.RenewWithin = testSessionRenew

	svc := NewAuthService(AuthServiceParams{
		TxManager: txManager,
		TokenSvc:  tokenSvc,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, txManager, tokenSvc
}

func TestAuthService_LoginWithGitHub_NewUser(t *testing.T) {
	authService, txManager, tokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()
	profile := &service.OAuthProfile{ID: 4242, Login: "octocat", Email: "octo@example.com", AvatarURL: "https://example.com/a.png"}

	tokenSvc.EXPECT().GenerateToken().Return("raw-token", nil)
	tokenSvc.EXPECT().HashToken("raw-token").Return("hashed-id")

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().SessionRepo().Return(sessionRepo)

	userRepo.EXPECT().FindByGitHubID(ctx, int64(4242)).Return(nil, repository.ErrUserNotFound)

	var createdUser *entity.User
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			createdUser = user
		}).
		Return(nil)

	var createdSession *entity.Session
	sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			createdSession = session
		}).
		Return(nil)

	expectTransaction(ctx, txManager, factory)

	output, err := authService.LoginWithGitHub(ctx, profile)

	require.NoError(t, err)
	assert.Equal(t, "raw-token", output.Token)
	require.NotNil(t, createdUser)
	assert.Equal(t, int64(4242), createdUser.GitHubID)
	assert.Equal(t, "octocat", createdUser.Username)
	require.NotNil(t, createdSession)
	assert.Equal(t, "hashed-id", createdSession.ID)
	assert.Equal(t, createdUser.ID, createdSession.UserID)
	assert.WithinDuration(t, time.Now().Add(testSessionTTL), createdSession.ExpiresAt, time.Minute)
}

func TestAuthService_LoginWithGitHub_RefreshesExistingProfile(t *testing.T) {
	authService, txManager, tokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), GitHubID: 4242, Username: "old-name", Email: "old@example.com"}
	profile := &service.OAuthProfile{ID: 4242, Login: "new-name", Email: "new@example.com"}

	tokenSvc.EXPECT().GenerateToken().Return("raw-token", nil)
	tokenSvc.EXPECT().HashToken("raw-token").Return("hashed-id")

	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().SessionRepo().Return(sessionRepo)

	userRepo.EXPECT().FindByGitHubID(ctx, int64(4242)).Return(existing, nil)

	var updated *entity.User
	userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			updated = user
		}).
		Return(nil)

	sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	expectTransaction(ctx, txManager, factory)

	output, err := authService.LoginWithGitHub(ctx, profile)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, output.User.ID)
	require.NotNil(t, updated)
	assert.Equal(t, "new-name", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestAuthService_ValidateSession_EmptyToken(t *testing.T) {
	authService, _, _ := newAuthServiceForTest(t)

	user, session, err := authService.ValidateSession(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, session)
}

func TestAuthService_ValidateSession_UnknownToken(t *testing.T) {
	authService, txManager, tokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()
	tokenSvc.EXPECT().HashToken("stale-token").Return("stale-id")

	factory := mockRepo.NewMockRepositoryFactory(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	factory.EXPECT().SessionRepo().Return(sessionRepo)
	sessionRepo.EXPECT().FindByID(ctx, "stale-id").Return(nil, repository.ErrSessionNotFound)

	expectTransaction(ctx, txManager, factory)

	user, session, err := authService.ValidateSession(ctx, "stale-token")

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, session)
}

func TestAuthService_ValidateSession_DeletesExpired(t *testing.T) {
	authService, txManager, tokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()
	tokenSvc.EXPECT().HashToken("raw-token").Return("hashed-id")

	expired := &entity.Session{ID: "hashed-id", UserID: uuid.New(), ExpiresAt: time.Now().Add(-time.Hour)}

	factory := mockRepo.NewMockRepositoryFactory(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	factory.EXPECT().SessionRepo().Return(sessionRepo)
	sessionRepo.EXPECT().FindByID(ctx, "hashed-id").Return(expired, nil)
	sessionRepo.EXPECT().Delete(ctx, "hashed-id").Return(nil)

	expectTransaction(ctx, txManager, factory)

	user, session, err := authService.ValidateSession(ctx, "raw-token")

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, session)
}

func TestAuthService_ValidateSession_RenewsNearExpiry(t *testing.T) {
	authService, txManager, tokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenSvc.EXPECT().HashToken("raw-token").Return("hashed-id")

	// Ten days left, under the fifteen-day renewal window.
	nearExpiry := &entity.Session{ID: "hashed-id", UserID: userID, ExpiresAt: time.Now().Add(10 * 24 * time.Hour)}
	owner := &entity.User{ID: userID, Username: "octocat"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().SessionRepo().Return(sessionRepo)
	factory.EXPECT().UserRepo().Return(userRepo)

	sessionRepo.EXPECT().FindByID(ctx, "hashed-id").Return(nearExpiry, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(owner, nil)

	var renewedTo time.Time
	sessionRepo.EXPECT().
		UpdateExpiry(ctx, "hashed-id", mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, id string, expiresAt time.Time) {
			renewedTo = expiresAt
		}).
		Return(nil)

	expectTransaction(ctx, txManager, factory)

	user, session, err := authService.ValidateSession(ctx, "raw-token")

	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, session)
	assert.Equal(t, userID, user.ID)
	assert.WithinDuration(t, time.Now().Add(testSessionTTL), renewedTo, time.Minute)
	assert.Equal(t, renewedTo, session.ExpiresAt)
}

func TestAuthService_ValidateSession_FreshSessionNotRenewed(t *testing.T) {
	authService, txManager, tokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenSvc.EXPECT().HashToken("raw-token").Return("hashed-id")

	fresh := &entity.Session{ID: "hashed-id", UserID: userID, ExpiresAt: time.Now().Add(testSessionTTL)}
	owner := &entity.User{ID: userID}

	factory := mockRepo.NewMockRepositoryFactory(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().SessionRepo().Return(sessionRepo)
	factory.EXPECT().UserRepo().Return(userRepo)

	sessionRepo.EXPECT().FindByID(ctx, "hashed-id").Return(fresh, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(owner, nil)

	expectTransaction(ctx, txManager, factory)

	user, session, err := authService.ValidateSession(ctx, "raw-token")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, fresh.ExpiresAt, session.ExpiresAt)
}

func TestAuthService_ValidateSession_DeletesOrphanedSession(t *testing.T) {
	authService, txManager, tokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	tokenSvc.EXPECT().HashToken("raw-token").Return("hashed-id")

	orphan := &entity.Session{ID: "hashed-id", UserID: userID, ExpiresAt: time.Now().Add(testSessionTTL)}

	factory := mockRepo.NewMockRepositoryFactory(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().SessionRepo().Return(sessionRepo)
	factory.EXPECT().UserRepo().Return(userRepo)

	sessionRepo.EXPECT().FindByID(ctx, "hashed-id").Return(orphan, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	sessionRepo.EXPECT().Delete(ctx, "hashed-id").Return(nil)

	expectTransaction(ctx, txManager, factory)

	user, session, err := authService.ValidateSession(ctx, "raw-token")

	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, session)
}

func TestAuthService_Logout(t *testing.T) {
	authService, txManager, tokenSvc := newAuthServiceForTest(t)

	ctx := context.Background()
	tokenSvc.EXPECT().HashToken("raw-token").Return("hashed-id")

	factory := mockRepo.NewMockRepositoryFactory(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	factory.EXPECT().SessionRepo().Return(sessionRepo)
	sessionRepo.EXPECT().Delete(ctx, "hashed-id").Return(nil)

	expectTransaction(ctx, txManager, factory)

	require.NoError(t, authService.Logout(ctx, "raw-token"))
}

func TestAuthService_Logout_EmptyToken(t *testing.T) {
	authService, _, _ := newAuthServiceForTest(t)

	require.NoError(t, authService.Logout(context.Background(), ""))
}
