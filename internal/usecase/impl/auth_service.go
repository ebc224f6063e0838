package impl

import (
	"context"
	"log/slog"
	"time"

	"kindling/config"
	deliverycontext "kindling/internal/delivery/context"
	"kindling/internal/domain/entity"
	"kindling/internal/domain/repository"
	"kindling/internal/domain/service"
	"kindling/internal/errors"
	"kindling/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. Identity always comes
// from the server-side session store; nothing in a request body is trusted.
type authService struct {
	txManager   repository.TransactionManager
	tokenSvc    service.SessionTokenService
	ttl         time.Duration
	renewWithin time.Duration
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TokenSvc  service.SessionTokenService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		tokenSvc:    params.TokenSvc,
		ttl:         params.Config.Session.TTL,
		renewWithin: params.Config.Session.RenewWithin,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginWithGitHub upserts the user for the provider profile and issues a
// fresh session. Users are keyed by the provider-assigned id; profile
// fields are refreshed on every login, users are never hard-deleted here.
func (srv *authService) LoginWithGitHub(ctx context.Context, profile *service.OAuthProfile) (*usecase.LoginOutput, error) {
	token, err := srv.tokenSvc.GenerateToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	now := time.Now()
	expiresAt := now.Add(srv.ttl)

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		userRepo := txRepos.UserRepo()

		existing, err := userRepo.FindByGitHubID(ctx, profile.ID)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			id, err := uuid.NewV7()
			if err != nil {
				return errors.Wrap(err, "failed to generate user id")
			}

			user = &entity.User{
				ID:        id,
				GitHubID:  profile.ID,
				Username:  profile.Login,
				Email:     profile.Email,
				AvatarURL: profile.AvatarURL,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return errors.Wrap(err, "failed to create user")
			}
		case err != nil:
			return errors.Wrap(err, "failed to find user by provider id")
		default:
			existing.Username = profile.Login
			existing.Email = profile.Email
			existing.AvatarURL = profile.AvatarURL
			existing.UpdatedAt = now
			if err := userRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to refresh user profile")
			}
			user = existing
		}

		return errors.Wrap(txRepos.SessionRepo().Create(ctx, &entity.Session{
			ID:        srv.tokenSvc.HashToken(token),
			UserID:    user.ID,
			ExpiresAt: expiresAt,
		}), "failed to create session")
	})
	if err != nil {
		srv.log(ctx).Error("Login failed", slog.Int64("githubID", profile.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User signed in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// ValidateSession resolves a raw bearer token. Expired sessions are deleted
// in the same transaction; sessions nearing expiry are extended.
func (srv *authService) ValidateSession(ctx context.Context, token string) (*entity.User, *entity.Session, error) {
	if token == "" {
		return nil, nil, nil
	}

	id := srv.tokenSvc.HashToken(token)
	now := time.Now()

	var (
		user    *entity.User
		session *entity.Session
	)
	err := srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		sessionRepo := txRepos.SessionRepo()

		found, err := sessionRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find session")
		}

		if found.Expired(now) {
			// Expired sessions are removed, not just ignored.
			return errors.Wrap(sessionRepo.Delete(ctx, id), "failed to delete expired session")
		}

		owner, err := txRepos.UserRepo().FindByID(ctx, found.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(sessionRepo.Delete(ctx, id), "failed to delete orphaned session")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find session user")
		}

		if found.ShouldRenew(now, srv.renewWithin) {
			found.ExpiresAt = now.Add(srv.ttl)
			if err := sessionRepo.UpdateExpiry(ctx, id, found.ExpiresAt); err != nil {
				return errors.Wrap(err, "failed to renew session")
			}
		}

		user = owner
		session = found

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

// Logout deletes the session for the given raw token.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	id := srv.tokenSvc.HashToken(token)

	return srv.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		return errors.Wrap(txRepos.SessionRepo().Delete(ctx, id), "failed to delete session")
	})
}
