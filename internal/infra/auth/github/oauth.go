// Package github implements the GitHub server-side OAuth login flow.
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"kindling/config"
	"kindling/internal/domain/service"
	"kindling/internal/errors"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"
)

const userProfileURL = "https://api.github.com/user"

// oauthService implements the domain OAuthService against GitHub.
type oauthService struct {
	oauth      *oauth2.Config
	profileURL string
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(cfg *config.Config) (service.OAuthService, error) {
	if cfg.GitHubOAuth == nil || cfg.GitHubOAuth.ClientID == "" || cfg.GitHubOAuth.ClientSecret == "" {
		return nil, errors.New("github oauth client credentials must be provided")
	}

	return &oauthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.GitHubOAuth.ClientID,
			ClientSecret: cfg.GitHubOAuth.ClientSecret,
			RedirectURL:  cfg.GitHubOAuth.RedirectURL,
			Endpoint:     oauthgithub.Endpoint,
			// No scopes: the default grant covers the public profile, which
			// is all the login flow reads.
		},
		profileURL: userProfileURL,
	}, nil
}

// BuildAuthorizationURL returns the provider URL to redirect the browser to.
func (s *oauthService) BuildAuthorizationURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// githubUser is the subset of the GitHub user endpoint response we consume.
type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// ExchangeCode trades the callback authorization code for the provider
// profile of the signed-in user.
func (s *oauthService) ExchangeCode(ctx context.Context, code string) (*service.OAuthProfile, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "profile request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("profile fetch failed with status %d: %s", resp.StatusCode, string(body))
	}

	var user githubUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, errors.Wrap(err, "failed to parse profile response")
	}
	if user.ID == 0 {
		return nil, errors.New("profile response missing account id")
	}

	return &service.OAuthProfile{
		ID:        user.ID,
		Login:     user.Login,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}, nil
}

// compile-time interface check
var _ service.OAuthService = (*oauthService)(nil)
