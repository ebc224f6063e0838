package service

import (
	"context"
	"time"
)

// SocialSession is the credential set returned by a platform login.
type SocialSession struct {
	AccountID    string // Stable account id at the platform, e.g. a DID.
	Username     string
	AccessToken  string
	RefreshToken string // Empty if the platform issues none.
	ExpiresAt    *time.Time
}

// SocialPost is a single post fetched from an external platform.
type SocialPost struct {
	ExternalID string // Platform-unique id, used for import deduplication.
	Text       string
	CreatedAt  time.Time
	ReplyTo    string // ExternalID of the parent post when this is a reply.
	ReplyRoot  string // ExternalID of the thread root when this is a reply.
	URL        string
	Likes      int
	Replies    int
	Reposts    int
}

// SocialPlatformService talks to an external publishing platform
// (currently Bluesky via atproto).
type SocialPlatformService interface {
	// Login authenticates with an identifier and app password.
	Login(ctx context.Context, identifier, password string) (*SocialSession, error)

	// FetchRecentPosts returns the account's own recent posts, newest first.
	FetchRecentPosts(ctx context.Context, accessToken, accountID string, limit int) ([]SocialPost, error)
}
