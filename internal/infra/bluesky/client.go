// Package bluesky talks to the Bluesky atproto XRPC API.
package bluesky

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kindling/config"
	"kindling/internal/domain/service"
	"kindling/internal/errors"
)

const (
	createSessionPath = "/xrpc/com.atproto.server.createSession"
	authorFeedPath    = "/xrpc/app.bsky.feed.getAuthorFeed"

	// The feed endpoint caps page size at 100; we stay at 50 per page.
	feedPageSize = 50

	requestTimeout = 30 * time.Second
)

// client implements the SocialPlatformService against a Bluesky PDS.
type client struct {
	serviceURL string
	httpClient *http.Client
}

// NewClient is the constructor for the Bluesky client.
func NewClient(cfg *config.Config) service.SocialPlatformService {
	return &client{
		serviceURL: strings.TrimRight(cfg.Bluesky.ServiceURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// createSessionResponse is the subset of the session endpoint we consume.
type createSessionResponse struct {
	DID        string `json:"did"`
	Handle     string `json:"handle"`
	AccessJwt  string `json:"accessJwt"`
	RefreshJwt string `json:"refreshJwt"`
}

// Login authenticates with an identifier and app password.
func (c *client) Login(ctx context.Context, identifier, password string) (*service.SocialSession, error) {
	payload, err := json.Marshal(map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode login payload")
	}

	body, err := c.do(ctx, http.MethodPost, c.serviceURL+createSessionPath, "", payload)
	if err != nil {
		return nil, err
	}

	var session createSessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, errors.Wrap(err, "failed to parse session response")
	}
	if session.DID == "" || session.AccessJwt == "" {
		return nil, errors.New("session response missing credentials")
	}

	return &service.SocialSession{
		AccountID:    session.DID,
		Username:     session.Handle,
		AccessToken:  session.AccessJwt,
		RefreshToken: session.RefreshJwt,
	}, nil
}

// feedResponse mirrors app.bsky.feed.getAuthorFeed.
type feedResponse struct {
	Cursor string     `json:"cursor"`
	Feed   []feedItem `json:"feed"`
}

type feedItem struct {
	Post feedPost `json:"post"`
}

type feedPost struct {
	URI    string `json:"uri"`
	Author struct {
		Handle string `json:"handle"`
	} `json:"author"`
	Record      postRecord `json:"record"`
	LikeCount   int        `json:"likeCount"`
	ReplyCount  int        `json:"replyCount"`
	RepostCount int        `json:"repostCount"`
}

type postRecord struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Reply     *struct {
		Parent struct {
			URI string `json:"uri"`
		} `json:"parent"`
		Root struct {
			URI string `json:"uri"`
		} `json:"root"`
	} `json:"reply"`
}

// FetchRecentPosts returns the account's own recent posts, newest first,
// paging through the author feed until limit posts are collected.
func (c *client) FetchRecentPosts(ctx context.Context, accessToken, accountID string, limit int) ([]service.SocialPost, error) {
	posts := make([]service.SocialPost, 0, limit)
	cursor := ""

	for len(posts) < limit {
		page, err := c.fetchFeedPage(ctx, accessToken, accountID, min(feedPageSize, limit-len(posts)), cursor)
		if err != nil {
			return nil, err
		}
		if len(page.Feed) == 0 {
			break
		}

		for _, item := range page.Feed {
			if item.Post.Record.Text == "" && item.Post.URI == "" {
				continue
			}

			post := service.SocialPost{
				ExternalID: item.Post.URI,
				Text:       item.Post.Record.Text,
				CreatedAt:  item.Post.Record.CreatedAt,
				URL:        postWebURL(item.Post.Author.Handle, item.Post.URI),
				Likes:      item.Post.LikeCount,
				Replies:    item.Post.ReplyCount,
				Reposts:    item.Post.RepostCount,
			}
			if item.Post.Record.Reply != nil {
				post.ReplyTo = item.Post.Record.Reply.Parent.URI
				post.ReplyRoot = item.Post.Record.Reply.Root.URI
			}

			posts = append(posts, post)
		}

		if page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	return posts, nil
}

func (c *client) fetchFeedPage(ctx context.Context, accessToken, actor string, limit int, cursor string) (*feedResponse, error) {
	query := url.Values{}
	query.Set("actor", actor)
	query.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	body, err := c.do(ctx, http.MethodGet, c.serviceURL+authorFeedPath+"?"+query.Encode(), accessToken, nil)
	if err != nil {
		return nil, err
	}

	var page feedResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrap(err, "failed to parse author feed")
	}

	return &page, nil
}

func (c *client) do(ctx context.Context, method, endpoint, accessToken string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("xrpc call failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// postWebURL renders the public web address of a post. The atproto URI ends
// with the record key, which is also the last path segment on the web.
func postWebURL(handle, uri string) string {
	idx := strings.LastIndex(uri, "/")
	if handle == "" || idx < 0 || idx == len(uri)-1 {
		return ""
	}

	return "https://bsky.app/profile/" + handle + "/post/" + uri[idx+1:]
}
