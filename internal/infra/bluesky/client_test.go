package bluesky

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kindling/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientForTest(serviceURL string) *client {
	cfg := &config.Config{}
	cfg.Bluesky.ServiceURL = serviceURL

	return NewClient(cfg).(*client)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, createSessionPath, r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "alice.bsky.social", payload["identifier"])
		assert.Equal(t, "app-password", payload["password"])

		json.NewEncoder(w).Encode(map[string]string{
			"did":        "did:plc:abc",
			"handle":     "alice.bsky.social",
			"accessJwt":  "access-jwt",
			"refreshJwt": "refresh-jwt",
		})
	}))
	defer server.Close()

	session, err := newClientForTest(server.URL).Login(context.Background(), "alice.bsky.social", "app-password")

	require.NoError(t, err)
	assert.Equal(t, "did:plc:abc", session.AccountID)
	assert.Equal(t, "alice.bsky.social", session.Username)
	assert.Equal(t, "access-jwt", session.AccessToken)
	assert.Equal(t, "refresh-jwt", session.RefreshToken)
}

func TestClient_Login_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "AuthenticationRequired"})
	}))
	defer server.Close()

	_, err := newClientForTest(server.URL).Login(context.Background(), "alice.bsky.social", "wrong")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestClient_Login_MissingCredentialsInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"handle": "alice.bsky.social"})
	}))
	defer server.Close()

	_, err := newClientForTest(server.URL).Login(context.Background(), "alice.bsky.social", "app-password")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing credentials")
}

func feedItemJSON(uri, handle, text string, createdAt time.Time, likes int, replyRoot string) map[string]any {
	record := map[string]any{
		"text":      text,
		"createdAt": createdAt.Format(time.RFC3339),
	}
	if replyRoot != "" {
		record["reply"] = map[string]any{
			"parent": map[string]any{"uri": replyRoot},
			"root":   map[string]any{"uri": replyRoot},
		}
	}

	return map[string]any{
		"post": map[string]any{
			"uri":        uri,
			"author":     map[string]any{"handle": handle},
			"record":     record,
			"likeCount":  likes,
			"replyCount": 0,
		},
	}
}

func TestClient_FetchRecentPosts_MapsFeed(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, authorFeedPath, r.URL.Path)
		require.Equal(t, "Bearer access-jwt", r.Header.Get("Authorization"))
		assert.Equal(t, "did:plc:abc", r.URL.Query().Get("actor"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode(map[string]any{
			"feed": []map[string]any{
				feedItemJSON("at://did:plc:abc/app.bsky.feed.post/aaa", "alice.bsky.social", "hello", now, 7, ""),
				feedItemJSON("at://did:plc:abc/app.bsky.feed.post/bbb", "alice.bsky.social", "reply", now.Add(-time.Minute), 0, "at://did:plc:abc/app.bsky.feed.post/aaa"),
			},
		})
	}))
	defer server.Close()

	posts, err := newClientForTest(server.URL).FetchRecentPosts(context.Background(), "access-jwt", "did:plc:abc", 10)

	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "at://did:plc:abc/app.bsky.feed.post/aaa", posts[0].ExternalID)
	assert.Equal(t, "hello", posts[0].Text)
	assert.Equal(t, 7, posts[0].Likes)
	assert.Equal(t, "https://bsky.app/profile/alice.bsky.social/post/aaa", posts[0].URL)
	assert.Empty(t, posts[0].ReplyRoot)
	assert.True(t, now.Equal(posts[0].CreatedAt))

	assert.Equal(t, "at://did:plc:abc/app.bsky.feed.post/aaa", posts[1].ReplyRoot)
	assert.Equal(t, "at://did:plc:abc/app.bsky.feed.post/aaa", posts[1].ReplyTo)
}

func TestClient_FetchRecentPosts_PagesUntilLimit(t *testing.T) {
	var pages int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++

		switch r.URL.Query().Get("cursor") {
		case "":
			feed := make([]map[string]any, 0, feedPageSize)
			for i := range feedPageSize {
				uri := fmt.Sprintf("at://did:plc:abc/app.bsky.feed.post/p%d", i)
				feed = append(feed, feedItemJSON(uri, "alice.bsky.social", "post", time.Now(), 0, ""))
			}
			json.NewEncoder(w).Encode(map[string]any{"cursor": "page-2", "feed": feed})
		case "page-2":
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			feed := []map[string]any{
				feedItemJSON("at://did:plc:abc/app.bsky.feed.post/last", "alice.bsky.social", "tail", time.Now(), 0, ""),
			}
			json.NewEncoder(w).Encode(map[string]any{"feed": feed})
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("cursor"))
		}
	}))
	defer server.Close()

	posts, err := newClientForTest(server.URL).FetchRecentPosts(context.Background(), "access-jwt", "did:plc:abc", feedPageSize+10)

	require.NoError(t, err)
	assert.Len(t, posts, feedPageSize+1)
	assert.Equal(t, 2, pages)
}

func TestClient_FetchRecentPosts_EmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"feed": []map[string]any{}})
	}))
	defer server.Close()

	posts, err := newClientForTest(server.URL).FetchRecentPosts(context.Background(), "access-jwt", "did:plc:abc", 10)

	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostWebURL(t *testing.T) {
	assert.Equal(t,
		"https://bsky.app/profile/alice.bsky.social/post/abc123",
		postWebURL("alice.bsky.social", "at://did:plc:xyz/app.bsky.feed.post/abc123"))

	assert.Empty(t, postWebURL("", "at://did:plc:xyz/app.bsky.feed.post/abc123"))
	assert.Empty(t, postWebURL("alice.bsky.social", "no-slash"))
	assert.Empty(t, postWebURL("alice.bsky.social", "trailing/"))
}
