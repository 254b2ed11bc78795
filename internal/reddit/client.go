// Package reddit is a minimal Reddit API client covering the operations
// the bot needs: hot listings, new-submission streaming, comment
// create/edit/delete, crosspost lookup, and post resolution.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultBaseURL  = "https://oauth.reddit.com"
	defaultTokenURL = "https://www.reddit.com/api/v1/access_token"

	// hotLimit bounds the candidate listing; the front page of a feed
	// is all the matcher ever looks at.
	hotLimit = 25

	// newLimit bounds one poll of the /new listing.
	newLimit = 50
)

// Credentials for the script-type OAuth password grant.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}

// Client is a Reddit API client. It is safe for concurrent use.
type Client struct {
	creds        Credentials
	baseURL      string
	tokenURL     string
	userAgent    string
	httpClient   *http.Client
	pollInterval time.Duration

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTokenURL sets a custom token endpoint (for testing).
func WithTokenURL(u string) Option {
	return func(c *Client) { c.tokenURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithPollInterval sets how often streams poll the /new listing.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

// NewClient creates a Reddit client for the given script credentials.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:     creds,
		baseURL:   defaultBaseURL,
		tokenURL:  defaultTokenURL,
		userAgent: "parrot",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		pollInterval: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Username returns the identity the client posts as.
func (c *Client) Username() string {
	return c.creds.Username
}

// token returns a valid access token, fetching a new one when the
// cached token is missing or about to expire.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExpiry) > time.Minute {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type": {"password"},
		"username":   {c.creds.Username},
		"password":   {c.creds.Password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(c.creds.ClientID, c.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", ErrAuth
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request: %s", resp.Status)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", ErrAuth
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// do executes an authenticated request and decodes the JSON response
// into v when v is non-nil. form being non-nil makes it a POST.
func (c *Client) do(ctx context.Context, method, path string, form url.Values, v any) error {
	tok, err := c.token(ctx)
	if err != nil {
		return err
	}

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("User-Agent", c.userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("reddit API error: %s", resp.Status)
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Hot returns the current trending listing of a feed, at most 25 posts.
// The listing is a snapshot and not stable between calls.
func (c *Client) Hot(ctx context.Context, feed string) ([]Post, error) {
	var l listing
	path := fmt.Sprintf("/r/%s/hot?limit=%d&raw_json=1", feed, hotLimit)
	if err := c.do(ctx, http.MethodGet, path, nil, &l); err != nil {
		return nil, fmt.Errorf("hot %s: %w", feed, err)
	}
	return decodePosts(l)
}

// New returns the newest submissions of a feed, newest first.
func (c *Client) New(ctx context.Context, feed string) ([]Post, error) {
	var l listing
	path := fmt.Sprintf("/r/%s/new?limit=%d&raw_json=1", feed, newLimit)
	if err := c.do(ctx, http.MethodGet, path, nil, &l); err != nil {
		return nil, fmt.Errorf("new %s: %w", feed, err)
	}
	return decodePosts(l)
}

// GetPost resolves a post by its short id. Returns ErrNotFound when the
// post no longer exists.
func (c *Client) GetPost(ctx context.Context, id string) (Post, error) {
	var l listing
	path := "/api/info?id=t3_" + url.QueryEscape(id) + "&raw_json=1"
	if err := c.do(ctx, http.MethodGet, path, nil, &l); err != nil {
		return Post{}, fmt.Errorf("resolve post %s: %w", id, err)
	}
	posts, err := decodePosts(l)
	if err != nil {
		return Post{}, fmt.Errorf("resolve post %s: %w", id, err)
	}
	if len(posts) == 0 {
		return Post{}, ErrNotFound
	}
	return posts[0], nil
}

// Comments returns the top-level comments of a post.
func (c *Client) Comments(ctx context.Context, postID string) ([]Comment, error) {
	// The comments endpoint returns a two-element array: the post
	// listing, then the comment listing.
	var ls []listing
	path := "/comments/" + url.QueryEscape(postID) + "?depth=1&limit=100&raw_json=1"
	if err := c.do(ctx, http.MethodGet, path, nil, &ls); err != nil {
		return nil, fmt.Errorf("comments of %s: %w", postID, err)
	}
	if len(ls) < 2 {
		return nil, nil
	}
	var comments []Comment
	for _, t := range ls[1].Data.Children {
		if t.Kind != "t1" {
			continue
		}
		var d commentData
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, d.comment())
	}
	return comments, nil
}

// Duplicates returns the other submissions of the same link, i.e. the
// crossposts of a post.
func (c *Client) Duplicates(ctx context.Context, postID string) ([]Post, error) {
	// Same two-listing shape as /comments: the post, then its
	// duplicates.
	var ls []listing
	path := "/duplicates/" + url.QueryEscape(postID) + "?raw_json=1"
	if err := c.do(ctx, http.MethodGet, path, nil, &ls); err != nil {
		return nil, fmt.Errorf("duplicates of %s: %w", postID, err)
	}
	if len(ls) < 2 {
		return nil, nil
	}
	return decodePosts(ls[1])
}

// MyComments returns the client identity's most recent comments.
func (c *Client) MyComments(ctx context.Context, limit int) ([]Comment, error) {
	var l listing
	path := fmt.Sprintf("/user/%s/comments?sort=new&limit=%d&raw_json=1", url.PathEscape(c.creds.Username), limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &l); err != nil {
		return nil, fmt.Errorf("own comments: %w", err)
	}
	var comments []Comment
	for _, t := range l.Data.Children {
		var d commentData
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, d.comment())
	}
	return comments, nil
}

// Reply posts a comment under the thing with the given fullname.
func (c *Client) Reply(ctx context.Context, parentName, text string) (Comment, error) {
	form := url.Values{
		"api_type": {"json"},
		"thing_id": {parentName},
		"text":     {text},
	}
	var resp apiResponse
	if err := c.do(ctx, http.MethodPost, "/api/comment", form, &resp); err != nil {
		return Comment{}, fmt.Errorf("reply to %s: %w", parentName, err)
	}
	if err := apiErrors(resp); err != nil {
		return Comment{}, fmt.Errorf("reply to %s: %w", parentName, err)
	}
	if len(resp.JSON.Data.Things) == 0 {
		return Comment{}, fmt.Errorf("reply to %s: empty response", parentName)
	}
	var d commentData
	if err := json.Unmarshal(resp.JSON.Data.Things[0].Data, &d); err != nil {
		return Comment{}, fmt.Errorf("decode reply: %w", err)
	}
	return d.comment(), nil
}

// EditComment replaces the body of one of the client's own comments.
func (c *Client) EditComment(ctx context.Context, commentName, text string) error {
	form := url.Values{
		"api_type": {"json"},
		"thing_id": {commentName},
		"text":     {text},
	}
	var resp apiResponse
	if err := c.do(ctx, http.MethodPost, "/api/editusertext", form, &resp); err != nil {
		return fmt.Errorf("edit %s: %w", commentName, err)
	}
	if err := apiErrors(resp); err != nil {
		return fmt.Errorf("edit %s: %w", commentName, err)
	}
	return nil
}

// DeleteComment deletes one of the client's own comments.
func (c *Client) DeleteComment(ctx context.Context, commentName string) error {
	form := url.Values{"id": {commentName}}
	if err := c.do(ctx, http.MethodPost, "/api/del", form, nil); err != nil {
		return fmt.Errorf("delete %s: %w", commentName, err)
	}
	return nil
}

// apiErrors converts the error list of a write-endpoint envelope into a
// Go error. Rate limiting surfaces here with a 200 status.
func apiErrors(resp apiResponse) error {
	for _, e := range resp.JSON.Errors {
		if len(e) > 0 {
			if code, ok := e[0].(string); ok && code == "RATELIMIT" {
				return ErrRateLimited
			}
		}
	}
	if len(resp.JSON.Errors) > 0 {
		return fmt.Errorf("API errors: %v", resp.JSON.Errors)
	}
	return nil
}

func decodePosts(l listing) ([]Post, error) {
	posts := make([]Post, 0, len(l.Data.Children))
	for _, t := range l.Data.Children {
		if t.Kind != "t3" {
			continue
		}
		var d postData
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, d.post())
	}
	return posts, nil
}
