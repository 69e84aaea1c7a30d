package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/okoshkin/feedline/internal/client/models"
)

// DefaultTimeout bounds every request; the backend specifies none, so expiry
// is treated the same as any other transport failure.
const DefaultTimeout = 10 * time.Second

// RESTClient implements Client over the backend's JSON REST API.
type RESTClient struct {
	baseURL string
	tokens  TokenSource
	httpc   *http.Client
	timeout time.Duration
}

// NewRESTClient builds a client for the given base URL. tokens may be nil for
// a client that only performs unauthorized calls. A non-positive timeout
// falls back to DefaultTimeout.
func NewRESTClient(baseURL string, tokens TokenSource, timeout time.Duration) *RESTClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RESTClient{
		baseURL: baseURL,
		tokens:  tokens,
		httpc:   &http.Client{},
		timeout: timeout,
	}
}

func (c *RESTClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

// envelope is the backend's uniform response shape. Auth endpoints omit the
// success flag; feed and mutation endpoints carry it.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`

	Token  string               `json:"token"`
	User   *models.WireUser     `json:"user"`
	Users  []models.WireUser    `json:"users"`
	Posts  []models.PostRecord  `json:"posts"`
	Videos []models.VideoRecord `json:"videos"`
	URL    string               `json:"url"`
}

// do issues one request and normalizes every failure path. Non-2xx statuses
// and success:false envelopes both surface the backend's message when the
// body carries one.
func (c *RESTClient) do(ctx context.Context, method, path string, body any, authorized bool) (*envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, payloadErr("", fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, transportErr(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authorized {
		if c.tokens == nil {
			return nil, credentialsErr()
		}
		token, err := c.tokens.Token(ctx)
		if err != nil || token == "" {
			return nil, credentialsErr()
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, transportErr(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportErr(err)
	}

	var env envelope
	if len(raw) > 0 {
		// An undecodable body on an error status still produces a status
		// error; the message is just lost.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusErr(resp.StatusCode, env.Message)
	}
	if env.Success != nil && !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return nil, payloadErr(msg, nil)
	}
	return &env, nil
}

func (c *RESTClient) SignUp(ctx context.Context, name, email, password string) (*AuthResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/signup", body, false)
	if err != nil {
		return nil, err
	}
	if env.User == nil || env.Token == "" {
		return nil, payloadErr("signup response is missing token or user", nil)
	}
	return &AuthResult{Token: env.Token, User: *env.User}, nil
}

func (c *RESTClient) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/signin", body, false)
	if err != nil {
		return nil, err
	}
	if env.User == nil || env.Token == "" {
		return nil, payloadErr("signin response is missing token or user", nil)
	}
	return &AuthResult{Token: env.Token, User: *env.User}, nil
}

func (c *RESTClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/logout", nil, true)
	return err
}

func (c *RESTClient) Profile(ctx context.Context) (*models.WireUser, error) {
	env, err := c.do(ctx, http.MethodGet, "/profile", nil, true)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *RESTClient) UpdateProfile(ctx context.Context, fields models.ProfileUpdate) (*models.WireUser, error) {
	env, err := c.do(ctx, http.MethodPut, "/profile", fields, true)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *RESTClient) SaveInterests(ctx context.Context, interests []string) (*models.WireUser, error) {
	body := map[string][]string{"interests": interests}
	env, err := c.do(ctx, http.MethodPost, "/user/interests", body, true)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *RESTClient) ListPosts(ctx context.Context) ([]models.PostRecord, error) {
	env, err := c.do(ctx, http.MethodGet, "/posts", nil, true)
	if err != nil {
		return nil, err
	}
	return env.Posts, nil
}

func (c *RESTClient) ListVideos(ctx context.Context) ([]models.VideoRecord, error) {
	env, err := c.do(ctx, http.MethodGet, "/videos", nil, true)
	if err != nil {
		return nil, err
	}
	return env.Videos, nil
}

func (c *RESTClient) LikePost(ctx context.Context, postID string) error {
	_, err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(postID)+"/like", nil, true)
	return err
}

func (c *RESTClient) LikeReel(ctx context.Context, reelID string) error {
	_, err := c.do(ctx, http.MethodPost, "/reels/"+url.PathEscape(reelID)+"/like", nil, true)
	return err
}

func (c *RESTClient) CommentPost(ctx context.Context, postID, content string) error {
	body := map[string]string{"content": content}
	_, err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(postID)+"/comment", body, true)
	return err
}

func (c *RESTClient) SharePost(ctx context.Context, postID string) error {
	_, err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(postID)+"/share", nil, true)
	return err
}

func (c *RESTClient) SearchUsers(ctx context.Context, query string) ([]models.WireUser, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/search?q="+url.QueryEscape(query), nil, true)
	if err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (c *RESTClient) SuggestedUsers(ctx context.Context) ([]models.WireUser, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/suggested", nil, true)
	if err != nil {
		return nil, err
	}
	return env.Users, nil
}

func (c *RESTClient) Upload(ctx context.Context, imageDataURI string) (string, error) {
	body := map[string]string{"image": imageDataURI}
	env, err := c.do(ctx, http.MethodPost, "/upload", body, true)
	if err != nil {
		return "", err
	}
	if env.URL == "" {
		return "", payloadErr("upload response is missing the hosted URL", nil)
	}
	return env.URL, nil
}
