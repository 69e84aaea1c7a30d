package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/okoshkin/feedline/internal/client/api"
	"github.com/okoshkin/feedline/internal/client/config"
	"github.com/okoshkin/feedline/internal/client/feed"
	"github.com/okoshkin/feedline/internal/client/models"
	"github.com/okoshkin/feedline/internal/client/session"
	"github.com/okoshkin/feedline/internal/logging"
)

// fakeSession implements session.Session with configurable hooks and a fixed
// state snapshot.
type fakeSession struct {
	state session.State

	loginFn             func(ctx context.Context, email, password string) error
	signupFn            func(ctx context.Context, creds models.SignupCredentials) error
	logoutFn            func(ctx context.Context) error
	updateUserFn        func(ctx context.Context, partial models.User) error
	completeInterestsFn func(ctx context.Context, interests []string) error
	completeProfileFn   func(ctx context.Context, fields models.ProfileUpdate) error
	searchUsersFn       func(ctx context.Context, query string) ([]models.User, error)
	suggestedUsersFn    func(ctx context.Context) ([]models.User, error)
}

func (f *fakeSession) State() session.State           { return f.state }
func (f *fakeSession) Initialize(ctx context.Context) {}

func (f *fakeSession) Login(ctx context.Context, email, password string) error {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return nil
}

func (f *fakeSession) Signup(ctx context.Context, creds models.SignupCredentials) error {
	if f.signupFn != nil {
		return f.signupFn(ctx, creds)
	}
	return nil
}

func (f *fakeSession) Logout(ctx context.Context) error {
	if f.logoutFn != nil {
		return f.logoutFn(ctx)
	}
	return nil
}

func (f *fakeSession) UpdateUser(ctx context.Context, partial models.User) error {
	if f.updateUserFn != nil {
		return f.updateUserFn(ctx, partial)
	}
	return nil
}

func (f *fakeSession) CompleteInterests(ctx context.Context, interests []string) error {
	if f.completeInterestsFn != nil {
		return f.completeInterestsFn(ctx, interests)
	}
	return nil
}

func (f *fakeSession) CompleteProfile(ctx context.Context, fields models.ProfileUpdate) error {
	if f.completeProfileFn != nil {
		return f.completeProfileFn(ctx, fields)
	}
	return nil
}

func (f *fakeSession) AuthHeaders(ctx context.Context) (map[string]string, error) {
	return nil, nil
}

func (f *fakeSession) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	if f.searchUsersFn != nil {
		return f.searchUsersFn(ctx, query)
	}
	return nil, nil
}

func (f *fakeSession) SuggestedUsers(ctx context.Context) ([]models.User, error) {
	if f.suggestedUsersFn != nil {
		return f.suggestedUsersFn(ctx)
	}
	return nil, nil
}

// fakeAPIClient implements api.Client for feed and upload commands.
type fakeAPIClient struct {
	listPostsFn  func(ctx context.Context) ([]models.PostRecord, error)
	listVideosFn func(ctx context.Context) ([]models.VideoRecord, error)
	likePostFn   func(ctx context.Context, id string) error
	uploadFn     func(ctx context.Context, dataURI string) (string, error)
}

func (c *fakeAPIClient) Close() error { return nil }
func (c *fakeAPIClient) SignUp(ctx context.Context, name, email, password string) (*api.AuthResult, error) {
	return nil, nil
}
func (c *fakeAPIClient) SignIn(ctx context.Context, email, password string) (*api.AuthResult, error) {
	return nil, nil
}
func (c *fakeAPIClient) Logout(ctx context.Context) error { return nil }
func (c *fakeAPIClient) Profile(ctx context.Context) (*models.WireUser, error) {
	return nil, nil
}
func (c *fakeAPIClient) UpdateProfile(ctx context.Context, fields models.ProfileUpdate) (*models.WireUser, error) {
	return nil, nil
}
func (c *fakeAPIClient) SaveInterests(ctx context.Context, interests []string) (*models.WireUser, error) {
	return nil, nil
}

func (c *fakeAPIClient) ListPosts(ctx context.Context) ([]models.PostRecord, error) {
	if c.listPostsFn != nil {
		return c.listPostsFn(ctx)
	}
	return nil, nil
}

func (c *fakeAPIClient) ListVideos(ctx context.Context) ([]models.VideoRecord, error) {
	if c.listVideosFn != nil {
		return c.listVideosFn(ctx)
	}
	return nil, nil
}

func (c *fakeAPIClient) LikePost(ctx context.Context, postID string) error {
	if c.likePostFn != nil {
		return c.likePostFn(ctx, postID)
	}
	return nil
}

func (c *fakeAPIClient) LikeReel(ctx context.Context, reelID string) error { return nil }
func (c *fakeAPIClient) CommentPost(ctx context.Context, postID, content string) error {
	return nil
}
func (c *fakeAPIClient) SharePost(ctx context.Context, postID string) error { return nil }
func (c *fakeAPIClient) SearchUsers(ctx context.Context, query string) ([]models.WireUser, error) {
	return nil, nil
}
func (c *fakeAPIClient) SuggestedUsers(ctx context.Context) ([]models.WireUser, error) {
	return nil, nil
}

func (c *fakeAPIClient) Upload(ctx context.Context, imageDataURI string) (string, error) {
	if c.uploadFn != nil {
		return c.uploadFn(ctx, imageDataURI)
	}
	return "", nil
}

// newTestApp wires an App from fakes, with input fed from the given lines.
func newTestApp(sess session.Session, client api.Client, input string) *App {
	log := logging.NewDiscard()
	return &App{
		config:  &config.Config{},
		session: sess,
		store:   feed.NewStore(client, log),
		client:  client,
		log:     log,
		reader:  bufio.NewReader(strings.NewReader(input)),
	}
}

// capturePrintln redirects printlnFn into a slice for the duration of the test.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	saved := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = saved })
	return &lines
}
