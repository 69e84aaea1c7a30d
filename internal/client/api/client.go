package api

import (
	"context"

	"github.com/okoshkin/feedline/internal/client/models"
)

// TokenSource supplies the bearer token for authorized requests. The token is
// read on every call, never cached, so a logout or expiry is observed by the
// next request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthResult is the payload of a successful signup or signin.
type AuthResult struct {
	Token string
	User  models.WireUser
}

// Client is the API contract the rest of the application depends on.
type Client interface {
	Close() error

	SignUp(ctx context.Context, name, email, password string) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context) error

	Profile(ctx context.Context) (*models.WireUser, error)
	UpdateProfile(ctx context.Context, fields models.ProfileUpdate) (*models.WireUser, error)
	SaveInterests(ctx context.Context, interests []string) (*models.WireUser, error)

	ListPosts(ctx context.Context) ([]models.PostRecord, error)
	ListVideos(ctx context.Context) ([]models.VideoRecord, error)

	LikePost(ctx context.Context, postID string) error
	LikeReel(ctx context.Context, reelID string) error
	CommentPost(ctx context.Context, postID, content string) error
	SharePost(ctx context.Context, postID string) error

	SearchUsers(ctx context.Context, query string) ([]models.WireUser, error)
	SuggestedUsers(ctx context.Context) ([]models.WireUser, error)

	Upload(ctx context.Context, imageDataURI string) (string, error)
}
