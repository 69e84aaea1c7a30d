package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/okoshkin/feedline/internal/client/models"
)

func TestTimeAgo_TierBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{60 * time.Second, "1m ago"},
		{5 * time.Minute, "5m ago"},
		{3599 * time.Second, "59m ago"},
		{3600 * time.Second, "1h ago"},
		{5 * time.Hour, "5h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{72 * time.Hour, "3d ago"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, TimeAgo(now.Add(-tc.ago), now))
		})
	}
}

func TestTransformer_Post(t *testing.T) {
	created := time.Now().Add(-5 * time.Minute)
	tr := NewTransformer("viewer-1", "", nil)

	p := tr.Post(models.PostRecord{
		ID:      "p1",
		UserID:  "author-1",
		User:    &models.WireUser{Username: "ann", Name: "Ann Smith"},
		Content: "hello world",
		Image:   "https://cdn/img.png",
		Likes: []models.LikeRecord{
			{UserID: "viewer-1"},
			{UserID: "someone-else"},
		},
		Comments: []models.CommentRecord{
			{ID: "c1", User: &models.WireUser{Email: "bob@x.io"}, Content: "nice", CreatedAt: time.Now().Add(-30 * time.Second)},
		},
		Shares:    2,
		CreatedAt: created,
	})

	require.Equal(t, "p1", p.ID)
	require.Equal(t, KindPost, p.Kind)
	require.Equal(t, "ann", p.Username)
	require.Equal(t, "Ann Smith", p.Name)
	require.Equal(t, 2, p.Likes)
	require.True(t, p.IsLiked)
	require.Equal(t, 1, p.Comments)
	require.Equal(t, 2, p.Shares)
	require.Equal(t, "5m ago", p.Time)
	require.Equal(t, DefaultAvatarURL, p.UserImage)

	require.Len(t, p.List, 1)
	require.Equal(t, "bob", p.List[0].Username)
	require.Equal(t, "bob", p.List[0].Name)
	require.Equal(t, "Just now", p.List[0].Time)
}

func TestTransformer_Post_NotLikedByViewer(t *testing.T) {
	tr := NewTransformer("viewer-1", "", nil)
	p := tr.Post(models.PostRecord{
		ID:    "p1",
		Likes: []models.LikeRecord{{UserID: "someone-else"}},
	})
	require.Equal(t, 1, p.Likes)
	require.False(t, p.IsLiked)
}

func TestTransformer_Post_MissingAuthor(t *testing.T) {
	tr := NewTransformer("viewer-1", "https://cdn/fallback.png", nil)
	p := tr.Post(models.PostRecord{ID: "p1"})

	require.Equal(t, "user", p.Username)
	require.Equal(t, "User", p.Name)
	require.Equal(t, "https://cdn/fallback.png", p.UserImage)
}

func TestTransformer_Post_ReelTypedRecord(t *testing.T) {
	tr := NewTransformer("viewer-1", "", nil)
	p := tr.Post(models.PostRecord{ID: "p1", Type: "reel"})
	require.Equal(t, KindReel, p.Kind)
}

type stubResolver struct {
	url string
	err error
}

func (s stubResolver) Resolve(ctx context.Context, shortcode string) (string, error) {
	return s.url, s.err
}

func TestTransformer_Reel(t *testing.T) {
	tr := NewTransformer("viewer-1", "", stubResolver{url: "https://cdn.streamable.com/video/abc.mp4"})

	p := tr.Reel(context.Background(), models.VideoRecord{
		ID:                  "v1",
		User:                &models.WireUser{Username: "ann"},
		StreamableShortcode: "abc",
		Title:               "My reel",
		CreatedAt:           time.Now(),
	})

	require.Equal(t, KindReel, p.Kind)
	require.Equal(t, "My reel", p.Content)
	require.Equal(t, "https://cdn.streamable.com/video/abc.mp4", p.VideoURL)
}

func TestTransformer_Reel_ContentFallbacks(t *testing.T) {
	tr := NewTransformer("viewer-1", "", nil)
	ctx := context.Background()

	p := tr.Reel(ctx, models.VideoRecord{ID: "v1", Description: "a description"})
	require.Equal(t, "a description", p.Content)

	p = tr.Reel(ctx, models.VideoRecord{ID: "v1"})
	require.Equal(t, "Check out this reel!", p.Content)
}

func TestTransformer_Reel_ResolverFailureFallsBackToEmbedURL(t *testing.T) {
	tr := NewTransformer("viewer-1", "", stubResolver{err: errors.New("404")})

	p := tr.Reel(context.Background(), models.VideoRecord{ID: "v1", StreamableShortcode: "abc"})
	require.Equal(t, "https://streamable.com/e/abc", p.VideoURL)
}

func TestTransformer_Reel_NilResolverUsesEmbedURL(t *testing.T) {
	tr := NewTransformer("viewer-1", "", nil)
	p := tr.Reel(context.Background(), models.VideoRecord{ID: "v1", StreamableShortcode: "xyz"})
	require.Equal(t, "https://streamable.com/e/xyz", p.VideoURL)
}

func TestTransformer_PostsPreserveOrder(t *testing.T) {
	tr := NewTransformer("viewer-1", "", nil)
	out := tr.Posts([]models.PostRecord{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	require.Equal(t, []string{"a", "b", "c"}, []string{out[0].ID, out[1].ID, out[2].ID})
}
