package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/okoshkin/feedline/internal/client/models"
)

// DefaultAvatarURL is shown for authors without a profile picture.
const DefaultAvatarURL = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&h=150&fit=crop&crop=face"

// Kind distinguishes regular posts from reels; mutations route to different
// endpoints based on it.
type Kind string

const (
	KindPost Kind = "post"
	KindReel Kind = "reel"
)

// Comment is a display-ready comment.
type Comment struct {
	ID       string
	Username string
	Name     string
	Text     string
	Time     string
}

// Post is the normalized, display-ready feed item. It is ephemeral: rebuilt
// on every fetch and locally patched by the Store between fetches.
type Post struct {
	ID        string
	UserID    string
	Username  string
	Name      string
	Content   string
	Likes     int
	Comments  int
	Time      string
	UserImage string
	Image     string
	VideoURL  string
	Shares    int
	IsLiked   bool
	List      []Comment
	Kind      Kind
}

// Transformer maps raw API records to view models for one viewer. The zero
// value is not usable; construct with NewTransformer.
type Transformer struct {
	viewerID string
	avatar   string
	resolver VideoResolver
	now      func() time.Time
}

// NewTransformer builds a transformer for the given viewer. resolver may be
// nil, in which case reels fall back to the constructed embed URL. avatar
// falls back to DefaultAvatarURL when empty.
func NewTransformer(viewerID, avatar string, resolver VideoResolver) *Transformer {
	if avatar == "" {
		avatar = DefaultAvatarURL
	}
	return &Transformer{viewerID: viewerID, avatar: avatar, resolver: resolver, now: time.Now}
}

// TimeAgo renders the relative time label for ts against now: "Just now"
// under a minute, then integer-floor minutes, hours, and days.
func TimeAgo(ts, now time.Time) string {
	secs := int64(now.Sub(ts).Seconds())
	switch {
	case secs < 60:
		return "Just now"
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
}

func (t *Transformer) author(u *models.WireUser) (slug, name, image string) {
	if u == nil {
		return "user", "User", t.avatar
	}
	slug, name = models.DisplayName(u.Username, u.Name, u.Email)
	image = u.ProfilePicture
	if image == "" {
		image = t.avatar
	}
	return slug, name, image
}

func (t *Transformer) liked(likes []models.LikeRecord) bool {
	for _, l := range likes {
		if l.UserID == t.viewerID {
			return true
		}
	}
	return false
}

func (t *Transformer) comments(records []models.CommentRecord, now time.Time) []Comment {
	out := make([]Comment, len(records))
	for i, c := range records {
		slug, name, _ := t.author(c.User)
		out[i] = Comment{
			ID:       c.ID,
			Username: slug,
			Name:     name,
			Text:     c.Content,
			Time:     TimeAgo(c.CreatedAt, now),
		}
	}
	return out
}

// Post builds the view model for a regular feed post.
func (t *Transformer) Post(rec models.PostRecord) Post {
	now := t.now()
	slug, name, image := t.author(rec.User)

	kind := KindPost
	if rec.Type == string(KindReel) {
		kind = KindReel
	}

	return Post{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Username:  slug,
		Name:      name,
		Content:   rec.Content,
		Likes:     len(rec.Likes),
		Comments:  len(rec.Comments),
		Time:      TimeAgo(rec.CreatedAt, now),
		UserImage: image,
		Image:     rec.Image,
		Shares:    rec.Shares,
		IsLiked:   t.liked(rec.Likes),
		List:      t.comments(rec.Comments, now),
		Kind:      kind,
	}
}

// Reel builds the view model for a video record, resolving the external
// shortcode to a playable URL. Resolution failure falls back to the embed
// URL rather than failing the transform.
func (t *Transformer) Reel(ctx context.Context, rec models.VideoRecord) Post {
	now := t.now()
	slug, name, image := t.author(rec.User)

	content := rec.Title
	if content == "" {
		content = rec.Description
	}
	if content == "" {
		content = "Check out this reel!"
	}

	videoURL := EmbedURL(rec.StreamableShortcode)
	if t.resolver != nil {
		if direct, err := t.resolver.Resolve(ctx, rec.StreamableShortcode); err == nil && direct != "" {
			videoURL = direct
		}
	}

	return Post{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Username:  slug,
		Name:      name,
		Content:   content,
		Likes:     len(rec.Likes),
		Comments:  len(rec.Comments),
		Time:      TimeAgo(rec.CreatedAt, now),
		UserImage: image,
		VideoURL:  videoURL,
		Shares:    rec.Shares,
		IsLiked:   t.liked(rec.Likes),
		List:      t.comments(rec.Comments, now),
		Kind:      KindReel,
	}
}

// Posts transforms a whole fetch result, preserving order.
func (t *Transformer) Posts(recs []models.PostRecord) []Post {
	out := make([]Post, len(recs))
	for i, r := range recs {
		out[i] = t.Post(r)
	}
	return out
}

// Reels transforms a video fetch result, preserving order.
func (t *Transformer) Reels(ctx context.Context, recs []models.VideoRecord) []Post {
	out := make([]Post, len(recs))
	for i, r := range recs {
		out[i] = t.Reel(ctx, r)
	}
	return out
}
