package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/okoshkin/feedline/internal/client/api"
	"github.com/okoshkin/feedline/internal/client/models"
	"github.com/okoshkin/feedline/internal/logging"
)

// ErrUnknownItem is returned for a mutation against an id that is not in the
// current collections.
var ErrUnknownItem = errors.New("unknown feed item")

// Store holds the transformed posts and reels and coordinates optimistic
// mutations against them. A single mutex serializes all state changes; the
// network call itself runs outside the lock, so the pending window of a
// mutation is exactly the request round-trip.
type Store struct {
	client api.Client
	log    logging.Logger

	mu    sync.Mutex
	posts []Post
	reels []Post
}

func NewStore(client api.Client, log logging.Logger) *Store {
	return &Store{client: client, log: log}
}

// SetPosts replaces the posts collection after a fetch.
func (s *Store) SetPosts(posts []Post) {
	s.mu.Lock()
	s.posts = append([]Post(nil), posts...)
	s.mu.Unlock()
}

// SetReels replaces the reels collection after a fetch.
func (s *Store) SetReels(reels []Post) {
	s.mu.Lock()
	s.reels = append([]Post(nil), reels...)
	s.mu.Unlock()
}

// Posts returns a copy of the current posts collection.
func (s *Store) Posts() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePosts(s.posts)
}

// Reels returns a copy of the current reels collection.
func (s *Store) Reels() []Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePosts(s.reels)
}

func clonePosts(in []Post) []Post {
	out := make([]Post, len(in))
	for i, p := range in {
		p.List = append([]Comment(nil), p.List...)
		out[i] = p
	}
	return out
}

// patch applies fn to every item with the given id in both collections (an
// item can appear in both, and both views must stay consistent). It reports
// the first match and whether any item matched.
func (s *Store) patch(id string, fn func(*Post)) (Post, bool) {
	var first *Post
	for _, coll := range [][]Post{s.posts, s.reels} {
		for i := range coll {
			if coll[i].ID == id {
				fn(&coll[i])
				if first == nil {
					first = &coll[i]
				}
			}
		}
	}
	if first == nil {
		return Post{}, false
	}
	return *first, true
}

func flipLike(p *Post) {
	if p.IsLiked {
		p.Likes--
	} else {
		p.Likes++
	}
	p.IsLiked = !p.IsLiked
}

// ToggleLike flips the liked flag and counter locally, then confirms with
// the backend. On failure the flip is inverted, restoring the pre-mutation
// state. The returned Post is the reconciled item.
func (s *Store) ToggleLike(ctx context.Context, id string) (Post, error) {
	s.mu.Lock()
	item, ok := s.patch(id, flipLike)
	s.mu.Unlock()
	if !ok {
		return Post{}, ErrUnknownItem
	}

	var err error
	if item.Kind == KindReel {
		err = s.client.LikeReel(ctx, id)
	} else {
		err = s.client.LikePost(ctx, id)
	}
	if err != nil {
		s.log.Warn(ctx, "like not confirmed, rolling back", "id", id, "err", err)
		s.mu.Lock()
		item, _ = s.patch(id, flipLike)
		s.mu.Unlock()
		return item, err
	}
	return item, nil
}

// AddComment appends a locally-synthesized comment (client-generated id,
// "Just now" timestamp) and bumps the counter, then confirms with the
// backend. On failure the synthetic comment is removed again.
func (s *Store) AddComment(ctx context.Context, id, text string, author models.User) (Post, error) {
	slug, name := models.DisplayName(author.Username, author.FullName, author.Email)
	comment := Comment{
		ID:       "comment-" + uuid.NewString(),
		Username: slug,
		Name:     name,
		Text:     text,
		Time:     "Just now",
	}

	s.mu.Lock()
	item, ok := s.patch(id, func(p *Post) {
		p.Comments++
		p.List = append(p.List, comment)
	})
	s.mu.Unlock()
	if !ok {
		return Post{}, ErrUnknownItem
	}

	if err := s.client.CommentPost(ctx, id, text); err != nil {
		s.log.Warn(ctx, "comment not confirmed, rolling back", "id", id, "err", err)
		s.mu.Lock()
		item, _ = s.patch(id, func(p *Post) {
			p.Comments--
			for i := range p.List {
				if p.List[i].ID == comment.ID {
					p.List = append(p.List[:i], p.List[i+1:]...)
					break
				}
			}
		})
		s.mu.Unlock()
		return item, err
	}
	return item, nil
}

// Share bumps the share counter locally, then confirms with the backend,
// decrementing again on failure.
func (s *Store) Share(ctx context.Context, id string) (Post, error) {
	s.mu.Lock()
	item, ok := s.patch(id, func(p *Post) { p.Shares++ })
	s.mu.Unlock()
	if !ok {
		return Post{}, ErrUnknownItem
	}

	if err := s.client.SharePost(ctx, id); err != nil {
		s.log.Warn(ctx, "share not confirmed, rolling back", "id", id, "err", err)
		s.mu.Lock()
		item, _ = s.patch(id, func(p *Post) { p.Shares-- })
		s.mu.Unlock()
		return item, err
	}
	return item, nil
}
