package models

import "time"

// WireUser is a user record as the backend serializes it. The API is loose
// about identifiers (`_id` from Mongo, `id` elsewhere) and names (`name` vs
// `fullName`), so both variants are kept and reconciled by Normalize.
type WireUser struct {
	MongoID               string   `json:"_id"`
	ID                    string   `json:"id"`
	Email                 string   `json:"email"`
	Username              string   `json:"username"`
	Name                  string   `json:"name"`
	FullName              string   `json:"fullName"`
	ProfilePicture        string   `json:"profilePicture"`
	CoverPhoto            string   `json:"coverPhoto"`
	Bio                   string   `json:"bio"`
	Website               string   `json:"website"`
	Location              string   `json:"location"`
	Interests             []string `json:"interests"`
	HasCompletedInterests bool     `json:"hasCompletedInterests"`
	IsProfileComplete     bool     `json:"isProfileComplete"`
	CreatedAt             string   `json:"createdAt"`
	PostsCount            int      `json:"postsCount"`
	FriendsCount          int      `json:"friendsCount"`
}

// Identifier returns whichever of `id`/`_id` the backend populated, preferring
// the Mongo form the way the original API does.
func (w WireUser) Identifier() string {
	if w.MongoID != "" {
		return w.MongoID
	}
	return w.ID
}

// Normalize converts a wire user into the session User shape, deriving the
// username slug and full name through the standard fallback chain.
func (w WireUser) Normalize() User {
	slug, full := DisplayName(w.Username, nameOrFullName(w), w.Email)
	return User{
		ID:                    w.Identifier(),
		Email:                 w.Email,
		Username:              slug,
		FullName:              full,
		ProfilePicture:        w.ProfilePicture,
		CoverPhoto:            w.CoverPhoto,
		Bio:                   w.Bio,
		Website:               w.Website,
		Location:              w.Location,
		Interests:             w.Interests,
		HasCompletedInterests: w.HasCompletedInterests,
		IsProfileComplete:     w.IsProfileComplete,
		CreatedAt:             w.CreatedAt,
		PostsCount:            w.PostsCount,
		FriendsCount:          w.FriendsCount,
	}
}

func nameOrFullName(w WireUser) string {
	if w.Name != "" {
		return w.Name
	}
	return w.FullName
}

// LikeRecord marks one user's like on a post or video.
type LikeRecord struct {
	UserID  string    `json:"userId"`
	LikedAt time.Time `json:"likedAt"`
}

// CommentRecord is a comment as stored on a post or video record.
type CommentRecord struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	User      *WireUser `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostRecord is a raw feed post as returned by GET /posts.
type PostRecord struct {
	ID        string          `json:"_id"`
	UserID    string          `json:"userId"`
	User      *WireUser       `json:"user"`
	Content   string          `json:"content"`
	Image     string          `json:"image"`
	Privacy   string          `json:"privacy"`
	Likes     []LikeRecord    `json:"likes"`
	Comments  []CommentRecord `json:"comments"`
	Shares    int             `json:"shares"`
	Location  string          `json:"location"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// VideoRecord is a raw reel as returned by GET /videos. The video itself is
// hosted externally; StreamableShortcode is resolved to a playable URL at
// transform time.
type VideoRecord struct {
	ID                  string          `json:"_id"`
	UserID              string          `json:"userId"`
	User                *WireUser       `json:"user"`
	StreamableShortcode string          `json:"streamableShortcode"`
	StreamableURL       string          `json:"streamableUrl"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Format              string          `json:"format"`
	Size                int64           `json:"size"`
	Status              string          `json:"status"`
	Privacy             string          `json:"privacy"`
	Likes               []LikeRecord    `json:"likes"`
	Comments            []CommentRecord `json:"comments"`
	Shares              int             `json:"shares"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}
