// Package models defines client-side data models used by the feedline CLI:
// the session user, the wire shapes returned by the backend, and the
// normalization helpers that turn one into the other.
package models

import "strings"

// User is the normalized identity held in the session and persisted as the
// userData snapshot in the credential store.
type User struct {
	ID                    string   `json:"id"`
	Email                 string   `json:"email"`
	Username              string   `json:"username"`
	FullName              string   `json:"fullName"`
	ProfilePicture        string   `json:"profilePicture,omitempty"`
	CoverPhoto            string   `json:"coverPhoto,omitempty"`
	Bio                   string   `json:"bio,omitempty"`
	Website               string   `json:"website,omitempty"`
	Location              string   `json:"location,omitempty"`
	Interests             []string `json:"interests,omitempty"`
	HasCompletedInterests bool     `json:"hasCompletedInterests,omitempty"`
	IsProfileComplete     bool     `json:"isProfileComplete,omitempty"`
	CreatedAt             string   `json:"createdAt,omitempty"`
	PostsCount            int      `json:"postsCount,omitempty"`
	FriendsCount          int      `json:"friendsCount,omitempty"`
}

// SignupCredentials are the fields collected for account creation.
type SignupCredentials struct {
	Email    string
	Password string
	Username string
	FullName string
}

// ProfileUpdate carries the optional fields of a profile-completion request.
// Empty strings mean "leave unchanged"; the backend treats absent and empty
// identically, so pointers are not needed here.
type ProfileUpdate struct {
	Bio            string `json:"bio,omitempty"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	CoverPhoto     string `json:"coverPhoto,omitempty"`
}

// Slug lowercases s and strips all whitespace, producing the username form
// shown as "@slug" in feeds.
func Slug(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// DisplayName resolves the username/full-name pair for an author, falling
// back through username, name, and the local part of the email address.
// An author with none of the three gets the generic "user"/"User" pair.
func DisplayName(username, name, email string) (slug string, full string) {
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}

	slug = username
	if slug == "" {
		slug = name
	}
	if slug == "" {
		slug = local
	}
	full = name
	if full == "" {
		full = username
	}
	if full == "" {
		full = local
	}

	if slug == "" {
		return "user", "User"
	}
	return Slug(slug), full
}

// Merge returns a copy of u with the non-zero fields of partial applied.
// Interests are replaced wholesale when present. Boolean completion flags are
// only ever raised by a merge, never lowered, since the backend reports them
// monotonically.
func (u User) Merge(partial User) User {
	if partial.ID != "" {
		u.ID = partial.ID
	}
	if partial.Email != "" {
		u.Email = partial.Email
	}
	if partial.Username != "" {
		u.Username = partial.Username
	}
	if partial.FullName != "" {
		u.FullName = partial.FullName
	}
	if partial.ProfilePicture != "" {
		u.ProfilePicture = partial.ProfilePicture
	}
	if partial.CoverPhoto != "" {
		u.CoverPhoto = partial.CoverPhoto
	}
	if partial.Bio != "" {
		u.Bio = partial.Bio
	}
	if partial.Website != "" {
		u.Website = partial.Website
	}
	if partial.Location != "" {
		u.Location = partial.Location
	}
	if partial.Interests != nil {
		u.Interests = append([]string(nil), partial.Interests...)
	}
	if partial.HasCompletedInterests {
		u.HasCompletedInterests = true
	}
	if partial.IsProfileComplete {
		u.IsProfileComplete = true
	}
	if partial.CreatedAt != "" {
		u.CreatedAt = partial.CreatedAt
	}
	if partial.PostsCount != 0 {
		u.PostsCount = partial.PostsCount
	}
	if partial.FriendsCount != 0 {
		u.FriendsCount = partial.FriendsCount
	}
	return u
}
