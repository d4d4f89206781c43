package models

import (
	"strings"
	"time"
)

// User is an account of the auth provider.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	CreatedAt    time.Time      `json:"created_at"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// FullName returns the "full_name" user metadata value, if any.
func (u User) FullName() string {
	name, _ := u.UserMetadata["full_name"].(string)
	return name
}

// EmailLocalPart returns the part of the email before "@".
func (u User) EmailLocalPart() string {
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

// Credentials are what a user types on the login and register forms.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthToken is the token grant returned by the auth provider.
type AuthToken struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Session is a signed-in browser (or terminal) session.
type Session struct {
	ID           string    `json:"id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSession builds a session from a token grant. When the provider omits
// expires_at it is derived from expires_in.
func NewSession(id string, token AuthToken, now time.Time) Session {
	expiresAt := time.Unix(token.ExpiresAt, 0)
	if token.ExpiresAt == 0 {
		expiresAt = now.Add(time.Duration(token.ExpiresIn) * time.Second)
	}
	return Session{
		ID:           id,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
		User:         token.User,
		CreatedAt:    now,
	}
}

// Expired reports whether the access token expires within leeway of now.
func (s Session) Expired(now time.Time, leeway time.Duration) bool {
	return !s.ExpiresAt.After(now.Add(leeway))
}

// UserID is a shortcut for s.User.ID.
func (s Session) UserID() string {
	return s.User.ID
}
