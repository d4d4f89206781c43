// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DefaultBio is shown on public profiles without a bio.
const DefaultBio = "No bio available"

// Profile is the public face of a user. ID equals the owning user's ID and
// there is at most one profile per user.
type Profile struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	DisplayName *string `json:"display-name"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
	Username    *string `json:"username"`
	Location    *string `json:"location"`
	X           *string `json:"x"`
	Instagram   *string `json:"instagram"`
	Facebook    *string `json:"facebook"`
	Website     *string `json:"website"`
}

// TableName returns the name of the table holding profiles.
func (Profile) TableName() string {
	return "profiles"
}

// ProfileUpdate is a partial profile write. Nil fields are left untouched.
type ProfileUpdate struct {
	DisplayName *string `json:"display-name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	Username    *string `json:"username,omitempty"`
	Location    *string `json:"location,omitempty"`
	X           *string `json:"x,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	Facebook    *string `json:"facebook,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// IsEmpty reports whether the update carries no field.
func (u ProfileUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.AvatarURL == nil && u.Bio == nil &&
		u.Username == nil && u.Location == nil && u.X == nil &&
		u.Instagram == nil && u.Facebook == nil && u.Website == nil
}

// Apply copies the non-nil fields of u onto p.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.DisplayName != nil {
		p.DisplayName = u.DisplayName
	}
	if u.AvatarURL != nil {
		p.AvatarURL = u.AvatarURL
	}
	if u.Bio != nil {
		p.Bio = u.Bio
	}
	if u.Username != nil {
		p.Username = u.Username
	}
	if u.Location != nil {
		p.Location = u.Location
	}
	if u.X != nil {
		p.X = u.X
	}
	if u.Instagram != nil {
		p.Instagram = u.Instagram
	}
	if u.Facebook != nil {
		p.Facebook = u.Facebook
	}
	if u.Website != nil {
		p.Website = u.Website
	}
}

// SocialLinks groups the optional social handles of a profile.
type SocialLinks struct {
	X         string
	Instagram string
	Facebook  string
	Website   string
}

// PublicProfile is the read-only projection rendered on /u/{id}.
type PublicProfile struct {
	UserID      string
	Name        string
	Description string
	AvatarURL   string
	Username    string
	Location    string
	Social      SocialLinks
}

// NewPublicProfile builds the public projection. The name falls back from
// the display name to the full name in the user metadata, then to the email
// local part and finally to "User".
func NewPublicProfile(p *Profile, user *User) PublicProfile {
	out := PublicProfile{Name: "User", Description: DefaultBio}
	if user != nil {
		out.UserID = user.ID
		if name := strings.TrimSpace(user.FullName()); name != "" {
			out.Name = name
		} else if local := user.EmailLocalPart(); local != "" {
			out.Name = local
		}
	}
	if p == nil {
		return out
	}

	out.UserID = p.ID
	if v := deref(p.DisplayName); v != "" {
		out.Name = v
	}
	if v := deref(p.Bio); v != "" {
		out.Description = v
	}
	out.AvatarURL = deref(p.AvatarURL)
	out.Username = deref(p.Username)
	out.Location = deref(p.Location)
	out.Social = SocialLinks{
		X:         deref(p.X),
		Instagram: deref(p.Instagram),
		Facebook:  deref(p.Facebook),
		Website:   deref(p.Website),
	}
	return out
}

// Initial is the letter shown in place of a missing avatar.
func (p PublicProfile) Initial() string {
	for _, r := range p.Name {
		return strings.ToUpper(string(r))
	}
	return "U"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to v. Handy for building partial updates.
func Ptr[T any](v T) *T {
	return &v
}
