package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPublicProfile_NameFallbacks(t *testing.T) {
	user := &User{ID: "u1", Email: "ana@example.com", UserMetadata: map[string]any{"full_name": "Ana Lima"}}

	t.Run("display name wins", func(t *testing.T) {
		p := &Profile{ID: "u1", DisplayName: Ptr("Ana L."), Bio: Ptr("Wanderer")}
		got := NewPublicProfile(p, user)
		assert.Equal(t, "Ana L.", got.Name)
		assert.Equal(t, "Wanderer", got.Description)
	})

	t.Run("full name when display name is empty", func(t *testing.T) {
		got := NewPublicProfile(&Profile{ID: "u1", DisplayName: Ptr("")}, user)
		assert.Equal(t, "Ana Lima", got.Name)
		assert.Equal(t, DefaultBio, got.Description)
	})

	t.Run("email local part", func(t *testing.T) {
		got := NewPublicProfile(nil, &User{ID: "u1", Email: "ana@example.com"})
		assert.Equal(t, "ana", got.Name)
	})

	t.Run("no user no profile", func(t *testing.T) {
		got := NewPublicProfile(nil, nil)
		assert.Equal(t, "User", got.Name)
		assert.Equal(t, "U", got.Initial())
	})
}

func TestProfileUpdate_Apply(t *testing.T) {
	p := &Profile{ID: "u1", Bio: Ptr("old"), Website: Ptr("https://a.example")}
	ProfileUpdate{Bio: Ptr("new"), X: Ptr("@ana")}.Apply(p)

	assert.Equal(t, "new", *p.Bio)
	assert.Equal(t, "@ana", *p.X)
	assert.Equal(t, "https://a.example", *p.Website, "untouched fields stay")
	assert.True(t, ProfileUpdate{}.IsEmpty())
}

func TestSession_Expired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := NewSession("sid", AuthToken{AccessToken: "a", ExpiresIn: 3600}, now)

	assert.Equal(t, now.Add(time.Hour), s.ExpiresAt)
	assert.False(t, s.Expired(now, time.Minute))
	assert.True(t, s.Expired(now.Add(59*time.Minute+30*time.Second), time.Minute))
}

func TestMood(t *testing.T) {
	assert.True(t, MoodStressed.Valid())
	assert.False(t, Mood("angry").Valid())
	assert.Equal(t, "😊", Mood("angry").Emoji())
	assert.Equal(t, "😃", MoodExcited.Emoji())
}
