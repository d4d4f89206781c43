package synchronizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-travel-journal/models"
)

func TestProfileState_StartsAbsent(t *testing.T) {
	st := NewProfileStore().State("s1")
	assert.Nil(t, st.Get())
}

func TestProfileState_UpdateIsVisibleImmediately(t *testing.T) {
	st := NewProfileStore().State("s1")
	updates, cancel := st.Subscribe()
	defer cancel()

	st.Update(&models.Profile{ID: "u1", DisplayName: models.Ptr("Ana")})

	got := st.Get()
	require.NotNil(t, got)
	assert.Equal(t, "Ana", *got.DisplayName)

	u := <-updates
	assert.False(t, u.Refetch)
	assert.Equal(t, "Ana", *u.Profile.DisplayName)
}

func TestProfileState_GetReturnsCopy(t *testing.T) {
	st := NewProfileStore().State("s1")
	st.Update(&models.Profile{ID: "u1"})

	p := st.Get()
	p.ID = "changed"
	assert.Equal(t, "u1", st.Get().ID)
}

func TestProfileState_Refresh(t *testing.T) {
	st := NewProfileStore().State("s1")
	updates, cancel := st.Subscribe()
	defer cancel()

	st.Update(&models.Profile{ID: "u1"})
	st.Refresh()

	assert.Nil(t, st.Get())
	// only the latest update is kept for a subscriber that did not read yet
	u := <-updates
	assert.True(t, u.Refetch)
	assert.Nil(t, u.Profile)
}

func TestProfileState_Cancel(t *testing.T) {
	st := NewProfileStore().State("s1")
	updates, cancel := st.Subscribe()
	cancel()
	cancel()

	_, ok := <-updates
	assert.False(t, ok)
	st.Update(&models.Profile{ID: "u1"})
}

func TestProfileStore_StatePerSession(t *testing.T) {
	store := NewProfileStore()
	a := store.State("s1")
	assert.Same(t, a, store.State("s1"))
	assert.NotSame(t, a, store.State("s2"))
	assert.Equal(t, 2, store.Len())

	store.Drop("s1")
	assert.Equal(t, 1, store.Len())
	assert.NotSame(t, a, store.State("s1"))
}

func TestProfileStateContext(t *testing.T) {
	_, ok := ProfileStateFrom(context.Background())
	assert.False(t, ok)

	st := NewProfileStore().State("s1")
	got, ok := ProfileStateFrom(WithProfileState(context.Background(), st))
	require.True(t, ok)
	assert.Same(t, st, got)
}
