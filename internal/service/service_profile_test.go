package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/mock"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
	"github.com/MKhiriev/go-travel-journal/models"
)

func newTestProfileSvc(t *testing.T, ctrl *gomock.Controller) (*profileService, *mock.MockProfileRepository) {
	t.Helper()
	repo := mock.NewMockProfileRepository(ctrl)

	svc := NewProfileService(repo, logger.Nop()).(*profileService)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo
}

// ── GetProfile ───────────────────────────────────────────────────────────────

// Пользователь без профиля: не ошибка
func TestProfileService_GetProfile_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetProfile(ctx, "u1").Return(models.Profile{}, store.ErrNotFound)

	p, err := svc.GetProfile(ctx, "u1")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestProfileService_GetProfile_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetProfile(ctx, "u1").Return(models.Profile{}, store.ErrStore)

	p, err := svc.GetProfile(ctx, "u1")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, store.ErrStore)
}

// ── Writes ───────────────────────────────────────────────────────────────────

func TestProfileService_CreateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateProfile(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) (models.Profile, error) {
			assert.Equal(t, "u1", p.ID)
			assert.Equal(t, fixedNow, p.CreatedAt)
			require.NotNil(t, p.UpdatedAt)
			assert.Equal(t, "Ana", *p.DisplayName)
			assert.Nil(t, p.Bio)
			return p, nil
		},
	)

	p, err := svc.CreateProfile(ctx, "u1", models.ProfileUpdate{DisplayName: models.Ptr("Ana")})
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
}

func TestProfileService_UpdateProfile_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().UpdateProfile(ctx, "u1", gomock.Any(), fixedNow).Return(models.Profile{}, store.ErrNotFound)

	p, err := svc.UpdateProfile(ctx, "u1", models.ProfileUpdate{Bio: models.Ptr("x")})
	assert.NoError(t, err)
	assert.Nil(t, p)
}

// Повторный upsert с теми же данными даёт тот же результат.
func TestProfileService_UpsertProfile_Twice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	fields := models.ProfileUpdate{DisplayName: models.Ptr("Ana"), Location: models.Ptr("Lisbon")}

	stored := models.Profile{ID: "u1", DisplayName: fields.DisplayName, Location: fields.Location}
	repo.EXPECT().UpsertProfile(ctx, "u1", fields, fixedNow).Return(stored, nil).Times(2)

	first, err := svc.UpsertProfile(ctx, "u1", fields)
	require.NoError(t, err)
	second, err := svc.UpsertProfile(ctx, "u1", fields)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProfileService_SharesIntoSessionState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestProfileSvc(t, ctrl)

	state := synchronizer.NewProfileStore().State("sess-1")
	ctx := synchronizer.WithProfileState(context.Background(), state)
	updates, cancel := state.Subscribe()
	defer cancel()

	repo.EXPECT().UpsertProfile(ctx, "u1", gomock.Any(), fixedNow).
		Return(models.Profile{ID: "u1", DisplayName: models.Ptr("Ana")}, nil)

	_, err := svc.UpsertProfile(ctx, "u1", models.ProfileUpdate{DisplayName: models.Ptr("Ana")})
	require.NoError(t, err)

	require.NotNil(t, state.Get())
	assert.Equal(t, "Ana", *state.Get().DisplayName)

	select {
	case u := <-updates:
		require.NotNil(t, u.Profile)
		assert.Equal(t, "u1", u.Profile.ID)
	case <-time.After(time.Second):
		t.Fatal("no profile update delivered")
	}
}

// ── EnsureProfile ────────────────────────────────────────────────────────────

func TestProfileService_EnsureProfile_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetProfile(ctx, "u1").Return(models.Profile{ID: "u1", Username: models.Ptr("ana")}, nil)

	p, err := svc.EnsureProfile(ctx, models.User{ID: "u1", Email: "other@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "ana", *p.Username)
}

func TestProfileService_EnsureProfile_CreatesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{
		ID:           "u1",
		Email:        "ana.silva@example.com",
		UserMetadata: map[string]any{"full_name": "Ana Silva"},
	}

	gomock.InOrder(
		repo.EXPECT().GetProfile(ctx, "u1").Return(models.Profile{}, store.ErrNotFound),
		repo.EXPECT().CreateProfile(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Profile) (models.Profile, error) {
				assert.Equal(t, "Ana Silva", *p.DisplayName)
				assert.Equal(t, "ana.silva", *p.Username)
				return p, nil
			},
		),
	)

	p, err := svc.EnsureProfile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
}

func TestProfileService_EnsureProfile_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	// профиль создан параллельным запросом того же пользователя
	gomock.InOrder(
		repo.EXPECT().GetProfile(ctx, "u1").Return(models.Profile{}, store.ErrNotFound),
		repo.EXPECT().CreateProfile(ctx, gomock.Any()).Return(models.Profile{}, store.ErrConflict),
		repo.EXPECT().GetProfile(ctx, "u1").Return(models.Profile{ID: "u1"}, nil),
	)

	p, err := svc.EnsureProfile(ctx, models.User{ID: "u1", Email: "a@b.c"})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "u1", p.ID)
}
